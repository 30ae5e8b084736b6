// Code generated by ent, DO NOT EDIT.

package architectreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldRequestID, v))
}

// SolutionSummary applies equality check predicate on the "solution_summary" field. It's identical to SolutionSummaryEQ.
func SolutionSummary(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldSolutionSummary, v))
}

// Approach applies equality check predicate on the "approach" field. It's identical to ApproachEQ.
func Approach(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldApproach, v))
}

// SolutionJSON applies equality check predicate on the "solution_json" field. It's identical to SolutionJSONEQ.
func SolutionJSON(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldSolutionJSON, v))
}

// EstimatedComplexity applies equality check predicate on the "estimated_complexity" field. It's identical to EstimatedComplexityEQ.
func EstimatedComplexity(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldEstimatedComplexity, v))
}

// EstimatedEffort applies equality check predicate on the "estimated_effort" field. It's identical to EstimatedEffortEQ.
func EstimatedEffort(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldEstimatedEffort, v))
}

// FilesAnalyzed applies equality check predicate on the "files_analyzed" field. It's identical to FilesAnalyzedEQ.
func FilesAnalyzed(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldFilesAnalyzed, v))
}

// Step1PromptTokens applies equality check predicate on the "step1_prompt_tokens" field. It's identical to Step1PromptTokensEQ.
func Step1PromptTokens(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep1PromptTokens, v))
}

// Step1CompletionTokens applies equality check predicate on the "step1_completion_tokens" field. It's identical to Step1CompletionTokensEQ.
func Step1CompletionTokens(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep1CompletionTokens, v))
}

// Step2PromptTokens applies equality check predicate on the "step2_prompt_tokens" field. It's identical to Step2PromptTokensEQ.
func Step2PromptTokens(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep2PromptTokens, v))
}

// Step2CompletionTokens applies equality check predicate on the "step2_completion_tokens" field. It's identical to Step2CompletionTokensEQ.
func Step2CompletionTokens(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep2CompletionTokens, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldModel, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldDurationMs, v))
}

// HumanFeedback applies equality check predicate on the "human_feedback" field. It's identical to HumanFeedbackEQ.
func HumanFeedback(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldHumanFeedback, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldApprovedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldRequestID, vs...))
}

// SolutionSummaryEQ applies the EQ predicate on the "solution_summary" field.
func SolutionSummaryEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldSolutionSummary, v))
}

// SolutionSummaryNEQ applies the NEQ predicate on the "solution_summary" field.
func SolutionSummaryNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldSolutionSummary, v))
}

// SolutionSummaryIn applies the In predicate on the "solution_summary" field.
func SolutionSummaryIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldSolutionSummary, vs...))
}

// SolutionSummaryNotIn applies the NotIn predicate on the "solution_summary" field.
func SolutionSummaryNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldSolutionSummary, vs...))
}

// SolutionSummaryGT applies the GT predicate on the "solution_summary" field.
func SolutionSummaryGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldSolutionSummary, v))
}

// SolutionSummaryGTE applies the GTE predicate on the "solution_summary" field.
func SolutionSummaryGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldSolutionSummary, v))
}

// SolutionSummaryLT applies the LT predicate on the "solution_summary" field.
func SolutionSummaryLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldSolutionSummary, v))
}

// SolutionSummaryLTE applies the LTE predicate on the "solution_summary" field.
func SolutionSummaryLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldSolutionSummary, v))
}

// SolutionSummaryContains applies the Contains predicate on the "solution_summary" field.
func SolutionSummaryContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldSolutionSummary, v))
}

// SolutionSummaryHasPrefix applies the HasPrefix predicate on the "solution_summary" field.
func SolutionSummaryHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldSolutionSummary, v))
}

// SolutionSummaryHasSuffix applies the HasSuffix predicate on the "solution_summary" field.
func SolutionSummaryHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldSolutionSummary, v))
}

// SolutionSummaryEqualFold applies the EqualFold predicate on the "solution_summary" field.
func SolutionSummaryEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldSolutionSummary, v))
}

// SolutionSummaryContainsFold applies the ContainsFold predicate on the "solution_summary" field.
func SolutionSummaryContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldSolutionSummary, v))
}

// ApproachEQ applies the EQ predicate on the "approach" field.
func ApproachEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldApproach, v))
}

// ApproachNEQ applies the NEQ predicate on the "approach" field.
func ApproachNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldApproach, v))
}

// ApproachIn applies the In predicate on the "approach" field.
func ApproachIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldApproach, vs...))
}

// ApproachNotIn applies the NotIn predicate on the "approach" field.
func ApproachNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldApproach, vs...))
}

// ApproachGT applies the GT predicate on the "approach" field.
func ApproachGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldApproach, v))
}

// ApproachGTE applies the GTE predicate on the "approach" field.
func ApproachGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldApproach, v))
}

// ApproachLT applies the LT predicate on the "approach" field.
func ApproachLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldApproach, v))
}

// ApproachLTE applies the LTE predicate on the "approach" field.
func ApproachLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldApproach, v))
}

// ApproachContains applies the Contains predicate on the "approach" field.
func ApproachContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldApproach, v))
}

// ApproachHasPrefix applies the HasPrefix predicate on the "approach" field.
func ApproachHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldApproach, v))
}

// ApproachHasSuffix applies the HasSuffix predicate on the "approach" field.
func ApproachHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldApproach, v))
}

// ApproachEqualFold applies the EqualFold predicate on the "approach" field.
func ApproachEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldApproach, v))
}

// ApproachContainsFold applies the ContainsFold predicate on the "approach" field.
func ApproachContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldApproach, v))
}

// SolutionJSONEQ applies the EQ predicate on the "solution_json" field.
func SolutionJSONEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldSolutionJSON, v))
}

// SolutionJSONNEQ applies the NEQ predicate on the "solution_json" field.
func SolutionJSONNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldSolutionJSON, v))
}

// SolutionJSONIn applies the In predicate on the "solution_json" field.
func SolutionJSONIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldSolutionJSON, vs...))
}

// SolutionJSONNotIn applies the NotIn predicate on the "solution_json" field.
func SolutionJSONNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldSolutionJSON, vs...))
}

// SolutionJSONGT applies the GT predicate on the "solution_json" field.
func SolutionJSONGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldSolutionJSON, v))
}

// SolutionJSONGTE applies the GTE predicate on the "solution_json" field.
func SolutionJSONGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldSolutionJSON, v))
}

// SolutionJSONLT applies the LT predicate on the "solution_json" field.
func SolutionJSONLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldSolutionJSON, v))
}

// SolutionJSONLTE applies the LTE predicate on the "solution_json" field.
func SolutionJSONLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldSolutionJSON, v))
}

// SolutionJSONContains applies the Contains predicate on the "solution_json" field.
func SolutionJSONContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldSolutionJSON, v))
}

// SolutionJSONHasPrefix applies the HasPrefix predicate on the "solution_json" field.
func SolutionJSONHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldSolutionJSON, v))
}

// SolutionJSONHasSuffix applies the HasSuffix predicate on the "solution_json" field.
func SolutionJSONHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldSolutionJSON, v))
}

// SolutionJSONEqualFold applies the EqualFold predicate on the "solution_json" field.
func SolutionJSONEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldSolutionJSON, v))
}

// SolutionJSONContainsFold applies the ContainsFold predicate on the "solution_json" field.
func SolutionJSONContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldSolutionJSON, v))
}

// EstimatedComplexityEQ applies the EQ predicate on the "estimated_complexity" field.
func EstimatedComplexityEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldEstimatedComplexity, v))
}

// EstimatedComplexityNEQ applies the NEQ predicate on the "estimated_complexity" field.
func EstimatedComplexityNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldEstimatedComplexity, v))
}

// EstimatedComplexityIn applies the In predicate on the "estimated_complexity" field.
func EstimatedComplexityIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldEstimatedComplexity, vs...))
}

// EstimatedComplexityNotIn applies the NotIn predicate on the "estimated_complexity" field.
func EstimatedComplexityNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldEstimatedComplexity, vs...))
}

// EstimatedComplexityGT applies the GT predicate on the "estimated_complexity" field.
func EstimatedComplexityGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldEstimatedComplexity, v))
}

// EstimatedComplexityGTE applies the GTE predicate on the "estimated_complexity" field.
func EstimatedComplexityGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldEstimatedComplexity, v))
}

// EstimatedComplexityLT applies the LT predicate on the "estimated_complexity" field.
func EstimatedComplexityLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldEstimatedComplexity, v))
}

// EstimatedComplexityLTE applies the LTE predicate on the "estimated_complexity" field.
func EstimatedComplexityLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldEstimatedComplexity, v))
}

// EstimatedComplexityContains applies the Contains predicate on the "estimated_complexity" field.
func EstimatedComplexityContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldEstimatedComplexity, v))
}

// EstimatedComplexityHasPrefix applies the HasPrefix predicate on the "estimated_complexity" field.
func EstimatedComplexityHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldEstimatedComplexity, v))
}

// EstimatedComplexityHasSuffix applies the HasSuffix predicate on the "estimated_complexity" field.
func EstimatedComplexityHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldEstimatedComplexity, v))
}

// EstimatedComplexityIsNil applies the IsNil predicate on the "estimated_complexity" field.
func EstimatedComplexityIsNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIsNull(FieldEstimatedComplexity))
}

// EstimatedComplexityNotNil applies the NotNil predicate on the "estimated_complexity" field.
func EstimatedComplexityNotNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotNull(FieldEstimatedComplexity))
}

// EstimatedComplexityEqualFold applies the EqualFold predicate on the "estimated_complexity" field.
func EstimatedComplexityEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldEstimatedComplexity, v))
}

// EstimatedComplexityContainsFold applies the ContainsFold predicate on the "estimated_complexity" field.
func EstimatedComplexityContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldEstimatedComplexity, v))
}

// EstimatedEffortEQ applies the EQ predicate on the "estimated_effort" field.
func EstimatedEffortEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortNEQ applies the NEQ predicate on the "estimated_effort" field.
func EstimatedEffortNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldEstimatedEffort, v))
}

// EstimatedEffortIn applies the In predicate on the "estimated_effort" field.
func EstimatedEffortIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldEstimatedEffort, vs...))
}

// EstimatedEffortNotIn applies the NotIn predicate on the "estimated_effort" field.
func EstimatedEffortNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldEstimatedEffort, vs...))
}

// EstimatedEffortGT applies the GT predicate on the "estimated_effort" field.
func EstimatedEffortGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldEstimatedEffort, v))
}

// EstimatedEffortGTE applies the GTE predicate on the "estimated_effort" field.
func EstimatedEffortGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldEstimatedEffort, v))
}

// EstimatedEffortLT applies the LT predicate on the "estimated_effort" field.
func EstimatedEffortLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldEstimatedEffort, v))
}

// EstimatedEffortLTE applies the LTE predicate on the "estimated_effort" field.
func EstimatedEffortLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldEstimatedEffort, v))
}

// EstimatedEffortContains applies the Contains predicate on the "estimated_effort" field.
func EstimatedEffortContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldEstimatedEffort, v))
}

// EstimatedEffortHasPrefix applies the HasPrefix predicate on the "estimated_effort" field.
func EstimatedEffortHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldEstimatedEffort, v))
}

// EstimatedEffortHasSuffix applies the HasSuffix predicate on the "estimated_effort" field.
func EstimatedEffortHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldEstimatedEffort, v))
}

// EstimatedEffortIsNil applies the IsNil predicate on the "estimated_effort" field.
func EstimatedEffortIsNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIsNull(FieldEstimatedEffort))
}

// EstimatedEffortNotNil applies the NotNil predicate on the "estimated_effort" field.
func EstimatedEffortNotNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotNull(FieldEstimatedEffort))
}

// EstimatedEffortEqualFold applies the EqualFold predicate on the "estimated_effort" field.
func EstimatedEffortEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldEstimatedEffort, v))
}

// EstimatedEffortContainsFold applies the ContainsFold predicate on the "estimated_effort" field.
func EstimatedEffortContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldEstimatedEffort, v))
}

// FilesAnalyzedEQ applies the EQ predicate on the "files_analyzed" field.
func FilesAnalyzedEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldFilesAnalyzed, v))
}

// FilesAnalyzedNEQ applies the NEQ predicate on the "files_analyzed" field.
func FilesAnalyzedNEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldFilesAnalyzed, v))
}

// FilesAnalyzedIn applies the In predicate on the "files_analyzed" field.
func FilesAnalyzedIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldFilesAnalyzed, vs...))
}

// FilesAnalyzedNotIn applies the NotIn predicate on the "files_analyzed" field.
func FilesAnalyzedNotIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldFilesAnalyzed, vs...))
}

// FilesAnalyzedGT applies the GT predicate on the "files_analyzed" field.
func FilesAnalyzedGT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldFilesAnalyzed, v))
}

// FilesAnalyzedGTE applies the GTE predicate on the "files_analyzed" field.
func FilesAnalyzedGTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldFilesAnalyzed, v))
}

// FilesAnalyzedLT applies the LT predicate on the "files_analyzed" field.
func FilesAnalyzedLT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldFilesAnalyzed, v))
}

// FilesAnalyzedLTE applies the LTE predicate on the "files_analyzed" field.
func FilesAnalyzedLTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldFilesAnalyzed, v))
}

// FilePathsIsNil applies the IsNil predicate on the "file_paths" field.
func FilePathsIsNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIsNull(FieldFilePaths))
}

// FilePathsNotNil applies the NotNil predicate on the "file_paths" field.
func FilePathsNotNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotNull(FieldFilePaths))
}

// Step1PromptTokensEQ applies the EQ predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep1PromptTokens, v))
}

// Step1PromptTokensNEQ applies the NEQ predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensNEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldStep1PromptTokens, v))
}

// Step1PromptTokensIn applies the In predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldStep1PromptTokens, vs...))
}

// Step1PromptTokensNotIn applies the NotIn predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensNotIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldStep1PromptTokens, vs...))
}

// Step1PromptTokensGT applies the GT predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensGT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldStep1PromptTokens, v))
}

// Step1PromptTokensGTE applies the GTE predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensGTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldStep1PromptTokens, v))
}

// Step1PromptTokensLT applies the LT predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensLT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldStep1PromptTokens, v))
}

// Step1PromptTokensLTE applies the LTE predicate on the "step1_prompt_tokens" field.
func Step1PromptTokensLTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldStep1PromptTokens, v))
}

// Step1CompletionTokensEQ applies the EQ predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep1CompletionTokens, v))
}

// Step1CompletionTokensNEQ applies the NEQ predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensNEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldStep1CompletionTokens, v))
}

// Step1CompletionTokensIn applies the In predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldStep1CompletionTokens, vs...))
}

// Step1CompletionTokensNotIn applies the NotIn predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensNotIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldStep1CompletionTokens, vs...))
}

// Step1CompletionTokensGT applies the GT predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensGT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldStep1CompletionTokens, v))
}

// Step1CompletionTokensGTE applies the GTE predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensGTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldStep1CompletionTokens, v))
}

// Step1CompletionTokensLT applies the LT predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensLT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldStep1CompletionTokens, v))
}

// Step1CompletionTokensLTE applies the LTE predicate on the "step1_completion_tokens" field.
func Step1CompletionTokensLTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldStep1CompletionTokens, v))
}

// Step2PromptTokensEQ applies the EQ predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep2PromptTokens, v))
}

// Step2PromptTokensNEQ applies the NEQ predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensNEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldStep2PromptTokens, v))
}

// Step2PromptTokensIn applies the In predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldStep2PromptTokens, vs...))
}

// Step2PromptTokensNotIn applies the NotIn predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensNotIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldStep2PromptTokens, vs...))
}

// Step2PromptTokensGT applies the GT predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensGT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldStep2PromptTokens, v))
}

// Step2PromptTokensGTE applies the GTE predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensGTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldStep2PromptTokens, v))
}

// Step2PromptTokensLT applies the LT predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensLT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldStep2PromptTokens, v))
}

// Step2PromptTokensLTE applies the LTE predicate on the "step2_prompt_tokens" field.
func Step2PromptTokensLTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldStep2PromptTokens, v))
}

// Step2CompletionTokensEQ applies the EQ predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldStep2CompletionTokens, v))
}

// Step2CompletionTokensNEQ applies the NEQ predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensNEQ(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldStep2CompletionTokens, v))
}

// Step2CompletionTokensIn applies the In predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldStep2CompletionTokens, vs...))
}

// Step2CompletionTokensNotIn applies the NotIn predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensNotIn(vs ...int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldStep2CompletionTokens, vs...))
}

// Step2CompletionTokensGT applies the GT predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensGT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldStep2CompletionTokens, v))
}

// Step2CompletionTokensGTE applies the GTE predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensGTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldStep2CompletionTokens, v))
}

// Step2CompletionTokensLT applies the LT predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensLT(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldStep2CompletionTokens, v))
}

// Step2CompletionTokensLTE applies the LTE predicate on the "step2_completion_tokens" field.
func Step2CompletionTokensLTE(v int) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldStep2CompletionTokens, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldModel, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldDurationMs, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldDecision, vs...))
}

// HumanFeedbackEQ applies the EQ predicate on the "human_feedback" field.
func HumanFeedbackEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldHumanFeedback, v))
}

// HumanFeedbackNEQ applies the NEQ predicate on the "human_feedback" field.
func HumanFeedbackNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldHumanFeedback, v))
}

// HumanFeedbackIn applies the In predicate on the "human_feedback" field.
func HumanFeedbackIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldHumanFeedback, vs...))
}

// HumanFeedbackNotIn applies the NotIn predicate on the "human_feedback" field.
func HumanFeedbackNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldHumanFeedback, vs...))
}

// HumanFeedbackGT applies the GT predicate on the "human_feedback" field.
func HumanFeedbackGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldHumanFeedback, v))
}

// HumanFeedbackGTE applies the GTE predicate on the "human_feedback" field.
func HumanFeedbackGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldHumanFeedback, v))
}

// HumanFeedbackLT applies the LT predicate on the "human_feedback" field.
func HumanFeedbackLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldHumanFeedback, v))
}

// HumanFeedbackLTE applies the LTE predicate on the "human_feedback" field.
func HumanFeedbackLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldHumanFeedback, v))
}

// HumanFeedbackContains applies the Contains predicate on the "human_feedback" field.
func HumanFeedbackContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldHumanFeedback, v))
}

// HumanFeedbackHasPrefix applies the HasPrefix predicate on the "human_feedback" field.
func HumanFeedbackHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldHumanFeedback, v))
}

// HumanFeedbackHasSuffix applies the HasSuffix predicate on the "human_feedback" field.
func HumanFeedbackHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldHumanFeedback, v))
}

// HumanFeedbackIsNil applies the IsNil predicate on the "human_feedback" field.
func HumanFeedbackIsNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIsNull(FieldHumanFeedback))
}

// HumanFeedbackNotNil applies the NotNil predicate on the "human_feedback" field.
func HumanFeedbackNotNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotNull(FieldHumanFeedback))
}

// HumanFeedbackEqualFold applies the EqualFold predicate on the "human_feedback" field.
func HumanFeedbackEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldHumanFeedback, v))
}

// HumanFeedbackContainsFold applies the ContainsFold predicate on the "human_feedback" field.
func HumanFeedbackContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldHumanFeedback, v))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldContainsFold(FieldApprovedBy, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotNull(FieldApprovedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.ArchitectReview {
	return predicate.ArchitectReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.ArchitectReview {
	return predicate.ArchitectReview(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArchitectReview) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArchitectReview) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArchitectReview) predicate.ArchitectReview {
	return predicate.ArchitectReview(sql.NotPredicates(p))
}
