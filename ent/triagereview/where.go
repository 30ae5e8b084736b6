// Code generated by ent, DO NOT EDIT.

package triagereview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldRequestID, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldReasoning, v))
}

// AlignmentScore applies equality check predicate on the "alignment_score" field. It's identical to AlignmentScoreEQ.
func AlignmentScore(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldAlignmentScore, v))
}

// CompletenessScore applies equality check predicate on the "completeness_score" field. It's identical to CompletenessScoreEQ.
func CompletenessScore(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldCompletenessScore, v))
}

// SalesAlignmentScore applies equality check predicate on the "sales_alignment_score" field. It's identical to SalesAlignmentScoreEQ.
func SalesAlignmentScore(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldSalesAlignmentScore, v))
}

// SuggestedPriority applies equality check predicate on the "suggested_priority" field. It's identical to SuggestedPriorityEQ.
func SuggestedPriority(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldSuggestedPriority, v))
}

// IsDuplicate applies equality check predicate on the "is_duplicate" field. It's identical to IsDuplicateEQ.
func IsDuplicate(v bool) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldIsDuplicate, v))
}

// DuplicateOfRequestID applies equality check predicate on the "duplicate_of_request_id" field. It's identical to DuplicateOfRequestIDEQ.
func DuplicateOfRequestID(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldDuplicateOfRequestID, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldCompletionTokens, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldModel, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldRequestID, vs...))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldDecision, vs...))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldContainsFold(FieldReasoning, v))
}

// AlignmentScoreEQ applies the EQ predicate on the "alignment_score" field.
func AlignmentScoreEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldAlignmentScore, v))
}

// AlignmentScoreNEQ applies the NEQ predicate on the "alignment_score" field.
func AlignmentScoreNEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldAlignmentScore, v))
}

// AlignmentScoreIn applies the In predicate on the "alignment_score" field.
func AlignmentScoreIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldAlignmentScore, vs...))
}

// AlignmentScoreNotIn applies the NotIn predicate on the "alignment_score" field.
func AlignmentScoreNotIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldAlignmentScore, vs...))
}

// AlignmentScoreGT applies the GT predicate on the "alignment_score" field.
func AlignmentScoreGT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldAlignmentScore, v))
}

// AlignmentScoreGTE applies the GTE predicate on the "alignment_score" field.
func AlignmentScoreGTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldAlignmentScore, v))
}

// AlignmentScoreLT applies the LT predicate on the "alignment_score" field.
func AlignmentScoreLT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldAlignmentScore, v))
}

// AlignmentScoreLTE applies the LTE predicate on the "alignment_score" field.
func AlignmentScoreLTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldAlignmentScore, v))
}

// CompletenessScoreEQ applies the EQ predicate on the "completeness_score" field.
func CompletenessScoreEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldCompletenessScore, v))
}

// CompletenessScoreNEQ applies the NEQ predicate on the "completeness_score" field.
func CompletenessScoreNEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldCompletenessScore, v))
}

// CompletenessScoreIn applies the In predicate on the "completeness_score" field.
func CompletenessScoreIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldCompletenessScore, vs...))
}

// CompletenessScoreNotIn applies the NotIn predicate on the "completeness_score" field.
func CompletenessScoreNotIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldCompletenessScore, vs...))
}

// CompletenessScoreGT applies the GT predicate on the "completeness_score" field.
func CompletenessScoreGT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldCompletenessScore, v))
}

// CompletenessScoreGTE applies the GTE predicate on the "completeness_score" field.
func CompletenessScoreGTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldCompletenessScore, v))
}

// CompletenessScoreLT applies the LT predicate on the "completeness_score" field.
func CompletenessScoreLT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldCompletenessScore, v))
}

// CompletenessScoreLTE applies the LTE predicate on the "completeness_score" field.
func CompletenessScoreLTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldCompletenessScore, v))
}

// SalesAlignmentScoreEQ applies the EQ predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldSalesAlignmentScore, v))
}

// SalesAlignmentScoreNEQ applies the NEQ predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreNEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldSalesAlignmentScore, v))
}

// SalesAlignmentScoreIn applies the In predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldSalesAlignmentScore, vs...))
}

// SalesAlignmentScoreNotIn applies the NotIn predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreNotIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldSalesAlignmentScore, vs...))
}

// SalesAlignmentScoreGT applies the GT predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreGT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldSalesAlignmentScore, v))
}

// SalesAlignmentScoreGTE applies the GTE predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreGTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldSalesAlignmentScore, v))
}

// SalesAlignmentScoreLT applies the LT predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreLT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldSalesAlignmentScore, v))
}

// SalesAlignmentScoreLTE applies the LTE predicate on the "sales_alignment_score" field.
func SalesAlignmentScoreLTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldSalesAlignmentScore, v))
}

// SuggestedPriorityEQ applies the EQ predicate on the "suggested_priority" field.
func SuggestedPriorityEQ(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldSuggestedPriority, v))
}

// SuggestedPriorityNEQ applies the NEQ predicate on the "suggested_priority" field.
func SuggestedPriorityNEQ(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldSuggestedPriority, v))
}

// SuggestedPriorityIn applies the In predicate on the "suggested_priority" field.
func SuggestedPriorityIn(vs ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldSuggestedPriority, vs...))
}

// SuggestedPriorityNotIn applies the NotIn predicate on the "suggested_priority" field.
func SuggestedPriorityNotIn(vs ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldSuggestedPriority, vs...))
}

// SuggestedPriorityGT applies the GT predicate on the "suggested_priority" field.
func SuggestedPriorityGT(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldSuggestedPriority, v))
}

// SuggestedPriorityGTE applies the GTE predicate on the "suggested_priority" field.
func SuggestedPriorityGTE(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldSuggestedPriority, v))
}

// SuggestedPriorityLT applies the LT predicate on the "suggested_priority" field.
func SuggestedPriorityLT(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldSuggestedPriority, v))
}

// SuggestedPriorityLTE applies the LTE predicate on the "suggested_priority" field.
func SuggestedPriorityLTE(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldSuggestedPriority, v))
}

// SuggestedPriorityContains applies the Contains predicate on the "suggested_priority" field.
func SuggestedPriorityContains(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldContains(FieldSuggestedPriority, v))
}

// SuggestedPriorityHasPrefix applies the HasPrefix predicate on the "suggested_priority" field.
func SuggestedPriorityHasPrefix(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldHasPrefix(FieldSuggestedPriority, v))
}

// SuggestedPriorityHasSuffix applies the HasSuffix predicate on the "suggested_priority" field.
func SuggestedPriorityHasSuffix(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldHasSuffix(FieldSuggestedPriority, v))
}

// SuggestedPriorityIsNil applies the IsNil predicate on the "suggested_priority" field.
func SuggestedPriorityIsNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIsNull(FieldSuggestedPriority))
}

// SuggestedPriorityNotNil applies the NotNil predicate on the "suggested_priority" field.
func SuggestedPriorityNotNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotNull(FieldSuggestedPriority))
}

// SuggestedPriorityEqualFold applies the EqualFold predicate on the "suggested_priority" field.
func SuggestedPriorityEqualFold(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEqualFold(FieldSuggestedPriority, v))
}

// SuggestedPriorityContainsFold applies the ContainsFold predicate on the "suggested_priority" field.
func SuggestedPriorityContainsFold(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldContainsFold(FieldSuggestedPriority, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotNull(FieldTags))
}

// ClarificationQuestionsIsNil applies the IsNil predicate on the "clarification_questions" field.
func ClarificationQuestionsIsNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIsNull(FieldClarificationQuestions))
}

// ClarificationQuestionsNotNil applies the NotNil predicate on the "clarification_questions" field.
func ClarificationQuestionsNotNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotNull(FieldClarificationQuestions))
}

// IsDuplicateEQ applies the EQ predicate on the "is_duplicate" field.
func IsDuplicateEQ(v bool) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldIsDuplicate, v))
}

// IsDuplicateNEQ applies the NEQ predicate on the "is_duplicate" field.
func IsDuplicateNEQ(v bool) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldIsDuplicate, v))
}

// DuplicateOfRequestIDEQ applies the EQ predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldDuplicateOfRequestID, v))
}

// DuplicateOfRequestIDNEQ applies the NEQ predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDNEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldDuplicateOfRequestID, v))
}

// DuplicateOfRequestIDIn applies the In predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldDuplicateOfRequestID, vs...))
}

// DuplicateOfRequestIDNotIn applies the NotIn predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDNotIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldDuplicateOfRequestID, vs...))
}

// DuplicateOfRequestIDGT applies the GT predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDGT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldDuplicateOfRequestID, v))
}

// DuplicateOfRequestIDGTE applies the GTE predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDGTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldDuplicateOfRequestID, v))
}

// DuplicateOfRequestIDLT applies the LT predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDLT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldDuplicateOfRequestID, v))
}

// DuplicateOfRequestIDLTE applies the LTE predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDLTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldDuplicateOfRequestID, v))
}

// DuplicateOfRequestIDIsNil applies the IsNil predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDIsNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIsNull(FieldDuplicateOfRequestID))
}

// DuplicateOfRequestIDNotNil applies the NotNil predicate on the "duplicate_of_request_id" field.
func DuplicateOfRequestIDNotNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotNull(FieldDuplicateOfRequestID))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldCompletionTokens, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldContainsFold(FieldModel, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TriageReview {
	return predicate.TriageReview(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.TriageReview {
	return predicate.TriageReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.TriageReview {
	return predicate.TriageReview(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriageReview) predicate.TriageReview {
	return predicate.TriageReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriageReview) predicate.TriageReview {
	return predicate.TriageReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriageReview) predicate.TriageReview {
	return predicate.TriageReview(sql.NotPredicates(p))
}
