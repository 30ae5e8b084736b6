// Code generated by ent, DO NOT EDIT.

package codereview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldRequestID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSummary, v))
}

// DesignCompliance applies equality check predicate on the "design_compliance" field. It's identical to DesignComplianceEQ.
func DesignCompliance(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldDesignCompliance, v))
}

// DesignComplianceNotes applies equality check predicate on the "design_compliance_notes" field. It's identical to DesignComplianceNotesEQ.
func DesignComplianceNotes(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldDesignComplianceNotes, v))
}

// SecurityPass applies equality check predicate on the "security_pass" field. It's identical to SecurityPassEQ.
func SecurityPass(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSecurityPass, v))
}

// SecurityNotes applies equality check predicate on the "security_notes" field. It's identical to SecurityNotesEQ.
func SecurityNotes(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSecurityNotes, v))
}

// CodingStandardsPass applies equality check predicate on the "coding_standards_pass" field. It's identical to CodingStandardsPassEQ.
func CodingStandardsPass(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCodingStandardsPass, v))
}

// CodingStandardsNotes applies equality check predicate on the "coding_standards_notes" field. It's identical to CodingStandardsNotesEQ.
func CodingStandardsNotes(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCodingStandardsNotes, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldQualityScore, v))
}

// FilesChanged applies equality check predicate on the "files_changed" field. It's identical to FilesChangedEQ.
func FilesChanged(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldFilesChanged, v))
}

// LinesAdded applies equality check predicate on the "lines_added" field. It's identical to LinesAddedEQ.
func LinesAdded(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldLinesAdded, v))
}

// LinesRemoved applies equality check predicate on the "lines_removed" field. It's identical to LinesRemovedEQ.
func LinesRemoved(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldLinesRemoved, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldPrNumber, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCompletionTokens, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldModel, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldRequestID, vs...))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldDecision, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldSummary, v))
}

// DesignComplianceEQ applies the EQ predicate on the "design_compliance" field.
func DesignComplianceEQ(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldDesignCompliance, v))
}

// DesignComplianceNEQ applies the NEQ predicate on the "design_compliance" field.
func DesignComplianceNEQ(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldDesignCompliance, v))
}

// DesignComplianceNotesEQ applies the EQ predicate on the "design_compliance_notes" field.
func DesignComplianceNotesEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesNEQ applies the NEQ predicate on the "design_compliance_notes" field.
func DesignComplianceNotesNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesIn applies the In predicate on the "design_compliance_notes" field.
func DesignComplianceNotesIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldDesignComplianceNotes, vs...))
}

// DesignComplianceNotesNotIn applies the NotIn predicate on the "design_compliance_notes" field.
func DesignComplianceNotesNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldDesignComplianceNotes, vs...))
}

// DesignComplianceNotesGT applies the GT predicate on the "design_compliance_notes" field.
func DesignComplianceNotesGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesGTE applies the GTE predicate on the "design_compliance_notes" field.
func DesignComplianceNotesGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesLT applies the LT predicate on the "design_compliance_notes" field.
func DesignComplianceNotesLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesLTE applies the LTE predicate on the "design_compliance_notes" field.
func DesignComplianceNotesLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesContains applies the Contains predicate on the "design_compliance_notes" field.
func DesignComplianceNotesContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesHasPrefix applies the HasPrefix predicate on the "design_compliance_notes" field.
func DesignComplianceNotesHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesHasSuffix applies the HasSuffix predicate on the "design_compliance_notes" field.
func DesignComplianceNotesHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesIsNil applies the IsNil predicate on the "design_compliance_notes" field.
func DesignComplianceNotesIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldDesignComplianceNotes))
}

// DesignComplianceNotesNotNil applies the NotNil predicate on the "design_compliance_notes" field.
func DesignComplianceNotesNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldDesignComplianceNotes))
}

// DesignComplianceNotesEqualFold applies the EqualFold predicate on the "design_compliance_notes" field.
func DesignComplianceNotesEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldDesignComplianceNotes, v))
}

// DesignComplianceNotesContainsFold applies the ContainsFold predicate on the "design_compliance_notes" field.
func DesignComplianceNotesContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldDesignComplianceNotes, v))
}

// SecurityPassEQ applies the EQ predicate on the "security_pass" field.
func SecurityPassEQ(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSecurityPass, v))
}

// SecurityPassNEQ applies the NEQ predicate on the "security_pass" field.
func SecurityPassNEQ(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldSecurityPass, v))
}

// SecurityNotesEQ applies the EQ predicate on the "security_notes" field.
func SecurityNotesEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldSecurityNotes, v))
}

// SecurityNotesNEQ applies the NEQ predicate on the "security_notes" field.
func SecurityNotesNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldSecurityNotes, v))
}

// SecurityNotesIn applies the In predicate on the "security_notes" field.
func SecurityNotesIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldSecurityNotes, vs...))
}

// SecurityNotesNotIn applies the NotIn predicate on the "security_notes" field.
func SecurityNotesNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldSecurityNotes, vs...))
}

// SecurityNotesGT applies the GT predicate on the "security_notes" field.
func SecurityNotesGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldSecurityNotes, v))
}

// SecurityNotesGTE applies the GTE predicate on the "security_notes" field.
func SecurityNotesGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldSecurityNotes, v))
}

// SecurityNotesLT applies the LT predicate on the "security_notes" field.
func SecurityNotesLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldSecurityNotes, v))
}

// SecurityNotesLTE applies the LTE predicate on the "security_notes" field.
func SecurityNotesLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldSecurityNotes, v))
}

// SecurityNotesContains applies the Contains predicate on the "security_notes" field.
func SecurityNotesContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldSecurityNotes, v))
}

// SecurityNotesHasPrefix applies the HasPrefix predicate on the "security_notes" field.
func SecurityNotesHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldSecurityNotes, v))
}

// SecurityNotesHasSuffix applies the HasSuffix predicate on the "security_notes" field.
func SecurityNotesHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldSecurityNotes, v))
}

// SecurityNotesIsNil applies the IsNil predicate on the "security_notes" field.
func SecurityNotesIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldSecurityNotes))
}

// SecurityNotesNotNil applies the NotNil predicate on the "security_notes" field.
func SecurityNotesNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldSecurityNotes))
}

// SecurityNotesEqualFold applies the EqualFold predicate on the "security_notes" field.
func SecurityNotesEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldSecurityNotes, v))
}

// SecurityNotesContainsFold applies the ContainsFold predicate on the "security_notes" field.
func SecurityNotesContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldSecurityNotes, v))
}

// CodingStandardsPassEQ applies the EQ predicate on the "coding_standards_pass" field.
func CodingStandardsPassEQ(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCodingStandardsPass, v))
}

// CodingStandardsPassNEQ applies the NEQ predicate on the "coding_standards_pass" field.
func CodingStandardsPassNEQ(v bool) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldCodingStandardsPass, v))
}

// CodingStandardsNotesEQ applies the EQ predicate on the "coding_standards_notes" field.
func CodingStandardsNotesEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesNEQ applies the NEQ predicate on the "coding_standards_notes" field.
func CodingStandardsNotesNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesIn applies the In predicate on the "coding_standards_notes" field.
func CodingStandardsNotesIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldCodingStandardsNotes, vs...))
}

// CodingStandardsNotesNotIn applies the NotIn predicate on the "coding_standards_notes" field.
func CodingStandardsNotesNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldCodingStandardsNotes, vs...))
}

// CodingStandardsNotesGT applies the GT predicate on the "coding_standards_notes" field.
func CodingStandardsNotesGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesGTE applies the GTE predicate on the "coding_standards_notes" field.
func CodingStandardsNotesGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesLT applies the LT predicate on the "coding_standards_notes" field.
func CodingStandardsNotesLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesLTE applies the LTE predicate on the "coding_standards_notes" field.
func CodingStandardsNotesLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesContains applies the Contains predicate on the "coding_standards_notes" field.
func CodingStandardsNotesContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesHasPrefix applies the HasPrefix predicate on the "coding_standards_notes" field.
func CodingStandardsNotesHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesHasSuffix applies the HasSuffix predicate on the "coding_standards_notes" field.
func CodingStandardsNotesHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesIsNil applies the IsNil predicate on the "coding_standards_notes" field.
func CodingStandardsNotesIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldCodingStandardsNotes))
}

// CodingStandardsNotesNotNil applies the NotNil predicate on the "coding_standards_notes" field.
func CodingStandardsNotesNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldCodingStandardsNotes))
}

// CodingStandardsNotesEqualFold applies the EqualFold predicate on the "coding_standards_notes" field.
func CodingStandardsNotesEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldCodingStandardsNotes, v))
}

// CodingStandardsNotesContainsFold applies the ContainsFold predicate on the "coding_standards_notes" field.
func CodingStandardsNotesContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldCodingStandardsNotes, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldQualityScore, v))
}

// FilesChangedEQ applies the EQ predicate on the "files_changed" field.
func FilesChangedEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldFilesChanged, v))
}

// FilesChangedNEQ applies the NEQ predicate on the "files_changed" field.
func FilesChangedNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldFilesChanged, v))
}

// FilesChangedIn applies the In predicate on the "files_changed" field.
func FilesChangedIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldFilesChanged, vs...))
}

// FilesChangedNotIn applies the NotIn predicate on the "files_changed" field.
func FilesChangedNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldFilesChanged, vs...))
}

// FilesChangedGT applies the GT predicate on the "files_changed" field.
func FilesChangedGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldFilesChanged, v))
}

// FilesChangedGTE applies the GTE predicate on the "files_changed" field.
func FilesChangedGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldFilesChanged, v))
}

// FilesChangedLT applies the LT predicate on the "files_changed" field.
func FilesChangedLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldFilesChanged, v))
}

// FilesChangedLTE applies the LTE predicate on the "files_changed" field.
func FilesChangedLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldFilesChanged, v))
}

// LinesAddedEQ applies the EQ predicate on the "lines_added" field.
func LinesAddedEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldLinesAdded, v))
}

// LinesAddedNEQ applies the NEQ predicate on the "lines_added" field.
func LinesAddedNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldLinesAdded, v))
}

// LinesAddedIn applies the In predicate on the "lines_added" field.
func LinesAddedIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldLinesAdded, vs...))
}

// LinesAddedNotIn applies the NotIn predicate on the "lines_added" field.
func LinesAddedNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldLinesAdded, vs...))
}

// LinesAddedGT applies the GT predicate on the "lines_added" field.
func LinesAddedGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldLinesAdded, v))
}

// LinesAddedGTE applies the GTE predicate on the "lines_added" field.
func LinesAddedGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldLinesAdded, v))
}

// LinesAddedLT applies the LT predicate on the "lines_added" field.
func LinesAddedLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldLinesAdded, v))
}

// LinesAddedLTE applies the LTE predicate on the "lines_added" field.
func LinesAddedLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldLinesAdded, v))
}

// LinesRemovedEQ applies the EQ predicate on the "lines_removed" field.
func LinesRemovedEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldLinesRemoved, v))
}

// LinesRemovedNEQ applies the NEQ predicate on the "lines_removed" field.
func LinesRemovedNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldLinesRemoved, v))
}

// LinesRemovedIn applies the In predicate on the "lines_removed" field.
func LinesRemovedIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldLinesRemoved, vs...))
}

// LinesRemovedNotIn applies the NotIn predicate on the "lines_removed" field.
func LinesRemovedNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldLinesRemoved, vs...))
}

// LinesRemovedGT applies the GT predicate on the "lines_removed" field.
func LinesRemovedGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldLinesRemoved, v))
}

// LinesRemovedGTE applies the GTE predicate on the "lines_removed" field.
func LinesRemovedGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldLinesRemoved, v))
}

// LinesRemovedLT applies the LT predicate on the "lines_removed" field.
func LinesRemovedLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldLinesRemoved, v))
}

// LinesRemovedLTE applies the LTE predicate on the "lines_removed" field.
func LinesRemovedLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldLinesRemoved, v))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldPrNumber, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldCompletionTokens, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldContainsFold(FieldModel, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CodeReview {
	return predicate.CodeReview(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.CodeReview {
	return predicate.CodeReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.Request) predicate.CodeReview {
	return predicate.CodeReview(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CodeReview) predicate.CodeReview {
	return predicate.CodeReview(sql.NotPredicates(p))
}
