// Code generated by ent, DO NOT EDIT.

package request

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/conveyor-dev/conveyor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDescription, v))
}

// SubmitterName applies equality check predicate on the "submitter_name" field. It's identical to SubmitterNameEQ.
func SubmitterName(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSubmitterName, v))
}

// SubmitterEmail applies equality check predicate on the "submitter_email" field. It's identical to SubmitterEmailEQ.
func SubmitterEmail(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSubmitterEmail, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldProjectID, v))
}

// StepsToReproduce applies equality check predicate on the "steps_to_reproduce" field. It's identical to StepsToReproduceEQ.
func StepsToReproduce(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStepsToReproduce, v))
}

// ExpectedBehavior applies equality check predicate on the "expected_behavior" field. It's identical to ExpectedBehaviorEQ.
func ExpectedBehavior(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldExpectedBehavior, v))
}

// ActualBehavior applies equality check predicate on the "actual_behavior" field. It's identical to ActualBehaviorEQ.
func ActualBehavior(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldActualBehavior, v))
}

// LastTriageAt applies equality check predicate on the "last_triage_at" field. It's identical to LastTriageAtEQ.
func LastTriageAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastTriageAt, v))
}

// TriageCount applies equality check predicate on the "triage_count" field. It's identical to TriageCountEQ.
func TriageCount(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTriageCount, v))
}

// LastArchitectAt applies equality check predicate on the "last_architect_at" field. It's identical to LastArchitectAtEQ.
func LastArchitectAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastArchitectAt, v))
}

// ArchitectCount applies equality check predicate on the "architect_count" field. It's identical to ArchitectCountEQ.
func ArchitectCount(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldArchitectCount, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSessionID, v))
}

// IssueNumber applies equality check predicate on the "issue_number" field. It's identical to IssueNumberEQ.
func IssueNumber(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueNumber, v))
}

// PrNumber applies equality check predicate on the "pr_number" field. It's identical to PrNumberEQ.
func PrNumber(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrNumber, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrURL, v))
}

// BranchName applies equality check predicate on the "branch_name" field. It's identical to BranchNameEQ.
func BranchName(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBranchName, v))
}

// TriggeredAt applies equality check predicate on the "triggered_at" field. It's identical to TriggeredAtEQ.
func TriggeredAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTriggeredAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCompletedAt, v))
}

// DeploymentRunID applies equality check predicate on the "deployment_run_id" field. It's identical to DeploymentRunIDEQ.
func DeploymentRunID(v int64) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeploymentRunID, v))
}

// DeployedAt applies equality check predicate on the "deployed_at" field. It's identical to DeployedAtEQ.
func DeployedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeployedAt, v))
}

// DeploymentRetryCount applies equality check predicate on the "deployment_retry_count" field. It's identical to DeploymentRetryCountEQ.
func DeploymentRetryCount(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeploymentRetryCount, v))
}

// BranchDeleted applies equality check predicate on the "branch_deleted" field. It's identical to BranchDeletedEQ.
func BranchDeleted(v bool) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBranchDeleted, v))
}

// StallNotifiedAt applies equality check predicate on the "stall_notified_at" field. It's identical to StallNotifiedAtEQ.
func StallNotifiedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStallNotifiedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldDescription, v))
}

// SubmitterNameEQ applies the EQ predicate on the "submitter_name" field.
func SubmitterNameEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSubmitterName, v))
}

// SubmitterNameNEQ applies the NEQ predicate on the "submitter_name" field.
func SubmitterNameNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldSubmitterName, v))
}

// SubmitterNameIn applies the In predicate on the "submitter_name" field.
func SubmitterNameIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldSubmitterName, vs...))
}

// SubmitterNameNotIn applies the NotIn predicate on the "submitter_name" field.
func SubmitterNameNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldSubmitterName, vs...))
}

// SubmitterNameGT applies the GT predicate on the "submitter_name" field.
func SubmitterNameGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldSubmitterName, v))
}

// SubmitterNameGTE applies the GTE predicate on the "submitter_name" field.
func SubmitterNameGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldSubmitterName, v))
}

// SubmitterNameLT applies the LT predicate on the "submitter_name" field.
func SubmitterNameLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldSubmitterName, v))
}

// SubmitterNameLTE applies the LTE predicate on the "submitter_name" field.
func SubmitterNameLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldSubmitterName, v))
}

// SubmitterNameContains applies the Contains predicate on the "submitter_name" field.
func SubmitterNameContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldSubmitterName, v))
}

// SubmitterNameHasPrefix applies the HasPrefix predicate on the "submitter_name" field.
func SubmitterNameHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldSubmitterName, v))
}

// SubmitterNameHasSuffix applies the HasSuffix predicate on the "submitter_name" field.
func SubmitterNameHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldSubmitterName, v))
}

// SubmitterNameIsNil applies the IsNil predicate on the "submitter_name" field.
func SubmitterNameIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldSubmitterName))
}

// SubmitterNameNotNil applies the NotNil predicate on the "submitter_name" field.
func SubmitterNameNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldSubmitterName))
}

// SubmitterNameEqualFold applies the EqualFold predicate on the "submitter_name" field.
func SubmitterNameEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldSubmitterName, v))
}

// SubmitterNameContainsFold applies the ContainsFold predicate on the "submitter_name" field.
func SubmitterNameContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldSubmitterName, v))
}

// SubmitterEmailEQ applies the EQ predicate on the "submitter_email" field.
func SubmitterEmailEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSubmitterEmail, v))
}

// SubmitterEmailNEQ applies the NEQ predicate on the "submitter_email" field.
func SubmitterEmailNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldSubmitterEmail, v))
}

// SubmitterEmailIn applies the In predicate on the "submitter_email" field.
func SubmitterEmailIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldSubmitterEmail, vs...))
}

// SubmitterEmailNotIn applies the NotIn predicate on the "submitter_email" field.
func SubmitterEmailNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldSubmitterEmail, vs...))
}

// SubmitterEmailGT applies the GT predicate on the "submitter_email" field.
func SubmitterEmailGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldSubmitterEmail, v))
}

// SubmitterEmailGTE applies the GTE predicate on the "submitter_email" field.
func SubmitterEmailGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldSubmitterEmail, v))
}

// SubmitterEmailLT applies the LT predicate on the "submitter_email" field.
func SubmitterEmailLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldSubmitterEmail, v))
}

// SubmitterEmailLTE applies the LTE predicate on the "submitter_email" field.
func SubmitterEmailLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldSubmitterEmail, v))
}

// SubmitterEmailContains applies the Contains predicate on the "submitter_email" field.
func SubmitterEmailContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldSubmitterEmail, v))
}

// SubmitterEmailHasPrefix applies the HasPrefix predicate on the "submitter_email" field.
func SubmitterEmailHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldSubmitterEmail, v))
}

// SubmitterEmailHasSuffix applies the HasSuffix predicate on the "submitter_email" field.
func SubmitterEmailHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldSubmitterEmail, v))
}

// SubmitterEmailIsNil applies the IsNil predicate on the "submitter_email" field.
func SubmitterEmailIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldSubmitterEmail))
}

// SubmitterEmailNotNil applies the NotNil predicate on the "submitter_email" field.
func SubmitterEmailNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldSubmitterEmail))
}

// SubmitterEmailEqualFold applies the EqualFold predicate on the "submitter_email" field.
func SubmitterEmailEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldSubmitterEmail, v))
}

// SubmitterEmailContainsFold applies the ContainsFold predicate on the "submitter_email" field.
func SubmitterEmailContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldSubmitterEmail, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldProjectID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldKind, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPriority, vs...))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldState, vs...))
}

// StepsToReproduceEQ applies the EQ predicate on the "steps_to_reproduce" field.
func StepsToReproduceEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStepsToReproduce, v))
}

// StepsToReproduceNEQ applies the NEQ predicate on the "steps_to_reproduce" field.
func StepsToReproduceNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldStepsToReproduce, v))
}

// StepsToReproduceIn applies the In predicate on the "steps_to_reproduce" field.
func StepsToReproduceIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldStepsToReproduce, vs...))
}

// StepsToReproduceNotIn applies the NotIn predicate on the "steps_to_reproduce" field.
func StepsToReproduceNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldStepsToReproduce, vs...))
}

// StepsToReproduceGT applies the GT predicate on the "steps_to_reproduce" field.
func StepsToReproduceGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldStepsToReproduce, v))
}

// StepsToReproduceGTE applies the GTE predicate on the "steps_to_reproduce" field.
func StepsToReproduceGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldStepsToReproduce, v))
}

// StepsToReproduceLT applies the LT predicate on the "steps_to_reproduce" field.
func StepsToReproduceLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldStepsToReproduce, v))
}

// StepsToReproduceLTE applies the LTE predicate on the "steps_to_reproduce" field.
func StepsToReproduceLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldStepsToReproduce, v))
}

// StepsToReproduceContains applies the Contains predicate on the "steps_to_reproduce" field.
func StepsToReproduceContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldStepsToReproduce, v))
}

// StepsToReproduceHasPrefix applies the HasPrefix predicate on the "steps_to_reproduce" field.
func StepsToReproduceHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldStepsToReproduce, v))
}

// StepsToReproduceHasSuffix applies the HasSuffix predicate on the "steps_to_reproduce" field.
func StepsToReproduceHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldStepsToReproduce, v))
}

// StepsToReproduceIsNil applies the IsNil predicate on the "steps_to_reproduce" field.
func StepsToReproduceIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldStepsToReproduce))
}

// StepsToReproduceNotNil applies the NotNil predicate on the "steps_to_reproduce" field.
func StepsToReproduceNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldStepsToReproduce))
}

// StepsToReproduceEqualFold applies the EqualFold predicate on the "steps_to_reproduce" field.
func StepsToReproduceEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldStepsToReproduce, v))
}

// StepsToReproduceContainsFold applies the ContainsFold predicate on the "steps_to_reproduce" field.
func StepsToReproduceContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldStepsToReproduce, v))
}

// ExpectedBehaviorEQ applies the EQ predicate on the "expected_behavior" field.
func ExpectedBehaviorEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldExpectedBehavior, v))
}

// ExpectedBehaviorNEQ applies the NEQ predicate on the "expected_behavior" field.
func ExpectedBehaviorNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldExpectedBehavior, v))
}

// ExpectedBehaviorIn applies the In predicate on the "expected_behavior" field.
func ExpectedBehaviorIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldExpectedBehavior, vs...))
}

// ExpectedBehaviorNotIn applies the NotIn predicate on the "expected_behavior" field.
func ExpectedBehaviorNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldExpectedBehavior, vs...))
}

// ExpectedBehaviorGT applies the GT predicate on the "expected_behavior" field.
func ExpectedBehaviorGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldExpectedBehavior, v))
}

// ExpectedBehaviorGTE applies the GTE predicate on the "expected_behavior" field.
func ExpectedBehaviorGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldExpectedBehavior, v))
}

// ExpectedBehaviorLT applies the LT predicate on the "expected_behavior" field.
func ExpectedBehaviorLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldExpectedBehavior, v))
}

// ExpectedBehaviorLTE applies the LTE predicate on the "expected_behavior" field.
func ExpectedBehaviorLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldExpectedBehavior, v))
}

// ExpectedBehaviorContains applies the Contains predicate on the "expected_behavior" field.
func ExpectedBehaviorContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldExpectedBehavior, v))
}

// ExpectedBehaviorHasPrefix applies the HasPrefix predicate on the "expected_behavior" field.
func ExpectedBehaviorHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldExpectedBehavior, v))
}

// ExpectedBehaviorHasSuffix applies the HasSuffix predicate on the "expected_behavior" field.
func ExpectedBehaviorHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldExpectedBehavior, v))
}

// ExpectedBehaviorIsNil applies the IsNil predicate on the "expected_behavior" field.
func ExpectedBehaviorIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldExpectedBehavior))
}

// ExpectedBehaviorNotNil applies the NotNil predicate on the "expected_behavior" field.
func ExpectedBehaviorNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldExpectedBehavior))
}

// ExpectedBehaviorEqualFold applies the EqualFold predicate on the "expected_behavior" field.
func ExpectedBehaviorEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldExpectedBehavior, v))
}

// ExpectedBehaviorContainsFold applies the ContainsFold predicate on the "expected_behavior" field.
func ExpectedBehaviorContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldExpectedBehavior, v))
}

// ActualBehaviorEQ applies the EQ predicate on the "actual_behavior" field.
func ActualBehaviorEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldActualBehavior, v))
}

// ActualBehaviorNEQ applies the NEQ predicate on the "actual_behavior" field.
func ActualBehaviorNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldActualBehavior, v))
}

// ActualBehaviorIn applies the In predicate on the "actual_behavior" field.
func ActualBehaviorIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldActualBehavior, vs...))
}

// ActualBehaviorNotIn applies the NotIn predicate on the "actual_behavior" field.
func ActualBehaviorNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldActualBehavior, vs...))
}

// ActualBehaviorGT applies the GT predicate on the "actual_behavior" field.
func ActualBehaviorGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldActualBehavior, v))
}

// ActualBehaviorGTE applies the GTE predicate on the "actual_behavior" field.
func ActualBehaviorGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldActualBehavior, v))
}

// ActualBehaviorLT applies the LT predicate on the "actual_behavior" field.
func ActualBehaviorLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldActualBehavior, v))
}

// ActualBehaviorLTE applies the LTE predicate on the "actual_behavior" field.
func ActualBehaviorLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldActualBehavior, v))
}

// ActualBehaviorContains applies the Contains predicate on the "actual_behavior" field.
func ActualBehaviorContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldActualBehavior, v))
}

// ActualBehaviorHasPrefix applies the HasPrefix predicate on the "actual_behavior" field.
func ActualBehaviorHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldActualBehavior, v))
}

// ActualBehaviorHasSuffix applies the HasSuffix predicate on the "actual_behavior" field.
func ActualBehaviorHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldActualBehavior, v))
}

// ActualBehaviorIsNil applies the IsNil predicate on the "actual_behavior" field.
func ActualBehaviorIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldActualBehavior))
}

// ActualBehaviorNotNil applies the NotNil predicate on the "actual_behavior" field.
func ActualBehaviorNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldActualBehavior))
}

// ActualBehaviorEqualFold applies the EqualFold predicate on the "actual_behavior" field.
func ActualBehaviorEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldActualBehavior, v))
}

// ActualBehaviorContainsFold applies the ContainsFold predicate on the "actual_behavior" field.
func ActualBehaviorContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldActualBehavior, v))
}

// LastTriageAtEQ applies the EQ predicate on the "last_triage_at" field.
func LastTriageAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastTriageAt, v))
}

// LastTriageAtNEQ applies the NEQ predicate on the "last_triage_at" field.
func LastTriageAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldLastTriageAt, v))
}

// LastTriageAtIn applies the In predicate on the "last_triage_at" field.
func LastTriageAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldLastTriageAt, vs...))
}

// LastTriageAtNotIn applies the NotIn predicate on the "last_triage_at" field.
func LastTriageAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldLastTriageAt, vs...))
}

// LastTriageAtGT applies the GT predicate on the "last_triage_at" field.
func LastTriageAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldLastTriageAt, v))
}

// LastTriageAtGTE applies the GTE predicate on the "last_triage_at" field.
func LastTriageAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldLastTriageAt, v))
}

// LastTriageAtLT applies the LT predicate on the "last_triage_at" field.
func LastTriageAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldLastTriageAt, v))
}

// LastTriageAtLTE applies the LTE predicate on the "last_triage_at" field.
func LastTriageAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldLastTriageAt, v))
}

// LastTriageAtIsNil applies the IsNil predicate on the "last_triage_at" field.
func LastTriageAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldLastTriageAt))
}

// LastTriageAtNotNil applies the NotNil predicate on the "last_triage_at" field.
func LastTriageAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldLastTriageAt))
}

// TriageCountEQ applies the EQ predicate on the "triage_count" field.
func TriageCountEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTriageCount, v))
}

// TriageCountNEQ applies the NEQ predicate on the "triage_count" field.
func TriageCountNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldTriageCount, v))
}

// TriageCountIn applies the In predicate on the "triage_count" field.
func TriageCountIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldTriageCount, vs...))
}

// TriageCountNotIn applies the NotIn predicate on the "triage_count" field.
func TriageCountNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldTriageCount, vs...))
}

// TriageCountGT applies the GT predicate on the "triage_count" field.
func TriageCountGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldTriageCount, v))
}

// TriageCountGTE applies the GTE predicate on the "triage_count" field.
func TriageCountGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldTriageCount, v))
}

// TriageCountLT applies the LT predicate on the "triage_count" field.
func TriageCountLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldTriageCount, v))
}

// TriageCountLTE applies the LTE predicate on the "triage_count" field.
func TriageCountLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldTriageCount, v))
}

// LastArchitectAtEQ applies the EQ predicate on the "last_architect_at" field.
func LastArchitectAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldLastArchitectAt, v))
}

// LastArchitectAtNEQ applies the NEQ predicate on the "last_architect_at" field.
func LastArchitectAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldLastArchitectAt, v))
}

// LastArchitectAtIn applies the In predicate on the "last_architect_at" field.
func LastArchitectAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldLastArchitectAt, vs...))
}

// LastArchitectAtNotIn applies the NotIn predicate on the "last_architect_at" field.
func LastArchitectAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldLastArchitectAt, vs...))
}

// LastArchitectAtGT applies the GT predicate on the "last_architect_at" field.
func LastArchitectAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldLastArchitectAt, v))
}

// LastArchitectAtGTE applies the GTE predicate on the "last_architect_at" field.
func LastArchitectAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldLastArchitectAt, v))
}

// LastArchitectAtLT applies the LT predicate on the "last_architect_at" field.
func LastArchitectAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldLastArchitectAt, v))
}

// LastArchitectAtLTE applies the LTE predicate on the "last_architect_at" field.
func LastArchitectAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldLastArchitectAt, v))
}

// LastArchitectAtIsNil applies the IsNil predicate on the "last_architect_at" field.
func LastArchitectAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldLastArchitectAt))
}

// LastArchitectAtNotNil applies the NotNil predicate on the "last_architect_at" field.
func LastArchitectAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldLastArchitectAt))
}

// ArchitectCountEQ applies the EQ predicate on the "architect_count" field.
func ArchitectCountEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldArchitectCount, v))
}

// ArchitectCountNEQ applies the NEQ predicate on the "architect_count" field.
func ArchitectCountNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldArchitectCount, v))
}

// ArchitectCountIn applies the In predicate on the "architect_count" field.
func ArchitectCountIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldArchitectCount, vs...))
}

// ArchitectCountNotIn applies the NotIn predicate on the "architect_count" field.
func ArchitectCountNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldArchitectCount, vs...))
}

// ArchitectCountGT applies the GT predicate on the "architect_count" field.
func ArchitectCountGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldArchitectCount, v))
}

// ArchitectCountGTE applies the GTE predicate on the "architect_count" field.
func ArchitectCountGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldArchitectCount, v))
}

// ArchitectCountLT applies the LT predicate on the "architect_count" field.
func ArchitectCountLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldArchitectCount, v))
}

// ArchitectCountLTE applies the LTE predicate on the "architect_count" field.
func ArchitectCountLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldArchitectCount, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldSessionID, v))
}

// IssueNumberEQ applies the EQ predicate on the "issue_number" field.
func IssueNumberEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldIssueNumber, v))
}

// IssueNumberNEQ applies the NEQ predicate on the "issue_number" field.
func IssueNumberNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldIssueNumber, v))
}

// IssueNumberIn applies the In predicate on the "issue_number" field.
func IssueNumberIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldIssueNumber, vs...))
}

// IssueNumberNotIn applies the NotIn predicate on the "issue_number" field.
func IssueNumberNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldIssueNumber, vs...))
}

// IssueNumberGT applies the GT predicate on the "issue_number" field.
func IssueNumberGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldIssueNumber, v))
}

// IssueNumberGTE applies the GTE predicate on the "issue_number" field.
func IssueNumberGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldIssueNumber, v))
}

// IssueNumberLT applies the LT predicate on the "issue_number" field.
func IssueNumberLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldIssueNumber, v))
}

// IssueNumberLTE applies the LTE predicate on the "issue_number" field.
func IssueNumberLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldIssueNumber, v))
}

// IssueNumberIsNil applies the IsNil predicate on the "issue_number" field.
func IssueNumberIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldIssueNumber))
}

// IssueNumberNotNil applies the NotNil predicate on the "issue_number" field.
func IssueNumberNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldIssueNumber))
}

// PrNumberEQ applies the EQ predicate on the "pr_number" field.
func PrNumberEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrNumber, v))
}

// PrNumberNEQ applies the NEQ predicate on the "pr_number" field.
func PrNumberNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPrNumber, v))
}

// PrNumberIn applies the In predicate on the "pr_number" field.
func PrNumberIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPrNumber, vs...))
}

// PrNumberNotIn applies the NotIn predicate on the "pr_number" field.
func PrNumberNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPrNumber, vs...))
}

// PrNumberGT applies the GT predicate on the "pr_number" field.
func PrNumberGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldPrNumber, v))
}

// PrNumberGTE applies the GTE predicate on the "pr_number" field.
func PrNumberGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldPrNumber, v))
}

// PrNumberLT applies the LT predicate on the "pr_number" field.
func PrNumberLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldPrNumber, v))
}

// PrNumberLTE applies the LTE predicate on the "pr_number" field.
func PrNumberLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldPrNumber, v))
}

// PrNumberIsNil applies the IsNil predicate on the "pr_number" field.
func PrNumberIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPrNumber))
}

// PrNumberNotNil applies the NotNil predicate on the "pr_number" field.
func PrNumberNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPrNumber))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldPrURL, v))
}

// BranchNameEQ applies the EQ predicate on the "branch_name" field.
func BranchNameEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBranchName, v))
}

// BranchNameNEQ applies the NEQ predicate on the "branch_name" field.
func BranchNameNEQ(v string) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldBranchName, v))
}

// BranchNameIn applies the In predicate on the "branch_name" field.
func BranchNameIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldBranchName, vs...))
}

// BranchNameNotIn applies the NotIn predicate on the "branch_name" field.
func BranchNameNotIn(vs ...string) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldBranchName, vs...))
}

// BranchNameGT applies the GT predicate on the "branch_name" field.
func BranchNameGT(v string) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldBranchName, v))
}

// BranchNameGTE applies the GTE predicate on the "branch_name" field.
func BranchNameGTE(v string) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldBranchName, v))
}

// BranchNameLT applies the LT predicate on the "branch_name" field.
func BranchNameLT(v string) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldBranchName, v))
}

// BranchNameLTE applies the LTE predicate on the "branch_name" field.
func BranchNameLTE(v string) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldBranchName, v))
}

// BranchNameContains applies the Contains predicate on the "branch_name" field.
func BranchNameContains(v string) predicate.Request {
	return predicate.Request(sql.FieldContains(FieldBranchName, v))
}

// BranchNameHasPrefix applies the HasPrefix predicate on the "branch_name" field.
func BranchNameHasPrefix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasPrefix(FieldBranchName, v))
}

// BranchNameHasSuffix applies the HasSuffix predicate on the "branch_name" field.
func BranchNameHasSuffix(v string) predicate.Request {
	return predicate.Request(sql.FieldHasSuffix(FieldBranchName, v))
}

// BranchNameIsNil applies the IsNil predicate on the "branch_name" field.
func BranchNameIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldBranchName))
}

// BranchNameNotNil applies the NotNil predicate on the "branch_name" field.
func BranchNameNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldBranchName))
}

// BranchNameEqualFold applies the EqualFold predicate on the "branch_name" field.
func BranchNameEqualFold(v string) predicate.Request {
	return predicate.Request(sql.FieldEqualFold(FieldBranchName, v))
}

// BranchNameContainsFold applies the ContainsFold predicate on the "branch_name" field.
func BranchNameContainsFold(v string) predicate.Request {
	return predicate.Request(sql.FieldContainsFold(FieldBranchName, v))
}

// TriggeredAtEQ applies the EQ predicate on the "triggered_at" field.
func TriggeredAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldTriggeredAt, v))
}

// TriggeredAtNEQ applies the NEQ predicate on the "triggered_at" field.
func TriggeredAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldTriggeredAt, v))
}

// TriggeredAtIn applies the In predicate on the "triggered_at" field.
func TriggeredAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldTriggeredAt, vs...))
}

// TriggeredAtNotIn applies the NotIn predicate on the "triggered_at" field.
func TriggeredAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldTriggeredAt, vs...))
}

// TriggeredAtGT applies the GT predicate on the "triggered_at" field.
func TriggeredAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldTriggeredAt, v))
}

// TriggeredAtGTE applies the GTE predicate on the "triggered_at" field.
func TriggeredAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldTriggeredAt, v))
}

// TriggeredAtLT applies the LT predicate on the "triggered_at" field.
func TriggeredAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldTriggeredAt, v))
}

// TriggeredAtLTE applies the LTE predicate on the "triggered_at" field.
func TriggeredAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldTriggeredAt, v))
}

// TriggeredAtIsNil applies the IsNil predicate on the "triggered_at" field.
func TriggeredAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldTriggeredAt))
}

// TriggeredAtNotNil applies the NotNil predicate on the "triggered_at" field.
func TriggeredAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldTriggeredAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldCompletedAt))
}

// ImplementationStatusEQ applies the EQ predicate on the "implementation_status" field.
func ImplementationStatusEQ(v ImplementationStatus) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldImplementationStatus, v))
}

// ImplementationStatusNEQ applies the NEQ predicate on the "implementation_status" field.
func ImplementationStatusNEQ(v ImplementationStatus) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldImplementationStatus, v))
}

// ImplementationStatusIn applies the In predicate on the "implementation_status" field.
func ImplementationStatusIn(vs ...ImplementationStatus) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldImplementationStatus, vs...))
}

// ImplementationStatusNotIn applies the NotIn predicate on the "implementation_status" field.
func ImplementationStatusNotIn(vs ...ImplementationStatus) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldImplementationStatus, vs...))
}

// ImplementationStatusIsNil applies the IsNil predicate on the "implementation_status" field.
func ImplementationStatusIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldImplementationStatus))
}

// ImplementationStatusNotNil applies the NotNil predicate on the "implementation_status" field.
func ImplementationStatusNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldImplementationStatus))
}

// DeploymentStatusEQ applies the EQ predicate on the "deployment_status" field.
func DeploymentStatusEQ(v DeploymentStatus) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeploymentStatus, v))
}

// DeploymentStatusNEQ applies the NEQ predicate on the "deployment_status" field.
func DeploymentStatusNEQ(v DeploymentStatus) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDeploymentStatus, v))
}

// DeploymentStatusIn applies the In predicate on the "deployment_status" field.
func DeploymentStatusIn(vs ...DeploymentStatus) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDeploymentStatus, vs...))
}

// DeploymentStatusNotIn applies the NotIn predicate on the "deployment_status" field.
func DeploymentStatusNotIn(vs ...DeploymentStatus) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDeploymentStatus, vs...))
}

// DeploymentRunIDEQ applies the EQ predicate on the "deployment_run_id" field.
func DeploymentRunIDEQ(v int64) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeploymentRunID, v))
}

// DeploymentRunIDNEQ applies the NEQ predicate on the "deployment_run_id" field.
func DeploymentRunIDNEQ(v int64) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDeploymentRunID, v))
}

// DeploymentRunIDIn applies the In predicate on the "deployment_run_id" field.
func DeploymentRunIDIn(vs ...int64) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDeploymentRunID, vs...))
}

// DeploymentRunIDNotIn applies the NotIn predicate on the "deployment_run_id" field.
func DeploymentRunIDNotIn(vs ...int64) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDeploymentRunID, vs...))
}

// DeploymentRunIDGT applies the GT predicate on the "deployment_run_id" field.
func DeploymentRunIDGT(v int64) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDeploymentRunID, v))
}

// DeploymentRunIDGTE applies the GTE predicate on the "deployment_run_id" field.
func DeploymentRunIDGTE(v int64) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDeploymentRunID, v))
}

// DeploymentRunIDLT applies the LT predicate on the "deployment_run_id" field.
func DeploymentRunIDLT(v int64) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDeploymentRunID, v))
}

// DeploymentRunIDLTE applies the LTE predicate on the "deployment_run_id" field.
func DeploymentRunIDLTE(v int64) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDeploymentRunID, v))
}

// DeploymentRunIDIsNil applies the IsNil predicate on the "deployment_run_id" field.
func DeploymentRunIDIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldDeploymentRunID))
}

// DeploymentRunIDNotNil applies the NotNil predicate on the "deployment_run_id" field.
func DeploymentRunIDNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldDeploymentRunID))
}

// DeployedAtEQ applies the EQ predicate on the "deployed_at" field.
func DeployedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeployedAt, v))
}

// DeployedAtNEQ applies the NEQ predicate on the "deployed_at" field.
func DeployedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDeployedAt, v))
}

// DeployedAtIn applies the In predicate on the "deployed_at" field.
func DeployedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDeployedAt, vs...))
}

// DeployedAtNotIn applies the NotIn predicate on the "deployed_at" field.
func DeployedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDeployedAt, vs...))
}

// DeployedAtGT applies the GT predicate on the "deployed_at" field.
func DeployedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDeployedAt, v))
}

// DeployedAtGTE applies the GTE predicate on the "deployed_at" field.
func DeployedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDeployedAt, v))
}

// DeployedAtLT applies the LT predicate on the "deployed_at" field.
func DeployedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDeployedAt, v))
}

// DeployedAtLTE applies the LTE predicate on the "deployed_at" field.
func DeployedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDeployedAt, v))
}

// DeployedAtIsNil applies the IsNil predicate on the "deployed_at" field.
func DeployedAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldDeployedAt))
}

// DeployedAtNotNil applies the NotNil predicate on the "deployed_at" field.
func DeployedAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldDeployedAt))
}

// DeploymentRetryCountEQ applies the EQ predicate on the "deployment_retry_count" field.
func DeploymentRetryCountEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldDeploymentRetryCount, v))
}

// DeploymentRetryCountNEQ applies the NEQ predicate on the "deployment_retry_count" field.
func DeploymentRetryCountNEQ(v int) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldDeploymentRetryCount, v))
}

// DeploymentRetryCountIn applies the In predicate on the "deployment_retry_count" field.
func DeploymentRetryCountIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldDeploymentRetryCount, vs...))
}

// DeploymentRetryCountNotIn applies the NotIn predicate on the "deployment_retry_count" field.
func DeploymentRetryCountNotIn(vs ...int) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldDeploymentRetryCount, vs...))
}

// DeploymentRetryCountGT applies the GT predicate on the "deployment_retry_count" field.
func DeploymentRetryCountGT(v int) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldDeploymentRetryCount, v))
}

// DeploymentRetryCountGTE applies the GTE predicate on the "deployment_retry_count" field.
func DeploymentRetryCountGTE(v int) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldDeploymentRetryCount, v))
}

// DeploymentRetryCountLT applies the LT predicate on the "deployment_retry_count" field.
func DeploymentRetryCountLT(v int) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldDeploymentRetryCount, v))
}

// DeploymentRetryCountLTE applies the LTE predicate on the "deployment_retry_count" field.
func DeploymentRetryCountLTE(v int) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldDeploymentRetryCount, v))
}

// BranchDeletedEQ applies the EQ predicate on the "branch_deleted" field.
func BranchDeletedEQ(v bool) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldBranchDeleted, v))
}

// BranchDeletedNEQ applies the NEQ predicate on the "branch_deleted" field.
func BranchDeletedNEQ(v bool) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldBranchDeleted, v))
}

// StallNotifiedAtEQ applies the EQ predicate on the "stall_notified_at" field.
func StallNotifiedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldStallNotifiedAt, v))
}

// StallNotifiedAtNEQ applies the NEQ predicate on the "stall_notified_at" field.
func StallNotifiedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldStallNotifiedAt, v))
}

// StallNotifiedAtIn applies the In predicate on the "stall_notified_at" field.
func StallNotifiedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldStallNotifiedAt, vs...))
}

// StallNotifiedAtNotIn applies the NotIn predicate on the "stall_notified_at" field.
func StallNotifiedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldStallNotifiedAt, vs...))
}

// StallNotifiedAtGT applies the GT predicate on the "stall_notified_at" field.
func StallNotifiedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldStallNotifiedAt, v))
}

// StallNotifiedAtGTE applies the GTE predicate on the "stall_notified_at" field.
func StallNotifiedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldStallNotifiedAt, v))
}

// StallNotifiedAtLT applies the LT predicate on the "stall_notified_at" field.
func StallNotifiedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldStallNotifiedAt, v))
}

// StallNotifiedAtLTE applies the LTE predicate on the "stall_notified_at" field.
func StallNotifiedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldStallNotifiedAt, v))
}

// StallNotifiedAtIsNil applies the IsNil predicate on the "stall_notified_at" field.
func StallNotifiedAtIsNil() predicate.Request {
	return predicate.Request(sql.FieldIsNull(FieldStallNotifiedAt))
}

// StallNotifiedAtNotNil applies the NotNil predicate on the "stall_notified_at" field.
func StallNotifiedAtNotNil() predicate.Request {
	return predicate.Request(sql.FieldNotNull(FieldStallNotifiedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Request {
	return predicate.Request(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Request {
	return predicate.Request(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasComments applies the HasEdge predicate on the "comments" edge.
func HasComments() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommentsWith applies the HasEdge predicate on the "comments" edge with a given conditions (other predicates).
func HasCommentsWith(preds ...predicate.Comment) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newCommentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.Attachment) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTriageReviews applies the HasEdge predicate on the "triage_reviews" edge.
func HasTriageReviews() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TriageReviewsTable, TriageReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTriageReviewsWith applies the HasEdge predicate on the "triage_reviews" edge with a given conditions (other predicates).
func HasTriageReviewsWith(preds ...predicate.TriageReview) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newTriageReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArchitectReviews applies the HasEdge predicate on the "architect_reviews" edge.
func HasArchitectReviews() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArchitectReviewsTable, ArchitectReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArchitectReviewsWith applies the HasEdge predicate on the "architect_reviews" edge with a given conditions (other predicates).
func HasArchitectReviewsWith(preds ...predicate.ArchitectReview) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newArchitectReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCodeReviews applies the HasEdge predicate on the "code_reviews" edge.
func HasCodeReviews() predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CodeReviewsTable, CodeReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCodeReviewsWith applies the HasEdge predicate on the "code_reviews" edge with a given conditions (other predicates).
func HasCodeReviewsWith(preds ...predicate.CodeReview) predicate.Request {
	return predicate.Request(func(s *sql.Selector) {
		step := newCodeReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Request) predicate.Request {
	return predicate.Request(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Request) predicate.Request {
	return predicate.Request(sql.NotPredicates(p))
}
