// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/attachment"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/predicate"
	"github.com/conveyor-dev/conveyor/ent/project"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

// RequestUpdate is the builder for updating Request entities.
type RequestUpdate struct {
	config
	hooks    []Hook
	mutation *RequestMutation
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdate) Where(ps ...predicate.Request) *RequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RequestUpdate) SetTitle(v string) *RequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableTitle(v *string) *RequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequestUpdate) SetDescription(v string) *RequestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDescription(v *string) *RequestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSubmitterName sets the "submitter_name" field.
func (_u *RequestUpdate) SetSubmitterName(v string) *RequestUpdate {
	_u.mutation.SetSubmitterName(v)
	return _u
}

// SetNillableSubmitterName sets the "submitter_name" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableSubmitterName(v *string) *RequestUpdate {
	if v != nil {
		_u.SetSubmitterName(*v)
	}
	return _u
}

// ClearSubmitterName clears the value of the "submitter_name" field.
func (_u *RequestUpdate) ClearSubmitterName() *RequestUpdate {
	_u.mutation.ClearSubmitterName()
	return _u
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_u *RequestUpdate) SetSubmitterEmail(v string) *RequestUpdate {
	_u.mutation.SetSubmitterEmail(v)
	return _u
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableSubmitterEmail(v *string) *RequestUpdate {
	if v != nil {
		_u.SetSubmitterEmail(*v)
	}
	return _u
}

// ClearSubmitterEmail clears the value of the "submitter_email" field.
func (_u *RequestUpdate) ClearSubmitterEmail() *RequestUpdate {
	_u.mutation.ClearSubmitterEmail()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *RequestUpdate) SetProjectID(v int) *RequestUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableProjectID(v *int) *RequestUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *RequestUpdate) SetKind(v request.Kind) *RequestUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableKind(v *request.Kind) *RequestUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RequestUpdate) SetPriority(v request.Priority) *RequestUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePriority(v *request.Priority) *RequestUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *RequestUpdate) SetState(v request.State) *RequestUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableState(v *request.State) *RequestUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStepsToReproduce sets the "steps_to_reproduce" field.
func (_u *RequestUpdate) SetStepsToReproduce(v string) *RequestUpdate {
	_u.mutation.SetStepsToReproduce(v)
	return _u
}

// SetNillableStepsToReproduce sets the "steps_to_reproduce" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableStepsToReproduce(v *string) *RequestUpdate {
	if v != nil {
		_u.SetStepsToReproduce(*v)
	}
	return _u
}

// ClearStepsToReproduce clears the value of the "steps_to_reproduce" field.
func (_u *RequestUpdate) ClearStepsToReproduce() *RequestUpdate {
	_u.mutation.ClearStepsToReproduce()
	return _u
}

// SetExpectedBehavior sets the "expected_behavior" field.
func (_u *RequestUpdate) SetExpectedBehavior(v string) *RequestUpdate {
	_u.mutation.SetExpectedBehavior(v)
	return _u
}

// SetNillableExpectedBehavior sets the "expected_behavior" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableExpectedBehavior(v *string) *RequestUpdate {
	if v != nil {
		_u.SetExpectedBehavior(*v)
	}
	return _u
}

// ClearExpectedBehavior clears the value of the "expected_behavior" field.
func (_u *RequestUpdate) ClearExpectedBehavior() *RequestUpdate {
	_u.mutation.ClearExpectedBehavior()
	return _u
}

// SetActualBehavior sets the "actual_behavior" field.
func (_u *RequestUpdate) SetActualBehavior(v string) *RequestUpdate {
	_u.mutation.SetActualBehavior(v)
	return _u
}

// SetNillableActualBehavior sets the "actual_behavior" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableActualBehavior(v *string) *RequestUpdate {
	if v != nil {
		_u.SetActualBehavior(*v)
	}
	return _u
}

// ClearActualBehavior clears the value of the "actual_behavior" field.
func (_u *RequestUpdate) ClearActualBehavior() *RequestUpdate {
	_u.mutation.ClearActualBehavior()
	return _u
}

// SetLastTriageAt sets the "last_triage_at" field.
func (_u *RequestUpdate) SetLastTriageAt(v time.Time) *RequestUpdate {
	_u.mutation.SetLastTriageAt(v)
	return _u
}

// SetNillableLastTriageAt sets the "last_triage_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableLastTriageAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetLastTriageAt(*v)
	}
	return _u
}

// ClearLastTriageAt clears the value of the "last_triage_at" field.
func (_u *RequestUpdate) ClearLastTriageAt() *RequestUpdate {
	_u.mutation.ClearLastTriageAt()
	return _u
}

// SetTriageCount sets the "triage_count" field.
func (_u *RequestUpdate) SetTriageCount(v int) *RequestUpdate {
	_u.mutation.ResetTriageCount()
	_u.mutation.SetTriageCount(v)
	return _u
}

// SetNillableTriageCount sets the "triage_count" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableTriageCount(v *int) *RequestUpdate {
	if v != nil {
		_u.SetTriageCount(*v)
	}
	return _u
}

// AddTriageCount adds value to the "triage_count" field.
func (_u *RequestUpdate) AddTriageCount(v int) *RequestUpdate {
	_u.mutation.AddTriageCount(v)
	return _u
}

// SetLastArchitectAt sets the "last_architect_at" field.
func (_u *RequestUpdate) SetLastArchitectAt(v time.Time) *RequestUpdate {
	_u.mutation.SetLastArchitectAt(v)
	return _u
}

// SetNillableLastArchitectAt sets the "last_architect_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableLastArchitectAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetLastArchitectAt(*v)
	}
	return _u
}

// ClearLastArchitectAt clears the value of the "last_architect_at" field.
func (_u *RequestUpdate) ClearLastArchitectAt() *RequestUpdate {
	_u.mutation.ClearLastArchitectAt()
	return _u
}

// SetArchitectCount sets the "architect_count" field.
func (_u *RequestUpdate) SetArchitectCount(v int) *RequestUpdate {
	_u.mutation.ResetArchitectCount()
	_u.mutation.SetArchitectCount(v)
	return _u
}

// SetNillableArchitectCount sets the "architect_count" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableArchitectCount(v *int) *RequestUpdate {
	if v != nil {
		_u.SetArchitectCount(*v)
	}
	return _u
}

// AddArchitectCount adds value to the "architect_count" field.
func (_u *RequestUpdate) AddArchitectCount(v int) *RequestUpdate {
	_u.mutation.AddArchitectCount(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RequestUpdate) SetSessionID(v string) *RequestUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableSessionID(v *string) *RequestUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RequestUpdate) ClearSessionID() *RequestUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *RequestUpdate) SetIssueNumber(v int) *RequestUpdate {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableIssueNumber(v *int) *RequestUpdate {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *RequestUpdate) AddIssueNumber(v int) *RequestUpdate {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *RequestUpdate) ClearIssueNumber() *RequestUpdate {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *RequestUpdate) SetPrNumber(v int) *RequestUpdate {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePrNumber(v *int) *RequestUpdate {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *RequestUpdate) AddPrNumber(v int) *RequestUpdate {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *RequestUpdate) ClearPrNumber() *RequestUpdate {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *RequestUpdate) SetPrURL(v string) *RequestUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *RequestUpdate) SetNillablePrURL(v *string) *RequestUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *RequestUpdate) ClearPrURL() *RequestUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *RequestUpdate) SetBranchName(v string) *RequestUpdate {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableBranchName(v *string) *RequestUpdate {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *RequestUpdate) ClearBranchName() *RequestUpdate {
	_u.mutation.ClearBranchName()
	return _u
}

// SetTriggeredAt sets the "triggered_at" field.
func (_u *RequestUpdate) SetTriggeredAt(v time.Time) *RequestUpdate {
	_u.mutation.SetTriggeredAt(v)
	return _u
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableTriggeredAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetTriggeredAt(*v)
	}
	return _u
}

// ClearTriggeredAt clears the value of the "triggered_at" field.
func (_u *RequestUpdate) ClearTriggeredAt() *RequestUpdate {
	_u.mutation.ClearTriggeredAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RequestUpdate) SetCompletedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableCompletedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RequestUpdate) ClearCompletedAt() *RequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetImplementationStatus sets the "implementation_status" field.
func (_u *RequestUpdate) SetImplementationStatus(v request.ImplementationStatus) *RequestUpdate {
	_u.mutation.SetImplementationStatus(v)
	return _u
}

// SetNillableImplementationStatus sets the "implementation_status" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableImplementationStatus(v *request.ImplementationStatus) *RequestUpdate {
	if v != nil {
		_u.SetImplementationStatus(*v)
	}
	return _u
}

// ClearImplementationStatus clears the value of the "implementation_status" field.
func (_u *RequestUpdate) ClearImplementationStatus() *RequestUpdate {
	_u.mutation.ClearImplementationStatus()
	return _u
}

// SetDeploymentStatus sets the "deployment_status" field.
func (_u *RequestUpdate) SetDeploymentStatus(v request.DeploymentStatus) *RequestUpdate {
	_u.mutation.SetDeploymentStatus(v)
	return _u
}

// SetNillableDeploymentStatus sets the "deployment_status" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDeploymentStatus(v *request.DeploymentStatus) *RequestUpdate {
	if v != nil {
		_u.SetDeploymentStatus(*v)
	}
	return _u
}

// SetDeploymentRunID sets the "deployment_run_id" field.
func (_u *RequestUpdate) SetDeploymentRunID(v int64) *RequestUpdate {
	_u.mutation.ResetDeploymentRunID()
	_u.mutation.SetDeploymentRunID(v)
	return _u
}

// SetNillableDeploymentRunID sets the "deployment_run_id" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDeploymentRunID(v *int64) *RequestUpdate {
	if v != nil {
		_u.SetDeploymentRunID(*v)
	}
	return _u
}

// AddDeploymentRunID adds value to the "deployment_run_id" field.
func (_u *RequestUpdate) AddDeploymentRunID(v int64) *RequestUpdate {
	_u.mutation.AddDeploymentRunID(v)
	return _u
}

// ClearDeploymentRunID clears the value of the "deployment_run_id" field.
func (_u *RequestUpdate) ClearDeploymentRunID() *RequestUpdate {
	_u.mutation.ClearDeploymentRunID()
	return _u
}

// SetDeployedAt sets the "deployed_at" field.
func (_u *RequestUpdate) SetDeployedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetDeployedAt(v)
	return _u
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDeployedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetDeployedAt(*v)
	}
	return _u
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (_u *RequestUpdate) ClearDeployedAt() *RequestUpdate {
	_u.mutation.ClearDeployedAt()
	return _u
}

// SetDeploymentRetryCount sets the "deployment_retry_count" field.
func (_u *RequestUpdate) SetDeploymentRetryCount(v int) *RequestUpdate {
	_u.mutation.ResetDeploymentRetryCount()
	_u.mutation.SetDeploymentRetryCount(v)
	return _u
}

// SetNillableDeploymentRetryCount sets the "deployment_retry_count" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableDeploymentRetryCount(v *int) *RequestUpdate {
	if v != nil {
		_u.SetDeploymentRetryCount(*v)
	}
	return _u
}

// AddDeploymentRetryCount adds value to the "deployment_retry_count" field.
func (_u *RequestUpdate) AddDeploymentRetryCount(v int) *RequestUpdate {
	_u.mutation.AddDeploymentRetryCount(v)
	return _u
}

// SetBranchDeleted sets the "branch_deleted" field.
func (_u *RequestUpdate) SetBranchDeleted(v bool) *RequestUpdate {
	_u.mutation.SetBranchDeleted(v)
	return _u
}

// SetNillableBranchDeleted sets the "branch_deleted" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableBranchDeleted(v *bool) *RequestUpdate {
	if v != nil {
		_u.SetBranchDeleted(*v)
	}
	return _u
}

// SetStallNotifiedAt sets the "stall_notified_at" field.
func (_u *RequestUpdate) SetStallNotifiedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetStallNotifiedAt(v)
	return _u
}

// SetNillableStallNotifiedAt sets the "stall_notified_at" field if the given value is not nil.
func (_u *RequestUpdate) SetNillableStallNotifiedAt(v *time.Time) *RequestUpdate {
	if v != nil {
		_u.SetStallNotifiedAt(*v)
	}
	return _u
}

// ClearStallNotifiedAt clears the value of the "stall_notified_at" field.
func (_u *RequestUpdate) ClearStallNotifiedAt() *RequestUpdate {
	_u.mutation.ClearStallNotifiedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdate) SetUpdatedAt(v time.Time) *RequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *RequestUpdate) SetProject(v *Project) *RequestUpdate {
	return _u.SetProjectID(v.ID)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (_u *RequestUpdate) AddCommentIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the Comment entity.
func (_u *RequestUpdate) AddComments(v ...*Comment) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *RequestUpdate) AddAttachmentIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *RequestUpdate) AddAttachments(v ...*Attachment) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddTriageReviewIDs adds the "triage_reviews" edge to the TriageReview entity by IDs.
func (_u *RequestUpdate) AddTriageReviewIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddTriageReviewIDs(ids...)
	return _u
}

// AddTriageReviews adds the "triage_reviews" edges to the TriageReview entity.
func (_u *RequestUpdate) AddTriageReviews(v ...*TriageReview) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTriageReviewIDs(ids...)
}

// AddArchitectReviewIDs adds the "architect_reviews" edge to the ArchitectReview entity by IDs.
func (_u *RequestUpdate) AddArchitectReviewIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddArchitectReviewIDs(ids...)
	return _u
}

// AddArchitectReviews adds the "architect_reviews" edges to the ArchitectReview entity.
func (_u *RequestUpdate) AddArchitectReviews(v ...*ArchitectReview) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArchitectReviewIDs(ids...)
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by IDs.
func (_u *RequestUpdate) AddCodeReviewIDs(ids ...string) *RequestUpdate {
	_u.mutation.AddCodeReviewIDs(ids...)
	return _u
}

// AddCodeReviews adds the "code_reviews" edges to the CodeReview entity.
func (_u *RequestUpdate) AddCodeReviews(v ...*CodeReview) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeReviewIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdate) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *RequestUpdate) ClearProject() *RequestUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearComments clears all "comments" edges to the Comment entity.
func (_u *RequestUpdate) ClearComments() *RequestUpdate {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to Comment entities by IDs.
func (_u *RequestUpdate) RemoveCommentIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to Comment entities.
func (_u *RequestUpdate) RemoveComments(v ...*Comment) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *RequestUpdate) ClearAttachments() *RequestUpdate {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *RequestUpdate) RemoveAttachmentIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *RequestUpdate) RemoveAttachments(v ...*Attachment) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearTriageReviews clears all "triage_reviews" edges to the TriageReview entity.
func (_u *RequestUpdate) ClearTriageReviews() *RequestUpdate {
	_u.mutation.ClearTriageReviews()
	return _u
}

// RemoveTriageReviewIDs removes the "triage_reviews" edge to TriageReview entities by IDs.
func (_u *RequestUpdate) RemoveTriageReviewIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveTriageReviewIDs(ids...)
	return _u
}

// RemoveTriageReviews removes "triage_reviews" edges to TriageReview entities.
func (_u *RequestUpdate) RemoveTriageReviews(v ...*TriageReview) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTriageReviewIDs(ids...)
}

// ClearArchitectReviews clears all "architect_reviews" edges to the ArchitectReview entity.
func (_u *RequestUpdate) ClearArchitectReviews() *RequestUpdate {
	_u.mutation.ClearArchitectReviews()
	return _u
}

// RemoveArchitectReviewIDs removes the "architect_reviews" edge to ArchitectReview entities by IDs.
func (_u *RequestUpdate) RemoveArchitectReviewIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveArchitectReviewIDs(ids...)
	return _u
}

// RemoveArchitectReviews removes "architect_reviews" edges to ArchitectReview entities.
func (_u *RequestUpdate) RemoveArchitectReviews(v ...*ArchitectReview) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArchitectReviewIDs(ids...)
}

// ClearCodeReviews clears all "code_reviews" edges to the CodeReview entity.
func (_u *RequestUpdate) ClearCodeReviews() *RequestUpdate {
	_u.mutation.ClearCodeReviews()
	return _u
}

// RemoveCodeReviewIDs removes the "code_reviews" edge to CodeReview entities by IDs.
func (_u *RequestUpdate) RemoveCodeReviewIDs(ids ...string) *RequestUpdate {
	_u.mutation.RemoveCodeReviewIDs(ids...)
	return _u
}

// RemoveCodeReviews removes "code_reviews" edges to CodeReview entities.
func (_u *RequestUpdate) RemoveCodeReviews(v ...*CodeReview) *RequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeReviewIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := request.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Request.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := request.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Request.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImplementationStatus(); ok {
		if err := request.ImplementationStatusValidator(v); err != nil {
			return &ValidationError{Name: "implementation_status", err: fmt.Errorf(`ent: validator failed for field "Request.implementation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeploymentStatus(); ok {
		if err := request.DeploymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "deployment_status", err: fmt.Errorf(`ent: validator failed for field "Request.deployment_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Request.project"`)
	}
	return nil
}

func (_u *RequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(request.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterName(); ok {
		_spec.SetField(request.FieldSubmitterName, field.TypeString, value)
	}
	if _u.mutation.SubmitterNameCleared() {
		_spec.ClearField(request.FieldSubmitterName, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterEmail(); ok {
		_spec.SetField(request.FieldSubmitterEmail, field.TypeString, value)
	}
	if _u.mutation.SubmitterEmailCleared() {
		_spec.ClearField(request.FieldSubmitterEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(request.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(request.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepsToReproduce(); ok {
		_spec.SetField(request.FieldStepsToReproduce, field.TypeString, value)
	}
	if _u.mutation.StepsToReproduceCleared() {
		_spec.ClearField(request.FieldStepsToReproduce, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedBehavior(); ok {
		_spec.SetField(request.FieldExpectedBehavior, field.TypeString, value)
	}
	if _u.mutation.ExpectedBehaviorCleared() {
		_spec.ClearField(request.FieldExpectedBehavior, field.TypeString)
	}
	if value, ok := _u.mutation.ActualBehavior(); ok {
		_spec.SetField(request.FieldActualBehavior, field.TypeString, value)
	}
	if _u.mutation.ActualBehaviorCleared() {
		_spec.ClearField(request.FieldActualBehavior, field.TypeString)
	}
	if value, ok := _u.mutation.LastTriageAt(); ok {
		_spec.SetField(request.FieldLastTriageAt, field.TypeTime, value)
	}
	if _u.mutation.LastTriageAtCleared() {
		_spec.ClearField(request.FieldLastTriageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TriageCount(); ok {
		_spec.SetField(request.FieldTriageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriageCount(); ok {
		_spec.AddField(request.FieldTriageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastArchitectAt(); ok {
		_spec.SetField(request.FieldLastArchitectAt, field.TypeTime, value)
	}
	if _u.mutation.LastArchitectAtCleared() {
		_spec.ClearField(request.FieldLastArchitectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchitectCount(); ok {
		_spec.SetField(request.FieldArchitectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArchitectCount(); ok {
		_spec.AddField(request.FieldArchitectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(request.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(request.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(request.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(request.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(request.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(request.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(request.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(request.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(request.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(request.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.TriggeredAt(); ok {
		_spec.SetField(request.FieldTriggeredAt, field.TypeTime, value)
	}
	if _u.mutation.TriggeredAtCleared() {
		_spec.ClearField(request.FieldTriggeredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(request.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(request.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ImplementationStatus(); ok {
		_spec.SetField(request.FieldImplementationStatus, field.TypeEnum, value)
	}
	if _u.mutation.ImplementationStatusCleared() {
		_spec.ClearField(request.FieldImplementationStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.DeploymentStatus(); ok {
		_spec.SetField(request.FieldDeploymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeploymentRunID(); ok {
		_spec.SetField(request.FieldDeploymentRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeploymentRunID(); ok {
		_spec.AddField(request.FieldDeploymentRunID, field.TypeInt64, value)
	}
	if _u.mutation.DeploymentRunIDCleared() {
		_spec.ClearField(request.FieldDeploymentRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DeployedAt(); ok {
		_spec.SetField(request.FieldDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.DeployedAtCleared() {
		_spec.ClearField(request.FieldDeployedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeploymentRetryCount(); ok {
		_spec.SetField(request.FieldDeploymentRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeploymentRetryCount(); ok {
		_spec.AddField(request.FieldDeploymentRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BranchDeleted(); ok {
		_spec.SetField(request.FieldBranchDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StallNotifiedAt(); ok {
		_spec.SetField(request.FieldStallNotifiedAt, field.TypeTime, value)
	}
	if _u.mutation.StallNotifiedAtCleared() {
		_spec.ClearField(request.FieldStallNotifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   request.ProjectTable,
			Columns: []string{request.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   request.ProjectTable,
			Columns: []string{request.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CommentsTable,
			Columns: []string{request.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CommentsTable,
			Columns: []string{request.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CommentsTable,
			Columns: []string{request.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AttachmentsTable,
			Columns: []string{request.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AttachmentsTable,
			Columns: []string{request.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AttachmentsTable,
			Columns: []string{request.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TriageReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TriageReviewsTable,
			Columns: []string{request.TriageReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriageReviewsIDs(); len(nodes) > 0 && !_u.mutation.TriageReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TriageReviewsTable,
			Columns: []string{request.TriageReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriageReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TriageReviewsTable,
			Columns: []string{request.TriageReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchitectReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ArchitectReviewsTable,
			Columns: []string{request.ArchitectReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArchitectReviewsIDs(); len(nodes) > 0 && !_u.mutation.ArchitectReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ArchitectReviewsTable,
			Columns: []string{request.ArchitectReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchitectReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ArchitectReviewsTable,
			Columns: []string{request.ArchitectReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CodeReviewsTable,
			Columns: []string{request.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodeReviewsIDs(); len(nodes) > 0 && !_u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CodeReviewsTable,
			Columns: []string{request.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CodeReviewsTable,
			Columns: []string{request.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestUpdateOne is the builder for updating a single Request entity.
type RequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestMutation
}

// SetTitle sets the "title" field.
func (_u *RequestUpdateOne) SetTitle(v string) *RequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableTitle(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RequestUpdateOne) SetDescription(v string) *RequestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDescription(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSubmitterName sets the "submitter_name" field.
func (_u *RequestUpdateOne) SetSubmitterName(v string) *RequestUpdateOne {
	_u.mutation.SetSubmitterName(v)
	return _u
}

// SetNillableSubmitterName sets the "submitter_name" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableSubmitterName(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetSubmitterName(*v)
	}
	return _u
}

// ClearSubmitterName clears the value of the "submitter_name" field.
func (_u *RequestUpdateOne) ClearSubmitterName() *RequestUpdateOne {
	_u.mutation.ClearSubmitterName()
	return _u
}

// SetSubmitterEmail sets the "submitter_email" field.
func (_u *RequestUpdateOne) SetSubmitterEmail(v string) *RequestUpdateOne {
	_u.mutation.SetSubmitterEmail(v)
	return _u
}

// SetNillableSubmitterEmail sets the "submitter_email" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableSubmitterEmail(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetSubmitterEmail(*v)
	}
	return _u
}

// ClearSubmitterEmail clears the value of the "submitter_email" field.
func (_u *RequestUpdateOne) ClearSubmitterEmail() *RequestUpdateOne {
	_u.mutation.ClearSubmitterEmail()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *RequestUpdateOne) SetProjectID(v int) *RequestUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableProjectID(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *RequestUpdateOne) SetKind(v request.Kind) *RequestUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableKind(v *request.Kind) *RequestUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RequestUpdateOne) SetPriority(v request.Priority) *RequestUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePriority(v *request.Priority) *RequestUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *RequestUpdateOne) SetState(v request.State) *RequestUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableState(v *request.State) *RequestUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStepsToReproduce sets the "steps_to_reproduce" field.
func (_u *RequestUpdateOne) SetStepsToReproduce(v string) *RequestUpdateOne {
	_u.mutation.SetStepsToReproduce(v)
	return _u
}

// SetNillableStepsToReproduce sets the "steps_to_reproduce" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableStepsToReproduce(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetStepsToReproduce(*v)
	}
	return _u
}

// ClearStepsToReproduce clears the value of the "steps_to_reproduce" field.
func (_u *RequestUpdateOne) ClearStepsToReproduce() *RequestUpdateOne {
	_u.mutation.ClearStepsToReproduce()
	return _u
}

// SetExpectedBehavior sets the "expected_behavior" field.
func (_u *RequestUpdateOne) SetExpectedBehavior(v string) *RequestUpdateOne {
	_u.mutation.SetExpectedBehavior(v)
	return _u
}

// SetNillableExpectedBehavior sets the "expected_behavior" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableExpectedBehavior(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetExpectedBehavior(*v)
	}
	return _u
}

// ClearExpectedBehavior clears the value of the "expected_behavior" field.
func (_u *RequestUpdateOne) ClearExpectedBehavior() *RequestUpdateOne {
	_u.mutation.ClearExpectedBehavior()
	return _u
}

// SetActualBehavior sets the "actual_behavior" field.
func (_u *RequestUpdateOne) SetActualBehavior(v string) *RequestUpdateOne {
	_u.mutation.SetActualBehavior(v)
	return _u
}

// SetNillableActualBehavior sets the "actual_behavior" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableActualBehavior(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetActualBehavior(*v)
	}
	return _u
}

// ClearActualBehavior clears the value of the "actual_behavior" field.
func (_u *RequestUpdateOne) ClearActualBehavior() *RequestUpdateOne {
	_u.mutation.ClearActualBehavior()
	return _u
}

// SetLastTriageAt sets the "last_triage_at" field.
func (_u *RequestUpdateOne) SetLastTriageAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetLastTriageAt(v)
	return _u
}

// SetNillableLastTriageAt sets the "last_triage_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableLastTriageAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetLastTriageAt(*v)
	}
	return _u
}

// ClearLastTriageAt clears the value of the "last_triage_at" field.
func (_u *RequestUpdateOne) ClearLastTriageAt() *RequestUpdateOne {
	_u.mutation.ClearLastTriageAt()
	return _u
}

// SetTriageCount sets the "triage_count" field.
func (_u *RequestUpdateOne) SetTriageCount(v int) *RequestUpdateOne {
	_u.mutation.ResetTriageCount()
	_u.mutation.SetTriageCount(v)
	return _u
}

// SetNillableTriageCount sets the "triage_count" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableTriageCount(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetTriageCount(*v)
	}
	return _u
}

// AddTriageCount adds value to the "triage_count" field.
func (_u *RequestUpdateOne) AddTriageCount(v int) *RequestUpdateOne {
	_u.mutation.AddTriageCount(v)
	return _u
}

// SetLastArchitectAt sets the "last_architect_at" field.
func (_u *RequestUpdateOne) SetLastArchitectAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetLastArchitectAt(v)
	return _u
}

// SetNillableLastArchitectAt sets the "last_architect_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableLastArchitectAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetLastArchitectAt(*v)
	}
	return _u
}

// ClearLastArchitectAt clears the value of the "last_architect_at" field.
func (_u *RequestUpdateOne) ClearLastArchitectAt() *RequestUpdateOne {
	_u.mutation.ClearLastArchitectAt()
	return _u
}

// SetArchitectCount sets the "architect_count" field.
func (_u *RequestUpdateOne) SetArchitectCount(v int) *RequestUpdateOne {
	_u.mutation.ResetArchitectCount()
	_u.mutation.SetArchitectCount(v)
	return _u
}

// SetNillableArchitectCount sets the "architect_count" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableArchitectCount(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetArchitectCount(*v)
	}
	return _u
}

// AddArchitectCount adds value to the "architect_count" field.
func (_u *RequestUpdateOne) AddArchitectCount(v int) *RequestUpdateOne {
	_u.mutation.AddArchitectCount(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RequestUpdateOne) SetSessionID(v string) *RequestUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableSessionID(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RequestUpdateOne) ClearSessionID() *RequestUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetIssueNumber sets the "issue_number" field.
func (_u *RequestUpdateOne) SetIssueNumber(v int) *RequestUpdateOne {
	_u.mutation.ResetIssueNumber()
	_u.mutation.SetIssueNumber(v)
	return _u
}

// SetNillableIssueNumber sets the "issue_number" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableIssueNumber(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetIssueNumber(*v)
	}
	return _u
}

// AddIssueNumber adds value to the "issue_number" field.
func (_u *RequestUpdateOne) AddIssueNumber(v int) *RequestUpdateOne {
	_u.mutation.AddIssueNumber(v)
	return _u
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (_u *RequestUpdateOne) ClearIssueNumber() *RequestUpdateOne {
	_u.mutation.ClearIssueNumber()
	return _u
}

// SetPrNumber sets the "pr_number" field.
func (_u *RequestUpdateOne) SetPrNumber(v int) *RequestUpdateOne {
	_u.mutation.ResetPrNumber()
	_u.mutation.SetPrNumber(v)
	return _u
}

// SetNillablePrNumber sets the "pr_number" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePrNumber(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetPrNumber(*v)
	}
	return _u
}

// AddPrNumber adds value to the "pr_number" field.
func (_u *RequestUpdateOne) AddPrNumber(v int) *RequestUpdateOne {
	_u.mutation.AddPrNumber(v)
	return _u
}

// ClearPrNumber clears the value of the "pr_number" field.
func (_u *RequestUpdateOne) ClearPrNumber() *RequestUpdateOne {
	_u.mutation.ClearPrNumber()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *RequestUpdateOne) SetPrURL(v string) *RequestUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillablePrURL(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *RequestUpdateOne) ClearPrURL() *RequestUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetBranchName sets the "branch_name" field.
func (_u *RequestUpdateOne) SetBranchName(v string) *RequestUpdateOne {
	_u.mutation.SetBranchName(v)
	return _u
}

// SetNillableBranchName sets the "branch_name" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableBranchName(v *string) *RequestUpdateOne {
	if v != nil {
		_u.SetBranchName(*v)
	}
	return _u
}

// ClearBranchName clears the value of the "branch_name" field.
func (_u *RequestUpdateOne) ClearBranchName() *RequestUpdateOne {
	_u.mutation.ClearBranchName()
	return _u
}

// SetTriggeredAt sets the "triggered_at" field.
func (_u *RequestUpdateOne) SetTriggeredAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetTriggeredAt(v)
	return _u
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableTriggeredAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetTriggeredAt(*v)
	}
	return _u
}

// ClearTriggeredAt clears the value of the "triggered_at" field.
func (_u *RequestUpdateOne) ClearTriggeredAt() *RequestUpdateOne {
	_u.mutation.ClearTriggeredAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RequestUpdateOne) SetCompletedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableCompletedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RequestUpdateOne) ClearCompletedAt() *RequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetImplementationStatus sets the "implementation_status" field.
func (_u *RequestUpdateOne) SetImplementationStatus(v request.ImplementationStatus) *RequestUpdateOne {
	_u.mutation.SetImplementationStatus(v)
	return _u
}

// SetNillableImplementationStatus sets the "implementation_status" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableImplementationStatus(v *request.ImplementationStatus) *RequestUpdateOne {
	if v != nil {
		_u.SetImplementationStatus(*v)
	}
	return _u
}

// ClearImplementationStatus clears the value of the "implementation_status" field.
func (_u *RequestUpdateOne) ClearImplementationStatus() *RequestUpdateOne {
	_u.mutation.ClearImplementationStatus()
	return _u
}

// SetDeploymentStatus sets the "deployment_status" field.
func (_u *RequestUpdateOne) SetDeploymentStatus(v request.DeploymentStatus) *RequestUpdateOne {
	_u.mutation.SetDeploymentStatus(v)
	return _u
}

// SetNillableDeploymentStatus sets the "deployment_status" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDeploymentStatus(v *request.DeploymentStatus) *RequestUpdateOne {
	if v != nil {
		_u.SetDeploymentStatus(*v)
	}
	return _u
}

// SetDeploymentRunID sets the "deployment_run_id" field.
func (_u *RequestUpdateOne) SetDeploymentRunID(v int64) *RequestUpdateOne {
	_u.mutation.ResetDeploymentRunID()
	_u.mutation.SetDeploymentRunID(v)
	return _u
}

// SetNillableDeploymentRunID sets the "deployment_run_id" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDeploymentRunID(v *int64) *RequestUpdateOne {
	if v != nil {
		_u.SetDeploymentRunID(*v)
	}
	return _u
}

// AddDeploymentRunID adds value to the "deployment_run_id" field.
func (_u *RequestUpdateOne) AddDeploymentRunID(v int64) *RequestUpdateOne {
	_u.mutation.AddDeploymentRunID(v)
	return _u
}

// ClearDeploymentRunID clears the value of the "deployment_run_id" field.
func (_u *RequestUpdateOne) ClearDeploymentRunID() *RequestUpdateOne {
	_u.mutation.ClearDeploymentRunID()
	return _u
}

// SetDeployedAt sets the "deployed_at" field.
func (_u *RequestUpdateOne) SetDeployedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetDeployedAt(v)
	return _u
}

// SetNillableDeployedAt sets the "deployed_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDeployedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetDeployedAt(*v)
	}
	return _u
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (_u *RequestUpdateOne) ClearDeployedAt() *RequestUpdateOne {
	_u.mutation.ClearDeployedAt()
	return _u
}

// SetDeploymentRetryCount sets the "deployment_retry_count" field.
func (_u *RequestUpdateOne) SetDeploymentRetryCount(v int) *RequestUpdateOne {
	_u.mutation.ResetDeploymentRetryCount()
	_u.mutation.SetDeploymentRetryCount(v)
	return _u
}

// SetNillableDeploymentRetryCount sets the "deployment_retry_count" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableDeploymentRetryCount(v *int) *RequestUpdateOne {
	if v != nil {
		_u.SetDeploymentRetryCount(*v)
	}
	return _u
}

// AddDeploymentRetryCount adds value to the "deployment_retry_count" field.
func (_u *RequestUpdateOne) AddDeploymentRetryCount(v int) *RequestUpdateOne {
	_u.mutation.AddDeploymentRetryCount(v)
	return _u
}

// SetBranchDeleted sets the "branch_deleted" field.
func (_u *RequestUpdateOne) SetBranchDeleted(v bool) *RequestUpdateOne {
	_u.mutation.SetBranchDeleted(v)
	return _u
}

// SetNillableBranchDeleted sets the "branch_deleted" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableBranchDeleted(v *bool) *RequestUpdateOne {
	if v != nil {
		_u.SetBranchDeleted(*v)
	}
	return _u
}

// SetStallNotifiedAt sets the "stall_notified_at" field.
func (_u *RequestUpdateOne) SetStallNotifiedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetStallNotifiedAt(v)
	return _u
}

// SetNillableStallNotifiedAt sets the "stall_notified_at" field if the given value is not nil.
func (_u *RequestUpdateOne) SetNillableStallNotifiedAt(v *time.Time) *RequestUpdateOne {
	if v != nil {
		_u.SetStallNotifiedAt(*v)
	}
	return _u
}

// ClearStallNotifiedAt clears the value of the "stall_notified_at" field.
func (_u *RequestUpdateOne) ClearStallNotifiedAt() *RequestUpdateOne {
	_u.mutation.ClearStallNotifiedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RequestUpdateOne) SetUpdatedAt(v time.Time) *RequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *RequestUpdateOne) SetProject(v *Project) *RequestUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddCommentIDs adds the "comments" edge to the Comment entity by IDs.
func (_u *RequestUpdateOne) AddCommentIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddCommentIDs(ids...)
	return _u
}

// AddComments adds the "comments" edges to the Comment entity.
func (_u *RequestUpdateOne) AddComments(v ...*Comment) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCommentIDs(ids...)
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by IDs.
func (_u *RequestUpdateOne) AddAttachmentIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddAttachmentIDs(ids...)
	return _u
}

// AddAttachments adds the "attachments" edges to the Attachment entity.
func (_u *RequestUpdateOne) AddAttachments(v ...*Attachment) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttachmentIDs(ids...)
}

// AddTriageReviewIDs adds the "triage_reviews" edge to the TriageReview entity by IDs.
func (_u *RequestUpdateOne) AddTriageReviewIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddTriageReviewIDs(ids...)
	return _u
}

// AddTriageReviews adds the "triage_reviews" edges to the TriageReview entity.
func (_u *RequestUpdateOne) AddTriageReviews(v ...*TriageReview) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTriageReviewIDs(ids...)
}

// AddArchitectReviewIDs adds the "architect_reviews" edge to the ArchitectReview entity by IDs.
func (_u *RequestUpdateOne) AddArchitectReviewIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddArchitectReviewIDs(ids...)
	return _u
}

// AddArchitectReviews adds the "architect_reviews" edges to the ArchitectReview entity.
func (_u *RequestUpdateOne) AddArchitectReviews(v ...*ArchitectReview) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArchitectReviewIDs(ids...)
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by IDs.
func (_u *RequestUpdateOne) AddCodeReviewIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.AddCodeReviewIDs(ids...)
	return _u
}

// AddCodeReviews adds the "code_reviews" edges to the CodeReview entity.
func (_u *RequestUpdateOne) AddCodeReviews(v ...*CodeReview) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCodeReviewIDs(ids...)
}

// Mutation returns the RequestMutation object of the builder.
func (_u *RequestUpdateOne) Mutation() *RequestMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *RequestUpdateOne) ClearProject() *RequestUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearComments clears all "comments" edges to the Comment entity.
func (_u *RequestUpdateOne) ClearComments() *RequestUpdateOne {
	_u.mutation.ClearComments()
	return _u
}

// RemoveCommentIDs removes the "comments" edge to Comment entities by IDs.
func (_u *RequestUpdateOne) RemoveCommentIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveCommentIDs(ids...)
	return _u
}

// RemoveComments removes "comments" edges to Comment entities.
func (_u *RequestUpdateOne) RemoveComments(v ...*Comment) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCommentIDs(ids...)
}

// ClearAttachments clears all "attachments" edges to the Attachment entity.
func (_u *RequestUpdateOne) ClearAttachments() *RequestUpdateOne {
	_u.mutation.ClearAttachments()
	return _u
}

// RemoveAttachmentIDs removes the "attachments" edge to Attachment entities by IDs.
func (_u *RequestUpdateOne) RemoveAttachmentIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveAttachmentIDs(ids...)
	return _u
}

// RemoveAttachments removes "attachments" edges to Attachment entities.
func (_u *RequestUpdateOne) RemoveAttachments(v ...*Attachment) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttachmentIDs(ids...)
}

// ClearTriageReviews clears all "triage_reviews" edges to the TriageReview entity.
func (_u *RequestUpdateOne) ClearTriageReviews() *RequestUpdateOne {
	_u.mutation.ClearTriageReviews()
	return _u
}

// RemoveTriageReviewIDs removes the "triage_reviews" edge to TriageReview entities by IDs.
func (_u *RequestUpdateOne) RemoveTriageReviewIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveTriageReviewIDs(ids...)
	return _u
}

// RemoveTriageReviews removes "triage_reviews" edges to TriageReview entities.
func (_u *RequestUpdateOne) RemoveTriageReviews(v ...*TriageReview) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTriageReviewIDs(ids...)
}

// ClearArchitectReviews clears all "architect_reviews" edges to the ArchitectReview entity.
func (_u *RequestUpdateOne) ClearArchitectReviews() *RequestUpdateOne {
	_u.mutation.ClearArchitectReviews()
	return _u
}

// RemoveArchitectReviewIDs removes the "architect_reviews" edge to ArchitectReview entities by IDs.
func (_u *RequestUpdateOne) RemoveArchitectReviewIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveArchitectReviewIDs(ids...)
	return _u
}

// RemoveArchitectReviews removes "architect_reviews" edges to ArchitectReview entities.
func (_u *RequestUpdateOne) RemoveArchitectReviews(v ...*ArchitectReview) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArchitectReviewIDs(ids...)
}

// ClearCodeReviews clears all "code_reviews" edges to the CodeReview entity.
func (_u *RequestUpdateOne) ClearCodeReviews() *RequestUpdateOne {
	_u.mutation.ClearCodeReviews()
	return _u
}

// RemoveCodeReviewIDs removes the "code_reviews" edge to CodeReview entities by IDs.
func (_u *RequestUpdateOne) RemoveCodeReviewIDs(ids ...string) *RequestUpdateOne {
	_u.mutation.RemoveCodeReviewIDs(ids...)
	return _u
}

// RemoveCodeReviews removes "code_reviews" edges to CodeReview entities.
func (_u *RequestUpdateOne) RemoveCodeReviews(v ...*CodeReview) *RequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCodeReviewIDs(ids...)
}

// Where appends a list predicates to the RequestUpdate builder.
func (_u *RequestUpdateOne) Where(ps ...predicate.Request) *RequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestUpdateOne) Select(field string, fields ...string) *RequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Request entity.
func (_u *RequestUpdateOne) Save(ctx context.Context) (*Request, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestUpdateOne) SaveX(ctx context.Context) *Request {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := request.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := request.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Request.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := request.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Request.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := request.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Request.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImplementationStatus(); ok {
		if err := request.ImplementationStatusValidator(v); err != nil {
			return &ValidationError{Name: "implementation_status", err: fmt.Errorf(`ent: validator failed for field "Request.implementation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeploymentStatus(); ok {
		if err := request.DeploymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "deployment_status", err: fmt.Errorf(`ent: validator failed for field "Request.deployment_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Request.project"`)
	}
	return nil
}

func (_u *RequestUpdateOne) sqlSave(ctx context.Context) (_node *Request, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(request.Table, request.Columns, sqlgraph.NewFieldSpec(request.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Request.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, request.FieldID)
		for _, f := range fields {
			if !request.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != request.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(request.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(request.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubmitterName(); ok {
		_spec.SetField(request.FieldSubmitterName, field.TypeString, value)
	}
	if _u.mutation.SubmitterNameCleared() {
		_spec.ClearField(request.FieldSubmitterName, field.TypeString)
	}
	if value, ok := _u.mutation.SubmitterEmail(); ok {
		_spec.SetField(request.FieldSubmitterEmail, field.TypeString, value)
	}
	if _u.mutation.SubmitterEmailCleared() {
		_spec.ClearField(request.FieldSubmitterEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(request.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(request.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(request.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepsToReproduce(); ok {
		_spec.SetField(request.FieldStepsToReproduce, field.TypeString, value)
	}
	if _u.mutation.StepsToReproduceCleared() {
		_spec.ClearField(request.FieldStepsToReproduce, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedBehavior(); ok {
		_spec.SetField(request.FieldExpectedBehavior, field.TypeString, value)
	}
	if _u.mutation.ExpectedBehaviorCleared() {
		_spec.ClearField(request.FieldExpectedBehavior, field.TypeString)
	}
	if value, ok := _u.mutation.ActualBehavior(); ok {
		_spec.SetField(request.FieldActualBehavior, field.TypeString, value)
	}
	if _u.mutation.ActualBehaviorCleared() {
		_spec.ClearField(request.FieldActualBehavior, field.TypeString)
	}
	if value, ok := _u.mutation.LastTriageAt(); ok {
		_spec.SetField(request.FieldLastTriageAt, field.TypeTime, value)
	}
	if _u.mutation.LastTriageAtCleared() {
		_spec.ClearField(request.FieldLastTriageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TriageCount(); ok {
		_spec.SetField(request.FieldTriageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriageCount(); ok {
		_spec.AddField(request.FieldTriageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastArchitectAt(); ok {
		_spec.SetField(request.FieldLastArchitectAt, field.TypeTime, value)
	}
	if _u.mutation.LastArchitectAtCleared() {
		_spec.ClearField(request.FieldLastArchitectAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ArchitectCount(); ok {
		_spec.SetField(request.FieldArchitectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArchitectCount(); ok {
		_spec.AddField(request.FieldArchitectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(request.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(request.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.IssueNumber(); ok {
		_spec.SetField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIssueNumber(); ok {
		_spec.AddField(request.FieldIssueNumber, field.TypeInt, value)
	}
	if _u.mutation.IssueNumberCleared() {
		_spec.ClearField(request.FieldIssueNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrNumber(); ok {
		_spec.SetField(request.FieldPrNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrNumber(); ok {
		_spec.AddField(request.FieldPrNumber, field.TypeInt, value)
	}
	if _u.mutation.PrNumberCleared() {
		_spec.ClearField(request.FieldPrNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(request.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(request.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.BranchName(); ok {
		_spec.SetField(request.FieldBranchName, field.TypeString, value)
	}
	if _u.mutation.BranchNameCleared() {
		_spec.ClearField(request.FieldBranchName, field.TypeString)
	}
	if value, ok := _u.mutation.TriggeredAt(); ok {
		_spec.SetField(request.FieldTriggeredAt, field.TypeTime, value)
	}
	if _u.mutation.TriggeredAtCleared() {
		_spec.ClearField(request.FieldTriggeredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(request.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(request.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ImplementationStatus(); ok {
		_spec.SetField(request.FieldImplementationStatus, field.TypeEnum, value)
	}
	if _u.mutation.ImplementationStatusCleared() {
		_spec.ClearField(request.FieldImplementationStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.DeploymentStatus(); ok {
		_spec.SetField(request.FieldDeploymentStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DeploymentRunID(); ok {
		_spec.SetField(request.FieldDeploymentRunID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDeploymentRunID(); ok {
		_spec.AddField(request.FieldDeploymentRunID, field.TypeInt64, value)
	}
	if _u.mutation.DeploymentRunIDCleared() {
		_spec.ClearField(request.FieldDeploymentRunID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DeployedAt(); ok {
		_spec.SetField(request.FieldDeployedAt, field.TypeTime, value)
	}
	if _u.mutation.DeployedAtCleared() {
		_spec.ClearField(request.FieldDeployedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeploymentRetryCount(); ok {
		_spec.SetField(request.FieldDeploymentRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeploymentRetryCount(); ok {
		_spec.AddField(request.FieldDeploymentRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BranchDeleted(); ok {
		_spec.SetField(request.FieldBranchDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StallNotifiedAt(); ok {
		_spec.SetField(request.FieldStallNotifiedAt, field.TypeTime, value)
	}
	if _u.mutation.StallNotifiedAtCleared() {
		_spec.ClearField(request.FieldStallNotifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(request.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   request.ProjectTable,
			Columns: []string{request.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   request.ProjectTable,
			Columns: []string{request.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CommentsTable,
			Columns: []string{request.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCommentsIDs(); len(nodes) > 0 && !_u.mutation.CommentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CommentsTable,
			Columns: []string{request.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CommentsTable,
			Columns: []string{request.CommentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AttachmentsTable,
			Columns: []string{request.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttachmentsIDs(); len(nodes) > 0 && !_u.mutation.AttachmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AttachmentsTable,
			Columns: []string{request.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttachmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.AttachmentsTable,
			Columns: []string{request.AttachmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TriageReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TriageReviewsTable,
			Columns: []string{request.TriageReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTriageReviewsIDs(); len(nodes) > 0 && !_u.mutation.TriageReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TriageReviewsTable,
			Columns: []string{request.TriageReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TriageReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.TriageReviewsTable,
			Columns: []string{request.TriageReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(triagereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchitectReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ArchitectReviewsTable,
			Columns: []string{request.ArchitectReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArchitectReviewsIDs(); len(nodes) > 0 && !_u.mutation.ArchitectReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ArchitectReviewsTable,
			Columns: []string{request.ArchitectReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchitectReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.ArchitectReviewsTable,
			Columns: []string{request.ArchitectReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(architectreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CodeReviewsTable,
			Columns: []string{request.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCodeReviewsIDs(); len(nodes) > 0 && !_u.mutation.CodeReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CodeReviewsTable,
			Columns: []string{request.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   request.CodeReviewsTable,
			Columns: []string{request.CodeReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Request{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{request.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
