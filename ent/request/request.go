// Code generated by ent, DO NOT EDIT.

package request

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the request type in the database.
	Label = "request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSubmitterName holds the string denoting the submitter_name field in the database.
	FieldSubmitterName = "submitter_name"
	// FieldSubmitterEmail holds the string denoting the submitter_email field in the database.
	FieldSubmitterEmail = "submitter_email"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStepsToReproduce holds the string denoting the steps_to_reproduce field in the database.
	FieldStepsToReproduce = "steps_to_reproduce"
	// FieldExpectedBehavior holds the string denoting the expected_behavior field in the database.
	FieldExpectedBehavior = "expected_behavior"
	// FieldActualBehavior holds the string denoting the actual_behavior field in the database.
	FieldActualBehavior = "actual_behavior"
	// FieldLastTriageAt holds the string denoting the last_triage_at field in the database.
	FieldLastTriageAt = "last_triage_at"
	// FieldTriageCount holds the string denoting the triage_count field in the database.
	FieldTriageCount = "triage_count"
	// FieldLastArchitectAt holds the string denoting the last_architect_at field in the database.
	FieldLastArchitectAt = "last_architect_at"
	// FieldArchitectCount holds the string denoting the architect_count field in the database.
	FieldArchitectCount = "architect_count"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldIssueNumber holds the string denoting the issue_number field in the database.
	FieldIssueNumber = "issue_number"
	// FieldPrNumber holds the string denoting the pr_number field in the database.
	FieldPrNumber = "pr_number"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldTriggeredAt holds the string denoting the triggered_at field in the database.
	FieldTriggeredAt = "triggered_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldImplementationStatus holds the string denoting the implementation_status field in the database.
	FieldImplementationStatus = "implementation_status"
	// FieldDeploymentStatus holds the string denoting the deployment_status field in the database.
	FieldDeploymentStatus = "deployment_status"
	// FieldDeploymentRunID holds the string denoting the deployment_run_id field in the database.
	FieldDeploymentRunID = "deployment_run_id"
	// FieldDeployedAt holds the string denoting the deployed_at field in the database.
	FieldDeployedAt = "deployed_at"
	// FieldDeploymentRetryCount holds the string denoting the deployment_retry_count field in the database.
	FieldDeploymentRetryCount = "deployment_retry_count"
	// FieldBranchDeleted holds the string denoting the branch_deleted field in the database.
	FieldBranchDeleted = "branch_deleted"
	// FieldStallNotifiedAt holds the string denoting the stall_notified_at field in the database.
	FieldStallNotifiedAt = "stall_notified_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeComments holds the string denoting the comments edge name in mutations.
	EdgeComments = "comments"
	// EdgeAttachments holds the string denoting the attachments edge name in mutations.
	EdgeAttachments = "attachments"
	// EdgeTriageReviews holds the string denoting the triage_reviews edge name in mutations.
	EdgeTriageReviews = "triage_reviews"
	// EdgeArchitectReviews holds the string denoting the architect_reviews edge name in mutations.
	EdgeArchitectReviews = "architect_reviews"
	// EdgeCodeReviews holds the string denoting the code_reviews edge name in mutations.
	EdgeCodeReviews = "code_reviews"
	// CommentFieldID holds the string denoting the ID field of the Comment.
	CommentFieldID = "comment_id"
	// AttachmentFieldID holds the string denoting the ID field of the Attachment.
	AttachmentFieldID = "attachment_id"
	// TriageReviewFieldID holds the string denoting the ID field of the TriageReview.
	TriageReviewFieldID = "review_id"
	// ArchitectReviewFieldID holds the string denoting the ID field of the ArchitectReview.
	ArchitectReviewFieldID = "review_id"
	// CodeReviewFieldID holds the string denoting the ID field of the CodeReview.
	CodeReviewFieldID = "review_id"
	// Table holds the table name of the request in the database.
	Table = "requests"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "requests"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// CommentsTable is the table that holds the comments relation/edge.
	CommentsTable = "comments"
	// CommentsInverseTable is the table name for the Comment entity.
	// It exists in this package in order to avoid circular dependency with the "comment" package.
	CommentsInverseTable = "comments"
	// CommentsColumn is the table column denoting the comments relation/edge.
	CommentsColumn = "request_id"
	// AttachmentsTable is the table that holds the attachments relation/edge.
	AttachmentsTable = "attachments"
	// AttachmentsInverseTable is the table name for the Attachment entity.
	// It exists in this package in order to avoid circular dependency with the "attachment" package.
	AttachmentsInverseTable = "attachments"
	// AttachmentsColumn is the table column denoting the attachments relation/edge.
	AttachmentsColumn = "request_id"
	// TriageReviewsTable is the table that holds the triage_reviews relation/edge.
	TriageReviewsTable = "triage_reviews"
	// TriageReviewsInverseTable is the table name for the TriageReview entity.
	// It exists in this package in order to avoid circular dependency with the "triagereview" package.
	TriageReviewsInverseTable = "triage_reviews"
	// TriageReviewsColumn is the table column denoting the triage_reviews relation/edge.
	TriageReviewsColumn = "request_id"
	// ArchitectReviewsTable is the table that holds the architect_reviews relation/edge.
	ArchitectReviewsTable = "architect_reviews"
	// ArchitectReviewsInverseTable is the table name for the ArchitectReview entity.
	// It exists in this package in order to avoid circular dependency with the "architectreview" package.
	ArchitectReviewsInverseTable = "architect_reviews"
	// ArchitectReviewsColumn is the table column denoting the architect_reviews relation/edge.
	ArchitectReviewsColumn = "request_id"
	// CodeReviewsTable is the table that holds the code_reviews relation/edge.
	CodeReviewsTable = "code_reviews"
	// CodeReviewsInverseTable is the table name for the CodeReview entity.
	// It exists in this package in order to avoid circular dependency with the "codereview" package.
	CodeReviewsInverseTable = "code_reviews"
	// CodeReviewsColumn is the table column denoting the code_reviews relation/edge.
	CodeReviewsColumn = "request_id"
)

// Columns holds all SQL columns for request fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldSubmitterName,
	FieldSubmitterEmail,
	FieldProjectID,
	FieldKind,
	FieldPriority,
	FieldState,
	FieldStepsToReproduce,
	FieldExpectedBehavior,
	FieldActualBehavior,
	FieldLastTriageAt,
	FieldTriageCount,
	FieldLastArchitectAt,
	FieldArchitectCount,
	FieldSessionID,
	FieldIssueNumber,
	FieldPrNumber,
	FieldPrURL,
	FieldBranchName,
	FieldTriggeredAt,
	FieldCompletedAt,
	FieldImplementationStatus,
	FieldDeploymentStatus,
	FieldDeploymentRunID,
	FieldDeployedAt,
	FieldDeploymentRetryCount,
	FieldBranchDeleted,
	FieldStallNotifiedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTriageCount holds the default value on creation for the "triage_count" field.
	DefaultTriageCount int
	// DefaultArchitectCount holds the default value on creation for the "architect_count" field.
	DefaultArchitectCount int
	// DefaultDeploymentRetryCount holds the default value on creation for the "deployment_retry_count" field.
	DefaultDeploymentRetryCount int
	// DefaultBranchDeleted holds the default value on creation for the "branch_deleted" field.
	DefaultBranchDeleted bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindFeature is the default value of the Kind enum.
const DefaultKind = KindFeature

// Kind values.
const (
	KindBug         Kind = "bug"
	KindFeature     Kind = "feature"
	KindEnhancement Kind = "enhancement"
	KindQuestion    Kind = "question"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindBug, KindFeature, KindEnhancement, KindQuestion:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for kind field: %q", k)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for priority field: %q", pr)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateNew is the default value of the State enum.
const DefaultState = StateNew

// State values.
const (
	StateNew                State = "new"
	StateNeedsClarification State = "needs_clarification"
	StateTriaged            State = "triaged"
	StateArchitectReview    State = "architect_review"
	StateApproved           State = "approved"
	StateInProgress         State = "in_progress"
	StateDone               State = "done"
	StateRejected           State = "rejected"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateNew, StateNeedsClarification, StateTriaged, StateArchitectReview, StateApproved, StateInProgress, StateDone, StateRejected:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for state field: %q", s)
	}
}

// ImplementationStatus defines the type for the "implementation_status" enum field.
type ImplementationStatus string

// ImplementationStatus values.
const (
	ImplementationStatusPending        ImplementationStatus = "pending"
	ImplementationStatusWorking        ImplementationStatus = "working"
	ImplementationStatusPrOpened       ImplementationStatus = "pr_opened"
	ImplementationStatusReviewApproved ImplementationStatus = "review_approved"
	ImplementationStatusPrMerged       ImplementationStatus = "pr_merged"
	ImplementationStatusFailed         ImplementationStatus = "failed"
)

func (is ImplementationStatus) String() string {
	return string(is)
}

// ImplementationStatusValidator is a validator for the "implementation_status" field enum values. It is called by the builders before save.
func ImplementationStatusValidator(is ImplementationStatus) error {
	switch is {
	case ImplementationStatusPending, ImplementationStatusWorking, ImplementationStatusPrOpened, ImplementationStatusReviewApproved, ImplementationStatusPrMerged, ImplementationStatusFailed:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for implementation_status field: %q", is)
	}
}

// DeploymentStatus defines the type for the "deployment_status" enum field.
type DeploymentStatus string

// DeploymentStatusNone is the default value of the DeploymentStatus enum.
const DefaultDeploymentStatus = DeploymentStatusNone

// DeploymentStatus values.
const (
	DeploymentStatusNone       DeploymentStatus = "none"
	DeploymentStatusPending    DeploymentStatus = "pending"
	DeploymentStatusInProgress DeploymentStatus = "in_progress"
	DeploymentStatusSucceeded  DeploymentStatus = "succeeded"
	DeploymentStatusFailed     DeploymentStatus = "failed"
)

func (ds DeploymentStatus) String() string {
	return string(ds)
}

// DeploymentStatusValidator is a validator for the "deployment_status" field enum values. It is called by the builders before save.
func DeploymentStatusValidator(ds DeploymentStatus) error {
	switch ds {
	case DeploymentStatusNone, DeploymentStatusPending, DeploymentStatusInProgress, DeploymentStatusSucceeded, DeploymentStatusFailed:
		return nil
	default:
		return fmt.Errorf("request: invalid enum value for deployment_status field: %q", ds)
	}
}

// OrderOption defines the ordering options for the Request queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySubmitterName orders the results by the submitter_name field.
func BySubmitterName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterName, opts...).ToFunc()
}

// BySubmitterEmail orders the results by the submitter_email field.
func BySubmitterEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterEmail, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStepsToReproduce orders the results by the steps_to_reproduce field.
func ByStepsToReproduce(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepsToReproduce, opts...).ToFunc()
}

// ByExpectedBehavior orders the results by the expected_behavior field.
func ByExpectedBehavior(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedBehavior, opts...).ToFunc()
}

// ByActualBehavior orders the results by the actual_behavior field.
func ByActualBehavior(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualBehavior, opts...).ToFunc()
}

// ByLastTriageAt orders the results by the last_triage_at field.
func ByLastTriageAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTriageAt, opts...).ToFunc()
}

// ByTriageCount orders the results by the triage_count field.
func ByTriageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriageCount, opts...).ToFunc()
}

// ByLastArchitectAt orders the results by the last_architect_at field.
func ByLastArchitectAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastArchitectAt, opts...).ToFunc()
}

// ByArchitectCount orders the results by the architect_count field.
func ByArchitectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchitectCount, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByIssueNumber orders the results by the issue_number field.
func ByIssueNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssueNumber, opts...).ToFunc()
}

// ByPrNumber orders the results by the pr_number field.
func ByPrNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrNumber, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByTriggeredAt orders the results by the triggered_at field.
func ByTriggeredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByImplementationStatus orders the results by the implementation_status field.
func ByImplementationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImplementationStatus, opts...).ToFunc()
}

// ByDeploymentStatus orders the results by the deployment_status field.
func ByDeploymentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeploymentStatus, opts...).ToFunc()
}

// ByDeploymentRunID orders the results by the deployment_run_id field.
func ByDeploymentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeploymentRunID, opts...).ToFunc()
}

// ByDeployedAt orders the results by the deployed_at field.
func ByDeployedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployedAt, opts...).ToFunc()
}

// ByDeploymentRetryCount orders the results by the deployment_retry_count field.
func ByDeploymentRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeploymentRetryCount, opts...).ToFunc()
}

// ByBranchDeleted orders the results by the branch_deleted field.
func ByBranchDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchDeleted, opts...).ToFunc()
}

// ByStallNotifiedAt orders the results by the stall_notified_at field.
func ByStallNotifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStallNotifiedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByCommentsCount orders the results by comments count.
func ByCommentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCommentsStep(), opts...)
	}
}

// ByComments orders the results by comments terms.
func ByComments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCommentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttachmentsCount orders the results by attachments count.
func ByAttachmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttachmentsStep(), opts...)
	}
}

// ByAttachments orders the results by attachments terms.
func ByAttachments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttachmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTriageReviewsCount orders the results by triage_reviews count.
func ByTriageReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTriageReviewsStep(), opts...)
	}
}

// ByTriageReviews orders the results by triage_reviews terms.
func ByTriageReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTriageReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArchitectReviewsCount orders the results by architect_reviews count.
func ByArchitectReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArchitectReviewsStep(), opts...)
	}
}

// ByArchitectReviews orders the results by architect_reviews terms.
func ByArchitectReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArchitectReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCodeReviewsCount orders the results by code_reviews count.
func ByCodeReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCodeReviewsStep(), opts...)
	}
}

// ByCodeReviews orders the results by code_reviews terms.
func ByCodeReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCodeReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newCommentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CommentsInverseTable, CommentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CommentsTable, CommentsColumn),
	)
}
func newAttachmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttachmentsInverseTable, AttachmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
	)
}
func newTriageReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TriageReviewsInverseTable, TriageReviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TriageReviewsTable, TriageReviewsColumn),
	)
}
func newArchitectReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArchitectReviewsInverseTable, ArchitectReviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArchitectReviewsTable, ArchitectReviewsColumn),
	)
}
func newCodeReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CodeReviewsInverseTable, CodeReviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CodeReviewsTable, CodeReviewsColumn),
	)
}
