// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conveyor-dev/conveyor/ent/architectreview"
	"github.com/conveyor-dev/conveyor/ent/attachment"
	"github.com/conveyor-dev/conveyor/ent/codereview"
	"github.com/conveyor-dev/conveyor/ent/comment"
	"github.com/conveyor-dev/conveyor/ent/predicate"
	"github.com/conveyor-dev/conveyor/ent/project"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/ent/systemprompt"
	"github.com/conveyor-dev/conveyor/ent/triagereview"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArchitectReview = "ArchitectReview"
	TypeAttachment      = "Attachment"
	TypeCodeReview      = "CodeReview"
	TypeComment         = "Comment"
	TypeProject         = "Project"
	TypeRequest         = "Request"
	TypeSystemPrompt    = "SystemPrompt"
	TypeTriageReview    = "TriageReview"
)

// ArchitectReviewMutation represents an operation that mutates the ArchitectReview nodes in the graph.
type ArchitectReviewMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	solution_summary           *string
	approach                   *string
	solution_json              *string
	estimated_complexity       *string
	estimated_effort           *string
	files_analyzed             *int
	addfiles_analyzed          *int
	file_paths                 *[]string
	appendfile_paths           []string
	step1_prompt_tokens        *int
	addstep1_prompt_tokens     *int
	step1_completion_tokens    *int
	addstep1_completion_tokens *int
	step2_prompt_tokens        *int
	addstep2_prompt_tokens     *int
	step2_completion_tokens    *int
	addstep2_completion_tokens *int
	model                      *string
	duration_ms                *int64
	addduration_ms             *int64
	decision                   *architectreview.Decision
	human_feedback             *string
	approved_by                *string
	approved_at                *time.Time
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	request                    *int
	clearedrequest             bool
	done                       bool
	oldValue                   func(context.Context) (*ArchitectReview, error)
	predicates                 []predicate.ArchitectReview
}

var _ ent.Mutation = (*ArchitectReviewMutation)(nil)

// architectreviewOption allows management of the mutation configuration using functional options.
type architectreviewOption func(*ArchitectReviewMutation)

// newArchitectReviewMutation creates new mutation for the ArchitectReview entity.
func newArchitectReviewMutation(c config, op Op, opts ...architectreviewOption) *ArchitectReviewMutation {
	m := &ArchitectReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeArchitectReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArchitectReviewID sets the ID field of the mutation.
func withArchitectReviewID(id string) architectreviewOption {
	return func(m *ArchitectReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *ArchitectReview
		)
		m.oldValue = func(ctx context.Context) (*ArchitectReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArchitectReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArchitectReview sets the old ArchitectReview of the mutation.
func withArchitectReview(node *ArchitectReview) architectreviewOption {
	return func(m *ArchitectReviewMutation) {
		m.oldValue = func(context.Context) (*ArchitectReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArchitectReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArchitectReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ArchitectReview entities.
func (m *ArchitectReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArchitectReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArchitectReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArchitectReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *ArchitectReviewMutation) SetRequestID(i int) {
	m.request = &i
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ArchitectReviewMutation) RequestID() (r int, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ArchitectReviewMutation) ResetRequestID() {
	m.request = nil
}

// SetSolutionSummary sets the "solution_summary" field.
func (m *ArchitectReviewMutation) SetSolutionSummary(s string) {
	m.solution_summary = &s
}

// SolutionSummary returns the value of the "solution_summary" field in the mutation.
func (m *ArchitectReviewMutation) SolutionSummary() (r string, exists bool) {
	v := m.solution_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionSummary returns the old "solution_summary" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldSolutionSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionSummary: %w", err)
	}
	return oldValue.SolutionSummary, nil
}

// ResetSolutionSummary resets all changes to the "solution_summary" field.
func (m *ArchitectReviewMutation) ResetSolutionSummary() {
	m.solution_summary = nil
}

// SetApproach sets the "approach" field.
func (m *ArchitectReviewMutation) SetApproach(s string) {
	m.approach = &s
}

// Approach returns the value of the "approach" field in the mutation.
func (m *ArchitectReviewMutation) Approach() (r string, exists bool) {
	v := m.approach
	if v == nil {
		return
	}
	return *v, true
}

// OldApproach returns the old "approach" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldApproach(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproach is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproach requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproach: %w", err)
	}
	return oldValue.Approach, nil
}

// ResetApproach resets all changes to the "approach" field.
func (m *ArchitectReviewMutation) ResetApproach() {
	m.approach = nil
}

// SetSolutionJSON sets the "solution_json" field.
func (m *ArchitectReviewMutation) SetSolutionJSON(s string) {
	m.solution_json = &s
}

// SolutionJSON returns the value of the "solution_json" field in the mutation.
func (m *ArchitectReviewMutation) SolutionJSON() (r string, exists bool) {
	v := m.solution_json
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionJSON returns the old "solution_json" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldSolutionJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionJSON: %w", err)
	}
	return oldValue.SolutionJSON, nil
}

// ResetSolutionJSON resets all changes to the "solution_json" field.
func (m *ArchitectReviewMutation) ResetSolutionJSON() {
	m.solution_json = nil
}

// SetEstimatedComplexity sets the "estimated_complexity" field.
func (m *ArchitectReviewMutation) SetEstimatedComplexity(s string) {
	m.estimated_complexity = &s
}

// EstimatedComplexity returns the value of the "estimated_complexity" field in the mutation.
func (m *ArchitectReviewMutation) EstimatedComplexity() (r string, exists bool) {
	v := m.estimated_complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedComplexity returns the old "estimated_complexity" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldEstimatedComplexity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedComplexity: %w", err)
	}
	return oldValue.EstimatedComplexity, nil
}

// ClearEstimatedComplexity clears the value of the "estimated_complexity" field.
func (m *ArchitectReviewMutation) ClearEstimatedComplexity() {
	m.estimated_complexity = nil
	m.clearedFields[architectreview.FieldEstimatedComplexity] = struct{}{}
}

// EstimatedComplexityCleared returns if the "estimated_complexity" field was cleared in this mutation.
func (m *ArchitectReviewMutation) EstimatedComplexityCleared() bool {
	_, ok := m.clearedFields[architectreview.FieldEstimatedComplexity]
	return ok
}

// ResetEstimatedComplexity resets all changes to the "estimated_complexity" field.
func (m *ArchitectReviewMutation) ResetEstimatedComplexity() {
	m.estimated_complexity = nil
	delete(m.clearedFields, architectreview.FieldEstimatedComplexity)
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (m *ArchitectReviewMutation) SetEstimatedEffort(s string) {
	m.estimated_effort = &s
}

// EstimatedEffort returns the value of the "estimated_effort" field in the mutation.
func (m *ArchitectReviewMutation) EstimatedEffort() (r string, exists bool) {
	v := m.estimated_effort
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedEffort returns the old "estimated_effort" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldEstimatedEffort(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedEffort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedEffort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedEffort: %w", err)
	}
	return oldValue.EstimatedEffort, nil
}

// ClearEstimatedEffort clears the value of the "estimated_effort" field.
func (m *ArchitectReviewMutation) ClearEstimatedEffort() {
	m.estimated_effort = nil
	m.clearedFields[architectreview.FieldEstimatedEffort] = struct{}{}
}

// EstimatedEffortCleared returns if the "estimated_effort" field was cleared in this mutation.
func (m *ArchitectReviewMutation) EstimatedEffortCleared() bool {
	_, ok := m.clearedFields[architectreview.FieldEstimatedEffort]
	return ok
}

// ResetEstimatedEffort resets all changes to the "estimated_effort" field.
func (m *ArchitectReviewMutation) ResetEstimatedEffort() {
	m.estimated_effort = nil
	delete(m.clearedFields, architectreview.FieldEstimatedEffort)
}

// SetFilesAnalyzed sets the "files_analyzed" field.
func (m *ArchitectReviewMutation) SetFilesAnalyzed(i int) {
	m.files_analyzed = &i
	m.addfiles_analyzed = nil
}

// FilesAnalyzed returns the value of the "files_analyzed" field in the mutation.
func (m *ArchitectReviewMutation) FilesAnalyzed() (r int, exists bool) {
	v := m.files_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesAnalyzed returns the old "files_analyzed" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldFilesAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesAnalyzed: %w", err)
	}
	return oldValue.FilesAnalyzed, nil
}

// AddFilesAnalyzed adds i to the "files_analyzed" field.
func (m *ArchitectReviewMutation) AddFilesAnalyzed(i int) {
	if m.addfiles_analyzed != nil {
		*m.addfiles_analyzed += i
	} else {
		m.addfiles_analyzed = &i
	}
}

// AddedFilesAnalyzed returns the value that was added to the "files_analyzed" field in this mutation.
func (m *ArchitectReviewMutation) AddedFilesAnalyzed() (r int, exists bool) {
	v := m.addfiles_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFilesAnalyzed resets all changes to the "files_analyzed" field.
func (m *ArchitectReviewMutation) ResetFilesAnalyzed() {
	m.files_analyzed = nil
	m.addfiles_analyzed = nil
}

// SetFilePaths sets the "file_paths" field.
func (m *ArchitectReviewMutation) SetFilePaths(s []string) {
	m.file_paths = &s
	m.appendfile_paths = nil
}

// FilePaths returns the value of the "file_paths" field in the mutation.
func (m *ArchitectReviewMutation) FilePaths() (r []string, exists bool) {
	v := m.file_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePaths returns the old "file_paths" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldFilePaths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePaths: %w", err)
	}
	return oldValue.FilePaths, nil
}

// AppendFilePaths adds s to the "file_paths" field.
func (m *ArchitectReviewMutation) AppendFilePaths(s []string) {
	m.appendfile_paths = append(m.appendfile_paths, s...)
}

// AppendedFilePaths returns the list of values that were appended to the "file_paths" field in this mutation.
func (m *ArchitectReviewMutation) AppendedFilePaths() ([]string, bool) {
	if len(m.appendfile_paths) == 0 {
		return nil, false
	}
	return m.appendfile_paths, true
}

// ClearFilePaths clears the value of the "file_paths" field.
func (m *ArchitectReviewMutation) ClearFilePaths() {
	m.file_paths = nil
	m.appendfile_paths = nil
	m.clearedFields[architectreview.FieldFilePaths] = struct{}{}
}

// FilePathsCleared returns if the "file_paths" field was cleared in this mutation.
func (m *ArchitectReviewMutation) FilePathsCleared() bool {
	_, ok := m.clearedFields[architectreview.FieldFilePaths]
	return ok
}

// ResetFilePaths resets all changes to the "file_paths" field.
func (m *ArchitectReviewMutation) ResetFilePaths() {
	m.file_paths = nil
	m.appendfile_paths = nil
	delete(m.clearedFields, architectreview.FieldFilePaths)
}

// SetStep1PromptTokens sets the "step1_prompt_tokens" field.
func (m *ArchitectReviewMutation) SetStep1PromptTokens(i int) {
	m.step1_prompt_tokens = &i
	m.addstep1_prompt_tokens = nil
}

// Step1PromptTokens returns the value of the "step1_prompt_tokens" field in the mutation.
func (m *ArchitectReviewMutation) Step1PromptTokens() (r int, exists bool) {
	v := m.step1_prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldStep1PromptTokens returns the old "step1_prompt_tokens" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldStep1PromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep1PromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep1PromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep1PromptTokens: %w", err)
	}
	return oldValue.Step1PromptTokens, nil
}

// AddStep1PromptTokens adds i to the "step1_prompt_tokens" field.
func (m *ArchitectReviewMutation) AddStep1PromptTokens(i int) {
	if m.addstep1_prompt_tokens != nil {
		*m.addstep1_prompt_tokens += i
	} else {
		m.addstep1_prompt_tokens = &i
	}
}

// AddedStep1PromptTokens returns the value that was added to the "step1_prompt_tokens" field in this mutation.
func (m *ArchitectReviewMutation) AddedStep1PromptTokens() (r int, exists bool) {
	v := m.addstep1_prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep1PromptTokens resets all changes to the "step1_prompt_tokens" field.
func (m *ArchitectReviewMutation) ResetStep1PromptTokens() {
	m.step1_prompt_tokens = nil
	m.addstep1_prompt_tokens = nil
}

// SetStep1CompletionTokens sets the "step1_completion_tokens" field.
func (m *ArchitectReviewMutation) SetStep1CompletionTokens(i int) {
	m.step1_completion_tokens = &i
	m.addstep1_completion_tokens = nil
}

// Step1CompletionTokens returns the value of the "step1_completion_tokens" field in the mutation.
func (m *ArchitectReviewMutation) Step1CompletionTokens() (r int, exists bool) {
	v := m.step1_completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldStep1CompletionTokens returns the old "step1_completion_tokens" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldStep1CompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep1CompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep1CompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep1CompletionTokens: %w", err)
	}
	return oldValue.Step1CompletionTokens, nil
}

// AddStep1CompletionTokens adds i to the "step1_completion_tokens" field.
func (m *ArchitectReviewMutation) AddStep1CompletionTokens(i int) {
	if m.addstep1_completion_tokens != nil {
		*m.addstep1_completion_tokens += i
	} else {
		m.addstep1_completion_tokens = &i
	}
}

// AddedStep1CompletionTokens returns the value that was added to the "step1_completion_tokens" field in this mutation.
func (m *ArchitectReviewMutation) AddedStep1CompletionTokens() (r int, exists bool) {
	v := m.addstep1_completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep1CompletionTokens resets all changes to the "step1_completion_tokens" field.
func (m *ArchitectReviewMutation) ResetStep1CompletionTokens() {
	m.step1_completion_tokens = nil
	m.addstep1_completion_tokens = nil
}

// SetStep2PromptTokens sets the "step2_prompt_tokens" field.
func (m *ArchitectReviewMutation) SetStep2PromptTokens(i int) {
	m.step2_prompt_tokens = &i
	m.addstep2_prompt_tokens = nil
}

// Step2PromptTokens returns the value of the "step2_prompt_tokens" field in the mutation.
func (m *ArchitectReviewMutation) Step2PromptTokens() (r int, exists bool) {
	v := m.step2_prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldStep2PromptTokens returns the old "step2_prompt_tokens" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldStep2PromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep2PromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep2PromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep2PromptTokens: %w", err)
	}
	return oldValue.Step2PromptTokens, nil
}

// AddStep2PromptTokens adds i to the "step2_prompt_tokens" field.
func (m *ArchitectReviewMutation) AddStep2PromptTokens(i int) {
	if m.addstep2_prompt_tokens != nil {
		*m.addstep2_prompt_tokens += i
	} else {
		m.addstep2_prompt_tokens = &i
	}
}

// AddedStep2PromptTokens returns the value that was added to the "step2_prompt_tokens" field in this mutation.
func (m *ArchitectReviewMutation) AddedStep2PromptTokens() (r int, exists bool) {
	v := m.addstep2_prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep2PromptTokens resets all changes to the "step2_prompt_tokens" field.
func (m *ArchitectReviewMutation) ResetStep2PromptTokens() {
	m.step2_prompt_tokens = nil
	m.addstep2_prompt_tokens = nil
}

// SetStep2CompletionTokens sets the "step2_completion_tokens" field.
func (m *ArchitectReviewMutation) SetStep2CompletionTokens(i int) {
	m.step2_completion_tokens = &i
	m.addstep2_completion_tokens = nil
}

// Step2CompletionTokens returns the value of the "step2_completion_tokens" field in the mutation.
func (m *ArchitectReviewMutation) Step2CompletionTokens() (r int, exists bool) {
	v := m.step2_completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldStep2CompletionTokens returns the old "step2_completion_tokens" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldStep2CompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep2CompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep2CompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep2CompletionTokens: %w", err)
	}
	return oldValue.Step2CompletionTokens, nil
}

// AddStep2CompletionTokens adds i to the "step2_completion_tokens" field.
func (m *ArchitectReviewMutation) AddStep2CompletionTokens(i int) {
	if m.addstep2_completion_tokens != nil {
		*m.addstep2_completion_tokens += i
	} else {
		m.addstep2_completion_tokens = &i
	}
}

// AddedStep2CompletionTokens returns the value that was added to the "step2_completion_tokens" field in this mutation.
func (m *ArchitectReviewMutation) AddedStep2CompletionTokens() (r int, exists bool) {
	v := m.addstep2_completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetStep2CompletionTokens resets all changes to the "step2_completion_tokens" field.
func (m *ArchitectReviewMutation) ResetStep2CompletionTokens() {
	m.step2_completion_tokens = nil
	m.addstep2_completion_tokens = nil
}

// SetModel sets the "model" field.
func (m *ArchitectReviewMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ArchitectReviewMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *ArchitectReviewMutation) ClearModel() {
	m.model = nil
	m.clearedFields[architectreview.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *ArchitectReviewMutation) ModelCleared() bool {
	_, ok := m.clearedFields[architectreview.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *ArchitectReviewMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, architectreview.FieldModel)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ArchitectReviewMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ArchitectReviewMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ArchitectReviewMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ArchitectReviewMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ArchitectReviewMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetDecision sets the "decision" field.
func (m *ArchitectReviewMutation) SetDecision(a architectreview.Decision) {
	m.decision = &a
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ArchitectReviewMutation) Decision() (r architectreview.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldDecision(ctx context.Context) (v architectreview.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ArchitectReviewMutation) ResetDecision() {
	m.decision = nil
}

// SetHumanFeedback sets the "human_feedback" field.
func (m *ArchitectReviewMutation) SetHumanFeedback(s string) {
	m.human_feedback = &s
}

// HumanFeedback returns the value of the "human_feedback" field in the mutation.
func (m *ArchitectReviewMutation) HumanFeedback() (r string, exists bool) {
	v := m.human_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanFeedback returns the old "human_feedback" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldHumanFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanFeedback: %w", err)
	}
	return oldValue.HumanFeedback, nil
}

// ClearHumanFeedback clears the value of the "human_feedback" field.
func (m *ArchitectReviewMutation) ClearHumanFeedback() {
	m.human_feedback = nil
	m.clearedFields[architectreview.FieldHumanFeedback] = struct{}{}
}

// HumanFeedbackCleared returns if the "human_feedback" field was cleared in this mutation.
func (m *ArchitectReviewMutation) HumanFeedbackCleared() bool {
	_, ok := m.clearedFields[architectreview.FieldHumanFeedback]
	return ok
}

// ResetHumanFeedback resets all changes to the "human_feedback" field.
func (m *ArchitectReviewMutation) ResetHumanFeedback() {
	m.human_feedback = nil
	delete(m.clearedFields, architectreview.FieldHumanFeedback)
}

// SetApprovedBy sets the "approved_by" field.
func (m *ArchitectReviewMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *ArchitectReviewMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *ArchitectReviewMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[architectreview.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *ArchitectReviewMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[architectreview.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *ArchitectReviewMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, architectreview.FieldApprovedBy)
}

// SetApprovedAt sets the "approved_at" field.
func (m *ArchitectReviewMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *ArchitectReviewMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *ArchitectReviewMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[architectreview.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *ArchitectReviewMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[architectreview.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *ArchitectReviewMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, architectreview.FieldApprovedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArchitectReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArchitectReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArchitectReview entity.
// If the ArchitectReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchitectReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArchitectReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *ArchitectReviewMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[architectreview.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *ArchitectReviewMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *ArchitectReviewMutation) RequestIDs() (ids []int) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *ArchitectReviewMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the ArchitectReviewMutation builder.
func (m *ArchitectReviewMutation) Where(ps ...predicate.ArchitectReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArchitectReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArchitectReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArchitectReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArchitectReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArchitectReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArchitectReview).
func (m *ArchitectReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArchitectReviewMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.request != nil {
		fields = append(fields, architectreview.FieldRequestID)
	}
	if m.solution_summary != nil {
		fields = append(fields, architectreview.FieldSolutionSummary)
	}
	if m.approach != nil {
		fields = append(fields, architectreview.FieldApproach)
	}
	if m.solution_json != nil {
		fields = append(fields, architectreview.FieldSolutionJSON)
	}
	if m.estimated_complexity != nil {
		fields = append(fields, architectreview.FieldEstimatedComplexity)
	}
	if m.estimated_effort != nil {
		fields = append(fields, architectreview.FieldEstimatedEffort)
	}
	if m.files_analyzed != nil {
		fields = append(fields, architectreview.FieldFilesAnalyzed)
	}
	if m.file_paths != nil {
		fields = append(fields, architectreview.FieldFilePaths)
	}
	if m.step1_prompt_tokens != nil {
		fields = append(fields, architectreview.FieldStep1PromptTokens)
	}
	if m.step1_completion_tokens != nil {
		fields = append(fields, architectreview.FieldStep1CompletionTokens)
	}
	if m.step2_prompt_tokens != nil {
		fields = append(fields, architectreview.FieldStep2PromptTokens)
	}
	if m.step2_completion_tokens != nil {
		fields = append(fields, architectreview.FieldStep2CompletionTokens)
	}
	if m.model != nil {
		fields = append(fields, architectreview.FieldModel)
	}
	if m.duration_ms != nil {
		fields = append(fields, architectreview.FieldDurationMs)
	}
	if m.decision != nil {
		fields = append(fields, architectreview.FieldDecision)
	}
	if m.human_feedback != nil {
		fields = append(fields, architectreview.FieldHumanFeedback)
	}
	if m.approved_by != nil {
		fields = append(fields, architectreview.FieldApprovedBy)
	}
	if m.approved_at != nil {
		fields = append(fields, architectreview.FieldApprovedAt)
	}
	if m.created_at != nil {
		fields = append(fields, architectreview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArchitectReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case architectreview.FieldRequestID:
		return m.RequestID()
	case architectreview.FieldSolutionSummary:
		return m.SolutionSummary()
	case architectreview.FieldApproach:
		return m.Approach()
	case architectreview.FieldSolutionJSON:
		return m.SolutionJSON()
	case architectreview.FieldEstimatedComplexity:
		return m.EstimatedComplexity()
	case architectreview.FieldEstimatedEffort:
		return m.EstimatedEffort()
	case architectreview.FieldFilesAnalyzed:
		return m.FilesAnalyzed()
	case architectreview.FieldFilePaths:
		return m.FilePaths()
	case architectreview.FieldStep1PromptTokens:
		return m.Step1PromptTokens()
	case architectreview.FieldStep1CompletionTokens:
		return m.Step1CompletionTokens()
	case architectreview.FieldStep2PromptTokens:
		return m.Step2PromptTokens()
	case architectreview.FieldStep2CompletionTokens:
		return m.Step2CompletionTokens()
	case architectreview.FieldModel:
		return m.Model()
	case architectreview.FieldDurationMs:
		return m.DurationMs()
	case architectreview.FieldDecision:
		return m.Decision()
	case architectreview.FieldHumanFeedback:
		return m.HumanFeedback()
	case architectreview.FieldApprovedBy:
		return m.ApprovedBy()
	case architectreview.FieldApprovedAt:
		return m.ApprovedAt()
	case architectreview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArchitectReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case architectreview.FieldRequestID:
		return m.OldRequestID(ctx)
	case architectreview.FieldSolutionSummary:
		return m.OldSolutionSummary(ctx)
	case architectreview.FieldApproach:
		return m.OldApproach(ctx)
	case architectreview.FieldSolutionJSON:
		return m.OldSolutionJSON(ctx)
	case architectreview.FieldEstimatedComplexity:
		return m.OldEstimatedComplexity(ctx)
	case architectreview.FieldEstimatedEffort:
		return m.OldEstimatedEffort(ctx)
	case architectreview.FieldFilesAnalyzed:
		return m.OldFilesAnalyzed(ctx)
	case architectreview.FieldFilePaths:
		return m.OldFilePaths(ctx)
	case architectreview.FieldStep1PromptTokens:
		return m.OldStep1PromptTokens(ctx)
	case architectreview.FieldStep1CompletionTokens:
		return m.OldStep1CompletionTokens(ctx)
	case architectreview.FieldStep2PromptTokens:
		return m.OldStep2PromptTokens(ctx)
	case architectreview.FieldStep2CompletionTokens:
		return m.OldStep2CompletionTokens(ctx)
	case architectreview.FieldModel:
		return m.OldModel(ctx)
	case architectreview.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case architectreview.FieldDecision:
		return m.OldDecision(ctx)
	case architectreview.FieldHumanFeedback:
		return m.OldHumanFeedback(ctx)
	case architectreview.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case architectreview.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case architectreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArchitectReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchitectReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case architectreview.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case architectreview.FieldSolutionSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionSummary(v)
		return nil
	case architectreview.FieldApproach:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproach(v)
		return nil
	case architectreview.FieldSolutionJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionJSON(v)
		return nil
	case architectreview.FieldEstimatedComplexity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedComplexity(v)
		return nil
	case architectreview.FieldEstimatedEffort:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedEffort(v)
		return nil
	case architectreview.FieldFilesAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesAnalyzed(v)
		return nil
	case architectreview.FieldFilePaths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePaths(v)
		return nil
	case architectreview.FieldStep1PromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep1PromptTokens(v)
		return nil
	case architectreview.FieldStep1CompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep1CompletionTokens(v)
		return nil
	case architectreview.FieldStep2PromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep2PromptTokens(v)
		return nil
	case architectreview.FieldStep2CompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep2CompletionTokens(v)
		return nil
	case architectreview.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case architectreview.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case architectreview.FieldDecision:
		v, ok := value.(architectreview.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case architectreview.FieldHumanFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanFeedback(v)
		return nil
	case architectreview.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case architectreview.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case architectreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArchitectReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArchitectReviewMutation) AddedFields() []string {
	var fields []string
	if m.addfiles_analyzed != nil {
		fields = append(fields, architectreview.FieldFilesAnalyzed)
	}
	if m.addstep1_prompt_tokens != nil {
		fields = append(fields, architectreview.FieldStep1PromptTokens)
	}
	if m.addstep1_completion_tokens != nil {
		fields = append(fields, architectreview.FieldStep1CompletionTokens)
	}
	if m.addstep2_prompt_tokens != nil {
		fields = append(fields, architectreview.FieldStep2PromptTokens)
	}
	if m.addstep2_completion_tokens != nil {
		fields = append(fields, architectreview.FieldStep2CompletionTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, architectreview.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArchitectReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case architectreview.FieldFilesAnalyzed:
		return m.AddedFilesAnalyzed()
	case architectreview.FieldStep1PromptTokens:
		return m.AddedStep1PromptTokens()
	case architectreview.FieldStep1CompletionTokens:
		return m.AddedStep1CompletionTokens()
	case architectreview.FieldStep2PromptTokens:
		return m.AddedStep2PromptTokens()
	case architectreview.FieldStep2CompletionTokens:
		return m.AddedStep2CompletionTokens()
	case architectreview.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchitectReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case architectreview.FieldFilesAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFilesAnalyzed(v)
		return nil
	case architectreview.FieldStep1PromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep1PromptTokens(v)
		return nil
	case architectreview.FieldStep1CompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep1CompletionTokens(v)
		return nil
	case architectreview.FieldStep2PromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep2PromptTokens(v)
		return nil
	case architectreview.FieldStep2CompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStep2CompletionTokens(v)
		return nil
	case architectreview.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ArchitectReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArchitectReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(architectreview.FieldEstimatedComplexity) {
		fields = append(fields, architectreview.FieldEstimatedComplexity)
	}
	if m.FieldCleared(architectreview.FieldEstimatedEffort) {
		fields = append(fields, architectreview.FieldEstimatedEffort)
	}
	if m.FieldCleared(architectreview.FieldFilePaths) {
		fields = append(fields, architectreview.FieldFilePaths)
	}
	if m.FieldCleared(architectreview.FieldModel) {
		fields = append(fields, architectreview.FieldModel)
	}
	if m.FieldCleared(architectreview.FieldHumanFeedback) {
		fields = append(fields, architectreview.FieldHumanFeedback)
	}
	if m.FieldCleared(architectreview.FieldApprovedBy) {
		fields = append(fields, architectreview.FieldApprovedBy)
	}
	if m.FieldCleared(architectreview.FieldApprovedAt) {
		fields = append(fields, architectreview.FieldApprovedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArchitectReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArchitectReviewMutation) ClearField(name string) error {
	switch name {
	case architectreview.FieldEstimatedComplexity:
		m.ClearEstimatedComplexity()
		return nil
	case architectreview.FieldEstimatedEffort:
		m.ClearEstimatedEffort()
		return nil
	case architectreview.FieldFilePaths:
		m.ClearFilePaths()
		return nil
	case architectreview.FieldModel:
		m.ClearModel()
		return nil
	case architectreview.FieldHumanFeedback:
		m.ClearHumanFeedback()
		return nil
	case architectreview.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case architectreview.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	}
	return fmt.Errorf("unknown ArchitectReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArchitectReviewMutation) ResetField(name string) error {
	switch name {
	case architectreview.FieldRequestID:
		m.ResetRequestID()
		return nil
	case architectreview.FieldSolutionSummary:
		m.ResetSolutionSummary()
		return nil
	case architectreview.FieldApproach:
		m.ResetApproach()
		return nil
	case architectreview.FieldSolutionJSON:
		m.ResetSolutionJSON()
		return nil
	case architectreview.FieldEstimatedComplexity:
		m.ResetEstimatedComplexity()
		return nil
	case architectreview.FieldEstimatedEffort:
		m.ResetEstimatedEffort()
		return nil
	case architectreview.FieldFilesAnalyzed:
		m.ResetFilesAnalyzed()
		return nil
	case architectreview.FieldFilePaths:
		m.ResetFilePaths()
		return nil
	case architectreview.FieldStep1PromptTokens:
		m.ResetStep1PromptTokens()
		return nil
	case architectreview.FieldStep1CompletionTokens:
		m.ResetStep1CompletionTokens()
		return nil
	case architectreview.FieldStep2PromptTokens:
		m.ResetStep2PromptTokens()
		return nil
	case architectreview.FieldStep2CompletionTokens:
		m.ResetStep2CompletionTokens()
		return nil
	case architectreview.FieldModel:
		m.ResetModel()
		return nil
	case architectreview.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case architectreview.FieldDecision:
		m.ResetDecision()
		return nil
	case architectreview.FieldHumanFeedback:
		m.ResetHumanFeedback()
		return nil
	case architectreview.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case architectreview.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case architectreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ArchitectReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArchitectReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, architectreview.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArchitectReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case architectreview.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArchitectReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArchitectReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArchitectReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, architectreview.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArchitectReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case architectreview.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArchitectReviewMutation) ClearEdge(name string) error {
	switch name {
	case architectreview.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown ArchitectReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArchitectReviewMutation) ResetEdge(name string) error {
	switch name {
	case architectreview.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown ArchitectReview edge %s", name)
}

// AttachmentMutation represents an operation that mutates the Attachment nodes in the graph.
type AttachmentMutation struct {
	config
	op             Op
	typ            string
	id             *string
	file_name      *string
	content_type   *string
	data           *[]byte
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *int
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*Attachment, error)
	predicates     []predicate.Attachment
}

var _ ent.Mutation = (*AttachmentMutation)(nil)

// attachmentOption allows management of the mutation configuration using functional options.
type attachmentOption func(*AttachmentMutation)

// newAttachmentMutation creates new mutation for the Attachment entity.
func newAttachmentMutation(c config, op Op, opts ...attachmentOption) *AttachmentMutation {
	m := &AttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachmentID sets the ID field of the mutation.
func withAttachmentID(id string) attachmentOption {
	return func(m *AttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Attachment
		)
		m.oldValue = func(ctx context.Context) (*Attachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachment sets the old Attachment of the mutation.
func withAttachment(node *Attachment) attachmentOption {
	return func(m *AttachmentMutation) {
		m.oldValue = func(context.Context) (*Attachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attachment entities.
func (m *AttachmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *AttachmentMutation) SetRequestID(i int) {
	m.request = &i
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AttachmentMutation) RequestID() (r int, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AttachmentMutation) ResetRequestID() {
	m.request = nil
}

// SetFileName sets the "file_name" field.
func (m *AttachmentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *AttachmentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *AttachmentMutation) ResetFileName() {
	m.file_name = nil
}

// SetContentType sets the "content_type" field.
func (m *AttachmentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *AttachmentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *AttachmentMutation) ResetContentType() {
	m.content_type = nil
}

// SetData sets the "data" field.
func (m *AttachmentMutation) SetData(b []byte) {
	m.data = &b
}

// Data returns the value of the "data" field in the mutation.
func (m *AttachmentMutation) Data() (r []byte, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *AttachmentMutation) ResetData() {
	m.data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttachmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttachmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttachmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *AttachmentMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[attachment.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *AttachmentMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *AttachmentMutation) RequestIDs() (ids []int) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *AttachmentMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the AttachmentMutation builder.
func (m *AttachmentMutation) Where(ps ...predicate.Attachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attachment).
func (m *AttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.request != nil {
		fields = append(fields, attachment.FieldRequestID)
	}
	if m.file_name != nil {
		fields = append(fields, attachment.FieldFileName)
	}
	if m.content_type != nil {
		fields = append(fields, attachment.FieldContentType)
	}
	if m.data != nil {
		fields = append(fields, attachment.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, attachment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldRequestID:
		return m.RequestID()
	case attachment.FieldFileName:
		return m.FileName()
	case attachment.FieldContentType:
		return m.ContentType()
	case attachment.FieldData:
		return m.Data()
	case attachment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attachment.FieldRequestID:
		return m.OldRequestID(ctx)
	case attachment.FieldFileName:
		return m.OldFileName(ctx)
	case attachment.FieldContentType:
		return m.OldContentType(ctx)
	case attachment.FieldData:
		return m.OldData(ctx)
	case attachment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case attachment.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case attachment.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case attachment.FieldData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case attachment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachmentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Attachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachmentMutation) ResetField(name string) error {
	switch name {
	case attachment.FieldRequestID:
		m.ResetRequestID()
		return nil
	case attachment.FieldFileName:
		m.ResetFileName()
		return nil
	case attachment.FieldContentType:
		m.ResetContentType()
		return nil
	case attachment.FieldData:
		m.ResetData()
		return nil
	case attachment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, attachment.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attachment.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, attachment.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case attachment.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachmentMutation) ClearEdge(name string) error {
	switch name {
	case attachment.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown Attachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachmentMutation) ResetEdge(name string) error {
	switch name {
	case attachment.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown Attachment edge %s", name)
}

// CodeReviewMutation represents an operation that mutates the CodeReview nodes in the graph.
type CodeReviewMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	decision                *codereview.Decision
	summary                 *string
	design_compliance       *bool
	design_compliance_notes *string
	security_pass           *bool
	security_notes          *string
	coding_standards_pass   *bool
	coding_standards_notes  *string
	quality_score           *int
	addquality_score        *int
	files_changed           *int
	addfiles_changed        *int
	lines_added             *int
	addlines_added          *int
	lines_removed           *int
	addlines_removed        *int
	pr_number               *int
	addpr_number            *int
	prompt_tokens           *int
	addprompt_tokens        *int
	completion_tokens       *int
	addcompletion_tokens    *int
	model                   *string
	duration_ms             *int64
	addduration_ms          *int64
	created_at              *time.Time
	clearedFields           map[string]struct{}
	request                 *int
	clearedrequest          bool
	done                    bool
	oldValue                func(context.Context) (*CodeReview, error)
	predicates              []predicate.CodeReview
}

var _ ent.Mutation = (*CodeReviewMutation)(nil)

// codereviewOption allows management of the mutation configuration using functional options.
type codereviewOption func(*CodeReviewMutation)

// newCodeReviewMutation creates new mutation for the CodeReview entity.
func newCodeReviewMutation(c config, op Op, opts ...codereviewOption) *CodeReviewMutation {
	m := &CodeReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeCodeReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCodeReviewID sets the ID field of the mutation.
func withCodeReviewID(id string) codereviewOption {
	return func(m *CodeReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *CodeReview
		)
		m.oldValue = func(ctx context.Context) (*CodeReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CodeReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCodeReview sets the old CodeReview of the mutation.
func withCodeReview(node *CodeReview) codereviewOption {
	return func(m *CodeReviewMutation) {
		m.oldValue = func(context.Context) (*CodeReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CodeReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CodeReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CodeReview entities.
func (m *CodeReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CodeReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CodeReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CodeReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *CodeReviewMutation) SetRequestID(i int) {
	m.request = &i
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *CodeReviewMutation) RequestID() (r int, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *CodeReviewMutation) ResetRequestID() {
	m.request = nil
}

// SetDecision sets the "decision" field.
func (m *CodeReviewMutation) SetDecision(c codereview.Decision) {
	m.decision = &c
}

// Decision returns the value of the "decision" field in the mutation.
func (m *CodeReviewMutation) Decision() (r codereview.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldDecision(ctx context.Context) (v codereview.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *CodeReviewMutation) ResetDecision() {
	m.decision = nil
}

// SetSummary sets the "summary" field.
func (m *CodeReviewMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CodeReviewMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *CodeReviewMutation) ResetSummary() {
	m.summary = nil
}

// SetDesignCompliance sets the "design_compliance" field.
func (m *CodeReviewMutation) SetDesignCompliance(b bool) {
	m.design_compliance = &b
}

// DesignCompliance returns the value of the "design_compliance" field in the mutation.
func (m *CodeReviewMutation) DesignCompliance() (r bool, exists bool) {
	v := m.design_compliance
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignCompliance returns the old "design_compliance" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldDesignCompliance(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignCompliance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignCompliance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignCompliance: %w", err)
	}
	return oldValue.DesignCompliance, nil
}

// ResetDesignCompliance resets all changes to the "design_compliance" field.
func (m *CodeReviewMutation) ResetDesignCompliance() {
	m.design_compliance = nil
}

// SetDesignComplianceNotes sets the "design_compliance_notes" field.
func (m *CodeReviewMutation) SetDesignComplianceNotes(s string) {
	m.design_compliance_notes = &s
}

// DesignComplianceNotes returns the value of the "design_compliance_notes" field in the mutation.
func (m *CodeReviewMutation) DesignComplianceNotes() (r string, exists bool) {
	v := m.design_compliance_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignComplianceNotes returns the old "design_compliance_notes" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldDesignComplianceNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignComplianceNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignComplianceNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignComplianceNotes: %w", err)
	}
	return oldValue.DesignComplianceNotes, nil
}

// ClearDesignComplianceNotes clears the value of the "design_compliance_notes" field.
func (m *CodeReviewMutation) ClearDesignComplianceNotes() {
	m.design_compliance_notes = nil
	m.clearedFields[codereview.FieldDesignComplianceNotes] = struct{}{}
}

// DesignComplianceNotesCleared returns if the "design_compliance_notes" field was cleared in this mutation.
func (m *CodeReviewMutation) DesignComplianceNotesCleared() bool {
	_, ok := m.clearedFields[codereview.FieldDesignComplianceNotes]
	return ok
}

// ResetDesignComplianceNotes resets all changes to the "design_compliance_notes" field.
func (m *CodeReviewMutation) ResetDesignComplianceNotes() {
	m.design_compliance_notes = nil
	delete(m.clearedFields, codereview.FieldDesignComplianceNotes)
}

// SetSecurityPass sets the "security_pass" field.
func (m *CodeReviewMutation) SetSecurityPass(b bool) {
	m.security_pass = &b
}

// SecurityPass returns the value of the "security_pass" field in the mutation.
func (m *CodeReviewMutation) SecurityPass() (r bool, exists bool) {
	v := m.security_pass
	if v == nil {
		return
	}
	return *v, true
}

// OldSecurityPass returns the old "security_pass" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldSecurityPass(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecurityPass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecurityPass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecurityPass: %w", err)
	}
	return oldValue.SecurityPass, nil
}

// ResetSecurityPass resets all changes to the "security_pass" field.
func (m *CodeReviewMutation) ResetSecurityPass() {
	m.security_pass = nil
}

// SetSecurityNotes sets the "security_notes" field.
func (m *CodeReviewMutation) SetSecurityNotes(s string) {
	m.security_notes = &s
}

// SecurityNotes returns the value of the "security_notes" field in the mutation.
func (m *CodeReviewMutation) SecurityNotes() (r string, exists bool) {
	v := m.security_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldSecurityNotes returns the old "security_notes" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldSecurityNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecurityNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecurityNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecurityNotes: %w", err)
	}
	return oldValue.SecurityNotes, nil
}

// ClearSecurityNotes clears the value of the "security_notes" field.
func (m *CodeReviewMutation) ClearSecurityNotes() {
	m.security_notes = nil
	m.clearedFields[codereview.FieldSecurityNotes] = struct{}{}
}

// SecurityNotesCleared returns if the "security_notes" field was cleared in this mutation.
func (m *CodeReviewMutation) SecurityNotesCleared() bool {
	_, ok := m.clearedFields[codereview.FieldSecurityNotes]
	return ok
}

// ResetSecurityNotes resets all changes to the "security_notes" field.
func (m *CodeReviewMutation) ResetSecurityNotes() {
	m.security_notes = nil
	delete(m.clearedFields, codereview.FieldSecurityNotes)
}

// SetCodingStandardsPass sets the "coding_standards_pass" field.
func (m *CodeReviewMutation) SetCodingStandardsPass(b bool) {
	m.coding_standards_pass = &b
}

// CodingStandardsPass returns the value of the "coding_standards_pass" field in the mutation.
func (m *CodeReviewMutation) CodingStandardsPass() (r bool, exists bool) {
	v := m.coding_standards_pass
	if v == nil {
		return
	}
	return *v, true
}

// OldCodingStandardsPass returns the old "coding_standards_pass" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldCodingStandardsPass(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodingStandardsPass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodingStandardsPass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodingStandardsPass: %w", err)
	}
	return oldValue.CodingStandardsPass, nil
}

// ResetCodingStandardsPass resets all changes to the "coding_standards_pass" field.
func (m *CodeReviewMutation) ResetCodingStandardsPass() {
	m.coding_standards_pass = nil
}

// SetCodingStandardsNotes sets the "coding_standards_notes" field.
func (m *CodeReviewMutation) SetCodingStandardsNotes(s string) {
	m.coding_standards_notes = &s
}

// CodingStandardsNotes returns the value of the "coding_standards_notes" field in the mutation.
func (m *CodeReviewMutation) CodingStandardsNotes() (r string, exists bool) {
	v := m.coding_standards_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldCodingStandardsNotes returns the old "coding_standards_notes" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldCodingStandardsNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCodingStandardsNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCodingStandardsNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCodingStandardsNotes: %w", err)
	}
	return oldValue.CodingStandardsNotes, nil
}

// ClearCodingStandardsNotes clears the value of the "coding_standards_notes" field.
func (m *CodeReviewMutation) ClearCodingStandardsNotes() {
	m.coding_standards_notes = nil
	m.clearedFields[codereview.FieldCodingStandardsNotes] = struct{}{}
}

// CodingStandardsNotesCleared returns if the "coding_standards_notes" field was cleared in this mutation.
func (m *CodeReviewMutation) CodingStandardsNotesCleared() bool {
	_, ok := m.clearedFields[codereview.FieldCodingStandardsNotes]
	return ok
}

// ResetCodingStandardsNotes resets all changes to the "coding_standards_notes" field.
func (m *CodeReviewMutation) ResetCodingStandardsNotes() {
	m.coding_standards_notes = nil
	delete(m.clearedFields, codereview.FieldCodingStandardsNotes)
}

// SetQualityScore sets the "quality_score" field.
func (m *CodeReviewMutation) SetQualityScore(i int) {
	m.quality_score = &i
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *CodeReviewMutation) QualityScore() (r int, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldQualityScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds i to the "quality_score" field.
func (m *CodeReviewMutation) AddQualityScore(i int) {
	if m.addquality_score != nil {
		*m.addquality_score += i
	} else {
		m.addquality_score = &i
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *CodeReviewMutation) AddedQualityScore() (r int, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *CodeReviewMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetFilesChanged sets the "files_changed" field.
func (m *CodeReviewMutation) SetFilesChanged(i int) {
	m.files_changed = &i
	m.addfiles_changed = nil
}

// FilesChanged returns the value of the "files_changed" field in the mutation.
func (m *CodeReviewMutation) FilesChanged() (r int, exists bool) {
	v := m.files_changed
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesChanged returns the old "files_changed" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldFilesChanged(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesChanged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesChanged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesChanged: %w", err)
	}
	return oldValue.FilesChanged, nil
}

// AddFilesChanged adds i to the "files_changed" field.
func (m *CodeReviewMutation) AddFilesChanged(i int) {
	if m.addfiles_changed != nil {
		*m.addfiles_changed += i
	} else {
		m.addfiles_changed = &i
	}
}

// AddedFilesChanged returns the value that was added to the "files_changed" field in this mutation.
func (m *CodeReviewMutation) AddedFilesChanged() (r int, exists bool) {
	v := m.addfiles_changed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFilesChanged resets all changes to the "files_changed" field.
func (m *CodeReviewMutation) ResetFilesChanged() {
	m.files_changed = nil
	m.addfiles_changed = nil
}

// SetLinesAdded sets the "lines_added" field.
func (m *CodeReviewMutation) SetLinesAdded(i int) {
	m.lines_added = &i
	m.addlines_added = nil
}

// LinesAdded returns the value of the "lines_added" field in the mutation.
func (m *CodeReviewMutation) LinesAdded() (r int, exists bool) {
	v := m.lines_added
	if v == nil {
		return
	}
	return *v, true
}

// OldLinesAdded returns the old "lines_added" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldLinesAdded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinesAdded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinesAdded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinesAdded: %w", err)
	}
	return oldValue.LinesAdded, nil
}

// AddLinesAdded adds i to the "lines_added" field.
func (m *CodeReviewMutation) AddLinesAdded(i int) {
	if m.addlines_added != nil {
		*m.addlines_added += i
	} else {
		m.addlines_added = &i
	}
}

// AddedLinesAdded returns the value that was added to the "lines_added" field in this mutation.
func (m *CodeReviewMutation) AddedLinesAdded() (r int, exists bool) {
	v := m.addlines_added
	if v == nil {
		return
	}
	return *v, true
}

// ResetLinesAdded resets all changes to the "lines_added" field.
func (m *CodeReviewMutation) ResetLinesAdded() {
	m.lines_added = nil
	m.addlines_added = nil
}

// SetLinesRemoved sets the "lines_removed" field.
func (m *CodeReviewMutation) SetLinesRemoved(i int) {
	m.lines_removed = &i
	m.addlines_removed = nil
}

// LinesRemoved returns the value of the "lines_removed" field in the mutation.
func (m *CodeReviewMutation) LinesRemoved() (r int, exists bool) {
	v := m.lines_removed
	if v == nil {
		return
	}
	return *v, true
}

// OldLinesRemoved returns the old "lines_removed" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldLinesRemoved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinesRemoved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinesRemoved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinesRemoved: %w", err)
	}
	return oldValue.LinesRemoved, nil
}

// AddLinesRemoved adds i to the "lines_removed" field.
func (m *CodeReviewMutation) AddLinesRemoved(i int) {
	if m.addlines_removed != nil {
		*m.addlines_removed += i
	} else {
		m.addlines_removed = &i
	}
}

// AddedLinesRemoved returns the value that was added to the "lines_removed" field in this mutation.
func (m *CodeReviewMutation) AddedLinesRemoved() (r int, exists bool) {
	v := m.addlines_removed
	if v == nil {
		return
	}
	return *v, true
}

// ResetLinesRemoved resets all changes to the "lines_removed" field.
func (m *CodeReviewMutation) ResetLinesRemoved() {
	m.lines_removed = nil
	m.addlines_removed = nil
}

// SetPrNumber sets the "pr_number" field.
func (m *CodeReviewMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *CodeReviewMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldPrNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *CodeReviewMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *CodeReviewMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *CodeReviewMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *CodeReviewMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *CodeReviewMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *CodeReviewMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *CodeReviewMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *CodeReviewMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *CodeReviewMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *CodeReviewMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *CodeReviewMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *CodeReviewMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *CodeReviewMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetModel sets the "model" field.
func (m *CodeReviewMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *CodeReviewMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *CodeReviewMutation) ClearModel() {
	m.model = nil
	m.clearedFields[codereview.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *CodeReviewMutation) ModelCleared() bool {
	_, ok := m.clearedFields[codereview.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *CodeReviewMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, codereview.FieldModel)
}

// SetDurationMs sets the "duration_ms" field.
func (m *CodeReviewMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *CodeReviewMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *CodeReviewMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *CodeReviewMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *CodeReviewMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CodeReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CodeReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CodeReview entity.
// If the CodeReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CodeReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CodeReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *CodeReviewMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[codereview.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *CodeReviewMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *CodeReviewMutation) RequestIDs() (ids []int) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *CodeReviewMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the CodeReviewMutation builder.
func (m *CodeReviewMutation) Where(ps ...predicate.CodeReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CodeReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CodeReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CodeReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CodeReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CodeReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CodeReview).
func (m *CodeReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CodeReviewMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.request != nil {
		fields = append(fields, codereview.FieldRequestID)
	}
	if m.decision != nil {
		fields = append(fields, codereview.FieldDecision)
	}
	if m.summary != nil {
		fields = append(fields, codereview.FieldSummary)
	}
	if m.design_compliance != nil {
		fields = append(fields, codereview.FieldDesignCompliance)
	}
	if m.design_compliance_notes != nil {
		fields = append(fields, codereview.FieldDesignComplianceNotes)
	}
	if m.security_pass != nil {
		fields = append(fields, codereview.FieldSecurityPass)
	}
	if m.security_notes != nil {
		fields = append(fields, codereview.FieldSecurityNotes)
	}
	if m.coding_standards_pass != nil {
		fields = append(fields, codereview.FieldCodingStandardsPass)
	}
	if m.coding_standards_notes != nil {
		fields = append(fields, codereview.FieldCodingStandardsNotes)
	}
	if m.quality_score != nil {
		fields = append(fields, codereview.FieldQualityScore)
	}
	if m.files_changed != nil {
		fields = append(fields, codereview.FieldFilesChanged)
	}
	if m.lines_added != nil {
		fields = append(fields, codereview.FieldLinesAdded)
	}
	if m.lines_removed != nil {
		fields = append(fields, codereview.FieldLinesRemoved)
	}
	if m.pr_number != nil {
		fields = append(fields, codereview.FieldPrNumber)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, codereview.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, codereview.FieldCompletionTokens)
	}
	if m.model != nil {
		fields = append(fields, codereview.FieldModel)
	}
	if m.duration_ms != nil {
		fields = append(fields, codereview.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, codereview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CodeReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case codereview.FieldRequestID:
		return m.RequestID()
	case codereview.FieldDecision:
		return m.Decision()
	case codereview.FieldSummary:
		return m.Summary()
	case codereview.FieldDesignCompliance:
		return m.DesignCompliance()
	case codereview.FieldDesignComplianceNotes:
		return m.DesignComplianceNotes()
	case codereview.FieldSecurityPass:
		return m.SecurityPass()
	case codereview.FieldSecurityNotes:
		return m.SecurityNotes()
	case codereview.FieldCodingStandardsPass:
		return m.CodingStandardsPass()
	case codereview.FieldCodingStandardsNotes:
		return m.CodingStandardsNotes()
	case codereview.FieldQualityScore:
		return m.QualityScore()
	case codereview.FieldFilesChanged:
		return m.FilesChanged()
	case codereview.FieldLinesAdded:
		return m.LinesAdded()
	case codereview.FieldLinesRemoved:
		return m.LinesRemoved()
	case codereview.FieldPrNumber:
		return m.PrNumber()
	case codereview.FieldPromptTokens:
		return m.PromptTokens()
	case codereview.FieldCompletionTokens:
		return m.CompletionTokens()
	case codereview.FieldModel:
		return m.Model()
	case codereview.FieldDurationMs:
		return m.DurationMs()
	case codereview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CodeReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case codereview.FieldRequestID:
		return m.OldRequestID(ctx)
	case codereview.FieldDecision:
		return m.OldDecision(ctx)
	case codereview.FieldSummary:
		return m.OldSummary(ctx)
	case codereview.FieldDesignCompliance:
		return m.OldDesignCompliance(ctx)
	case codereview.FieldDesignComplianceNotes:
		return m.OldDesignComplianceNotes(ctx)
	case codereview.FieldSecurityPass:
		return m.OldSecurityPass(ctx)
	case codereview.FieldSecurityNotes:
		return m.OldSecurityNotes(ctx)
	case codereview.FieldCodingStandardsPass:
		return m.OldCodingStandardsPass(ctx)
	case codereview.FieldCodingStandardsNotes:
		return m.OldCodingStandardsNotes(ctx)
	case codereview.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case codereview.FieldFilesChanged:
		return m.OldFilesChanged(ctx)
	case codereview.FieldLinesAdded:
		return m.OldLinesAdded(ctx)
	case codereview.FieldLinesRemoved:
		return m.OldLinesRemoved(ctx)
	case codereview.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case codereview.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case codereview.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case codereview.FieldModel:
		return m.OldModel(ctx)
	case codereview.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case codereview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CodeReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case codereview.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case codereview.FieldDecision:
		v, ok := value.(codereview.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case codereview.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case codereview.FieldDesignCompliance:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignCompliance(v)
		return nil
	case codereview.FieldDesignComplianceNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignComplianceNotes(v)
		return nil
	case codereview.FieldSecurityPass:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecurityPass(v)
		return nil
	case codereview.FieldSecurityNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecurityNotes(v)
		return nil
	case codereview.FieldCodingStandardsPass:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodingStandardsPass(v)
		return nil
	case codereview.FieldCodingStandardsNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCodingStandardsNotes(v)
		return nil
	case codereview.FieldQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case codereview.FieldFilesChanged:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesChanged(v)
		return nil
	case codereview.FieldLinesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinesAdded(v)
		return nil
	case codereview.FieldLinesRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinesRemoved(v)
		return nil
	case codereview.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case codereview.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case codereview.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case codereview.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case codereview.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case codereview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CodeReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CodeReviewMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, codereview.FieldQualityScore)
	}
	if m.addfiles_changed != nil {
		fields = append(fields, codereview.FieldFilesChanged)
	}
	if m.addlines_added != nil {
		fields = append(fields, codereview.FieldLinesAdded)
	}
	if m.addlines_removed != nil {
		fields = append(fields, codereview.FieldLinesRemoved)
	}
	if m.addpr_number != nil {
		fields = append(fields, codereview.FieldPrNumber)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, codereview.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, codereview.FieldCompletionTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, codereview.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CodeReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case codereview.FieldQualityScore:
		return m.AddedQualityScore()
	case codereview.FieldFilesChanged:
		return m.AddedFilesChanged()
	case codereview.FieldLinesAdded:
		return m.AddedLinesAdded()
	case codereview.FieldLinesRemoved:
		return m.AddedLinesRemoved()
	case codereview.FieldPrNumber:
		return m.AddedPrNumber()
	case codereview.FieldPromptTokens:
		return m.AddedPromptTokens()
	case codereview.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case codereview.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CodeReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case codereview.FieldQualityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case codereview.FieldFilesChanged:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFilesChanged(v)
		return nil
	case codereview.FieldLinesAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLinesAdded(v)
		return nil
	case codereview.FieldLinesRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLinesRemoved(v)
		return nil
	case codereview.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	case codereview.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case codereview.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case codereview.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown CodeReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CodeReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(codereview.FieldDesignComplianceNotes) {
		fields = append(fields, codereview.FieldDesignComplianceNotes)
	}
	if m.FieldCleared(codereview.FieldSecurityNotes) {
		fields = append(fields, codereview.FieldSecurityNotes)
	}
	if m.FieldCleared(codereview.FieldCodingStandardsNotes) {
		fields = append(fields, codereview.FieldCodingStandardsNotes)
	}
	if m.FieldCleared(codereview.FieldModel) {
		fields = append(fields, codereview.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CodeReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CodeReviewMutation) ClearField(name string) error {
	switch name {
	case codereview.FieldDesignComplianceNotes:
		m.ClearDesignComplianceNotes()
		return nil
	case codereview.FieldSecurityNotes:
		m.ClearSecurityNotes()
		return nil
	case codereview.FieldCodingStandardsNotes:
		m.ClearCodingStandardsNotes()
		return nil
	case codereview.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown CodeReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CodeReviewMutation) ResetField(name string) error {
	switch name {
	case codereview.FieldRequestID:
		m.ResetRequestID()
		return nil
	case codereview.FieldDecision:
		m.ResetDecision()
		return nil
	case codereview.FieldSummary:
		m.ResetSummary()
		return nil
	case codereview.FieldDesignCompliance:
		m.ResetDesignCompliance()
		return nil
	case codereview.FieldDesignComplianceNotes:
		m.ResetDesignComplianceNotes()
		return nil
	case codereview.FieldSecurityPass:
		m.ResetSecurityPass()
		return nil
	case codereview.FieldSecurityNotes:
		m.ResetSecurityNotes()
		return nil
	case codereview.FieldCodingStandardsPass:
		m.ResetCodingStandardsPass()
		return nil
	case codereview.FieldCodingStandardsNotes:
		m.ResetCodingStandardsNotes()
		return nil
	case codereview.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case codereview.FieldFilesChanged:
		m.ResetFilesChanged()
		return nil
	case codereview.FieldLinesAdded:
		m.ResetLinesAdded()
		return nil
	case codereview.FieldLinesRemoved:
		m.ResetLinesRemoved()
		return nil
	case codereview.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case codereview.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case codereview.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case codereview.FieldModel:
		m.ResetModel()
		return nil
	case codereview.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case codereview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CodeReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CodeReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, codereview.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CodeReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case codereview.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CodeReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CodeReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CodeReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, codereview.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CodeReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case codereview.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CodeReviewMutation) ClearEdge(name string) error {
	switch name {
	case codereview.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown CodeReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CodeReviewMutation) ResetEdge(name string) error {
	switch name {
	case codereview.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown CodeReview edge %s", name)
}

// CommentMutation represents an operation that mutates the Comment nodes in the graph.
type CommentMutation struct {
	config
	op             Op
	typ            string
	id             *string
	author         *string
	content        *string
	is_agent       *bool
	review_kind    *comment.ReviewKind
	review_id      *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *int
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*Comment, error)
	predicates     []predicate.Comment
}

var _ ent.Mutation = (*CommentMutation)(nil)

// commentOption allows management of the mutation configuration using functional options.
type commentOption func(*CommentMutation)

// newCommentMutation creates new mutation for the Comment entity.
func newCommentMutation(c config, op Op, opts ...commentOption) *CommentMutation {
	m := &CommentMutation{
		config:        c,
		op:            op,
		typ:           TypeComment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommentID sets the ID field of the mutation.
func withCommentID(id string) commentOption {
	return func(m *CommentMutation) {
		var (
			err   error
			once  sync.Once
			value *Comment
		)
		m.oldValue = func(ctx context.Context) (*Comment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComment sets the old Comment of the mutation.
func withComment(node *Comment) commentOption {
	return func(m *CommentMutation) {
		m.oldValue = func(context.Context) (*Comment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Comment entities.
func (m *CommentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *CommentMutation) SetRequestID(i int) {
	m.request = &i
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *CommentMutation) RequestID() (r int, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *CommentMutation) ResetRequestID() {
	m.request = nil
}

// SetAuthor sets the "author" field.
func (m *CommentMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *CommentMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *CommentMutation) ResetAuthor() {
	m.author = nil
}

// SetContent sets the "content" field.
func (m *CommentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *CommentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *CommentMutation) ResetContent() {
	m.content = nil
}

// SetIsAgent sets the "is_agent" field.
func (m *CommentMutation) SetIsAgent(b bool) {
	m.is_agent = &b
}

// IsAgent returns the value of the "is_agent" field in the mutation.
func (m *CommentMutation) IsAgent() (r bool, exists bool) {
	v := m.is_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAgent returns the old "is_agent" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldIsAgent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAgent: %w", err)
	}
	return oldValue.IsAgent, nil
}

// ResetIsAgent resets all changes to the "is_agent" field.
func (m *CommentMutation) ResetIsAgent() {
	m.is_agent = nil
}

// SetReviewKind sets the "review_kind" field.
func (m *CommentMutation) SetReviewKind(ck comment.ReviewKind) {
	m.review_kind = &ck
}

// ReviewKind returns the value of the "review_kind" field in the mutation.
func (m *CommentMutation) ReviewKind() (r comment.ReviewKind, exists bool) {
	v := m.review_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewKind returns the old "review_kind" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldReviewKind(ctx context.Context) (v *comment.ReviewKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewKind: %w", err)
	}
	return oldValue.ReviewKind, nil
}

// ClearReviewKind clears the value of the "review_kind" field.
func (m *CommentMutation) ClearReviewKind() {
	m.review_kind = nil
	m.clearedFields[comment.FieldReviewKind] = struct{}{}
}

// ReviewKindCleared returns if the "review_kind" field was cleared in this mutation.
func (m *CommentMutation) ReviewKindCleared() bool {
	_, ok := m.clearedFields[comment.FieldReviewKind]
	return ok
}

// ResetReviewKind resets all changes to the "review_kind" field.
func (m *CommentMutation) ResetReviewKind() {
	m.review_kind = nil
	delete(m.clearedFields, comment.FieldReviewKind)
}

// SetReviewID sets the "review_id" field.
func (m *CommentMutation) SetReviewID(s string) {
	m.review_id = &s
}

// ReviewID returns the value of the "review_id" field in the mutation.
func (m *CommentMutation) ReviewID() (r string, exists bool) {
	v := m.review_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewID returns the old "review_id" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldReviewID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewID: %w", err)
	}
	return oldValue.ReviewID, nil
}

// ClearReviewID clears the value of the "review_id" field.
func (m *CommentMutation) ClearReviewID() {
	m.review_id = nil
	m.clearedFields[comment.FieldReviewID] = struct{}{}
}

// ReviewIDCleared returns if the "review_id" field was cleared in this mutation.
func (m *CommentMutation) ReviewIDCleared() bool {
	_, ok := m.clearedFields[comment.FieldReviewID]
	return ok
}

// ResetReviewID resets all changes to the "review_id" field.
func (m *CommentMutation) ResetReviewID() {
	m.review_id = nil
	delete(m.clearedFields, comment.FieldReviewID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comment entity.
// If the Comment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *CommentMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[comment.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *CommentMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *CommentMutation) RequestIDs() (ids []int) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *CommentMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the CommentMutation builder.
func (m *CommentMutation) Where(ps ...predicate.Comment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comment).
func (m *CommentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.request != nil {
		fields = append(fields, comment.FieldRequestID)
	}
	if m.author != nil {
		fields = append(fields, comment.FieldAuthor)
	}
	if m.content != nil {
		fields = append(fields, comment.FieldContent)
	}
	if m.is_agent != nil {
		fields = append(fields, comment.FieldIsAgent)
	}
	if m.review_kind != nil {
		fields = append(fields, comment.FieldReviewKind)
	}
	if m.review_id != nil {
		fields = append(fields, comment.FieldReviewID)
	}
	if m.created_at != nil {
		fields = append(fields, comment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comment.FieldRequestID:
		return m.RequestID()
	case comment.FieldAuthor:
		return m.Author()
	case comment.FieldContent:
		return m.Content()
	case comment.FieldIsAgent:
		return m.IsAgent()
	case comment.FieldReviewKind:
		return m.ReviewKind()
	case comment.FieldReviewID:
		return m.ReviewID()
	case comment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comment.FieldRequestID:
		return m.OldRequestID(ctx)
	case comment.FieldAuthor:
		return m.OldAuthor(ctx)
	case comment.FieldContent:
		return m.OldContent(ctx)
	case comment.FieldIsAgent:
		return m.OldIsAgent(ctx)
	case comment.FieldReviewKind:
		return m.OldReviewKind(ctx)
	case comment.FieldReviewID:
		return m.OldReviewID(ctx)
	case comment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Comment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comment.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case comment.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case comment.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case comment.FieldIsAgent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAgent(v)
		return nil
	case comment.FieldReviewKind:
		v, ok := value.(comment.ReviewKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewKind(v)
		return nil
	case comment.FieldReviewID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewID(v)
		return nil
	case comment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Comment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comment.FieldReviewKind) {
		fields = append(fields, comment.FieldReviewKind)
	}
	if m.FieldCleared(comment.FieldReviewID) {
		fields = append(fields, comment.FieldReviewID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommentMutation) ClearField(name string) error {
	switch name {
	case comment.FieldReviewKind:
		m.ClearReviewKind()
		return nil
	case comment.FieldReviewID:
		m.ClearReviewID()
		return nil
	}
	return fmt.Errorf("unknown Comment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommentMutation) ResetField(name string) error {
	switch name {
	case comment.FieldRequestID:
		m.ResetRequestID()
		return nil
	case comment.FieldAuthor:
		m.ResetAuthor()
		return nil
	case comment.FieldContent:
		m.ResetContent()
		return nil
	case comment.FieldIsAgent:
		m.ResetIsAgent()
		return nil
	case comment.FieldReviewKind:
		m.ResetReviewKind()
		return nil
	case comment.FieldReviewID:
		m.ResetReviewID()
		return nil
	case comment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Comment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, comment.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case comment.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, comment.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommentMutation) EdgeCleared(name string) bool {
	switch name {
	case comment.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommentMutation) ClearEdge(name string) error {
	switch name {
	case comment.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown Comment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommentMutation) ResetEdge(name string) error {
	switch name {
	case comment.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown Comment edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op              Op
	typ             string
	id              *int
	name            *string
	owner           *string
	repo            *string
	active          *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	requests        map[int]struct{}
	removedrequests map[int]struct{}
	clearedrequests bool
	done            bool
	oldValue        func(context.Context) (*Project, error)
	predicates      []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetOwner sets the "owner" field.
func (m *ProjectMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *ProjectMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ResetOwner resets all changes to the "owner" field.
func (m *ProjectMutation) ResetOwner() {
	m.owner = nil
}

// SetRepo sets the "repo" field.
func (m *ProjectMutation) SetRepo(s string) {
	m.repo = &s
}

// Repo returns the value of the "repo" field in the mutation.
func (m *ProjectMutation) Repo() (r string, exists bool) {
	v := m.repo
	if v == nil {
		return
	}
	return *v, true
}

// OldRepo returns the old "repo" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepo: %w", err)
	}
	return oldValue.Repo, nil
}

// ResetRepo resets all changes to the "repo" field.
func (m *ProjectMutation) ResetRepo() {
	m.repo = nil
}

// SetActive sets the "active" field.
func (m *ProjectMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ProjectMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ProjectMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRequestIDs adds the "requests" edge to the Request entity by ids.
func (m *ProjectMutation) AddRequestIDs(ids ...int) {
	if m.requests == nil {
		m.requests = make(map[int]struct{})
	}
	for i := range ids {
		m.requests[ids[i]] = struct{}{}
	}
}

// ClearRequests clears the "requests" edge to the Request entity.
func (m *ProjectMutation) ClearRequests() {
	m.clearedrequests = true
}

// RequestsCleared reports if the "requests" edge to the Request entity was cleared.
func (m *ProjectMutation) RequestsCleared() bool {
	return m.clearedrequests
}

// RemoveRequestIDs removes the "requests" edge to the Request entity by IDs.
func (m *ProjectMutation) RemoveRequestIDs(ids ...int) {
	if m.removedrequests == nil {
		m.removedrequests = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.requests, ids[i])
		m.removedrequests[ids[i]] = struct{}{}
	}
}

// RemovedRequests returns the removed IDs of the "requests" edge to the Request entity.
func (m *ProjectMutation) RemovedRequestsIDs() (ids []int) {
	for id := range m.removedrequests {
		ids = append(ids, id)
	}
	return
}

// RequestsIDs returns the "requests" edge IDs in the mutation.
func (m *ProjectMutation) RequestsIDs() (ids []int) {
	for id := range m.requests {
		ids = append(ids, id)
	}
	return
}

// ResetRequests resets all changes to the "requests" edge.
func (m *ProjectMutation) ResetRequests() {
	m.requests = nil
	m.clearedrequests = false
	m.removedrequests = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.owner != nil {
		fields = append(fields, project.FieldOwner)
	}
	if m.repo != nil {
		fields = append(fields, project.FieldRepo)
	}
	if m.active != nil {
		fields = append(fields, project.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldOwner:
		return m.Owner()
	case project.FieldRepo:
		return m.Repo()
	case project.FieldActive:
		return m.Active()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldOwner:
		return m.OldOwner(ctx)
	case project.FieldRepo:
		return m.OldRepo(ctx)
	case project.FieldActive:
		return m.OldActive(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case project.FieldRepo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepo(v)
		return nil
	case project.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldOwner:
		m.ResetOwner()
		return nil
	case project.FieldRepo:
		m.ResetRepo()
		return nil
	case project.FieldActive:
		m.ResetActive()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.requests != nil {
		edges = append(edges, project.EdgeRequests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeRequests:
		ids := make([]ent.Value, 0, len(m.requests))
		for id := range m.requests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrequests != nil {
		edges = append(edges, project.EdgeRequests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeRequests:
		ids := make([]ent.Value, 0, len(m.removedrequests))
		for id := range m.removedrequests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequests {
		edges = append(edges, project.EdgeRequests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeRequests:
		return m.clearedrequests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeRequests:
		m.ResetRequests()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	title                     *string
	description               *string
	submitter_name            *string
	submitter_email           *string
	kind                      *request.Kind
	priority                  *request.Priority
	state                     *request.State
	steps_to_reproduce        *string
	expected_behavior         *string
	actual_behavior           *string
	last_triage_at            *time.Time
	triage_count              *int
	addtriage_count           *int
	last_architect_at         *time.Time
	architect_count           *int
	addarchitect_count        *int
	session_id                *string
	issue_number              *int
	addissue_number           *int
	pr_number                 *int
	addpr_number              *int
	pr_url                    *string
	branch_name               *string
	triggered_at              *time.Time
	completed_at              *time.Time
	implementation_status     *request.ImplementationStatus
	deployment_status         *request.DeploymentStatus
	deployment_run_id         *int64
	adddeployment_run_id      *int64
	deployed_at               *time.Time
	deployment_retry_count    *int
	adddeployment_retry_count *int
	branch_deleted            *bool
	stall_notified_at         *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	project                   *int
	clearedproject            bool
	comments                  map[string]struct{}
	removedcomments           map[string]struct{}
	clearedcomments           bool
	attachments               map[string]struct{}
	removedattachments        map[string]struct{}
	clearedattachments        bool
	triage_reviews            map[string]struct{}
	removedtriage_reviews     map[string]struct{}
	clearedtriage_reviews     bool
	architect_reviews         map[string]struct{}
	removedarchitect_reviews  map[string]struct{}
	clearedarchitect_reviews  bool
	code_reviews              map[string]struct{}
	removedcode_reviews       map[string]struct{}
	clearedcode_reviews       bool
	done                      bool
	oldValue                  func(context.Context) (*Request, error)
	predicates                []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id int) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *RequestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RequestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *RequestMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *RequestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RequestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RequestMutation) ResetDescription() {
	m.description = nil
}

// SetSubmitterName sets the "submitter_name" field.
func (m *RequestMutation) SetSubmitterName(s string) {
	m.submitter_name = &s
}

// SubmitterName returns the value of the "submitter_name" field in the mutation.
func (m *RequestMutation) SubmitterName() (r string, exists bool) {
	v := m.submitter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitterName returns the old "submitter_name" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldSubmitterName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitterName: %w", err)
	}
	return oldValue.SubmitterName, nil
}

// ClearSubmitterName clears the value of the "submitter_name" field.
func (m *RequestMutation) ClearSubmitterName() {
	m.submitter_name = nil
	m.clearedFields[request.FieldSubmitterName] = struct{}{}
}

// SubmitterNameCleared returns if the "submitter_name" field was cleared in this mutation.
func (m *RequestMutation) SubmitterNameCleared() bool {
	_, ok := m.clearedFields[request.FieldSubmitterName]
	return ok
}

// ResetSubmitterName resets all changes to the "submitter_name" field.
func (m *RequestMutation) ResetSubmitterName() {
	m.submitter_name = nil
	delete(m.clearedFields, request.FieldSubmitterName)
}

// SetSubmitterEmail sets the "submitter_email" field.
func (m *RequestMutation) SetSubmitterEmail(s string) {
	m.submitter_email = &s
}

// SubmitterEmail returns the value of the "submitter_email" field in the mutation.
func (m *RequestMutation) SubmitterEmail() (r string, exists bool) {
	v := m.submitter_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitterEmail returns the old "submitter_email" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldSubmitterEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitterEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitterEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitterEmail: %w", err)
	}
	return oldValue.SubmitterEmail, nil
}

// ClearSubmitterEmail clears the value of the "submitter_email" field.
func (m *RequestMutation) ClearSubmitterEmail() {
	m.submitter_email = nil
	m.clearedFields[request.FieldSubmitterEmail] = struct{}{}
}

// SubmitterEmailCleared returns if the "submitter_email" field was cleared in this mutation.
func (m *RequestMutation) SubmitterEmailCleared() bool {
	_, ok := m.clearedFields[request.FieldSubmitterEmail]
	return ok
}

// ResetSubmitterEmail resets all changes to the "submitter_email" field.
func (m *RequestMutation) ResetSubmitterEmail() {
	m.submitter_email = nil
	delete(m.clearedFields, request.FieldSubmitterEmail)
}

// SetProjectID sets the "project_id" field.
func (m *RequestMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *RequestMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *RequestMutation) ResetProjectID() {
	m.project = nil
}

// SetKind sets the "kind" field.
func (m *RequestMutation) SetKind(r request.Kind) {
	m.kind = &r
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RequestMutation) Kind() (r request.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldKind(ctx context.Context) (v request.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *RequestMutation) ResetKind() {
	m.kind = nil
}

// SetPriority sets the "priority" field.
func (m *RequestMutation) SetPriority(r request.Priority) {
	m.priority = &r
}

// Priority returns the value of the "priority" field in the mutation.
func (m *RequestMutation) Priority() (r request.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPriority(ctx context.Context) (v request.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *RequestMutation) ResetPriority() {
	m.priority = nil
}

// SetState sets the "state" field.
func (m *RequestMutation) SetState(r request.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *RequestMutation) State() (r request.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldState(ctx context.Context) (v request.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RequestMutation) ResetState() {
	m.state = nil
}

// SetStepsToReproduce sets the "steps_to_reproduce" field.
func (m *RequestMutation) SetStepsToReproduce(s string) {
	m.steps_to_reproduce = &s
}

// StepsToReproduce returns the value of the "steps_to_reproduce" field in the mutation.
func (m *RequestMutation) StepsToReproduce() (r string, exists bool) {
	v := m.steps_to_reproduce
	if v == nil {
		return
	}
	return *v, true
}

// OldStepsToReproduce returns the old "steps_to_reproduce" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldStepsToReproduce(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepsToReproduce is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepsToReproduce requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepsToReproduce: %w", err)
	}
	return oldValue.StepsToReproduce, nil
}

// ClearStepsToReproduce clears the value of the "steps_to_reproduce" field.
func (m *RequestMutation) ClearStepsToReproduce() {
	m.steps_to_reproduce = nil
	m.clearedFields[request.FieldStepsToReproduce] = struct{}{}
}

// StepsToReproduceCleared returns if the "steps_to_reproduce" field was cleared in this mutation.
func (m *RequestMutation) StepsToReproduceCleared() bool {
	_, ok := m.clearedFields[request.FieldStepsToReproduce]
	return ok
}

// ResetStepsToReproduce resets all changes to the "steps_to_reproduce" field.
func (m *RequestMutation) ResetStepsToReproduce() {
	m.steps_to_reproduce = nil
	delete(m.clearedFields, request.FieldStepsToReproduce)
}

// SetExpectedBehavior sets the "expected_behavior" field.
func (m *RequestMutation) SetExpectedBehavior(s string) {
	m.expected_behavior = &s
}

// ExpectedBehavior returns the value of the "expected_behavior" field in the mutation.
func (m *RequestMutation) ExpectedBehavior() (r string, exists bool) {
	v := m.expected_behavior
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedBehavior returns the old "expected_behavior" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldExpectedBehavior(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedBehavior is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedBehavior requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedBehavior: %w", err)
	}
	return oldValue.ExpectedBehavior, nil
}

// ClearExpectedBehavior clears the value of the "expected_behavior" field.
func (m *RequestMutation) ClearExpectedBehavior() {
	m.expected_behavior = nil
	m.clearedFields[request.FieldExpectedBehavior] = struct{}{}
}

// ExpectedBehaviorCleared returns if the "expected_behavior" field was cleared in this mutation.
func (m *RequestMutation) ExpectedBehaviorCleared() bool {
	_, ok := m.clearedFields[request.FieldExpectedBehavior]
	return ok
}

// ResetExpectedBehavior resets all changes to the "expected_behavior" field.
func (m *RequestMutation) ResetExpectedBehavior() {
	m.expected_behavior = nil
	delete(m.clearedFields, request.FieldExpectedBehavior)
}

// SetActualBehavior sets the "actual_behavior" field.
func (m *RequestMutation) SetActualBehavior(s string) {
	m.actual_behavior = &s
}

// ActualBehavior returns the value of the "actual_behavior" field in the mutation.
func (m *RequestMutation) ActualBehavior() (r string, exists bool) {
	v := m.actual_behavior
	if v == nil {
		return
	}
	return *v, true
}

// OldActualBehavior returns the old "actual_behavior" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldActualBehavior(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualBehavior is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualBehavior requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualBehavior: %w", err)
	}
	return oldValue.ActualBehavior, nil
}

// ClearActualBehavior clears the value of the "actual_behavior" field.
func (m *RequestMutation) ClearActualBehavior() {
	m.actual_behavior = nil
	m.clearedFields[request.FieldActualBehavior] = struct{}{}
}

// ActualBehaviorCleared returns if the "actual_behavior" field was cleared in this mutation.
func (m *RequestMutation) ActualBehaviorCleared() bool {
	_, ok := m.clearedFields[request.FieldActualBehavior]
	return ok
}

// ResetActualBehavior resets all changes to the "actual_behavior" field.
func (m *RequestMutation) ResetActualBehavior() {
	m.actual_behavior = nil
	delete(m.clearedFields, request.FieldActualBehavior)
}

// SetLastTriageAt sets the "last_triage_at" field.
func (m *RequestMutation) SetLastTriageAt(t time.Time) {
	m.last_triage_at = &t
}

// LastTriageAt returns the value of the "last_triage_at" field in the mutation.
func (m *RequestMutation) LastTriageAt() (r time.Time, exists bool) {
	v := m.last_triage_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTriageAt returns the old "last_triage_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldLastTriageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTriageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTriageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTriageAt: %w", err)
	}
	return oldValue.LastTriageAt, nil
}

// ClearLastTriageAt clears the value of the "last_triage_at" field.
func (m *RequestMutation) ClearLastTriageAt() {
	m.last_triage_at = nil
	m.clearedFields[request.FieldLastTriageAt] = struct{}{}
}

// LastTriageAtCleared returns if the "last_triage_at" field was cleared in this mutation.
func (m *RequestMutation) LastTriageAtCleared() bool {
	_, ok := m.clearedFields[request.FieldLastTriageAt]
	return ok
}

// ResetLastTriageAt resets all changes to the "last_triage_at" field.
func (m *RequestMutation) ResetLastTriageAt() {
	m.last_triage_at = nil
	delete(m.clearedFields, request.FieldLastTriageAt)
}

// SetTriageCount sets the "triage_count" field.
func (m *RequestMutation) SetTriageCount(i int) {
	m.triage_count = &i
	m.addtriage_count = nil
}

// TriageCount returns the value of the "triage_count" field in the mutation.
func (m *RequestMutation) TriageCount() (r int, exists bool) {
	v := m.triage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTriageCount returns the old "triage_count" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldTriageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriageCount: %w", err)
	}
	return oldValue.TriageCount, nil
}

// AddTriageCount adds i to the "triage_count" field.
func (m *RequestMutation) AddTriageCount(i int) {
	if m.addtriage_count != nil {
		*m.addtriage_count += i
	} else {
		m.addtriage_count = &i
	}
}

// AddedTriageCount returns the value that was added to the "triage_count" field in this mutation.
func (m *RequestMutation) AddedTriageCount() (r int, exists bool) {
	v := m.addtriage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTriageCount resets all changes to the "triage_count" field.
func (m *RequestMutation) ResetTriageCount() {
	m.triage_count = nil
	m.addtriage_count = nil
}

// SetLastArchitectAt sets the "last_architect_at" field.
func (m *RequestMutation) SetLastArchitectAt(t time.Time) {
	m.last_architect_at = &t
}

// LastArchitectAt returns the value of the "last_architect_at" field in the mutation.
func (m *RequestMutation) LastArchitectAt() (r time.Time, exists bool) {
	v := m.last_architect_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastArchitectAt returns the old "last_architect_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldLastArchitectAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastArchitectAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastArchitectAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastArchitectAt: %w", err)
	}
	return oldValue.LastArchitectAt, nil
}

// ClearLastArchitectAt clears the value of the "last_architect_at" field.
func (m *RequestMutation) ClearLastArchitectAt() {
	m.last_architect_at = nil
	m.clearedFields[request.FieldLastArchitectAt] = struct{}{}
}

// LastArchitectAtCleared returns if the "last_architect_at" field was cleared in this mutation.
func (m *RequestMutation) LastArchitectAtCleared() bool {
	_, ok := m.clearedFields[request.FieldLastArchitectAt]
	return ok
}

// ResetLastArchitectAt resets all changes to the "last_architect_at" field.
func (m *RequestMutation) ResetLastArchitectAt() {
	m.last_architect_at = nil
	delete(m.clearedFields, request.FieldLastArchitectAt)
}

// SetArchitectCount sets the "architect_count" field.
func (m *RequestMutation) SetArchitectCount(i int) {
	m.architect_count = &i
	m.addarchitect_count = nil
}

// ArchitectCount returns the value of the "architect_count" field in the mutation.
func (m *RequestMutation) ArchitectCount() (r int, exists bool) {
	v := m.architect_count
	if v == nil {
		return
	}
	return *v, true
}

// OldArchitectCount returns the old "architect_count" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldArchitectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchitectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchitectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchitectCount: %w", err)
	}
	return oldValue.ArchitectCount, nil
}

// AddArchitectCount adds i to the "architect_count" field.
func (m *RequestMutation) AddArchitectCount(i int) {
	if m.addarchitect_count != nil {
		*m.addarchitect_count += i
	} else {
		m.addarchitect_count = &i
	}
}

// AddedArchitectCount returns the value that was added to the "architect_count" field in this mutation.
func (m *RequestMutation) AddedArchitectCount() (r int, exists bool) {
	v := m.addarchitect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetArchitectCount resets all changes to the "architect_count" field.
func (m *RequestMutation) ResetArchitectCount() {
	m.architect_count = nil
	m.addarchitect_count = nil
}

// SetSessionID sets the "session_id" field.
func (m *RequestMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RequestMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *RequestMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[request.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *RequestMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[request.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RequestMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, request.FieldSessionID)
}

// SetIssueNumber sets the "issue_number" field.
func (m *RequestMutation) SetIssueNumber(i int) {
	m.issue_number = &i
	m.addissue_number = nil
}

// IssueNumber returns the value of the "issue_number" field in the mutation.
func (m *RequestMutation) IssueNumber() (r int, exists bool) {
	v := m.issue_number
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueNumber returns the old "issue_number" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldIssueNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueNumber: %w", err)
	}
	return oldValue.IssueNumber, nil
}

// AddIssueNumber adds i to the "issue_number" field.
func (m *RequestMutation) AddIssueNumber(i int) {
	if m.addissue_number != nil {
		*m.addissue_number += i
	} else {
		m.addissue_number = &i
	}
}

// AddedIssueNumber returns the value that was added to the "issue_number" field in this mutation.
func (m *RequestMutation) AddedIssueNumber() (r int, exists bool) {
	v := m.addissue_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearIssueNumber clears the value of the "issue_number" field.
func (m *RequestMutation) ClearIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	m.clearedFields[request.FieldIssueNumber] = struct{}{}
}

// IssueNumberCleared returns if the "issue_number" field was cleared in this mutation.
func (m *RequestMutation) IssueNumberCleared() bool {
	_, ok := m.clearedFields[request.FieldIssueNumber]
	return ok
}

// ResetIssueNumber resets all changes to the "issue_number" field.
func (m *RequestMutation) ResetIssueNumber() {
	m.issue_number = nil
	m.addissue_number = nil
	delete(m.clearedFields, request.FieldIssueNumber)
}

// SetPrNumber sets the "pr_number" field.
func (m *RequestMutation) SetPrNumber(i int) {
	m.pr_number = &i
	m.addpr_number = nil
}

// PrNumber returns the value of the "pr_number" field in the mutation.
func (m *RequestMutation) PrNumber() (r int, exists bool) {
	v := m.pr_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPrNumber returns the old "pr_number" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPrNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrNumber: %w", err)
	}
	return oldValue.PrNumber, nil
}

// AddPrNumber adds i to the "pr_number" field.
func (m *RequestMutation) AddPrNumber(i int) {
	if m.addpr_number != nil {
		*m.addpr_number += i
	} else {
		m.addpr_number = &i
	}
}

// AddedPrNumber returns the value that was added to the "pr_number" field in this mutation.
func (m *RequestMutation) AddedPrNumber() (r int, exists bool) {
	v := m.addpr_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrNumber clears the value of the "pr_number" field.
func (m *RequestMutation) ClearPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	m.clearedFields[request.FieldPrNumber] = struct{}{}
}

// PrNumberCleared returns if the "pr_number" field was cleared in this mutation.
func (m *RequestMutation) PrNumberCleared() bool {
	_, ok := m.clearedFields[request.FieldPrNumber]
	return ok
}

// ResetPrNumber resets all changes to the "pr_number" field.
func (m *RequestMutation) ResetPrNumber() {
	m.pr_number = nil
	m.addpr_number = nil
	delete(m.clearedFields, request.FieldPrNumber)
}

// SetPrURL sets the "pr_url" field.
func (m *RequestMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *RequestMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *RequestMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[request.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *RequestMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[request.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *RequestMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, request.FieldPrURL)
}

// SetBranchName sets the "branch_name" field.
func (m *RequestMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *RequestMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldBranchName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *RequestMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[request.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *RequestMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[request.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *RequestMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, request.FieldBranchName)
}

// SetTriggeredAt sets the "triggered_at" field.
func (m *RequestMutation) SetTriggeredAt(t time.Time) {
	m.triggered_at = &t
}

// TriggeredAt returns the value of the "triggered_at" field in the mutation.
func (m *RequestMutation) TriggeredAt() (r time.Time, exists bool) {
	v := m.triggered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggeredAt returns the old "triggered_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldTriggeredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggeredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggeredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggeredAt: %w", err)
	}
	return oldValue.TriggeredAt, nil
}

// ClearTriggeredAt clears the value of the "triggered_at" field.
func (m *RequestMutation) ClearTriggeredAt() {
	m.triggered_at = nil
	m.clearedFields[request.FieldTriggeredAt] = struct{}{}
}

// TriggeredAtCleared returns if the "triggered_at" field was cleared in this mutation.
func (m *RequestMutation) TriggeredAtCleared() bool {
	_, ok := m.clearedFields[request.FieldTriggeredAt]
	return ok
}

// ResetTriggeredAt resets all changes to the "triggered_at" field.
func (m *RequestMutation) ResetTriggeredAt() {
	m.triggered_at = nil
	delete(m.clearedFields, request.FieldTriggeredAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[request.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[request.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, request.FieldCompletedAt)
}

// SetImplementationStatus sets the "implementation_status" field.
func (m *RequestMutation) SetImplementationStatus(rs request.ImplementationStatus) {
	m.implementation_status = &rs
}

// ImplementationStatus returns the value of the "implementation_status" field in the mutation.
func (m *RequestMutation) ImplementationStatus() (r request.ImplementationStatus, exists bool) {
	v := m.implementation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldImplementationStatus returns the old "implementation_status" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldImplementationStatus(ctx context.Context) (v *request.ImplementationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImplementationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImplementationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImplementationStatus: %w", err)
	}
	return oldValue.ImplementationStatus, nil
}

// ClearImplementationStatus clears the value of the "implementation_status" field.
func (m *RequestMutation) ClearImplementationStatus() {
	m.implementation_status = nil
	m.clearedFields[request.FieldImplementationStatus] = struct{}{}
}

// ImplementationStatusCleared returns if the "implementation_status" field was cleared in this mutation.
func (m *RequestMutation) ImplementationStatusCleared() bool {
	_, ok := m.clearedFields[request.FieldImplementationStatus]
	return ok
}

// ResetImplementationStatus resets all changes to the "implementation_status" field.
func (m *RequestMutation) ResetImplementationStatus() {
	m.implementation_status = nil
	delete(m.clearedFields, request.FieldImplementationStatus)
}

// SetDeploymentStatus sets the "deployment_status" field.
func (m *RequestMutation) SetDeploymentStatus(rs request.DeploymentStatus) {
	m.deployment_status = &rs
}

// DeploymentStatus returns the value of the "deployment_status" field in the mutation.
func (m *RequestMutation) DeploymentStatus() (r request.DeploymentStatus, exists bool) {
	v := m.deployment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDeploymentStatus returns the old "deployment_status" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDeploymentStatus(ctx context.Context) (v request.DeploymentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeploymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeploymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeploymentStatus: %w", err)
	}
	return oldValue.DeploymentStatus, nil
}

// ResetDeploymentStatus resets all changes to the "deployment_status" field.
func (m *RequestMutation) ResetDeploymentStatus() {
	m.deployment_status = nil
}

// SetDeploymentRunID sets the "deployment_run_id" field.
func (m *RequestMutation) SetDeploymentRunID(i int64) {
	m.deployment_run_id = &i
	m.adddeployment_run_id = nil
}

// DeploymentRunID returns the value of the "deployment_run_id" field in the mutation.
func (m *RequestMutation) DeploymentRunID() (r int64, exists bool) {
	v := m.deployment_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeploymentRunID returns the old "deployment_run_id" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDeploymentRunID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeploymentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeploymentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeploymentRunID: %w", err)
	}
	return oldValue.DeploymentRunID, nil
}

// AddDeploymentRunID adds i to the "deployment_run_id" field.
func (m *RequestMutation) AddDeploymentRunID(i int64) {
	if m.adddeployment_run_id != nil {
		*m.adddeployment_run_id += i
	} else {
		m.adddeployment_run_id = &i
	}
}

// AddedDeploymentRunID returns the value that was added to the "deployment_run_id" field in this mutation.
func (m *RequestMutation) AddedDeploymentRunID() (r int64, exists bool) {
	v := m.adddeployment_run_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeploymentRunID clears the value of the "deployment_run_id" field.
func (m *RequestMutation) ClearDeploymentRunID() {
	m.deployment_run_id = nil
	m.adddeployment_run_id = nil
	m.clearedFields[request.FieldDeploymentRunID] = struct{}{}
}

// DeploymentRunIDCleared returns if the "deployment_run_id" field was cleared in this mutation.
func (m *RequestMutation) DeploymentRunIDCleared() bool {
	_, ok := m.clearedFields[request.FieldDeploymentRunID]
	return ok
}

// ResetDeploymentRunID resets all changes to the "deployment_run_id" field.
func (m *RequestMutation) ResetDeploymentRunID() {
	m.deployment_run_id = nil
	m.adddeployment_run_id = nil
	delete(m.clearedFields, request.FieldDeploymentRunID)
}

// SetDeployedAt sets the "deployed_at" field.
func (m *RequestMutation) SetDeployedAt(t time.Time) {
	m.deployed_at = &t
}

// DeployedAt returns the value of the "deployed_at" field in the mutation.
func (m *RequestMutation) DeployedAt() (r time.Time, exists bool) {
	v := m.deployed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployedAt returns the old "deployed_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDeployedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployedAt: %w", err)
	}
	return oldValue.DeployedAt, nil
}

// ClearDeployedAt clears the value of the "deployed_at" field.
func (m *RequestMutation) ClearDeployedAt() {
	m.deployed_at = nil
	m.clearedFields[request.FieldDeployedAt] = struct{}{}
}

// DeployedAtCleared returns if the "deployed_at" field was cleared in this mutation.
func (m *RequestMutation) DeployedAtCleared() bool {
	_, ok := m.clearedFields[request.FieldDeployedAt]
	return ok
}

// ResetDeployedAt resets all changes to the "deployed_at" field.
func (m *RequestMutation) ResetDeployedAt() {
	m.deployed_at = nil
	delete(m.clearedFields, request.FieldDeployedAt)
}

// SetDeploymentRetryCount sets the "deployment_retry_count" field.
func (m *RequestMutation) SetDeploymentRetryCount(i int) {
	m.deployment_retry_count = &i
	m.adddeployment_retry_count = nil
}

// DeploymentRetryCount returns the value of the "deployment_retry_count" field in the mutation.
func (m *RequestMutation) DeploymentRetryCount() (r int, exists bool) {
	v := m.deployment_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDeploymentRetryCount returns the old "deployment_retry_count" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldDeploymentRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeploymentRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeploymentRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeploymentRetryCount: %w", err)
	}
	return oldValue.DeploymentRetryCount, nil
}

// AddDeploymentRetryCount adds i to the "deployment_retry_count" field.
func (m *RequestMutation) AddDeploymentRetryCount(i int) {
	if m.adddeployment_retry_count != nil {
		*m.adddeployment_retry_count += i
	} else {
		m.adddeployment_retry_count = &i
	}
}

// AddedDeploymentRetryCount returns the value that was added to the "deployment_retry_count" field in this mutation.
func (m *RequestMutation) AddedDeploymentRetryCount() (r int, exists bool) {
	v := m.adddeployment_retry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeploymentRetryCount resets all changes to the "deployment_retry_count" field.
func (m *RequestMutation) ResetDeploymentRetryCount() {
	m.deployment_retry_count = nil
	m.adddeployment_retry_count = nil
}

// SetBranchDeleted sets the "branch_deleted" field.
func (m *RequestMutation) SetBranchDeleted(b bool) {
	m.branch_deleted = &b
}

// BranchDeleted returns the value of the "branch_deleted" field in the mutation.
func (m *RequestMutation) BranchDeleted() (r bool, exists bool) {
	v := m.branch_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchDeleted returns the old "branch_deleted" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldBranchDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchDeleted: %w", err)
	}
	return oldValue.BranchDeleted, nil
}

// ResetBranchDeleted resets all changes to the "branch_deleted" field.
func (m *RequestMutation) ResetBranchDeleted() {
	m.branch_deleted = nil
}

// SetStallNotifiedAt sets the "stall_notified_at" field.
func (m *RequestMutation) SetStallNotifiedAt(t time.Time) {
	m.stall_notified_at = &t
}

// StallNotifiedAt returns the value of the "stall_notified_at" field in the mutation.
func (m *RequestMutation) StallNotifiedAt() (r time.Time, exists bool) {
	v := m.stall_notified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStallNotifiedAt returns the old "stall_notified_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldStallNotifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStallNotifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStallNotifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStallNotifiedAt: %w", err)
	}
	return oldValue.StallNotifiedAt, nil
}

// ClearStallNotifiedAt clears the value of the "stall_notified_at" field.
func (m *RequestMutation) ClearStallNotifiedAt() {
	m.stall_notified_at = nil
	m.clearedFields[request.FieldStallNotifiedAt] = struct{}{}
}

// StallNotifiedAtCleared returns if the "stall_notified_at" field was cleared in this mutation.
func (m *RequestMutation) StallNotifiedAtCleared() bool {
	_, ok := m.clearedFields[request.FieldStallNotifiedAt]
	return ok
}

// ResetStallNotifiedAt resets all changes to the "stall_notified_at" field.
func (m *RequestMutation) ResetStallNotifiedAt() {
	m.stall_notified_at = nil
	delete(m.clearedFields, request.FieldStallNotifiedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *RequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *RequestMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[request.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *RequestMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *RequestMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *RequestMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddCommentIDs adds the "comments" edge to the Comment entity by ids.
func (m *RequestMutation) AddCommentIDs(ids ...string) {
	if m.comments == nil {
		m.comments = make(map[string]struct{})
	}
	for i := range ids {
		m.comments[ids[i]] = struct{}{}
	}
}

// ClearComments clears the "comments" edge to the Comment entity.
func (m *RequestMutation) ClearComments() {
	m.clearedcomments = true
}

// CommentsCleared reports if the "comments" edge to the Comment entity was cleared.
func (m *RequestMutation) CommentsCleared() bool {
	return m.clearedcomments
}

// RemoveCommentIDs removes the "comments" edge to the Comment entity by IDs.
func (m *RequestMutation) RemoveCommentIDs(ids ...string) {
	if m.removedcomments == nil {
		m.removedcomments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.comments, ids[i])
		m.removedcomments[ids[i]] = struct{}{}
	}
}

// RemovedComments returns the removed IDs of the "comments" edge to the Comment entity.
func (m *RequestMutation) RemovedCommentsIDs() (ids []string) {
	for id := range m.removedcomments {
		ids = append(ids, id)
	}
	return
}

// CommentsIDs returns the "comments" edge IDs in the mutation.
func (m *RequestMutation) CommentsIDs() (ids []string) {
	for id := range m.comments {
		ids = append(ids, id)
	}
	return
}

// ResetComments resets all changes to the "comments" edge.
func (m *RequestMutation) ResetComments() {
	m.comments = nil
	m.clearedcomments = false
	m.removedcomments = nil
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by ids.
func (m *RequestMutation) AddAttachmentIDs(ids ...string) {
	if m.attachments == nil {
		m.attachments = make(map[string]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the Attachment entity.
func (m *RequestMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the Attachment entity was cleared.
func (m *RequestMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the Attachment entity by IDs.
func (m *RequestMutation) RemoveAttachmentIDs(ids ...string) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the Attachment entity.
func (m *RequestMutation) RemovedAttachmentsIDs() (ids []string) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *RequestMutation) AttachmentsIDs() (ids []string) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *RequestMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// AddTriageReviewIDs adds the "triage_reviews" edge to the TriageReview entity by ids.
func (m *RequestMutation) AddTriageReviewIDs(ids ...string) {
	if m.triage_reviews == nil {
		m.triage_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.triage_reviews[ids[i]] = struct{}{}
	}
}

// ClearTriageReviews clears the "triage_reviews" edge to the TriageReview entity.
func (m *RequestMutation) ClearTriageReviews() {
	m.clearedtriage_reviews = true
}

// TriageReviewsCleared reports if the "triage_reviews" edge to the TriageReview entity was cleared.
func (m *RequestMutation) TriageReviewsCleared() bool {
	return m.clearedtriage_reviews
}

// RemoveTriageReviewIDs removes the "triage_reviews" edge to the TriageReview entity by IDs.
func (m *RequestMutation) RemoveTriageReviewIDs(ids ...string) {
	if m.removedtriage_reviews == nil {
		m.removedtriage_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.triage_reviews, ids[i])
		m.removedtriage_reviews[ids[i]] = struct{}{}
	}
}

// RemovedTriageReviews returns the removed IDs of the "triage_reviews" edge to the TriageReview entity.
func (m *RequestMutation) RemovedTriageReviewsIDs() (ids []string) {
	for id := range m.removedtriage_reviews {
		ids = append(ids, id)
	}
	return
}

// TriageReviewsIDs returns the "triage_reviews" edge IDs in the mutation.
func (m *RequestMutation) TriageReviewsIDs() (ids []string) {
	for id := range m.triage_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetTriageReviews resets all changes to the "triage_reviews" edge.
func (m *RequestMutation) ResetTriageReviews() {
	m.triage_reviews = nil
	m.clearedtriage_reviews = false
	m.removedtriage_reviews = nil
}

// AddArchitectReviewIDs adds the "architect_reviews" edge to the ArchitectReview entity by ids.
func (m *RequestMutation) AddArchitectReviewIDs(ids ...string) {
	if m.architect_reviews == nil {
		m.architect_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.architect_reviews[ids[i]] = struct{}{}
	}
}

// ClearArchitectReviews clears the "architect_reviews" edge to the ArchitectReview entity.
func (m *RequestMutation) ClearArchitectReviews() {
	m.clearedarchitect_reviews = true
}

// ArchitectReviewsCleared reports if the "architect_reviews" edge to the ArchitectReview entity was cleared.
func (m *RequestMutation) ArchitectReviewsCleared() bool {
	return m.clearedarchitect_reviews
}

// RemoveArchitectReviewIDs removes the "architect_reviews" edge to the ArchitectReview entity by IDs.
func (m *RequestMutation) RemoveArchitectReviewIDs(ids ...string) {
	if m.removedarchitect_reviews == nil {
		m.removedarchitect_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.architect_reviews, ids[i])
		m.removedarchitect_reviews[ids[i]] = struct{}{}
	}
}

// RemovedArchitectReviews returns the removed IDs of the "architect_reviews" edge to the ArchitectReview entity.
func (m *RequestMutation) RemovedArchitectReviewsIDs() (ids []string) {
	for id := range m.removedarchitect_reviews {
		ids = append(ids, id)
	}
	return
}

// ArchitectReviewsIDs returns the "architect_reviews" edge IDs in the mutation.
func (m *RequestMutation) ArchitectReviewsIDs() (ids []string) {
	for id := range m.architect_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetArchitectReviews resets all changes to the "architect_reviews" edge.
func (m *RequestMutation) ResetArchitectReviews() {
	m.architect_reviews = nil
	m.clearedarchitect_reviews = false
	m.removedarchitect_reviews = nil
}

// AddCodeReviewIDs adds the "code_reviews" edge to the CodeReview entity by ids.
func (m *RequestMutation) AddCodeReviewIDs(ids ...string) {
	if m.code_reviews == nil {
		m.code_reviews = make(map[string]struct{})
	}
	for i := range ids {
		m.code_reviews[ids[i]] = struct{}{}
	}
}

// ClearCodeReviews clears the "code_reviews" edge to the CodeReview entity.
func (m *RequestMutation) ClearCodeReviews() {
	m.clearedcode_reviews = true
}

// CodeReviewsCleared reports if the "code_reviews" edge to the CodeReview entity was cleared.
func (m *RequestMutation) CodeReviewsCleared() bool {
	return m.clearedcode_reviews
}

// RemoveCodeReviewIDs removes the "code_reviews" edge to the CodeReview entity by IDs.
func (m *RequestMutation) RemoveCodeReviewIDs(ids ...string) {
	if m.removedcode_reviews == nil {
		m.removedcode_reviews = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.code_reviews, ids[i])
		m.removedcode_reviews[ids[i]] = struct{}{}
	}
}

// RemovedCodeReviews returns the removed IDs of the "code_reviews" edge to the CodeReview entity.
func (m *RequestMutation) RemovedCodeReviewsIDs() (ids []string) {
	for id := range m.removedcode_reviews {
		ids = append(ids, id)
	}
	return
}

// CodeReviewsIDs returns the "code_reviews" edge IDs in the mutation.
func (m *RequestMutation) CodeReviewsIDs() (ids []string) {
	for id := range m.code_reviews {
		ids = append(ids, id)
	}
	return
}

// ResetCodeReviews resets all changes to the "code_reviews" edge.
func (m *RequestMutation) ResetCodeReviews() {
	m.code_reviews = nil
	m.clearedcode_reviews = false
	m.removedcode_reviews = nil
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 31)
	if m.title != nil {
		fields = append(fields, request.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, request.FieldDescription)
	}
	if m.submitter_name != nil {
		fields = append(fields, request.FieldSubmitterName)
	}
	if m.submitter_email != nil {
		fields = append(fields, request.FieldSubmitterEmail)
	}
	if m.project != nil {
		fields = append(fields, request.FieldProjectID)
	}
	if m.kind != nil {
		fields = append(fields, request.FieldKind)
	}
	if m.priority != nil {
		fields = append(fields, request.FieldPriority)
	}
	if m.state != nil {
		fields = append(fields, request.FieldState)
	}
	if m.steps_to_reproduce != nil {
		fields = append(fields, request.FieldStepsToReproduce)
	}
	if m.expected_behavior != nil {
		fields = append(fields, request.FieldExpectedBehavior)
	}
	if m.actual_behavior != nil {
		fields = append(fields, request.FieldActualBehavior)
	}
	if m.last_triage_at != nil {
		fields = append(fields, request.FieldLastTriageAt)
	}
	if m.triage_count != nil {
		fields = append(fields, request.FieldTriageCount)
	}
	if m.last_architect_at != nil {
		fields = append(fields, request.FieldLastArchitectAt)
	}
	if m.architect_count != nil {
		fields = append(fields, request.FieldArchitectCount)
	}
	if m.session_id != nil {
		fields = append(fields, request.FieldSessionID)
	}
	if m.issue_number != nil {
		fields = append(fields, request.FieldIssueNumber)
	}
	if m.pr_number != nil {
		fields = append(fields, request.FieldPrNumber)
	}
	if m.pr_url != nil {
		fields = append(fields, request.FieldPrURL)
	}
	if m.branch_name != nil {
		fields = append(fields, request.FieldBranchName)
	}
	if m.triggered_at != nil {
		fields = append(fields, request.FieldTriggeredAt)
	}
	if m.completed_at != nil {
		fields = append(fields, request.FieldCompletedAt)
	}
	if m.implementation_status != nil {
		fields = append(fields, request.FieldImplementationStatus)
	}
	if m.deployment_status != nil {
		fields = append(fields, request.FieldDeploymentStatus)
	}
	if m.deployment_run_id != nil {
		fields = append(fields, request.FieldDeploymentRunID)
	}
	if m.deployed_at != nil {
		fields = append(fields, request.FieldDeployedAt)
	}
	if m.deployment_retry_count != nil {
		fields = append(fields, request.FieldDeploymentRetryCount)
	}
	if m.branch_deleted != nil {
		fields = append(fields, request.FieldBranchDeleted)
	}
	if m.stall_notified_at != nil {
		fields = append(fields, request.FieldStallNotifiedAt)
	}
	if m.created_at != nil {
		fields = append(fields, request.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, request.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldTitle:
		return m.Title()
	case request.FieldDescription:
		return m.Description()
	case request.FieldSubmitterName:
		return m.SubmitterName()
	case request.FieldSubmitterEmail:
		return m.SubmitterEmail()
	case request.FieldProjectID:
		return m.ProjectID()
	case request.FieldKind:
		return m.Kind()
	case request.FieldPriority:
		return m.Priority()
	case request.FieldState:
		return m.State()
	case request.FieldStepsToReproduce:
		return m.StepsToReproduce()
	case request.FieldExpectedBehavior:
		return m.ExpectedBehavior()
	case request.FieldActualBehavior:
		return m.ActualBehavior()
	case request.FieldLastTriageAt:
		return m.LastTriageAt()
	case request.FieldTriageCount:
		return m.TriageCount()
	case request.FieldLastArchitectAt:
		return m.LastArchitectAt()
	case request.FieldArchitectCount:
		return m.ArchitectCount()
	case request.FieldSessionID:
		return m.SessionID()
	case request.FieldIssueNumber:
		return m.IssueNumber()
	case request.FieldPrNumber:
		return m.PrNumber()
	case request.FieldPrURL:
		return m.PrURL()
	case request.FieldBranchName:
		return m.BranchName()
	case request.FieldTriggeredAt:
		return m.TriggeredAt()
	case request.FieldCompletedAt:
		return m.CompletedAt()
	case request.FieldImplementationStatus:
		return m.ImplementationStatus()
	case request.FieldDeploymentStatus:
		return m.DeploymentStatus()
	case request.FieldDeploymentRunID:
		return m.DeploymentRunID()
	case request.FieldDeployedAt:
		return m.DeployedAt()
	case request.FieldDeploymentRetryCount:
		return m.DeploymentRetryCount()
	case request.FieldBranchDeleted:
		return m.BranchDeleted()
	case request.FieldStallNotifiedAt:
		return m.StallNotifiedAt()
	case request.FieldCreatedAt:
		return m.CreatedAt()
	case request.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldTitle:
		return m.OldTitle(ctx)
	case request.FieldDescription:
		return m.OldDescription(ctx)
	case request.FieldSubmitterName:
		return m.OldSubmitterName(ctx)
	case request.FieldSubmitterEmail:
		return m.OldSubmitterEmail(ctx)
	case request.FieldProjectID:
		return m.OldProjectID(ctx)
	case request.FieldKind:
		return m.OldKind(ctx)
	case request.FieldPriority:
		return m.OldPriority(ctx)
	case request.FieldState:
		return m.OldState(ctx)
	case request.FieldStepsToReproduce:
		return m.OldStepsToReproduce(ctx)
	case request.FieldExpectedBehavior:
		return m.OldExpectedBehavior(ctx)
	case request.FieldActualBehavior:
		return m.OldActualBehavior(ctx)
	case request.FieldLastTriageAt:
		return m.OldLastTriageAt(ctx)
	case request.FieldTriageCount:
		return m.OldTriageCount(ctx)
	case request.FieldLastArchitectAt:
		return m.OldLastArchitectAt(ctx)
	case request.FieldArchitectCount:
		return m.OldArchitectCount(ctx)
	case request.FieldSessionID:
		return m.OldSessionID(ctx)
	case request.FieldIssueNumber:
		return m.OldIssueNumber(ctx)
	case request.FieldPrNumber:
		return m.OldPrNumber(ctx)
	case request.FieldPrURL:
		return m.OldPrURL(ctx)
	case request.FieldBranchName:
		return m.OldBranchName(ctx)
	case request.FieldTriggeredAt:
		return m.OldTriggeredAt(ctx)
	case request.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case request.FieldImplementationStatus:
		return m.OldImplementationStatus(ctx)
	case request.FieldDeploymentStatus:
		return m.OldDeploymentStatus(ctx)
	case request.FieldDeploymentRunID:
		return m.OldDeploymentRunID(ctx)
	case request.FieldDeployedAt:
		return m.OldDeployedAt(ctx)
	case request.FieldDeploymentRetryCount:
		return m.OldDeploymentRetryCount(ctx)
	case request.FieldBranchDeleted:
		return m.OldBranchDeleted(ctx)
	case request.FieldStallNotifiedAt:
		return m.OldStallNotifiedAt(ctx)
	case request.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case request.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case request.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case request.FieldSubmitterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitterName(v)
		return nil
	case request.FieldSubmitterEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitterEmail(v)
		return nil
	case request.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case request.FieldKind:
		v, ok := value.(request.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case request.FieldPriority:
		v, ok := value.(request.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case request.FieldState:
		v, ok := value.(request.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case request.FieldStepsToReproduce:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepsToReproduce(v)
		return nil
	case request.FieldExpectedBehavior:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedBehavior(v)
		return nil
	case request.FieldActualBehavior:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualBehavior(v)
		return nil
	case request.FieldLastTriageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTriageAt(v)
		return nil
	case request.FieldTriageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriageCount(v)
		return nil
	case request.FieldLastArchitectAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastArchitectAt(v)
		return nil
	case request.FieldArchitectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchitectCount(v)
		return nil
	case request.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case request.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueNumber(v)
		return nil
	case request.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrNumber(v)
		return nil
	case request.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case request.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case request.FieldTriggeredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggeredAt(v)
		return nil
	case request.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case request.FieldImplementationStatus:
		v, ok := value.(request.ImplementationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImplementationStatus(v)
		return nil
	case request.FieldDeploymentStatus:
		v, ok := value.(request.DeploymentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeploymentStatus(v)
		return nil
	case request.FieldDeploymentRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeploymentRunID(v)
		return nil
	case request.FieldDeployedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployedAt(v)
		return nil
	case request.FieldDeploymentRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeploymentRetryCount(v)
		return nil
	case request.FieldBranchDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchDeleted(v)
		return nil
	case request.FieldStallNotifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStallNotifiedAt(v)
		return nil
	case request.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case request.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.addtriage_count != nil {
		fields = append(fields, request.FieldTriageCount)
	}
	if m.addarchitect_count != nil {
		fields = append(fields, request.FieldArchitectCount)
	}
	if m.addissue_number != nil {
		fields = append(fields, request.FieldIssueNumber)
	}
	if m.addpr_number != nil {
		fields = append(fields, request.FieldPrNumber)
	}
	if m.adddeployment_run_id != nil {
		fields = append(fields, request.FieldDeploymentRunID)
	}
	if m.adddeployment_retry_count != nil {
		fields = append(fields, request.FieldDeploymentRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldTriageCount:
		return m.AddedTriageCount()
	case request.FieldArchitectCount:
		return m.AddedArchitectCount()
	case request.FieldIssueNumber:
		return m.AddedIssueNumber()
	case request.FieldPrNumber:
		return m.AddedPrNumber()
	case request.FieldDeploymentRunID:
		return m.AddedDeploymentRunID()
	case request.FieldDeploymentRetryCount:
		return m.AddedDeploymentRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldTriageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTriageCount(v)
		return nil
	case request.FieldArchitectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArchitectCount(v)
		return nil
	case request.FieldIssueNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssueNumber(v)
		return nil
	case request.FieldPrNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrNumber(v)
		return nil
	case request.FieldDeploymentRunID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeploymentRunID(v)
		return nil
	case request.FieldDeploymentRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeploymentRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(request.FieldSubmitterName) {
		fields = append(fields, request.FieldSubmitterName)
	}
	if m.FieldCleared(request.FieldSubmitterEmail) {
		fields = append(fields, request.FieldSubmitterEmail)
	}
	if m.FieldCleared(request.FieldStepsToReproduce) {
		fields = append(fields, request.FieldStepsToReproduce)
	}
	if m.FieldCleared(request.FieldExpectedBehavior) {
		fields = append(fields, request.FieldExpectedBehavior)
	}
	if m.FieldCleared(request.FieldActualBehavior) {
		fields = append(fields, request.FieldActualBehavior)
	}
	if m.FieldCleared(request.FieldLastTriageAt) {
		fields = append(fields, request.FieldLastTriageAt)
	}
	if m.FieldCleared(request.FieldLastArchitectAt) {
		fields = append(fields, request.FieldLastArchitectAt)
	}
	if m.FieldCleared(request.FieldSessionID) {
		fields = append(fields, request.FieldSessionID)
	}
	if m.FieldCleared(request.FieldIssueNumber) {
		fields = append(fields, request.FieldIssueNumber)
	}
	if m.FieldCleared(request.FieldPrNumber) {
		fields = append(fields, request.FieldPrNumber)
	}
	if m.FieldCleared(request.FieldPrURL) {
		fields = append(fields, request.FieldPrURL)
	}
	if m.FieldCleared(request.FieldBranchName) {
		fields = append(fields, request.FieldBranchName)
	}
	if m.FieldCleared(request.FieldTriggeredAt) {
		fields = append(fields, request.FieldTriggeredAt)
	}
	if m.FieldCleared(request.FieldCompletedAt) {
		fields = append(fields, request.FieldCompletedAt)
	}
	if m.FieldCleared(request.FieldImplementationStatus) {
		fields = append(fields, request.FieldImplementationStatus)
	}
	if m.FieldCleared(request.FieldDeploymentRunID) {
		fields = append(fields, request.FieldDeploymentRunID)
	}
	if m.FieldCleared(request.FieldDeployedAt) {
		fields = append(fields, request.FieldDeployedAt)
	}
	if m.FieldCleared(request.FieldStallNotifiedAt) {
		fields = append(fields, request.FieldStallNotifiedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	switch name {
	case request.FieldSubmitterName:
		m.ClearSubmitterName()
		return nil
	case request.FieldSubmitterEmail:
		m.ClearSubmitterEmail()
		return nil
	case request.FieldStepsToReproduce:
		m.ClearStepsToReproduce()
		return nil
	case request.FieldExpectedBehavior:
		m.ClearExpectedBehavior()
		return nil
	case request.FieldActualBehavior:
		m.ClearActualBehavior()
		return nil
	case request.FieldLastTriageAt:
		m.ClearLastTriageAt()
		return nil
	case request.FieldLastArchitectAt:
		m.ClearLastArchitectAt()
		return nil
	case request.FieldSessionID:
		m.ClearSessionID()
		return nil
	case request.FieldIssueNumber:
		m.ClearIssueNumber()
		return nil
	case request.FieldPrNumber:
		m.ClearPrNumber()
		return nil
	case request.FieldPrURL:
		m.ClearPrURL()
		return nil
	case request.FieldBranchName:
		m.ClearBranchName()
		return nil
	case request.FieldTriggeredAt:
		m.ClearTriggeredAt()
		return nil
	case request.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case request.FieldImplementationStatus:
		m.ClearImplementationStatus()
		return nil
	case request.FieldDeploymentRunID:
		m.ClearDeploymentRunID()
		return nil
	case request.FieldDeployedAt:
		m.ClearDeployedAt()
		return nil
	case request.FieldStallNotifiedAt:
		m.ClearStallNotifiedAt()
		return nil
	}
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldTitle:
		m.ResetTitle()
		return nil
	case request.FieldDescription:
		m.ResetDescription()
		return nil
	case request.FieldSubmitterName:
		m.ResetSubmitterName()
		return nil
	case request.FieldSubmitterEmail:
		m.ResetSubmitterEmail()
		return nil
	case request.FieldProjectID:
		m.ResetProjectID()
		return nil
	case request.FieldKind:
		m.ResetKind()
		return nil
	case request.FieldPriority:
		m.ResetPriority()
		return nil
	case request.FieldState:
		m.ResetState()
		return nil
	case request.FieldStepsToReproduce:
		m.ResetStepsToReproduce()
		return nil
	case request.FieldExpectedBehavior:
		m.ResetExpectedBehavior()
		return nil
	case request.FieldActualBehavior:
		m.ResetActualBehavior()
		return nil
	case request.FieldLastTriageAt:
		m.ResetLastTriageAt()
		return nil
	case request.FieldTriageCount:
		m.ResetTriageCount()
		return nil
	case request.FieldLastArchitectAt:
		m.ResetLastArchitectAt()
		return nil
	case request.FieldArchitectCount:
		m.ResetArchitectCount()
		return nil
	case request.FieldSessionID:
		m.ResetSessionID()
		return nil
	case request.FieldIssueNumber:
		m.ResetIssueNumber()
		return nil
	case request.FieldPrNumber:
		m.ResetPrNumber()
		return nil
	case request.FieldPrURL:
		m.ResetPrURL()
		return nil
	case request.FieldBranchName:
		m.ResetBranchName()
		return nil
	case request.FieldTriggeredAt:
		m.ResetTriggeredAt()
		return nil
	case request.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case request.FieldImplementationStatus:
		m.ResetImplementationStatus()
		return nil
	case request.FieldDeploymentStatus:
		m.ResetDeploymentStatus()
		return nil
	case request.FieldDeploymentRunID:
		m.ResetDeploymentRunID()
		return nil
	case request.FieldDeployedAt:
		m.ResetDeployedAt()
		return nil
	case request.FieldDeploymentRetryCount:
		m.ResetDeploymentRetryCount()
		return nil
	case request.FieldBranchDeleted:
		m.ResetBranchDeleted()
		return nil
	case request.FieldStallNotifiedAt:
		m.ResetStallNotifiedAt()
		return nil
	case request.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case request.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.project != nil {
		edges = append(edges, request.EdgeProject)
	}
	if m.comments != nil {
		edges = append(edges, request.EdgeComments)
	}
	if m.attachments != nil {
		edges = append(edges, request.EdgeAttachments)
	}
	if m.triage_reviews != nil {
		edges = append(edges, request.EdgeTriageReviews)
	}
	if m.architect_reviews != nil {
		edges = append(edges, request.EdgeArchitectReviews)
	}
	if m.code_reviews != nil {
		edges = append(edges, request.EdgeCodeReviews)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case request.EdgeComments:
		ids := make([]ent.Value, 0, len(m.comments))
		for id := range m.comments {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeTriageReviews:
		ids := make([]ent.Value, 0, len(m.triage_reviews))
		for id := range m.triage_reviews {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeArchitectReviews:
		ids := make([]ent.Value, 0, len(m.architect_reviews))
		for id := range m.architect_reviews {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeCodeReviews:
		ids := make([]ent.Value, 0, len(m.code_reviews))
		for id := range m.code_reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedcomments != nil {
		edges = append(edges, request.EdgeComments)
	}
	if m.removedattachments != nil {
		edges = append(edges, request.EdgeAttachments)
	}
	if m.removedtriage_reviews != nil {
		edges = append(edges, request.EdgeTriageReviews)
	}
	if m.removedarchitect_reviews != nil {
		edges = append(edges, request.EdgeArchitectReviews)
	}
	if m.removedcode_reviews != nil {
		edges = append(edges, request.EdgeCodeReviews)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case request.EdgeComments:
		ids := make([]ent.Value, 0, len(m.removedcomments))
		for id := range m.removedcomments {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeTriageReviews:
		ids := make([]ent.Value, 0, len(m.removedtriage_reviews))
		for id := range m.removedtriage_reviews {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeArchitectReviews:
		ids := make([]ent.Value, 0, len(m.removedarchitect_reviews))
		for id := range m.removedarchitect_reviews {
			ids = append(ids, id)
		}
		return ids
	case request.EdgeCodeReviews:
		ids := make([]ent.Value, 0, len(m.removedcode_reviews))
		for id := range m.removedcode_reviews {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedproject {
		edges = append(edges, request.EdgeProject)
	}
	if m.clearedcomments {
		edges = append(edges, request.EdgeComments)
	}
	if m.clearedattachments {
		edges = append(edges, request.EdgeAttachments)
	}
	if m.clearedtriage_reviews {
		edges = append(edges, request.EdgeTriageReviews)
	}
	if m.clearedarchitect_reviews {
		edges = append(edges, request.EdgeArchitectReviews)
	}
	if m.clearedcode_reviews {
		edges = append(edges, request.EdgeCodeReviews)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	switch name {
	case request.EdgeProject:
		return m.clearedproject
	case request.EdgeComments:
		return m.clearedcomments
	case request.EdgeAttachments:
		return m.clearedattachments
	case request.EdgeTriageReviews:
		return m.clearedtriage_reviews
	case request.EdgeArchitectReviews:
		return m.clearedarchitect_reviews
	case request.EdgeCodeReviews:
		return m.clearedcode_reviews
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	switch name {
	case request.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	switch name {
	case request.EdgeProject:
		m.ResetProject()
		return nil
	case request.EdgeComments:
		m.ResetComments()
		return nil
	case request.EdgeAttachments:
		m.ResetAttachments()
		return nil
	case request.EdgeTriageReviews:
		m.ResetTriageReviews()
		return nil
	case request.EdgeArchitectReviews:
		m.ResetArchitectReviews()
		return nil
	case request.EdgeCodeReviews:
		m.ResetCodeReviews()
		return nil
	}
	return fmt.Errorf("unknown Request edge %s", name)
}

// SystemPromptMutation represents an operation that mutates the SystemPrompt nodes in the graph.
type SystemPromptMutation struct {
	config
	op            Op
	typ           string
	id            *string
	content       *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SystemPrompt, error)
	predicates    []predicate.SystemPrompt
}

var _ ent.Mutation = (*SystemPromptMutation)(nil)

// systempromptOption allows management of the mutation configuration using functional options.
type systempromptOption func(*SystemPromptMutation)

// newSystemPromptMutation creates new mutation for the SystemPrompt entity.
func newSystemPromptMutation(c config, op Op, opts ...systempromptOption) *SystemPromptMutation {
	m := &SystemPromptMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemPrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemPromptID sets the ID field of the mutation.
func withSystemPromptID(id string) systempromptOption {
	return func(m *SystemPromptMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemPrompt
		)
		m.oldValue = func(ctx context.Context) (*SystemPrompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemPrompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemPrompt sets the old SystemPrompt of the mutation.
func withSystemPrompt(node *SystemPrompt) systempromptOption {
	return func(m *SystemPromptMutation) {
		m.oldValue = func(context.Context) (*SystemPrompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemPromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemPromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SystemPrompt entities.
func (m *SystemPromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemPromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemPromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemPrompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContent sets the "content" field.
func (m *SystemPromptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SystemPromptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SystemPrompt entity.
// If the SystemPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemPromptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SystemPromptMutation) ResetContent() {
	m.content = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SystemPromptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SystemPromptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SystemPrompt entity.
// If the SystemPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemPromptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SystemPromptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SystemPromptMutation builder.
func (m *SystemPromptMutation) Where(ps ...predicate.SystemPrompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemPromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemPromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemPrompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemPromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemPromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemPrompt).
func (m *SystemPromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemPromptMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.content != nil {
		fields = append(fields, systemprompt.FieldContent)
	}
	if m.updated_at != nil {
		fields = append(fields, systemprompt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemPromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemprompt.FieldContent:
		return m.Content()
	case systemprompt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemPromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemprompt.FieldContent:
		return m.OldContent(ctx)
	case systemprompt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemPrompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemPromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemprompt.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case systemprompt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemPrompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemPromptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemPromptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemPromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemPrompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemPromptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemPromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemPromptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SystemPrompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemPromptMutation) ResetField(name string) error {
	switch name {
	case systemprompt.FieldContent:
		m.ResetContent()
		return nil
	case systemprompt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemPrompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemPromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemPromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemPromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemPromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemPromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemPromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemPromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemPrompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemPromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemPrompt edge %s", name)
}

// TriageReviewMutation represents an operation that mutates the TriageReview nodes in the graph.
type TriageReviewMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	decision                      *triagereview.Decision
	reasoning                     *string
	alignment_score               *int
	addalignment_score            *int
	completeness_score            *int
	addcompleteness_score         *int
	sales_alignment_score         *int
	addsales_alignment_score      *int
	suggested_priority            *string
	tags                          *[]string
	appendtags                    []string
	clarification_questions       *[]string
	appendclarification_questions []string
	is_duplicate                  *bool
	duplicate_of_request_id       *int
	addduplicate_of_request_id    *int
	prompt_tokens                 *int
	addprompt_tokens              *int
	completion_tokens             *int
	addcompletion_tokens          *int
	model                         *string
	duration_ms                   *int64
	addduration_ms                *int64
	created_at                    *time.Time
	clearedFields                 map[string]struct{}
	request                       *int
	clearedrequest                bool
	done                          bool
	oldValue                      func(context.Context) (*TriageReview, error)
	predicates                    []predicate.TriageReview
}

var _ ent.Mutation = (*TriageReviewMutation)(nil)

// triagereviewOption allows management of the mutation configuration using functional options.
type triagereviewOption func(*TriageReviewMutation)

// newTriageReviewMutation creates new mutation for the TriageReview entity.
func newTriageReviewMutation(c config, op Op, opts ...triagereviewOption) *TriageReviewMutation {
	m := &TriageReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeTriageReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTriageReviewID sets the ID field of the mutation.
func withTriageReviewID(id string) triagereviewOption {
	return func(m *TriageReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *TriageReview
		)
		m.oldValue = func(ctx context.Context) (*TriageReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TriageReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTriageReview sets the old TriageReview of the mutation.
func withTriageReview(node *TriageReview) triagereviewOption {
	return func(m *TriageReviewMutation) {
		m.oldValue = func(context.Context) (*TriageReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TriageReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TriageReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TriageReview entities.
func (m *TriageReviewMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TriageReviewMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TriageReviewMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TriageReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *TriageReviewMutation) SetRequestID(i int) {
	m.request = &i
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *TriageReviewMutation) RequestID() (r int, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldRequestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *TriageReviewMutation) ResetRequestID() {
	m.request = nil
}

// SetDecision sets the "decision" field.
func (m *TriageReviewMutation) SetDecision(t triagereview.Decision) {
	m.decision = &t
}

// Decision returns the value of the "decision" field in the mutation.
func (m *TriageReviewMutation) Decision() (r triagereview.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldDecision(ctx context.Context) (v triagereview.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *TriageReviewMutation) ResetDecision() {
	m.decision = nil
}

// SetReasoning sets the "reasoning" field.
func (m *TriageReviewMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *TriageReviewMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *TriageReviewMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetAlignmentScore sets the "alignment_score" field.
func (m *TriageReviewMutation) SetAlignmentScore(i int) {
	m.alignment_score = &i
	m.addalignment_score = nil
}

// AlignmentScore returns the value of the "alignment_score" field in the mutation.
func (m *TriageReviewMutation) AlignmentScore() (r int, exists bool) {
	v := m.alignment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAlignmentScore returns the old "alignment_score" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldAlignmentScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlignmentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlignmentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlignmentScore: %w", err)
	}
	return oldValue.AlignmentScore, nil
}

// AddAlignmentScore adds i to the "alignment_score" field.
func (m *TriageReviewMutation) AddAlignmentScore(i int) {
	if m.addalignment_score != nil {
		*m.addalignment_score += i
	} else {
		m.addalignment_score = &i
	}
}

// AddedAlignmentScore returns the value that was added to the "alignment_score" field in this mutation.
func (m *TriageReviewMutation) AddedAlignmentScore() (r int, exists bool) {
	v := m.addalignment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAlignmentScore resets all changes to the "alignment_score" field.
func (m *TriageReviewMutation) ResetAlignmentScore() {
	m.alignment_score = nil
	m.addalignment_score = nil
}

// SetCompletenessScore sets the "completeness_score" field.
func (m *TriageReviewMutation) SetCompletenessScore(i int) {
	m.completeness_score = &i
	m.addcompleteness_score = nil
}

// CompletenessScore returns the value of the "completeness_score" field in the mutation.
func (m *TriageReviewMutation) CompletenessScore() (r int, exists bool) {
	v := m.completeness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletenessScore returns the old "completeness_score" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldCompletenessScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletenessScore: %w", err)
	}
	return oldValue.CompletenessScore, nil
}

// AddCompletenessScore adds i to the "completeness_score" field.
func (m *TriageReviewMutation) AddCompletenessScore(i int) {
	if m.addcompleteness_score != nil {
		*m.addcompleteness_score += i
	} else {
		m.addcompleteness_score = &i
	}
}

// AddedCompletenessScore returns the value that was added to the "completeness_score" field in this mutation.
func (m *TriageReviewMutation) AddedCompletenessScore() (r int, exists bool) {
	v := m.addcompleteness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletenessScore resets all changes to the "completeness_score" field.
func (m *TriageReviewMutation) ResetCompletenessScore() {
	m.completeness_score = nil
	m.addcompleteness_score = nil
}

// SetSalesAlignmentScore sets the "sales_alignment_score" field.
func (m *TriageReviewMutation) SetSalesAlignmentScore(i int) {
	m.sales_alignment_score = &i
	m.addsales_alignment_score = nil
}

// SalesAlignmentScore returns the value of the "sales_alignment_score" field in the mutation.
func (m *TriageReviewMutation) SalesAlignmentScore() (r int, exists bool) {
	v := m.sales_alignment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSalesAlignmentScore returns the old "sales_alignment_score" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldSalesAlignmentScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalesAlignmentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalesAlignmentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalesAlignmentScore: %w", err)
	}
	return oldValue.SalesAlignmentScore, nil
}

// AddSalesAlignmentScore adds i to the "sales_alignment_score" field.
func (m *TriageReviewMutation) AddSalesAlignmentScore(i int) {
	if m.addsales_alignment_score != nil {
		*m.addsales_alignment_score += i
	} else {
		m.addsales_alignment_score = &i
	}
}

// AddedSalesAlignmentScore returns the value that was added to the "sales_alignment_score" field in this mutation.
func (m *TriageReviewMutation) AddedSalesAlignmentScore() (r int, exists bool) {
	v := m.addsales_alignment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSalesAlignmentScore resets all changes to the "sales_alignment_score" field.
func (m *TriageReviewMutation) ResetSalesAlignmentScore() {
	m.sales_alignment_score = nil
	m.addsales_alignment_score = nil
}

// SetSuggestedPriority sets the "suggested_priority" field.
func (m *TriageReviewMutation) SetSuggestedPriority(s string) {
	m.suggested_priority = &s
}

// SuggestedPriority returns the value of the "suggested_priority" field in the mutation.
func (m *TriageReviewMutation) SuggestedPriority() (r string, exists bool) {
	v := m.suggested_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedPriority returns the old "suggested_priority" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldSuggestedPriority(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedPriority: %w", err)
	}
	return oldValue.SuggestedPriority, nil
}

// ClearSuggestedPriority clears the value of the "suggested_priority" field.
func (m *TriageReviewMutation) ClearSuggestedPriority() {
	m.suggested_priority = nil
	m.clearedFields[triagereview.FieldSuggestedPriority] = struct{}{}
}

// SuggestedPriorityCleared returns if the "suggested_priority" field was cleared in this mutation.
func (m *TriageReviewMutation) SuggestedPriorityCleared() bool {
	_, ok := m.clearedFields[triagereview.FieldSuggestedPriority]
	return ok
}

// ResetSuggestedPriority resets all changes to the "suggested_priority" field.
func (m *TriageReviewMutation) ResetSuggestedPriority() {
	m.suggested_priority = nil
	delete(m.clearedFields, triagereview.FieldSuggestedPriority)
}

// SetTags sets the "tags" field.
func (m *TriageReviewMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TriageReviewMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TriageReviewMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TriageReviewMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *TriageReviewMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[triagereview.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TriageReviewMutation) TagsCleared() bool {
	_, ok := m.clearedFields[triagereview.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TriageReviewMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, triagereview.FieldTags)
}

// SetClarificationQuestions sets the "clarification_questions" field.
func (m *TriageReviewMutation) SetClarificationQuestions(s []string) {
	m.clarification_questions = &s
	m.appendclarification_questions = nil
}

// ClarificationQuestions returns the value of the "clarification_questions" field in the mutation.
func (m *TriageReviewMutation) ClarificationQuestions() (r []string, exists bool) {
	v := m.clarification_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldClarificationQuestions returns the old "clarification_questions" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldClarificationQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarificationQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarificationQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarificationQuestions: %w", err)
	}
	return oldValue.ClarificationQuestions, nil
}

// AppendClarificationQuestions adds s to the "clarification_questions" field.
func (m *TriageReviewMutation) AppendClarificationQuestions(s []string) {
	m.appendclarification_questions = append(m.appendclarification_questions, s...)
}

// AppendedClarificationQuestions returns the list of values that were appended to the "clarification_questions" field in this mutation.
func (m *TriageReviewMutation) AppendedClarificationQuestions() ([]string, bool) {
	if len(m.appendclarification_questions) == 0 {
		return nil, false
	}
	return m.appendclarification_questions, true
}

// ClearClarificationQuestions clears the value of the "clarification_questions" field.
func (m *TriageReviewMutation) ClearClarificationQuestions() {
	m.clarification_questions = nil
	m.appendclarification_questions = nil
	m.clearedFields[triagereview.FieldClarificationQuestions] = struct{}{}
}

// ClarificationQuestionsCleared returns if the "clarification_questions" field was cleared in this mutation.
func (m *TriageReviewMutation) ClarificationQuestionsCleared() bool {
	_, ok := m.clearedFields[triagereview.FieldClarificationQuestions]
	return ok
}

// ResetClarificationQuestions resets all changes to the "clarification_questions" field.
func (m *TriageReviewMutation) ResetClarificationQuestions() {
	m.clarification_questions = nil
	m.appendclarification_questions = nil
	delete(m.clearedFields, triagereview.FieldClarificationQuestions)
}

// SetIsDuplicate sets the "is_duplicate" field.
func (m *TriageReviewMutation) SetIsDuplicate(b bool) {
	m.is_duplicate = &b
}

// IsDuplicate returns the value of the "is_duplicate" field in the mutation.
func (m *TriageReviewMutation) IsDuplicate() (r bool, exists bool) {
	v := m.is_duplicate
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDuplicate returns the old "is_duplicate" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldIsDuplicate(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDuplicate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDuplicate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDuplicate: %w", err)
	}
	return oldValue.IsDuplicate, nil
}

// ResetIsDuplicate resets all changes to the "is_duplicate" field.
func (m *TriageReviewMutation) ResetIsDuplicate() {
	m.is_duplicate = nil
}

// SetDuplicateOfRequestID sets the "duplicate_of_request_id" field.
func (m *TriageReviewMutation) SetDuplicateOfRequestID(i int) {
	m.duplicate_of_request_id = &i
	m.addduplicate_of_request_id = nil
}

// DuplicateOfRequestID returns the value of the "duplicate_of_request_id" field in the mutation.
func (m *TriageReviewMutation) DuplicateOfRequestID() (r int, exists bool) {
	v := m.duplicate_of_request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateOfRequestID returns the old "duplicate_of_request_id" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldDuplicateOfRequestID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateOfRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateOfRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateOfRequestID: %w", err)
	}
	return oldValue.DuplicateOfRequestID, nil
}

// AddDuplicateOfRequestID adds i to the "duplicate_of_request_id" field.
func (m *TriageReviewMutation) AddDuplicateOfRequestID(i int) {
	if m.addduplicate_of_request_id != nil {
		*m.addduplicate_of_request_id += i
	} else {
		m.addduplicate_of_request_id = &i
	}
}

// AddedDuplicateOfRequestID returns the value that was added to the "duplicate_of_request_id" field in this mutation.
func (m *TriageReviewMutation) AddedDuplicateOfRequestID() (r int, exists bool) {
	v := m.addduplicate_of_request_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearDuplicateOfRequestID clears the value of the "duplicate_of_request_id" field.
func (m *TriageReviewMutation) ClearDuplicateOfRequestID() {
	m.duplicate_of_request_id = nil
	m.addduplicate_of_request_id = nil
	m.clearedFields[triagereview.FieldDuplicateOfRequestID] = struct{}{}
}

// DuplicateOfRequestIDCleared returns if the "duplicate_of_request_id" field was cleared in this mutation.
func (m *TriageReviewMutation) DuplicateOfRequestIDCleared() bool {
	_, ok := m.clearedFields[triagereview.FieldDuplicateOfRequestID]
	return ok
}

// ResetDuplicateOfRequestID resets all changes to the "duplicate_of_request_id" field.
func (m *TriageReviewMutation) ResetDuplicateOfRequestID() {
	m.duplicate_of_request_id = nil
	m.addduplicate_of_request_id = nil
	delete(m.clearedFields, triagereview.FieldDuplicateOfRequestID)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *TriageReviewMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *TriageReviewMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *TriageReviewMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *TriageReviewMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *TriageReviewMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *TriageReviewMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *TriageReviewMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *TriageReviewMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *TriageReviewMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *TriageReviewMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetModel sets the "model" field.
func (m *TriageReviewMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TriageReviewMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *TriageReviewMutation) ClearModel() {
	m.model = nil
	m.clearedFields[triagereview.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *TriageReviewMutation) ModelCleared() bool {
	_, ok := m.clearedFields[triagereview.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *TriageReviewMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, triagereview.FieldModel)
}

// SetDurationMs sets the "duration_ms" field.
func (m *TriageReviewMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *TriageReviewMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *TriageReviewMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *TriageReviewMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *TriageReviewMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TriageReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TriageReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TriageReview entity.
// If the TriageReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TriageReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TriageReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the Request entity.
func (m *TriageReviewMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[triagereview.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the Request entity was cleared.
func (m *TriageReviewMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *TriageReviewMutation) RequestIDs() (ids []int) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *TriageReviewMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the TriageReviewMutation builder.
func (m *TriageReviewMutation) Where(ps ...predicate.TriageReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TriageReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TriageReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TriageReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TriageReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TriageReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TriageReview).
func (m *TriageReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TriageReviewMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.request != nil {
		fields = append(fields, triagereview.FieldRequestID)
	}
	if m.decision != nil {
		fields = append(fields, triagereview.FieldDecision)
	}
	if m.reasoning != nil {
		fields = append(fields, triagereview.FieldReasoning)
	}
	if m.alignment_score != nil {
		fields = append(fields, triagereview.FieldAlignmentScore)
	}
	if m.completeness_score != nil {
		fields = append(fields, triagereview.FieldCompletenessScore)
	}
	if m.sales_alignment_score != nil {
		fields = append(fields, triagereview.FieldSalesAlignmentScore)
	}
	if m.suggested_priority != nil {
		fields = append(fields, triagereview.FieldSuggestedPriority)
	}
	if m.tags != nil {
		fields = append(fields, triagereview.FieldTags)
	}
	if m.clarification_questions != nil {
		fields = append(fields, triagereview.FieldClarificationQuestions)
	}
	if m.is_duplicate != nil {
		fields = append(fields, triagereview.FieldIsDuplicate)
	}
	if m.duplicate_of_request_id != nil {
		fields = append(fields, triagereview.FieldDuplicateOfRequestID)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, triagereview.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, triagereview.FieldCompletionTokens)
	}
	if m.model != nil {
		fields = append(fields, triagereview.FieldModel)
	}
	if m.duration_ms != nil {
		fields = append(fields, triagereview.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, triagereview.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TriageReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case triagereview.FieldRequestID:
		return m.RequestID()
	case triagereview.FieldDecision:
		return m.Decision()
	case triagereview.FieldReasoning:
		return m.Reasoning()
	case triagereview.FieldAlignmentScore:
		return m.AlignmentScore()
	case triagereview.FieldCompletenessScore:
		return m.CompletenessScore()
	case triagereview.FieldSalesAlignmentScore:
		return m.SalesAlignmentScore()
	case triagereview.FieldSuggestedPriority:
		return m.SuggestedPriority()
	case triagereview.FieldTags:
		return m.Tags()
	case triagereview.FieldClarificationQuestions:
		return m.ClarificationQuestions()
	case triagereview.FieldIsDuplicate:
		return m.IsDuplicate()
	case triagereview.FieldDuplicateOfRequestID:
		return m.DuplicateOfRequestID()
	case triagereview.FieldPromptTokens:
		return m.PromptTokens()
	case triagereview.FieldCompletionTokens:
		return m.CompletionTokens()
	case triagereview.FieldModel:
		return m.Model()
	case triagereview.FieldDurationMs:
		return m.DurationMs()
	case triagereview.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TriageReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case triagereview.FieldRequestID:
		return m.OldRequestID(ctx)
	case triagereview.FieldDecision:
		return m.OldDecision(ctx)
	case triagereview.FieldReasoning:
		return m.OldReasoning(ctx)
	case triagereview.FieldAlignmentScore:
		return m.OldAlignmentScore(ctx)
	case triagereview.FieldCompletenessScore:
		return m.OldCompletenessScore(ctx)
	case triagereview.FieldSalesAlignmentScore:
		return m.OldSalesAlignmentScore(ctx)
	case triagereview.FieldSuggestedPriority:
		return m.OldSuggestedPriority(ctx)
	case triagereview.FieldTags:
		return m.OldTags(ctx)
	case triagereview.FieldClarificationQuestions:
		return m.OldClarificationQuestions(ctx)
	case triagereview.FieldIsDuplicate:
		return m.OldIsDuplicate(ctx)
	case triagereview.FieldDuplicateOfRequestID:
		return m.OldDuplicateOfRequestID(ctx)
	case triagereview.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case triagereview.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case triagereview.FieldModel:
		return m.OldModel(ctx)
	case triagereview.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case triagereview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TriageReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case triagereview.FieldRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case triagereview.FieldDecision:
		v, ok := value.(triagereview.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case triagereview.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case triagereview.FieldAlignmentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlignmentScore(v)
		return nil
	case triagereview.FieldCompletenessScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletenessScore(v)
		return nil
	case triagereview.FieldSalesAlignmentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalesAlignmentScore(v)
		return nil
	case triagereview.FieldSuggestedPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedPriority(v)
		return nil
	case triagereview.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case triagereview.FieldClarificationQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarificationQuestions(v)
		return nil
	case triagereview.FieldIsDuplicate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDuplicate(v)
		return nil
	case triagereview.FieldDuplicateOfRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateOfRequestID(v)
		return nil
	case triagereview.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case triagereview.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case triagereview.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case triagereview.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case triagereview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TriageReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TriageReviewMutation) AddedFields() []string {
	var fields []string
	if m.addalignment_score != nil {
		fields = append(fields, triagereview.FieldAlignmentScore)
	}
	if m.addcompleteness_score != nil {
		fields = append(fields, triagereview.FieldCompletenessScore)
	}
	if m.addsales_alignment_score != nil {
		fields = append(fields, triagereview.FieldSalesAlignmentScore)
	}
	if m.addduplicate_of_request_id != nil {
		fields = append(fields, triagereview.FieldDuplicateOfRequestID)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, triagereview.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, triagereview.FieldCompletionTokens)
	}
	if m.addduration_ms != nil {
		fields = append(fields, triagereview.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TriageReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case triagereview.FieldAlignmentScore:
		return m.AddedAlignmentScore()
	case triagereview.FieldCompletenessScore:
		return m.AddedCompletenessScore()
	case triagereview.FieldSalesAlignmentScore:
		return m.AddedSalesAlignmentScore()
	case triagereview.FieldDuplicateOfRequestID:
		return m.AddedDuplicateOfRequestID()
	case triagereview.FieldPromptTokens:
		return m.AddedPromptTokens()
	case triagereview.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case triagereview.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TriageReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case triagereview.FieldAlignmentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAlignmentScore(v)
		return nil
	case triagereview.FieldCompletenessScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletenessScore(v)
		return nil
	case triagereview.FieldSalesAlignmentScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSalesAlignmentScore(v)
		return nil
	case triagereview.FieldDuplicateOfRequestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuplicateOfRequestID(v)
		return nil
	case triagereview.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case triagereview.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case triagereview.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown TriageReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TriageReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(triagereview.FieldSuggestedPriority) {
		fields = append(fields, triagereview.FieldSuggestedPriority)
	}
	if m.FieldCleared(triagereview.FieldTags) {
		fields = append(fields, triagereview.FieldTags)
	}
	if m.FieldCleared(triagereview.FieldClarificationQuestions) {
		fields = append(fields, triagereview.FieldClarificationQuestions)
	}
	if m.FieldCleared(triagereview.FieldDuplicateOfRequestID) {
		fields = append(fields, triagereview.FieldDuplicateOfRequestID)
	}
	if m.FieldCleared(triagereview.FieldModel) {
		fields = append(fields, triagereview.FieldModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TriageReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TriageReviewMutation) ClearField(name string) error {
	switch name {
	case triagereview.FieldSuggestedPriority:
		m.ClearSuggestedPriority()
		return nil
	case triagereview.FieldTags:
		m.ClearTags()
		return nil
	case triagereview.FieldClarificationQuestions:
		m.ClearClarificationQuestions()
		return nil
	case triagereview.FieldDuplicateOfRequestID:
		m.ClearDuplicateOfRequestID()
		return nil
	case triagereview.FieldModel:
		m.ClearModel()
		return nil
	}
	return fmt.Errorf("unknown TriageReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TriageReviewMutation) ResetField(name string) error {
	switch name {
	case triagereview.FieldRequestID:
		m.ResetRequestID()
		return nil
	case triagereview.FieldDecision:
		m.ResetDecision()
		return nil
	case triagereview.FieldReasoning:
		m.ResetReasoning()
		return nil
	case triagereview.FieldAlignmentScore:
		m.ResetAlignmentScore()
		return nil
	case triagereview.FieldCompletenessScore:
		m.ResetCompletenessScore()
		return nil
	case triagereview.FieldSalesAlignmentScore:
		m.ResetSalesAlignmentScore()
		return nil
	case triagereview.FieldSuggestedPriority:
		m.ResetSuggestedPriority()
		return nil
	case triagereview.FieldTags:
		m.ResetTags()
		return nil
	case triagereview.FieldClarificationQuestions:
		m.ResetClarificationQuestions()
		return nil
	case triagereview.FieldIsDuplicate:
		m.ResetIsDuplicate()
		return nil
	case triagereview.FieldDuplicateOfRequestID:
		m.ResetDuplicateOfRequestID()
		return nil
	case triagereview.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case triagereview.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case triagereview.FieldModel:
		m.ResetModel()
		return nil
	case triagereview.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case triagereview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TriageReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TriageReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, triagereview.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TriageReviewMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case triagereview.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TriageReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TriageReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TriageReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, triagereview.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TriageReviewMutation) EdgeCleared(name string) bool {
	switch name {
	case triagereview.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TriageReviewMutation) ClearEdge(name string) error {
	switch name {
	case triagereview.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown TriageReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TriageReviewMutation) ResetEdge(name string) error {
	switch name {
	case triagereview.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown TriageReview edge %s", name)
}
