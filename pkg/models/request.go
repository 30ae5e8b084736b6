package models

import (
	"time"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
)

// CreateRequestInput contains fields for inserting a new pipeline request.
// The intake boundary owns the public create API; this is the internal
// shape used by the service layer and tests.
type CreateRequestInput struct {
	ProjectID        int              `json:"project_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Kind             request.Kind     `json:"kind"`
	Priority         request.Priority `json:"priority,omitempty"`
	SubmitterName    string           `json:"submitter_name,omitempty"`
	SubmitterEmail   string           `json:"submitter_email,omitempty"`
	StepsToReproduce string           `json:"steps_to_reproduce,omitempty"`
	ExpectedBehavior string           `json:"expected_behavior,omitempty"`
	ActualBehavior   string           `json:"actual_behavior,omitempty"`
}

// RequestFilters contains filtering options for listing requests.
type RequestFilters struct {
	ProjectID int           `json:"project_id,omitempty"`
	State     request.State `json:"state,omitempty"`
	Limit     int           `json:"limit,omitempty"`
	Offset    int           `json:"offset,omitempty"`
}

// RequestListResponse contains a paginated request list.
type RequestListResponse struct {
	Requests   []*ent.Request `json:"requests"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// PipelineHealth is the counter snapshot returned by the health operation.
type PipelineHealth struct {
	Stalled    int `json:"stalled"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
}

// StallLevel grades how overdue a stalled request is.
type StallLevel string

const (
	StallLevelWarning  StallLevel = "warning"
	StallLevelCritical StallLevel = "critical"
)

// StalledRequest pairs a request with the stall classification that
// triggered its notification.
type StalledRequest struct {
	Request *ent.Request  `json:"request"`
	Level   StallLevel    `json:"level"`
	State   request.State `json:"state"`
	Since   time.Time     `json:"since"`
}
