package api

// DecisionRequest is the body for architect approve/reject. Actor falls
// back to the proxy identity headers when omitted.
type DecisionRequest struct {
	Actor  string `json:"actor,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// FeedbackRequest is the body for architect revision feedback.
type FeedbackRequest struct {
	Actor    string `json:"actor,omitempty"`
	Feedback string `json:"feedback"`
}

// OverrideRequest is the body for a human triage override.
type OverrideRequest struct {
	Actor    string `json:"actor,omitempty"`
	NewState string `json:"new_state"`
	Reason   string `json:"reason,omitempty"`
}

// RejectImplementationRequest is the body for rejecting an
// implementation attempt. The body is optional.
type RejectImplementationRequest struct {
	Reason string `json:"reason,omitempty"`
}
