package models

import (
	"github.com/conveyor-dev/conveyor/ent/request"
)

// validTransitions is the pipeline state graph. Worker-driven edges come
// from the stage contracts; New/Triaged re-entries come from the admin
// reset operations, and every state may be force-rejected.
var validTransitions = map[request.State][]request.State{
	request.StateNew: {
		request.StateTriaged,
		request.StateNeedsClarification,
		request.StateRejected,
	},
	request.StateNeedsClarification: {
		request.StateTriaged,
		request.StateRejected,
		request.StateNew,
	},
	request.StateTriaged: {
		request.StateArchitectReview,
		request.StateNeedsClarification,
		request.StateRejected,
		request.StateNew,
	},
	request.StateArchitectReview: {
		request.StateApproved,
		request.StateTriaged,
		request.StateNeedsClarification,
		request.StateRejected,
		request.StateNew,
	},
	request.StateApproved: {
		request.StateInProgress,
		request.StateTriaged,
		request.StateRejected,
		request.StateNew,
	},
	request.StateInProgress: {
		request.StateDone,
		request.StateApproved,
		request.StateRejected,
		request.StateNew,
	},
	request.StateDone: {
		request.StateNew,
		request.StateRejected,
	},
	request.StateRejected: {
		request.StateNew,
		request.StateTriaged,
		request.StateNeedsClarification,
	},
}

// CanTransition reports whether moving a request from one state to
// another is legal. Self-transitions are always allowed so bookkeeping
// writes (PR fields, implementation status) ride the same guarded path.
func CanTransition(from, to request.State) bool {
	if from == to {
		return true
	}
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a state ends the pipeline for a request
// (absent an explicit admin reset).
func IsTerminal(s request.State) bool {
	return s == request.StateDone || s == request.StateRejected
}

// NextStates returns the legal successor states, excluding the self-loop.
func NextStates(from request.State) []request.State {
	next := validTransitions[from]
	out := make([]request.State, len(next))
	copy(out, next)
	return out
}
