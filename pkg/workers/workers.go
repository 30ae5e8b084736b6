package workers

import (
	"log/slog"

	"github.com/conveyor-dev/conveyor/pkg/codebase"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/config"
	"github.com/conveyor-dev/conveyor/pkg/llm"
	"github.com/conveyor-dev/conveyor/pkg/notify"
	"github.com/conveyor-dev/conveyor/pkg/prompt"
	"github.com/conveyor-dev/conveyor/pkg/services"
)

// Deps carries the shared collaborators the stages are built from.
type Deps struct {
	Config   *config.Config
	Requests *services.RequestService
	Reviews  *services.ReviewService
	Comments *services.CommentService
	Prompts  *services.PromptService
	LLM      llm.Client // nil in degraded mode
	Host     codehost.Host
	Codebase *codebase.Service
	Prompt   *prompt.Builder
	Notify   *notify.Service // nil when Slack is not configured

	// AgentPrincipal is the code-host login the coding agent acts as;
	// the PR monitor matches pull requests by this author.
	AgentPrincipal string

	// DeployWorkflows are the workflow files observed after a merge.
	DeployWorkflows []string
}

// New assembles the pipeline stages into a runner. The LLM-driven
// stages register only when a client exists, so a missing credential
// degrades the pipeline instead of stopping it: dispatch, monitoring,
// and deployment keep running.
func New(d Deps) *Runner {
	r := NewRunner(d.Config)

	if d.LLM != nil {
		r.Register(NewTriageWorker(d))
		r.Register(NewArchitectWorker(d))
		r.Register(NewCodeReviewWorker(d))
	} else {
		slog.Warn("LLM client not configured; triage, architect, and code review stages disabled")
	}

	r.implementation = NewImplementationWorker(d)
	r.Register(r.implementation)
	r.Register(NewPRMonitorWorker(d))

	r.orchestrator = NewOrchestrator(d)
	r.Register(r.orchestrator)

	return r
}
