package workers

import "github.com/conveyor-dev/conveyor/pkg/codehost"

// Issue labels applied by the pipeline. SetLabel replaces any existing
// label sharing the namespace before the colon, so each group below is
// mutually exclusive on an issue.
var (
	labelApproved  = codehost.Label{Name: "agent:approved", Color: "0e8a16"}
	labelRejected  = codehost.Label{Name: "agent:rejected", Color: "d73a4a"}
	labelNeedsInfo = codehost.Label{Name: "agent:needs-info", Color: "fbca04"}

	labelImplementing = codehost.Label{Name: "copilot:implementing", Color: "8250df"}
	labelComplete     = codehost.Label{Name: "copilot:complete", Color: "0e8a16"}

	labelReviewApproved = codehost.Label{Name: "review:approved", Color: "0e8a16"}
	labelReviewChanges  = codehost.Label{Name: "review:changes-requested", Color: "d93f0b"}

	labelDeployStaged = codehost.Label{Name: "deploy:staged", Color: "1d76db"}
)
