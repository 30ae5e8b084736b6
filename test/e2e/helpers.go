package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/ent"
	"github.com/conveyor-dev/conveyor/ent/request"
	"github.com/conveyor-dev/conveyor/pkg/codehost"
	"github.com/conveyor-dev/conveyor/pkg/models"
)

// seedProject creates the project every scenario works against and
// returns it with the matching code-host repo handle.
func (a *TestApp) seedProject() (*ent.Project, codehost.Repo) {
	a.t.Helper()
	project, err := a.Projects.CreateProject(a.ctx, models.CreateProjectInput{
		Name:  "Widgets",
		Owner: "acme",
		Repo:  "widgets",
	})
	require.NoError(a.t, err)
	return project, codehost.Repo{Owner: project.Owner, Name: project.Repo}
}

// seedRequest files a feature request in the given project.
func (a *TestApp) seedRequest(projectID int, title string) *ent.Request {
	a.t.Helper()
	req, err := a.Requests.CreateRequest(a.ctx, models.CreateRequestInput{
		ProjectID:      projectID,
		Title:          title,
		Description:    "As a user I want " + title + " so that reporting is faster.",
		Kind:           request.KindFeature,
		Priority:       request.PriorityMedium,
		SubmitterName:  "Dana Ops",
		SubmitterEmail: "dana@acme.test",
	})
	require.NoError(a.t, err)
	return req
}

// reload fetches the request with its project edge over the assertion
// pool, bypassing the app services.
func (a *TestApp) reload(id int) *ent.Request {
	a.t.Helper()
	req, err := a.DB.Request.Query().
		Where(request.ID(id)).
		WithProject().
		Only(a.ctx)
	require.NoError(a.t, err)
	return req
}

// humanComment records a human follow-up on the request thread.
func (a *TestApp) humanComment(requestID int, body string) {
	a.t.Helper()
	_, err := a.Comments.CreateComment(a.ctx, models.CreateCommentInput{
		RequestID: requestID,
		Author:    "dana",
		Content:   body,
		IsAgent:   false,
	})
	require.NoError(a.t, err)
}

// forceState moves a request into a state directly, bypassing the
// transition rules. For scenario setup only.
func (a *TestApp) forceState(id int, state request.State, mutate ...func(*ent.RequestUpdateOne)) {
	a.t.Helper()
	upd := a.DB.Request.UpdateOneID(id).SetState(state)
	for _, m := range mutate {
		m(upd)
	}
	require.NoError(a.t, upd.Exec(a.ctx))
}

// backdate rewrites updated_at so stall windows elapse instantly.
// Setting the field explicitly suppresses the update default.
func (a *TestApp) backdate(id int, to time.Time) {
	a.t.Helper()
	require.NoError(a.t, a.DB.Request.UpdateOneID(id).SetUpdatedAt(to).Exec(a.ctx))
}

// --- HTTP ---

// postJSON hits the API router and decodes the JSON response.
func (a *TestApp) postJSON(path string, body any, wantStatus int) map[string]any {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(a.t, wantStatus, rec.Code, "POST %s: %s", path, rec.Body.String())

	return decodeBody(a, rec)
}

// getJSON hits the API router with GET and decodes the JSON response.
func (a *TestApp) getJSON(path string, wantStatus int) map[string]any {
	a.t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(a.t, wantStatus, rec.Code, "GET %s: %s", path, rec.Body.String())

	return decodeBody(a, rec)
}

// putJSON hits the API router with PUT and decodes the JSON response.
func (a *TestApp) putJSON(path string, body any, wantStatus int) map[string]any {
	a.t.Helper()

	data, err := json.Marshal(body)
	require.NoError(a.t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	require.Equal(a.t, wantStatus, rec.Code, "PUT %s: %s", path, rec.Body.String())

	return decodeBody(a, rec)
}

func decodeBody(a *TestApp, rec *httptest.ResponseRecorder) map[string]any {
	if rec.Body.Len() == 0 {
		return nil
	}
	var out map[string]any
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out),
		"response was not a JSON object: %s", rec.Body.String())
	return out
}

// approveSolution approves the latest architect review over the API,
// the way a product manager would from the dashboard.
func (a *TestApp) approveSolution(requestID int, actor string) {
	a.t.Helper()
	review, err := a.Reviews.LatestArchitectReview(a.ctx, requestID)
	require.NoError(a.t, err)
	a.postJSON("/api/v1/reviews/architect/"+review.ID+"/approve",
		map[string]string{"actor": actor}, http.StatusOK)
}

// --- Scripted model responses ---

func triageApproveJSON() string {
	return `{
		"decision": "approve",
		"reasoning": "Clear demand and fits the product direction.",
		"alignmentScore": 88,
		"completenessScore": 75,
		"salesAlignmentScore": 70,
		"suggestedPriority": "high",
		"tags": ["reporting", "export"]
	}`
}

func triageClarifyJSON(questions ...string) string {
	qs, _ := json.Marshal(questions)
	return fmt.Sprintf(`{
		"decision": "clarify",
		"reasoning": "The request is missing the export format and volume.",
		"alignmentScore": 60,
		"completenessScore": 30,
		"salesAlignmentScore": 50,
		"clarificationQuestions": %s
	}`, qs)
}

func triageDuplicateJSON(ofRequestID int) string {
	return fmt.Sprintf(`{
		"decision": "approve",
		"reasoning": "Useful feature, though it closely mirrors earlier work.",
		"alignmentScore": 80,
		"completenessScore": 70,
		"salesAlignmentScore": 65,
		"isDuplicate": true,
		"duplicateOfRequestId": %d
	}`, ofRequestID)
}

func fileSelectionJSON(paths ...string) string {
	data, _ := json.Marshal(paths)
	return string(data)
}

func solutionJSON(summary string) string {
	return fmt.Sprintf(`{
		"solutionSummary": %q,
		"approach": "Extend the report renderer with a CSV writer behind the existing exporter interface.",
		"impactedFiles": [
			{"path": "internal/report/render.go", "action": "modify", "description": "Add CSV output", "estimatedLinesChanged": 40}
		],
		"newFiles": [
			{"path": "internal/report/csv.go", "description": "CSV writer", "estimatedLines": 120}
		],
		"risks": [
			{"description": "Large exports block the request goroutine", "severity": "medium", "mitigation": "Stream rows"}
		],
		"estimatedComplexity": "medium",
		"estimatedEffort": "2 days",
		"implementationOrder": ["internal/report/csv.go", "internal/report/render.go"],
		"testingNotes": "Golden-file tests over the CSV output.",
		"architecturalNotes": "Keeps the exporter interface unchanged."
	}`, summary)
}

func codeReviewApproveJSON() string {
	return `{
		"decision": "Approved",
		"summary": "Implementation matches the approved design.",
		"designCompliance": true,
		"designComplianceNotes": "CSV writer lands behind the exporter interface as designed.",
		"securityPass": true,
		"securityNotes": "No new inputs reach the filesystem.",
		"codingStandardsPass": true,
		"codingStandardsNotes": "Follows the existing renderer patterns.",
		"qualityScore": 9
	}`
}

func codeReviewChangesJSON() string {
	return `{
		"decision": "ChangesRequested",
		"summary": "Exports are built fully in memory.",
		"designCompliance": true,
		"designComplianceNotes": "Structure follows the design.",
		"securityPass": true,
		"securityNotes": "No concerns.",
		"codingStandardsPass": false,
		"codingStandardsNotes": "Writer must stream rows instead of buffering the full report.",
		"qualityScore": 5
	}`
}
