package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/pkg/config"
)

// testServer builds a server around a default-settings config. Handlers
// that touch the database are not exercised here.
func testServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	require.NoError(t, cfg.UpdatePipeline(config.DefaultPipelineSettings()))

	s := NewServer(cfg, nil, nil, nil, nil, nil)
	return s, s.Router()
}

func TestGetPipelineConfig(t *testing.T) {
	_, router := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/config/pipeline", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var ps config.PipelineSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ps))
	assert.Equal(t, 30, ps.Triage.PollSec)
	assert.Equal(t, "main", ps.Implementation.BaseBranch)
	assert.Equal(t, config.DeploymentModeAuto, ps.Orchestrator.DeploymentMode)
}

func TestUpdatePipelineConfig(t *testing.T) {
	s, router := testServer(t)

	body := `{"triage": {"poll_sec": 45}, "orchestrator": {"deployment_mode": "Staged"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/config/pipeline", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ps := s.cfg.Pipeline()
	assert.Equal(t, 45, ps.Triage.PollSec)
	assert.Equal(t, config.DeploymentModeStaged, ps.Orchestrator.DeploymentMode)
	// Omitted fields keep their current values.
	assert.Equal(t, 3, ps.Triage.MaxReviews)
	assert.Equal(t, "main", ps.Implementation.BaseBranch)
}

func TestUpdatePipelineConfigRejectsInvalid(t *testing.T) {
	s, router := testServer(t)

	body := `{"triage": {"poll_sec": 0}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/config/pipeline", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// The live snapshot is untouched.
	assert.Equal(t, 30, s.cfg.Pipeline().Triage.PollSec)
}

func TestUpdatePipelineConfigRejectsMalformedJSON(t *testing.T) {
	_, router := testServer(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/config/pipeline", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDValidation(t *testing.T) {
	_, router := testServer(t)

	for _, path := range []string{
		"/api/v1/requests/abc/triage",
		"/api/v1/requests/0/architect",
		"/api/v1/requests/-3/implement",
	} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}
