package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conveyor-dev/conveyor/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("actor", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "actor",
		},
		{
			name:       "invalid input maps to 400",
			err:        fmt.Errorf("%w: kind must be set", services.ErrInvalidInput),
			expectCode: http.StatusBadRequest,
			expectMsg:  "kind must be set",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "invalid transition maps to 409 with detail",
			err:        fmt.Errorf("%w: request 7 is done, not in_progress", services.ErrInvalidTransition),
			expectCode: http.StatusConflict,
			expectMsg:  "request 7 is done",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        services.ErrConcurrentModification,
			expectCode: http.StatusConflict,
			expectMsg:  "retry the operation",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "budget exceeded maps to 429",
			err:        services.ErrBudgetExceeded,
			expectCode: http.StatusTooManyRequests,
			expectMsg:  "token budget exceeded",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			mapServiceError(c, tt.err)

			assert.Equal(t, tt.expectCode, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.expectMsg)
		})
	}
}
