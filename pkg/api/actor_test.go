package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "anonymous without identity headers",
			headers: map[string]string{},
			want:    anonymousActor,
		},
		{
			name: "oauth2-proxy user wins over email",
			headers: map[string]string{
				"X-Forwarded-User":  "dana",
				"X-Forwarded-Email": "dana@example.com",
			},
			want: "dana",
		},
		{
			name: "email when user header absent",
			headers: map[string]string{
				"X-Forwarded-Email": "ops@example.com",
			},
			want: "ops@example.com",
		},
		{
			name: "kube-rbac-proxy service account",
			headers: map[string]string{
				"X-Remote-User": "system:serviceaccount:pipeline:intake",
			},
			want: "system:serviceaccount:pipeline:intake",
		},
		{
			name: "proxy user headers outrank remote user",
			headers: map[string]string{
				"X-Remote-User":    "system:serviceaccount:pipeline:intake",
				"X-Forwarded-User": "dana",
			},
			want: "dana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, requestActor(c))
		})
	}
}
