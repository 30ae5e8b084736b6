package api

import "github.com/gin-gonic/gin"

// anonymousActor is recorded when no identity header is present and the
// request body names no actor.
const anonymousActor = "api-client"

// requestActor resolves who performed an admin operation. Review decisions
// must be attributable, so when the body carries no actor we fall back to
// the identity headers set by the auth proxy in front of this service:
// X-Forwarded-User and X-Forwarded-Email (oauth2-proxy), then X-Remote-User
// (kube-rbac-proxy).
func requestActor(c *gin.Context) string {
	for _, h := range []string{"X-Forwarded-User", "X-Forwarded-Email", "X-Remote-User"} {
		if v := c.Request.Header.Get(h); v != "" {
			return v
		}
	}
	return anonymousActor
}
