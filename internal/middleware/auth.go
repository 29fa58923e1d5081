package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/auth"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

const claimsKey = "admin_claims"

// Authenticator resolves a raw session token into verified claims.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// RequireAdmin rejects the request with 401 unless it carries a valid, unrevoked
// session token in the Authorization header or the session cookie.
func RequireAdmin(authn Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			response.WriteError(c, service.ErrUnauthorized)
			return
		}
		claims, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.WriteError(c, err)
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// SessionToken reads a bearer token first and falls back to the cookie.
func SessionToken(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

// Claims returns the claims stored by RequireAdmin.
func Claims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
