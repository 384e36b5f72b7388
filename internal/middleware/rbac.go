package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/response"
)

// RequireRoles lets the request through only when the authenticated role is one of roles.
// It must run after JWT.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			response.Abort(c, appErrors.Clone(appErrors.ErrForbidden, "role "+string(claims.Role)+" cannot perform this action"))
			return
		}
		c.Next()
	}
}

// WritesRequire applies RequireRoles to mutating methods and lets reads pass.
func WritesRequire(roles ...models.UserRole) gin.HandlerFunc {
	guard := RequireRoles(roles...)
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			guard(c)
		}
	}
}
