package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/jwt"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// extractToken reads the credential from the session cookie or, failing
// that, a bearer Authorization header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(service.CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// JWTAuth requires a valid session token.
func JWTAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, 40100, "Απαιτείται σύνδεση.")
			c.Abort()
			return
		}

		claims, err := manager.ParseToken(token)
		if err != nil || claims.TokenType != jwt.TypeSession {
			response.Unauthorized(c, 40101, "Μη έγκυρη ή ληγμένη σύνδεση.")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, model.Role(claims.Role))
		c.Next()
	}
}

// RoleAuth requires the session to carry one of the given roles. Must run
// after JWTAuth.
func RoleAuth(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(CtxRole)
		if !ok {
			response.Unauthorized(c, 40100, "Απαιτείται σύνδεση.")
			c.Abort()
			return
		}
		current := role.(model.Role)
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		response.Forbidden(c, 40300, "Δεν έχετε δικαίωμα πρόσβασης.")
		c.Abort()
	}
}

// AdminAuth shorthand for the administrative roles.
func AdminAuth() gin.HandlerFunc {
	return RoleAuth(model.RoleAdmin, model.RoleSuperAdmin, model.RoleSecretary)
}

// CapabilityAuth requires a valid capability token, the credential minted by
// OTP validation. Only the bearer header is consulted; capability tokens are
// never set as cookies.
func CapabilityAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, 40102, "Απαιτείται έγκυρος κωδικός πρόσβασης.")
			c.Abort()
			return
		}

		claims, err := manager.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.TokenType != jwt.TypeCapability {
			response.Unauthorized(c, 40102, "Απαιτείται έγκυρος κωδικός πρόσβασης.")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the context.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(CtxUserID)
	uid, _ := id.(uint)
	return uid
}

// IsAdministrative reports whether the session role is a back-office one.
func IsAdministrative(c *gin.Context) bool {
	role, ok := c.Get(CtxRole)
	if !ok {
		return false
	}
	r, _ := role.(model.Role)
	return r.IsAdministrative()
}
