package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/handler/httperr"
	"closeout-market/internal/pkg/cookie"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator shared.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

var roleHierarchy = map[user.Role]int{
	user.RoleBuyer:  1,
	user.RoleSeller: 2,
	user.RoleAdmin:  3,
}

func NewAuthMiddleware(tokenValidator shared.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil || !principal.IsAuthenticated() {
			if err == nil {
				err = errs.ErrUnauthenticated
			}
			slog.Warn("token validation failed", sl.Err(err))
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth attaches a principal when a valid token is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if principal, err := m.tokenValidator.ValidateToken(token); err == nil && principal.IsAuthenticated() {
				setPrincipal(c, principal)
			}
		}
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if !principal.IsAuthenticated() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Authentication required", nil)
			return
		}
		if !hasMinimumRole(principal.Role(), minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// extractToken prefers the session cookie, then the bearer header. Browsers
// cannot set headers on websocket upgrades, so the stream endpoint also
// accepts an access_token query parameter.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		return c.Query(cookie.AccessTokenCookieName)
	}
	return ""
}

func setPrincipal(c *gin.Context, p user.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": p.ID().String(),
		"role":    p.Role().String(),
	})
}

// GetPrincipal returns the anonymous principal when no token was accepted.
func GetPrincipal(c *gin.Context) user.Principal {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Anonymous()
	}
	p, ok := v.(user.Principal)
	if !ok {
		return user.Anonymous()
	}
	return p
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p := GetPrincipal(c)
	return p.ID(), p.IsAuthenticated()
}
