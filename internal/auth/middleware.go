package auth

import (
	"net/http"
	"strings"

	"medcheck-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys used to store authentication data
const (
	PrincipalKey = "principal"
	UsernameKey  = "username"
)

// Principal is the authenticated caller attached to the request context.
// It reflects the current user row, not the token snapshot.
type Principal struct {
	ID             uuid.UUID
	Username       string
	OrganizationID uuid.UUID
	IsAdmin        bool
	IsSuperAdmin   bool
}

// AuthMiddleware provides authentication middleware for Gin
type AuthMiddleware struct {
	authService *AuthService
	userRepo    repository.UserRepositoryInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService *AuthService, userRepo repository.UserRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// RequireAuth validates the bearer token and re-checks the user row on every
// request, so a user deactivated after login is rejected immediately.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		claims, err := m.authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, err := m.userRepo.GetByID(userID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User account is inactive"})
			c.Abort()
			return
		}

		c.Set(PrincipalKey, Principal{
			ID:             user.ID,
			Username:       user.Username,
			OrganizationID: user.OrganizationID,
			IsAdmin:        user.IsAdmin,
			IsSuperAdmin:   user.IsSuperAdmin,
		})
		c.Set(UsernameKey, user.Username)

		c.Next()
	}
}

// RequireAdmin allows only organization admins through. The admin and super
// admin flags are independent: a super admin without is_admin is rejected.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !principal.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin allows only super admins through. Must run after RequireAuth.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		if !principal.IsSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Super admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal retrieves the authenticated principal from the context
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", false
	}
	return token, true
}
