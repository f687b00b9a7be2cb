package auth

import (
	"fmt"
	"time"

	"medcheck-backend/internal/config"
	"medcheck-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies the HMAC-signed bearer tokens that carry
// identity, tenant and role claims, and wraps the password hashing primitive.
type AuthService struct {
	secret      []byte
	tokenExpiry time.Duration
}

// AuthClaims represents JWT token claims. The subject is the user id; the
// organization and role flags are snapshotted at login time, but every
// request re-checks the user row so deactivation revokes access immediately.
type AuthClaims struct {
	Username       string    `json:"username"`
	OrganizationID uuid.UUID `json:"organization_id"`
	IsAdmin        bool      `json:"is_admin"`
	IsSuperAdmin   bool      `json:"is_super_admin"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		secret:      []byte(cfg.JWTSecret),
		tokenExpiry: time.Duration(cfg.TokenExpiryMinutes) * time.Minute,
	}
}

// HashPassword returns the one-way bcrypt hash of a password
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether a plaintext password matches a stored hash
func (s *AuthService) VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// GenerateToken creates a signed JWT for the user
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username:       user.Username,
		OrganizationID: user.OrganizationID,
		IsAdmin:        user.IsAdmin,
		IsSuperAdmin:   user.IsSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "medcheck-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates and parses a JWT token
func (s *AuthService) ValidateToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
