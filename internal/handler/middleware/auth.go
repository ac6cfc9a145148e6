package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxBusinessIDKey = "business_id"
	ctxRoleKey       = "merchant_role"
	codeUnauthorized = "UNAUTHORIZED"
)

var errMissingToken = errors.New("missing bearer token")

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireMerchant admits requests carrying a valid merchant token and scopes
// them to the token's business.
func (m *AuthMiddleware) RequireMerchant() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Abort(c, errMissingToken, httperr.New(http.StatusUnauthorized, codeUnauthorized, "Access token required", nil))
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, err, httperr.New(http.StatusUnauthorized, codeUnauthorized, "Invalid or expired token", nil))
			return
		}

		c.Set(ctxBusinessIDKey, claims.BusinessID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxBusinessIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}
