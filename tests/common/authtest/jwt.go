//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateMerchantToken signs an owner token scoped to businessID.
func (h *JWTHelper) GenerateMerchantToken(t *testing.T, businessID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(businessID, "owner", time.Now(), time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, businessID uuid.UUID) string {
	t.Helper()
	issued := time.Now().Add(-2 * time.Hour)
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer).GenerateToken(businessID, "owner", issued, time.Hour)
	require.NoError(t, err)
	return token
}
