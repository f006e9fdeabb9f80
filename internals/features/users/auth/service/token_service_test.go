// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kocluk_backend/internals/configs"
)

func TestRefreshTokens_DistinctWithinSameSecond(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"
	now := time.Now()
	userID := uuid.New()

	first, err := signHS256(buildRefreshClaims(userID, now), configs.JWTRefreshSecret)
	require.NoError(t, err)
	second, err := signHS256(buildRefreshClaims(userID, now), configs.JWTRefreshSecret)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same user and instant must still yield distinct tokens")
	assert.NotEqual(t,
		ComputeRefreshHash(first, configs.JWTRefreshSecret),
		ComputeRefreshHash(second, configs.JWTRefreshSecret))
}

func TestComputeRefreshHash_Deterministic(t *testing.T) {
	a := ComputeRefreshHash("token", "secret")
	b := ComputeRefreshHash("token", "secret")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, ComputeRefreshHash("token", "other-secret"))
}
