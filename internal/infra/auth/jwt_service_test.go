package auth

import (
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	roles := []string{"owner", "admin"}
	accessToken, err := jwtService.GenerateAccessToken("owner-1", roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", claims.Subject)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("another_secret_used_by_someone_else"))
	require.NoError(t, err)
	token, err := issuer.GenerateAccessToken("owner-1", nil)
	require.NoError(t, err)

	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	now := issuedAt
	jwtService, err := newJWTService(newTestConfig(testSecret), func() time.Time { return now })
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken("owner-1", nil)
	require.NoError(t, err)

	now = issuedAt.Add(16 * time.Minute)
	claims, err := jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "owner-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := refresh.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(signed)
	assert.ErrorContains(t, err, "unexpected token type")
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_EmptySubject(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	_, err = jwtService.GenerateAccessToken("", nil)
	assert.Error(t, err)
}
