package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{TokenTTL: 7 * 24 * time.Hour}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, err := jwtService.Issue("64f1c0ffee0badf00d000001", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Verify(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "64f1c0ffee0badf00d000001", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := jwtService.Issue("64f1c0ffee0badf00d000001", "user")
	assert.NoError(t, err)

	// Flip a character in the signature segment
	tampered := token[:len(token)-2] + "xx"
	claims, err := jwtService.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret-one-that-is-long-enough"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret-two-that-is-long-enough"))
	assert.NoError(t, err)

	token, err := issuer.Issue("64f1c0ffee0badf00d000001", "user")
	assert.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Issue with a TTL in the past so the token is born expired.
	expiredIssuer := &jwtService{secret: "test_access_secret_key_very_long_for_testing", ttl: -time.Hour}

	token, err := expiredIssuer.Issue("64f1c0ffee0badf00d000001", "user")
	assert.NoError(t, err)

	verifier, err := NewJWTService(testJWTConfig("test_access_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testJWTConfig("")

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
