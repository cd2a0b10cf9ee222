package utils_test

import (
	"testing"
	"time"

	"github.com/agrolink/agrolink-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "agrolink-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "agrolink-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "agrolink-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, -time.Minute, "agrolink-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	_, err := utils.ParseAndValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}
