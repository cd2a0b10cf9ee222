package utils_test

import (
	"testing"

	"github.com/agrolink/agrolink-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableBcrypt(t *testing.T) {
	hash, err := utils.HashPassword("harvest-moon-42")
	require.NoError(t, err)

	assert.False(t, utils.IsLegacyDigest(hash))
	assert.True(t, utils.CheckPasswordHash("harvest-moon-42", hash))
	assert.False(t, utils.CheckPasswordHash("harvest-moon-43", hash))
}

func TestCheckPasswordHash_LegacyDigest(t *testing.T) {
	legacy := utils.LegacyHashPassword("old-password")

	assert.True(t, utils.IsLegacyDigest(legacy))
	assert.True(t, utils.CheckPasswordHash("old-password", legacy))
	assert.False(t, utils.CheckPasswordHash("wrong-password", legacy))
}

func TestCheckPasswordHash_EmptyInputsVerifyFalse(t *testing.T) {
	hash, err := utils.HashPassword("something")
	require.NoError(t, err)

	assert.False(t, utils.CheckPasswordHash("", hash))
	assert.False(t, utils.CheckPasswordHash("something", ""))
	assert.False(t, utils.CheckPasswordHash("", ""))
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	first, err := utils.HashPassword("same-password")
	require.NoError(t, err)
	second, err := utils.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
