package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password against a stored digest.
// Stored digests come in two formats: bcrypt for accounts created here, and
// legacy unsalted SHA-256 hex digests migrated from the previous system.
// Absent inputs verify false rather than erroring.
func CheckPasswordHash(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	if IsLegacyDigest(hash) {
		return checkLegacyDigest(password, hash)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsLegacyDigest reports whether a stored digest is a legacy SHA-256 hex digest
// rather than a bcrypt hash. Callers use this to re-hash on next login.
func IsLegacyDigest(hash string) bool {
	return !strings.HasPrefix(hash, "$2")
}

func checkLegacyDigest(password, hash string) bool {
	sum := sha256.Sum256([]byte(password))
	candidate := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}

// LegacyHashPassword produces the legacy SHA-256 hex digest. Kept for tests and
// digest migration tooling; new credentials always use HashPassword.
func LegacyHashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
