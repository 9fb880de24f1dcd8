package auth

import (
	"testing"

	"jobboard-backend/internal/model"
)

// TestSecretKey is the signing key installed by GetAccessToken
const TestSecretKey = "test-secret-key"

// GetAccessToken is a helper function to obtain an access token for user.
// It installs TestSecretKey when no key is configured.
func GetAccessToken(t testing.TB, user model.User) string {
	t.Helper()
	if SecretKey == "" {
		SecretKey = TestSecretKey
	}
	token, err := GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}
