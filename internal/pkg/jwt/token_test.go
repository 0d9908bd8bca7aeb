package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func mintToken(t *testing.T, secret string, expiresAt int64, claims jwt.MapClaims) string {
	t.Helper()

	claims["exp"] = expiresAt
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenString
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Unix()
	validToken := mintToken(t, testSecret, expiresAt, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    "dispatcher",
		"iss":     "dispatch-test",
	})

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      testSecret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      testSecret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      testSecret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.tokenString, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)

				claimsMap := *claims
				assert.Equal(t, userID.String(), claimsMap["user_id"])
				assert.Equal(t, "dispatcher", claimsMap["role"])
				assert.Equal(t, "dispatch-test", claimsMap["iss"])
				assert.Equal(t, float64(expiresAt), claimsMap["exp"])
			}
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	expiredAt := time.Now().Add(-time.Minute).Unix()
	tokenString := mintToken(t, testSecret, expiredAt, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    "dispatcher",
	})

	claims, err := ValidateToken(tokenString, testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
