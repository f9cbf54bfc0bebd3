package auth

import (
	"testing"
	"time"

	"github.com/crisisdesk/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("secret", time.Hour)

	assert.NotNil(t, ts)
	assert.Equal(t, "secret", ts.secret)
	assert.Equal(t, time.Hour, ts.expiry)
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	user := &models.User{
		ID:    42,
		Name:  "Test User",
		Email: "test@example.com",
		Role:  models.RoleEmergencyResponder,
	}

	token, err := ts.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, models.RoleEmergencyResponder, claims.Role)
}

func TestTokenService_Validate(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	user := &models.User{
		ID:    1,
		Name:  "Test User",
		Email: "test@example.com",
		Role:  models.RoleUser,
	}

	tests := []struct {
		name          string
		token         func(t *testing.T) string
		expectedError bool
		errorContains string
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				token, err := ts.Generate(user)
				require.NoError(t, err)
				return token
			},
			expectedError: false,
		},
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
			expectedError: true,
			errorContains: "failed to parse token",
		},
		{
			name: "wrong signing secret",
			token: func(t *testing.T) string {
				other := NewTokenService("other-secret", time.Hour)
				token, err := other.Generate(user)
				require.NoError(t, err)
				return token
			},
			expectedError: true,
			errorContains: "failed to parse token",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewTokenService("test-secret", -time.Minute)
				token, err := expired.Generate(user)
				require.NoError(t, err)
				return token
			},
			expectedError: true,
			errorContains: "failed to parse token",
		},
		{
			name: "unexpected signing method",
			token: func(t *testing.T) string {
				claims := jwt.MapClaims{
					"user_id": float64(1),
					"email":   "test@example.com",
					"name":    "Test User",
					"role":    "user",
					"exp":     time.Now().Add(time.Hour).Unix(),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
			expectedError: true,
			errorContains: "unexpected signing method",
		},
		{
			name: "missing user_id claim",
			token: func(t *testing.T) string {
				claims := jwt.MapClaims{
					"email": "test@example.com",
					"name":  "Test User",
					"role":  "user",
					"exp":   time.Now().Add(time.Hour).Unix(),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
				signed, err := token.SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return signed
			},
			expectedError: true,
			errorContains: "user_id not found in token",
		},
		{
			name: "unknown role claim",
			token: func(t *testing.T) string {
				claims := jwt.MapClaims{
					"user_id": float64(1),
					"email":   "test@example.com",
					"name":    "Test User",
					"role":    "superuser",
					"exp":     time.Now().Add(time.Hour).Unix(),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
				signed, err := token.SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return signed
			},
			expectedError: true,
			errorContains: "unknown role in token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ts.Validate(tt.token(t))

			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
