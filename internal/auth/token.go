// Package auth provides session token generation, validation and the
// middleware that gates authenticated routes.
package auth

import (
	"fmt"
	"time"

	"github.com/crisisdesk/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session token
type Claims struct {
	UserID int64
	Email  string
	Name   string
	Role   models.Role
}

// TokenService handles session token generation and validation.
//
// Tokens are stateless: there is no server-side revocation list, logout is a
// client-side credential discard and expiry is the only invalidation.
type TokenService struct {
	secret string
	expiry time.Duration
}

// NewTokenService creates a new token service with the given signing secret
// and validity window
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		expiry: expiry,
	}
}

// Generate mints a signed session token embedding the user's id, email, name
// and role
func (ts *TokenService) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     now.Add(ts.expiry).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ts.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies signature and expiry and returns the decoded claims.
// Any verification error rejects the token; there is no partial trust.
func (ts *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	// JWT claims decode numbers as float64
	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("user_id not found in token")
	}

	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("email not found in token")
	}

	name, ok := mapClaims["name"].(string)
	if !ok {
		return nil, fmt.Errorf("name not found in token")
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("role not found in token")
	}

	role := models.Role(roleStr)
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role in token")
	}

	return &Claims{
		UserID: int64(userID),
		Email:  email,
		Name:   name,
		Role:   role,
	}, nil
}
