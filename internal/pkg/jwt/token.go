package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// ValidateToken validates a JWT token and returns the claims.
// Tokens are minted by the identity service; this side only verifies.
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, errors.New("invalid token")
}
