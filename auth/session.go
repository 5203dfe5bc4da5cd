package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionTTL matches the 30-day session cookie lifetime.
const SessionTTL = 30 * 24 * time.Hour

// NewSessionToken signs a session JWT for a student or mentor identity.
func NewSessionToken(id Identity, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id.Subject,
		"name":  id.Name,
		"email": id.Email,
		"role":  string(id.Kind),
		"exp":   time.Now().Add(SessionTTL).Unix(),
	}
	if id.RollNumber != "" {
		claims["roll_number"] = id.RollNumber
	}
	if id.AccessToken != "" {
		claims["access_token"] = id.AccessToken
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies a session JWT and resolves its identity. Any
// verification failure yields an anonymous identity and the error.
func ParseSessionToken(tokenString, secret string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = fmt.Errorf("invalid session token")
		}
		return Anonymous(), err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Anonymous(), fmt.Errorf("invalid session claims")
	}
	return FromSessionClaims(claims), nil
}
