package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/whenmeet/availability-backend/internal/config"
)

type Manager struct{}

func NewManger() *Manager {
	return &Manager{}
}

type InvalidTokenError struct {
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %s", e.Reason)
}

func (m *Manager) CreateToken(id int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprint(id),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.JwtTTL())),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(config.Secret()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *Manager) GetIdFromToken(token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &InvalidTokenError{Reason: fmt.Sprintf("unexpected signing method %v", t.Header["alg"])}
		}
		return []byte(config.Secret()), nil
	})
	if err != nil {
		return 0, &InvalidTokenError{Reason: err.Error()}
	}

	if !parsed.Valid {
		return 0, &InvalidTokenError{Reason: "token is not valid"}
	}

	var id int64
	if _, err := fmt.Sscan(claims.Subject, &id); err != nil {
		return 0, &InvalidTokenError{Reason: fmt.Sprintf("bad subject %q", claims.Subject)}
	}

	return id, nil
}
