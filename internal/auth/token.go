package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	jwtIssuer   = "genetic-miniapp-api"
	jwtAudience = "genetic-miniapp-webapp"

	SessionTokenTTL = 24 * time.Hour
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("session secret cannot be empty")
)

type SessionClaims struct {
	TelegramID int64  `json:"tg_user_id"`
	Username   string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints a short-lived token for a verified WebApp
// user so follow-up requests can carry an identity without re-sending
// initData.
func GenerateSessionToken(telegramID int64, username, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	now := time.Now()

	claims := &SessionClaims{
		TelegramID: telegramID,
		Username:   username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(jwtAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
