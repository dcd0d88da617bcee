package services

import (
	"errors"
	"time"

	"github.com/denmor86/ya-cashout/internal/config"
	"github.com/denmor86/ya-cashout/internal/helpers"
	"github.com/go-chi/jwtauth/v5"
)

// Identity - выпуск и проверка JWT токенов. Пользователи аутентифицируются внешним сервисом,
// здесь токены выпускаются только для оператора (walletctl) и тестов.
type Identity struct {
	JWTAuth *jwtauth.JWTAuth
}

var (
	ErrInvalidRole    = errors.New("unknown role")
	ErrInvalidSubject = errors.New("token subject is required")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config) *Identity {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth}
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(subject string, role string) (string, error) {
	return i.GenerateJWTWithTTL(subject, role, TokenExpirationTime)
}

func (i *Identity) GenerateJWTWithTTL(subject string, role string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrInvalidSubject
	}
	if role != helpers.RoleUser && role != helpers.RoleAdmin {
		return "", ErrInvalidRole
	}
	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		helpers.ClaimSubject: subject,
		helpers.ClaimRole:    role,
		"exp":                time.Now().Add(ttl),
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
