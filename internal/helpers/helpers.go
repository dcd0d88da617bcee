package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

const (
	ClaimSubject = "sub"
	ClaimRole    = "role"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

// GetSubject - извлекает идентификатор пользователя из контекста JWT токена
func GetSubject(ctx context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	subject, ok := claims[ClaimSubject].(string)
	if !ok || subject == "" {
		logger.Warn("Undefined subject from token")
		return "", fmt.Errorf("undefined subject")
	}
	return subject, nil
}

// IsAdmin - проверяет роль администратора в JWT токене
func IsAdmin(ctx context.Context) bool {
	_, claims, _ := jwtauth.FromContext(ctx)
	role, _ := claims[ClaimRole].(string)
	return role == RoleAdmin
}
