package services

import (
	"errors"
	"testing"

	"github.com/denmor86/ya-cashout/internal/config"
	"github.com/denmor86/ya-cashout/internal/helpers"
)

func TestNewIdentityService(t *testing.T) {
	t.Run("Identity_CreatesService", func(t *testing.T) {
		identity := NewIdentity(config.DefaultConfig())
		if identity == nil || identity.JWTAuth == nil {
			t.Errorf("Expected Identity to be initialized with JWTAuth")
		}
		if identity.GetTokenAuth() != identity.JWTAuth {
			t.Errorf("Expected GetTokenAuth to return the same JWTAuth")
		}
	})
}

func TestGenerateJWT(t *testing.T) {
	identity := NewIdentity(config.DefaultConfig())

	testCases := []struct {
		name          string
		subject       string
		role          string
		expectedError error
	}{
		{name: "User token #1", subject: "acc-1", role: helpers.RoleUser},
		{name: "Admin token #2", subject: "operator", role: helpers.RoleAdmin},
		{name: "Unknown role #3", subject: "acc-1", role: "root", expectedError: ErrInvalidRole},
		{name: "Empty subject #4", subject: "", role: helpers.RoleUser, expectedError: ErrInvalidSubject},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokenString, err := identity.GenerateJWT(tc.subject, tc.role)
			if !errors.Is(err, tc.expectedError) {
				t.Fatalf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if tc.expectedError != nil {
				return
			}

			token, err := identity.JWTAuth.Decode(tokenString)
			if err != nil {
				t.Fatalf("Failed to decode token: %v", err)
			}
			if token.Subject() != tc.subject {
				t.Errorf("Expected subject %s, got %s", tc.subject, token.Subject())
			}
			role, ok := token.Get(helpers.ClaimRole)
			if !ok || role != tc.role {
				t.Errorf("Expected role %s, got %v", tc.role, role)
			}
		})
	}
}
