package service

import (
	"strings"

	apperrors "nordstudio/internal/errors"
)

// DemoToken is the placeholder token the demo auth hands out and later
// accepts on verify.
const DemoToken = "demo-jwt-token"

// adminMarkers grants the admin UI flag to studio addresses. Substring
// matching on an email is obviously not credential verification.
var adminMarkers = []string{"admin", "nord"}

// LoginResult is the demo login payload.
type LoginResult struct {
	IsAdmin bool   `json:"isAdmin"`
	Email   string `json:"email"`
	Token   string `json:"token"`
}

// AuthService implements the demo-only sign-in used by the CMS frontend.
//
// This is NOT a security boundary: no credential is verified, the token
// is a constant and no server-side route trusts the result for
// authorization. A real implementation would validate an OAuth or JWT
// credential instead.
type AuthService interface {
	Login(email, token string) (*LoginResult, error)
	Verify(token string) error
}

type authService struct{}

// NewAuthService creates the demo auth service.
func NewAuthService() AuthService {
	return &authService{}
}

// Login checks that both fields arrived and derives the client-side
// admin flag from the email address.
func (s *authService) Login(email, token string) (*LoginResult, error) {
	if email == "" || token == "" {
		return nil, apperrors.ErrCredentialsRequired
	}

	isAdmin := false
	for _, marker := range adminMarkers {
		if strings.Contains(email, marker) {
			isAdmin = true
			break
		}
	}

	return &LoginResult{
		IsAdmin: isAdmin,
		Email:   email,
		Token:   DemoToken,
	}, nil
}

// Verify checks the opaque token against the demo constant.
func (s *authService) Verify(token string) error {
	if token == "" {
		return apperrors.ErrTokenRequired
	}
	if token != DemoToken {
		return apperrors.ErrInvalidToken
	}
	return nil
}
