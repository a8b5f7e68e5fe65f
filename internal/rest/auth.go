package rest

import (
	"context"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// AuthService endpoints d'authentification. POST /api/auth/*.
type AuthService struct {
	c *Client
}

// MessageResponse réponse réduite à un message lisible.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse token + utilisateur renvoyés au login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    entity.User `json:"user"`
}

// LoginPayload identifiants de connexion.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordPayload réinitialisation via le token reçu par email.
type ResetPasswordPayload struct {
	Token                string `json:"token" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// Login vérifie les identifiants et renvoie le token de session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	payload := LoginPayload{Email: email, Password: password}
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out LoginResponse
	if err := s.c.postPublic(ctx, "/auth/login", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout révoque le token côté backend. L'appelant (la session) nettoie son
// état local même quand cet appel échoue.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.post(ctx, "/auth/logout", struct{}{}, nil)
}

// ForgotPassword déclenche l'envoi du mail de réinitialisation.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	payload := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: email}
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out MessageResponse
	if err := s.c.postPublic(ctx, "/auth/forgot-password", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword applique le nouveau mot de passe.
func (s *AuthService) ResetPassword(ctx context.Context, payload ResetPasswordPayload) (*MessageResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out MessageResponse
	if err := s.c.postPublic(ctx, "/auth/reset-password", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
