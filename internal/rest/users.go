package rest

import (
	"context"
	"fmt"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// UsersService endpoints /api/users. Gestion des comptes, admin uniquement.
type UsersService struct {
	c *Client
}

// UserResponse réponse de création/mise à jour.
type UserResponse struct {
	Message string      `json:"message"`
	User    entity.User `json:"user"`
}

// CreateUserPayload création d'un compte. BoutiqueID requis pour un gérant.
type CreateUserPayload struct {
	Nom        string `json:"nom" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       string `json:"role" validate:"required,oneof=admin gerant"`
	BoutiqueID *int   `json:"boutique_id,omitempty"`
	Actif      *bool  `json:"actif,omitempty"`
}

// UpdateUserPayload mise à jour partielle.
type UpdateUserPayload struct {
	Nom        string `json:"nom,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Password   string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role       string `json:"role,omitempty" validate:"omitempty,oneof=admin gerant"`
	BoutiqueID *int   `json:"boutique_id,omitempty"`
	Actif      *bool  `json:"actif,omitempty"`
}

// ChangeRolePayload bascule de rôle ; BoutiqueID accompagne le passage en
// gérant.
type ChangeRolePayload struct {
	Role       string `json:"role" validate:"required,oneof=admin gerant"`
	BoutiqueID *int   `json:"boutique_id,omitempty"`
}

// List renvoie tous les comptes (collection plate).
func (s *UsersService) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := s.c.get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get renvoie un compte par id.
func (s *UsersService) Get(ctx context.Context, id int) (*entity.User, error) {
	var out entity.User
	if err := s.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée un compte.
func (s *UsersService) Create(ctx context.Context, payload CreateUserPayload) (*UserResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out UserResponse
	if err := s.c.post(ctx, "/users", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie un compte.
func (s *UsersService) Update(ctx context.Context, id int, payload UpdateUserPayload) (*UserResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out UserResponse
	if err := s.c.put(ctx, fmt.Sprintf("/users/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeRole change le rôle d'un compte.
func (s *UsersService) ChangeRole(ctx context.Context, id int, payload ChangeRolePayload) (*UserResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out UserResponse
	if err := s.c.patch(ctx, fmt.Sprintf("/users/%d/role", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleActif bascule actif/inactif.
func (s *UsersService) ToggleActif(ctx context.Context, id int) (*UserResponse, error) {
	var out UserResponse
	if err := s.c.patch(ctx, fmt.Sprintf("/users/%d/toggle-actif", id), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime un compte.
func (s *UsersService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
