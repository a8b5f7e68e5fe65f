package rest

import (
	"context"
	"fmt"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// CategoriesService endpoints /api/categories. Collection plate, la liste des
// catégories d'une boutique restant courte.
type CategoriesService struct {
	c *Client
}

// CategorieResponse réponse de création/mise à jour.
type CategorieResponse struct {
	Message   string           `json:"message"`
	Categorie entity.Categorie `json:"categorie"`
}

// CreateCategoriePayload création d'une catégorie.
type CreateCategoriePayload struct {
	Nom         string `json:"nom" validate:"required"`
	Description string `json:"description,omitempty"`
	BoutiqueID  int    `json:"boutique_id,omitempty" validate:"omitempty,min=1"`
}

// UpdateCategoriePayload mise à jour partielle.
type UpdateCategoriePayload struct {
	Nom         string `json:"nom,omitempty"`
	Description string `json:"description,omitempty"`
}

// List renvoie les catégories, filtrées par boutique le cas échéant.
func (s *CategoriesService) List(ctx context.Context, boutiqueID int) ([]entity.Categorie, error) {
	q := newParams()
	q.setInt("boutique_id", boutiqueID)
	var out []entity.Categorie
	if err := s.c.get(ctx, "/categories", q.vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get renvoie une catégorie par id.
func (s *CategoriesService) Get(ctx context.Context, id int) (*entity.Categorie, error) {
	var out entity.Categorie
	if err := s.c.get(ctx, fmt.Sprintf("/categories/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée une catégorie.
func (s *CategoriesService) Create(ctx context.Context, payload CreateCategoriePayload) (*CategorieResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out CategorieResponse
	if err := s.c.post(ctx, "/categories", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie une catégorie.
func (s *CategoriesService) Update(ctx context.Context, id int, payload UpdateCategoriePayload) (*CategorieResponse, error) {
	var out CategorieResponse
	if err := s.c.put(ctx, fmt.Sprintf("/categories/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime une catégorie.
func (s *CategoriesService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/categories/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
