package rest

import (
	"context"
	"fmt"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// LivreursService endpoints /api/livreurs.
type LivreursService struct {
	c *Client
}

// LivreurFilters filtres de liste.
type LivreurFilters struct {
	BoutiqueID int   `validate:"omitempty,min=1"`
	Actif      *bool // tri-état
	Disponible *bool // tri-état
	Search     string
	Page       int   `validate:"omitempty,min=1"`
	PerPage    int   `validate:"omitempty,min=1,max=100"`
}

func (f LivreurFilters) query() params {
	q := newParams()
	q.setInt("boutique_id", f.BoutiqueID)
	q.setBool("actif", f.Actif)
	q.setBool("disponible", f.Disponible)
	q.setStr("search", f.Search)
	q.setInt("page", f.Page)
	q.setInt("per_page", f.PerPage)
	return q
}

// LivreurResponse réponse de création/mise à jour.
type LivreurResponse struct {
	Message string         `json:"message"`
	Livreur entity.Livreur `json:"livreur"`
}

// CreateLivreurPayload création d'un livreur.
type CreateLivreurPayload struct {
	Nom        string `json:"nom" validate:"required"`
	Telephone  string `json:"telephone" validate:"required"`
	BoutiqueID int    `json:"boutique_id,omitempty" validate:"omitempty,min=1"`
}

// UpdateLivreurPayload mise à jour partielle.
type UpdateLivreurPayload struct {
	Nom       string `json:"nom,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Actif     *bool  `json:"actif,omitempty"`
}

// List renvoie la page de livreurs correspondant aux filtres.
func (s *LivreursService) List(ctx context.Context, f LivreurFilters) (*Page[entity.Livreur], error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Livreur]
	if err := s.c.get(ctx, "/livreurs", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Disponibles renvoie les livreurs libres pour une livraison.
func (s *LivreursService) Disponibles(ctx context.Context, boutiqueID int) ([]entity.Livreur, error) {
	q := newParams()
	q.setInt("boutique_id", boutiqueID)
	var out []entity.Livreur
	if err := s.c.get(ctx, "/livreurs/disponibles", q.vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get renvoie un livreur par id.
func (s *LivreursService) Get(ctx context.Context, id int) (*entity.Livreur, error) {
	var out entity.Livreur
	if err := s.c.get(ctx, fmt.Sprintf("/livreurs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée un livreur.
func (s *LivreursService) Create(ctx context.Context, payload CreateLivreurPayload) (*LivreurResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out LivreurResponse
	if err := s.c.post(ctx, "/livreurs", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie un livreur.
func (s *LivreursService) Update(ctx context.Context, id int, payload UpdateLivreurPayload) (*LivreurResponse, error) {
	var out LivreurResponse
	if err := s.c.put(ctx, fmt.Sprintf("/livreurs/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime un livreur.
func (s *LivreursService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/livreurs/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleDisponibilite bascule la disponibilité depuis la liste.
func (s *LivreursService) ToggleDisponibilite(ctx context.Context, id int) (*LivreurResponse, error) {
	var out LivreurResponse
	if err := s.c.post(ctx, fmt.Sprintf("/livreurs/%d/toggle-disponibilite", id), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
