package rest

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// DepensesService endpoints /api/depenses.
type DepensesService struct {
	c *Client
}

// DepenseFilters filtres de liste.
type DepenseFilters struct {
	BoutiqueID int `validate:"omitempty,min=1"`
	Page       int `validate:"omitempty,min=1"`
	PerPage    int `validate:"omitempty,min=1,max=100"`
}

func (f DepenseFilters) query() params {
	q := newParams()
	q.setInt("boutique_id", f.BoutiqueID)
	q.setInt("page", f.Page)
	q.setInt("per_page", f.PerPage)
	return q
}

// DepenseResponse réponse de création/mise à jour.
type DepenseResponse struct {
	Message string         `json:"message"`
	Depense entity.Depense `json:"depense"`
}

// CreateDepensePayload création d'une dépense.
type CreateDepensePayload struct {
	Description string          `json:"description" validate:"required"`
	Montant     decimal.Decimal `json:"montant" validate:"required"`
	Categorie   string          `json:"categorie" validate:"required"`
	DateDepense string          `json:"date_depense" validate:"required,datetime=2006-01-02"`
	BoutiqueID  int             `json:"boutique_id,omitempty" validate:"omitempty,min=1"`
}

// UpdateDepensePayload mise à jour partielle.
type UpdateDepensePayload struct {
	Description string           `json:"description,omitempty"`
	Montant     *decimal.Decimal `json:"montant,omitempty"`
	Categorie   string           `json:"categorie,omitempty"`
	DateDepense string           `json:"date_depense,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// List renvoie la page de dépenses correspondant aux filtres.
func (s *DepensesService) List(ctx context.Context, f DepenseFilters) (*Page[entity.Depense], error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Depense]
	if err := s.c.get(ctx, "/depenses", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParDate renvoie les dépenses d'une date précise (collection plate).
func (s *DepensesService) ParDate(ctx context.Context, date string, boutiqueID int) ([]entity.Depense, error) {
	q := newParams()
	q.setStr("date", date)
	q.setInt("boutique_id", boutiqueID)
	var out []entity.Depense
	if err := s.c.get(ctx, "/depenses/par-date", q.vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get renvoie une dépense par id.
func (s *DepensesService) Get(ctx context.Context, id int) (*entity.Depense, error) {
	var out entity.Depense
	if err := s.c.get(ctx, fmt.Sprintf("/depenses/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée une dépense.
func (s *DepensesService) Create(ctx context.Context, payload CreateDepensePayload) (*DepenseResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out DepenseResponse
	if err := s.c.post(ctx, "/depenses", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie une dépense.
func (s *DepensesService) Update(ctx context.Context, id int, payload UpdateDepensePayload) (*DepenseResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out DepenseResponse
	if err := s.c.put(ctx, fmt.Sprintf("/depenses/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime une dépense.
func (s *DepensesService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/depenses/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
