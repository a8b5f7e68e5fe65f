package rest

import (
	"context"
	"fmt"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// FacturesService endpoints /api/factures : listes par période avec résumé.
// Lecture seule, les factures naissant de la validation des commandes.
type FacturesService struct {
	c *Client
}

// FactureFilters filtres des listes de factures.
type FactureFilters struct {
	BoutiqueID int    `validate:"omitempty,min=1"`
	Date       string `validate:"omitempty,datetime=2006-01-02"`
	Mois       int    `validate:"omitempty,min=1,max=12"`
	Annee      int    `validate:"omitempty,min=2000"`
	Search     string
	Page       int    `validate:"omitempty,min=1"`
	PerPage    int    `validate:"omitempty,min=1,max=100"`
}

func (f FactureFilters) query() params {
	q := newParams()
	q.setInt("boutique_id", f.BoutiqueID)
	q.setStr("date", f.Date)
	q.setInt("mois", f.Mois)
	q.setInt("annee", f.Annee)
	q.setStr("search", f.Search)
	q.setInt("page", f.Page)
	q.setInt("per_page", f.PerPage)
	return q
}

// FacturesAvecResume page de factures accompagnée de son bloc de synthèse.
type FacturesAvecResume struct {
	Resume   entity.ResumeFactures `json:"resume"`
	Factures Page[entity.Facture]  `json:"factures"`
}

// List renvoie la page de factures correspondant aux filtres.
func (s *FacturesService) List(ctx context.Context, f FactureFilters) (*Page[entity.Facture], error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Facture]
	if err := s.c.get(ctx, "/factures", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get renvoie une facture par id.
func (s *FacturesService) Get(ctx context.Context, id int) (*entity.Facture, error) {
	var out entity.Facture
	if err := s.c.get(ctx, fmt.Sprintf("/factures/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ByCommande renvoie la facture rattachée à une commande validée.
func (s *FacturesService) ByCommande(ctx context.Context, commandeID int) (*entity.Facture, error) {
	var out entity.Facture
	if err := s.c.get(ctx, fmt.Sprintf("/factures/commande/%d", commandeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Aujourdhui renvoie les factures du jour avec leur résumé.
func (s *FacturesService) Aujourdhui(ctx context.Context, f FactureFilters) (*FacturesAvecResume, error) {
	return s.periode(ctx, "/factures/aujourdhui", f)
}

// Semaine renvoie les factures de la semaine en cours avec leur résumé.
func (s *FacturesService) Semaine(ctx context.Context, f FactureFilters) (*FacturesAvecResume, error) {
	return s.periode(ctx, "/factures/semaine", f)
}

// Mois renvoie les factures d'un mois ; Mois/Annee à zéro = mois courant.
func (s *FacturesService) Mois(ctx context.Context, f FactureFilters) (*FacturesAvecResume, error) {
	return s.periode(ctx, "/factures/mois", f)
}

// Annee renvoie les factures d'une année, résumé ventilé par mois.
func (s *FacturesService) Annee(ctx context.Context, f FactureFilters) (*FacturesAvecResume, error) {
	return s.periode(ctx, "/factures/annee", f)
}

func (s *FacturesService) periode(ctx context.Context, chemin string, f FactureFilters) (*FacturesAvecResume, error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out FacturesAvecResume
	if err := s.c.get(ctx, chemin, f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search recherche par numéro de facture ou de commande.
func (s *FacturesService) Search(ctx context.Context, recherche string, f FactureFilters) (*Page[entity.Facture], error) {
	f.Search = recherche
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Facture]
	if err := s.c.get(ctx, "/factures/search", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
