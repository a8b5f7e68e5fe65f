package rest

import (
	"context"
	"strconv"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// Périodes reconnues par les classements du tableau de bord.
const (
	PeriodeJour    = "jour"
	PeriodeSemaine = "semaine"
	PeriodeMois    = "mois"
	PeriodeAnnee   = "annee"
)

// DashboardService endpoints /api/dashboard. Chaque appel accepte un
// boutique_id optionnel ; 0 = toutes les boutiques.
type DashboardService struct {
	c *Client
}

func scopeQuery(boutiqueID int) params {
	q := newParams()
	q.setInt("boutique_id", boutiqueID)
	return q
}

// Stats renvoie les chiffres de tête (jour/mois/année + commandes en cours).
func (s *DashboardService) Stats(ctx context.Context, boutiqueID int) (*entity.DashboardStats, error) {
	var out entity.DashboardStats
	if err := s.c.get(ctx, "/dashboard/stats", scopeQuery(boutiqueID).vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EvolutionVentes renvoie la courbe des ventes des 7 derniers jours.
func (s *DashboardService) EvolutionVentes(ctx context.Context, boutiqueID int) ([]entity.EvolutionVente, error) {
	var out []entity.EvolutionVente
	if err := s.c.get(ctx, "/dashboard/evolution-ventes", scopeQuery(boutiqueID).vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommandesSemaine renvoie le volume de commandes par jour de la semaine.
func (s *DashboardService) CommandesSemaine(ctx context.Context, boutiqueID int) ([]entity.CommandeJour, error) {
	var out []entity.CommandeJour
	if err := s.c.get(ctx, "/dashboard/commandes-semaine", scopeQuery(boutiqueID).vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DashboardService) top(ctx context.Context, chemin, periode string, limite, boutiqueID int, out any) error {
	q := scopeQuery(boutiqueID)
	q.setStr("periode", periode)
	if limite > 0 {
		q.Set("limit", strconv.Itoa(limite))
	}
	return s.c.get(ctx, chemin, q.vals(), out)
}

// TopProduits renvoie les produits les plus vendus sur la période.
func (s *DashboardService) TopProduits(ctx context.Context, periode string, limite, boutiqueID int) ([]entity.TopProduit, error) {
	var out []entity.TopProduit
	if err := s.top(ctx, "/dashboard/top-produits", periode, limite, boutiqueID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopEmployes renvoie les employés au meilleur chiffre sur la période.
func (s *DashboardService) TopEmployes(ctx context.Context, periode string, limite, boutiqueID int) ([]entity.TopEmploye, error) {
	var out []entity.TopEmploye
	if err := s.top(ctx, "/dashboard/top-employes", periode, limite, boutiqueID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopLivreurs renvoie les livreurs les plus actifs sur la période.
func (s *DashboardService) TopLivreurs(ctx context.Context, periode string, limite, boutiqueID int) ([]entity.TopLivreur, error) {
	var out []entity.TopLivreur
	if err := s.top(ctx, "/dashboard/top-livreurs", periode, limite, boutiqueID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StockFaible renvoie les produits sous leur seuil d'alerte.
func (s *DashboardService) StockFaible(ctx context.Context, boutiqueID int) ([]entity.ProduitStockFaible, error) {
	var out []entity.ProduitStockFaible
	if err := s.c.get(ctx, "/dashboard/stock-faible", scopeQuery(boutiqueID).vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
