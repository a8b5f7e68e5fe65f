package rest

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// CommandesService endpoints /api/commandes : listes par statut, cycle de vie
// valider/annuler, historique et résumés.
type CommandesService struct {
	c *Client
}

// CommandeFilters filtres des listes de commandes.
type CommandeFilters struct {
	BoutiqueID int    `validate:"omitempty,min=1"`
	Statut     string `validate:"omitempty,oneof=en_cours validee annulee"`
	Date       string `validate:"omitempty,datetime=2006-01-02"`
	Mois       int    `validate:"omitempty,min=1,max=12"`
	Annee      int    `validate:"omitempty,min=2000"`
	Search     string
	Page       int    `validate:"omitempty,min=1"`
	PerPage    int    `validate:"omitempty,min=1,max=100"`
}

func (f CommandeFilters) query() params {
	q := newParams()
	q.setInt("boutique_id", f.BoutiqueID)
	q.setStr("statut", f.Statut)
	q.setStr("date", f.Date)
	q.setInt("mois", f.Mois)
	q.setInt("annee", f.Annee)
	q.setStr("search", f.Search)
	q.setInt("page", f.Page)
	q.setInt("per_page", f.PerPage)
	return q
}

// CommandeResponse réponse de création/mise à jour/annulation.
type CommandeResponse struct {
	Message  string          `json:"message"`
	Commande entity.Commande `json:"commande"`
}

// LignePayload ligne de commande envoyée à la création : uniquement le produit
// et la quantité. Le total est recalculé et imposé par le backend.
type LignePayload struct {
	ProduitID int `json:"produit_id" validate:"required,min=1"`
	Quantite  int `json:"quantite" validate:"required,min=1"`
}

// CreateCommandePayload création d'une commande.
type CreateCommandePayload struct {
	BoutiqueID   int            `json:"boutique_id,omitempty" validate:"omitempty,min=1"`
	ClientID     *int           `json:"client_id,omitempty"`
	EmployeID    int            `json:"employe_id" validate:"required,min=1"`
	LivreurID    *int           `json:"livreur_id,omitempty"`
	TypeCommande string         `json:"type_commande" validate:"required,oneof=sur_place livraison"`
	Notes        string         `json:"notes,omitempty"`
	Produits     []LignePayload `json:"produits" validate:"required,min=1,dive"`
}

// UpdateCommandePayload mise à jour d'une commande encore en cours.
type UpdateCommandePayload struct {
	ClientID     *int           `json:"client_id,omitempty"`
	EmployeID    int            `json:"employe_id,omitempty"`
	LivreurID    *int           `json:"livreur_id,omitempty"`
	TypeCommande string         `json:"type_commande,omitempty" validate:"omitempty,oneof=sur_place livraison"`
	Notes        string         `json:"notes,omitempty"`
	Produits     []LignePayload `json:"produits,omitempty" validate:"omitempty,min=1,dive"`
}

// HistoriqueResponse commandes d'une date avec leur résumé.
type HistoriqueResponse struct {
	Resume    entity.ResumeHistorique `json:"resume"`
	Commandes Page[entity.Commande]   `json:"commandes"`
}

// CommandesEmployeResponse commandes du jour d'un employé.
type CommandesEmployeResponse struct {
	Employe *entity.Employe          `json:"employe"`
	Date    string                   `json:"date"`
	Resume  entity.ResumeEmployeJour `json:"resume"`
	// Commandes au format réduit renvoyé par cet endpoint.
	Commandes []CommandeEmployeItem `json:"commandes"`
}

// CommandeEmployeItem ligne réduite de la vue employé du jour.
type CommandeEmployeItem struct {
	ID           int             `json:"id"`
	Statut       string          `json:"statut"`
	Total        decimal.Decimal `json:"total"`
	TypeCommande string          `json:"type_commande"`
	Notes        *string         `json:"notes"`
	Heure        string          `json:"heure"`
	Client       *struct {
		ID         int    `json:"id"`
		NomComplet string `json:"nom_complet"`
		Telephone  string `json:"telephone"`
	} `json:"client"`
	Livreur *struct {
		ID  int    `json:"id"`
		Nom string `json:"nom"`
	} `json:"livreur"`
	Produits []LigneImpression `json:"produits"`
}

// Impression ticket renvoyé à la validation, prêt à imprimer.
type Impression struct {
	NumeroFacture string `json:"numero_facture"`
	DateEmission  string `json:"date_emission"`
	Boutique      struct {
		Nom       string `json:"nom"`
		Adresse   string `json:"adresse"`
		Telephone string `json:"telephone"`
	} `json:"boutique"`
	Client *struct {
		Nom       string `json:"nom"`
		Telephone string `json:"telephone"`
	} `json:"client"`
	TypeCommande string            `json:"type_commande"`
	Produits     []LigneImpression `json:"produits"`
	Total        decimal.Decimal   `json:"total"`
	Notes        *string           `json:"notes"`
}

// LigneImpression ligne du ticket.
type LigneImpression struct {
	Nom          string          `json:"nom"`
	Quantite     int             `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	SousTotal    decimal.Decimal `json:"sous_total"`
}

// ValiderResponse réponse de validation d'une commande.
type ValiderResponse struct {
	Message    string     `json:"message"`
	Impression Impression `json:"impression"`
}

// List renvoie la page de commandes correspondant aux filtres.
func (s *CommandesService) List(ctx context.Context, f CommandeFilters) (*Page[entity.Commande], error) {
	return s.lister(ctx, "/commandes", f)
}

// EnCours renvoie les commandes encore ouvertes.
func (s *CommandesService) EnCours(ctx context.Context, f CommandeFilters) (*Page[entity.Commande], error) {
	return s.lister(ctx, "/commandes/en-cours", f)
}

// Validees renvoie les commandes validées ; Date ou Mois/Annee restreignent
// la période.
func (s *CommandesService) Validees(ctx context.Context, f CommandeFilters) (*Page[entity.Commande], error) {
	return s.lister(ctx, "/commandes/validees", f)
}

// Annulees renvoie les commandes annulées.
func (s *CommandesService) Annulees(ctx context.Context, f CommandeFilters) (*Page[entity.Commande], error) {
	return s.lister(ctx, "/commandes/annulees", f)
}

// Search recherche par numéro, client ou employé.
func (s *CommandesService) Search(ctx context.Context, recherche string, f CommandeFilters) (*Page[entity.Commande], error) {
	f.Search = recherche
	return s.lister(ctx, "/commandes/search", f)
}

func (s *CommandesService) lister(ctx context.Context, chemin string, f CommandeFilters) (*Page[entity.Commande], error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Commande]
	if err := s.c.get(ctx, chemin, f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Historique renvoie les commandes d'une date avec leur résumé.
func (s *CommandesService) Historique(ctx context.Context, date string, f CommandeFilters) (*HistoriqueResponse, error) {
	f.Date = date
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out HistoriqueResponse
	if err := s.c.get(ctx, "/commandes/historique", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DuJourEmploye renvoie les commandes du jour d'un employé. date vide =
// aujourd'hui côté backend.
func (s *CommandesService) DuJourEmploye(ctx context.Context, employeID int, date string, boutiqueID int) (*CommandesEmployeResponse, error) {
	q := newParams()
	q.setStr("date", date)
	q.setInt("boutique_id", boutiqueID)
	var out CommandesEmployeResponse
	if err := s.c.get(ctx, fmt.Sprintf("/commandes/employe/%d/du-jour", employeID), q.vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get renvoie une commande avec ses relations.
func (s *CommandesService) Get(ctx context.Context, id int) (*entity.Commande, error) {
	var out entity.Commande
	if err := s.c.get(ctx, fmt.Sprintf("/commandes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée une commande en statut en_cours.
func (s *CommandesService) Create(ctx context.Context, payload CreateCommandePayload) (*CommandeResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out CommandeResponse
	if err := s.c.post(ctx, "/commandes", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie une commande encore en cours.
func (s *CommandesService) Update(ctx context.Context, id int, payload UpdateCommandePayload) (*CommandeResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out CommandeResponse
	if err := s.c.put(ctx, fmt.Sprintf("/commandes/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime une commande encore en cours.
func (s *CommandesService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/commandes/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Valider clôt la commande, génère la facture et renvoie le ticket.
func (s *CommandesService) Valider(ctx context.Context, id int) (*ValiderResponse, error) {
	var out ValiderResponse
	if err := s.c.post(ctx, fmt.Sprintf("/commandes/%d/valider", id), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Annuler annule la commande avec une raison obligatoire.
func (s *CommandesService) Annuler(ctx context.Context, id int, raison string) (*CommandeResponse, error) {
	payload := struct {
		Raison string `json:"raison" validate:"required"`
	}{Raison: raison}
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out CommandeResponse
	if err := s.c.post(ctx, fmt.Sprintf("/commandes/%d/annuler", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Facture renvoie la facture générée pour une commande validée.
func (s *CommandesService) Facture(ctx context.Context, commandeID int) (*entity.Facture, error) {
	var out entity.Facture
	if err := s.c.get(ctx, fmt.Sprintf("/commandes/%d/facture", commandeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
