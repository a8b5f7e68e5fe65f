package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'une commande. Le cycle de vie (en_cours -> validee | annulee) est
// imposé côté backend ; la console ne fait que l'afficher et le déclencher.
const (
	StatutEnCours = "en_cours"
	StatutValidee = "validee"
	StatutAnnulee = "annulee"
)

// Types de commande.
const (
	TypeSurPlace  = "sur_place"
	TypeLivraison = "livraison"
)

// Commande commande d'une boutique, avec ses relations chargées à la demande
// par le backend.
type Commande struct {
	ID               int             `json:"id"`
	NumeroCommande   string          `json:"numero_commande"`
	BoutiqueID       int             `json:"boutique_id"`
	ClientID         *int            `json:"client_id"`
	EmployeID        int             `json:"employe_id"`
	LivreurID        *int            `json:"livreur_id"`
	TypeCommande     string          `json:"type_commande"` // TypeSurPlace | TypeLivraison
	Statut           string          `json:"statut"`
	Total            decimal.Decimal `json:"total"`
	DateCommande     string          `json:"date_commande"`
	DateValidation   *string         `json:"date_validation"`
	DateAnnulation   *string         `json:"date_annulation"`
	RaisonAnnulation *string         `json:"raison_annulation"`
	AnnuleePar       *User           `json:"annulee_par"`
	Notes            *string         `json:"notes"`
	Client           *Client         `json:"client,omitempty"`
	Employe          *Employe        `json:"employe,omitempty"`
	Livreur          *Livreur        `json:"livreur,omitempty"`
	Produits         []Produit       `json:"produits,omitempty"`
	Facture          *Facture        `json:"facture,omitempty"`
	Boutique         *Boutique       `json:"boutique,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// EstEnCours indique si la commande est encore modifiable.
func (c *Commande) EstEnCours() bool { return c.Statut == StatutEnCours }

// ResumeHistorique bloc de synthèse renvoyé par /commandes/historique.
type ResumeHistorique struct {
	Date           string          `json:"date"`
	TotalCommandes int             `json:"total_commandes"`
	SommeTotale    decimal.Decimal `json:"somme_totale"`
	TotalValidees  decimal.Decimal `json:"total_validees"`
	NbEnCours      int             `json:"nb_en_cours"`
	NbAnnulees     int             `json:"nb_annulees"`
}

// ResumeEmployeJour synthèse des commandes du jour d'un employé.
type ResumeEmployeJour struct {
	TotalCommandes    int             `json:"total_commandes"`
	CommandesValidees int             `json:"commandes_validees"`
	CommandesEnCours  int             `json:"commandes_en_cours"`
	CommandesAnnulees int             `json:"commandes_annulees"`
	TotalVentes       decimal.Decimal `json:"total_ventes"`
}
