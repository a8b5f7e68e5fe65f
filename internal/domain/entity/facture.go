package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'une facture.
const (
	FactureActive  = "active"
	FactureAnnulee = "annulee"
)

// Facture facture émise à la validation d'une commande.
type Facture struct {
	ID            int             `json:"id"`
	CommandeID    int             `json:"commande_id"`
	NumeroFacture string          `json:"numero_facture"`
	DateFacture   string          `json:"date_facture"`
	MontantTotal  decimal.Decimal `json:"montant_total"`
	Statut        string          `json:"statut"` // FactureActive | FactureAnnulee
	Commande      *Commande       `json:"commande,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ResumeFactures bloc de synthèse renvoyé par les listes de factures par période.
type ResumeFactures struct {
	Date          string          `json:"date,omitempty"`
	DebutSemaine  string          `json:"debut_semaine,omitempty"`
	FinSemaine    string          `json:"fin_semaine,omitempty"`
	Mois          int             `json:"mois,omitempty"`
	Annee         int             `json:"annee,omitempty"`
	TotalFactures int             `json:"total_factures"`
	MontantTotal  decimal.Decimal `json:"montant_total"`
	ParMois       []ResumeMois    `json:"par_mois,omitempty"`
}

// ResumeMois ventilation mensuelle du résumé annuel.
type ResumeMois struct {
	Mois    int             `json:"mois"`
	Total   int             `json:"total"`
	Montant decimal.Decimal `json:"montant"`
}
