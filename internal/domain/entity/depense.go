package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Depense dépense enregistrée par une boutique.
type Depense struct {
	ID          int             `json:"id"`
	BoutiqueID  int             `json:"boutique_id"`
	Description string          `json:"description"`
	Montant     decimal.Decimal `json:"montant"`
	Categorie   string          `json:"categorie"`
	DateDepense string          `json:"date_depense"`
	Boutique    *Boutique       `json:"boutique,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
