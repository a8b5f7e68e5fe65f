package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorie catégorie de produits, propre à une boutique.
type Categorie struct {
	ID          int       `json:"id"`
	Nom         string    `json:"nom"`
	Description string    `json:"description"`
	BoutiqueID  int       `json:"boutique_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Produit article vendu par une boutique.
type Produit struct {
	ID          int             `json:"id"`
	Nom         string          `json:"nom"`
	Description string          `json:"description"`
	PrixVente   decimal.Decimal `json:"prix_vente"`
	Stock       int             `json:"stock"`
	SeuilAlerte int             `json:"seuil_alerte"`
	Image       *string         `json:"image"`
	CategorieID int             `json:"categorie_id"`
	BoutiqueID  int             `json:"boutique_id"`
	Actif       bool            `json:"actif"`
	Categorie   *Categorie      `json:"categorie,omitempty"`
	// Pivot présent quand le produit est chargé via une commande.
	Pivot     *LigneCommande `json:"pivot,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// StockFaible indique si le stock est passé sous le seuil d'alerte.
func (p *Produit) StockFaible() bool { return p.Stock <= p.SeuilAlerte }

// LigneCommande ligne de la table pivot commande/produit.
type LigneCommande struct {
	CommandeID   int             `json:"commande_id"`
	ProduitID    int             `json:"produit_id"`
	Quantite     int             `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	SousTotal    decimal.Decimal `json:"sous_total"`
}
