package entity

import "github.com/shopspring/decimal"

// PeriodeStats agrégat ventes/dépenses/bénéfice sur une période.
type PeriodeStats struct {
	Ventes          decimal.Decimal `json:"ventes"`
	Depenses        decimal.Decimal `json:"depenses"`
	Benefice        decimal.Decimal `json:"benefice"`
	NombreCommandes int             `json:"nombre_commandes,omitempty"`
}

// DashboardStats chiffres de tête du tableau de bord.
type DashboardStats struct {
	Jour             PeriodeStats `json:"jour"`
	Mois             PeriodeStats `json:"mois"`
	Annee            PeriodeStats `json:"annee"`
	CommandesEnCours int          `json:"commandes_en_cours"`
}

// EvolutionVente point de la courbe des ventes sur 7 jours.
type EvolutionVente struct {
	Date            string          `json:"date"`
	Ventes          decimal.Decimal `json:"ventes"`
	NombreCommandes int             `json:"nombre_commandes"`
}

// CommandeJour volume de commandes d'un jour de la semaine en cours.
type CommandeJour struct {
	Jour            string          `json:"jour"`
	Date            string          `json:"date"`
	NombreCommandes int             `json:"nombre_commandes"`
	TotalVentes     decimal.Decimal `json:"total_ventes"`
}

// TopProduit produit le plus vendu sur la période.
type TopProduit struct {
	ID             int             `json:"id"`
	Nom            string          `json:"nom"`
	Image          *string         `json:"image"`
	QuantiteVendue int             `json:"quantite_vendue"`
	TotalVentes    decimal.Decimal `json:"total_ventes"`
}

// TopEmploye employé au meilleur chiffre sur la période.
type TopEmploye struct {
	EmployeID       int             `json:"employe_id"`
	Nom             string          `json:"nom"`
	Photo           *string         `json:"photo"`
	NombreCommandes int             `json:"nombre_commandes"`
	TotalVentes     decimal.Decimal `json:"total_ventes"`
}

// TopLivreur livreur au plus grand nombre de livraisons sur la période.
type TopLivreur struct {
	LivreurID        int             `json:"livreur_id"`
	Nom              string          `json:"nom"`
	Telephone        string          `json:"telephone"`
	NombreLivraisons int             `json:"nombre_livraisons"`
	TotalLivraisons  decimal.Decimal `json:"total_livraisons"`
}

// ProduitStockFaible ligne de la liste des stocks sous seuil.
type ProduitStockFaible struct {
	ID          int             `json:"id"`
	Nom         string          `json:"nom"`
	Stock       int             `json:"stock"`
	SeuilAlerte int             `json:"seuil_alerte"`
	PrixVente   decimal.Decimal `json:"prix_vente"`
	Categorie   struct {
		ID  int    `json:"id"`
		Nom string `json:"nom"`
	} `json:"categorie"`
}
