package entity

import "time"

// Client client final d'une boutique.
type Client struct {
	ID             int       `json:"id"`
	NomComplet     string    `json:"nom_complet"`
	Telephone      string    `json:"telephone"`
	Adresse        string    `json:"adresse"`
	BoutiqueID     int       `json:"boutique_id"`
	CommandesCount *int      `json:"commandes_count,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
