package entity

import "time"

// Employe vendeur rattaché à une boutique.
type Employe struct {
	ID         int       `json:"id"`
	Nom        string    `json:"nom"`
	Telephone  string    `json:"telephone"`
	Photo      *string   `json:"photo"`
	BoutiqueID int       `json:"boutique_id"`
	Actif      bool      `json:"actif"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Livreur coursier rattaché à une boutique. Disponible passe à faux le temps
// d'une livraison en cours.
type Livreur struct {
	ID         int       `json:"id"`
	Nom        string    `json:"nom"`
	Telephone  string    `json:"telephone"`
	Disponible bool      `json:"disponible"`
	BoutiqueID int       `json:"boutique_id"`
	Actif      bool      `json:"actif"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
