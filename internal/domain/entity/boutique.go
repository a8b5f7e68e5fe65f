// Package entity définit les enregistrements du back-office Biosen tels que
// sérialisés par l'API. Les montants monétaires arrivent sous forme de chaînes
// décimales ("2500.00") et sont portés par decimal.Decimal.
package entity

import "time"

// Boutique unité de rattachement : la plupart des ressources appartiennent à
// exactement une boutique.
type Boutique struct {
	ID        int       `json:"id"`
	Nom       string    `json:"nom"`
	Adresse   string    `json:"adresse"`
	Telephone string    `json:"telephone"`
	Logo      *string   `json:"logo"` // chemin relatif, résolu contre l'URL de storage
	Actif     bool      `json:"actif"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
