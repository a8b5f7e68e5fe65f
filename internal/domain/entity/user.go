package entity

import "time"

// Rôles applicatifs. Un admin voit toutes les boutiques ; un gérant est
// rattaché à la sienne.
const (
	RoleAdmin  = "admin"
	RoleGerant = "gerant"
)

// User compte utilisateur de la console.
type User struct {
	ID         int       `json:"id"`
	Nom        string    `json:"nom"`
	Email      string    `json:"email"`
	Role       string    `json:"role"` // RoleAdmin | RoleGerant
	BoutiqueID *int      `json:"boutique_id"`
	Photo      *string   `json:"photo"`
	Actif      bool      `json:"actif"`
	Boutique   *Boutique `json:"boutique,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EstAdmin indique si le compte a le rôle admin.
func (u *User) EstAdmin() bool { return u != nil && u.Role == RoleAdmin }

// EstGerant indique si le compte a le rôle gérant.
func (u *User) EstGerant() bool { return u != nil && u.Role == RoleGerant }
