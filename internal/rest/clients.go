package rest

import (
	"context"
	"fmt"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// ClientsService endpoints /api/clients.
type ClientsService struct {
	c *Client
}

// ClientFilters filtres de liste. Les champs à zéro ne sont pas envoyés.
type ClientFilters struct {
	BoutiqueID int    `validate:"omitempty,min=1"`
	Search     string `validate:"omitempty,max=255"`
	Page       int    `validate:"omitempty,min=1"`
	PerPage    int    `validate:"omitempty,min=1,max=100"`
}

func (f ClientFilters) query() params {
	q := newParams()
	q.setInt("boutique_id", f.BoutiqueID)
	q.setStr("search", f.Search)
	q.setInt("page", f.Page)
	q.setInt("per_page", f.PerPage)
	return q
}

// ClientResponse réponse de création/mise à jour.
type ClientResponse struct {
	Message string        `json:"message"`
	Client  entity.Client `json:"client"`
}

// CreateClientPayload création d'un client. BoutiqueID requis pour un admin
// hors sélection ; le backend le déduit du compte pour un gérant.
type CreateClientPayload struct {
	NomComplet string `json:"nom_complet" validate:"required"`
	Telephone  string `json:"telephone" validate:"required"`
	Adresse    string `json:"adresse,omitempty"`
	BoutiqueID int    `json:"boutique_id,omitempty" validate:"omitempty,min=1"`
}

// UpdateClientPayload mise à jour partielle.
type UpdateClientPayload struct {
	NomComplet string `json:"nom_complet,omitempty"`
	Telephone  string `json:"telephone,omitempty"`
	Adresse    string `json:"adresse,omitempty"`
}

// List renvoie la page de clients correspondant aux filtres.
func (s *ClientsService) List(ctx context.Context, f ClientFilters) (*Page[entity.Client], error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Client]
	if err := s.c.get(ctx, "/clients", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Autocomplete recherche rapide pour les champs de saisie (création de
// commande notamment).
func (s *ClientsService) Autocomplete(ctx context.Context, q string, boutiqueID int) ([]entity.Client, error) {
	p := newParams()
	p.setStr("q", q)
	p.setInt("boutique_id", boutiqueID)
	var out []entity.Client
	if err := s.c.get(ctx, "/clients/autocomplete", p.vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByTelephone retrouve un client par numéro exact.
func (s *ClientsService) SearchByTelephone(ctx context.Context, telephone string) (*entity.Client, error) {
	p := newParams()
	p.setStr("telephone", telephone)
	var out entity.Client
	if err := s.c.get(ctx, "/clients/recherche-telephone", p.vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get renvoie un client par id.
func (s *ClientsService) Get(ctx context.Context, id int) (*entity.Client, error) {
	var out entity.Client
	if err := s.c.get(ctx, fmt.Sprintf("/clients/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée un client.
func (s *ClientsService) Create(ctx context.Context, payload CreateClientPayload) (*ClientResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out ClientResponse
	if err := s.c.post(ctx, "/clients", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie un client.
func (s *ClientsService) Update(ctx context.Context, id int, payload UpdateClientPayload) (*ClientResponse, error) {
	var out ClientResponse
	if err := s.c.put(ctx, fmt.Sprintf("/clients/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime un client.
func (s *ClientsService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/clients/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
