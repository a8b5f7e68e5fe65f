package rest

import (
	"context"
	"fmt"
	"io"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// EmployesService endpoints /api/employes.
type EmployesService struct {
	c *Client
}

// EmployeFilters filtres de liste.
type EmployeFilters struct {
	BoutiqueID int    `validate:"omitempty,min=1"`
	Actif      *bool  // tri-état : nil = tous
	Search     string `validate:"omitempty,max=255"`
	Page       int    `validate:"omitempty,min=1"`
	PerPage    int    `validate:"omitempty,min=1,max=100"`
}

func (f EmployeFilters) query() params {
	q := newParams()
	q.setInt("boutique_id", f.BoutiqueID)
	q.setBool("actif", f.Actif)
	q.setStr("search", f.Search)
	q.setInt("page", f.Page)
	q.setInt("per_page", f.PerPage)
	return q
}

// EmployeResponse réponse de création/mise à jour.
type EmployeResponse struct {
	Message string         `json:"message"`
	Employe entity.Employe `json:"employe"`
}

// EmployePayload champs d'un employé ; Photo optionnelle (multipart).
type EmployePayload struct {
	Nom        string `validate:"required"`
	Telephone  string `validate:"required"`
	BoutiqueID int    `validate:"omitempty,min=1"`
	PhotoNom   string
	Photo      io.Reader
}

func (p EmployePayload) formulaire() *Formulaire {
	f := &Formulaire{}
	f.Champ("nom", p.Nom)
	f.Champ("telephone", p.Telephone)
	f.ChampInt("boutique_id", p.BoutiqueID)
	f.Fichier("photo", p.PhotoNom, p.Photo)
	return f
}

// UpdateEmployePayload mise à jour partielle ; Actif tri-état.
type UpdateEmployePayload struct {
	Nom       string
	Telephone string
	Actif     *bool
	PhotoNom  string
	Photo     io.Reader
}

// List renvoie la page d'employés correspondant aux filtres.
func (s *EmployesService) List(ctx context.Context, f EmployeFilters) (*Page[entity.Employe], error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Employe]
	if err := s.c.get(ctx, "/employes", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get renvoie un employé par id.
func (s *EmployesService) Get(ctx context.Context, id int) (*entity.Employe, error) {
	var out entity.Employe
	if err := s.c.get(ctx, fmt.Sprintf("/employes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée un employé (multipart à cause de la photo).
func (s *EmployesService) Create(ctx context.Context, payload EmployePayload) (*EmployeResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out EmployeResponse
	if err := s.c.postMultipart(ctx, "/employes", payload.formulaire(), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie un employé. POST multipart + _method à cause de la photo.
func (s *EmployesService) Update(ctx context.Context, id int, payload UpdateEmployePayload) (*EmployeResponse, error) {
	f := &Formulaire{}
	f.Champ("nom", payload.Nom)
	f.Champ("telephone", payload.Telephone)
	f.ChampBool("actif", payload.Actif)
	f.Fichier("photo", payload.PhotoNom, payload.Photo)
	var out EmployeResponse
	if err := s.c.postMultipart(ctx, fmt.Sprintf("/employes/%d", id), f, "PUT", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime un employé.
func (s *EmployesService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/employes/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PhotoURL résout la photo d'un employé contre la base de storage.
func (s *EmployesService) PhotoURL(e *entity.Employe) string {
	if e == nil {
		return ""
	}
	return s.c.StorageURL(e.Photo)
}
