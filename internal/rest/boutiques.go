package rest

import (
	"context"
	"fmt"
	"io"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// BoutiquesService endpoints /api/boutiques. Réservés à l'admin en pratique.
type BoutiquesService struct {
	c *Client
}

// BoutiqueResponse réponse de création/mise à jour.
type BoutiqueResponse struct {
	Message  string          `json:"message"`
	Boutique entity.Boutique `json:"boutique"`
}

// BoutiquePayload champs d'une boutique ; Logo optionnel (multipart).
type BoutiquePayload struct {
	Nom       string `validate:"required"`
	Adresse   string `validate:"required"`
	Telephone string `validate:"required"`
	// LogoNom et Logo décrivent le fichier joint ; les deux vont ensemble.
	LogoNom string
	Logo    io.Reader
}

func (p BoutiquePayload) formulaire() *Formulaire {
	f := &Formulaire{}
	f.Champ("nom", p.Nom)
	f.Champ("adresse", p.Adresse)
	f.Champ("telephone", p.Telephone)
	f.Fichier("logo", p.LogoNom, p.Logo)
	return f
}

// List renvoie toutes les boutiques (collection plate, non paginée).
func (s *BoutiquesService) List(ctx context.Context) ([]entity.Boutique, error) {
	var out []entity.Boutique
	if err := s.c.get(ctx, "/boutiques", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get renvoie une boutique avec ses relations ; page/perPage paginent la
// sous-liste de clients embarquée (15 par défaut côté backend).
func (s *BoutiquesService) Get(ctx context.Context, id, page, perPage int) (*entity.Boutique, error) {
	q := newParams()
	q.setInt("page", page)
	q.setInt("per_page", perPage)
	var out entity.Boutique
	if err := s.c.get(ctx, fmt.Sprintf("/boutiques/%d", id), q.vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée une boutique (multipart à cause du logo).
func (s *BoutiquesService) Create(ctx context.Context, payload BoutiquePayload) (*BoutiqueResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out BoutiqueResponse
	if err := s.c.postMultipart(ctx, "/boutiques", payload.formulaire(), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBoutiquePayload mise à jour partielle ; seuls les champs non vides
// sont envoyés.
type UpdateBoutiquePayload struct {
	Nom       string
	Adresse   string
	Telephone string
	LogoNom   string
	Logo      io.Reader
}

// Update modifie une boutique. POST multipart + _method=PUT, le backend ne
// lisant pas le multipart sur un PUT natif.
func (s *BoutiquesService) Update(ctx context.Context, id int, payload UpdateBoutiquePayload) (*BoutiqueResponse, error) {
	f := &Formulaire{}
	f.Champ("nom", payload.Nom)
	f.Champ("adresse", payload.Adresse)
	f.Champ("telephone", payload.Telephone)
	f.Fichier("logo", payload.LogoNom, payload.Logo)
	var out BoutiqueResponse
	if err := s.c.postMultipart(ctx, fmt.Sprintf("/boutiques/%d", id), f, "PUT", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime une boutique.
func (s *BoutiquesService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/boutiques/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleStatus bascule actif/inactif.
func (s *BoutiquesService) ToggleStatus(ctx context.Context, id int) (*BoutiqueResponse, error) {
	var out BoutiqueResponse
	if err := s.c.post(ctx, fmt.Sprintf("/boutiques/%d/toggle-status", id), struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LogoURL résout le logo d'une boutique contre la base de storage.
func (s *BoutiquesService) LogoURL(b *entity.Boutique) string {
	if b == nil {
		return ""
	}
	return s.c.StorageURL(b.Logo)
}
