package rest

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// ProduitsService endpoints /api/produits.
type ProduitsService struct {
	c *Client
}

// ProduitFilters filtres de liste.
type ProduitFilters struct {
	BoutiqueID  int   `validate:"omitempty,min=1"`
	CategorieID int   `validate:"omitempty,min=1"`
	Actif       *bool // tri-état
	Search      string
	Page        int   `validate:"omitempty,min=1"`
	PerPage     int   `validate:"omitempty,min=1,max=100"`
}

func (f ProduitFilters) query() params {
	q := newParams()
	q.setInt("boutique_id", f.BoutiqueID)
	q.setInt("categorie_id", f.CategorieID)
	q.setBool("actif", f.Actif)
	q.setStr("search", f.Search)
	q.setInt("page", f.Page)
	q.setInt("per_page", f.PerPage)
	return q
}

// ProduitResponse réponse de création/mise à jour.
type ProduitResponse struct {
	Message string         `json:"message"`
	Produit entity.Produit `json:"produit"`
}

// CreateProduitPayload création d'un produit ; Image optionnelle (multipart).
type CreateProduitPayload struct {
	Nom         string          `validate:"required"`
	Description string
	PrixVente   decimal.Decimal `validate:"required"`
	Stock       int             `validate:"min=0"`
	SeuilAlerte int             `validate:"min=0"`
	CategorieID int             `validate:"required,min=1"`
	BoutiqueID  int             `validate:"omitempty,min=1"`
	ImageNom    string
	Image       io.Reader
}

func (p CreateProduitPayload) formulaire() *Formulaire {
	f := &Formulaire{}
	f.Champ("nom", p.Nom)
	f.Champ("description", p.Description)
	f.Champ("prix_vente", p.PrixVente.String())
	// Stock et seuil à zéro sont significatifs : toujours envoyés.
	f.champs = append(f.champs,
		[2]string{"stock", fmt.Sprintf("%d", p.Stock)},
		[2]string{"seuil_alerte", fmt.Sprintf("%d", p.SeuilAlerte)},
	)
	f.ChampInt("categorie_id", p.CategorieID)
	f.ChampInt("boutique_id", p.BoutiqueID)
	f.Fichier("image", p.ImageNom, p.Image)
	return f
}

// UpdateProduitPayload mise à jour partielle.
type UpdateProduitPayload struct {
	Nom         string
	Description string
	PrixVente   *decimal.Decimal
	Stock       *int
	SeuilAlerte *int
	CategorieID int
	Actif       *bool
	ImageNom    string
	Image       io.Reader
}

// List renvoie la page de produits correspondant aux filtres.
func (s *ProduitsService) List(ctx context.Context, f ProduitFilters) (*Page[entity.Produit], error) {
	if err := s.c.valider(f); err != nil {
		return nil, err
	}
	var out Page[entity.Produit]
	if err := s.c.get(ctx, "/produits", f.query().vals(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StockFaible renvoie les produits sous leur seuil d'alerte.
func (s *ProduitsService) StockFaible(ctx context.Context, boutiqueID int) ([]entity.Produit, error) {
	q := newParams()
	q.setInt("boutique_id", boutiqueID)
	var out []entity.Produit
	if err := s.c.get(ctx, "/produits/stock-faible", q.vals(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get renvoie un produit par id.
func (s *ProduitsService) Get(ctx context.Context, id int) (*entity.Produit, error) {
	var out entity.Produit
	if err := s.c.get(ctx, fmt.Sprintf("/produits/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crée un produit (multipart à cause de l'image).
func (s *ProduitsService) Create(ctx context.Context, payload CreateProduitPayload) (*ProduitResponse, error) {
	if err := s.c.valider(payload); err != nil {
		return nil, err
	}
	var out ProduitResponse
	if err := s.c.postMultipart(ctx, "/produits", payload.formulaire(), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update modifie un produit. POST multipart + _method=PUT à cause de l'image.
func (s *ProduitsService) Update(ctx context.Context, id int, payload UpdateProduitPayload) (*ProduitResponse, error) {
	f := &Formulaire{}
	f.Champ("nom", payload.Nom)
	f.Champ("description", payload.Description)
	f.ChampDecimal("prix_vente", payload.PrixVente)
	if payload.Stock != nil {
		f.champs = append(f.champs, [2]string{"stock", fmt.Sprintf("%d", *payload.Stock)})
	}
	if payload.SeuilAlerte != nil {
		f.champs = append(f.champs, [2]string{"seuil_alerte", fmt.Sprintf("%d", *payload.SeuilAlerte)})
	}
	f.ChampInt("categorie_id", payload.CategorieID)
	f.ChampBool("actif", payload.Actif)
	f.Fichier("image", payload.ImageNom, payload.Image)
	var out ProduitResponse
	if err := s.c.postMultipart(ctx, fmt.Sprintf("/produits/%d", id), f, "PUT", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete supprime un produit.
func (s *ProduitsService) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, fmt.Sprintf("/produits/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImageURL résout l'image d'un produit contre la base de storage.
func (s *ProduitsService) ImageURL(p *entity.Produit) string {
	if p == nil {
		return ""
	}
	return s.c.StorageURL(p.Image)
}
