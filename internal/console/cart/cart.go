// Package cart implémente le panier de création de commande. État transitoire
// d'écran : le total affiché n'est qu'un aperçu, le backend recalcule et
// impose le montant à la soumission.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
)

// Ligne ligne du panier : sous-total = quantité × prix de vente.
type Ligne struct {
	Produit   entity.Produit
	Quantite  int
	SousTotal decimal.Decimal
}

// Panier panier en mémoire indexé par id de produit. L'ordre d'insertion des
// lignes est conservé pour l'affichage.
type Panier struct {
	mu     sync.Mutex
	ordre  []int
	lignes map[int]*Ligne
}

// New construit un panier vide.
func New() *Panier {
	return &Panier{lignes: map[int]*Ligne{}}
}

// Ajouter ajoute le produit ; s'il est déjà au panier, incrémente sa quantité
// au lieu de créer une seconde ligne.
func (p *Panier) Ajouter(produit entity.Produit) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.lignes[produit.ID]; ok {
		l.Quantite++
		l.SousTotal = produit.PrixVente.Mul(decimal.NewFromInt(int64(l.Quantite)))
		return
	}
	p.lignes[produit.ID] = &Ligne{
		Produit:   produit,
		Quantite:  1,
		SousTotal: produit.PrixVente,
	}
	p.ordre = append(p.ordre, produit.ID)
}

// Incrementer ajuste la quantité d'une ligne de delta (négatif pour
// décrémenter). Une quantité retombée à zéro retire la ligne.
func (p *Panier) Incrementer(produitID, delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.lignes[produitID]
	if !ok {
		return
	}
	l.Quantite += delta
	if l.Quantite <= 0 {
		p.retirer(produitID)
		return
	}
	l.SousTotal = l.Produit.PrixVente.Mul(decimal.NewFromInt(int64(l.Quantite)))
}

// Retirer supprime la ligne du produit.
func (p *Panier) Retirer(produitID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.retirer(produitID)
}

func (p *Panier) retirer(produitID int) {
	if _, ok := p.lignes[produitID]; !ok {
		return
	}
	delete(p.lignes, produitID)
	for i, id := range p.ordre {
		if id == produitID {
			p.ordre = append(p.ordre[:i], p.ordre[i+1:]...)
			break
		}
	}
}

// Vider remet le panier à zéro.
func (p *Panier) Vider() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ordre = nil
	p.lignes = map[int]*Ligne{}
}

// Lignes renvoie une copie des lignes dans l'ordre d'insertion.
func (p *Panier) Lignes() []Ligne {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Ligne, 0, len(p.ordre))
	for _, id := range p.ordre {
		out = append(out, *p.lignes[id])
	}
	return out
}

// Taille renvoie le nombre de lignes.
func (p *Panier) Taille() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ordre)
}

// EstVide indique si le panier ne contient aucune ligne.
func (p *Panier) EstVide() bool { return p.Taille() == 0 }

// Total renvoie la somme des sous-totaux.
func (p *Panier) Total() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := decimal.Zero
	for _, id := range p.ordre {
		total = total.Add(p.lignes[id].SousTotal)
	}
	return total
}

// Payload construit les lignes de la soumission : exactement produit_id et
// quantité, jamais le total calculé ici.
func (p *Panier) Payload() []rest.LignePayload {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]rest.LignePayload, 0, len(p.ordre))
	for _, id := range p.ordre {
		l := p.lignes[id]
		out = append(out, rest.LignePayload{ProduitID: l.Produit.ID, Quantite: l.Quantite})
	}
	return out
}
