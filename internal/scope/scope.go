// Package scope porte la boutique sélectionnée par l'admin et sa diffusion
// aux écrans. Le périmètre effectif d'un gérant reste sa boutique de
// rattachement ; la sélection ne lui est pas exposée.
package scope

import (
	"context"
	"sync"

	"github.com/Aboubacar04/biosen-console/internal/domain"
	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
)

// Observer reçoit la nouvelle sélection. nil = toutes les boutiques. Les
// abonnés doivent remettre leur pagination à la page 1 et relancer leur fetch.
type Observer func(*entity.Boutique)

// Roles prédicats de rôle nécessaires au broadcaster ; la session les
// implémente.
type Roles interface {
	IsAdmin() bool
	BoutiqueID() int
}

// Comptes flux de connexion/déconnexion ; la session l'implémente. Quand les
// rôles le fournissent aussi, la sélection est remise à zéro à la fermeture
// de session.
type Comptes interface {
	Subscribe(func(*entity.User)) (annuler func())
}

// Broadcaster valeur partagée mono-écrivain / multi-lecteurs : la boutique
// courante de l'admin, plus un cache de la liste des boutiques.
type Broadcaster struct {
	boutiques *rest.BoutiquesService
	roles     Roles

	mu        sync.RWMutex
	selection *entity.Boutique
	cache     []entity.Boutique
	observers map[int]Observer
	nextObs   int
}

// New construit le broadcaster, sélection initiale nulle ("toutes"). Si roles
// expose aussi le flux de comptes, la sélection du compte précédent est
// purgée à chaque fermeture de session.
func New(boutiques *rest.BoutiquesService, roles Roles) *Broadcaster {
	b := &Broadcaster{
		boutiques: boutiques,
		roles:     roles,
		observers: map[int]Observer{},
	}
	if comptes, ok := roles.(Comptes); ok {
		comptes.Subscribe(func(u *entity.User) {
			if u == nil {
				b.Reset()
			}
		})
	}
	return b
}

// GetAll charge la liste des boutiques et la met en cache.
func (b *Broadcaster) GetAll(ctx context.Context) ([]entity.Boutique, error) {
	liste, err := b.boutiques.List(ctx)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.cache = liste
	b.mu.Unlock()
	return liste, nil
}

// Cached renvoie la dernière liste chargée sans appel réseau.
func (b *Broadcaster) Cached() []entity.Boutique {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cache
}

// Select change la sélection et notifie les abonnés. Seul un admin peut poser
// une sélection ; pour un gérant le périmètre est fixé par son compte.
func (b *Broadcaster) Select(boutique *entity.Boutique) error {
	if !b.roles.IsAdmin() {
		return domain.ErrForbidden
	}
	b.mu.Lock()
	b.selection = boutique
	obs := make([]Observer, 0, len(b.observers))
	for _, o := range b.observers {
		obs = append(obs, o)
	}
	b.mu.Unlock()

	for _, o := range obs {
		o(boutique)
	}
	return nil
}

// Reset remet la sélection à nulle sans contrôle de rôle, pour le démontage
// de session.
func (b *Broadcaster) Reset() {
	b.mu.Lock()
	b.selection = nil
	b.cache = nil
	b.mu.Unlock()
}

// Selected renvoie la sélection courante, nil = toutes.
func (b *Broadcaster) Selected() *entity.Boutique {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selection
}

// SelectedID renvoie l'id sélectionné, 0 = toutes. Lecture one-shot pour la
// construction de payloads de création.
func (b *Broadcaster) SelectedID() int {
	if s := b.Selected(); s != nil {
		return s.ID
	}
	return 0
}

// EffectiveID renvoie le périmètre boutique effectif de l'utilisateur
// courant : sa boutique de rattachement pour un gérant, la sélection pour un
// admin (0 = toutes).
func (b *Broadcaster) EffectiveID() int {
	if b.roles.IsAdmin() {
		return b.SelectedID()
	}
	return b.roles.BoutiqueID()
}

// Subscribe enregistre un observateur et renvoie sa fonction de
// désabonnement.
func (b *Broadcaster) Subscribe(o Observer) (annuler func()) {
	b.mu.Lock()
	id := b.nextObs
	b.nextObs++
	b.observers[id] = o
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.observers, id)
		b.mu.Unlock()
	}
}
