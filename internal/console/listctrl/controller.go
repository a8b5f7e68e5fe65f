// Package listctrl factorise la machine à états commune à tous les écrans de
// liste : chargement, pagination, recherche avec debounce, re-fetch sur
// changement de boutique, messages transitoires et confirmation de
// suppression. Un compteur de génération écarte les réponses périmées quand
// les filtres changent plus vite que le réseau.
package listctrl

import (
	"context"
	"sync"
	"time"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
	"github.com/Aboubacar04/biosen-console/internal/scope"
)

// Etat états de l'écran.
type Etat int

const (
	EtatIdle Etat = iota
	EtatChargement
	EtatSucces
	EtatErreur
)

// Délais par défaut, alignés sur le front historique.
const (
	DebounceRecherche = 300 * time.Millisecond
	DureeSucces       = 3 * time.Second
	DureeErreur       = 5 * time.Second
	PerPageDefaut     = 15
)

// Requete filtres courants de l'écran, passés tels quels au fetcher.
type Requete struct {
	BoutiqueID int
	Search     string
	Statut     string
	Actif      *bool
	Date       string
	Page       int
	PerPage    int
}

// Fetcher charge une page selon la requête courante.
type Fetcher[T any] func(ctx context.Context, r Requete) (*rest.Page[T], error)

// Suppresseur supprime un enregistrement par id.
type Suppresseur func(ctx context.Context, id int) (*rest.MessageResponse, error)

// Controller contrôleur générique d'écran de liste.
type Controller[T any] struct {
	fetch    Fetcher[T]
	suppr    Suppresseur
	onChange func() // hook de re-rendu, optionnel

	// Délais, surchargés dans les tests.
	DureeSucces    time.Duration
	DureeErreur    time.Duration
	DelaiRecherche time.Duration

	mu      sync.Mutex
	ctx     context.Context
	etat    Etat
	page    *rest.Page[T]
	requete Requete
	// gen identifie le fetch le plus récent ; toute réponse portant une
	// génération antérieure est écartée.
	gen uint64

	msgSucces   string
	msgErreur   string
	timerSucces *time.Timer
	timerErreur *time.Timer
	debounce    *time.Timer

	// Sous-flux de suppression : confirmation puis soumission.
	suppressionCible   int // 0 = aucune confirmation ouverte
	suppressionEnCours bool

	desabonner func()
	ferme      bool
}

// New construit le contrôleur. suppr peut être nil pour un écran sans
// suppression ; onChange peut être nil.
func New[T any](fetch Fetcher[T], suppr Suppresseur, onChange func()) *Controller[T] {
	return &Controller[T]{
		fetch:          fetch,
		suppr:          suppr,
		onChange:       onChange,
		DureeSucces:    DureeSucces,
		DureeErreur:    DureeErreur,
		DelaiRecherche: DebounceRecherche,
		requete:        Requete{Page: 1, PerPage: PerPageDefaut},
	}
}

// AttacherScope abonne l'écran au changement de boutique : remise à la page 1
// et re-fetch, périmètre omis quand la sélection est nulle.
func (c *Controller[T]) AttacherScope(b *scope.Broadcaster) {
	c.mu.Lock()
	c.requete.BoutiqueID = b.EffectiveID()
	c.desabonner = b.Subscribe(func(sel *entity.Boutique) {
		c.mu.Lock()
		if c.ferme {
			c.mu.Unlock()
			return
		}
		c.requete.BoutiqueID = 0
		if sel != nil {
			c.requete.BoutiqueID = sel.ID
		}
		c.requete.Page = 1
		c.mu.Unlock()
		c.Recharger()
	})
	c.mu.Unlock()
}

// Demarrer lance le premier chargement.
func (c *Controller[T]) Demarrer(ctx context.Context) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()
	c.Recharger()
}

// Recharger relance le fetch avec la requête courante.
func (c *Controller[T]) Recharger() {
	c.mu.Lock()
	if c.ferme || c.ctx == nil {
		c.mu.Unlock()
		return
	}
	c.etat = EtatChargement
	c.gen++
	g := c.gen
	req := c.requete
	ctx := c.ctx
	c.mu.Unlock()
	c.notifier()

	go func() {
		page, err := c.fetch(ctx, req)

		c.mu.Lock()
		if c.ferme || g != c.gen {
			// Réponse périmée ou écran démonté : ne jamais écraser un état
			// plus frais.
			c.mu.Unlock()
			return
		}
		if err != nil {
			c.etat = EtatErreur
			c.poserErreurLocked(messageErreur(err, "Erreur lors du chargement"))
			c.mu.Unlock()
			c.notifier()
			return
		}
		c.page = page
		c.etat = EtatSucces
		c.mu.Unlock()
		c.notifier()
	}()
}

// ChangerPage passe à la page demandée et recharge.
func (c *Controller[T]) ChangerPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.requete.Page = page
	c.mu.Unlock()
	c.Recharger()
}

// Rechercher pose le texte de recherche avec debounce ; la pagination revient
// à la page 1 au déclenchement.
func (c *Controller[T]) Rechercher(texte string) {
	c.mu.Lock()
	if c.ferme {
		c.mu.Unlock()
		return
	}
	c.requete.Search = texte
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.DelaiRecherche, func() {
		c.mu.Lock()
		if c.ferme {
			c.mu.Unlock()
			return
		}
		c.requete.Page = 1
		c.mu.Unlock()
		c.Recharger()
	})
	c.mu.Unlock()
}

// ModifierFiltres applique une mutation arbitraire des filtres, remet la
// pagination à la page 1 et recharge.
func (c *Controller[T]) ModifierFiltres(mut func(*Requete)) {
	c.mu.Lock()
	mut(&c.requete)
	c.requete.Page = 1
	c.mu.Unlock()
	c.Recharger()
}

// ── Sous-flux de suppression ─────────────────────────────────────────────────

// ConfirmerSuppression ouvre la confirmation pour l'enregistrement visé.
func (c *Controller[T]) ConfirmerSuppression(id int) {
	c.mu.Lock()
	c.suppressionCible = id
	c.mu.Unlock()
	c.notifier()
}

// AnnulerSuppression referme la confirmation sans rien envoyer.
func (c *Controller[T]) AnnulerSuppression() {
	c.mu.Lock()
	c.suppressionCible = 0
	c.mu.Unlock()
	c.notifier()
}

// Supprimer envoie la suppression confirmée puis recharge la liste. Sans
// confirmation ouverte, ne fait rien : la modale précède toujours l'appel.
func (c *Controller[T]) Supprimer() {
	c.mu.Lock()
	if c.ferme || c.suppr == nil || c.suppressionCible == 0 || c.suppressionEnCours {
		c.mu.Unlock()
		return
	}
	id := c.suppressionCible
	ctx := c.ctx
	c.suppressionEnCours = true
	c.mu.Unlock()
	c.notifier()

	go func() {
		resp, err := c.suppr(ctx, id)

		c.mu.Lock()
		if c.ferme {
			c.mu.Unlock()
			return
		}
		c.suppressionEnCours = false
		if err != nil {
			c.suppressionCible = 0
			c.poserErreurLocked(messageErreur(err, "Erreur lors de la suppression"))
			c.mu.Unlock()
			c.notifier()
			return
		}
		c.suppressionCible = 0
		msg := "Suppression effectuée"
		if resp != nil && resp.Message != "" {
			msg = resp.Message
		}
		c.poserSuccesLocked(msg)
		c.mu.Unlock()
		c.notifier()
		c.Recharger()
	}()
}

// ── Messages transitoires ────────────────────────────────────────────────────

// poserSuccesLocked pose le message de succès, auto-effacé après DureeSucces.
func (c *Controller[T]) poserSuccesLocked(msg string) {
	c.msgSucces = msg
	if c.timerSucces != nil {
		c.timerSucces.Stop()
	}
	c.timerSucces = time.AfterFunc(c.DureeSucces, func() {
		c.mu.Lock()
		if c.ferme || c.msgSucces != msg {
			c.mu.Unlock()
			return
		}
		c.msgSucces = ""
		c.mu.Unlock()
		c.notifier()
	})
}

// poserErreurLocked pose le message d'erreur, auto-effacé après DureeErreur.
func (c *Controller[T]) poserErreurLocked(msg string) {
	c.msgErreur = msg
	if c.timerErreur != nil {
		c.timerErreur.Stop()
	}
	c.timerErreur = time.AfterFunc(c.DureeErreur, func() {
		c.mu.Lock()
		if c.ferme || c.msgErreur != msg {
			c.mu.Unlock()
			return
		}
		c.msgErreur = ""
		c.mu.Unlock()
		c.notifier()
	})
}

// ── Lectures ─────────────────────────────────────────────────────────────────

// Etat renvoie l'état courant de l'écran.
func (c *Controller[T]) Etat() Etat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.etat
}

// Donnees renvoie les enregistrements de la page courante.
func (c *Controller[T]) Donnees() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page == nil {
		return nil
	}
	return c.page.Data
}

// Pagination renvoie l'enveloppe de la page courante, nil avant le premier
// succès.
func (c *Controller[T]) Pagination() *rest.Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Filtres renvoie une copie de la requête courante.
func (c *Controller[T]) Filtres() Requete {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requete
}

// MessageSucces renvoie la bannière de succès courante, vide sinon.
func (c *Controller[T]) MessageSucces() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.msgSucces
}

// MessageErreur renvoie la bannière d'erreur courante, vide sinon.
func (c *Controller[T]) MessageErreur() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.msgErreur
}

// SuppressionCible renvoie l'id en attente de confirmation, 0 sinon.
func (c *Controller[T]) SuppressionCible() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suppressionCible
}

// SuppressionEnCours indique si une suppression est en vol.
func (c *Controller[T]) SuppressionEnCours() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suppressionEnCours
}

// Close démonte l'écran : désabonnement du scope, arrêt des timers. Les
// réponses arrivant ensuite ne mutent plus rien et les messages ne
// ressuscitent pas.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	if c.ferme {
		c.mu.Unlock()
		return
	}
	c.ferme = true
	for _, t := range []*time.Timer{c.timerSucces, c.timerErreur, c.debounce} {
		if t != nil {
			t.Stop()
		}
	}
	desabonner := c.desabonner
	c.mu.Unlock()

	if desabonner != nil {
		desabonner()
	}
}

func (c *Controller[T]) notifier() {
	if c.onChange != nil {
		c.onChange()
	}
}

// messageErreur préfère le message serveur quand il existe.
func messageErreur(err error, defaut string) string {
	if msg := rest.MessageServeur(err); msg != "" {
		return msg
	}
	return defaut
}
