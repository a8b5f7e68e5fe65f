package listctrl_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/internal/console/listctrl"
	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
	"github.com/Aboubacar04/biosen-console/internal/scope"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	attente = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func pageAvec(items ...string) *rest.Page[string] {
	return &rest.Page[string]{
		CurrentPage: 1,
		Data:        items,
		LastPage:    1,
		PerPage:     listctrl.PerPageDefaut,
		Total:       len(items),
	}
}

// journalFetch enregistre les requêtes reçues par le fetcher.
type journalFetch struct {
	mu      sync.Mutex
	appels  []listctrl.Requete
	reponse *rest.Page[string]
	erreur  error
}

func (j *journalFetch) fetch(_ context.Context, r listctrl.Requete) (*rest.Page[string], error) {
	j.mu.Lock()
	j.appels = append(j.appels, r)
	page, erreur := j.reponse, j.erreur
	j.mu.Unlock()
	return page, erreur
}

func (j *journalFetch) nbAppels() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.appels)
}

func (j *journalFetch) dernier() listctrl.Requete {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.appels[len(j.appels)-1]
}

type rolesAdmin struct{}

func (rolesAdmin) IsAdmin() bool   { return true }
func (rolesAdmin) BoutiqueID() int { return 0 }

// ──────────────────────────────────────────────────────────────────────────────
// Chargement et états
// ──────────────────────────────────────────────────────────────────────────────

func TestController_ChargementInitial(t *testing.T) {
	j := &journalFetch{reponse: pageAvec("Jus de bissap", "Thé moringa")}
	c := listctrl.New[string](j.fetch, nil, nil)
	defer c.Close()

	c.Demarrer(context.Background())

	require.Eventually(t, func() bool { return c.Etat() == listctrl.EtatSucces },
		attente, tick, "le premier fetch doit aboutir à l'état succès")
	assert.Equal(t, []string{"Jus de bissap", "Thé moringa"}, c.Donnees())
	assert.Equal(t, 1, c.Filtres().Page)
}

func TestController_ErreurDeFetch(t *testing.T) {
	j := &journalFetch{erreur: errors.New("panne réseau")}
	c := listctrl.New[string](j.fetch, nil, nil)
	c.DureeErreur = time.Hour // pas d'auto-effacement pendant l'assertion
	defer c.Close()

	c.Demarrer(context.Background())

	require.Eventually(t, func() bool { return c.Etat() == listctrl.EtatErreur },
		attente, tick)
	assert.NotEmpty(t, c.MessageErreur())
	assert.Nil(t, c.Donnees())
}

// Une réponse d'une génération dépassée ne doit jamais écraser la réponse du
// fetch le plus récent.
func TestController_ReponsePerimeeEcartee(t *testing.T) {
	var ordre int32
	commence := make(chan struct{})
	debloquer := make(chan struct{})
	fetch := func(_ context.Context, _ listctrl.Requete) (*rest.Page[string], error) {
		if atomic.AddInt32(&ordre, 1) == 1 {
			close(commence)
			<-debloquer // le premier fetch traîne sur le réseau
			return pageAvec("réponse lente et périmée"), nil
		}
		return pageAvec("réponse fraîche"), nil
	}
	c := listctrl.New[string](fetch, nil, nil)
	defer c.Close()

	c.Demarrer(context.Background())
	<-commence
	c.Recharger()

	require.Eventually(t, func() bool { return c.Etat() == listctrl.EtatSucces },
		attente, tick)
	require.Equal(t, []string{"réponse fraîche"}, c.Donnees())

	close(debloquer)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, []string{"réponse fraîche"}, c.Donnees(),
		"la réponse lente ne doit pas ressusciter")
	assert.Equal(t, listctrl.EtatSucces, c.Etat())
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtres, recherche, changement de boutique
// ──────────────────────────────────────────────────────────────────────────────

func TestController_ChangerFiltresRemetALaPremierePage(t *testing.T) {
	j := &journalFetch{reponse: pageAvec("x")}
	c := listctrl.New[string](j.fetch, nil, nil)
	defer c.Close()

	c.Demarrer(context.Background())
	require.Eventually(t, func() bool { return j.nbAppels() == 1 }, attente, tick)

	c.ChangerPage(3)
	require.Eventually(t, func() bool { return j.nbAppels() >= 2 }, attente, tick)
	require.Equal(t, 3, j.dernier().Page)

	c.ModifierFiltres(func(r *listctrl.Requete) { r.Statut = "validee" })

	require.Eventually(t, func() bool { return j.nbAppels() >= 3 }, attente, tick)
	assert.Equal(t, 1, j.dernier().Page, "un nouveau filtre repart de la page 1")
	assert.Equal(t, "validee", j.dernier().Statut)
}

// Les frappes rapprochées ne déclenchent qu'un seul fetch, avec le texte
// final.
func TestController_RechercheDebounce(t *testing.T) {
	j := &journalFetch{reponse: pageAvec("x")}
	c := listctrl.New[string](j.fetch, nil, nil)
	c.DelaiRecherche = 30 * time.Millisecond
	defer c.Close()

	c.Demarrer(context.Background())
	require.Eventually(t, func() bool { return j.nbAppels() == 1 }, attente, tick)

	c.Rechercher("b")
	c.Rechercher("bi")
	c.Rechercher("bissap")

	require.Eventually(t, func() bool { return j.nbAppels() == 2 }, attente, tick,
		"les frappes intermédiaires ne doivent pas partir sur le réseau")
	assert.Equal(t, "bissap", j.dernier().Search)
	assert.Equal(t, 1, j.dernier().Page)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 2, j.nbAppels(), "pas de fetch fantôme après le debounce")
}

func TestController_ChangementDeBoutiqueRelanceEnPageUn(t *testing.T) {
	j := &journalFetch{reponse: pageAvec("x")}
	c := listctrl.New[string](j.fetch, nil, nil)
	defer c.Close()

	portee := scope.New(nil, rolesAdmin{})
	c.AttacherScope(portee)
	c.Demarrer(context.Background())
	require.Eventually(t, func() bool { return j.nbAppels() == 1 }, attente, tick)

	c.ChangerPage(2)
	require.Eventually(t, func() bool { return j.nbAppels() >= 2 }, attente, tick)

	require.NoError(t, portee.Select(&entity.Boutique{ID: 2, Nom: "Biosen Thiès"}))

	require.Eventually(t, func() bool {
		return j.nbAppels() >= 3 && j.dernier().BoutiqueID == 2
	}, attente, tick)
	assert.Equal(t, 1, j.dernier().Page)

	require.NoError(t, portee.Select(nil))
	require.Eventually(t, func() bool {
		return j.dernier().BoutiqueID == 0
	}, attente, tick, "sélection nulle = périmètre toutes boutiques")
}

// ──────────────────────────────────────────────────────────────────────────────
// Suppression et messages transitoires
// ──────────────────────────────────────────────────────────────────────────────

func TestController_SuppressionConfirmeePuisRechargement(t *testing.T) {
	j := &journalFetch{reponse: pageAvec("x")}
	var supprime int32
	suppr := func(_ context.Context, id int) (*rest.MessageResponse, error) {
		atomic.StoreInt32(&supprime, int32(id))
		return &rest.MessageResponse{Message: "Client supprimé avec succès"}, nil
	}
	c := listctrl.New[string](j.fetch, suppr, nil)
	c.DureeSucces = time.Hour
	defer c.Close()

	c.Demarrer(context.Background())
	require.Eventually(t, func() bool { return j.nbAppels() == 1 }, attente, tick)

	c.ConfirmerSuppression(5)
	require.Equal(t, 5, c.SuppressionCible())
	c.Supprimer()

	require.Eventually(t, func() bool { return c.MessageSucces() != "" }, attente, tick)
	assert.Equal(t, int32(5), atomic.LoadInt32(&supprime))
	assert.Equal(t, "Client supprimé avec succès", c.MessageSucces())
	assert.Zero(t, c.SuppressionCible(), "la confirmation se referme après l'envoi")
	require.Eventually(t, func() bool { return j.nbAppels() >= 2 }, attente, tick,
		"la liste se recharge après la suppression")
}

func TestController_SupprimerSansConfirmationNeFaitRien(t *testing.T) {
	j := &journalFetch{reponse: pageAvec("x")}
	appels := int32(0)
	suppr := func(context.Context, int) (*rest.MessageResponse, error) {
		atomic.AddInt32(&appels, 1)
		return nil, nil
	}
	c := listctrl.New[string](j.fetch, suppr, nil)
	defer c.Close()
	c.Demarrer(context.Background())

	c.Supprimer()
	c.ConfirmerSuppression(3)
	c.AnnulerSuppression()
	c.Supprimer()

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&appels), "sans confirmation ouverte, rien ne part")
}

func TestController_MessagesAutoEffaces(t *testing.T) {
	j := &journalFetch{reponse: pageAvec("x")}
	suppr := func(context.Context, int) (*rest.MessageResponse, error) {
		return &rest.MessageResponse{Message: "Fait"}, nil
	}
	c := listctrl.New[string](j.fetch, suppr, nil)
	c.DureeSucces = 40 * time.Millisecond
	defer c.Close()

	c.Demarrer(context.Background())
	c.ConfirmerSuppression(1)
	c.Supprimer()

	require.Eventually(t, func() bool { return c.MessageSucces() == "Fait" }, attente, tick)
	require.Eventually(t, func() bool { return c.MessageSucces() == "" }, attente, tick,
		"le message de succès doit s'effacer tout seul")
}

// ──────────────────────────────────────────────────────────────────────────────
// Démontage
// ──────────────────────────────────────────────────────────────────────────────

// Après Close, ni les réponses tardives ni les timers ne mutent l'écran.
func TestController_CloseStoppeTout(t *testing.T) {
	debloquer := make(chan struct{})
	fetch := func(_ context.Context, _ listctrl.Requete) (*rest.Page[string], error) {
		<-debloquer
		return pageAvec("trop tard"), nil
	}
	c := listctrl.New[string](fetch, nil, nil)

	portee := scope.New(nil, rolesAdmin{})
	c.AttacherScope(portee)
	c.Demarrer(context.Background())
	c.Close()

	close(debloquer)
	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, c.Donnees(), "une réponse arrivée après Close est ignorée")

	// Le scope ne doit plus toucher un écran démonté.
	require.NoError(t, portee.Select(&entity.Boutique{ID: 2}))
	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, c.Donnees())
}
