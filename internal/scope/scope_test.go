package scope_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/internal/apitest"
	"github.com/Aboubacar04/biosen-console/internal/domain"
	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
	"github.com/Aboubacar04/biosen-console/internal/scope"
	"github.com/Aboubacar04/biosen-console/internal/session"
	"github.com/Aboubacar04/biosen-console/pkg/logger"
)

// rolesFixes implémente scope.Roles sans session réelle.
type rolesFixes struct {
	admin    bool
	boutique int
}

func (r rolesFixes) IsAdmin() bool   { return r.admin }
func (r rolesFixes) BoutiqueID() int { return r.boutique }

func boutique(id int, nom string) *entity.Boutique {
	return &entity.Boutique{ID: id, Nom: nom}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sélection et périmètre effectif
// ──────────────────────────────────────────────────────────────────────────────

func TestSelect_AdminNotifieLesAbonnes(t *testing.T) {
	b := scope.New(nil, rolesFixes{admin: true})

	var recues []*entity.Boutique
	annuler := b.Subscribe(func(sel *entity.Boutique) { recues = append(recues, sel) })
	defer annuler()

	require.NoError(t, b.Select(boutique(2, "Biosen Thiès")))
	require.NoError(t, b.Select(nil)) // retour à "toutes"

	require.Len(t, recues, 2)
	assert.Equal(t, 2, recues[0].ID)
	assert.Nil(t, recues[1])
	assert.Equal(t, 0, b.SelectedID())
}

func TestSelect_GerantRefuse(t *testing.T) {
	b := scope.New(nil, rolesFixes{admin: false, boutique: 1})

	err := b.Select(boutique(2, "Biosen Thiès"))

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, b.Selected(), "la sélection reste nulle après un refus")
}

// Le périmètre effectif d'un gérant est sa boutique, quelle que soit la
// sélection ; celui d'un admin suit sa sélection, 0 = toutes.
func TestEffectiveID(t *testing.T) {
	gerant := scope.New(nil, rolesFixes{admin: false, boutique: 4})
	assert.Equal(t, 4, gerant.EffectiveID())

	admin := scope.New(nil, rolesFixes{admin: true})
	assert.Equal(t, 0, admin.EffectiveID(), "admin sans sélection = toutes les boutiques")
	require.NoError(t, admin.Select(boutique(2, "Biosen Thiès")))
	assert.Equal(t, 2, admin.EffectiveID())
}

// comptesFixes ajoute le flux de connexion aux prédicats de rôle.
type comptesFixes struct {
	rolesFixes
	obs func(*entity.User)
}

func (c *comptesFixes) Subscribe(o func(*entity.User)) (annuler func()) {
	c.obs = o
	return func() {}
}

// La fermeture de session purge la sélection laissée par le compte précédent.
func TestNew_FermetureDeSessionPurgeLaSelection(t *testing.T) {
	comptes := &comptesFixes{rolesFixes: rolesFixes{admin: true}}
	b := scope.New(nil, comptes)
	require.NotNil(t, comptes.obs, "le broadcaster doit s'abonner au flux de comptes")

	require.NoError(t, b.Select(boutique(2, "Biosen Thiès")))
	comptes.obs(nil)

	assert.Nil(t, b.Selected())
	assert.Nil(t, b.Cached())
	assert.Equal(t, 0, b.EffectiveID())
}

func TestNew_TeardownDeLaSessionReelle(t *testing.T) {
	srv, err := apitest.Demarrer()
	require.NoError(t, err)
	defer srv.Close()

	client := rest.New(rest.Options{BaseURL: srv.URL()})
	sess := session.New(client.Auth, session.NewMemoryStore(), logger.Nop())
	client.SetTokenFunc(sess.Token)

	_, err = sess.Login(context.Background(), apitest.EmailAdmin, apitest.MotDePasseAdmin)
	require.NoError(t, err)

	b := scope.New(client.Boutiques, sess)
	require.NoError(t, b.Select(boutique(1, "Biosen Dakar Plateau")))

	sess.Teardown()

	assert.Nil(t, b.Selected(), "la sélection ne survit pas à la session")
}

func TestReset_VideSelectionEtCache(t *testing.T) {
	b := scope.New(nil, rolesFixes{admin: true})
	require.NoError(t, b.Select(boutique(1, "Biosen Dakar Plateau")))

	b.Reset()

	assert.Nil(t, b.Selected())
	assert.Nil(t, b.Cached())
}

func TestSubscribe_DesabonnementCoupeLesNotifications(t *testing.T) {
	b := scope.New(nil, rolesFixes{admin: true})

	recues := 0
	annuler := b.Subscribe(func(*entity.Boutique) { recues++ })
	annuler()

	require.NoError(t, b.Select(boutique(1, "Biosen Dakar Plateau")))
	assert.Zero(t, recues)
}

// ──────────────────────────────────────────────────────────────────────────────
// Chargement et cache
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAll_RemplitLeCache(t *testing.T) {
	srv, err := apitest.Demarrer()
	require.NoError(t, err)
	defer srv.Close()

	client := rest.New(rest.Options{BaseURL: srv.URL()})
	res, err := client.Auth.Login(context.Background(), apitest.EmailAdmin, apitest.MotDePasseAdmin)
	require.NoError(t, err)
	token := res.Token
	client.SetTokenFunc(func() string { return token })

	b := scope.New(client.Boutiques, rolesFixes{admin: true})
	assert.Nil(t, b.Cached(), "pas de cache avant le premier chargement")

	liste, err := b.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, liste, 2)
	assert.Equal(t, liste, b.Cached())
}
