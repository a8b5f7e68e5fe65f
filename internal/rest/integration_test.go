package rest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/internal/apitest"
	"github.com/Aboubacar04/biosen-console/internal/domain"
	"github.com/Aboubacar04/biosen-console/internal/rest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// demarrer lance le backend factice et renvoie un client non authentifié.
func demarrer(t *testing.T) (*apitest.Server, *rest.Client) {
	t.Helper()
	srv, err := apitest.Demarrer()
	require.NoError(t, err, "le backend factice doit démarrer")
	t.Cleanup(func() { _ = srv.Close() })
	return srv, rest.New(rest.Options{BaseURL: srv.URL()})
}

// connecter ouvre une session admin et branche le token sur le client.
func connecter(t *testing.T, client *rest.Client) {
	t.Helper()
	res, err := client.Auth.Login(context.Background(), apitest.EmailAdmin, apitest.MotDePasseAdmin)
	require.NoError(t, err, "le login admin doit réussir")
	token := res.Token
	client.SetTokenFunc(func() string { return token })
}

// ──────────────────────────────────────────────────────────────────────────────
// Authentification
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_IdentifiantsValides(t *testing.T) {
	_, client := demarrer(t)

	res, err := client.Auth.Login(context.Background(), apitest.EmailAdmin, apitest.MotDePasseAdmin)
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, apitest.EmailAdmin, res.User.Email)
	assert.True(t, res.User.EstAdmin())
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	_, client := demarrer(t)

	_, err := client.Auth.Login(context.Background(), apitest.EmailAdmin, "mauvais-mot-de-passe")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Identifiants invalides", rest.MessageServeur(err))
}

// Un email malformé est refusé localement, sans toucher le réseau.
func TestLogin_EmailInvalide_RefuseAvantEnvoi(t *testing.T) {
	client := rest.New(rest.Options{BaseURL: "http://127.0.0.1:1"})

	_, err := client.Auth.Login(context.Background(), "pas-un-email", "x")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Un 401 sur un appel authentifié déclenche le hook global exactement une fois.
func TestHook401_DeclencheSurTokenRevoque(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	// Logout révoque le token côté backend ; le client le garde.
	require.NoError(t, client.Auth.Logout(context.Background()))

	declenche := 0
	client.SetOnUnauthorized(func() { declenche++ })

	_, err := client.Clients.List(context.Background(), rest.ClientFilters{})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, declenche, "le hook 401 doit être appelé exactement une fois")
}

// Le login passe sans bearer : un refus d'identifiants pendant une session
// active ne doit pas démonter cette session.
func TestHook401_IgnoreLeLoginRate(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	declenche := 0
	client.SetOnUnauthorized(func() { declenche++ })

	_, err := client.Auth.Login(context.Background(), apitest.EmailAdmin, "mauvais-mot-de-passe")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, declenche, "un login raté ne concerne pas la session en cours")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listes paginées et filtres
// ──────────────────────────────────────────────────────────────────────────────

func TestClientsList_EnveloppePaginee(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	page, err := client.Clients.List(context.Background(), rest.ClientFilters{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 15, page.PerPage, "per_page par défaut du backend")
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Data, 3)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())
}

func TestClientsList_FiltreBoutique(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	page, err := client.Clients.List(context.Background(), rest.ClientFilters{BoutiqueID: 2})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "Ibrahima Sarr", page.Data[0].NomComplet)
}

// La recherche ignore accents et casse : "serigne" retrouve "Sérigne".
func TestClientsList_RechercheSansAccents(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	page, err := client.Clients.List(context.Background(), rest.ClientFilters{Search: "serigne"})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "Sérigne Mbaye", page.Data[0].NomComplet)
}

func TestClientsGet_Introuvable(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	_, err := client.Clients.Get(context.Background(), 9999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientsSearchByTelephone(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	cl, err := client.Clients.SearchByTelephone(context.Background(), "78 222 33 44")
	require.NoError(t, err)

	assert.Equal(t, "Fatou Diop", cl.NomComplet)
}

// Un 422 du backend remonte les erreurs par champ pour l'affichage en ligne.
func TestClientsCreate_TelephoneDuplique_422(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	_, err := client.Clients.Create(context.Background(), rest.CreateClientPayload{
		NomComplet: "Doublon Téléphone",
		Telephone:  "77 123 45 67", // déjà pris par Sérigne Mbaye
	})

	var vErr *rest.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotEmpty(t, vErr.PremierMessage("telephone"))
}

func TestClientsCreate_PuisDelete(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)
	ctx := context.Background()

	res, err := client.Clients.Create(ctx, rest.CreateClientPayload{
		NomComplet: "Nouveau Client",
		Telephone:  "70 000 11 22",
		BoutiqueID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Client créé avec succès", res.Message)
	assert.NotZero(t, res.Client.ID)

	sup, err := client.Clients.Delete(ctx, res.Client.ID)
	require.NoError(t, err)
	assert.Contains(t, sup.Message, "supprimé")

	_, err = client.Clients.Get(ctx, res.Client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Multipart et _method
// ──────────────────────────────────────────────────────────────────────────────

func TestProduitsCreate_MultipartAvecImage(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	prix, _ := decimal.NewFromString("1750")
	res, err := client.Produits.Create(context.Background(), rest.CreateProduitPayload{
		Nom:         "Jus de bouye",
		PrixVente:   prix,
		Stock:       0, // un stock nul reste une valeur significative
		SeuilAlerte: 3,
		CategorieID: 1,
		BoutiqueID:  1,
		ImageNom:    "bouye.jpg",
		Image:       strings.NewReader("fausse-image"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Jus de bouye", res.Produit.Nom)
	assert.Equal(t, 0, res.Produit.Stock)
	require.NotNil(t, res.Produit.Image)
	assert.Equal(t, "produits/bouye.jpg", *res.Produit.Image)
}

// La mise à jour passe en POST multipart avec _method=PUT, comme l'exige le
// backend pour les formulaires à fichier.
func TestProduitsUpdate_MethodOverride(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	prix, _ := decimal.NewFromString("1200")
	res, err := client.Produits.Update(context.Background(), 1, rest.UpdateProduitPayload{
		PrixVente: &prix,
	})
	require.NoError(t, err)

	assert.True(t, res.Produit.PrixVente.Equal(prix),
		"le prix doit être mis à jour via l'override PUT")
}

func TestProduitsStockFaible(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)

	produits, err := client.Produits.StockFaible(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, produits, 1)
	assert.Equal(t, "Thé moringa", produits[0].Nom)
	assert.True(t, produits[0].StockFaible())
}

// ──────────────────────────────────────────────────────────────────────────────
// Cycle de vie d'une commande
// ──────────────────────────────────────────────────────────────────────────────

func TestCommande_CreationPuisValidation(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)
	ctx := context.Background()

	res, err := client.Commandes.Create(ctx, rest.CreateCommandePayload{
		BoutiqueID:   1,
		EmployeID:    1,
		TypeCommande: "sur_place",
		Produits: []rest.LignePayload{
			{ProduitID: 1, Quantite: 2}, // bissap à 1000
			{ProduitID: 3, Quantite: 1}, // moringa à 2500
		},
	})
	require.NoError(t, err)

	cmd := res.Commande
	assert.Equal(t, "en_cours", cmd.Statut)
	assert.True(t, cmd.Total.Equal(decimal.NewFromInt(4500)),
		"total recalculé par le backend : 2x1000 + 1x2500")

	val, err := client.Commandes.Valider(ctx, cmd.ID)
	require.NoError(t, err)

	imp := val.Impression
	assert.True(t, strings.HasPrefix(imp.NumeroFacture, "FAC-"))
	assert.Equal(t, "Biosen Dakar Plateau", imp.Boutique.Nom)
	require.Len(t, imp.Produits, 2)
	assert.True(t, imp.Produits[0].SousTotal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, imp.Total.Equal(cmd.Total))

	// Une commande déjà validée ne peut pas l'être une seconde fois.
	_, err = client.Commandes.Valider(ctx, cmd.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommande_AnnulationExigeUneRaison(t *testing.T) {
	_, client := demarrer(t)
	connecter(t, client)
	ctx := context.Background()

	res, err := client.Commandes.Create(ctx, rest.CreateCommandePayload{
		BoutiqueID:   1,
		EmployeID:    1,
		TypeCommande: "sur_place",
		Produits:     []rest.LignePayload{{ProduitID: 2, Quantite: 1}},
	})
	require.NoError(t, err)

	_, err = client.Commandes.Annuler(ctx, res.Commande.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation, "la raison est obligatoire")

	ann, err := client.Commandes.Annuler(ctx, res.Commande.ID, "Rupture de stock")
	require.NoError(t, err)
	assert.Equal(t, "annulee", ann.Commande.Statut)
	require.NotNil(t, ann.Commande.RaisonAnnulation)
	assert.Equal(t, "Rupture de stock", *ann.Commande.RaisonAnnulation)
}
