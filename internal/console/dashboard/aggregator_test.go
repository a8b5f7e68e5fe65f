package dashboard_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/internal/apitest"
	"github.com/Aboubacar04/biosen-console/internal/console/dashboard"
	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
	"github.com/Aboubacar04/biosen-console/internal/session"
	"github.com/Aboubacar04/biosen-console/pkg/logger"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func courbe(ventes ...int64) []entity.EvolutionVente {
	out := make([]entity.EvolutionVente, len(ventes))
	for i, v := range ventes {
		out[i] = entity.EvolutionVente{
			Date:            "2025-03-0" + string(rune('1'+i)),
			Ventes:          dec(v),
			NombreCommandes: 1,
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Synthèse 7 jours
// ──────────────────────────────────────────────────────────────────────────────

func TestSynthetiser_TotauxEtPanierMoyen(t *testing.T) {
	points := []entity.EvolutionVente{
		{Date: "2025-03-01", Ventes: dec(1000), NombreCommandes: 2},
		{Date: "2025-03-02", Ventes: dec(0), NombreCommandes: 0},
		{Date: "2025-03-03", Ventes: dec(3000), NombreCommandes: 2},
	}

	s := dashboard.Synthetiser(points)

	assert.True(t, s.TotalVentes.Equal(dec(4000)), "total des ventes sur la période")
	assert.Equal(t, 4, s.TotalCommandes)
	assert.True(t, s.PanierMoyen.Equal(dec(1000)), "panier moyen = ventes / commandes")
	assert.Equal(t, 2, s.JoursActifs, "le jour sans vente ni commande ne compte pas")
	require.NotNil(t, s.MeilleurJour)
	assert.Equal(t, "2025-03-03", s.MeilleurJour.Date)
}

func TestSynthetiser_SansCommandes_PanierMoyenZero(t *testing.T) {
	s := dashboard.Synthetiser(nil)
	assert.True(t, s.PanierMoyen.IsZero())
	assert.Nil(t, s.MeilleurJour)
	assert.Equal(t, dashboard.TendanceStable, s.Tendance)
}

// La tendance compare les 3 derniers jours aux 3 premiers, jours sans vente
// exclus, avec une zone morte de ±5 % : une variation de bruit reste "stable".
func TestSynthetiser_Tendance(t *testing.T) {
	cas := []struct {
		nom     string
		ventes  []int64
		attendu string
	}{
		{"hausse franche", []int64{1000, 1000, 1000, 1000, 2000, 2000, 2000}, dashboard.TendanceHausse},
		{"baisse franche", []int64{2000, 2000, 2000, 2000, 1000, 1000, 1000}, dashboard.TendanceBaisse},
		{"bruit sous 5 pourcent", []int64{1000, 1000, 1000, 1000, 1020, 1020, 1020}, dashboard.TendanceStable},
		{"jours sans vente exclus des fenetres", []int64{900, 900, 900, 0, 0, 1000}, dashboard.TendanceHausse},
		{"fenetre ancienne vide", []int64{0, 0, 0, 0, 500, 500, 500}, dashboard.TendanceStable},
		{"quatre points suffisent", []int64{1000, 1000, 1000, 2000}, dashboard.TendanceHausse},
		{"point unique", []int64{1000}, dashboard.TendanceStable},
		{"plat", []int64{0, 0, 0, 0, 0, 0, 0}, dashboard.TendanceStable},
	}
	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			s := dashboard.Synthetiser(courbe(c.ventes...))
			assert.Equal(t, c.attendu, s.Tendance)
		})
	}
}

func TestSynthetiserSemaine(t *testing.T) {
	jours := []entity.CommandeJour{
		{Jour: "Lundi", NombreCommandes: 3, TotalVentes: dec(3000)},
		{Jour: "Mardi", NombreCommandes: 1, TotalVentes: dec(5000)},
	}

	s := dashboard.SynthetiserSemaine(jours)

	assert.Equal(t, 4, s.TotalCommandes)
	assert.True(t, s.TotalVentes.Equal(dec(8000)))
	assert.True(t, s.MoyenneVentes.Equal(dec(4000)))
	require.NotNil(t, s.JourLePlusFort)
	assert.Equal(t, "Mardi", s.JourLePlusFort.Jour)
}

// ──────────────────────────────────────────────────────────────────────────────
// Chargement en deux vagues : dégradation partielle
// ──────────────────────────────────────────────────────────────────────────────

// Le backend factice ne sert que /dashboard/stats : les autres sections
// doivent échouer individuellement sans empêcher les stats d'arriver.
func TestCharger_SectionEnEchec_NBloquePasLesAutres(t *testing.T) {
	srv, err := apitest.Demarrer()
	require.NoError(t, err)
	defer srv.Close()

	log := logger.Nop()
	client := rest.New(rest.Options{BaseURL: srv.URL()})
	sess := session.New(client.Auth, session.NewMemoryStore(), log)
	client.SetTokenFunc(sess.Token)
	_, err = sess.Login(context.Background(), apitest.EmailAdmin, apitest.MotDePasseAdmin)
	require.NoError(t, err)

	agg := dashboard.New(client.Dashboard, log)
	d := agg.Charger(context.Background(), 0)

	require.NotNil(t, d.Stats, "les stats doivent arriver malgré les sections en échec")
	assert.False(t, d.Complet())
	assert.Contains(t, d.Erreurs, dashboard.SectionEvolution)
	assert.Contains(t, d.Erreurs, dashboard.SectionTopProduits)
	assert.NotContains(t, d.Erreurs, dashboard.SectionStats)
}
