// Package dashboard agrège les sept sections du tableau de bord en deux
// vagues parallèles et calcule les chiffres dérivés (synthèse 7 jours,
// tendance, moyennes hebdomadaires). Une section en échec ne bloque pas les
// autres : l'écran se dégrade partiellement.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
	"github.com/Aboubacar04/biosen-console/pkg/logger"
)

// Section identifie une zone du tableau de bord.
type Section string

const (
	SectionStats       Section = "stats"
	SectionEvolution   Section = "evolution"
	SectionSemaine     Section = "semaine"
	SectionTopProduits Section = "top_produits"
	SectionTopEmployes Section = "top_employes"
	SectionTopLivreurs Section = "top_livreurs"
	SectionStockFaible Section = "stock_faible"
)

// Tendance de la courbe des ventes sur 7 jours.
const (
	TendanceHausse = "hausse"
	TendanceBaisse = "baisse"
	TendanceStable = "stable"
)

// Valeurs par défaut des classements.
const (
	PeriodeDefaut = rest.PeriodeMois
	LimiteDefaut  = 5
)

// Donnees résultat complet d'un chargement. Une section absente de Erreurs a
// été chargée avec succès.
type Donnees struct {
	Stats       *entity.DashboardStats
	Evolution   []entity.EvolutionVente
	Semaine     []entity.CommandeJour
	TopProduits []entity.TopProduit
	TopEmployes []entity.TopEmploye
	TopLivreurs []entity.TopLivreur
	StockFaible []entity.ProduitStockFaible

	Erreurs map[Section]error
}

// Complet indique que toutes les sections ont répondu.
func (d *Donnees) Complet() bool {
	return len(d.Erreurs) == 0
}

// Agregateur charge le tableau de bord pour la boutique courante.
type Agregateur struct {
	svc     *rest.DashboardService
	log     *logger.Logger
	Periode string // période des classements
	Limite  int    // taille des classements
}

// New construit l'agrégateur avec la période et la limite par défaut.
func New(svc *rest.DashboardService, log *logger.Logger) *Agregateur {
	return &Agregateur{
		svc:     svc,
		log:     log,
		Periode: PeriodeDefaut,
		Limite:  LimiteDefaut,
	}
}

type resultat struct {
	section Section
	err     error
}

// Charger exécute les deux vagues : d'abord les chiffres de tête et les deux
// courbes, puis les classements et le stock faible. boutiqueID 0 = toutes
// les boutiques.
func (a *Agregateur) Charger(ctx context.Context, boutiqueID int) *Donnees {
	d := &Donnees{Erreurs: make(map[Section]error)}

	// Vague 1 : stats + évolution + commandes de la semaine.
	vague1 := make(chan resultat, 3)
	go func() {
		var err error
		d.Stats, err = a.svc.Stats(ctx, boutiqueID)
		vague1 <- resultat{SectionStats, err}
	}()
	go func() {
		var err error
		d.Evolution, err = a.svc.EvolutionVentes(ctx, boutiqueID)
		vague1 <- resultat{SectionEvolution, err}
	}()
	go func() {
		var err error
		d.Semaine, err = a.svc.CommandesSemaine(ctx, boutiqueID)
		vague1 <- resultat{SectionSemaine, err}
	}()
	a.collecter(d, vague1, 3)

	// Vague 2 : classements + stock faible, lancée une fois la première
	// vague rendue pour afficher les chiffres de tête au plus tôt.
	vague2 := make(chan resultat, 4)
	go func() {
		var err error
		d.TopProduits, err = a.svc.TopProduits(ctx, a.Periode, a.Limite, boutiqueID)
		vague2 <- resultat{SectionTopProduits, err}
	}()
	go func() {
		var err error
		d.TopEmployes, err = a.svc.TopEmployes(ctx, a.Periode, a.Limite, boutiqueID)
		vague2 <- resultat{SectionTopEmployes, err}
	}()
	go func() {
		var err error
		d.TopLivreurs, err = a.svc.TopLivreurs(ctx, a.Periode, a.Limite, boutiqueID)
		vague2 <- resultat{SectionTopLivreurs, err}
	}()
	go func() {
		var err error
		d.StockFaible, err = a.svc.StockFaible(ctx, boutiqueID)
		vague2 <- resultat{SectionStockFaible, err}
	}()
	a.collecter(d, vague2, 4)

	return d
}

func (a *Agregateur) collecter(d *Donnees, ch chan resultat, n int) {
	for i := 0; i < n; i++ {
		r := <-ch
		if r.err != nil {
			d.Erreurs[r.section] = r.err
			a.log.Warn().
				Str("section", string(r.section)).
				Err(r.err).
				Msg("section du tableau de bord en échec")
		}
	}
}

// ── Chiffres dérivés ─────────────────────────────────────────────────────────

// Synthese chiffres dérivés de la courbe des 7 derniers jours.
type Synthese struct {
	TotalVentes    decimal.Decimal
	TotalCommandes int
	PanierMoyen    decimal.Decimal
	MeilleurJour   *entity.EvolutionVente
	JoursActifs    int
	Tendance       string
}

// Seuils de la zone morte de tendance : ±5 % autour de la moyenne initiale.
var (
	seuilHausse = decimal.NewFromFloat(1.05)
	seuilBaisse = decimal.NewFromFloat(0.95)
)

// Synthetiser calcule la synthèse 7 jours à partir de la courbe d'évolution.
func Synthetiser(points []entity.EvolutionVente) Synthese {
	s := Synthese{Tendance: TendanceStable}
	for i := range points {
		p := &points[i]
		s.TotalVentes = s.TotalVentes.Add(p.Ventes)
		s.TotalCommandes += p.NombreCommandes
		if p.Ventes.IsPositive() || p.NombreCommandes > 0 {
			s.JoursActifs++
		}
		if s.MeilleurJour == nil || p.Ventes.GreaterThan(s.MeilleurJour.Ventes) {
			s.MeilleurJour = p
		}
	}
	if s.TotalCommandes > 0 {
		s.PanierMoyen = s.TotalVentes.
			Div(decimal.NewFromInt(int64(s.TotalCommandes))).
			Round(2)
	}
	s.Tendance = tendance(points)
	return s
}

// tendance compare la moyenne des 3 derniers jours à celle des 3 premiers,
// jours sans vente exclus des deux fenêtres, avec une zone morte de ±5 %
// pour éviter de qualifier le bruit. Stable dès qu'une fenêtre est vide.
func tendance(points []entity.EvolutionVente) string {
	if len(points) < 2 {
		return TendanceStable
	}
	ancien := joursAvecVentes(points[:min(3, len(points))])
	recent := joursAvecVentes(points[max(0, len(points)-3):])
	if len(ancien) == 0 || len(recent) == 0 {
		return TendanceStable
	}
	debut := moyenneVentes(ancien)
	fin := moyenneVentes(recent)
	switch {
	case fin.GreaterThan(debut.Mul(seuilHausse)):
		return TendanceHausse
	case fin.LessThan(debut.Mul(seuilBaisse)):
		return TendanceBaisse
	default:
		return TendanceStable
	}
}

func joursAvecVentes(points []entity.EvolutionVente) []entity.EvolutionVente {
	avec := make([]entity.EvolutionVente, 0, len(points))
	for _, p := range points {
		if p.Ventes.IsPositive() {
			avec = append(avec, p)
		}
	}
	return avec
}

func moyenneVentes(points []entity.EvolutionVente) decimal.Decimal {
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.Ventes)
	}
	return total.Div(decimal.NewFromInt(int64(len(points))))
}

// SyntheseSemaine totaux et moyenne journalière du volume hebdomadaire.
type SyntheseSemaine struct {
	TotalCommandes int
	TotalVentes    decimal.Decimal
	MoyenneVentes  decimal.Decimal
	JourLePlusFort *entity.CommandeJour
}

// SynthetiserSemaine agrège le volume de commandes par jour de la semaine.
func SynthetiserSemaine(jours []entity.CommandeJour) SyntheseSemaine {
	s := SyntheseSemaine{}
	for i := range jours {
		j := &jours[i]
		s.TotalCommandes += j.NombreCommandes
		s.TotalVentes = s.TotalVentes.Add(j.TotalVentes)
		if s.JourLePlusFort == nil || j.TotalVentes.GreaterThan(s.JourLePlusFort.TotalVentes) {
			s.JourLePlusFort = j
		}
	}
	if len(jours) > 0 {
		s.MoyenneVentes = s.TotalVentes.
			Div(decimal.NewFromInt(int64(len(jours)))).
			Round(2)
	}
	return s
}
