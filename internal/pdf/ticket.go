// Package pdf génère le ticket de caisse remis après validation d'une
// commande.
//
// Mise en page A5 :
//
//	┌───────────────────────────────────────────────┐
//	│  EN-TÊTE : Boutique  │  N° Facture + Date     │
//	│  ───────────────────────────────────────────  │
//	│  CLIENT : Nom + téléphone (si renseigné)      │
//	│  ───────────────────────────────────────────  │
//	│  TABLE : Qté | Produit | P.Unit | Sous-total  │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL À PAYER                                │
//	│  NOTES + mention de remerciement              │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Aboubacar04/biosen-console/internal/rest"
)

// ── Palette ──────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 58}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Libellés affichés pour les types de commande.
var typesCommande = map[string]string{
	"sur_place": "Sur place",
	"livraison": "Livraison",
	"emporter":  "À emporter",
}

// ── Générateur ───────────────────────────────────────────────────────────────

// TicketGenerator produit le ticket de caisse avec Maroto v2.
type TicketGenerator struct{}

// NewTicketGenerator construit le générateur.
func NewTicketGenerator() *TicketGenerator { return &TicketGenerator{} }

// GenererTicket génère le PDF du ticket et renvoie ses octets.
func (g *TicketGenerator) GenererTicket(_ context.Context, imp *rest.Impression) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket "+imp.NumeroFacture, true).
		WithAuthor(imp.Boutique.Nom, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(enTeteRow(imp))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if imp.Client != nil {
		m.AddRows(clientRow(imp))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableEnTeteRow())
	for _, r := range tableLigneRows(imp.Produits) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(imp))

	for _, r := range piedRows(imp) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ─────────────────────────────────────────────────────────────────

// enTeteRow : boutique à gauche, numéro de facture et date à droite.
func enTeteRow(imp *rest.Impression) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(imp.Boutique.Nom, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonVide(imp.Boutique.Adresse, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New("Tél : "+nonVide(imp.Boutique.Telephone, "—"), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TICKET DE CAISSE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(imp.NumeroFacture, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Émis le : "+imp.DateEmission, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New(libelleType(imp.TypeCommande), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// clientRow : nom et téléphone du client quand la commande en porte un.
func clientRow(imp *rest.Impression) core.Row {
	return row.New(11).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Tél : %s",
				imp.Client.Nom,
				nonVide(imp.Client.Telephone, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// tableEnTeteRow : en-tête de la table des lignes.
func tableEnTeteRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 1, align.Center),
		h("Produit", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Sous-total", 3, align.Right),
	)
}

// tableLigneRows : une ligne par produit de la commande.
func tableLigneRows(lignes []rest.LigneImpression) []core.Row {
	result := make([]core.Row, 0, len(lignes))
	for _, l := range lignes {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantite),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Nom,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatMontant(l.PrixUnitaire.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatMontant(l.SousTotal.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow : total à payer aligné à droite.
func totalRow(imp *rest.Impression) core.Row {
	return row.New(12).Add(
		col.New(5),
		col.New(4).Add(
			text.New("TOTAL À PAYER :", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(formatMontant(imp.Total.StringFixed(0))+" FCFA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// piedRows : notes éventuelles et mention de remerciement.
func piedRows(imp *rest.Impression) []core.Row {
	var rows []core.Row
	if imp.Notes != nil && *imp.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notes : "+*imp.Notes, props.Text{
				Size: 7.5, Color: colorGray, Top: 2,
			}),
		)))
	}
	rows = append(rows,
		row.New(3),
		row.New(8).Add(col.New(12).Add(
			text.New("Merci de votre visite. À bientôt chez "+imp.Boutique.Nom+".", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)),
	)
	return rows
}

// ── helpers ──────────────────────────────────────────────────────────────────

func nonVide(s, defaut string) string {
	if s != "" {
		return s
	}
	return defaut
}

func libelleType(t string) string {
	if l, ok := typesCommande[t]; ok {
		return l
	}
	return t
}

// formatMontant insère des espaces de milliers dans un montant sans décimales.
// Ex : "25000" → "25 000", "1000000" → "1 000 000"
func formatMontant(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
