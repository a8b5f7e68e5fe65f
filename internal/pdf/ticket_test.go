package pdf_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/internal/pdf"
	"github.com/Aboubacar04/biosen-console/internal/rest"
)

func impressionExemple() *rest.Impression {
	notes := "Sans glace"
	imp := &rest.Impression{
		NumeroFacture: "FAC-CMD-0101",
		DateEmission:  "2025-03-15 12:30:00",
		TypeCommande:  "sur_place",
		Total:         decimal.NewFromInt(4500),
		Notes:         &notes,
		Produits: []rest.LigneImpression{
			{Nom: "Jus de bissap", Quantite: 2, PrixUnitaire: decimal.NewFromInt(1000), SousTotal: decimal.NewFromInt(2000)},
			{Nom: "Thé moringa", Quantite: 1, PrixUnitaire: decimal.NewFromInt(2500), SousTotal: decimal.NewFromInt(2500)},
		},
	}
	imp.Boutique.Nom = "Biosen Dakar Plateau"
	imp.Boutique.Adresse = "12 avenue Georges Pompidou"
	imp.Boutique.Telephone = "77 111 22 33"
	return imp
}

func TestGenererTicket_ProduitUnPDF(t *testing.T) {
	octets, err := pdf.NewTicketGenerator().GenererTicket(context.Background(), impressionExemple())
	require.NoError(t, err)

	require.NotEmpty(t, octets)
	assert.Equal(t, "%PDF", string(octets[:4]), "le document doit commencer par l'en-tête PDF")
}

// Un ticket sans client ni notes reste générable : commande comptoir anonyme.
func TestGenererTicket_SansClientNiNotes(t *testing.T) {
	imp := impressionExemple()
	imp.Client = nil
	imp.Notes = nil

	octets, err := pdf.NewTicketGenerator().GenererTicket(context.Background(), imp)
	require.NoError(t, err)
	assert.NotEmpty(t, octets)
}
