package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Les filtres laissés à zéro ne doivent produire aucun paramètre : le backend
// traite l'absence et la valeur vide différemment.
func TestParams_ChampsAZeroOmis(t *testing.T) {
	q := newParams()
	q.setInt("boutique_id", 0)
	q.setStr("search", "")
	q.setBool("actif", nil)

	assert.Nil(t, q.vals(), "aucun paramètre posé = query absente")
}

func TestParams_ChampsPoses(t *testing.T) {
	actif := true
	q := newParams()
	q.setInt("boutique_id", 3)
	q.setStr("search", "bissap")
	q.setBool("actif", &actif)

	vals := q.vals()
	assert.Equal(t, "3", vals.Get("boutique_id"))
	assert.Equal(t, "bissap", vals.Get("search"))
	assert.Equal(t, "1", vals.Get("actif"))
}

// Le tri-état booléen : faux explicite s'envoie "0", nil ne s'envoie pas.
func TestParams_BooleenTriEtat(t *testing.T) {
	inactif := false
	q := newParams()
	q.setBool("actif", &inactif)

	assert.Equal(t, "0", q.vals().Get("actif"))
}

func TestFilters_QueryOmission(t *testing.T) {
	f := ProduitFilters{BoutiqueID: 2, Page: 1}
	vals := f.query().vals()

	assert.Equal(t, "2", vals.Get("boutique_id"))
	assert.Equal(t, "1", vals.Get("page"))
	_, rechercheEnvoyee := vals["search"]
	assert.False(t, rechercheEnvoyee, "search vide ne doit pas partir sur le fil")
	_, actifEnvoye := vals["actif"]
	assert.False(t, actifEnvoye, "actif nil ne doit pas partir sur le fil")
}
