package rest

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/internal/domain"
)

// Chaque statut HTTP doit se résoudre vers sa sentinelle de domaine pour que
// les écrans testent errors.Is sans connaître les codes.
func TestParseAPIError_SentinellesParStatut(t *testing.T) {
	cas := []struct {
		statut     int
		sentinelle error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
	}
	for _, c := range cas {
		err := parseAPIError(c.statut, []byte(`{"message":"refusé"}`))
		assert.ErrorIs(t, err, c.sentinelle, "statut %d", c.statut)
	}
}

// Un 422 avec erreurs par champ produit une ValidationError exploitable par
// les formulaires.
func TestParseAPIError_422AvecChamps(t *testing.T) {
	corps := []byte(`{
		"message": "Les données fournies sont invalides.",
		"errors": {
			"telephone": ["Le téléphone est obligatoire.", "Format invalide."],
			"nom_complet": ["Le nom complet est obligatoire."]
		}
	}`)

	err := parseAPIError(http.StatusUnprocessableEntity, corps)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Le téléphone est obligatoire.", vErr.PremierMessage("telephone"))
	assert.Empty(t, vErr.PremierMessage("adresse"), "champ sans erreur = message vide")
}

// Un corps d'erreur illisible ne doit pas masquer le statut HTTP.
func TestParseAPIError_CorpsIllisible(t *testing.T) {
	err := parseAPIError(http.StatusInternalServerError, []byte("<html>boom</html>"))

	var aErr *APIError
	require.ErrorAs(t, err, &aErr)
	assert.Equal(t, http.StatusInternalServerError, aErr.StatusCode)
	assert.Empty(t, aErr.Message)
}

func TestMessageServeur(t *testing.T) {
	apiErr := parseAPIError(http.StatusNotFound, []byte(`{"message":"Client introuvable"}`))
	assert.Equal(t, "Client introuvable", MessageServeur(apiErr))

	valErr := parseAPIError(http.StatusUnprocessableEntity,
		[]byte(`{"message":"Données invalides","errors":{"nom":["requis"]}}`))
	assert.Equal(t, "Données invalides", MessageServeur(valErr))

	assert.Empty(t, MessageServeur(errors.New("panne réseau")),
		"une erreur hors API ne porte pas de message serveur")
}
