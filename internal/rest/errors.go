package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Aboubacar04/biosen-console/internal/domain"
)

// errValidationLocale distingue un refus de validation côté console (avant
// envoi) d'un 422 renvoyé par le backend. Les deux s'unwrap vers
// domain.ErrValidation.
var errValidationLocale = domain.ErrValidation

// APIError erreur renvoyée par le backend avec son statut HTTP et le message
// serveur. S'unwrap vers les sentinelles de domaine selon le statut.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: HTTP %d", e.StatusCode)
}

// Unwrap mappe le statut HTTP vers la sentinelle de domaine correspondante,
// pour que les appelants testent errors.Is(err, domain.ErrNotFound) etc.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnprocessableEntity:
		return domain.ErrValidation
	}
	return nil
}

// ValidationError 422 du backend : message global plus erreurs par champ, à
// afficher en ligne sur les formulaires.
type ValidationError struct {
	Message string
	Champs  map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("api: validation: %s (%d champ(s))", e.Message, len(e.Champs))
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// PremierMessage renvoie le premier message du champ, ou la chaîne vide.
func (e *ValidationError) PremierMessage(champ string) string {
	if msgs := e.Champs[champ]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// MessageServeur extrait le message lisible d'une erreur API, quel que soit
// son type concret. Utilisé par les écrans pour les bannières.
func MessageServeur(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	var aErr *APIError
	if errors.As(err, &aErr) && aErr.Message != "" {
		return aErr.Message
	}
	return ""
}

// parseAPIError décode le corps d'erreur Laravel {message, errors?}.
func parseAPIError(status int, raw []byte) error {
	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	_ = json.Unmarshal(raw, &body) // un corps illisible laisse Message vide

	if status == http.StatusUnprocessableEntity && len(body.Errors) > 0 {
		return &ValidationError{Message: body.Message, Champs: body.Errors}
	}
	return &APIError{StatusCode: status, Message: body.Message}
}
