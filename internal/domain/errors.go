package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound     = errors.New("ressource introuvable")
	ErrUnauthorized = errors.New("non autorisé")
	ErrForbidden    = errors.New("accès refusé")
	ErrValidation   = errors.New("données invalides")
	ErrNotLoggedIn  = errors.New("aucune session active")
	ErrEmptyCart    = errors.New("panier vide")
	ErrConflict     = errors.New("conflit avec l'état actuel")
)
