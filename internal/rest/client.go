// Package rest porte les clients de ressources typés au-dessus du contrat REST
// du backend Biosen : enveloppe paginée Laravel, filtres optionnels omis quand
// ils sont absents, multipart avec champ _method pour les verbes non-POST,
// taxonomie d'erreurs 401/404/422.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxBodyBytes = 4 * 1024 * 1024 // garde-fou sur la lecture des réponses

// TokenFunc fournit le bearer token courant ; chaîne vide = pas de session.
type TokenFunc func() string

// Client client HTTP central. Chaque ressource est exposée par un service
// construit dans New ; tous partagent le transport, le token et la politique
// 401 globale.
type Client struct {
	baseURL    string
	storageURL string
	httpClient *http.Client
	validate   *validator.Validate

	token TokenFunc
	// onUnauthorized est appelé une fois par réponse 401 à un appel
	// authentifié, avant le retour de l'erreur à l'appelant. C'est la seule
	// politique d'erreur transverse.
	onUnauthorized func()

	Auth       *AuthService
	Boutiques  *BoutiquesService
	Clients    *ClientsService
	Employes   *EmployesService
	Livreurs   *LivreursService
	Produits   *ProduitsService
	Categories *CategoriesService
	Commandes  *CommandesService
	Factures   *FacturesService
	Depenses   *DepensesService
	Users      *UsersService
	Dashboard  *DashboardService
}

// Options paramètres de construction du client.
type Options struct {
	// BaseURL racine de l'API, ex. http://localhost:8000/api
	BaseURL string
	// StorageURL base de résolution des fichiers. Optionnel.
	StorageURL string
	// Timeout réseau ; 15 s par défaut.
	Timeout time.Duration
}

// New construit le client et ses services de ressources.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		storageURL: strings.TrimRight(opts.StorageURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
	c.Auth = &AuthService{c: c}
	c.Boutiques = &BoutiquesService{c: c}
	c.Clients = &ClientsService{c: c}
	c.Employes = &EmployesService{c: c}
	c.Livreurs = &LivreursService{c: c}
	c.Produits = &ProduitsService{c: c}
	c.Categories = &CategoriesService{c: c}
	c.Commandes = &CommandesService{c: c}
	c.Factures = &FacturesService{c: c}
	c.Depenses = &DepensesService{c: c}
	c.Users = &UsersService{c: c}
	c.Dashboard = &DashboardService{c: c}
	return c
}

// SetTokenFunc branche la source du bearer token (la session).
func (c *Client) SetTokenFunc(fn TokenFunc) { c.token = fn }

// SetOnUnauthorized branche le hook 401 global (démontage de session).
func (c *Client) SetOnUnauthorized(fn func()) { c.onUnauthorized = fn }

// StorageURL résout un chemin relatif de fichier contre la base de storage.
// Renvoie la chaîne vide si aucun chemin n'est fourni.
func (c *Client) StorageURL(chemin *string) string {
	if chemin == nil || *chemin == "" || c.storageURL == "" {
		return ""
	}
	return c.storageURL + "/" + strings.TrimLeft(*chemin, "/")
}

// ── Exécution des requêtes ───────────────────────────────────────────────────

// get exécute un GET JSON. query peut être nil.
func (c *Client) get(ctx context.Context, chemin string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, chemin, query, nil, out)
}

func (c *Client) post(ctx context.Context, chemin string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, chemin, nil, body, out)
}

func (c *Client) put(ctx context.Context, chemin string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, chemin, nil, body, out)
}

// postPublic exécute un POST JSON sans bearer token. Réservé aux routes
// publiques d'authentification : leur 401 signifie identifiants refusés,
// jamais session périmée.
func (c *Client) postPublic(ctx context.Context, chemin string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("rest: sérialiser la requête: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, chemin, nil, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Del("Authorization")
	return c.send(req, out)
}

func (c *Client) patch(ctx context.Context, chemin string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, chemin, nil, body, out)
}

func (c *Client) delete(ctx context.Context, chemin string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, chemin, nil, nil, out)
}

// doJSON exécute une requête au corps JSON et décode la réponse dans out
// (ignoré si nil).
func (c *Client) doJSON(ctx context.Context, method, chemin string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("rest: sérialiser la requête: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, chemin, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// newRequest construit la requête avec les en-têtes communs : Accept, bearer
// token quand une session existe, et un X-Request-ID de corrélation.
func (c *Client) newRequest(ctx context.Context, method, chemin string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + chemin
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("rest: créer la requête %s %s: %w", method, chemin, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

// send envoie la requête, applique la taxonomie d'erreurs et décode le succès.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return fmt.Errorf("rest: appel annulé: %w", req.Context().Err())
		}
		return fmt.Errorf("rest: appel HTTP %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("rest: lire la réponse: %w", err)
	}

	if resp.StatusCode >= 400 {
		// Un 401 sans bearer token (login raté) est un refus d'identifiants,
		// pas une session périmée : le démontage ne concerne que les appels
		// authentifiés.
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil &&
			req.Header.Get("Authorization") != "" {
			c.onUnauthorized()
		}
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("rest: décoder la réponse %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

// valider applique les règles `validate` d'un filtre ou d'un payload une seule
// fois, à la frontière du client.
func (c *Client) valider(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("rest: %w: %v", errValidationLocale, err)
	}
	return nil
}
