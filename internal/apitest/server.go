// Package apitest démarre un backend Biosen factice sur une boucle locale pour
// les tests d'intégration du client REST : login avec hash bcrypt et token
// JWT, enveloppe paginée Laravel, formes d'erreur 401/404/422, multipart avec
// champ _method.
package apitest

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/pkg/jwt"
)

const (
	secretTest = "biosen-apitest-secret"
	issuerTest = "biosen-apitest"
)

// Server backend factice. Tout l'état vit en mémoire, protégé par un mutex.
type Server struct {
	app *fiber.App
	url string

	mu         sync.Mutex
	users      []utilisateur
	boutiques  []entity.Boutique
	categories []entity.Categorie
	produits   []entity.Produit
	clients    []entity.Client
	employes   []entity.Employe
	commandes  []entity.Commande
	revoques   map[string]bool
	prochain   int
}

// Demarrer lance le serveur sur un port éphémère de la boucle locale.
func Demarrer() (*Server, error) {
	s := &Server{
		boutiques:  boutiquesSeed(),
		categories: categoriesSeed(),
		produits:   produitsSeed(),
		clients:    clientsSeed(),
		employes:   employesSeed(),
		revoques:   make(map[string]bool),
		prochain:   100,
	}
	for i, u := range utilisateursSeed() {
		mdp := MotDePasseAdmin
		if i == 1 {
			mdp = MotDePasseGerant
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(mdp), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("apitest: hacher le mot de passe: %w", err)
		}
		s.users = append(s.users, utilisateur{User: u, hash: hash})
	}

	s.app = fiber.New(fiber.Config{DisableStartupMessage: true})
	s.routes()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("apitest: écouter: %w", err)
	}
	s.url = "http://" + ln.Addr().String()
	go func() { _ = s.app.Listener(ln) }()
	return s, nil
}

// URL racine de l'API, à passer telle quelle au client REST.
func (s *Server) URL() string { return s.url + "/api" }

// Close arrête le serveur.
func (s *Server) Close() error { return s.app.Shutdown() }

func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Post("/auth/login", s.login)

	prive := api.Group("", s.authMiddleware())
	prive.Post("/auth/logout", s.logout)

	prive.Get("/boutiques", s.listerBoutiques)

	prive.Get("/clients", s.listerClients)
	prive.Get("/clients/recherche-telephone", s.clientParTelephone)
	prive.Get("/clients/:id", s.lireClient)
	prive.Post("/clients", s.creerClient)
	prive.Put("/clients/:id", s.modifierClient)
	prive.Delete("/clients/:id", s.supprimerClient)

	prive.Get("/categories", s.listerCategories)
	prive.Get("/employes", s.listerEmployes)

	prive.Get("/produits", s.listerProduits)
	prive.Get("/produits/stock-faible", s.produitsStockFaible)
	prive.Post("/produits", s.creerProduit)
	prive.Post("/produits/:id", s.modifierProduit) // multipart + _method=PUT

	prive.Post("/commandes", s.creerCommande)
	prive.Post("/commandes/:id/valider", s.validerCommande)
	prive.Post("/commandes/:id/annuler", s.annulerCommande)

	prive.Get("/dashboard/stats", s.dashboardStats)
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func erreur(c *fiber.Ctx, statut int, message string) error {
	return c.Status(statut).JSON(fiber.Map{"message": message})
}

func erreur422(c *fiber.Ctx, message string, champs fiber.Map) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"message": message,
		"errors":  champs,
	})
}

func (s *Server) authMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		en := c.Get("Authorization")
		parts := strings.SplitN(en, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return erreur(c, fiber.StatusUnauthorized, "Non authentifié")
		}
		token := strings.TrimSpace(parts[1])
		s.mu.Lock()
		revoque := s.revoques[token]
		s.mu.Unlock()
		if revoque {
			return erreur(c, fiber.StatusUnauthorized, "Non authentifié")
		}
		userID, _, role, err := jwt.Parse(secretTest, token)
		if err != nil {
			return erreur(c, fiber.StatusUnauthorized, "Non authentifié")
		}
		c.Locals("user_id", userID)
		c.Locals("role", role)
		c.Locals("token", token)
		return c.Next()
	}
}

func (s *Server) login(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erreur(c, fiber.StatusBadRequest, "Corps illisible")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email != in.Email {
			continue
		}
		if bcrypt.CompareHashAndPassword(u.hash, []byte(in.Password)) != nil {
			break
		}
		boutiqueID := 0
		if u.BoutiqueID != nil {
			boutiqueID = *u.BoutiqueID
		}
		token, err := jwt.Generate(secretTest, u.ID, boutiqueID, u.Role, issuerTest, 60)
		if err != nil {
			return erreur(c, fiber.StatusInternalServerError, "Génération du token impossible")
		}
		return c.JSON(fiber.Map{
			"message": "Connexion réussie",
			"token":   token,
			"user":    u.User,
		})
	}
	return erreur(c, fiber.StatusUnauthorized, "Identifiants invalides")
}

func (s *Server) logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	s.mu.Lock()
	s.revoques[token] = true
	s.mu.Unlock()
	return c.JSON(fiber.Map{"message": "Déconnexion réussie"})
}

// ── Boutiques ────────────────────────────────────────────────────────────────

func (s *Server) listerBoutiques(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.boutiques)
}

// ── Clients ──────────────────────────────────────────────────────────────────

func (s *Server) listerClients(c *fiber.Ctx) error {
	boutiqueID := c.QueryInt("boutique_id", 0)
	recherche := c.Query("search")

	s.mu.Lock()
	defer s.mu.Unlock()
	filtres := make([]entity.Client, 0, len(s.clients))
	for _, cl := range s.clients {
		if boutiqueID > 0 && cl.BoutiqueID != boutiqueID {
			continue
		}
		if !correspond(cl.NomComplet, recherche) && !correspond(cl.Telephone, recherche) {
			continue
		}
		filtres = append(filtres, cl)
	}
	return c.JSON(enveloppe("/api/clients", filtres,
		c.QueryInt("page", 1), c.QueryInt("per_page", perPageDefaut)))
}

func (s *Server) clientParTelephone(c *fiber.Ctx) error {
	telephone := c.Query("telephone")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cl := range s.clients {
		if cl.Telephone == telephone {
			return c.JSON(cl)
		}
	}
	return erreur(c, fiber.StatusNotFound, "Client introuvable")
}

func (s *Server) lireClient(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cl := range s.clients {
		if cl.ID == id {
			return c.JSON(cl)
		}
	}
	return erreur(c, fiber.StatusNotFound, "Client introuvable")
}

func (s *Server) creerClient(c *fiber.Ctx) error {
	var in struct {
		NomComplet string `json:"nom_complet"`
		Telephone  string `json:"telephone"`
		Adresse    string `json:"adresse"`
		BoutiqueID int    `json:"boutique_id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erreur(c, fiber.StatusBadRequest, "Corps illisible")
	}
	champs := fiber.Map{}
	if in.NomComplet == "" {
		champs["nom_complet"] = []string{"Le nom complet est obligatoire."}
	}
	if in.Telephone == "" {
		champs["telephone"] = []string{"Le téléphone est obligatoire."}
	}
	if len(champs) > 0 {
		return erreur422(c, "Les données fournies sont invalides.", champs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cl := range s.clients {
		if cl.Telephone == in.Telephone {
			return erreur422(c, "Les données fournies sont invalides.", fiber.Map{
				"telephone": []string{"Ce numéro de téléphone est déjà utilisé."},
			})
		}
	}
	boutiqueID := in.BoutiqueID
	if boutiqueID == 0 {
		boutiqueID = s.boutiqueDuCompte(c)
	}
	s.prochain++
	cl := entity.Client{
		ID:         s.prochain,
		NomComplet: in.NomComplet,
		Telephone:  in.Telephone,
		Adresse:    in.Adresse,
		BoutiqueID: boutiqueID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	s.clients = append(s.clients, cl)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Client créé avec succès",
		"client":  cl,
	})
}

func (s *Server) modifierClient(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in struct {
		NomComplet string `json:"nom_complet"`
		Telephone  string `json:"telephone"`
		Adresse    string `json:"adresse"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erreur(c, fiber.StatusBadRequest, "Corps illisible")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		if in.NomComplet != "" {
			s.clients[i].NomComplet = in.NomComplet
		}
		if in.Telephone != "" {
			s.clients[i].Telephone = in.Telephone
		}
		if in.Adresse != "" {
			s.clients[i].Adresse = in.Adresse
		}
		s.clients[i].UpdatedAt = time.Now().UTC()
		return c.JSON(fiber.Map{
			"message": "Client modifié avec succès",
			"client":  s.clients[i],
		})
	}
	return erreur(c, fiber.StatusNotFound, "Client introuvable")
}

func (s *Server) supprimerClient(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return c.JSON(fiber.Map{"message": "Client supprimé avec succès"})
		}
	}
	return erreur(c, fiber.StatusNotFound, "Client introuvable")
}

// ── Catégories ───────────────────────────────────────────────────────────────

func (s *Server) listerCategories(c *fiber.Ctx) error {
	boutiqueID := c.QueryInt("boutique_id", 0)
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Categorie, 0, len(s.categories))
	for _, cat := range s.categories {
		if boutiqueID > 0 && cat.BoutiqueID != boutiqueID {
			continue
		}
		out = append(out, cat)
	}
	return c.JSON(out)
}

// ── Employés ─────────────────────────────────────────────────────────────────

func (s *Server) listerEmployes(c *fiber.Ctx) error {
	boutiqueID := c.QueryInt("boutique_id", 0)
	recherche := c.Query("search")
	s.mu.Lock()
	defer s.mu.Unlock()
	filtres := make([]entity.Employe, 0, len(s.employes))
	for _, e := range s.employes {
		if boutiqueID > 0 && e.BoutiqueID != boutiqueID {
			continue
		}
		if !correspond(e.Nom, recherche) {
			continue
		}
		filtres = append(filtres, e)
	}
	return c.JSON(enveloppe("/api/employes", filtres,
		c.QueryInt("page", 1), c.QueryInt("per_page", perPageDefaut)))
}

// ── Produits ─────────────────────────────────────────────────────────────────

func (s *Server) listerProduits(c *fiber.Ctx) error {
	boutiqueID := c.QueryInt("boutique_id", 0)
	categorieID := c.QueryInt("categorie_id", 0)
	recherche := c.Query("search")
	actif := c.Query("actif")

	s.mu.Lock()
	defer s.mu.Unlock()
	filtres := make([]entity.Produit, 0, len(s.produits))
	for _, p := range s.produits {
		if boutiqueID > 0 && p.BoutiqueID != boutiqueID {
			continue
		}
		if categorieID > 0 && p.CategorieID != categorieID {
			continue
		}
		if actif == "1" && !p.Actif || actif == "0" && p.Actif {
			continue
		}
		if !correspond(p.Nom, recherche) {
			continue
		}
		filtres = append(filtres, p)
	}
	return c.JSON(enveloppe("/api/produits", filtres,
		c.QueryInt("page", 1), c.QueryInt("per_page", perPageDefaut)))
}

func (s *Server) produitsStockFaible(c *fiber.Ctx) error {
	boutiqueID := c.QueryInt("boutique_id", 0)
	s.mu.Lock()
	defer s.mu.Unlock()
	faibles := make([]entity.Produit, 0)
	for _, p := range s.produits {
		if boutiqueID > 0 && p.BoutiqueID != boutiqueID {
			continue
		}
		if p.Stock <= p.SeuilAlerte {
			faibles = append(faibles, p)
		}
	}
	return c.JSON(faibles)
}

func (s *Server) creerProduit(c *fiber.Ctx) error {
	nom := c.FormValue("nom")
	if nom == "" {
		return erreur422(c, "Les données fournies sont invalides.", fiber.Map{
			"nom": []string{"Le nom est obligatoire."},
		})
	}
	prix, err := decimalForm(c, "prix_vente")
	if err != nil {
		return erreur422(c, "Les données fournies sont invalides.", fiber.Map{
			"prix_vente": []string{"Le prix de vente doit être un nombre."},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prochain++
	p := entity.Produit{
		ID:          s.prochain,
		Nom:         nom,
		Description: c.FormValue("description"),
		PrixVente:   prix,
		Stock:       entierForm(c, "stock"),
		SeuilAlerte: entierForm(c, "seuil_alerte"),
		CategorieID: entierForm(c, "categorie_id"),
		BoutiqueID:  entierForm(c, "boutique_id"),
		Actif:       true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if fh, err := c.FormFile("image"); err == nil {
		p.Image = ptrStr("produits/" + fh.Filename)
	}
	if p.BoutiqueID == 0 {
		p.BoutiqueID = s.boutiqueDuCompte(c)
	}
	s.produits = append(s.produits, p)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Produit créé avec succès",
		"produit": p,
	})
}

// modifierProduit accepte uniquement POST multipart portant _method=PUT,
// comme le backend Laravel.
func (s *Server) modifierProduit(c *fiber.Ctx) error {
	if c.FormValue("_method") != "PUT" {
		return erreur(c, fiber.StatusMethodNotAllowed, "Méthode non autorisée")
	}
	id, _ := c.ParamsInt("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.produits {
		if s.produits[i].ID != id {
			continue
		}
		p := &s.produits[i]
		if nom := c.FormValue("nom"); nom != "" {
			p.Nom = nom
		}
		if desc := c.FormValue("description"); desc != "" {
			p.Description = desc
		}
		if prix, err := decimalForm(c, "prix_vente"); err == nil {
			p.PrixVente = prix
		}
		if v := c.FormValue("stock"); v != "" {
			p.Stock = entierForm(c, "stock")
		}
		if v := c.FormValue("seuil_alerte"); v != "" {
			p.SeuilAlerte = entierForm(c, "seuil_alerte")
		}
		if v := c.FormValue("actif"); v != "" {
			p.Actif = v == "1"
		}
		if fh, err := c.FormFile("image"); err == nil {
			p.Image = ptrStr("produits/" + fh.Filename)
		}
		p.UpdatedAt = time.Now().UTC()
		return c.JSON(fiber.Map{
			"message": "Produit modifié avec succès",
			"produit": *p,
		})
	}
	return erreur(c, fiber.StatusNotFound, "Produit introuvable")
}

// ── Commandes ────────────────────────────────────────────────────────────────

func (s *Server) creerCommande(c *fiber.Ctx) error {
	var in struct {
		BoutiqueID   int    `json:"boutique_id"`
		ClientID     *int   `json:"client_id"`
		EmployeID    int    `json:"employe_id"`
		LivreurID    *int   `json:"livreur_id"`
		TypeCommande string `json:"type_commande"`
		Notes        string `json:"notes"`
		Produits     []struct {
			ProduitID int `json:"produit_id"`
			Quantite  int `json:"quantite"`
		} `json:"produits"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erreur(c, fiber.StatusBadRequest, "Corps illisible")
	}
	if len(in.Produits) == 0 {
		return erreur422(c, "Les données fournies sont invalides.", fiber.Map{
			"produits": []string{"Au moins un produit est requis."},
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	total := dec("0")
	var lignes []entity.Produit
	for _, l := range in.Produits {
		p := s.produitParID(l.ProduitID)
		if p == nil {
			return erreur422(c, "Les données fournies sont invalides.", fiber.Map{
				"produits": []string{fmt.Sprintf("Le produit %d n'existe pas.", l.ProduitID)},
			})
		}
		sousTotal := p.PrixVente.Mul(dec(fmt.Sprintf("%d", l.Quantite)))
		total = total.Add(sousTotal)
		copie := *p
		copie.Pivot = &entity.LigneCommande{
			ProduitID:    p.ID,
			Quantite:     l.Quantite,
			PrixUnitaire: p.PrixVente,
			SousTotal:    sousTotal,
		}
		lignes = append(lignes, copie)
	}

	s.prochain++
	boutiqueID := in.BoutiqueID
	if boutiqueID == 0 {
		boutiqueID = s.boutiqueDuCompte(c)
	}
	cmd := entity.Commande{
		ID:             s.prochain,
		NumeroCommande: fmt.Sprintf("CMD-%04d", s.prochain),
		BoutiqueID:     boutiqueID,
		ClientID:       in.ClientID,
		EmployeID:      in.EmployeID,
		LivreurID:      in.LivreurID,
		TypeCommande:   in.TypeCommande,
		Statut:         entity.StatutEnCours,
		Total:          total,
		DateCommande:   time.Now().UTC().Format("2006-01-02 15:04:05"),
		Produits:       lignes,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	if in.Notes != "" {
		cmd.Notes = ptrStr(in.Notes)
	}
	for i := range cmd.Produits {
		cmd.Produits[i].Pivot.CommandeID = cmd.ID
	}
	s.commandes = append(s.commandes, cmd)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Commande créée avec succès",
		"commande": cmd,
	})
}

func (s *Server) validerCommande(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.commandes {
		if s.commandes[i].ID != id {
			continue
		}
		cmd := &s.commandes[i]
		if cmd.Statut != entity.StatutEnCours {
			return erreur422(c, "Seule une commande en cours peut être validée.", fiber.Map{
				"statut": []string{"Statut invalide pour cette opération."},
			})
		}
		maintenant := time.Now().UTC().Format("2006-01-02 15:04:05")
		cmd.Statut = entity.StatutValidee
		cmd.DateValidation = ptrStr(maintenant)
		return c.JSON(fiber.Map{
			"message":    "Commande validée avec succès",
			"impression": s.impressionDe(cmd, maintenant),
		})
	}
	return erreur(c, fiber.StatusNotFound, "Commande introuvable")
}

func (s *Server) annulerCommande(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in struct {
		Raison string `json:"raison"`
	}
	if err := c.BodyParser(&in); err != nil {
		return erreur(c, fiber.StatusBadRequest, "Corps illisible")
	}
	if in.Raison == "" {
		return erreur422(c, "Les données fournies sont invalides.", fiber.Map{
			"raison": []string{"La raison d'annulation est obligatoire."},
		})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.commandes {
		if s.commandes[i].ID != id {
			continue
		}
		cmd := &s.commandes[i]
		if cmd.Statut != entity.StatutEnCours {
			return erreur422(c, "Seule une commande en cours peut être annulée.", fiber.Map{
				"statut": []string{"Statut invalide pour cette opération."},
			})
		}
		cmd.Statut = entity.StatutAnnulee
		cmd.DateAnnulation = ptrStr(time.Now().UTC().Format("2006-01-02 15:04:05"))
		cmd.RaisonAnnulation = ptrStr(in.Raison)
		return c.JSON(fiber.Map{
			"message":  "Commande annulée avec succès",
			"commande": *cmd,
		})
	}
	return erreur(c, fiber.StatusNotFound, "Commande introuvable")
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func (s *Server) dashboardStats(c *fiber.Ctx) error {
	boutiqueID := c.QueryInt("boutique_id", 0)
	s.mu.Lock()
	defer s.mu.Unlock()
	ventes := dec("0")
	enCours := 0
	for _, cmd := range s.commandes {
		if boutiqueID > 0 && cmd.BoutiqueID != boutiqueID {
			continue
		}
		switch cmd.Statut {
		case entity.StatutValidee:
			ventes = ventes.Add(cmd.Total)
		case entity.StatutEnCours:
			enCours++
		}
	}
	periode := fiber.Map{"ventes": ventes, "depenses": dec("0"), "benefice": ventes}
	return c.JSON(fiber.Map{
		"jour":               periode,
		"mois":               periode,
		"annee":              periode,
		"commandes_en_cours": enCours,
	})
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// boutiqueDuCompte renvoie la boutique du gérant connecté, 0 pour un admin.
// Appelé mutex tenu.
func (s *Server) boutiqueDuCompte(c *fiber.Ctx) int {
	userID, _ := c.Locals("user_id").(int)
	for _, u := range s.users {
		if u.ID == userID && u.BoutiqueID != nil {
			return *u.BoutiqueID
		}
	}
	return 0
}

// produitParID appelé mutex tenu.
func (s *Server) produitParID(id int) *entity.Produit {
	for i := range s.produits {
		if s.produits[i].ID == id {
			return &s.produits[i]
		}
	}
	return nil
}

// impressionDe construit le ticket renvoyé à la validation. Appelé mutex tenu.
func (s *Server) impressionDe(cmd *entity.Commande, emission string) fiber.Map {
	var boutique entity.Boutique
	for _, b := range s.boutiques {
		if b.ID == cmd.BoutiqueID {
			boutique = b
		}
	}
	var client fiber.Map
	if cmd.ClientID != nil {
		for _, cl := range s.clients {
			if cl.ID == *cmd.ClientID {
				client = fiber.Map{"nom": cl.NomComplet, "telephone": cl.Telephone}
			}
		}
	}
	lignes := make([]fiber.Map, 0, len(cmd.Produits))
	for _, p := range cmd.Produits {
		lignes = append(lignes, fiber.Map{
			"nom":           p.Nom,
			"quantite":      p.Pivot.Quantite,
			"prix_unitaire": p.Pivot.PrixUnitaire,
			"sous_total":    p.Pivot.SousTotal,
		})
	}
	return fiber.Map{
		"numero_facture": "FAC-" + cmd.NumeroCommande,
		"date_emission":  emission,
		"boutique": fiber.Map{
			"nom":       boutique.Nom,
			"adresse":   boutique.Adresse,
			"telephone": boutique.Telephone,
		},
		"client":        client,
		"type_commande": cmd.TypeCommande,
		"produits":      lignes,
		"total":         cmd.Total,
		"notes":         cmd.Notes,
	}
}

func decimalForm(c *fiber.Ctx, champ string) (decimal.Decimal, error) {
	return decimal.NewFromString(c.FormValue(champ))
}

func entierForm(c *fiber.Ctx, champ string) int {
	v := c.FormValue(champ)
	if v == "" {
		return 0
	}
	n := 0
	_, _ = fmt.Sscanf(v, "%d", &n)
	return n
}
