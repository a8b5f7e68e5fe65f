// Console d'administration Biosen : authentification, ressources des
// boutiques, prise de commande et tableau de bord, au-dessus de l'API REST du
// back-office.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Aboubacar04/biosen-console/internal/console/cart"
	"github.com/Aboubacar04/biosen-console/internal/console/dashboard"
	"github.com/Aboubacar04/biosen-console/internal/domain"
	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/pdf"
	"github.com/Aboubacar04/biosen-console/internal/rest"
	"github.com/Aboubacar04/biosen-console/internal/scope"
	"github.com/Aboubacar04/biosen-console/internal/session"
	"github.com/Aboubacar04/biosen-console/pkg/config"
	"github.com/Aboubacar04/biosen-console/pkg/logger"
)

const usage = `Usage : biosen-console <commande> [options]

Commandes :
  login       -email <email> -password <mot de passe>
  logout
  whoami
  boutiques
  clients     [-boutique id] [-search texte] [-page n]
  produits    [-boutique id] [-search texte] [-page n] [-stock-faible]
  commandes   [-boutique id] [-statut en_cours|validee|annulee] [-date AAAA-MM-JJ] [-page n]
  commander   -employe id -type sur_place|livraison [-client id] [-boutique id] -produit id:qte [-produit id:qte ...]
  valider     -commande id [-pdf chemin]
  dashboard   [-boutique id]
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "charger la configuration :", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	client := rest.New(rest.Options{
		BaseURL:    cfg.API.BaseURL,
		StorageURL: cfg.API.StorageURL,
		Timeout:    cfg.API.Timeout(),
	})
	sess := session.New(client.Auth, session.NewFileStore(cfg.Session.Path()), log.Composant("session"))
	client.SetTokenFunc(sess.Token)
	client.SetOnUnauthorized(sess.Teardown)
	portee := scope.New(client.Boutiques, sess)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &console{client: client, sess: sess, portee: portee, log: log}
	if err := app.executer(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			fmt.Fprintln(os.Stderr, "Aucune session active. Lancez d'abord : biosen-console login")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Erreur :", err)
		os.Exit(1)
	}
}

type console struct {
	client *rest.Client
	sess   *session.Session
	portee *scope.Broadcaster
	log    *logger.Logger
}

func (a *console) executer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}
	switch args[0] {
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		a.sess.Logout(ctx)
		fmt.Println("Déconnecté.")
		return nil
	case "whoami":
		return a.whoami()
	case "boutiques":
		return a.boutiques(ctx)
	case "clients":
		return a.clients(ctx, args[1:])
	case "produits":
		return a.produits(ctx, args[1:])
	case "commandes":
		return a.commandes(ctx, args[1:])
	case "commander":
		return a.commander(ctx, args[1:])
	case "valider":
		return a.valider(ctx, args[1:])
	case "dashboard":
		return a.dashboard(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("commande inconnue %q", args[0])
	}
}

// exigerSession refuse les commandes privées sans session active.
func (a *console) exigerSession() error {
	if !a.sess.IsLoggedIn() {
		return domain.ErrNotLoggedIn
	}
	return nil
}

// cadrer applique la sélection de boutique demandée et renvoie l'id effectif.
func (a *console) cadrer(ctx context.Context, boutiqueID int) (int, error) {
	if boutiqueID <= 0 {
		return a.portee.EffectiveID(), nil
	}
	boutiques, err := a.portee.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	for i := range boutiques {
		if boutiques[i].ID == boutiqueID {
			if err := a.portee.Select(&boutiques[i]); err != nil {
				return 0, err
			}
			return a.portee.EffectiveID(), nil
		}
	}
	return 0, fmt.Errorf("boutique %d inconnue", boutiqueID)
}

// ── Commandes ────────────────────────────────────────────────────────────────

func (a *console) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "adresse email du compte")
	password := fs.String("password", "", "mot de passe")
	if err := fs.Parse(args); err != nil {
		return err
	}
	user, err := a.sess.Login(ctx, *email, *password)
	if err != nil {
		if msg := rest.MessageServeur(err); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	fmt.Printf("Connecté : %s (%s)\n", user.Nom, user.Role)
	return nil
}

func (a *console) whoami() error {
	user := a.sess.CurrentUser()
	if user == nil {
		return domain.ErrNotLoggedIn
	}
	fmt.Printf("%s <%s> rôle=%s", user.Nom, user.Email, user.Role)
	if user.BoutiqueID != nil {
		fmt.Printf(" boutique=%d", *user.BoutiqueID)
	}
	fmt.Println()
	return nil
}

func (a *console) boutiques(ctx context.Context) error {
	if err := a.exigerSession(); err != nil {
		return err
	}
	boutiques, err := a.portee.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, b := range boutiques {
		etat := "active"
		if !b.Actif {
			etat = "inactive"
		}
		fmt.Printf("%3d  %-30s %-15s %s\n", b.ID, b.Nom, b.Telephone, etat)
	}
	return nil
}

func (a *console) clients(ctx context.Context, args []string) error {
	if err := a.exigerSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("clients", flag.ExitOnError)
	boutique := fs.Int("boutique", 0, "restreindre à une boutique")
	search := fs.String("search", "", "recherche nom ou téléphone")
	page := fs.Int("page", 1, "page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	boutiqueID, err := a.cadrer(ctx, *boutique)
	if err != nil {
		return err
	}
	res, err := a.client.Clients.List(ctx, rest.ClientFilters{
		BoutiqueID: boutiqueID,
		Search:     *search,
		Page:       *page,
	})
	if err != nil {
		return err
	}
	for _, cl := range res.Data {
		fmt.Printf("%3d  %-25s %-15s %s\n", cl.ID, cl.NomComplet, cl.Telephone, cl.Adresse)
	}
	afficherPagination(res.CurrentPage, res.LastPage, res.Total)
	return nil
}

func (a *console) produits(ctx context.Context, args []string) error {
	if err := a.exigerSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("produits", flag.ExitOnError)
	boutique := fs.Int("boutique", 0, "restreindre à une boutique")
	search := fs.String("search", "", "recherche sur le nom")
	page := fs.Int("page", 1, "page")
	stockFaible := fs.Bool("stock-faible", false, "uniquement les produits sous seuil")
	if err := fs.Parse(args); err != nil {
		return err
	}
	boutiqueID, err := a.cadrer(ctx, *boutique)
	if err != nil {
		return err
	}

	if *stockFaible {
		produits, err := a.client.Produits.StockFaible(ctx, boutiqueID)
		if err != nil {
			return err
		}
		for _, p := range produits {
			fmt.Printf("%3d  %-25s stock=%d seuil=%d\n", p.ID, p.Nom, p.Stock, p.SeuilAlerte)
		}
		return nil
	}

	res, err := a.client.Produits.List(ctx, rest.ProduitFilters{
		BoutiqueID: boutiqueID,
		Search:     *search,
		Page:       *page,
	})
	if err != nil {
		return err
	}
	for _, p := range res.Data {
		alerte := ""
		if p.StockFaible() {
			alerte = "  [stock faible]"
		}
		fmt.Printf("%3d  %-25s %8s FCFA  stock=%d%s\n", p.ID, p.Nom, p.PrixVente.StringFixed(0), p.Stock, alerte)
	}
	afficherPagination(res.CurrentPage, res.LastPage, res.Total)
	return nil
}

func (a *console) commandes(ctx context.Context, args []string) error {
	if err := a.exigerSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("commandes", flag.ExitOnError)
	boutique := fs.Int("boutique", 0, "restreindre à une boutique")
	statut := fs.String("statut", "", "en_cours, validee ou annulee")
	date := fs.String("date", "", "date AAAA-MM-JJ")
	page := fs.Int("page", 1, "page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	boutiqueID, err := a.cadrer(ctx, *boutique)
	if err != nil {
		return err
	}
	res, err := a.client.Commandes.List(ctx, rest.CommandeFilters{
		BoutiqueID: boutiqueID,
		Statut:     *statut,
		Date:       *date,
		Page:       *page,
	})
	if err != nil {
		return err
	}
	for _, cmd := range res.Data {
		fmt.Printf("%3d  %-12s %-9s %10s FCFA  %s\n",
			cmd.ID, cmd.NumeroCommande, cmd.Statut, cmd.Total.StringFixed(0), cmd.DateCommande)
	}
	afficherPagination(res.CurrentPage, res.LastPage, res.Total)
	return nil
}

// lignesFlag collecte les répétitions de -produit id:qte.
type lignesFlag struct {
	panier *cart.Panier
}

func (l *lignesFlag) String() string { return "" }

func (l *lignesFlag) Set(v string) error {
	avant, apres, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("format attendu id:qte, reçu %q", v)
	}
	id, err := strconv.Atoi(avant)
	if err != nil || id < 1 {
		return fmt.Errorf("id produit invalide %q", avant)
	}
	qte, err := strconv.Atoi(apres)
	if err != nil || qte < 1 {
		return fmt.Errorf("quantité invalide %q", apres)
	}
	l.panier.Ajouter(entity.Produit{ID: id})
	l.panier.Incrementer(id, qte-1)
	return nil
}

func (a *console) commander(ctx context.Context, args []string) error {
	if err := a.exigerSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("commander", flag.ExitOnError)
	boutique := fs.Int("boutique", 0, "boutique de la commande")
	clientID := fs.Int("client", 0, "client existant")
	employe := fs.Int("employe", 0, "employé vendeur")
	typeCmd := fs.String("type", entity.TypeSurPlace, "sur_place ou livraison")
	notes := fs.String("notes", "", "notes libres")
	lignes := &lignesFlag{panier: cart.New()}
	fs.Var(lignes, "produit", "ligne id:qte, répétable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if lignes.panier.EstVide() {
		return domain.ErrEmptyCart
	}

	boutiqueID, err := a.cadrer(ctx, *boutique)
	if err != nil {
		return err
	}
	payload := rest.CreateCommandePayload{
		BoutiqueID:   boutiqueID,
		EmployeID:    *employe,
		TypeCommande: *typeCmd,
		Notes:        *notes,
		Produits:     lignes.panier.Payload(),
	}
	if *clientID > 0 {
		payload.ClientID = clientID
	}
	res, err := a.client.Commandes.Create(ctx, payload)
	if err != nil {
		if msg := rest.MessageServeur(err); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	fmt.Printf("%s : %s, total %s FCFA\n",
		res.Message, res.Commande.NumeroCommande, res.Commande.Total.StringFixed(0))
	return nil
}

func (a *console) valider(ctx context.Context, args []string) error {
	if err := a.exigerSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("valider", flag.ExitOnError)
	commandeID := fs.Int("commande", 0, "commande à valider")
	chemin := fs.String("pdf", "", "écrire le ticket PDF à ce chemin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *commandeID < 1 {
		return fmt.Errorf("-commande est obligatoire")
	}
	res, err := a.client.Commandes.Valider(ctx, *commandeID)
	if err != nil {
		if msg := rest.MessageServeur(err); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	fmt.Println(res.Message)
	if *chemin == "" {
		return nil
	}
	octets, err := pdf.NewTicketGenerator().GenererTicket(ctx, &res.Impression)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*chemin, octets, 0o644); err != nil {
		return fmt.Errorf("écrire le ticket : %w", err)
	}
	fmt.Println("Ticket écrit dans", *chemin)
	return nil
}

func (a *console) dashboard(ctx context.Context, args []string) error {
	if err := a.exigerSession(); err != nil {
		return err
	}
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	boutique := fs.Int("boutique", 0, "restreindre à une boutique")
	if err := fs.Parse(args); err != nil {
		return err
	}
	boutiqueID, err := a.cadrer(ctx, *boutique)
	if err != nil {
		return err
	}

	agg := dashboard.New(a.client.Dashboard, a.log.Composant("dashboard"))
	d := agg.Charger(ctx, boutiqueID)

	if d.Stats != nil {
		fmt.Printf("Aujourd'hui : ventes %s, dépenses %s, bénéfice %s\n",
			d.Stats.Jour.Ventes.StringFixed(0),
			d.Stats.Jour.Depenses.StringFixed(0),
			d.Stats.Jour.Benefice.StringFixed(0))
		fmt.Printf("Commandes en cours : %d\n", d.Stats.CommandesEnCours)
	}
	if len(d.Evolution) > 0 {
		s := dashboard.Synthetiser(d.Evolution)
		fmt.Printf("7 jours : %s FCFA sur %d commandes, panier moyen %s, tendance %s\n",
			s.TotalVentes.StringFixed(0), s.TotalCommandes, s.PanierMoyen.StringFixed(0), s.Tendance)
		if s.MeilleurJour != nil {
			fmt.Printf("Meilleur jour : %s (%s FCFA)\n",
				s.MeilleurJour.Date, s.MeilleurJour.Ventes.StringFixed(0))
		}
	}
	for _, p := range d.TopProduits {
		fmt.Printf("Top produit : %-25s x%d (%s FCFA)\n", p.Nom, p.QuantiteVendue, p.TotalVentes.StringFixed(0))
	}
	for _, p := range d.StockFaible {
		fmt.Printf("Stock faible : %-25s stock=%d seuil=%d\n", p.Nom, p.Stock, p.SeuilAlerte)
	}
	for section, err := range d.Erreurs {
		fmt.Fprintf(os.Stderr, "Section %s indisponible : %v\n", section, err)
	}
	return nil
}

func afficherPagination(page, totalPages, total int) {
	fmt.Printf("— page %d/%d, %d au total\n", page, totalPages, total)
}
