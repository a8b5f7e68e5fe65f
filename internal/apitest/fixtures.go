package apitest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// Identifiants des comptes de test.
const (
	EmailAdmin       = "admin@biosen.test"
	EmailGerant      = "gerant@biosen.test"
	MotDePasseAdmin  = "admin-secret-123"
	MotDePasseGerant = "gerant-secret-123"
)

// utilisateur compte seedé avec son hash bcrypt.
type utilisateur struct {
	entity.User
	hash []byte
}

func ptrInt(v int) *int       { return &v }
func ptrStr(v string) *string { return &v }

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

var origine = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func boutiquesSeed() []entity.Boutique {
	return []entity.Boutique{
		{ID: 1, Nom: "Biosen Dakar Plateau", Adresse: "12 avenue Georges Pompidou", Telephone: "77 111 22 33", Actif: true, CreatedAt: origine, UpdatedAt: origine},
		{ID: 2, Nom: "Biosen Thiès", Adresse: "Rond-point Grand Standing", Telephone: "77 444 55 66", Actif: true, CreatedAt: origine, UpdatedAt: origine},
	}
}

func utilisateursSeed() []entity.User {
	return []entity.User{
		{ID: 1, Nom: "Awa Ndiaye", Email: EmailAdmin, Role: entity.RoleAdmin, Actif: true, CreatedAt: origine, UpdatedAt: origine},
		{ID: 2, Nom: "Moussa Fall", Email: EmailGerant, Role: entity.RoleGerant, BoutiqueID: ptrInt(1), Actif: true, CreatedAt: origine, UpdatedAt: origine},
	}
}

func categoriesSeed() []entity.Categorie {
	return []entity.Categorie{
		{ID: 1, Nom: "Jus naturels", BoutiqueID: 1, CreatedAt: origine, UpdatedAt: origine},
		{ID: 2, Nom: "Compléments", BoutiqueID: 1, CreatedAt: origine, UpdatedAt: origine},
	}
}

func produitsSeed() []entity.Produit {
	return []entity.Produit{
		{ID: 1, Nom: "Jus de bissap", PrixVente: dec("1000"), Stock: 40, SeuilAlerte: 5, CategorieID: 1, BoutiqueID: 1, Actif: true, CreatedAt: origine, UpdatedAt: origine},
		{ID: 2, Nom: "Jus de gingembre", PrixVente: dec("1500"), Stock: 25, SeuilAlerte: 5, CategorieID: 1, BoutiqueID: 1, Actif: true, CreatedAt: origine, UpdatedAt: origine},
		{ID: 3, Nom: "Thé moringa", PrixVente: dec("2500"), Stock: 3, SeuilAlerte: 5, CategorieID: 2, BoutiqueID: 1, Actif: true, CreatedAt: origine, UpdatedAt: origine},
		{ID: 4, Nom: "Sirop de tamarin", PrixVente: dec("2000"), Stock: 12, SeuilAlerte: 4, CategorieID: 1, BoutiqueID: 2, Actif: true, CreatedAt: origine, UpdatedAt: origine},
	}
}

func clientsSeed() []entity.Client {
	return []entity.Client{
		{ID: 1, NomComplet: "Sérigne Mbaye", Telephone: "77 123 45 67", Adresse: "Médina", BoutiqueID: 1, CreatedAt: origine, UpdatedAt: origine},
		{ID: 2, NomComplet: "Fatou Diop", Telephone: "78 222 33 44", Adresse: "Sicap Liberté", BoutiqueID: 1, CreatedAt: origine, UpdatedAt: origine},
		{ID: 3, NomComplet: "Ibrahima Sarr", Telephone: "76 555 66 77", Adresse: "Thiès Nones", BoutiqueID: 2, CreatedAt: origine, UpdatedAt: origine},
	}
}

func employesSeed() []entity.Employe {
	return []entity.Employe{
		{ID: 1, Nom: "Khady Sow", Telephone: "77 888 99 00", BoutiqueID: 1, Actif: true, CreatedAt: origine, UpdatedAt: origine},
	}
}
