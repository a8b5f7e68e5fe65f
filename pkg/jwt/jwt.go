package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclut les claims standards JWT plus les champs propres à l'application.
// Role et BoutiqueID sont embarqués pour que le porteur puisse être autorisé sans
// consulter la base.
type Claims struct {
	jwt.RegisteredClaims
	UserID     int    `json:"user_id"`
	BoutiqueID int    `json:"boutique_id,omitempty"` // 0 = admin sans boutique attitrée
	Role       string `json:"role"`                  // "admin" | "gerant"
}

// Generate génère un token JWT signé incluant userID, boutiqueID et role.
func Generate(secret string, userID, boutiqueID int, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     userID,
		BoutiqueID: boutiqueID,
		Role:       role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valide le token et renvoie userID, boutiqueID et role.
// Retourne une erreur si le token est invalide, expiré ou mal signé.
func Parse(secret, tokenString string) (userID, boutiqueID int, role string, err error) {
	if secret == "" {
		return 0, 0, "", fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, 0, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, 0, "", fmt.Errorf("claims invalides")
	}
	return claims.UserID, claims.BoutiqueID, claims.Role, nil
}

// Expiration renvoie la date d'expiration d'un token sans vérifier la signature.
// Le token Biosen est opaque pour la console ; quand il se trouve être un JWT,
// ceci permet d'afficher l'échéance de session. Renvoie zéro si illisible.
func Expiration(tokenString string) time.Time {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
