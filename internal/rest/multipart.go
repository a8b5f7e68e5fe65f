package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/shopspring/decimal"
)

// Formulaire corps multipart pour les ressources à pièce jointe (logo de
// boutique, photo d'employé, image de produit). Le backend n'accepte le
// multipart qu'en POST ; les mises à jour passent par le champ _method.
type Formulaire struct {
	champs   [][2]string
	fichiers []fichierJoint
}

type fichierJoint struct {
	champ   string
	nom     string
	contenu io.Reader
}

// Champ ajoute un champ texte s'il est non vide.
func (f *Formulaire) Champ(nom, valeur string) {
	if valeur != "" {
		f.champs = append(f.champs, [2]string{nom, valeur})
	}
}

// ChampInt ajoute un champ numérique si v > 0.
func (f *Formulaire) ChampInt(nom string, v int) {
	if v > 0 {
		f.champs = append(f.champs, [2]string{nom, strconv.Itoa(v)})
	}
}

// ChampBool ajoute "1"/"0" si le tri-état est renseigné.
func (f *Formulaire) ChampBool(nom string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		f.champs = append(f.champs, [2]string{nom, "1"})
	} else {
		f.champs = append(f.champs, [2]string{nom, "0"})
	}
}

// ChampDecimal ajoute un montant s'il est renseigné.
func (f *Formulaire) ChampDecimal(nom string, v *decimal.Decimal) {
	if v != nil {
		f.champs = append(f.champs, [2]string{nom, v.String()})
	}
}

// Fichier attache un fichier. contenu nil est ignoré.
func (f *Formulaire) Fichier(champ, nom string, contenu io.Reader) {
	if contenu == nil {
		return
	}
	f.fichiers = append(f.fichiers, fichierJoint{champ: champ, nom: nom, contenu: contenu})
}

// encoder écrit le corps multipart et renvoie son content type.
func (f *Formulaire) encoder(override string) (string, *bytes.Buffer, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if override != "" {
		if err := w.WriteField("_method", override); err != nil {
			return "", nil, fmt.Errorf("rest: champ _method: %w", err)
		}
	}
	for _, ch := range f.champs {
		if err := w.WriteField(ch[0], ch[1]); err != nil {
			return "", nil, fmt.Errorf("rest: champ %s: %w", ch[0], err)
		}
	}
	for _, fi := range f.fichiers {
		part, err := w.CreateFormFile(fi.champ, fi.nom)
		if err != nil {
			return "", nil, fmt.Errorf("rest: fichier %s: %w", fi.champ, err)
		}
		if _, err := io.Copy(part, fi.contenu); err != nil {
			return "", nil, fmt.Errorf("rest: copier %s: %w", fi.nom, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("rest: fermer le multipart: %w", err)
	}
	return w.FormDataContentType(), &buf, nil
}

// postMultipart envoie un POST multipart. override non vide simule le verbe
// indiqué via le champ _method (contrat Laravel).
func (c *Client) postMultipart(ctx context.Context, chemin string, form *Formulaire, override string, out any) error {
	contentType, body, err := form.encoder(override)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, "POST", chemin, nil, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.send(req, out)
}
