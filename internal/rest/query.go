package rest

import (
	"net/url"
	"strconv"
)

// params construit les query strings des filtres typés. Les options absentes
// ne produisent aucun paramètre : c'est l'absence, pas une valeur par défaut,
// qui lève le filtrage côté backend.
type params struct {
	url.Values
}

func newParams() params {
	return params{Values: url.Values{}}
}

// setInt ajoute le paramètre si v > 0 (les identifiants et tailles de page
// commencent à 1).
func (p params) setInt(cle string, v int) {
	if v > 0 {
		p.Set(cle, strconv.Itoa(v))
	}
}

// setStr ajoute le paramètre si la valeur est non vide.
func (p params) setStr(cle, v string) {
	if v != "" {
		p.Set(cle, v)
	}
}

// setBool ajoute "1"/"0" si le tri-état est renseigné.
func (p params) setBool(cle string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		p.Set(cle, "1")
	} else {
		p.Set(cle, "0")
	}
}

// vals renvoie nil quand aucun paramètre n'a été posé, pour garder les URLs
// sans point d'interrogation superflu.
func (p params) vals() url.Values {
	if len(p.Values) == 0 {
		return nil
	}
	return p.Values
}
