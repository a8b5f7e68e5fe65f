package apitest

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const perPageDefaut = 15

// enveloppe construit l'enveloppe paginée Laravel autour d'un jeu complet
// d'enregistrements déjà filtrés.
func enveloppe[T any](chemin string, items []T, page, perPage int) fiber.Map {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = perPageDefaut
	}
	total := len(items)
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}

	debut := (page - 1) * perPage
	fin := debut + perPage
	if fin > total {
		fin = total
	}
	data := items[debut:fin]
	if data == nil {
		data = []T{}
	}

	from, to := 0, 0
	if total > 0 {
		from = debut + 1
		to = fin
	}

	pageURL := func(n int) string { return fmt.Sprintf("%s?page=%d", chemin, n) }
	var next, prev *string
	if page < lastPage {
		u := pageURL(page + 1)
		next = &u
	}
	if page > 1 {
		u := pageURL(page - 1)
		prev = &u
	}

	return fiber.Map{
		"current_page":   page,
		"data":           data,
		"first_page_url": pageURL(1),
		"from":           from,
		"last_page":      lastPage,
		"last_page_url":  pageURL(lastPage),
		"links":          []fiber.Map{},
		"next_page_url":  next,
		"path":           chemin,
		"per_page":       perPage,
		"prev_page_url":  prev,
		"to":             to,
		"total":          total,
	}
}

// plier replie casse et accents pour la recherche : "Sérigne" et "serigne"
// doivent se retrouver.
func plier(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// correspond vérifie la recherche pliée en sous-chaîne.
func correspond(valeur, recherche string) bool {
	if recherche == "" {
		return true
	}
	return strings.Contains(plier(valeur), plier(recherche))
}
