package rest

// PageLink lien de pagination tel que généré par Laravel.
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Page enveloppe paginée renvoyée par tous les endpoints de liste.
// Invariant serveur : len(Data) <= PerPage et CurrentPage <= LastPage.
type Page[T any] struct {
	CurrentPage  int        `json:"current_page"`
	Data         []T        `json:"data"`
	FirstPageURL string     `json:"first_page_url"`
	From         int        `json:"from"`
	LastPage     int        `json:"last_page"`
	LastPageURL  string     `json:"last_page_url"`
	Links        []PageLink `json:"links"`
	NextPageURL  *string    `json:"next_page_url"`
	Path         string     `json:"path"`
	PerPage      int        `json:"per_page"`
	PrevPageURL  *string    `json:"prev_page_url"`
	To           int        `json:"to"`
	Total        int        `json:"total"`
}

// HasNext indique s'il reste une page après la courante.
func (p *Page[T]) HasNext() bool { return p.CurrentPage < p.LastPage }

// HasPrev indique s'il existe une page avant la courante.
func (p *Page[T]) HasPrev() bool { return p.CurrentPage > 1 }
