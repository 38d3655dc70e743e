// Package catalog holds the read-only browse catalog and the genre filter
// derived from it.
package catalog

import (
	"sort"

	"github.com/metinatakli/novaflix/internal/domain"
)

type Catalog struct {
	rows []domain.CatalogRow
}

// New returns a catalog over the given rows. With no rows the built-in
// catalog is used.
func New(rows ...domain.CatalogRow) *Catalog {
	if len(rows) == 0 {
		rows = defaultRows
	}

	return &Catalog{rows: cloneRows(rows)}
}

func (c *Catalog) Rows() []domain.CatalogRow {
	return cloneRows(c.rows)
}

// Featured returns the hero movie: the first movie of the first row.
func (c *Catalog) Featured() (domain.Movie, bool) {
	if len(c.rows) == 0 || len(c.rows[0].Movies) == 0 {
		return domain.Movie{}, false
	}

	return c.rows[0].Movies[0], true
}

func (c *Catalog) Find(id string) (domain.Movie, error) {
	for _, row := range c.rows {
		for _, m := range row.Movies {
			if m.ID == id {
				return m, nil
			}
		}
	}

	return domain.Movie{}, domain.ErrRecordNotFound
}

// Filter returns every movie whose genre equals genre exactly, in row order.
func (c *Catalog) Filter(genre string) []domain.Movie {
	movies := []domain.Movie{}

	for _, row := range c.rows {
		for _, m := range row.Movies {
			if m.Genre == genre {
				movies = append(movies, m)
			}
		}
	}

	return movies
}

// Genres returns the distinct genres of the catalog in lexicographic order.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{})
	genres := []string{}

	for _, row := range c.rows {
		for _, m := range row.Movies {
			if _, ok := seen[m.Genre]; ok {
				continue
			}

			seen[m.Genre] = struct{}{}
			genres = append(genres, m.Genre)
		}
	}

	sort.Strings(genres)

	return genres
}

func cloneRows(rows []domain.CatalogRow) []domain.CatalogRow {
	out := make([]domain.CatalogRow, len(rows))

	for i, row := range rows {
		out[i] = domain.CatalogRow{
			ID:     row.ID,
			Title:  row.Title,
			Movies: append([]domain.Movie(nil), row.Movies...),
		}
	}

	return out
}
