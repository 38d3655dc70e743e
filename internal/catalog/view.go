package catalog

import "github.com/metinatakli/novaflix/internal/domain"

// Selection is the genre picked on the browse screen. The zero value means
// no filter: the hero and the grouped rows are shown.
type Selection struct {
	Genre string
}

func (s Selection) Active() bool {
	return s.Genre != ""
}

// Toggle selects genre, or clears the selection when genre is already the
// selected one.
func (s Selection) Toggle(genre string) Selection {
	if s.Genre == genre {
		return Selection{}
	}

	return Selection{Genre: genre}
}

func (s Selection) Clear() Selection {
	return Selection{}
}

// View is what the browse screen renders for a selection. Featured and Rows
// are set only without an active filter, Results only with one.
type View struct {
	Genres        []string
	SelectedGenre string
	Featured      *domain.Movie
	Rows          []domain.CatalogRow
	Results       []domain.Movie
}

func (v View) Filtered() bool {
	return v.SelectedGenre != ""
}

func BuildView(c *Catalog, sel Selection) View {
	view := View{
		Genres:        c.Genres(),
		SelectedGenre: sel.Genre,
	}

	if sel.Active() {
		view.Results = c.Filter(sel.Genre)
		return view
	}

	if featured, ok := c.Featured(); ok {
		view.Featured = &featured
	}
	view.Rows = c.Rows()

	return view
}
