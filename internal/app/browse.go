package app

import (
	"net/http"

	"github.com/metinatakli/novaflix/api"
	"github.com/metinatakli/novaflix/internal/catalog"
	"github.com/metinatakli/novaflix/internal/domain"
)

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	resp := api.GenresResponse{
		Genres: app.catalog.Genres(),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBrowse(w http.ResponseWriter, r *http.Request) {
	app.writeBrowseView(w, r, app.sessionGetSelection(r))
}

// ToggleGenre selects the given genre, or clears the filter when that genre is
// already selected.
func (app *Application) ToggleGenre(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.ToggleGenreRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	sel := app.sessionGetSelection(r).Toggle(input.Genre)
	app.sessionPutSelection(r, sel)

	logger.Debug("genre selection changed", "genre", sel.Genre)

	app.writeBrowseView(w, r, sel)
}

func (app *Application) ClearGenre(w http.ResponseWriter, r *http.Request) {
	sel := app.sessionGetSelection(r).Clear()
	app.sessionPutSelection(r, sel)

	app.writeBrowseView(w, r, sel)
}

func (app *Application) writeBrowseView(w http.ResponseWriter, r *http.Request, sel catalog.Selection) {
	view := catalog.BuildView(app.catalog, sel)

	err := app.writeJSON(w, http.StatusOK, toApiBrowse(view), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBrowse(view catalog.View) api.BrowseResponse {
	resp := api.BrowseResponse{
		Genres: view.Genres,
	}

	if view.Filtered() {
		genre := view.SelectedGenre
		results := toApiMovies(view.Results)

		resp.SelectedGenre = &genre
		resp.Results = &results

		return resp
	}

	if view.Featured != nil {
		featured := toApiMovie(*view.Featured)
		resp.Featured = &featured
	}

	rows := make([]api.CatalogRow, len(view.Rows))
	for i, row := range view.Rows {
		rows[i] = api.CatalogRow{
			Id:     row.ID,
			Title:  row.Title,
			Movies: toApiMovies(row.Movies),
		}
	}
	resp.Rows = &rows

	return resp
}

func toApiMovie(movie domain.Movie) api.Movie {
	return api.Movie{
		Id:          movie.ID,
		Title:       movie.Title,
		Poster:      movie.Poster,
		Cover:       movie.Cover,
		Description: movie.Description,
		TrailerId:   movie.TrailerID,
		Genre:       movie.Genre,
		Year:        movie.Year,
		Rating:      movie.Rating,
	}
}

func toApiMovies(movies []domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovie(movie)
	}

	return apiMovies
}

func toApiTrailer(movie domain.Movie) api.TrailerLinks {
	return api.TrailerLinks{
		WatchUrl: movie.TrailerWatchURL(),
		EmbedUrl: movie.TrailerEmbedURL(),
	}
}
