package app

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/novaflix/api"
	"github.com/metinatakli/novaflix/internal/domain"
)

// GetMovie returns the details of a catalog movie along with whether it is
// already in the list of the session.
func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	movie, err := app.catalog.Find(movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	movies, err := app.cart.List(r.Context(), app.contextGetViewerId(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	inList := slices.ContainsFunc(movies, func(m domain.Movie) bool {
		return m.ID == movie.ID
	})

	resp := api.MovieDetailsResponse{
		Movie:   toApiMovie(movie),
		InList:  inList,
		Trailer: toApiTrailer(movie),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
