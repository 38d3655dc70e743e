package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/novaflix/api"
	"github.com/metinatakli/novaflix/internal/admin"
	"github.com/metinatakli/novaflix/internal/domain"
	appvalidator "github.com/metinatakli/novaflix/internal/validator"
)

func (app *Application) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	stats := app.admin.Stats()

	resp := api.AdminStatsResponse{
		TotalMovies: stats.TotalMovies,
		Categories:  stats.Categories,
		TopRated:    stats.TopRated,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetAdminMovies lists the dashboard movies. The category query parameter
// narrows the list to one category; "all" or no value lists everything.
func (app *Application) GetAdminMovies(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryFilterAll
	}

	movies := app.admin.FilterByCategory(category)

	resp := api.AdminMovieListResponse{
		Category: category,
		Movies:   app.toApiAdminMovies(movies),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateAdminMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	input, ok := app.readAdminMovieInput(w, r)
	if !ok {
		return
	}

	movie, err := app.admin.CreateMovie(input)
	if err != nil {
		app.adminMovieErrorResponse(w, r, err)
		return
	}

	logger.Info("admin movie created", "movie_id", movie.ID)

	app.writeAdminMovie(w, r, http.StatusCreated, movie)
}

func (app *Application) GetAdminMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := app.admin.Movie(chi.URLParam(r, "movieId"))
	if err != nil {
		app.adminMovieErrorResponse(w, r, err)
		return
	}

	app.writeAdminMovie(w, r, http.StatusOK, movie)
}

// UpdateAdminMovie replaces every field of the movie with the request body.
func (app *Application) UpdateAdminMovie(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	input, ok := app.readAdminMovieInput(w, r)
	if !ok {
		return
	}

	movie, found, err := app.admin.UpdateMovie(movieId, input)
	if err != nil {
		app.adminMovieErrorResponse(w, r, err)
		return
	}

	if !found {
		app.notFoundResponse(w, r)
		return
	}

	app.writeAdminMovie(w, r, http.StatusOK, movie)
}

// DeleteAdminMovie answers 204 whether or not the movie existed.
func (app *Application) DeleteAdminMovie(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	if app.admin.DeleteMovie(movieId) {
		app.contextGetLogger(r).Info("admin movie deleted", "movie_id", movieId)
	}

	w.WriteHeader(http.StatusNoContent)
}

// AssignMovieCategory moves a movie into a category, or out of any category
// when categoryId is null.
func (app *Application) AssignMovieCategory(w http.ResponseWriter, r *http.Request) {
	var input api.AssignCategoryRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, found := app.admin.AssignCategory(chi.URLParam(r, "movieId"), input.CategoryId)
	if !found {
		app.notFoundResponse(w, r)
		return
	}

	app.writeAdminMovie(w, r, http.StatusOK, movie)
}

func (app *Application) readAdminMovieInput(w http.ResponseWriter, r *http.Request) (admin.MovieInput, bool) {
	var input api.AdminMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return admin.MovieInput{}, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return admin.MovieInput{}, false
	}

	return admin.MovieInput{
		Title:       input.Title,
		Poster:      input.Poster,
		Cover:       input.Cover,
		Description: input.Description,
		TrailerID:   input.TrailerId,
		Genre:       input.Genre,
		Year:        input.Year,
		Rating:      input.Rating,
		CategoryID:  input.CategoryId,
	}, true
}

func (app *Application) adminMovieErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrTitleRequired):
		app.fieldValidationResponse(w, r, "Title", appvalidator.ErrNotBlank)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeAdminMovie(w http.ResponseWriter, r *http.Request, status int, movie domain.AdminMovie) {
	resp := api.AdminMovieResponse{
		Movie: app.toApiAdminMovie(movie),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) toApiAdminMovie(movie domain.AdminMovie) api.AdminMovie {
	return api.AdminMovie{
		Id:           movie.ID,
		Title:        movie.Title,
		Poster:       movie.Poster,
		Cover:        movie.Cover,
		Description:  movie.Description,
		TrailerId:    movie.TrailerID,
		Genre:        movie.Genre,
		Year:         movie.Year,
		Rating:       movie.Rating,
		CategoryId:   movie.CategoryID,
		CategoryName: app.admin.CategoryName(movie.CategoryID),
	}
}

func (app *Application) toApiAdminMovies(movies []domain.AdminMovie) []api.AdminMovie {
	apiMovies := make([]api.AdminMovie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = app.toApiAdminMovie(movie)
	}

	return apiMovies
}
