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

func (app *Application) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := app.admin.Categories()

	resp := api.CategoryListResponse{
		Categories: make([]api.Category, len(categories)),
	}

	for i, category := range categories {
		resp.Categories[i] = app.toApiCategory(category)
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateCategory(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readCategoryInput(w, r)
	if !ok {
		return
	}

	category, err := app.admin.CreateCategory(input)
	if err != nil {
		app.categoryErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("category created", "category_id", category.ID)

	app.writeCategory(w, r, http.StatusCreated, category)
}

func (app *Application) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readCategoryInput(w, r)
	if !ok {
		return
	}

	category, found, err := app.admin.UpdateCategory(chi.URLParam(r, "categoryId"), input)
	if err != nil {
		app.categoryErrorResponse(w, r, err)
		return
	}

	if !found {
		app.notFoundResponse(w, r)
		return
	}

	app.writeCategory(w, r, http.StatusOK, category)
}

// DeleteCategory removes the category and leaves its movies uncategorized.
func (app *Application) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryId := chi.URLParam(r, "categoryId")

	if app.admin.DeleteCategory(categoryId) {
		app.contextGetLogger(r).Info("category deleted", "category_id", categoryId)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) readCategoryInput(w http.ResponseWriter, r *http.Request) (admin.CategoryInput, bool) {
	var input api.CategoryRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return admin.CategoryInput{}, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return admin.CategoryInput{}, false
	}

	return admin.CategoryInput{
		Name:  input.Name,
		Color: input.Color,
	}, true
}

func (app *Application) categoryErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryNameRequired):
		app.fieldValidationResponse(w, r, "Name", appvalidator.ErrNotBlank)
	case errors.Is(err, domain.ErrInvalidColor):
		app.fieldValidationResponse(w, r, "Color", appvalidator.ErrPalette)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) writeCategory(w http.ResponseWriter, r *http.Request, status int, category domain.Category) {
	resp := api.CategoryResponse{
		Category: app.toApiCategory(category),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) toApiCategory(category domain.Category) api.Category {
	return api.Category{
		Id:         category.ID,
		Name:       category.Name,
		Color:      category.Color,
		MovieCount: app.admin.MovieCount(category.ID),
	}
}
