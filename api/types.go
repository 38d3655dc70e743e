// Package api holds the request and response bodies of the HTTP API and the
// OpenAPI document describing it.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Movie struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
	TrailerId   string `json:"trailerId"`
	Genre       string `json:"genre"`
	Year        string `json:"year"`
	Rating      string `json:"rating"`
}

type TrailerLinks struct {
	WatchUrl string `json:"watchUrl"`
	EmbedUrl string `json:"embedUrl"`
}

type CatalogRow struct {
	Id     string  `json:"id"`
	Title  string  `json:"title"`
	Movies []Movie `json:"movies"`
}

type BrowseResponse struct {
	Genres        []string      `json:"genres"`
	SelectedGenre *string       `json:"selectedGenre,omitempty"`
	Featured      *Movie        `json:"featured,omitempty"`
	Rows          *[]CatalogRow `json:"rows,omitempty"`
	Results       *[]Movie      `json:"results,omitempty"`
}

type GenresResponse struct {
	Genres []string `json:"genres"`
}

type ToggleGenreRequest struct {
	Genre string `json:"genre" validate:"required"`
}

type MovieDetailsResponse struct {
	Movie   Movie        `json:"movie"`
	InList  bool         `json:"inList"`
	Trailer TrailerLinks `json:"trailer"`
}

type CartItem struct {
	Movie   Movie        `json:"movie"`
	Trailer TrailerLinks `json:"trailer"`
}

type CartResponse struct {
	Movies []CartItem `json:"movies"`
	Count  int        `json:"count"`
}

type AddToCartRequest struct {
	MovieId string `json:"movieId" validate:"notblank"`
}

type CartEvent struct {
	Type    string `json:"type"`
	MovieId string `json:"movieId,omitempty"`
	Count   int    `json:"count"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminStatsResponse struct {
	TotalMovies int `json:"totalMovies"`
	Categories  int `json:"categories"`
	TopRated    int `json:"topRated"`
}

type AdminMovie struct {
	Id           string  `json:"id"`
	Title        string  `json:"title"`
	Poster       string  `json:"poster"`
	Cover        string  `json:"cover"`
	Description  string  `json:"description"`
	TrailerId    string  `json:"trailerId"`
	Genre        string  `json:"genre"`
	Year         string  `json:"year"`
	Rating       string  `json:"rating"`
	CategoryId   *string `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
}

type AdminMovieRequest struct {
	Title       string  `json:"title" validate:"notblank"`
	Poster      string  `json:"poster"`
	Cover       string  `json:"cover"`
	Description string  `json:"description"`
	TrailerId   string  `json:"trailerId"`
	Genre       string  `json:"genre"`
	Year        string  `json:"year"`
	Rating      string  `json:"rating"`
	CategoryId  *string `json:"categoryId"`
}

type AdminMovieResponse struct {
	Movie AdminMovie `json:"movie"`
}

type AdminMovieListResponse struct {
	Category string       `json:"category"`
	Movies   []AdminMovie `json:"movies"`
}

type AssignCategoryRequest struct {
	CategoryId *string `json:"categoryId"`
}

type Category struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	MovieCount int    `json:"movieCount"`
}

type CategoryRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Color string `json:"color" validate:"omitempty,palette"`
}

type CategoryResponse struct {
	Category Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []Category `json:"categories"`
}
