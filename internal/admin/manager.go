// Package admin manages the dashboard's own list of movies and categories.
// It is deliberately not connected to the browse catalog.
package admin

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/metinatakli/novaflix/internal/domain"
	"github.com/shopspring/decimal"
)

const topRatedThreshold = 95

type MovieInput struct {
	Title       string
	Poster      string
	Cover       string
	Description string
	TrailerID   string
	Genre       string
	Year        string
	Rating      string
	CategoryID  *string
}

type CategoryInput struct {
	Name  string
	Color string
}

type Option func(*Manager)

// WithClock replaces the time source used to derive new identifiers.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithSeed replaces the built-in dashboard data.
func WithSeed(movies []domain.AdminMovie, categories []domain.Category) Option {
	return func(m *Manager) {
		m.movies = cloneMovies(movies)
		m.categories = append([]domain.Category{}, categories...)
	}
}

type Manager struct {
	mu         sync.RWMutex
	movies     []domain.AdminMovie
	categories []domain.Category

	now            func() time.Time
	lastMovieID    int64
	lastCategoryID int64
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		movies:     cloneMovies(defaultMovies),
		categories: append([]domain.Category{}, defaultCategories...),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) CreateMovie(input MovieInput) (domain.AdminMovie, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.AdminMovie{}, domain.ErrTitleRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	movie := input.toAdminMovie(nextID(m.now, &m.lastMovieID))
	m.movies = append(m.movies, movie)

	return cloneMovie(movie), nil
}

// UpdateMovie replaces the whole record with the given id. It reports false
// and changes nothing when no such movie exists.
func (m *Manager) UpdateMovie(id string, input MovieInput) (domain.AdminMovie, bool, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.AdminMovie{}, false, domain.ErrTitleRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.movieIndex(id)
	if i < 0 {
		return domain.AdminMovie{}, false, nil
	}

	m.movies[i] = input.toAdminMovie(id)

	return cloneMovie(m.movies[i]), true, nil
}

func (m *Manager) DeleteMovie(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.movieIndex(id)
	if i < 0 {
		return false
	}

	m.movies = append(m.movies[:i:i], m.movies[i+1:]...)

	return true
}

// AssignCategory sets the category reference of a movie, or clears it when
// categoryID is nil. The category is not required to exist.
func (m *Manager) AssignCategory(movieID string, categoryID *string) (domain.AdminMovie, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.movieIndex(movieID)
	if i < 0 {
		return domain.AdminMovie{}, false
	}

	m.movies[i].CategoryID = copyRef(categoryID)

	return cloneMovie(m.movies[i]), true
}

func (m *Manager) Movie(id string) (domain.AdminMovie, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.movieIndex(id)
	if i < 0 {
		return domain.AdminMovie{}, domain.ErrRecordNotFound
	}

	return cloneMovie(m.movies[i]), nil
}

func (m *Manager) Movies() []domain.AdminMovie {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneMovies(m.movies)
}

// FilterByCategory returns every movie for domain.CategoryFilterAll and
// otherwise the movies referencing categoryID.
func (m *Manager) FilterByCategory(categoryID string) []domain.AdminMovie {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if categoryID == domain.CategoryFilterAll {
		return cloneMovies(m.movies)
	}

	movies := []domain.AdminMovie{}
	for _, movie := range m.movies {
		if movie.InCategory(categoryID) {
			movies = append(movies, cloneMovie(movie))
		}
	}

	return movies
}

func (m *Manager) CreateCategory(input CategoryInput) (domain.Category, error) {
	name, color, err := input.normalize()
	if err != nil {
		return domain.Category{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	category := domain.Category{
		ID:    "cat" + nextID(m.now, &m.lastCategoryID),
		Name:  name,
		Color: color,
	}
	m.categories = append(m.categories, category)

	return category, nil
}

// UpdateCategory renames or recolors a category in place, keeping its id so
// movie references stay valid.
func (m *Manager) UpdateCategory(id string, input CategoryInput) (domain.Category, bool, error) {
	name, color, err := input.normalize()
	if err != nil {
		return domain.Category{}, false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.categoryIndex(id)
	if i < 0 {
		return domain.Category{}, false, nil
	}

	m.categories[i].Name = name
	m.categories[i].Color = color

	return m.categories[i], true, nil
}

// DeleteCategory removes the category and clears the reference of every
// movie that pointed at it. The movies themselves are kept.
func (m *Manager) DeleteCategory(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.categoryIndex(id)
	if i >= 0 {
		m.categories = append(m.categories[:i:i], m.categories[i+1:]...)
	}

	for j := range m.movies {
		if m.movies[j].InCategory(id) {
			m.movies[j].CategoryID = nil
		}
	}

	return i >= 0
}

func (m *Manager) Categories() []domain.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]domain.Category{}, m.categories...)
}

// CategoryName resolves a reference for display. Missing and dangling
// references both read as uncategorized.
func (m *Manager) CategoryName(categoryID *string) string {
	if categoryID == nil {
		return domain.UncategorizedName
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.categoryIndex(*categoryID)
	if i < 0 {
		return domain.UncategorizedName
	}

	return m.categories[i].Name
}

func (m *Manager) MovieCount(categoryID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, movie := range m.movies {
		if movie.InCategory(categoryID) {
			count++
		}
	}

	return count
}

func (m *Manager) Stats() domain.AdminStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := domain.AdminStats{
		TotalMovies: len(m.movies),
		Categories:  len(m.categories),
	}

	for _, movie := range m.movies {
		if isTopRated(movie.Rating) {
			stats.TopRated++
		}
	}

	return stats
}

func (m *Manager) movieIndex(id string) int {
	for i, movie := range m.movies {
		if movie.ID == id {
			return i
		}
	}

	return -1
}

func (m *Manager) categoryIndex(id string) int {
	for i, c := range m.categories {
		if c.ID == id {
			return i
		}
	}

	return -1
}

func (in MovieInput) toAdminMovie(id string) domain.AdminMovie {
	return domain.AdminMovie{
		Movie: domain.Movie{
			ID:          id,
			Title:       in.Title,
			Poster:      in.Poster,
			Cover:       in.Cover,
			Description: in.Description,
			TrailerID:   in.TrailerID,
			Genre:       in.Genre,
			Year:        in.Year,
			Rating:      in.Rating,
		},
		CategoryID: copyRef(in.CategoryID),
	}
}

func (in CategoryInput) normalize() (string, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", domain.ErrCategoryNameRequired
	}

	color := in.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	if !domain.IsPaletteColor(color) {
		return "", "", domain.ErrInvalidColor
	}

	return name, color, nil
}

// nextID derives an identifier from the current time in milliseconds,
// bumped past the previous one so ids stay unique within a millisecond.
func nextID(now func() time.Time, last *int64) string {
	ts := now().UnixMilli()
	if ts <= *last {
		ts = *last + 1
	}
	*last = ts

	return strconv.FormatInt(ts, 10)
}

// isTopRated reads the integer part of a rating such as "98%".
func isTopRated(rating string) bool {
	value, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(rating), "%"))
	if err != nil {
		return false
	}

	return value.IntPart() > topRatedThreshold
}

func copyRef(ref *string) *string {
	if ref == nil {
		return nil
	}

	v := *ref

	return &v
}

func cloneMovie(movie domain.AdminMovie) domain.AdminMovie {
	movie.CategoryID = copyRef(movie.CategoryID)
	return movie
}

func cloneMovies(movies []domain.AdminMovie) []domain.AdminMovie {
	out := make([]domain.AdminMovie, len(movies))
	for i, movie := range movies {
		out[i] = cloneMovie(movie)
	}

	return out
}
