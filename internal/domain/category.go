package domain

const (
	CategoryFilterAll    = "all"
	UncategorizedName    = "Uncategorized"
	DefaultCategoryColor = "#E50914"
)

// CategoryPalette lists the colors an admin can pick for a category.
var CategoryPalette = []string{
	"#E50914", "#46d369", "#9c27b0", "#ff9800",
	"#2196f3", "#00bcd4", "#e91e63", "#ffc107",
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AdminMovie is a movie as the admin dashboard manages it. CategoryID is an
// optional reference to a Category; nil means uncategorized.
type AdminMovie struct {
	Movie
	CategoryID *string `json:"categoryId"`
}

func (m AdminMovie) InCategory(categoryID string) bool {
	return m.CategoryID != nil && *m.CategoryID == categoryID
}

type AdminStats struct {
	TotalMovies int
	Categories  int
	TopRated    int
}

func IsPaletteColor(color string) bool {
	for _, c := range CategoryPalette {
		if c == color {
			return true
		}
	}

	return false
}
