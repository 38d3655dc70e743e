package admin

import "github.com/metinatakli/novaflix/internal/domain"

func categoryRef(id string) *string {
	return &id
}

var defaultCategories = []domain.Category{
	{ID: "cat1", Name: "Trending Now", Color: "#E50914"},
	{ID: "cat2", Name: "Comedy", Color: "#46d369"},
	{ID: "cat3", Name: "Fantasy", Color: "#9c27b0"},
	{ID: "cat4", Name: "Action", Color: "#ff9800"},
	{ID: "cat5", Name: "Sci-Fi", Color: "#2196f3"},
}

var defaultMovies = []domain.AdminMovie{
	{
		Movie: domain.Movie{
			ID:          "1",
			Title:       "Stranger Things",
			Poster:      "https://image.tmdb.org/t/p/w500/49WJfeN0moxb9IPfGn8AIqMGskD.jpg",
			Cover:       "https://image.tmdb.org/t/p/original/56v2KjBlU4XaOv9rVYkJu64HIIV.jpg",
			Description: "When a young boy vanishes...",
			TrailerID:   "b9EkMc79ZSU",
			Genre:       "Sci-Fi",
			Year:        "2022",
			Rating:      "98%",
		},
		CategoryID: categoryRef("cat1"),
	},
	{
		Movie: domain.Movie{
			ID:          "2",
			Title:       "Wednesday",
			Poster:      "https://image.tmdb.org/t/p/w500/9PFonBhy4cQy7Jz20NpMygczOkv.jpg",
			Cover:       "https://image.tmdb.org/t/p/original/iHSwvRVsRyxpX7FE7GbviaDvgGZ.jpg",
			Description: "Smart, sarcastic...",
			TrailerID:   "Q73UhUTs6y0",
			Genre:       "Comedy",
			Year:        "2022",
			Rating:      "95%",
		},
		CategoryID: categoryRef("cat2"),
	},
	{
		Movie: domain.Movie{
			ID:          "3",
			Title:       "The Witcher",
			Poster:      "https://image.tmdb.org/t/p/w500/cZ0d3tCFl1bdqNmPyookat5yNTE.jpg",
			Cover:       "https://image.tmdb.org/t/p/original/jBJWaqoSCiARWtfV0GlqKBHmTDj.jpg",
			Description: "Geralt of Rivia...",
			TrailerID:   "ndl1W4ltcmg",
			Genre:       "Fantasy",
			Year:        "2019",
			Rating:      "91%",
		},
		CategoryID: categoryRef("cat3"),
	},
	{
		Movie: domain.Movie{
			ID:          "4",
			Title:       "Avatar: The Way of Water",
			Poster:      "https://image.tmdb.org/t/p/w500/t6HIqrRAclMCA60NsSmeqe9RmNV.jpg",
			Cover:       "https://image.tmdb.org/t/p/original/s16H6tpK2utvwDtzZ8Qy4qm5Emw.jpg",
			Description: "Jake Sully lives...",
			TrailerID:   "d9MyqF3xDZY",
			Genre:       "Action",
			Year:        "2022",
			Rating:      "93%",
		},
		CategoryID: categoryRef("cat4"),
	},
	{
		Movie: domain.Movie{
			ID:          "5",
			Title:       "Top Gun: Maverick",
			Poster:      "https://image.tmdb.org/t/p/w500/62HCnUTziyWcpDaBO2i1DX17ljH.jpg",
			Cover:       "https://image.tmdb.org/t/p/original/AaV1YIdWKnjAIAOe8UUKBFm327v.jpg",
			Description: "After more than thirty years...",
			TrailerID:   "giXco2jaZ_4",
			Genre:       "Action",
			Year:        "2022",
			Rating:      "99%",
		},
		CategoryID: categoryRef("cat4"),
	},
}
