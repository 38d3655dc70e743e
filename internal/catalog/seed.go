package catalog

import "github.com/metinatakli/novaflix/internal/domain"

var defaultRows = []domain.CatalogRow{
	{
		ID:    "trending",
		Title: "Trending Now",
		Movies: []domain.Movie{
			{
				ID:          "1",
				Title:       "Stranger Things",
				Poster:      "https://image.tmdb.org/t/p/w500/49WJfeN0moxb9IPfGn8AIqMGskD.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/56v2KjBlU4XaOv9rVYkJu64HIIV.jpg",
				Description: "When a young boy vanishes, a small town uncovers a mystery involving secret experiments.",
				TrailerID:   "b9EkMc79ZSU",
				Genre:       "Sci-Fi",
				Year:        "2022",
				Rating:      "98%",
			},
			{
				ID:          "2",
				Title:       "Wednesday",
				Poster:      "https://image.tmdb.org/t/p/w500/9PFonBhy4cQy7Jz20NpMygczOkv.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/iHSwvRVsRyxpX7FE7GbviaDvgGZ.jpg",
				Description: "Smart, sarcastic and a little dead inside, Wednesday Addams investigates a murder spree.",
				TrailerID:   "Q73UhUTs6y0",
				Genre:       "Comedy",
				Year:        "2022",
				Rating:      "95%",
			},
			{
				ID:          "3",
				Title:       "The Witcher",
				Poster:      "https://image.tmdb.org/t/p/w500/cZ0d3tCFl1bdqNmPyookat5yNTE.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/jBJWaqoSCiARWtfV0GlqKBHmTDj.jpg",
				Description: "Geralt of Rivia, a solitary monster hunter, struggles to find his place in a world where people often prove more wicked than beasts.",
				TrailerID:   "ndl1W4ltcmg",
				Genre:       "Fantasy",
				Year:        "2019",
				Rating:      "91%",
			},
		},
	},
	{
		ID:    "new",
		Title: "New Releases",
		Movies: []domain.Movie{
			{
				ID:          "4",
				Title:       "Avatar: The Way of Water",
				Poster:      "https://image.tmdb.org/t/p/w500/t6HIqrRAclMCA60NsSmeqe9RmNV.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/s16H6tpK2utvwDtzZ8Qy4qm5Emw.jpg",
				Description: "Jake Sully lives with his newfound family formed on the extrasolar moon Pandora.",
				TrailerID:   "d9MyqF3xDZY",
				Genre:       "Action",
				Year:        "2022",
				Rating:      "93%",
			},
			{
				ID:          "5",
				Title:       "Top Gun: Maverick",
				Poster:      "https://image.tmdb.org/t/p/w500/62HCnUTziyWcpDaBO2i1DX17ljH.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/AaV1YIdWKnjAIAOe8UUKBFm327v.jpg",
				Description: "After more than thirty years of service as one of the Navy's top aviators, Pete \"Maverick\" Mitchell trains a detachment of TOP GUN graduates for a specialized mission.",
				TrailerID:   "giXco2jaZ_4",
				Genre:       "Action",
				Year:        "2022",
				Rating:      "99%",
			},
		},
	},
	{
		ID:    "popular",
		Title: "Popular on Novaflix",
		Movies: []domain.Movie{
			{
				ID:          "6",
				Title:       "Squid Game",
				Poster:      "https://image.tmdb.org/t/p/w500/dDlE2FcE0sFqg5Z8k8e.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/dDlE2FcE0sFqg5Z8k8e.jpg",
				Description: "Hundreds of cash-strapped players accept a strange invitation to compete in children's games.",
				TrailerID:   "oqxAJKy0ii4",
				Genre:       "Thriller",
				Year:        "2021",
				Rating:      "97%",
			},
			{
				ID:          "7",
				Title:       "Money Heist",
				Poster:      "https://image.tmdb.org/t/p/w500/reEMJA1uzscCbkpeRJeTT2bjqUp.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/reEMJA1uzscCbkpeRJeTT2bjqUp.jpg",
				Description: "Eight thieves take hostages and lock themselves in the Royal Mint of Spain.",
				TrailerID:   "_InqQJRqGW4",
				Genre:       "Crime",
				Year:        "2017",
				Rating:      "94%",
			},
			{
				ID:          "8",
				Title:       "Dark",
				Poster:      "https://image.tmdb.org/t/p/w500/scZlQQYnDVlnpxFTfkrroV07A1F.jpg",
				Cover:       "https://image.tmdb.org/t/p/original/scZlQQYnDVlnpxFTfkrroV07A1F.jpg",
				Description: "A family saga with a supernatural twist, set in a German town.",
				TrailerID:   "rrwycJ08PSA",
				Genre:       "Mystery",
				Year:        "2017",
				Rating:      "96%",
			},
		},
	},
}
