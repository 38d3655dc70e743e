package domain

import (
	"fmt"
	"net/url"
)

const (
	trailerWatchURL = "https://www.youtube.com/watch"
	trailerEmbedURL = "https://www.youtube.com/embed/"
)

type Movie struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
	TrailerID   string `json:"trailerId"`
	Genre       string `json:"genre"`
	Year        string `json:"year"`
	Rating      string `json:"rating"`
}

// TrailerWatchURL returns the external player link for the movie trailer.
func (m Movie) TrailerWatchURL() string {
	if m.TrailerID == "" {
		return ""
	}

	return fmt.Sprintf("%s?%s", trailerWatchURL, url.Values{"v": {m.TrailerID}}.Encode())
}

// TrailerEmbedURL returns the embeddable player link for the movie trailer.
func (m Movie) TrailerEmbedURL() string {
	if m.TrailerID == "" {
		return ""
	}

	return trailerEmbedURL + url.PathEscape(m.TrailerID)
}

type CatalogRow struct {
	ID     string
	Title  string
	Movies []Movie
}
