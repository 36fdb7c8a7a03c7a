package model

import (
	"fmt"
	"strconv"
)

// UntitledPlaceholder is shown for artworks the API returns without a title
const UntitledPlaceholder = "Untitled"

// Artwork represents a single record returned by the museum API.
// Fields map one-to-one onto the API field names; null values decode as zero values.
type Artwork struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	ArtistTitle         string   `json:"artist_title"`
	ArtistID            int      `json:"artist_id"`
	Description         string   `json:"description"`
	SubjectTitles       []string `json:"subject_titles"`
	ImageID             string   `json:"image_id"`
	PlaceOfOrigin       string   `json:"place_of_origin"`
	DateDisplay         string   `json:"date_display"`
	MediumDisplay       string   `json:"medium_display"`
	Dimensions          string   `json:"dimensions"`
	CreditLine          string   `json:"credit_line"`
	MainReferenceNumber string   `json:"main_reference_number"`
	CopyrightNotice     string   `json:"copyright_notice"`
}

// Key returns the string form of the artwork ID as persisted in local storage
func (a Artwork) Key() string {
	return strconv.Itoa(a.ID)
}

// DisplayTitle returns the title or a placeholder when the API has none
func (a Artwork) DisplayTitle() string {
	if a.Title == "" {
		return UntitledPlaceholder
	}
	return a.Title
}

// HasImage reports whether the artwork references an image on the IIIF server
func (a Artwork) HasImage() bool {
	return a.ImageID != ""
}

// Card is an artwork prepared for display: the sized image URL and the pixel
// height the image occupies at the feed width.
type Card struct {
	Artwork
	Image  string `json:"image"`
	Height int    `json:"height"`
}

// Artist represents an agent record from the museum API
type Artist struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	AltTitles   []string `json:"alt_titles"`
	BirthDate   *int     `json:"birth_date"`
	DeathDate   *int     `json:"death_date"`
	Description string   `json:"description"`
}

// Lifespan returns "birth-death", leaving unknown years blank
func (a Artist) Lifespan() string {
	birth, death := "", ""
	if a.BirthDate != nil {
		birth = strconv.Itoa(*a.BirthDate)
	}
	if a.DeathDate != nil {
		death = strconv.Itoa(*a.DeathDate)
	}
	if birth == "" && death == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s", birth, death)
}

// Pagination mirrors the pagination block of list and search responses
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// ImageSize is the full-resolution size reported by the IIIF image server
type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ScaledHeight returns the height of the image scaled to the given width,
// rounded down. Zero is returned when the size is unknown.
func (s ImageSize) ScaledHeight(width int) int {
	if s.Width <= 0 || s.Height <= 0 || width <= 0 {
		return 0
	}
	return s.Height * width / s.Width
}
