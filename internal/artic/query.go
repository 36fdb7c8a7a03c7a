package artic

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ytget/art-gallery/internal/model"
)

// Field sets requested from the API
var (
	FeedFields   = []string{"id", "title", "artist_title", "description", "subject_titles", "image_id"}
	GridFields   = []string{"id", "title", "image_id"}
	ArtistFields = []string{"id", "title", "alt_titles", "birth_date", "death_date", "description"}
	DetailFields = []string{
		"id", "title", "artist_title", "artist_id", "description", "subject_titles", "image_id",
		"place_of_origin", "date_display", "medium_display", "dimensions", "credit_line",
		"main_reference_number", "copyright_notice",
	}
)

// ArtistIDFilter matches artworks by their artist id
const ArtistIDFilter = "artist_id"

// Query describes one page of an artwork search. Filter is a key from
// model.SearchFilters; the default filter runs a full-text query.
type Query struct {
	Filter string
	Text   string
	Page   int
	Limit  int
	Fields []string
}

// Values encodes the query for /artworks/search
func (q Query) Values() url.Values {
	v := pageValues(q.Page, q.Limit, q.Fields)
	if q.Filter == "" || q.Filter == model.DefaultFilterKey {
		v.Set("q", q.Text)
	} else {
		v.Set("query[bool][must][match]["+q.Filter+"]", q.Text)
	}
	return v
}

func pageValues(page, limit int, fields []string) url.Values {
	v := url.Values{}
	if page < 1 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if len(fields) > 0 {
		v.Set("fields", strings.Join(fields, ","))
	}
	return v
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
