package model

// SearchFilter describes one field the search screen can match against.
// Key is the API field name; "default" runs a full-text query instead.
type SearchFilter struct {
	Key  string
	Name string
	Icon string
}

// DefaultFilterKey selects full-text search
const DefaultFilterKey = "default"

// SearchFilters is the fixed set of filters offered by the search screen
var SearchFilters = []SearchFilter{
	{Key: DefaultFilterKey, Name: "Default", Icon: "★"},
	{Key: "title", Name: "Title", Icon: "T"},
	{Key: "artist_title", Name: "Artist", Icon: "👥"},
	{Key: "place_of_origin", Name: "Place", Icon: "🗺"},
	{Key: "date_display", Name: "Date", Icon: "📅"},
	{Key: "style_title", Name: "Style", Icon: "🖌"},
	{Key: "classification_title", Name: "Classification", Icon: "▤"},
	{Key: "medium_display", Name: "Medium", Icon: "🖼"},
	{Key: "department_title", Name: "Department", Icon: "🗂"},
}

// FilterByKey returns the filter with the given key
func FilterByKey(key string) (SearchFilter, bool) {
	for _, f := range SearchFilters {
		if f.Key == key {
			return f, true
		}
	}
	return SearchFilter{}, false
}

// FilterByName returns the filter with the given display name
func FilterByName(name string) (SearchFilter, bool) {
	for _, f := range SearchFilters {
		if f.Name == name {
			return f, true
		}
	}
	return SearchFilter{}, false
}

// FilterNames returns the display names in table order
func FilterNames() []string {
	names := make([]string, len(SearchFilters))
	for i, f := range SearchFilters {
		names[i] = f.Name
	}
	return names
}
