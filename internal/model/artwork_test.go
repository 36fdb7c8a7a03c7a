package model

import "testing"

func TestArtwork_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Water Lilies", "Water Lilies"},
		{"", UntitledPlaceholder},
	}

	for _, test := range tests {
		a := Artwork{Title: test.title}
		if result := a.DisplayTitle(); result != test.expected {
			t.Errorf("DisplayTitle() with title=%q = %q, expected %q", test.title, result, test.expected)
		}
	}
}

func TestArtwork_Key(t *testing.T) {
	a := Artwork{ID: 27992}
	if a.Key() != "27992" {
		t.Errorf("Key() = %q, expected %q", a.Key(), "27992")
	}
}

func TestArtist_Lifespan(t *testing.T) {
	birth, death := 1840, 1926

	tests := []struct {
		artist   Artist
		expected string
	}{
		{Artist{BirthDate: &birth, DeathDate: &death}, "1840-1926"},
		{Artist{BirthDate: &birth}, "1840-"},
		{Artist{}, ""},
	}

	for _, test := range tests {
		if result := test.artist.Lifespan(); result != test.expected {
			t.Errorf("Lifespan() = %q, expected %q", result, test.expected)
		}
	}
}

func TestImageSize_ScaledHeight(t *testing.T) {
	tests := []struct {
		size     ImageSize
		width    int
		expected int
	}{
		{ImageSize{Width: 3000, Height: 2000}, 600, 400},
		{ImageSize{Width: 1000, Height: 1333}, 300, 399},
		{ImageSize{}, 600, 0},
		{ImageSize{Width: 100, Height: 100}, 0, 0},
	}

	for _, test := range tests {
		if result := test.size.ScaledHeight(test.width); result != test.expected {
			t.Errorf("ScaledHeight(%d) for %+v = %d, expected %d", test.width, test.size, result, test.expected)
		}
	}
}

func TestPlacement_Siblings(t *testing.T) {
	tests := []struct {
		placement Placement
		expected  []Placement
	}{
		{PlacementExplore, []Placement{PlacementSearch, PlacementFavourite}},
		{PlacementSearch, []Placement{PlacementExplore, PlacementFavourite}},
		{PlacementFavourite, []Placement{PlacementExplore, PlacementSearch}},
		{PlacementDetail, []Placement{PlacementExplore, PlacementSearch, PlacementFavourite}},
	}

	for _, test := range tests {
		result := test.placement.Siblings()
		if len(result) != len(test.expected) {
			t.Fatalf("Siblings(%s) = %v, expected %v", test.placement, result, test.expected)
		}
		for i := range result {
			if result[i] != test.expected[i] {
				t.Errorf("Siblings(%s)[%d] = %s, expected %s", test.placement, i, result[i], test.expected[i])
			}
		}
	}
}

func TestParsePlacement(t *testing.T) {
	if p, err := ParsePlacement("favourite"); err != nil || p != PlacementFavourite {
		t.Errorf("ParsePlacement(favourite) = %s, %v", p, err)
	}
	if _, err := ParsePlacement("settings"); err == nil {
		t.Error("Expected error for unknown placement")
	}
}

func TestFilterByKey(t *testing.T) {
	f, ok := FilterByKey("artist_title")
	if !ok || f.Name != "Artist" {
		t.Errorf("FilterByKey(artist_title) = %+v, %v", f, ok)
	}

	if _, ok := FilterByKey("unknown"); ok {
		t.Error("Expected unknown filter key to be missing")
	}

	names := FilterNames()
	if len(names) != len(SearchFilters) || names[0] != "Default" {
		t.Errorf("FilterNames() = %v", names)
	}
}
