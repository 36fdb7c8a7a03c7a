package model

import "fmt"

// Placement identifies the screen an artwork is rendered on. Screens that keep
// a list alive between visits own a reload flag list in local storage.
type Placement string

const (
	PlacementExplore   Placement = "explore"
	PlacementSearch    Placement = "search"
	PlacementFavourite Placement = "favourite"
	PlacementDetail    Placement = "detail"
)

// ListPlacements are the screens that keep rendered lists between visits
var ListPlacements = []Placement{PlacementExplore, PlacementSearch, PlacementFavourite}

// String returns the string representation of Placement
func (p Placement) String() string {
	return string(p)
}

// HasReloadList reports whether the placement owns a reload flag list
func (p Placement) HasReloadList() bool {
	for _, lp := range ListPlacements {
		if lp == p {
			return true
		}
	}
	return false
}

// Siblings returns every list placement other than p
func (p Placement) Siblings() []Placement {
	siblings := make([]Placement, 0, len(ListPlacements))
	for _, lp := range ListPlacements {
		if lp != p {
			siblings = append(siblings, lp)
		}
	}
	return siblings
}

// ParsePlacement converts user input into a Placement
func ParsePlacement(s string) (Placement, error) {
	p := Placement(s)
	switch p {
	case PlacementExplore, PlacementSearch, PlacementFavourite, PlacementDetail:
		return p, nil
	}
	return "", fmt.Errorf("unknown placement: %q", s)
}
