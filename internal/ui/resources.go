package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "art-gallery.png"
)

// LoadLogoResource loads the logo from file path next to the binary
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
