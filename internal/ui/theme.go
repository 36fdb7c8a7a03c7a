package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GalleryTheme is a dark theme that keeps artwork the brightest thing on screen
type GalleryTheme struct{}

// NewGalleryTheme creates a new gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Gallery palette
var (
	ColorLiked      = color.RGBA{R: 229, G: 57, B: 53, A: 255}
	ColorFavourite  = color.RGBA{R: 255, G: 193, B: 7, A: 255}
	ColorHashtag    = color.RGBA{R: 100, G: 181, B: 246, A: 255}
	ColorBackground = color.RGBA{R: 12, G: 12, B: 12, A: 255}
	ColorSurface    = color.RGBA{R: 28, G: 28, B: 28, A: 255}
)

// Color returns theme colors. The gallery is always dark.
func (t *GalleryTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground, theme.ColorNameInputBackground:
		return ColorSurface
	case theme.ColorNameForeground:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case theme.ColorNamePrimary:
		return ColorHashtag
	case theme.ColorNameError:
		return ColorLiked
	case theme.ColorNameWarning:
		return ColorFavourite
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with slightly tighter padding
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameScrollBarSmall:
		return 3
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
