package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/config"
	"github.com/ytget/art-gallery/internal/model"
)

// MobileUI provides mobile-specific UI helpers
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CardWidth picks the pixel width feed images are requested at. Mobile
// devices use the canvas width scaled to physical pixels; desktops use the
// configured width.
func (m *MobileUI) CardWidth(canvasWidth float32, configured int) int {
	if !m.IsMobileDevice() || canvasWidth <= 0 {
		return configured
	}
	return cardWidthFor(canvasWidth, m.app.Settings().Scale())
}

func cardWidthFor(canvasWidth, scale float32) int {
	if scale <= 0 {
		scale = 1
	}
	return model.Clamp(int(canvasWidth*scale), config.MinCardWidth, config.MaxCardWidth)
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
	}
	return btn
}

// GridColumns returns the thumbnail grid width for the current orientation
func (m *MobileUI) GridColumns() int {
	if m.IsMobileDevice() && m.IsLandscape() {
		return GridColumns + 2
	}
	return GridColumns
}

// CreateAdaptiveGrid creates a grid that adapts to orientation
func (m *MobileUI) CreateAdaptiveGrid(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewGridWithColumns(m.GridColumns(), objects...)
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
