package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// SearchScreen holds the query form and a grid of the latest artworks
type SearchScreen struct {
	root   *RootUI
	entry  *widget.Entry
	filter *widget.Select
	grid   *FeedList[model.Artwork]
	view   fyne.CanvasObject
}

// NewSearchScreen creates the search tab
func NewSearchScreen(root *RootUI) *SearchScreen {
	s := &SearchScreen{root: root}

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder("Search artworks")
	s.entry.OnSubmitted = func(string) { s.submit() }

	s.filter = widget.NewSelect(model.FilterNames(), nil)
	if f, ok := model.FilterByKey(model.DefaultFilterKey); ok {
		s.filter.SetSelected(f.Name)
	}

	searchBtn := widget.NewButton(IconSearch, s.submit)
	searchBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		container.NewBorder(nil, nil, nil, searchBtn, s.entry),
		s.filter,
	)

	feed := gallery.GridFeed(root.svc.Catalog, root.svc.Settings.GetGridPageSize())
	s.grid = NewFeedList(root, model.PlacementSearch, feed, root.mobile.CreateAdaptiveGrid(), s.buildThumb)

	s.view = container.NewBorder(form, nil, nil, nil, s.grid.View())
	return s
}

// Content returns the tab content
func (s *SearchScreen) Content() fyne.CanvasObject {
	return s.view
}

// OnFocus loads the grid on the first visit
func (s *SearchScreen) OnFocus() {
	s.grid.Load()
}

// submit opens a results page for the entered query
func (s *SearchScreen) submit() {
	text := strings.TrimSpace(s.entry.Text)
	if text == "" {
		return
	}
	key := model.DefaultFilterKey
	if f, ok := model.FilterByName(s.filter.Selected); ok {
		key = f.Key
	}
	s.root.openSearch(artic.Query{Filter: key, Text: text})
}

func (s *SearchScreen) buildThumb(a model.Artwork) fyne.CanvasObject {
	thumb := NewTapImage(ThumbSize, 1)
	thumb.Image().FillMode = canvas.ImageFillCover
	thumb.OnTapped = func() { s.root.openDetail(a.ID, nil) }
	s.root.images.Load(s.root.svc.Catalog.ThumbURL(a.ImageID), thumb.Image())
	return thumb
}
