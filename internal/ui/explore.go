package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// ExploreScreen is the home feed of artwork cards
type ExploreScreen struct {
	root *RootUI
	list *FeedList[model.Card]
	view fyne.CanvasObject
}

// NewExploreScreen creates the explore tab
func NewExploreScreen(root *RootUI) *ExploreScreen {
	s := &ExploreScreen{root: root}

	feed := gallery.ExploreFeed(root.svc.Catalog, root.cardWidth(), root.svc.Settings.GetPageSize())
	s.list = NewFeedList(root, model.PlacementExplore, feed, container.NewVBox(), func(c model.Card) fyne.CanvasObject {
		return NewArtworkCard(root, model.PlacementExplore, c)
	})

	// Tapping the title scrolls to the top and reloads
	titleBtn := widget.NewButton(AppTitle, s.list.Refresh)
	titleBtn.Importance = widget.LowImportance

	s.view = container.NewBorder(titleBtn, nil, nil, nil, s.list.View())
	return s
}

// Content returns the tab content
func (s *ExploreScreen) Content() fyne.CanvasObject {
	return s.view
}

// OnFocus loads the first page on the first visit and resyncs cards afterwards
func (s *ExploreScreen) OnFocus() {
	s.list.Load()
	s.list.OnFocus()
}

// Refresh reloads the feed from the first page
func (s *ExploreScreen) Refresh() {
	s.list.Refresh()
}
