package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// ResultsPage shows the cards matching a search query
type ResultsPage struct {
	root  *RootUI
	query artic.Query
	list  *FeedList[model.Card]
	count *widget.Label
	view  fyne.CanvasObject
}

// NewResultsPage creates a results page and starts loading the first page
func NewResultsPage(root *RootUI, q artic.Query) *ResultsPage {
	p := &ResultsPage{root: root, query: q}

	feed := gallery.SearchFeed(root.svc.Catalog, q.Filter, q.Text, root.cardWidth(), root.svc.Settings.GetPageSize())
	p.list = NewFeedList(root, model.PlacementSearch, feed, container.NewVBox(), func(c model.Card) fyne.CanvasObject {
		return NewArtworkCard(root, model.PlacementSearch, c)
	})

	p.count = widget.NewLabel("")
	p.count.TextStyle = fyne.TextStyle{Italic: true}
	feed.SetOnChange(func() {
		fyne.Do(func() {
			p.list.render()
			if total := feed.Total(); total > 0 {
				p.count.SetText(fmt.Sprintf(ResultsCountFormat, total))
			}
		})
	})

	p.view = container.NewBorder(p.count, nil, nil, nil, p.list.View())
	p.list.Load()
	return p
}

// Title returns the page title
func (p *ResultsPage) Title() string {
	name := p.query.Filter
	if f, ok := model.FilterByKey(p.query.Filter); ok {
		name = f.Name
	}
	return name + ": " + p.query.Text
}

// Content returns the page content
func (p *ResultsPage) Content() fyne.CanvasObject {
	return p.view
}

// OnFocus resyncs the rendered cards
func (p *ResultsPage) OnFocus() {
	p.list.OnFocus()
}
