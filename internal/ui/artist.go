package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// ArtistPage shows an artist with the first page of their artworks
type ArtistPage struct {
	root *RootUI
	id   int
	body *fyne.Container
	view fyne.CanvasObject
}

// NewArtistPage creates an artist page and starts loading it
func NewArtistPage(root *RootUI, id int) *ArtistPage {
	p := &ArtistPage{root: root, id: id}
	p.body = container.NewVBox(widget.NewProgressBarInfinite())
	p.view = container.NewVScroll(p.body)
	go p.load()
	return p
}

// Title returns the page title
func (p *ArtistPage) Title() string {
	return IconArtist + " Artist"
}

// Content returns the page content
func (p *ArtistPage) Content() fyne.CanvasObject {
	return p.view
}

// OnFocus does nothing; the artist page holds no per-artwork state
func (p *ArtistPage) OnFocus() {}

func (p *ArtistPage) load() {
	ctx, cancel := context.WithTimeout(context.Background(), PageLoadTimeout)
	defer cancel()

	page, err := gallery.ArtistView(ctx, p.root.svc.Catalog, p.id)
	if err != nil {
		p.root.log.Error().Err(err).Int("artist_id", p.id).Msg("failed to load artist")
		fyne.Do(func() {
			msg := widget.NewLabel(fmt.Sprintf("%s %v", IconError, err))
			msg.Wrapping = fyne.TextWrapWord
			p.body.Objects = []fyne.CanvasObject{msg}
			p.body.Refresh()
		})
		return
	}
	fyne.Do(func() { p.render(page) })
}

// render lays out the loaded artist; runs on the UI thread
func (p *ArtistPage) render(page *gallery.ArtistPage) {
	name := widget.NewLabelWithStyle(page.Artist.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	name.Wrapping = fyne.TextWrapWord
	objects := []fyne.CanvasObject{name}

	if lifespan := page.Artist.Lifespan(); lifespan != "" {
		objects = append(objects, widget.NewLabel(lifespan))
	}
	if len(page.Artist.AltTitles) > 0 {
		alt := widget.NewLabel(strings.Join(page.Artist.AltTitles, MiddleDotSeparator))
		alt.TextStyle = fyne.TextStyle{Italic: true}
		alt.Wrapping = fyne.TextWrapWord
		objects = append(objects, alt)
	}
	if desc := model.FormatDescription(page.Artist.Description, ArtistDescriptionLimit); desc != "" {
		label := widget.NewLabel(desc)
		label.Wrapping = fyne.TextWrapWord
		objects = append(objects, label)
	}

	objects = append(objects, widget.NewSeparator(),
		widget.NewLabelWithStyle(fmt.Sprintf("Artworks (%d)", page.Total), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	for _, a := range page.Artworks {
		btn := widget.NewButton(model.ShortenText(a.DisplayTitle(), CardTitleLength), func() {
			p.root.openDetail(a.ID, nil)
		})
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		objects = append(objects, btn)
	}

	if page.Total > len(page.Artworks) && page.Artist.Title != "" {
		seeMore := widget.NewButton("See more", func() { p.root.openSearch(page.SeeMore) })
		seeMore.Importance = widget.HighImportance
		objects = append(objects, seeMore)
	}

	p.body.Objects = objects
	p.body.Refresh()
}
