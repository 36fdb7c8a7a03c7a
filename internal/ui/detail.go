package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// DetailPage shows the full record of one artwork
type DetailPage struct {
	root   *RootUI
	id     int
	preset *model.Card
	state  *gallery.ArtworkState
	title  string

	body        *fyne.Container
	heartBtn    *widget.Button
	bookmarkBtn *widget.Button
	view        fyne.CanvasObject
}

// NewDetailPage creates a detail page and starts loading the artwork. preset
// is the card that was tapped, if any.
func NewDetailPage(root *RootUI, id int, preset *model.Card) *DetailPage {
	p := &DetailPage{
		root:   root,
		id:     id,
		preset: preset,
		state:  gallery.NewArtworkState(root.svc.Library, model.PlacementDetail, id),
		title:  fmt.Sprintf("Artwork %d", id),
	}
	if preset != nil {
		p.title = model.ShortenText(preset.DisplayTitle(), CardTitleLength)
	}

	spinner := widget.NewProgressBarInfinite()
	p.body = container.NewVBox(spinner)
	p.view = container.NewVScroll(p.body)

	p.heartBtn = widget.NewButton(IconHeartEmpty, func() {
		p.mutate(func(ctx context.Context) error {
			_, err := p.state.ToggleLike(ctx)
			return err
		})
	})
	p.bookmarkBtn = widget.NewButton(IconBookmarkOpen, func() {
		p.mutate(func(ctx context.Context) error {
			_, err := p.state.ToggleFavourite(ctx)
			return err
		})
	})
	p.state.SetOnChange(func(liked, favourite bool) {
		fyne.Do(func() { p.updateButtons(liked, favourite) })
	})

	go p.load()
	return p
}

// Title returns the page title
func (p *DetailPage) Title() string {
	return p.title
}

// Content returns the page content
func (p *DetailPage) Content() fyne.CanvasObject {
	return p.view
}

// OnFocus re-reads the flags, which may have changed on a page pushed above
func (p *DetailPage) OnFocus() {
	go p.loadState()
}

func (p *DetailPage) load() {
	ctx, cancel := context.WithTimeout(context.Background(), PageLoadTimeout)
	defer cancel()

	p.loadState()
	view, err := gallery.Detail(ctx, p.root.svc.Catalog, p.id, p.root.cardWidth(), p.preset)
	if err != nil {
		p.root.log.Error().Err(err).Int("id", p.id).Msg("failed to load artwork")
		fyne.Do(func() { p.showError(err) })
		return
	}
	fyne.Do(func() { p.render(view) })
}

func (p *DetailPage) loadState() {
	ctx, cancel := context.WithTimeout(context.Background(), StoreOpTimeout)
	defer cancel()
	if err := p.state.Load(ctx); err != nil {
		p.root.log.Warn().Err(err).Int("id", p.id).Msg("failed to load artwork state")
	}
}

func (p *DetailPage) mutate(fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), StoreOpTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			p.root.log.Error().Err(err).Int("id", p.id).Msg("failed to update artwork")
			p.root.showNotification(fmt.Sprintf("%s %v", IconError, err))
		}
	}()
}

func (p *DetailPage) showError(err error) {
	msg := widget.NewLabel(fmt.Sprintf("%s %v", IconError, err))
	msg.Wrapping = fyne.TextWrapWord
	retry := widget.NewButton(IconRefresh+" Retry", func() {
		p.body.Objects = []fyne.CanvasObject{widget.NewProgressBarInfinite()}
		p.body.Refresh()
		go p.load()
	})
	p.body.Objects = []fyne.CanvasObject{msg, container.NewCenter(retry)}
	p.body.Refresh()
}

// render lays out the loaded artwork; runs on the UI thread
func (p *DetailPage) render(view *gallery.DetailView) {
	c := view.Card
	aspect := defaultAspect
	if width := p.root.cardWidth(); c.Height > 0 && width > 0 {
		aspect = float32(c.Height) / float32(width)
	}
	image := NewTapImage(CardMinWidth, aspect)
	image.OnDoubleTapped = func() { p.mutate(p.state.DoubleTap) }
	p.root.images.Load(c.Image, image.Image())

	shareBtn := widget.NewButton(IconShare, func() { p.root.share(c.Artwork) })
	if view.ShareURL == "" {
		shareBtn.Disable()
	}
	saveBtn := widget.NewButton(IconSave, func() { p.root.save(c.Artwork) })
	if view.ShareURL == "" || !p.root.canSave() {
		saveBtn.Disable()
	}
	actions := container.NewBorder(nil, nil, container.NewHBox(p.heartBtn, p.bookmarkBtn), container.NewHBox(saveBtn, shareBtn))

	title := widget.NewLabelWithStyle(c.DisplayTitle(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord

	rows := container.New(layout.NewFormLayout())
	for _, row := range view.Rows {
		label := widget.NewLabelWithStyle(row.Label, fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
		rows.Add(label)
		rows.Add(p.root.linkValue(row.Value, row.Link))
	}

	tags := container.NewGridWithColumns(2)
	for _, tag := range view.Hashtags {
		btn := widget.NewButton(HashtagPrefix+tag.Text, func() { p.root.followLink(tag.Link) })
		btn.Importance = widget.LowImportance
		tags.Add(btn)
	}

	objects := []fyne.CanvasObject{image, actions, title, rows}
	if len(view.Hashtags) > 0 {
		objects = append(objects, tags)
	}
	if view.Description != "" {
		desc := widget.NewLabel(view.Description)
		desc.Wrapping = fyne.TextWrapWord
		objects = append(objects, widget.NewSeparator(), desc)
	}

	p.body.Objects = objects
	p.body.Refresh()
	p.updateButtons(p.state.Liked(), p.state.Favourite())
}

func (p *DetailPage) updateButtons(liked, favourite bool) {
	if liked {
		p.heartBtn.SetText(IconHeart)
		p.heartBtn.Importance = widget.DangerImportance
	} else {
		p.heartBtn.SetText(IconHeartEmpty)
		p.heartBtn.Importance = widget.LowImportance
	}
	p.heartBtn.Refresh()

	if favourite {
		p.bookmarkBtn.SetText(IconBookmark)
		p.bookmarkBtn.Importance = widget.WarningImportance
	} else {
		p.bookmarkBtn.SetText(IconBookmarkOpen)
		p.bookmarkBtn.Importance = widget.LowImportance
	}
	p.bookmarkBtn.Refresh()
}
