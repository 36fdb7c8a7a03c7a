package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// FavouriteScreen lists favourited artworks. Swipe left removes a row,
// swipe right or tap opens it.
type FavouriteScreen struct {
	root   *RootUI
	model  *gallery.FavouritesView
	rows   *fyne.Container
	status *widget.Label
	view   fyne.CanvasObject
}

// NewFavouriteScreen creates the favourite tab
func NewFavouriteScreen(root *RootUI) *FavouriteScreen {
	s := &FavouriteScreen{
		root:  root,
		model: gallery.NewFavouritesView(root.svc.Catalog, root.svc.Library, root.cardWidth(), root.log),
		rows:  container.NewVBox(),
	}
	s.status = widget.NewLabel("")
	s.status.Alignment = fyne.TextAlignCenter
	s.status.Wrapping = fyne.TextWrapWord

	hint := widget.NewLabel("Swipe left to remove, right to open")
	hint.TextStyle = fyne.TextStyle{Italic: true}
	hint.Alignment = fyne.TextAlignCenter

	s.model.SetOnChange(func() { fyne.Do(s.render) })
	s.view = container.NewBorder(hint, nil, nil, nil,
		container.NewVScroll(container.NewVBox(s.status, s.rows)))
	return s
}

// Content returns the tab content
func (s *FavouriteScreen) Content() fyne.CanvasObject {
	return s.view
}

// OnFocus reloads the list when favourites changed elsewhere
func (s *FavouriteScreen) OnFocus() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), PageLoadTimeout)
		defer cancel()
		reloaded, err := s.model.OnFocus(ctx)
		if err != nil {
			s.root.log.Warn().Err(err).Msg("favourites focus failed")
			return
		}
		if reloaded {
			s.root.log.Debug().Msg("favourites reloaded")
		}
	}()
}

// render rebuilds the rows; runs on the UI thread
func (s *FavouriteScreen) render() {
	s.rows.RemoveAll()

	cards := s.model.Cards()
	if text, ok := favouritesStatus(s.model.State(), len(cards), s.model.Err()); ok {
		s.status.SetText(text)
		s.status.Show()
	} else {
		s.status.Hide()
	}
	for _, c := range cards {
		s.rows.Add(s.buildRow(c))
	}
	s.rows.Refresh()
}

// favouritesStatus returns the status line for the favourites tab, if any
func favouritesStatus(state model.LoadState, count int, err error) (string, bool) {
	switch {
	case state.IsActive():
		return "Loading...", true
	case state == model.LoadStateError:
		return fmt.Sprintf("%s %v", IconError, err), true
	case state == model.LoadStateExhausted && count == 0:
		return "No favourites yet", true
	}
	return "", false
}

func (s *FavouriteScreen) buildRow(c model.Card) fyne.CanvasObject {
	thumb := canvas.NewImageFromResource(nil)
	thumb.FillMode = canvas.ImageFillCover
	thumb.SetMinSize(fyne.NewSize(RowThumbSize, RowThumbSize))
	if c.HasImage() {
		s.root.images.Load(s.root.svc.Catalog.ThumbURL(c.ImageID), thumb)
	}

	title := widget.NewLabel(model.ShortenText(c.DisplayTitle(), RowTitleLength))
	title.TextStyle = fyne.TextStyle{Bold: true}
	desc := widget.NewLabel(model.FormatDescription(c.Description, RowDescriptionLength))

	card := c
	row := NewSwipeRow(container.NewBorder(nil, widget.NewSeparator(), thumb, nil,
		container.NewVBox(title, desc)))
	row.OnTapped = func() { s.root.openDetail(card.ID, &card) }
	row.OnSwipeRight = row.OnTapped
	row.OnSwipeLeft = func() { s.confirmRemove(card) }
	return row
}

func (s *FavouriteScreen) confirmRemove(c model.Card) {
	msg := fmt.Sprintf("Remove \"%s\" from favourites?", model.ShortenText(c.DisplayTitle(), RowTitleLength))
	dialog.ShowConfirm(IconDelete+" Remove", msg, func(ok bool) {
		if !ok {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), StoreOpTimeout)
			defer cancel()
			if err := s.model.Remove(ctx, c.ID); err != nil {
				s.root.log.Error().Err(err).Int("id", c.ID).Msg("failed to remove favourite")
				s.root.showNotification(fmt.Sprintf("%s %v", IconError, err))
			}
		}()
	}, s.root.window)
}
