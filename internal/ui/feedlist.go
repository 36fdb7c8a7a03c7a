package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// FeedList renders a paginated feed inside a scroll container and asks for
// the next page when the user nears the end
type FeedList[T any] struct {
	root      *RootUI
	feed      *gallery.Feed[T]
	placement model.Placement
	build     func(T) fyne.CanvasObject

	items    *fyne.Container
	scroll   *container.Scroll
	status   *widget.Label
	spinner  *widget.ProgressBarInfinite
	retryBtn *widget.Button
	view     fyne.CanvasObject

	rendered     int
	resetPending bool
	cards        []*ArtworkCard
}

// NewFeedList creates a list over feed. items is the container new objects
// are appended to (a VBox for cards, a grid for thumbnails).
func NewFeedList[T any](root *RootUI, placement model.Placement, feed *gallery.Feed[T], items *fyne.Container, build func(T) fyne.CanvasObject) *FeedList[T] {
	fl := &FeedList[T]{
		root:      root,
		feed:      feed,
		placement: placement,
		build:     build,
		items:     items,
	}

	fl.status = widget.NewLabel("")
	fl.status.Alignment = fyne.TextAlignCenter
	fl.status.Wrapping = fyne.TextWrapWord
	fl.status.Hide()
	fl.spinner = widget.NewProgressBarInfinite()
	fl.spinner.Hide()
	fl.retryBtn = widget.NewButton(IconRefresh+" Retry", fl.LoadMore)
	fl.retryBtn.Hide()

	footer := container.NewVBox(fl.spinner, fl.status, container.NewCenter(fl.retryBtn))
	fl.scroll = container.NewVScroll(container.NewVBox(fl.items, footer))
	fl.scroll.OnScrolled = fl.onScrolled
	fl.view = fl.scroll

	feed.SetOnChange(func() { fyne.Do(fl.render) })
	return fl
}

// View returns the scrollable list
func (fl *FeedList[T]) View() fyne.CanvasObject {
	return fl.view
}

// Feed returns the underlying feed
func (fl *FeedList[T]) Feed() *gallery.Feed[T] {
	return fl.feed
}

// Load fetches the first page if nothing was loaded yet
func (fl *FeedList[T]) Load() {
	fl.background("load", fl.feed.Load)
}

// Refresh reloads the list from the first page
func (fl *FeedList[T]) Refresh() {
	fl.resetPending = true
	fl.scroll.ScrollToTop()
	fl.background("refresh", fl.feed.Refresh)
}

// LoadMore fetches the next page
func (fl *FeedList[T]) LoadMore() {
	fl.background("load more", fl.feed.LoadMore)
}

// OnFocus resyncs liked/favourite flags of the rendered cards
func (fl *FeedList[T]) OnFocus() {
	states := make([]*gallery.ArtworkState, len(fl.cards))
	for i, c := range fl.cards {
		states[i] = c.State()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), StoreOpTimeout)
		defer cancel()
		stale, err := gallery.FocusSync(ctx, fl.root.svc.Library, fl.placement, states)
		if err != nil {
			fl.root.log.Error().Err(err).Str("placement", fl.placement.String()).Msg("focus sync failed")
			return
		}
		if len(stale) > 0 {
			fl.root.log.Debug().Ints("ids", stale).Str("placement", fl.placement.String()).Msg("reloaded stale cards")
		}
	}()
}

func (fl *FeedList[T]) background(action string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), PageLoadTimeout)
		defer cancel()
		if err := fn(ctx); err != nil && !errors.Is(err, gallery.ErrBusy) {
			fl.root.log.Warn().Err(err).Str("action", action).Str("placement", fl.placement.String()).Msg("feed request failed")
		}
	}()
}

// onScrolled loads more when the remaining content is shorter than a few viewports
func (fl *FeedList[T]) onScrolled(pos fyne.Position) {
	viewport := fl.scroll.Size().Height
	if viewport <= 0 {
		return
	}
	remaining := fl.scroll.Content.MinSize().Height - pos.Y - viewport
	if remaining < viewport*LoadMoreViewports && fl.feed.State() == model.LoadStateReady {
		fl.LoadMore()
	}
}

// render appends newly loaded items and updates the footer; runs on the UI thread
func (fl *FeedList[T]) render() {
	items := fl.feed.Items()
	if fl.resetPending || len(items) < fl.rendered {
		fl.items.RemoveAll()
		fl.cards = nil
		fl.rendered = 0
		fl.resetPending = false
	}

	for _, item := range items[fl.rendered:] {
		obj := fl.build(item)
		if card, ok := obj.(*ArtworkCard); ok {
			fl.cards = append(fl.cards, card)
		}
		fl.items.Add(obj)
	}
	fl.rendered = len(items)

	fl.updateFooter()
}

func (fl *FeedList[T]) updateFooter() {
	fl.spinner.Hide()
	fl.status.Hide()
	fl.retryBtn.Hide()

	switch state := fl.feed.State(); {
	case state.IsActive():
		fl.spinner.Show()
	case state == model.LoadStateError:
		fl.status.SetText(fmt.Sprintf("%s %v", IconError, fl.feed.Err()))
		fl.status.Show()
		fl.retryBtn.Show()
	case state == model.LoadStateExhausted && fl.rendered == 0:
		fl.status.SetText("Nothing found")
		fl.status.Show()
	case state == model.LoadStateReady:
		// Keep filling until the content is a few viewports tall
		fl.onScrolled(fl.scroll.Offset)
	}
}
