package gallery

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/model"
)

// FavouritesView is the model of the favourites tab: every favourited artwork
// in the order it was added.
type FavouritesView struct {
	catalog artic.Catalog
	lib     *Library
	width   int
	log     zerolog.Logger

	mu       sync.Mutex
	cards    []model.Card
	state    model.LoadState
	err      error
	onChange func()
}

// NewFavouritesView creates an idle favourites model
func NewFavouritesView(catalog artic.Catalog, lib *Library, width int, log zerolog.Logger) *FavouritesView {
	return &FavouritesView{
		catalog: catalog,
		lib:     lib,
		width:   width,
		log:     log.With().Str("component", "favourites").Logger(),
		state:   model.LoadStateIdle,
	}
}

// SetOnChange sets the callback invoked after every state change
func (v *FavouritesView) SetOnChange(fn func()) {
	v.mu.Lock()
	v.onChange = fn
	v.mu.Unlock()
}

// Load reads the favourited ids and fetches their cards
func (v *FavouritesView) Load(ctx context.Context) error {
	v.set(func() {
		v.state = model.LoadStateLoading
		v.err = nil
	})

	cards, err := v.fetch(ctx)
	if err != nil {
		v.log.Error().Err(err).Msg("failed to load favourites")
		v.set(func() {
			v.state = model.LoadStateError
			v.err = err
		})
		return err
	}

	v.set(func() {
		v.cards = cards
		v.state = model.LoadStateExhausted
	})
	return nil
}

func (v *FavouritesView) fetch(ctx context.Context) ([]model.Card, error) {
	ids, err := v.lib.Favourites(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	artworks, err := v.catalog.ArtworksByIDs(ctx, ids, artic.FeedFields)
	if err != nil {
		return nil, err
	}
	return v.catalog.PrepareCards(ctx, artworks, v.width)
}

// Remove unfavourites the artwork and drops its card
func (v *FavouritesView) Remove(ctx context.Context, id int) error {
	if _, err := v.lib.SetFavourite(ctx, model.PlacementFavourite, id, false); err != nil {
		return err
	}
	v.set(func() {
		v.cards = slices.DeleteFunc(v.cards, func(c model.Card) bool { return c.ID == id })
	})
	return nil
}

// OnFocus reloads the list when it was never loaded or when another screen
// queued a change for it. It reports whether a reload happened.
func (v *FavouritesView) OnFocus(ctx context.Context) (bool, error) {
	pending, all, err := v.lib.Pending(ctx, model.PlacementFavourite)
	if err != nil {
		return false, err
	}

	queued := len(pending) > 0 || all
	if !queued && v.State() != model.LoadStateIdle {
		return false, nil
	}
	if queued {
		// The whole list is refetched, so drain everything queued.
		if _, err := v.lib.Sync(ctx, model.PlacementFavourite, pending); err != nil {
			return false, err
		}
	}
	return true, v.Load(ctx)
}

func (v *FavouritesView) set(fn func()) {
	v.mu.Lock()
	fn()
	cb := v.onChange
	v.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Cards returns a snapshot of the favourite cards
func (v *FavouritesView) Cards() []model.Card {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.cards)
}

// State returns the current load state
func (v *FavouritesView) State() model.LoadState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Err returns the last load error
func (v *FavouritesView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
