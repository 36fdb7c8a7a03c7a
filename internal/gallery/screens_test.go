package gallery

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/art-gallery/internal/model"
)

func TestExploreFeed(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(25)
	catalog.noInfo["img-3"] = true

	feed := ExploreFeed(catalog, 600, 10)
	require.NoError(t, feed.Load(ctx))

	cards := feed.Items()
	require.Len(t, cards, 9, "artwork without image info is dropped")
	assert.Equal(t, 300, cards[0].Height)
	assert.Equal(t, "iiif/img-1/full/600,300", cards[0].Image)
	assert.Equal(t, 25, feed.Total())

	require.NoError(t, feed.LoadMore(ctx))
	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, model.LoadStateExhausted, feed.State())
	assert.Len(t, feed.Items(), 24)
}

func TestExploreFeed_PageAdvancesOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(40)
	catalog.failPage[2] = errors.New("timeout")

	feed := ExploreFeed(catalog, 600, 10)
	require.NoError(t, feed.Load(ctx))
	assert.Error(t, feed.LoadMore(ctx))
	assert.Equal(t, 1, feed.Page())

	delete(catalog.failPage, 2)
	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, 2, feed.Page())
	assert.Contains(t, catalog.calls, "list 2")
}

func TestExploreFeed_KeepsPagingPastPageWithoutImages(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(60)
	for i := 0; i < 20; i++ {
		catalog.artworks[i].ImageID = ""
	}

	feed := ExploreFeed(catalog, 600, 20)
	require.NoError(t, feed.Load(ctx))
	assert.Empty(t, feed.Items())
	assert.Equal(t, model.LoadStateReady, feed.State())
	assert.Equal(t, 60, feed.Total())

	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, 2, feed.Page())
	assert.Len(t, feed.Items(), 20)
	assert.Equal(t, model.LoadStateReady, feed.State())

	require.NoError(t, feed.LoadMore(ctx))
	assert.Len(t, feed.Items(), 40)
	assert.Equal(t, model.LoadStateExhausted, feed.State())
}

func TestSearchFeed_KeepsPagingWhenImageInfoFails(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(30)
	for i := 1; i <= 10; i++ {
		catalog.noInfo["img-"+strconv.Itoa(i)] = true
	}

	feed := SearchFeed(catalog, "", "monet", 600, 10)
	require.NoError(t, feed.Load(ctx))
	assert.Empty(t, feed.Items())
	assert.Equal(t, model.LoadStateReady, feed.State())

	require.NoError(t, feed.LoadMore(ctx))
	require.NoError(t, feed.LoadMore(ctx))
	assert.Len(t, feed.Items(), 20)
	assert.Equal(t, model.LoadStateExhausted, feed.State())
}

func TestGridFeed_SkipsArtworksWithoutImage(t *testing.T) {
	catalog := newFakeCatalog(4)
	catalog.artworks[1].ImageID = ""

	feed := GridFeed(catalog, 24)
	require.NoError(t, feed.Load(context.Background()))

	items := feed.Items()
	require.Len(t, items, 3)
	assert.Equal(t, model.LoadStateExhausted, feed.State())
}

func TestSearchFeed_StopsAtTotal(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(30)

	feed := SearchFeed(catalog, "", "monet", 600, 20)
	require.NoError(t, feed.Load(ctx))
	assert.Equal(t, model.LoadStateReady, feed.State())
	assert.Equal(t, 30, feed.Total())

	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, model.LoadStateExhausted, feed.State())
	assert.Len(t, feed.Items(), 30)
	assert.Equal(t, []string{"search default=monet 1", "search default=monet 2"}, catalog.calls)
}

func TestFavouritesView(t *testing.T) {
	ctx := context.Background()
	catalog := newFakeCatalog(10)
	lib, _ := newTestLibrary(t)

	for _, id := range []int{7, 2, 5} {
		_, err := lib.SetFavourite(ctx, model.PlacementExplore, id, true)
		require.NoError(t, err)
	}

	view := NewFavouritesView(catalog, lib, 600, zerolog.Nop())
	reloaded, err := view.OnFocus(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded)

	ids := func() []int {
		var out []int
		for _, c := range view.Cards() {
			out = append(out, c.ID)
		}
		return out
	}
	assert.Equal(t, []int{7, 2, 5}, ids())

	// The first load drained the queue, so focusing again does nothing
	reloaded, err = view.OnFocus(ctx)
	require.NoError(t, err)
	assert.False(t, reloaded)

	// A change made elsewhere triggers a reload on focus
	_, err = lib.SetFavourite(ctx, model.PlacementDetail, 9, true)
	require.NoError(t, err)
	reloaded, err = view.OnFocus(ctx)
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Equal(t, []int{7, 2, 5, 9}, ids())

	pending, _, err := lib.Pending(ctx, model.PlacementFavourite)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Removing from the favourites tab does not notify itself
	require.NoError(t, view.Remove(ctx, 2))
	assert.Equal(t, []int{7, 5, 9}, ids())
	pending, _, err = lib.Pending(ctx, model.PlacementFavourite)
	require.NoError(t, err)
	assert.Empty(t, pending)
	pending, _, err = lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.Contains(t, pending, 2)
}

func TestFavouritesView_Empty(t *testing.T) {
	catalog := newFakeCatalog(3)
	lib, _ := newTestLibrary(t)

	view := NewFavouritesView(catalog, lib, 600, zerolog.Nop())
	require.NoError(t, view.Load(context.Background()))
	assert.Empty(t, view.Cards())
	assert.Equal(t, model.LoadStateExhausted, view.State())
	assert.Empty(t, catalog.calls, "no ids means no request")
}
