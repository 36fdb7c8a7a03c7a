package gallery

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/art-gallery/internal/model"
	"github.com/ytget/art-gallery/internal/storage"
)

func newTestLibrary(t *testing.T) (*Library, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	t.Cleanup(func() { _ = store.Close() })
	return NewLibrary(store, zerolog.Nop()), store
}

func TestLibrary_SetLikedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	lib, store := newTestLibrary(t)

	changed, err := lib.SetLiked(ctx, model.PlacementExplore, 7, true)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = lib.SetLiked(ctx, model.PlacementExplore, 7, true)
	require.NoError(t, err)
	assert.False(t, changed)

	raw, ok, err := store.Get(ctx, KeyLiked)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["7"]`, raw)

	liked, err := lib.IsLiked(ctx, 7)
	require.NoError(t, err)
	assert.True(t, liked)

	favourite, err := lib.IsFavourite(ctx, 7)
	require.NoError(t, err)
	assert.False(t, favourite)
}

func TestLibrary_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	for _, id := range []int{30, 10, 20} {
		_, err := lib.SetFavourite(ctx, model.PlacementDetail, id, true)
		require.NoError(t, err)
	}
	_, err := lib.SetFavourite(ctx, model.PlacementDetail, 10, false)
	require.NoError(t, err)

	ids, err := lib.Favourites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 20}, ids)
}

func TestLibrary_NotifiesSiblings(t *testing.T) {
	tests := []struct {
		origin   model.Placement
		notified []model.Placement
		skipped  []model.Placement
	}{
		{model.PlacementExplore, []model.Placement{model.PlacementSearch, model.PlacementFavourite}, []model.Placement{model.PlacementExplore}},
		{model.PlacementSearch, []model.Placement{model.PlacementExplore, model.PlacementFavourite}, []model.Placement{model.PlacementSearch}},
		{model.PlacementFavourite, []model.Placement{model.PlacementExplore, model.PlacementSearch}, []model.Placement{model.PlacementFavourite}},
		{model.PlacementDetail, model.ListPlacements, nil},
	}

	for _, tt := range tests {
		t.Run(tt.origin.String(), func(t *testing.T) {
			ctx := context.Background()
			lib, _ := newTestLibrary(t)

			_, err := lib.ToggleFavourite(ctx, tt.origin, 42)
			require.NoError(t, err)

			for _, p := range tt.notified {
				pending, all, err := lib.Pending(ctx, p)
				require.NoError(t, err)
				assert.False(t, all)
				assert.Equal(t, []int{42}, pending, "placement %s", p)
			}
			for _, p := range tt.skipped {
				pending, _, err := lib.Pending(ctx, p)
				require.NoError(t, err)
				assert.Empty(t, pending, "placement %s", p)
			}
		})
	}
}

func TestLibrary_NoNotificationWithoutChange(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	changed, err := lib.SetLiked(ctx, model.PlacementDetail, 5, false)
	require.NoError(t, err)
	assert.False(t, changed)

	pending, _, err := lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestLibrary_ReloadListDeduplicates(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	_, err := lib.ToggleLiked(ctx, model.PlacementDetail, 9)
	require.NoError(t, err)
	_, err = lib.ToggleLiked(ctx, model.PlacementDetail, 9)
	require.NoError(t, err)
	require.NoError(t, lib.MarkReload(ctx, model.PlacementExplore, 9, 9))

	pending, _, err := lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.Equal(t, []int{9}, pending)
}

func TestLibrary_Toggle(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	on, err := lib.ToggleLiked(ctx, model.PlacementSearch, 3)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = lib.ToggleLiked(ctx, model.PlacementSearch, 3)
	require.NoError(t, err)
	assert.False(t, on)

	liked, err := lib.Liked(ctx)
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestLibrary_LikeNeverRemoves(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	for i := 0; i < 3; i++ {
		_, err := lib.Like(ctx, model.PlacementExplore, 11)
		require.NoError(t, err)
	}

	liked, err := lib.IsLiked(ctx, 11)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLibrary_SyncRemovesOnlyVisible(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	require.NoError(t, lib.MarkReload(ctx, model.PlacementExplore, 1, 2, 3))

	stale, err := lib.Sync(ctx, model.PlacementExplore, []int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, stale)

	pending, _, err := lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, pending)

	// Nothing visible is queued
	stale, err = lib.Sync(ctx, model.PlacementExplore, []int{5})
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestLibrary_SyncRejectsDetail(t *testing.T) {
	lib, _ := newTestLibrary(t)

	_, err := lib.Sync(context.Background(), model.PlacementDetail, []int{1})
	assert.Error(t, err)
	assert.Error(t, lib.MarkReload(context.Background(), model.PlacementDetail, 1))
}

func TestLibrary_Clear(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	_, err := lib.SetLiked(ctx, model.PlacementExplore, 1, true)
	require.NoError(t, err)
	_, err = lib.SetFavourite(ctx, model.PlacementExplore, 2, true)
	require.NoError(t, err)

	require.NoError(t, lib.Clear(ctx))

	liked, err := lib.Liked(ctx)
	require.NoError(t, err)
	assert.Empty(t, liked)
	favourites, err := lib.Favourites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favourites)

	for _, p := range model.ListPlacements {
		pending, all, err := lib.Pending(ctx, p)
		require.NoError(t, err)
		assert.True(t, all, "placement %s should reload everything", p)
		assert.Empty(t, pending)
	}

	stale, err := lib.Sync(ctx, model.PlacementExplore, []int{1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, stale)

	_, all, err := lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.False(t, all, "sync should consume reload-all")
}

func TestLibrary_ReadsLegacyAndCorruptValues(t *testing.T) {
	ctx := context.Background()
	lib, store := newTestLibrary(t)

	key, err := ReloadKey(model.PlacementFavourite)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, key, `[null]`))
	_, all, err := lib.Pending(ctx, model.PlacementFavourite)
	require.NoError(t, err)
	assert.True(t, all)

	require.NoError(t, store.Set(ctx, KeyLiked, `[4, "5"]`))
	liked, err := lib.Liked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, liked)

	require.NoError(t, store.Set(ctx, KeyFavourited, `{not json`))
	favourites, err := lib.Favourites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favourites)

	// A corrupt list is rewritten on the next change
	_, err = lib.SetFavourite(ctx, model.PlacementDetail, 8, true)
	require.NoError(t, err)
	favourites, err = lib.Favourites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, favourites)
}

func TestReloadKey(t *testing.T) {
	tests := []struct {
		placement model.Placement
		expected  string
	}{
		{model.PlacementExplore, "reload-explore-card"},
		{model.PlacementSearch, "reload-search-card"},
		{model.PlacementFavourite, "reload-favourite-card"},
	}

	for _, tt := range tests {
		key, err := ReloadKey(tt.placement)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, key)
	}

	_, err := ReloadKey(model.PlacementDetail)
	assert.Error(t, err)
}
