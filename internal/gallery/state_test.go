package gallery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/art-gallery/internal/model"
)

func TestArtworkState_Toggles(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	state := NewArtworkState(lib, model.PlacementExplore, 12)
	require.NoError(t, state.Load(ctx))
	assert.False(t, state.Liked())
	assert.False(t, state.Favourite())

	var last [2]bool
	calls := 0
	state.SetOnChange(func(liked, favourite bool) {
		last = [2]bool{liked, favourite}
		calls++
	})

	on, err := state.ToggleLike(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, [2]bool{true, false}, last)

	on, err = state.ToggleFavourite(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, [2]bool{true, true}, last)
	assert.Equal(t, 2, calls)

	favourite, err := lib.IsFavourite(ctx, 12)
	require.NoError(t, err)
	assert.True(t, favourite)
}

func TestArtworkState_DoubleTapOnlyLikes(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)
	state := NewArtworkState(lib, model.PlacementSearch, 3)

	require.NoError(t, state.DoubleTap(ctx))
	require.NoError(t, state.DoubleTap(ctx))
	assert.True(t, state.Liked())

	liked, err := lib.IsLiked(ctx, 3)
	require.NoError(t, err)
	assert.True(t, liked)

	// Only the first double tap changed anything, so only one notification
	pending, _, err := lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, pending)
}

func TestFocusSync(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	explore := []*ArtworkState{
		NewArtworkState(lib, model.PlacementExplore, 1),
		NewArtworkState(lib, model.PlacementExplore, 2),
		NewArtworkState(lib, model.PlacementExplore, 3),
	}
	for _, s := range explore {
		require.NoError(t, s.Load(ctx))
	}

	// The detail page likes 2 and favourites 4, which explore does not show
	detail := NewArtworkState(lib, model.PlacementDetail, 2)
	_, err := detail.ToggleLike(ctx)
	require.NoError(t, err)
	_, err = lib.SetFavourite(ctx, model.PlacementDetail, 4, true)
	require.NoError(t, err)

	assert.False(t, explore[1].Liked(), "stale until focus")

	stale, err := FocusSync(ctx, lib, model.PlacementExplore, explore)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, stale)
	assert.True(t, explore[1].Liked())

	pending, _, err := lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, pending, "ids not on screen stay queued")

	stale, err = FocusSync(ctx, lib, model.PlacementExplore, explore)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestFocusSync_AfterClear(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t)

	states := []*ArtworkState{NewArtworkState(lib, model.PlacementSearch, 5)}
	_, err := states[0].ToggleFavourite(ctx)
	require.NoError(t, err)
	require.True(t, states[0].Favourite())

	require.NoError(t, lib.Clear(ctx))

	stale, err := FocusSync(ctx, lib, model.PlacementSearch, states)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, stale)
	assert.False(t, states[0].Favourite())
}
