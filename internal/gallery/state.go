package gallery

import (
	"context"
	"sync"

	"github.com/ytget/art-gallery/internal/model"
)

// ArtworkState tracks the liked and favourited flags of one rendered artwork
type ArtworkState struct {
	lib       *Library
	placement model.Placement
	id        int

	mu        sync.Mutex
	liked     bool
	favourite bool
	onChange  func(liked, favourite bool)
}

// NewArtworkState creates the state of artwork id rendered on placement
func NewArtworkState(lib *Library, placement model.Placement, id int) *ArtworkState {
	return &ArtworkState{lib: lib, placement: placement, id: id}
}

// ID returns the artwork id
func (s *ArtworkState) ID() int { return s.id }

// SetOnChange sets the callback invoked whenever a flag may have changed
func (s *ArtworkState) SetOnChange(fn func(liked, favourite bool)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Load reads both flags from the library
func (s *ArtworkState) Load(ctx context.Context) error {
	liked, err := s.lib.IsLiked(ctx, s.id)
	if err != nil {
		return err
	}
	favourite, err := s.lib.IsFavourite(ctx, s.id)
	if err != nil {
		return err
	}
	s.update(func() {
		s.liked = liked
		s.favourite = favourite
	})
	return nil
}

// Liked returns the cached liked flag
func (s *ArtworkState) Liked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked
}

// Favourite returns the cached favourited flag
func (s *ArtworkState) Favourite() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favourite
}

// ToggleLike flips the liked flag and persists it
func (s *ArtworkState) ToggleLike(ctx context.Context) (bool, error) {
	on, err := s.lib.ToggleLiked(ctx, s.placement, s.id)
	if err != nil {
		return s.Liked(), err
	}
	s.update(func() { s.liked = on })
	return on, nil
}

// ToggleFavourite flips the favourited flag and persists it
func (s *ArtworkState) ToggleFavourite(ctx context.Context) (bool, error) {
	on, err := s.lib.ToggleFavourite(ctx, s.placement, s.id)
	if err != nil {
		return s.Favourite(), err
	}
	s.update(func() { s.favourite = on })
	return on, nil
}

// DoubleTap likes the artwork; a second double tap keeps it liked
func (s *ArtworkState) DoubleTap(ctx context.Context) error {
	if _, err := s.lib.Like(ctx, s.placement, s.id); err != nil {
		return err
	}
	s.update(func() { s.liked = true })
	return nil
}

func (s *ArtworkState) update(fn func()) {
	s.mu.Lock()
	fn()
	liked, favourite, cb := s.liked, s.favourite, s.onChange
	s.mu.Unlock()
	if cb != nil {
		cb(liked, favourite)
	}
}

// FocusSync runs when a list screen regains focus: one Sync call covering all
// visible artworks, then a flag reload for each stale one. It returns the
// stale ids.
func FocusSync(ctx context.Context, lib *Library, placement model.Placement, states []*ArtworkState) ([]int, error) {
	if len(states) == 0 {
		// An empty screen still consumes a pending reload-all
		_, err := lib.Sync(ctx, placement, nil)
		return nil, err
	}

	visible := make([]int, len(states))
	for i, s := range states {
		visible[i] = s.id
	}

	stale, err := lib.Sync(ctx, placement, visible)
	if err != nil || len(stale) == 0 {
		return nil, err
	}

	staleSet := make(map[int]struct{}, len(stale))
	for _, id := range stale {
		staleSet[id] = struct{}{}
	}
	for _, s := range states {
		if _, ok := staleSet[s.id]; !ok {
			continue
		}
		if err := s.Load(ctx); err != nil {
			return stale, err
		}
	}
	return stale, nil
}
