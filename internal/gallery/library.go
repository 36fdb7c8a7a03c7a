package gallery

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/ytget/art-gallery/internal/model"
	"github.com/ytget/art-gallery/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Library persists the liked and favourited sets and the reload lists.
// Every read-modify-write of a list happens under one mutex.
type Library struct {
	mu    sync.Mutex
	store storage.Store
	log   zerolog.Logger
}

// NewLibrary creates a library over store
func NewLibrary(store storage.Store, log zerolog.Logger) *Library {
	return &Library{
		store: store,
		log:   log.With().Str("component", "library").Logger(),
	}
}

// IsLiked reports whether the artwork is in the liked set
func (l *Library) IsLiked(ctx context.Context, id int) (bool, error) {
	return l.contains(ctx, KeyLiked, id)
}

// IsFavourite reports whether the artwork is in the favourited set
func (l *Library) IsFavourite(ctx context.Context, id int) (bool, error) {
	return l.contains(ctx, KeyFavourited, id)
}

// Liked returns liked artwork ids in the order they were added
func (l *Library) Liked(ctx context.Context) ([]int, error) {
	return l.ids(ctx, KeyLiked)
}

// Favourites returns favourited artwork ids in the order they were added
func (l *Library) Favourites(ctx context.Context) ([]int, error) {
	return l.ids(ctx, KeyFavourited)
}

// SetLiked adds or removes id from the liked set. When the set changes, id is
// queued on the reload list of every list screen other than origin.
func (l *Library) SetLiked(ctx context.Context, origin model.Placement, id int, on bool) (bool, error) {
	return l.setMember(ctx, KeyLiked, origin, id, on)
}

// SetFavourite adds or removes id from the favourited set, queueing reloads
// like SetLiked.
func (l *Library) SetFavourite(ctx context.Context, origin model.Placement, id int, on bool) (bool, error) {
	return l.setMember(ctx, KeyFavourited, origin, id, on)
}

// ToggleLiked flips the liked state and returns the new one
func (l *Library) ToggleLiked(ctx context.Context, origin model.Placement, id int) (bool, error) {
	return l.toggle(ctx, KeyLiked, origin, id)
}

// ToggleFavourite flips the favourited state and returns the new one
func (l *Library) ToggleFavourite(ctx context.Context, origin model.Placement, id int) (bool, error) {
	return l.toggle(ctx, KeyFavourited, origin, id)
}

// Like marks the artwork liked. Unlike a toggle it never removes.
func (l *Library) Like(ctx context.Context, origin model.Placement, id int) (bool, error) {
	return l.SetLiked(ctx, origin, id, true)
}

// MarkReload queues ids on the target's reload list
func (l *Library) MarkReload(ctx context.Context, target model.Placement, ids ...int) error {
	key, err := ReloadKey(target)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.appendLocked(ctx, key, ids)
}

// Sync is called when target regains focus. It returns the visible ids that
// are queued on target's reload list and removes exactly those from it; ids
// not visible stay queued. A ReloadAll entry returns every visible id and
// empties the list.
func (l *Library) Sync(ctx context.Context, target model.Placement, visible []int) ([]int, error) {
	key, err := ReloadKey(target)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	queued, err := l.readLocked(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(queued) == 0 {
		return nil, nil
	}

	stale := make([]int, 0, len(visible))
	if slices.Contains(queued, ReloadAll) {
		for _, id := range visible {
			if !slices.Contains(stale, id) {
				stale = append(stale, id)
			}
		}
		l.log.Debug().Str("placement", target.String()).Int("stale", len(stale)).Msg("reload all")
		return stale, l.writeLocked(ctx, key, []string{})
	}

	for _, id := range visible {
		if slices.Contains(queued, strconv.Itoa(id)) && !slices.Contains(stale, id) {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}

	remaining := slices.DeleteFunc(queued, func(s string) bool {
		id, err := strconv.Atoi(s)
		return err == nil && slices.Contains(stale, id)
	})
	l.log.Debug().Str("placement", target.String()).Ints("stale", stale).Int("remaining", len(remaining)).Msg("reload synced")
	return stale, l.writeLocked(ctx, key, remaining)
}

// Pending returns the ids queued for target and whether a ReloadAll is queued
func (l *Library) Pending(ctx context.Context, target model.Placement) ([]int, bool, error) {
	key, err := ReloadKey(target)
	if err != nil {
		return nil, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	queued, err := l.readLocked(ctx, key)
	if err != nil {
		return nil, false, err
	}
	all := slices.Contains(queued, ReloadAll)
	return l.toIDs(key, queued), all, nil
}

// Clear removes the liked and favourited sets and every reload list, then
// marks every list screen stale so each rereads its state on next focus.
func (l *Library) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	for _, key := range reloadKeys() {
		if err := l.writeLocked(ctx, key, []string{ReloadAll}); err != nil {
			return err
		}
	}
	l.log.Info().Msg("temporary data removed")
	return nil
}

func (l *Library) contains(ctx context.Context, key string, id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list, err := l.readLocked(ctx, key)
	if err != nil {
		return false, err
	}
	return slices.Contains(list, strconv.Itoa(id)), nil
}

func (l *Library) ids(ctx context.Context, key string) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list, err := l.readLocked(ctx, key)
	if err != nil {
		return nil, err
	}
	return l.toIDs(key, list), nil
}

func (l *Library) toggle(ctx context.Context, key string, origin model.Placement, id int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list, err := l.readLocked(ctx, key)
	if err != nil {
		return false, err
	}
	on := !slices.Contains(list, strconv.Itoa(id))
	if _, err := l.setMemberLocked(ctx, key, list, origin, id, on); err != nil {
		return !on, err
	}
	return on, nil
}

func (l *Library) setMember(ctx context.Context, key string, origin model.Placement, id int, on bool) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list, err := l.readLocked(ctx, key)
	if err != nil {
		return false, err
	}
	return l.setMemberLocked(ctx, key, list, origin, id, on)
}

func (l *Library) setMemberLocked(ctx context.Context, key string, list []string, origin model.Placement, id int, on bool) (bool, error) {
	sid := strconv.Itoa(id)
	has := slices.Contains(list, sid)
	if has == on {
		return false, nil
	}

	if on {
		list = append(list, sid)
	} else {
		list = slices.DeleteFunc(list, func(s string) bool { return s == sid })
	}
	if err := l.writeLocked(ctx, key, list); err != nil {
		return false, err
	}

	for _, sibling := range origin.Siblings() {
		reloadKey, _ := ReloadKey(sibling)
		if err := l.appendLocked(ctx, reloadKey, []int{id}); err != nil {
			return true, err
		}
	}

	l.log.Debug().Str("list", key).Int("artwork_id", id).Bool("on", on).Str("origin", origin.String()).Msg("library changed")
	return true, nil
}

func (l *Library) appendLocked(ctx context.Context, key string, ids []int) error {
	list, err := l.readLocked(ctx, key)
	if err != nil {
		return err
	}
	changed := false
	for _, id := range ids {
		sid := strconv.Itoa(id)
		if !slices.Contains(list, sid) {
			list = append(list, sid)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return l.writeLocked(ctx, key, list)
}

// readLocked decodes a stored JSON array. Null entries, written by older
// clients to mean "reload everything", read as ReloadAll. Corrupt values read
// as an empty list.
func (l *Library) readLocked(ctx context.Context, key string) ([]string, error) {
	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var values []any
	if err := json.UnmarshalFromString(raw, &values); err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("ignoring corrupt list")
		return nil, nil
	}

	list := make([]string, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case nil:
			list = append(list, ReloadAll)
		case string:
			list = append(list, v)
		case float64:
			list = append(list, strconv.FormatInt(int64(v), 10))
		default:
			l.log.Warn().Str("key", key).Interface("value", v).Msg("ignoring unexpected list entry")
		}
	}
	return list, nil
}

func (l *Library) writeLocked(ctx context.Context, key string, list []string) error {
	if list == nil {
		list = []string{}
	}
	raw, err := json.MarshalToString(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (l *Library) toIDs(key string, list []string) []int {
	ids := make([]int, 0, len(list))
	for _, s := range list {
		if s == ReloadAll {
			continue
		}
		id, err := strconv.Atoi(s)
		if err != nil {
			l.log.Warn().Str("key", key).Str("value", s).Msg("ignoring non-numeric id")
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
