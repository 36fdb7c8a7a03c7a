package gallery

import (
	"fmt"

	"github.com/ytget/art-gallery/internal/model"
)

// Storage keys
const (
	KeyLiked      = "liked"
	KeyFavourited = "favourited"
)

// ReloadAll is the reload list entry meaning every visible item is stale
const ReloadAll = "*"

// ReloadKey returns the storage key of the placement's reload list
func ReloadKey(p model.Placement) (string, error) {
	if !p.HasReloadList() {
		return "", fmt.Errorf("placement %s has no reload list", p)
	}
	return "reload-" + p.String() + "-card", nil
}

// reloadKeys lists the keys of every reload list
func reloadKeys() []string {
	keys := make([]string, 0, len(model.ListPlacements))
	for _, p := range model.ListPlacements {
		key, _ := ReloadKey(p)
		keys = append(keys, key)
	}
	return keys
}
