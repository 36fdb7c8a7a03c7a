package gallery

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/model"
)

// fakeCatalog serves a fixed set of artworks, 1-based ids, every one with an
// image of 1000x500 unless listed in noInfo.
type fakeCatalog struct {
	mu       sync.Mutex
	artworks []model.Artwork
	artists  map[int]model.Artist
	noInfo   map[string]bool
	failPage map[int]error
	calls    []string
}

func newFakeCatalog(n int) *fakeCatalog {
	c := &fakeCatalog{
		artists:  map[int]model.Artist{},
		noInfo:   map[string]bool{},
		failPage: map[int]error{},
	}
	for i := 1; i <= n; i++ {
		c.artworks = append(c.artworks, model.Artwork{
			ID:          i,
			Title:       "Artwork " + strconv.Itoa(i),
			ArtistTitle: "Artist",
			ArtistID:    100,
			ImageID:     "img-" + strconv.Itoa(i),
		})
	}
	return c
}

func (c *fakeCatalog) record(call string) {
	c.mu.Lock()
	c.calls = append(c.calls, call)
	c.mu.Unlock()
}

func (c *fakeCatalog) page(page, limit int) ([]model.Artwork, model.Pagination, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.failPage[page]; ok {
		return nil, model.Pagination{}, err
	}
	total := len(c.artworks)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	totalPages := (total + limit - 1) / limit
	return append([]model.Artwork(nil), c.artworks[start:end]...), model.Pagination{
		Total:       total,
		Limit:       limit,
		Offset:      start,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (c *fakeCatalog) ListArtworks(_ context.Context, page, limit int, _ []string) ([]model.Artwork, model.Pagination, error) {
	c.record(fmt.Sprintf("list %d", page))
	return c.page(page, limit)
}

func (c *fakeCatalog) SearchArtworks(_ context.Context, q artic.Query) ([]model.Artwork, model.Pagination, error) {
	c.record(fmt.Sprintf("search %s=%s %d", q.Filter, q.Text, q.Page))
	return c.page(q.Page, q.Limit)
}

func (c *fakeCatalog) GetArtwork(_ context.Context, id int) (model.Artwork, error) {
	c.record(fmt.Sprintf("get %d", id))
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.artworks {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Artwork{}, artic.ErrNotFound
}

func (c *fakeCatalog) ArtworksByIDs(_ context.Context, ids []int, _ []string) ([]model.Artwork, error) {
	c.record(fmt.Sprintf("ids %v", ids))
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []model.Artwork
	for _, id := range ids {
		for _, a := range c.artworks {
			if a.ID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (c *fakeCatalog) GetArtist(_ context.Context, id int) (model.Artist, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.artists[id]
	if !ok {
		return model.Artist{}, artic.ErrNotFound
	}
	return a, nil
}

func (c *fakeCatalog) ArtistArtworks(_ context.Context, artistID, page, limit int) ([]model.Artwork, model.Pagination, error) {
	c.record(fmt.Sprintf("artist-artworks %d", artistID))
	return c.page(page, limit)
}

func (c *fakeCatalog) ImageInfo(_ context.Context, imageID string) (model.ImageSize, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.noInfo[imageID] {
		return model.ImageSize{}, artic.ErrNotFound
	}
	return model.ImageSize{Width: 1000, Height: 500}, nil
}

func (c *fakeCatalog) PrepareCards(ctx context.Context, artworks []model.Artwork, width int) ([]model.Card, error) {
	var cards []model.Card
	for _, a := range artworks {
		if !a.HasImage() {
			continue
		}
		size, err := c.ImageInfo(ctx, a.ImageID)
		if err != nil {
			continue
		}
		h := size.ScaledHeight(width)
		cards = append(cards, model.Card{Artwork: a, Image: c.ImageURL(a.ImageID, width, h), Height: h})
	}
	return cards, nil
}

func (c *fakeCatalog) FetchImage(_ context.Context, url string) ([]byte, error) {
	return []byte(url), nil
}

func (c *fakeCatalog) OpenImage(_ context.Context, url string) (io.ReadCloser, int64, error) {
	return io.NopCloser(strings.NewReader(url)), int64(len(url)), nil
}

func (c *fakeCatalog) ImageURL(imageID string, width, height int) string {
	return fmt.Sprintf("iiif/%s/full/%d,%d", imageID, width, height)
}

func (c *fakeCatalog) ThumbURL(imageID string) string { return "iiif/" + imageID + "/thumb" }

func (c *fakeCatalog) ShareURL(imageID string) string { return "iiif/" + imageID + "/share" }

var _ artic.Catalog = (*fakeCatalog)(nil)
