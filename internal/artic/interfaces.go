package artic

import (
	"context"
	"io"

	"github.com/ytget/art-gallery/internal/model"
)

// Catalog defines the interface for the museum API client.
type Catalog interface {
	ListArtworks(ctx context.Context, page, limit int, fields []string) ([]model.Artwork, model.Pagination, error)
	SearchArtworks(ctx context.Context, q Query) ([]model.Artwork, model.Pagination, error)
	GetArtwork(ctx context.Context, id int) (model.Artwork, error)
	ArtworksByIDs(ctx context.Context, ids []int, fields []string) ([]model.Artwork, error)
	GetArtist(ctx context.Context, id int) (model.Artist, error)
	ArtistArtworks(ctx context.Context, artistID, page, limit int) ([]model.Artwork, model.Pagination, error)

	// PrepareCards sizes artwork images for a feed of the given width
	PrepareCards(ctx context.Context, artworks []model.Artwork, width int) ([]model.Card, error)
	ImageInfo(ctx context.Context, imageID string) (model.ImageSize, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
	OpenImage(ctx context.Context, url string) (io.ReadCloser, int64, error)

	ImageURL(imageID string, width, height int) string
	ThumbURL(imageID string) string
	ShareURL(imageID string) string
}
