package gallery

import (
	"context"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/model"
)

// Feed sizes of the original screens
const (
	DefaultPageSize     = 20
	DefaultGridPageSize = 24
	ArtistArtworksLimit = 20
)

// maxSearchWindow is the deepest result the search endpoint will page to
const maxSearchWindow = 10000

// CardKey identifies cards for feed de-duplication
func CardKey(c model.Card) string { return c.Key() }

// ArtworkKey identifies artworks for feed de-duplication
func ArtworkKey(a model.Artwork) string { return a.Key() }

// ExploreFeed pages through the public artwork listing as sized cards
func ExploreFeed(catalog artic.Catalog, width, pageSize int) *Feed[model.Card] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	fetch := func(ctx context.Context, page int) (Page[model.Card], error) {
		artworks, pagination, err := catalog.ListArtworks(ctx, page, pageSize, artic.FeedFields)
		if err != nil {
			return Page[model.Card]{}, err
		}
		cards, err := catalog.PrepareCards(ctx, artworks, width)
		if err != nil {
			return Page[model.Card]{}, err
		}
		return Page[model.Card]{
			Items: cards,
			Total: pagination.Total,
			Last:  len(artworks) == 0 || isLastPage(pagination),
		}, nil
	}
	return NewFeed(fetch, FeedOptions[model.Card]{Key: CardKey})
}

// GridFeed pages through the artwork listing for the thumbnail grid
func GridFeed(catalog artic.Catalog, pageSize int) *Feed[model.Artwork] {
	if pageSize <= 0 {
		pageSize = DefaultGridPageSize
	}
	fetch := func(ctx context.Context, page int) (Page[model.Artwork], error) {
		artworks, pagination, err := catalog.ListArtworks(ctx, page, pageSize, artic.GridFields)
		if err != nil {
			return Page[model.Artwork]{}, err
		}
		withImages := make([]model.Artwork, 0, len(artworks))
		for _, a := range artworks {
			if a.HasImage() {
				withImages = append(withImages, a)
			}
		}
		return Page[model.Artwork]{
			Items: withImages,
			Total: pagination.Total,
			Last:  len(artworks) == 0 || isLastPage(pagination),
		}, nil
	}
	return NewFeed(fetch, FeedOptions[model.Artwork]{Key: ArtworkKey})
}

// SearchFeed pages through search results as sized cards. Loading stops at the
// total the API reports.
func SearchFeed(catalog artic.Catalog, filter, text string, width, pageSize int) *Feed[model.Card] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if filter == "" {
		filter = model.DefaultFilterKey
	}
	fetch := func(ctx context.Context, page int) (Page[model.Card], error) {
		artworks, pagination, err := catalog.SearchArtworks(ctx, artic.Query{
			Filter: filter,
			Text:   text,
			Page:   page,
			Limit:  pageSize,
		})
		if err != nil {
			return Page[model.Card]{}, err
		}
		cards, err := catalog.PrepareCards(ctx, artworks, width)
		if err != nil {
			return Page[model.Card]{}, err
		}
		return Page[model.Card]{
			Items: cards,
			Total: pagination.Total,
			Last: len(artworks) == 0 ||
				isLastPage(pagination) ||
				page*pageSize >= pagination.Total ||
				(page+1)*pageSize > maxSearchWindow,
		}, nil
	}
	return NewFeed(fetch, FeedOptions[model.Card]{Key: CardKey})
}

func isLastPage(p model.Pagination) bool {
	return p.TotalPages > 0 && p.CurrentPage >= p.TotalPages
}
