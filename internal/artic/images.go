package artic

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/art-gallery/internal/model"
)

// IIIF size segments
const (
	ThumbWidth = 843
	ShareWidth = 1920
)

// maxImageBytes caps a single downloaded image
const maxImageBytes = 32 << 20

// ImageURL returns a JPEG of exactly width x height
func (c *Client) ImageURL(imageID string, width, height int) string {
	return fmt.Sprintf("%s/%s/full/%d,%d/0/default.jpg", c.iiifURL, imageID, width, height)
}

// ThumbURL returns the grid thumbnail, width bound only
func (c *Client) ThumbURL(imageID string) string {
	return c.widthURL(imageID, ThumbWidth)
}

// ShareURL returns the large image handed out when sharing
func (c *Client) ShareURL(imageID string) string {
	return c.widthURL(imageID, ShareWidth)
}

func (c *Client) widthURL(imageID string, width int) string {
	return c.iiifURL + "/" + imageID + "/full/" + strconv.Itoa(width) + ",/0/default.jpg"
}

// ImageInfo returns the full-resolution size from the IIIF info document
func (c *Client) ImageInfo(ctx context.Context, imageID string) (model.ImageSize, error) {
	if imageID == "" {
		return model.ImageSize{}, fmt.Errorf("image info: empty image id")
	}
	var size model.ImageSize
	if err := c.getJSON(ctx, c.iiifURL+"/"+imageID+"/info.json", false, &size); err != nil {
		return model.ImageSize{}, fmt.Errorf("image info %s: %w", imageID, err)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return model.ImageSize{}, fmt.Errorf("image info %s: missing dimensions", imageID)
	}
	return size, nil
}

// OpenImage starts an image download. size is -1 when the server does not
// report a length. The caller closes the body.
func (c *Client) OpenImage(ctx context.Context, url string) (body io.ReadCloser, size int64, err error) {
	resp, err := c.get(ctx, url, false)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch image: %w", err)
	}
	return resp.Body, resp.ContentLength, nil
}

// FetchImage downloads image bytes for rendering
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	body, _, err := c.OpenImage(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

// PrepareCards looks up the size of every artwork image and returns cards
// sized for width, in input order. Artworks without an image, or whose
// lookup fails, are dropped.
func (c *Client) PrepareCards(ctx context.Context, artworks []model.Artwork, width int) ([]model.Card, error) {
	results := make([]*model.Card, len(artworks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.imageConcurrency)

	for i, a := range artworks {
		if !a.HasImage() {
			continue
		}
		g.Go(func() error {
			size, err := c.ImageInfo(gctx, a.ImageID)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				// A failed lookup drops this artwork only
				c.log.Warn().Err(err).Int("artwork_id", a.ID).Msg("dropping artwork without image info")
				return nil
			}
			height := size.ScaledHeight(width)
			results[i] = &model.Card{
				Artwork: a,
				Image:   c.ImageURL(a.ImageID, width, height),
				Height:  height,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cards := make([]model.Card, 0, len(artworks))
	for _, card := range results {
		if card != nil {
			cards = append(cards, *card)
		}
	}
	return cards, nil
}
