package artic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/ytget/art-gallery/internal/config"
	"github.com/ytget/art-gallery/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request headers
const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserAgent = "AIC-User-Agent"
)

// maxIDsPerRequest is the largest ids= list the API accepts
const maxIDsPerRequest = 100

// Client talks to the museum API. It is safe for concurrent use.
type Client struct {
	baseURL          string
	iiifURL          string
	userAgent        string
	http             *http.Client
	limiter          *rate.Limiter
	imageConcurrency int
	log              zerolog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a client from the API section of cfg
func NewClient(cfg *config.Config, log zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if _, err := url.Parse(cfg.API.BaseURL); err != nil || cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("invalid api base url %q", cfg.API.BaseURL)
	}

	rps := cfg.API.RequestsPerSecond
	if rps <= 0 {
		rps = config.DefaultRequestsPerSecond
	}
	burst := max(cfg.API.Burst, 1)

	c := &Client{
		baseURL:          strings.TrimRight(cfg.API.BaseURL, "/"),
		iiifURL:          strings.TrimRight(cfg.API.IIIFURL, "/"),
		userAgent:        cfg.API.UserAgent,
		http:             &http.Client{Timeout: cfg.GetTimeout()},
		limiter:          rate.NewLimiter(rate.Limit(rps), burst),
		imageConcurrency: max(cfg.API.ImageConcurrency, 1),
		log:              log.With().Str("component", "artic").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type listResponse[T any] struct {
	Pagination model.Pagination `json:"pagination"`
	Data       []T              `json:"data"`
}

type itemResponse[T any] struct {
	Data T `json:"data"`
}

// ListArtworks returns one page of the public artwork listing
func (c *Client) ListArtworks(ctx context.Context, page, limit int, fields []string) ([]model.Artwork, model.Pagination, error) {
	if len(fields) == 0 {
		fields = FeedFields
	}
	var resp listResponse[model.Artwork]
	if err := c.getJSON(ctx, c.apiURL("/artworks", pageValues(page, limit, fields)), true, &resp); err != nil {
		return nil, model.Pagination{}, fmt.Errorf("list artworks page %d: %w", page, err)
	}
	return resp.Data, resp.Pagination, nil
}

// SearchArtworks runs a filtered or full-text search
func (c *Client) SearchArtworks(ctx context.Context, q Query) ([]model.Artwork, model.Pagination, error) {
	if len(q.Fields) == 0 {
		q.Fields = FeedFields
	}
	var resp listResponse[model.Artwork]
	if err := c.getJSON(ctx, c.apiURL("/artworks/search", q.Values()), true, &resp); err != nil {
		return nil, model.Pagination{}, fmt.Errorf("search artworks %s=%q: %w", q.Filter, q.Text, err)
	}
	return resp.Data, resp.Pagination, nil
}

// GetArtwork returns the full record of one artwork
func (c *Client) GetArtwork(ctx context.Context, id int) (model.Artwork, error) {
	v := url.Values{}
	v.Set("fields", strings.Join(DetailFields, ","))
	var resp itemResponse[model.Artwork]
	if err := c.getJSON(ctx, c.apiURL("/artworks/"+strconv.Itoa(id), v), true, &resp); err != nil {
		return model.Artwork{}, fmt.Errorf("get artwork %d: %w", id, err)
	}
	return resp.Data, nil
}

// ArtworksByIDs fetches artworks by id, returned in the order of ids.
// Ids the API does not know are skipped.
func (c *Client) ArtworksByIDs(ctx context.Context, ids []int, fields []string) ([]model.Artwork, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(fields) == 0 {
		fields = FeedFields
	}

	byID := make(map[int]model.Artwork, len(ids))
	for start := 0; start < len(ids); start += maxIDsPerRequest {
		chunk := ids[start:min(start+maxIDsPerRequest, len(ids))]

		v := pageValues(1, len(chunk), fields)
		v.Set("ids", joinIDs(chunk))

		var resp listResponse[model.Artwork]
		if err := c.getJSON(ctx, c.apiURL("/artworks", v), true, &resp); err != nil {
			return nil, fmt.Errorf("get artworks by ids: %w", err)
		}
		for _, a := range resp.Data {
			byID[a.ID] = a
		}
	}

	artworks := make([]model.Artwork, 0, len(byID))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			artworks = append(artworks, a)
			delete(byID, id)
		}
	}
	return artworks, nil
}

// GetArtist returns an artist (agent) record
func (c *Client) GetArtist(ctx context.Context, id int) (model.Artist, error) {
	v := url.Values{}
	v.Set("fields", strings.Join(ArtistFields, ","))
	var resp itemResponse[model.Artist]
	if err := c.getJSON(ctx, c.apiURL("/artists/"+strconv.Itoa(id), v), true, &resp); err != nil {
		return model.Artist{}, fmt.Errorf("get artist %d: %w", id, err)
	}
	return resp.Data, nil
}

// ArtistArtworks returns artworks attributed to the artist
func (c *Client) ArtistArtworks(ctx context.Context, artistID, page, limit int) ([]model.Artwork, model.Pagination, error) {
	return c.SearchArtworks(ctx, Query{
		Filter: ArtistIDFilter,
		Text:   strconv.Itoa(artistID),
		Page:   page,
		Limit:  limit,
	})
}

func (c *Client) apiURL(path string, v url.Values) string {
	if len(v) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + v.Encode()
}

// getJSON performs a GET and decodes the JSON body into out
func (c *Client) getJSON(ctx context.Context, rawURL string, limited bool, out any) error {
	resp, err := c.get(ctx, rawURL, limited)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// get performs a GET, turning non-2xx responses into *APIError. Limited
// requests wait for the API rate limiter first.
func (c *Client) get(ctx context.Context, rawURL string, limited bool) (*http.Response, error) {
	if limited {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set(HeaderUserAgent, c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("request_id", requestID).Str("url", rawURL).Msg("request failed")
		return nil, err
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{Status: resp.StatusCode, URL: rawURL, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}
