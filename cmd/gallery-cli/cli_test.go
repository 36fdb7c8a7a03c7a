package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/art-gallery/internal/config"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
	"github.com/ytget/art-gallery/internal/platform"
	"github.com/ytget/art-gallery/internal/storage"
)

const (
	listBody = `{"pagination":{"total":2,"limit":20,"offset":0,"total_pages":1,"current_page":1},
		"data":[{"id":1,"title":"Water Lilies","artist_title":"Claude Monet","image_id":"img-1"},
		        {"id":2,"title":"Nighthawks","artist_title":"Edward Hopper","image_id":"img-2"}]}`
	detailBody = `{"data":{"id":1,"title":"Water Lilies","artist_title":"Claude Monet","artist_id":35809,
		"description":"<p>Pond at Giverny.</p>","subject_titles":["water","flowers"],"image_id":"img-1",
		"date_display":"1906","medium_display":"Oil on canvas"}}`
	infoBody = `{"width":1000,"height":500}`
)

// galleryAPI serves the few routes the commands touch
func galleryAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/artworks", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listBody))
	})
	mux.HandleFunc("/api/v1/artworks/search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listBody))
	})
	mux.HandleFunc("/api/v1/artworks/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(detailBody))
	})
	mux.HandleFunc("/iiif/2/img-1/info.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(infoBody))
	})
	mux.HandleFunc("/iiif/2/img-1/full/1920,/0/default.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("JPEG:img-1"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type cliHarness struct {
	t     *testing.T
	store string
	cfg   string
}

func newHarness(t *testing.T) *cliHarness {
	srv := galleryAPI(t)
	t.Setenv("ART_GALLERY_API_URL", srv.URL+"/api/v1")
	t.Setenv("ART_GALLERY_IIIF_URL", srv.URL+"/iiif/2")
	t.Setenv("ART_GALLERY_RPS", "1000")

	dir := t.TempDir()
	return &cliHarness{
		t:     t,
		store: filepath.Join(dir, "gallery.db"),
		cfg:   filepath.Join(dir, "config.yaml"),
	}
}

// run executes one command with a fresh command tree
func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()
	return h.exec(append([]string{"--store", h.store}, args...)...)
}

// exec runs a command without pinning the store path
func (h *cliHarness) exec(args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	e := &env{}
	defer e.close()
	cmd := newRootCmd(e)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", h.cfg, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestExploreListsArtworks(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("explore")
	require.NoError(t, err)
	assert.Contains(t, out, "page 1 of 1, 2 artworks")
	assert.Contains(t, out, "Water Lilies")
	assert.Contains(t, out, "Edward Hopper")
}

func TestLikeShowsUpInListings(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("like", "1")
	require.NoError(t, err)
	assert.Equal(t, "like 1: done\n", out)

	out, err = h.run("like", "1")
	require.NoError(t, err)
	assert.Equal(t, "like 1: unchanged\n", out)

	out, err = h.run("liked")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = h.run("explore")
	require.NoError(t, err)
	assert.Contains(t, out, "♥")

	// Detail mutations notify every list screen
	for _, p := range []string{"explore", "search", "favourite"} {
		out, err = h.run("pending", p)
		require.NoError(t, err)
		assert.Equal(t, "1\n", out, "placement %s", p)
	}
}

func TestFavouritesJSON(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("fav", "2", "1")
	require.NoError(t, err)

	out, err := h.run("--json", "favourites")
	require.NoError(t, err)
	assert.JSONEq(t, `[2, 1]`, out)

	out, err = h.run("favourites", "--details")
	require.NoError(t, err)
	assert.Contains(t, out, "Nighthawks")
}

func TestClearRequiresConfirmation(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("like", "1")
	require.NoError(t, err)

	_, err = h.run("clear")
	require.Error(t, err)

	out, err := h.run("clear", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "library cleared\n", out)

	out, err = h.run("liked")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = h.run("pending", "explore")
	require.NoError(t, err)
	assert.Equal(t, "*\n", out)
}

func TestShowPrintsDetailRows(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("show", "1", "--width", "600")
	require.NoError(t, err)
	assert.Contains(t, out, "Artist")
	assert.Contains(t, out, "gallery-cli artist 35809")
	assert.Contains(t, out, "#water #flowers")
	assert.Contains(t, out, "Pond at Giverny.")
	assert.Contains(t, out, "/img-1/full/600,300/0/default.jpg")
}

func TestSearchRejectsUnknownFilter(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("search", "--filter", "colour", "blue")
	require.Error(t, err)

	out, err := h.run("search", "--filter", "artist", "monet")
	require.NoError(t, err)
	assert.Contains(t, out, "Claude Monet")
}

func TestFiltersAndPlacements(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("filters")
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out, "\n"))

	_, err = h.run("pending", "detail")
	require.Error(t, err)

	_, err = h.run("pending", "nowhere")
	require.Error(t, err)
}

func TestResolveFilter(t *testing.T) {
	tests := []struct {
		in, expect string
	}{
		{"default", "default"},
		{"Artist", "artist_title"},
		{"place_of_origin", "place_of_origin"},
		{"DATE", "date_display"},
	}
	for _, tt := range tests {
		got, err := resolveFilter(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.expect, got)
	}
}

func TestSaveWritesImage(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	out, err := h.run("save", "--dir", dir, "1")
	require.NoError(t, err)

	path := filepath.Join(dir, "1-water-lilies.jpg")
	assert.Equal(t, "1: "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "JPEG:img-1", string(data))
}

func TestSaveUnknownArtwork(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("save", "--dir", t.TempDir(), "404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestDesktopSQLiteLibrarySeesCLIChanges(t *testing.T) {
	h := newHarness(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AppData", filepath.Join(home, "AppData"))

	_, err := h.exec("like", "7")
	require.NoError(t, err)

	// The desktop app with sqlite storage resolves the same default file
	settings := config.NewSettings(test.NewTempApp(t))
	settings.SetStorageDriver(config.DriverSQLite)
	cfg := settings.Config()
	require.NoError(t, cfg.DefaultStorePath(platform.DefaultStorePath))
	require.NoError(t, cfg.Validate())

	store, err := storage.Open(storage.Config{Driver: cfg.Storage.Driver, Path: cfg.Storage.Path}, nil, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()
	lib := gallery.NewLibrary(store, zerolog.Nop())

	ctx := context.Background()
	liked, err := lib.IsLiked(ctx, 7)
	require.NoError(t, err)
	assert.True(t, liked)

	pending, _, err := lib.Pending(ctx, model.PlacementExplore)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, pending)
}
