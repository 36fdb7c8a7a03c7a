package ui

import (
	"context"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/art-gallery/internal/artic"
)

// imageCacheSize bounds the number of decoded-ready images kept in memory
const imageCacheSize = 128

// ImageLoader fetches images in the background and keeps a small cache keyed
// by URL
type ImageLoader struct {
	catalog artic.Catalog
	log     zerolog.Logger

	mu    sync.Mutex
	cache map[string]fyne.Resource
	order []string
}

// NewImageLoader creates a new image loader
func NewImageLoader(catalog artic.Catalog, log zerolog.Logger) *ImageLoader {
	return &ImageLoader{
		catalog: catalog,
		log:     log.With().Str("component", "images").Logger(),
		cache:   make(map[string]fyne.Resource),
	}
}

// Load fills img with the image at url. The canvas is updated on the UI thread.
func (l *ImageLoader) Load(url string, img *canvas.Image) {
	if url == "" {
		return
	}
	if res := l.cached(url); res != nil {
		img.Resource = res
		img.Refresh()
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ImageLoadTimeout)
		defer cancel()

		data, err := l.catalog.FetchImage(ctx, url)
		if err != nil {
			l.log.Warn().Err(err).Str("url", url).Msg("image fetch failed")
			return
		}
		res := fyne.NewStaticResource(url, data)
		l.store(url, res)

		fyne.Do(func() {
			img.Resource = res
			img.Refresh()
		})
	}()
}

func (l *ImageLoader) cached(url string) fyne.Resource {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache[url]
}

func (l *ImageLoader) store(url string, res fyne.Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cache[url]; ok {
		return
	}
	if len(l.order) >= imageCacheSize {
		oldest := l.order[0]
		l.order = l.order[1:]
		delete(l.cache, oldest)
	}
	l.cache[url] = res
	l.order = append(l.order, url)
}

// TapImage is an image that reacts to single and double taps. Its height
// follows the aspect ratio of the artwork.
type TapImage struct {
	widget.BaseWidget

	image  *canvas.Image
	aspect float32
	width  float32

	OnTapped       func()
	OnDoubleTapped func()
}

// NewTapImage creates an image placeholder of the given display width and
// height/width ratio
func NewTapImage(width, aspect float32) *TapImage {
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	if aspect <= 0 {
		aspect = 1
	}
	t := &TapImage{image: img, aspect: aspect, width: width}
	t.ExtendBaseWidget(t)
	return t
}

// Image returns the canvas the loader draws into
func (t *TapImage) Image() *canvas.Image {
	return t.image
}

// Tapped handles single taps
func (t *TapImage) Tapped(_ *fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

// DoubleTapped handles double taps
func (t *TapImage) DoubleTapped(_ *fyne.PointEvent) {
	if t.OnDoubleTapped != nil {
		t.OnDoubleTapped()
	}
}

// CreateRenderer creates the renderer for the image
func (t *TapImage) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.RGBA{R: 40, G: 40, B: 40, A: 255})
	bg.CornerRadius = CardImageRadius
	return &tapImageRenderer{img: t, bg: bg}
}

type tapImageRenderer struct {
	img *TapImage
	bg  *canvas.Rectangle
}

func (r *tapImageRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.img.image.Resize(size)
}

func (r *tapImageRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.img.width, r.img.width*r.img.aspect)
}

func (r *tapImageRenderer) Refresh() {
	r.bg.Refresh()
	r.img.image.Refresh()
}

func (r *tapImageRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.img.image}
}

func (r *tapImageRenderer) Destroy() {}
