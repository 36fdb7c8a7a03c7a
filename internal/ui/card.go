package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// defaultAspect is used when the image height is unknown
const defaultAspect float32 = 0.75

// ArtworkCard renders one artwork in a feed: image, like and favourite
// toggles, share, text and hashtags
type ArtworkCard struct {
	widget.BaseWidget

	root  *RootUI
	card  model.Card
	state *gallery.ArtworkState

	// UI components
	image       *TapImage
	titleLabel  *widget.Label
	artistLabel *widget.Label
	descLabel   *widget.Label
	hashtagRow  *fyne.Container

	// Action buttons
	heartBtn    *widget.Button
	bookmarkBtn *widget.Button
	shareBtn    *widget.Button
}

// NewArtworkCard creates a card for c rendered on placement
func NewArtworkCard(root *RootUI, placement model.Placement, c model.Card) *ArtworkCard {
	ac := &ArtworkCard{
		root:  root,
		card:  c,
		state: gallery.NewArtworkState(root.svc.Library, placement, c.ID),
	}
	ac.ExtendBaseWidget(ac)
	ac.createUI()

	ac.state.SetOnChange(func(liked, favourite bool) {
		fyne.Do(func() { ac.updateButtons(liked, favourite) })
	})
	go ac.loadState()
	return ac
}

// State returns the liked/favourite state of the card
func (ac *ArtworkCard) State() *gallery.ArtworkState {
	return ac.state
}

// Card returns the rendered artwork
func (ac *ArtworkCard) Card() model.Card {
	return ac.card
}

func (ac *ArtworkCard) createUI() {
	aspect := defaultAspect
	if width := ac.root.cardWidth(); ac.card.Height > 0 && width > 0 {
		aspect = float32(ac.card.Height) / float32(width)
	}
	ac.image = NewTapImage(CardMinWidth, aspect)
	ac.image.OnTapped = ac.onOpen
	ac.image.OnDoubleTapped = ac.onDoubleTap
	ac.root.images.Load(ac.card.Image, ac.image.Image())

	ac.titleLabel = widget.NewLabel(model.ShortenText(ac.card.DisplayTitle(), CardTitleLength))
	ac.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ac.titleLabel.Wrapping = fyne.TextWrapWord

	ac.artistLabel = widget.NewLabel(ac.card.ArtistTitle)
	ac.artistLabel.TextStyle = fyne.TextStyle{Italic: true}
	ac.artistLabel.Truncation = fyne.TextTruncateEllipsis
	if ac.card.ArtistTitle == "" {
		ac.artistLabel.Hide()
	}

	ac.descLabel = widget.NewLabel(model.FormatDescription(ac.card.Description, CardDescriptionLength))
	ac.descLabel.Wrapping = fyne.TextWrapWord
	if ac.descLabel.Text == "" {
		ac.descLabel.Hide()
	}

	ac.hashtagRow = container.NewHBox()
	for i, tag := range gallery.Hashtags(ac.card.Artwork) {
		if i >= HashtagLength {
			break
		}
		btn := widget.NewButton(HashtagPrefix+tag.Text, func() { ac.root.followLink(tag.Link) })
		btn.Importance = widget.LowImportance
		ac.hashtagRow.Add(btn)
	}

	ac.heartBtn = widget.NewButton(IconHeartEmpty, ac.onLike)
	ac.heartBtn.Importance = widget.LowImportance
	ac.bookmarkBtn = widget.NewButton(IconBookmarkOpen, ac.onFavourite)
	ac.bookmarkBtn.Importance = widget.LowImportance
	ac.shareBtn = widget.NewButton(IconShare, ac.onShare)
	ac.shareBtn.Importance = widget.LowImportance
	if !ac.card.HasImage() {
		ac.shareBtn.Disable()
	}
}

// loadState reads the persisted flags of the card
func (ac *ArtworkCard) loadState() {
	ctx, cancel := context.WithTimeout(context.Background(), StoreOpTimeout)
	defer cancel()
	if err := ac.state.Load(ctx); err != nil {
		ac.root.log.Warn().Err(err).Int("id", ac.card.ID).Msg("failed to load artwork state")
	}
}

// updateButtons reflects the liked/favourite flags; must run on the UI thread
func (ac *ArtworkCard) updateButtons(liked, favourite bool) {
	if liked {
		ac.heartBtn.SetText(IconHeart)
		ac.heartBtn.Importance = widget.DangerImportance
	} else {
		ac.heartBtn.SetText(IconHeartEmpty)
		ac.heartBtn.Importance = widget.LowImportance
	}
	ac.heartBtn.Refresh()

	if favourite {
		ac.bookmarkBtn.SetText(IconBookmark)
		ac.bookmarkBtn.Importance = widget.WarningImportance
	} else {
		ac.bookmarkBtn.SetText(IconBookmarkOpen)
		ac.bookmarkBtn.Importance = widget.LowImportance
	}
	ac.bookmarkBtn.Refresh()
}

func (ac *ArtworkCard) onOpen() {
	card := ac.card
	ac.root.openDetail(card.ID, &card)
}

func (ac *ArtworkCard) onLike() {
	ac.mutate("like", func(ctx context.Context) error {
		_, err := ac.state.ToggleLike(ctx)
		return err
	})
}

func (ac *ArtworkCard) onFavourite() {
	ac.mutate("favourite", func(ctx context.Context) error {
		_, err := ac.state.ToggleFavourite(ctx)
		return err
	})
}

func (ac *ArtworkCard) onDoubleTap() {
	ac.mutate("double tap", ac.state.DoubleTap)
}

func (ac *ArtworkCard) mutate(action string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), StoreOpTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			ac.root.log.Error().Err(err).Int("id", ac.card.ID).Str("action", action).Msg("failed to update artwork")
			ac.root.showNotification(fmt.Sprintf("%s %v", IconError, err))
		}
	}()
}

func (ac *ArtworkCard) onShare() {
	ac.root.share(ac.card.Artwork)
}

// CreateRenderer creates the widget renderer
func (ac *ArtworkCard) CreateRenderer() fyne.WidgetRenderer {
	return &artworkCardRenderer{card: ac}
}

// artworkCardRenderer renders the artwork card widget
type artworkCardRenderer struct {
	card   *ArtworkCard
	layout *fyne.Container
}

// Layout arranges the components
func (r *artworkCardRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *artworkCardRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize()
}

// Refresh refreshes the renderer
func (r *artworkCardRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *artworkCardRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *artworkCardRenderer) Destroy() {}

// createLayout creates the main layout
func (r *artworkCardRenderer) createLayout() {
	ac := r.card

	// Actions sit under the image: like and favourite on the left, share on the right
	actionRow := container.NewBorder(nil, nil,
		container.NewHBox(ac.heartBtn, ac.bookmarkBtn),
		ac.shareBtn,
	)

	r.layout = container.NewVBox(
		ac.image,
		actionRow,
		ac.titleLabel,
		ac.artistLabel,
		ac.descLabel,
		ac.hashtagRow,
		widget.NewSeparator(),
	)
}
