package gallery

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/model"
)

// LinkKind says where tapping a detail value leads
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkArtist
	LinkSearch
)

// Link is the navigation target of a detail row or hashtag
type Link struct {
	Kind     LinkKind
	ArtistID int
	Query    artic.Query
}

// DetailRow is one labelled value on the detail page
type DetailRow struct {
	Label string
	Value string
	Link  Link
}

// Hashtag is a subject tag that opens a full-text search
type Hashtag struct {
	Text string
	Link Link
}

// DetailView is everything the detail page renders
type DetailView struct {
	Card        model.Card
	Rows        []DetailRow
	Hashtags    []Hashtag
	Description string
	ShareURL    string
}

// Detail loads the full record of an artwork. When preset is given (the card
// that was tapped) its sized image is reused instead of looked up again.
func Detail(ctx context.Context, catalog artic.Catalog, id, width int, preset *model.Card) (*DetailView, error) {
	artwork, err := catalog.GetArtwork(ctx, id)
	if err != nil {
		return nil, err
	}

	card := model.Card{Artwork: artwork}
	switch {
	case preset != nil && preset.ID == id && preset.Image != "":
		card.Image = preset.Image
		card.Height = preset.Height
	case artwork.HasImage():
		size, err := catalog.ImageInfo(ctx, artwork.ImageID)
		if err != nil {
			return nil, fmt.Errorf("artwork %d image: %w", id, err)
		}
		card.Height = size.ScaledHeight(width)
		card.Image = catalog.ImageURL(artwork.ImageID, width, card.Height)
	}

	view := &DetailView{
		Card:        card,
		Rows:        DetailRows(artwork),
		Hashtags:    Hashtags(artwork),
		Description: model.FormatDescription(artwork.Description, 0),
	}
	if artwork.HasImage() {
		view.ShareURL = catalog.ShareURL(artwork.ImageID)
	}
	return view, nil
}

// DetailRows returns the labelled rows of an artwork, skipping empty values
func DetailRows(a model.Artwork) []DetailRow {
	artistLink := Link{}
	if a.ArtistID > 0 {
		artistLink = Link{Kind: LinkArtist, ArtistID: a.ArtistID}
	}
	dateLink := Link{}
	if a.DateDisplay != "" {
		dateLink = Link{Kind: LinkSearch, Query: artic.Query{Filter: "date_display", Text: a.DateDisplay}}
	}

	candidates := []DetailRow{
		{Label: "Artist", Value: a.ArtistTitle, Link: artistLink},
		{Label: "Title", Value: a.Title},
		{Label: "Place", Value: a.PlaceOfOrigin},
		{Label: "Date", Value: a.DateDisplay, Link: dateLink},
		{Label: "Medium", Value: a.MediumDisplay},
		{Label: "Dimensions", Value: a.Dimensions},
		{Label: "Credit Line", Value: a.CreditLine},
		{Label: "Reference Number", Value: a.MainReferenceNumber},
		{Label: "Copyright", Value: a.CopyrightNotice},
	}

	rows := make([]DetailRow, 0, len(candidates))
	for _, row := range candidates {
		if row.Value != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

// Hashtags turns subject titles into full-text search links
func Hashtags(a model.Artwork) []Hashtag {
	tags := make([]Hashtag, 0, len(a.SubjectTitles))
	for _, subject := range a.SubjectTitles {
		if subject == "" {
			continue
		}
		tags = append(tags, Hashtag{
			Text: subject,
			Link: Link{Kind: LinkSearch, Query: artic.Query{Filter: model.DefaultFilterKey, Text: subject}},
		})
	}
	return tags
}

// ArtistPage is everything the artist page renders
type ArtistPage struct {
	Artist   model.Artist
	Artworks []model.Artwork
	Total    int
	// SeeMore searches every artwork credited to the artist by name
	SeeMore artic.Query
}

// ArtistView loads an artist and the first page of their artworks concurrently
func ArtistView(ctx context.Context, catalog artic.Catalog, id int) (*ArtistPage, error) {
	var (
		page       ArtistPage
		pagination model.Pagination
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artist, err := catalog.GetArtist(gctx, id)
		page.Artist = artist
		return err
	})
	g.Go(func() error {
		artworks, p, err := catalog.ArtistArtworks(gctx, id, 1, ArtistArtworksLimit)
		page.Artworks = artworks
		pagination = p
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Total = pagination.Total
	page.SeeMore = artic.Query{Filter: "artist_title", Text: page.Artist.Title}
	return &page, nil
}
