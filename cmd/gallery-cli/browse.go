package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
	"github.com/ytget/art-gallery/internal/platform"
)

func newExploreCmd(e *env) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "List artworks as the explore feed shows them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			artworks, pagination, err := e.client.ListArtworks(ctx, page, limit, artic.FeedFields)
			if err != nil {
				return err
			}
			rows, err := e.rows(ctx, artworks, nil)
			if err != nil {
				return err
			}
			if !e.json {
				printPagination(e.out, pagination)
			}
			return printArtworks(e.out, rows, e.json)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page to list")
	cmd.Flags().IntVar(&limit, "limit", gallery.DefaultPageSize, "Artworks per page")
	return cmd
}

func newGridCmd(e *env) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "List the thumbnails of the search screen grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			artworks, pagination, err := e.client.ListArtworks(ctx, page, limit, artic.GridFields)
			if err != nil {
				return err
			}
			rows, err := e.rows(ctx, artworks, e.client.ThumbURL)
			if err != nil {
				return err
			}
			if e.json {
				return printJSON(e.out, rows)
			}
			printPagination(e.out, pagination)
			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTHUMBNAIL")
			for _, r := range rows {
				if r.Image == "" {
					continue
				}
				fmt.Fprintf(tw, "%d\t%s\n", r.ID, r.Image)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page to list")
	cmd.Flags().IntVar(&limit, "limit", gallery.DefaultGridPageSize, "Artworks per page")
	return cmd
}

func newSearchCmd(e *env) *cobra.Command {
	var (
		filter      string
		page, limit int
	)
	cmd := &cobra.Command{
		Use:   "search TEXT",
		Short: "Search artworks",
		Long: `Search artworks by full text or by a single field.

Run "gallery-cli filters" to list the field filters.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveFilter(filter)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			q := artic.Query{
				Filter: key,
				Text:   strings.Join(args, " "),
				Page:   page,
				Limit:  limit,
				Fields: artic.FeedFields,
			}
			artworks, pagination, err := e.client.SearchArtworks(ctx, q)
			if err != nil {
				return err
			}
			rows, err := e.rows(ctx, artworks, nil)
			if err != nil {
				return err
			}
			if !e.json {
				printPagination(e.out, pagination)
			}
			return printArtworks(e.out, rows, e.json)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", model.DefaultFilterKey, "Filter key or name")
	cmd.Flags().IntVar(&page, "page", 1, "Page to list")
	cmd.Flags().IntVar(&limit, "limit", gallery.DefaultPageSize, "Artworks per page")
	return cmd
}

// resolveFilter accepts a filter key or its display name, case-insensitively
func resolveFilter(s string) (string, error) {
	for _, f := range model.SearchFilters {
		if strings.EqualFold(f.Key, s) || strings.EqualFold(f.Name, s) {
			return f.Key, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

func newFiltersCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List search filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.json {
				return printJSON(e.out, model.SearchFilters)
			}
			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME")
			for _, f := range model.SearchFilters {
				fmt.Fprintf(tw, "%s\t%s %s\n", f.Key, f.Icon, f.Name)
			}
			return tw.Flush()
		},
	}
}

func newShowCmd(e *env) *cobra.Command {
	var (
		width int
		open  bool
	)
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show the details of an artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			view, err := gallery.Detail(ctx, e.client, id, width, nil)
			if err != nil {
				return err
			}
			liked, err := e.lib.IsLiked(ctx, id)
			if err != nil {
				return err
			}
			favourite, err := e.lib.IsFavourite(ctx, id)
			if err != nil {
				return err
			}

			if open {
				if view.ShareURL == "" {
					return fmt.Errorf("artwork %d has no image", id)
				}
				if err := platform.OpenURL(view.ShareURL); err != nil {
					return fmt.Errorf("open image: %w", err)
				}
			}

			if e.json {
				return printJSON(e.out, struct {
					*gallery.DetailView
					Liked     bool `json:"liked"`
					Favourite bool `json:"favourite"`
				}{view, liked, favourite})
			}
			return printDetail(e, view, liked, favourite)
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default: feed.card_width)")
	cmd.Flags().BoolVar(&open, "open", false, "Open the large image in the browser")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if width <= 0 {
			width = e.cfg.Feed.CardWidth
		}
	}
	return cmd
}

func printDetail(e *env, view *gallery.DetailView, liked, favourite bool) error {
	w := e.out
	fmt.Fprintf(w, "%s  %s\n\n", view.Card.DisplayTitle(), flags(liked, favourite))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range view.Rows {
		fmt.Fprintf(tw, "%s\t%s%s\n", row.Label, model.CleanText(row.Value), linkHint(row.Link))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(view.Hashtags) > 0 {
		tags := make([]string, len(view.Hashtags))
		for i, h := range view.Hashtags {
			tags[i] = "#" + h.Text
		}
		fmt.Fprintf(w, "\n%s\n", strings.Join(tags, " "))
	}
	if view.Description != "" {
		fmt.Fprintf(w, "\n%s\n", view.Description)
	}
	if view.Card.Image != "" {
		fmt.Fprintf(w, "\nimage: %s\n", view.Card.Image)
	}
	if view.ShareURL != "" {
		fmt.Fprintf(w, "share: %s\n", view.ShareURL)
	}
	return nil
}

// linkHint tells the user which command follows a detail link
func linkHint(l gallery.Link) string {
	switch l.Kind {
	case gallery.LinkArtist:
		return fmt.Sprintf("  (gallery-cli artist %d)", l.ArtistID)
	case gallery.LinkSearch:
		return fmt.Sprintf("  (gallery-cli search --filter %s %q)", l.Query.Filter, l.Query.Text)
	}
	return ""
}

func newArtistCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "artist ID",
		Short: "Show an artist and their artworks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			page, err := gallery.ArtistView(ctx, e.client, id)
			if err != nil {
				return err
			}
			if e.json {
				return printJSON(e.out, page)
			}

			w := e.out
			fmt.Fprintln(w, page.Artist.Title)
			if lifespan := page.Artist.Lifespan(); lifespan != "" {
				fmt.Fprintln(w, lifespan)
			}
			if len(page.Artist.AltTitles) > 0 {
				fmt.Fprintf(w, "also known as: %s\n", strings.Join(page.Artist.AltTitles, ", "))
			}
			if desc := model.FormatDescription(page.Artist.Description, 0); desc != "" {
				fmt.Fprintf(w, "\n%s\n", desc)
			}
			fmt.Fprintf(w, "\n%d artworks\n", page.Total)

			rows, err := e.rows(ctx, page.Artworks, nil)
			if err != nil {
				return err
			}
			if err := printArtworks(w, rows, false); err != nil {
				return err
			}
			if page.Total > len(page.Artworks) {
				fmt.Fprintf(w, "\nmore: gallery-cli search --filter %s %q\n", page.SeeMore.Filter, page.SeeMore.Text)
			}
			return nil
		},
	}
}

// rows turns artworks into table rows with their library flags. image maps an
// image id to the URL shown in the row; nil leaves it empty.
func (e *env) rows(ctx context.Context, artworks []model.Artwork, image func(string) string) ([]artworkRow, error) {
	liked, err := idSet(ctx, e.lib.Liked)
	if err != nil {
		return nil, err
	}
	favourites, err := idSet(ctx, e.lib.Favourites)
	if err != nil {
		return nil, err
	}

	rows := make([]artworkRow, 0, len(artworks))
	for _, a := range artworks {
		r := artworkRow{
			ID:        a.ID,
			Title:     a.DisplayTitle(),
			Artist:    a.ArtistTitle,
			Liked:     liked[a.ID],
			Favourite: favourites[a.ID],
		}
		if image != nil && a.HasImage() {
			r.Image = image(a.ImageID)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func idSet(ctx context.Context, list func(context.Context) ([]int, error)) (map[int]bool, error) {
	ids, err := list(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
