package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/art-gallery/internal/artic"
	"github.com/ytget/art-gallery/internal/gallery"
	"github.com/ytget/art-gallery/internal/model"
)

// cliPlacement is the placement the CLI mutates the library as
const cliPlacement = model.PlacementDetail

// setFunc is Library.SetLiked or Library.SetFavourite
type setFunc func(l *gallery.Library, ctx context.Context, origin model.Placement, id int, on bool) (bool, error)

// listFunc is Library.Liked or Library.Favourites
type listFunc func(l *gallery.Library, ctx context.Context) ([]int, error)

func newMarkCmd(e *env, use, short string, set setFunc, on bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				changed, err := set(e.lib, cmd.Context(), cliPlacement, id, on)
				if err != nil {
					return err
				}
				status := "unchanged"
				if changed {
					status = "done"
				}
				fmt.Fprintf(e.out, "%s %d: %s\n", use, id, status)
			}
			return nil
		},
	}
}

func newListCmd(e *env, use, short string, list listFunc) *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ids, err := list(e.lib, ctx)
			if err != nil {
				return err
			}
			if !details {
				if e.json {
					return printJSON(e.out, ids)
				}
				for _, id := range ids {
					fmt.Fprintln(e.out, id)
				}
				return nil
			}

			artworks, err := e.client.ArtworksByIDs(ctx, ids, artic.FeedFields)
			if err != nil {
				return err
			}
			rows, err := e.rows(ctx, artworks, nil)
			if err != nil {
				return err
			}
			return printArtworks(e.out, rows, e.json)
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "Fetch titles from the API")
	return cmd
}

func newPendingCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "pending PLACEMENT",
		Short: "Show the artworks a screen will reload on its next visit",
		Long: `Show the reload list of a screen: explore, search or favourite.
"*" means the whole screen reloads.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.ParsePlacement(args[0])
			if err != nil {
				return err
			}
			ids, all, err := e.lib.Pending(cmd.Context(), p)
			if err != nil {
				return err
			}
			if e.json {
				return printJSON(e.out, struct {
					Placement model.Placement `json:"placement"`
					All       bool            `json:"all"`
					IDs       []int           `json:"ids"`
				}{p, all, ids})
			}
			if all {
				fmt.Fprintln(e.out, gallery.ReloadAll)
			}
			for _, id := range ids {
				fmt.Fprintln(e.out, id)
			}
			return nil
		},
	}
}

func newClearCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove temporary data: liked, favourites and reload lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			if err := e.lib.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(e.out, "library cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm removal")
	return cmd
}
