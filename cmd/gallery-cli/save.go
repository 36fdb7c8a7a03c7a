package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/art-gallery/internal/download"
	"github.com/ytget/art-gallery/internal/platform"
)

// savedRow is one line of the save report
type savedRow struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Bytes  int64  `json:"bytes"`
	Error  string `json:"error,omitempty"`
}

func newSaveCmd(e *env) *cobra.Command {
	var (
		dir      string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "save ID...",
		Short: "Save the large image of artworks to a directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if dir == "" {
				d, err := platform.DefaultExportDir()
				if err != nil {
					return err
				}
				dir = d
			}

			svc := download.NewService(dir, parallel, e.client, e.log)
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				a, err := e.client.GetArtwork(ctx, id)
				if err != nil {
					return err
				}
				if !a.HasImage() {
					return fmt.Errorf("artwork %d has no image", id)
				}
				if _, err := svc.AddTask(a, e.client.ShareURL(a.ImageID)); err != nil {
					return err
				}
			}
			if err := svc.Wait(ctx); err != nil {
				return err
			}

			tasks := svc.GetAllTasks()
			rows := make([]savedRow, 0, len(tasks))
			failed := 0
			for _, t := range tasks {
				row := savedRow{ID: t.ArtworkID, Status: string(t.Status), Bytes: t.Bytes, Error: t.LastError}
				if t.Status == download.TaskStatusCompleted {
					row.Path = t.OutputPath
				} else {
					failed++
				}
				rows = append(rows, row)
			}

			if e.json {
				if err := printJSON(e.out, rows); err != nil {
					return err
				}
			} else {
				for _, r := range rows {
					if r.Path != "" {
						fmt.Fprintf(e.out, "%d: %s\n", r.ID, r.Path)
					} else {
						fmt.Fprintf(e.out, "%d: %s %s\n", r.ID, r.Status, r.Error)
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d images not saved", failed, len(rows))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default: Pictures/art-gallery)")
	cmd.Flags().IntVar(&parallel, "parallel", download.DefaultMaxParallel, "Parallel downloads")
	return cmd
}
