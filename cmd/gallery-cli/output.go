package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ytget/art-gallery/internal/model"
)

// listTitleLength shortens titles in tables
const listTitleLength = 40

// artworkRow is one line of an artwork table
type artworkRow struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist,omitempty"`
	Image     string `json:"image,omitempty"`
	Liked     bool   `json:"liked"`
	Favourite bool   `json:"favourite"`
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printArtworks writes rows as a table, or JSON when asJSON is set
func printArtworks(w io.Writer, rows []artworkRow, asJSON bool) error {
	if asJSON {
		return printJSON(w, rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No artworks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFLAGS\tTITLE\tARTIST")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, flags(r.Liked, r.Favourite),
			model.ShortenText(model.CleanText(r.Title), listTitleLength), r.Artist)
	}
	return tw.Flush()
}

// flags renders the liked/favourite markers of a row
func flags(liked, favourite bool) string {
	var b strings.Builder
	if liked {
		b.WriteString("♥")
	}
	if favourite {
		b.WriteString("★")
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// printPagination writes the position in a paged listing
func printPagination(w io.Writer, p model.Pagination) {
	if p.TotalPages == 0 {
		return
	}
	fmt.Fprintf(w, "page %d of %d, %d artworks\n", p.CurrentPage, p.TotalPages, p.Total)
}
