package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"arcadetracker/parser"
	"arcadetracker/scraper"
)

func init() {
	dumpCmd.Flags().StringP("out", "o", "profile.html", "file to write the fetched HTML to")
	dumpCmd.Flags().Bool("render", false, "load the profile in headless Chrome")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <profile-url>",
	Short: "Saves a profile's raw HTML and reports which selectors it contains.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		render, _ := cmd.Flags().GetBool("render")

		fetchURL, _, err := scraper.NormalizeURL(args[0], cfg.Platform)
		if err != nil {
			return err
		}

		var f scraper.Fetcher = newFetcher()
		if render {
			f = newRenderer()
		}
		html, err := f.Fetch(cmd.Context(), fetchURL)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", out)
		}

		printMarkers(cmd.OutOrStdout(), out, html)
		return nil
	},
}

func printMarkers(w io.Writer, path, html string) {
	t := newTable(w, fmt.Sprintf("%s (%d bytes)", path, len(html)))
	t.AppendHeader(table.Row{"Marker", "Occurrences"})
	for _, m := range parser.CountMarkers(html) {
		t.AppendRow(table.Row{m.Marker, m.Count})
	}
	t.Render()
}
