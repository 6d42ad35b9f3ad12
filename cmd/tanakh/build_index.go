package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/config"
	"github.com/tanakh-search-api/internal/index"
	"github.com/tanakh-search-api/internal/repository/file"
)

func newBuildIndexCmd() *cobra.Command {
	cfg := config.GetConfig()
	var (
		dataDir string
		output  string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "build-index",
		Short: "Build the flat search index from per-chapter JSON files",
		Long: `Reads <data-dir>/<book>/<chapter>.json for every chapter of every book in
canonical order and writes a single JSON array of verse records.
Chapters that cannot be read are reported and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			catalog := books.Tanakh()

			fmt.Fprintf(w, "Building search index from %s (%d books)\n", dataDir, len(catalog.Books()))
			records, report, err := index.Build(cmd.Context(), file.NewChapterRepository(dataDir), catalog)
			if err != nil {
				return err
			}

			if dir := filepath.Dir(output); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create search index: %w", err)
			}
			if err := index.WriteJSON(f, records); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close search index: %w", err)
			}

			fmt.Fprintln(w, "Summary:")
			fmt.Fprintf(w, "  Books: %d\n", report.Books)
			fmt.Fprintf(w, "  Chapters: %d\n", report.Chapters)
			fmt.Fprintf(w, "  Verses: %d\n", report.Verses)
			if n := len(report.Failed); n > 0 {
				fmt.Fprintf(w, "  Errors: %d\n", n)
				for _, fc := range report.Failed {
					fmt.Fprintf(w, "    %s %d: %s\n", fc.BookKey, fc.Chapter, fc.Error)
				}
			}
			fmt.Fprintf(w, "  Output: %s\n", output)
			if info, err := os.Stat(output); err == nil {
				fmt.Fprintf(w, "  File size: %.2f MB\n", float64(info.Size())/(1024*1024))
			}

			if strict && len(report.Failed) > 0 {
				return fmt.Errorf("%d chapters failed to load", len(report.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", cfg.DataDir, "directory holding <book>/<chapter>.json files")
	cmd.Flags().StringVarP(&output, "output", "o", cfg.IndexPath, "search index file to write")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any chapter cannot be read")
	return cmd
}
