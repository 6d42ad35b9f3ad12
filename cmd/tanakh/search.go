package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/config"
	"github.com/tanakh-search-api/internal/index"
	"github.com/tanakh-search-api/internal/models"
	"github.com/tanakh-search-api/internal/repository/file"
	"github.com/tanakh-search-api/internal/search"
	"github.com/tanakh-search-api/internal/services"
)

var terminalMarks = strings.NewReplacer(search.MarkOpen, "[", search.MarkClose, "]")

func newSearchCmd() *cobra.Command {
	cfg := config.GetConfig()
	var (
		indexPath     string
		mode          string
		stripPrefixes bool
		bookKeys      []string
		limit         int
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>...",
		Short: "Search the index file from the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := models.ParseMode(mode)
			if err != nil {
				return err
			}
			catalog := books.Tanakh()
			for _, k := range bookKeys {
				if _, ok := catalog.ByKey(k); !ok {
					return fmt.Errorf("unknown book %q", k)
				}
			}

			svc := services.NewSearchService(index.NewCache(file.NewIndexRepository(indexPath), catalog), 0)
			q := models.Query{
				Term:          strings.Join(args, " "),
				Mode:          m,
				StripPrefixes: stripPrefixes,
				BookFilter:    bookKeys,
			}
			results, err := svc.SearchAllBooks(cmd.Context(), q)
			if err != nil {
				return err
			}

			total := len(results)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return printJSON(w, models.SearchResponse{
					Query:         q.Term,
					Mode:          m,
					StripPrefixes: stripPrefixes,
					Total:         total,
					Results:       results,
				})
			}

			for _, r := range results {
				fmt.Fprintf(w, "%s %d:%d  %s\n", r.BookName, r.Chapter, r.Verse, terminalMarks.Replace(r.HighlightedText))
			}
			fmt.Fprintf(w, "%d results\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", cfg.IndexPath, "search index file")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(models.ModeExact), "match mode: exact or fuzzy")
	cmd.Flags().BoolVarP(&stripPrefixes, "strip-prefixes", "p", false, "strip prefix letters before matching")
	cmd.Flags().StringSliceVarP(&bookKeys, "books", "b", nil, "restrict to these book keys")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most n results (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
