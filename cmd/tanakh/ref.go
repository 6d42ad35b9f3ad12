package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanakh-search-api/internal/books"
)

func newRefCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ref <reference>...",
		Short: `Parse a reference such as "Genesis 1:1" or "בראשית א:א"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := books.Tanakh()
			input := strings.Join(args, " ")

			ref, ok := catalog.ParseReference(input)
			if !ok {
				return fmt.Errorf("unrecognised reference %q", input)
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return printJSON(w, ref)
			}

			book, _ := catalog.ByKey(ref.BookKey)
			if ref.Verse > 0 {
				fmt.Fprintf(w, "%s (%s) %d:%d\n", book.English, book.Hebrew, ref.Chapter, ref.Verse)
			} else {
				fmt.Fprintf(w, "%s (%s) %d\n", book.English, book.Hebrew, ref.Chapter)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
