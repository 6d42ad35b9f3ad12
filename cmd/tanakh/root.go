package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Flag defaults are read from the
// environment when it is called.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tanakh",
		Short:        "Build, publish and query the Tanakh full-text search index",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.AddCommand(
		newBuildIndexCmd(),
		newPublishCmd(),
		newSearchCmd(),
		newRefCmd(),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
