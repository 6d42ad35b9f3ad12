package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tanakh-search-api/internal/books"
	"github.com/tanakh-search-api/internal/config"
	"github.com/tanakh-search-api/internal/index"
	"github.com/tanakh-search-api/internal/repository/file"
	"github.com/tanakh-search-api/internal/repository/sqlstore"
	dbconfig "github.com/tanakh-search-api/pkg/schema/config"
	"github.com/tanakh-search-api/pkg/schema/db"
)

func newPublishCmd() *cobra.Command {
	cfg := config.GetConfig()
	dbCfg := dbconfig.GetConfig()
	var (
		indexPath string
		driver    string
		dsn       string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Load the search index into a SQL database",
		Long: `Validates the search index file and replaces the contents of the verses
table with it in one transaction. The table is created if missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if dsn == "" {
				return fmt.Errorf("database DSN is required (--dsn or DATABASE_URI)")
			}

			raw, err := file.NewIndexRepository(indexPath).FetchIndex(ctx)
			if err != nil {
				return err
			}
			records := index.Validate(raw, books.Tanakh())

			conn, err := db.Open(ctx, driver, dsn, dbCfg.DatabaseMaxConns)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.EnsureSchema(ctx, conn); err != nil {
				return err
			}

			log.Printf("Publishing %d verses to %s", len(records), driver)
			repo := sqlstore.NewVerseRepository(conn)
			if err := repo.ReplaceAll(ctx, records); err != nil {
				return err
			}

			n, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published %d verses (%d skipped)\n", n, len(raw)-len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", cfg.IndexPath, "search index file to publish")
	cmd.Flags().StringVar(&driver, "driver", dbCfg.DatabaseDriver, "database driver: postgres or sqlite")
	cmd.Flags().StringVar(&dsn, "dsn", dbCfg.DatabaseURI, "database connection string")
	return cmd
}
