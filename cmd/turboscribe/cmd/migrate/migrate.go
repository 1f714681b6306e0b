package migrate

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"turboscribe/internal/app/repository/migrate"
	"turboscribe/internal/app/repository/pg"
)

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema to the configured Postgres instance",
	Long: `Apply the database schema to the configured Postgres instance

The schema is idempotent and safe to re-run. Connection settings come from
DATABASE_URL or the DB_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := pg.Open()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v\n", err)
		}
		defer db.Close()

		if err := migrate.Run(db); err != nil {
			log.Fatalf("Migration failed: %v\n", err)
		}
		fmt.Println("migration complete")
	},
}
