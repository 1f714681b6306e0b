package ingest

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"turboscribe/internal/app"
)

var userID string
var inputDir string
var maxCount int

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "",
		"Owner of the ingested transcriptions, stored as the user_id on every row")
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "",
		"Directory holding the media files to transcribe, example: ./test/data/mp3")
	Cmd.Flags().IntVarP(&maxCount, "maxCount", "m", 500,
		"Maximum number of files to ingest in one run")

	Cmd.MarkFlagRequired("user")
	Cmd.MarkFlagRequired("inputDir")
}

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Batch-transcribe the media files in the specified directory",
	Long: `Batch-transcribe the media files in the specified directory

- Iterates over the supported media files in the directory, oldest first
- Skips files already ingested for the same user
- Stores results in the local sqlite database (TURBOSCRIBE_DB)`,
	Run: func(cmd *cobra.Command, args []string) {
		converter := app.InitializeConverter()
		defer converter.Close()

		if err := converter.Do(context.Background(), userID, inputDir, maxCount); err != nil {
			log.Fatalf("Ingest failed: %v\n", err)
		}
	},
}
