package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"turboscribe/cmd/turboscribe/cmd/ingest"
	"turboscribe/cmd/turboscribe/cmd/migrate"
	"turboscribe/cmd/turboscribe/cmd/serve"
	"turboscribe/cmd/turboscribe/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "turboscribe",
	Short: "Audio and video transcription service",
	Long: `Audio and video transcription service.
- serve runs the HTTP API and web dashboard
- ingest batch-transcribes a local directory of media files
- migrate applies the database schema`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(ingest.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
