package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hnimtadd/vtwire/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vtdump",
	Short: "Dump terminal wire data as typed sequences",
	Long: `vtdump tokenizes a stream of terminal output and prints one line per
event: printable text, control characters, escape sequences, control
sequences, operating system commands and device control strings, each with
the wire bytes it came from. It never interprets what it prints.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON instead of text")
	rootCmd.PersistentFlags().Bool("summary", false, "append a summary block after the transcript")
}

// newLogger builds the logger the flags ask for. Logs go to stderr, the
// transcript owns stdout.
func newLogger(cmd *cobra.Command) logger.Logger {
	name, _ := cmd.Flags().GetString("level")
	asJSON, _ := cmd.Flags().GetBool("log-json")
	logType := logger.TypeText
	if asJSON {
		logType = logger.TypeJSON
	}
	return logger.New(logger.Options{
		Buffer: os.Stderr,
		Level:  logger.ParseLevel(name),
		Type:   logType,
	})
}
