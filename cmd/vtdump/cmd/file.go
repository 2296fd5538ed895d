package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hnimtadd/vtwire"
	"github.com/hnimtadd/vtwire/dump"
	"github.com/hnimtadd/vtwire/logger"
)

// fileCmd represents the file command
var fileCmd = &cobra.Command{
	Use:   "file [path ...]",
	Short: "Dump recorded terminal output from files or stdin",
	Long: `Dump recorded terminal output, for example a script(1) typescript or
a captured pty session. Reads stdin when no path is given.

Example:
  vtdump file session.log
  printf '\033[1;31mhi\033[0m' | vtdump file --summary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)
		summary, _ := cmd.Flags().GetBool("summary")

		if len(args) == 0 {
			return runFile(os.Stdin, os.Stdout, log, summary)
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			err = runFile(f, os.Stdout, log, summary)
			closeErr := f.Close()
			if err != nil {
				return err
			}
			if closeErr != nil {
				return closeErr
			}
		}
		return nil
	},
}

func runFile(in io.Reader, out io.Writer, log logger.Logger, summary bool) error {
	recorder := dump.NewRecorder(out, log)
	decoder := vtwire.NewDecoder(vtwire.Options{Handler: recorder, Logger: log})
	if _, err := io.Copy(decoder, in); err != nil {
		return err
	}
	if summary {
		return recorder.Summary()
	}
	return recorder.Flush()
}

func init() {
	rootCmd.AddCommand(fileCmd)
}
