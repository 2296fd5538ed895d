//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build darwin dragonfly freebsd linux netbsd openbsd solaris

package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/hnimtadd/vtwire"
	"github.com/hnimtadd/vtwire/dump"
)

// captureCmd represents the capture command
var captureCmd = &cobra.Command{
	Use:   "capture [flags] -- command [args ...]",
	Short: "Run a command under a pty and dump what it writes",
	Long: `Run a command with its output attached to a pseudo terminal and dump
every sequence it writes. The pty makes the command believe it is talking to
a real terminal, so it emits the same sequences it would interactively.

Example:
  vtdump capture -- ls --color=always
  vtdump capture --rows 50 --cols 132 --summary -- top -b -n 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)
		summary, _ := cmd.Flags().GetBool("summary")
		rows, _ := cmd.Flags().GetUint16("rows")
		cols, _ := cmd.Flags().GetUint16("cols")

		child := exec.Command(args[0], args[1:]...)
		ptmx, err := pty.Start(child)
		if err != nil {
			return fmt.Errorf("failed to start %s under a pty: %w", args[0], err)
		}
		defer func() { _ = ptmx.Close() }()

		if err := pty.Setsize(ptmx, &pty.Winsize{Rows: rows, Cols: cols}); err != nil {
			return fmt.Errorf("failed to size the pty: %w", err)
		}

		recorder := dump.NewRecorder(os.Stdout, log)
		decoder := vtwire.NewDecoder(vtwire.Options{Handler: recorder, Logger: log})
		if _, err := io.Copy(decoder, ptmx); err != nil && !isPtyEOF(err) {
			return err
		}
		if err := child.Wait(); err != nil {
			log.Warn("child exited with error", "err", err)
		}

		if summary {
			return recorder.Summary()
		}
		return recorder.Flush()
	},
}

// A pty read fails with EIO once the child side hangs up on Linux, treat
// that as end of stream.
func isPtyEOF(err error) bool {
	return strings.Contains(err.Error(), unix.EIO.Error())
}

func init() {
	captureCmd.Flags().Uint16("rows", 24, "pty rows")
	captureCmd.Flags().Uint16("cols", 80, "pty columns")
	rootCmd.AddCommand(captureCmd)
}
