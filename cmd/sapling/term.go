package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/phanxgames/sapling/termhost"
)

var errNotTerminal = errors.New("term: stdout is not a terminal")

func newTermCmd(flags *rootFlags) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the browser inside the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}

			// The screen owns the terminal; logs go to a file or nowhere.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logOut = f
			}

			s, err := newSession(cmd.Context(), flags, logOut)
			if err != nil {
				return err
			}
			defer s.Close()

			return termhost.Run(s.app.Scene, s.app, termhost.RunConfig{Frame: s.cfg.Frame()})
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Append logs to this file")
	return cmd
}
