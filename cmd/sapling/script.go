package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/termhost"
)

func newScriptCmd(flags *rootFlags) *cobra.Command {
	var maxFrames int
	cmd := &cobra.Command{
		Use:   "script <file>",
		Short: "Replay a YAML/JSON test script headless and print screenshots as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := sapling.LoadTestScript(data)
			if err != nil {
				return err
			}

			s, err := newSession(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			return runScript(s, runner, maxFrames, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&maxFrames, "max-frames", 1000, "Stop after this many frames")
	return cmd
}

// runScript steps frames until the script finishes. The cell canvas keeps
// everything painted so far, so each screenshot prints the whole screen.
func runScript(s *session, runner *sapling.TestRunner, maxFrames int, out io.Writer) error {
	scene := s.app.Scene
	scene.SetTestRunner(runner)
	canvas := termhost.NewCanvas(s.cfg.Width, s.cfg.Height)
	dt := float32(s.cfg.Frame().Seconds())

	frame := 0
	for ; frame < maxFrames; frame++ {
		s.app.Update(dt)
		s.app.Draw(canvas)
		for _, label := range scene.TakeScreenshots() {
			fmt.Fprintf(out, "== %s (frame %d)\n%s\n", label, frame, canvas.String())
		}
		if runner.Done() && scene.PendingInjections() == 0 {
			break
		}
		// Give the loader goroutine a chance to post before the next drain.
		if s.cfg.PagesDir != "" {
			time.Sleep(time.Millisecond)
		}
	}
	if frame == maxFrames {
		return fmt.Errorf("script did not finish within %d frames", maxFrames)
	}

	focus, _ := scene.Focused()
	fmt.Fprintf(out, "finished after %d frames, focus=%s\n", frame+1, focus)
	return nil
}
