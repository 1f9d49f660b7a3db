package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/sapling/ebitenhost"
)

func newWindowCmd(flags *rootFlags) *cobra.Command {
	var (
		showFPS bool
		shots   string
	)
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the browser in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			return ebitenhost.Run(s.app.Scene, s.app, ebitenhost.RunConfig{
				Title:         "sapling",
				Width:         s.cfg.Width,
				Height:        s.cfg.Height,
				Scale:         s.cfg.Scale,
				ShowFPS:       showFPS,
				ScreenshotDir: shots,
			})
		},
	}
	cmd.Flags().BoolVar(&showFPS, "fps", false, "Show FPS/TPS readout")
	cmd.Flags().StringVar(&shots, "screenshots", "screenshots", "Directory for screenshot PNGs")
	return cmd
}
