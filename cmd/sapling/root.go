package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	theme      string
	font       string
	pagesDir   string
	logLevel   string
	humanLogs  bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sapling",
		Short:         "Sapling runs the embedded browser UI in a window or a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&flags.theme, "theme", "", "Override theme (light, dark)")
	pf.StringVar(&flags.font, "font", "", "Override font (small, medium, large)")
	pf.StringVar(&flags.pagesDir, "pages", "", "Directory of YAML page fixtures")
	pf.StringVar(&flags.logLevel, "log-level", "", "Override log level")
	pf.BoolVar(&flags.humanLogs, "human-logs", true, "Write console-formatted logs")
	pf.BoolVar(&flags.debug, "debug", false, "Enable scene debug checks and frame stats")

	cmd.AddCommand(newWindowCmd(flags))
	cmd.AddCommand(newTermCmd(flags))
	cmd.AddCommand(newScriptCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
