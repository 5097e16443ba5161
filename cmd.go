package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	app "github.com/rocketscienceinc/tenten/internal"
	"github.com/rocketscienceinc/tenten/internal/config"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		noClear    bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "tenten",
		Short: "Five in a row on a 10x10 board",
		Long: `tenten is a two-player terminal game. Players take turns entering a position
from 0 to 99; the first to line up five marks wins. Every move after the first
must land within 3 steps of a piece already on the board.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("log-level") {
				conf.LogLevel = logLevel
			}

			interactive := term.IsTerminal(int(os.Stdout.Fd()))
			conf.NoClear = conf.NoClear || noClear || !interactive
			conf.NoColor = conf.NoColor || noColor || !interactive

			logger, closeLog, err := initLogger(conf)
			if err != nil {
				return err
			}
			defer closeLog()

			return app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "./config.yml", "path to the config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "do not clear the screen between turns")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "draw marks without color")

	return cmd
}
