package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/corgi-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check level configs",
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in level config",
	Long: `Print the embedded corgi.yaml. Save it to ~/.corgi/configs/corgi.yaml
or ./configs/corgi.yaml to customise the level.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), string(config.GetDefaultYAML()))
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a level config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFile(args[0])
		if err != nil {
			return err
		}
		items, points := 0, 0
		for _, g := range cfg.Consumables {
			items += len(g.Positions)
			points += len(g.Positions) * g.Score
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%dx%d world, %d items worth %d, win at %d)\n",
			args[0], cfg.Window.Width, cfg.Window.Height, items, points, cfg.Gameplay.WinScore)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configValidateCmd)
}
