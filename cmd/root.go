package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/composition/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "composition",
	Short: "Timed arithmetic quiz: find the missing addend",
	Long: "Composition shows a sum and one of its addends; pick the missing number\n" +
		"before the clock runs out. Reach the level's count and percent to win.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addSessionFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

// addSessionFlags registers the flags shared by the root and play commands.
func addSessionFlags(c *cobra.Command) {
	f := c.PersistentFlags()
	f.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/composition/config.yaml)")
	f.StringP("level", "l", "", "Level to play: test, easy, normal or hard (skips the level picker)")
	f.Bool("plain", false, "Use the line-oriented mode instead of the full-screen UI")
	f.Uint64("seed", 0, "Seed for reproducible questions (0 = random)")
	f.String("log", "", "Append debug logs to this file")
}

// loadConfig reads the config file and environment, then applies any flags
// the user set explicitly (highest priority).
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Level, _ = flags.GetString("level")
	}
	if flags.Changed("plain") {
		cfg.Plain, _ = flags.GetBool("plain")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log") {
		cfg.LogFile, _ = flags.GetString("log")
	}
	return cfg, nil
}
