// ABOUTME: CLI commands for viewing and changing preferences.
// ABOUTME: show, set and path subcommands over the JSON config file.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change preferences",
	Long: `View or change bmi preferences.

KEYS:

  format          default output format (text, json, yaml, markdown)
  no_color        disable colors (true/false)
  default_gender  gender used when --gender is omitted (male, female, or empty)
  verbose         debug logging to stderr (true/false)

Environment variables BMI_FORMAT, BMI_NO_COLOR, BMI_DEFAULT_GENDER and
BMI_VERBOSE override the file.

EXAMPLES:

  bmi config show
  bmi config set default_gender female
  bmi config set format markdown
  bmi config path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		for _, kv := range cfg.Values() {
			value := kv[1]
			if value == "" {
				value = faint.Sprint("(unset)")
			}
			fmt.Fprintf(out, "%-16s %s\n", kv[0], value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load without env overrides so they are not persisted.
		fileCfg, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := fileCfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		logger.Debug("config saved", "path", config.GetConfigPath(), "key", args[0])

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Set %s = %s", args[0], strings.TrimSpace(args[1])))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
