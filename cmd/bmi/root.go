// ABOUTME: Root Cobra command for bmi CLI.
// ABOUTME: Loads config and sets up color and logging via PersistentPreRunE.
package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harperreed/bmi/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	logger  *log.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bmi",
	Short: "BMI calculator with diet recommendations",
	Long: `BMI is a CLI tool that turns height, weight, age and gender into a body
mass index, a weight category and a matching nutrition plan.

WHAT IT COMPUTES:

  BMI            weight / height², shown to one decimal
  Category       underweight (<18.5), normal (<24), overweight (<27), obese
  Ideal weight   the weight range that keeps BMI between 18.5 and 24
  BMR            Mifflin-St Jeor resting energy, in kcal/day

QUICK START:

  $ bmi calc --gender male --height 175 --weight 70 --age 30
  $ bmi calc -g f -H 160 -W 58 -a 25 --brief
  $ bmi calc -g m -H 180 -W 95 -a 40 --format markdown -o ~/bmi.md
  $ bmi guide obese female            # Show a plan directly

REFERENCE TABLES:

  $ bmi diets                         # Healthy plate, Mediterranean, DASH
  $ bmi eating-out                    # Ordering rules when dining out
  $ bmi habits                        # Micro-habit checklist
  $ bmi categories                    # Thresholds and labels

CONFIGURATION:

  Preferences live in ~/.config/bmi/config.json and can be overridden with
  BMI_FORMAT, BMI_NO_COLOR, BMI_DEFAULT_GENDER and BMI_VERBOSE.

  $ bmi config set default_gender female
  $ bmi config set format markdown

MCP INTEGRATION:

  Run 'bmi mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "bmi": { "command": "bmi", "args": ["mcp"] }
    }
  }

Nothing is stored: every calculation is computed fresh from its inputs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.NoColor {
			color.NoColor = true
		}

		logger = newLogger(cmd.ErrOrStderr(), verbose || cfg.Verbose)
		logger.Debug("config loaded", "path", config.GetConfigPath(), "format", cfg.GetFormat())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger writes to w at info level, or debug when verbose.
func newLogger(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "bmi"})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
