// Package cli wires the kmon commands together. The root command runs
// the dashboard; subcommands cover one-shot output, diagnostics, and
// shell integration. Command logic lives in one file per command.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/kmon/internal/config"
	"github.com/rileyhilliard/kmon/internal/ui"
	"github.com/rileyhilliard/kmon/internal/util"
)

// rootCmd starts the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "kmon",
	Short: "Browse kernel device metrics from /sys/class",
	Long: `kmon is a terminal dashboard over the kernel's /sys/class tree.

It enumerates thermal zones, network interfaces, power supplies, and
LEDs, reads their attribute files live, and renders per-device
summaries: temperatures with overheat alerts, link state and traffic
counters, battery level and charge status.

Running kmon with no arguments opens the interactive dashboard.
Use 'kmon show' and 'kmon list' for one-shot output that works in
scripts and pipes.

Examples:
  kmon
  kmon --interval 5s
  kmon show thermal thermal_zone0
  kmon list net --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyUISettings(cfg)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("sysfs-root", config.DefaultSysfsRoot, "class tree to browse (env: KMON_SYSFS_ROOT)")
	pf.Duration("interval", config.DefaultInterval, "dashboard refresh interval (e.g. 2s, 500ms)")
	pf.Bool("no-color", false, "disable ANSI colors")
	pf.Bool("debug", false, "log debug detail to stderr")

	cobra.CheckErr(config.BindFlags(rootCmd))
}

// applyUISettings applies presentation flags before any output happens.
func applyUISettings(cfg *config.Config) {
	if cfg.NoColor {
		ui.DisableColors()
	}
	if cfg.Debug {
		os.Setenv("KMON_DEBUG", "1")
	}
}

// Execute runs the root command. On failure the error is printed in
// the active output mode and the process exits nonzero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	if MachineMode() {
		_ = WriteJSONFromError(os.Stdout, err)
		os.Exit(1)
	}

	if isUnknownCommandError(err) {
		printUnknownCommand(err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// isUnknownCommandError matches cobra's unknown command and unknown
// flag errors, which get a suggestion instead of a usage dump.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted name out of cobra's
// `unknown command "foo" for "kmon"` message. Returns "" when the
// message carries no quoted name.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	rest := msg[start+1:]
	end := strings.Index(rest, `"`)
	if end == -1 {
		return ""
	}
	return rest[:end]
}

// printUnknownCommand reports an unrecognized command, suggesting the
// closest registered one when a near-miss exists.
func printUnknownCommand(err error) {
	name := extractUnknownCommand(err)
	if name == "" {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	fmt.Fprintf(os.Stderr, "%s Unknown command: %s\n", ui.ErrorStyle().Render("✗"), name)

	if suggestions := util.SuggestSimilar(name, commandNames(), 2); len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\n  Did you mean 'kmon %s'?\n", suggestions[0])
		return
	}
	fmt.Fprintln(os.Stderr, "\n  Run 'kmon --help' to see available commands.")
}

// commandNames lists the registered subcommands for suggestion matching.
func commandNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.Hidden {
			continue
		}
		names = append(names, c.Name())
	}
	return names
}
