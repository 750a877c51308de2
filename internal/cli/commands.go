package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/kmon/internal/errors"
)

// Command-specific flags
var (
	showJSON   bool
	showYAML   bool
	listJSON   bool
	doctorJSON bool
)

// showCmd prints one device's metric summary and exits
var showCmd = &cobra.Command{
	Use:   "show [category] [device]",
	Short: "Print one device's metrics and exit",
	Long: `Classify one device and print its metric summary without the dashboard.

Missing arguments are filled in interactively: with no category an
arrow-key menu offers the four categories, and with no device a
filterable picker lists the category's devices. In a pipe or script
both arguments must be passed explicitly.

Examples:
  kmon show
  kmon show thermal
  kmon show thermal thermal_zone0
  kmon show net eth0 --json
  kmon show power_supply BAT0 --yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = showJSON
		return showCommand(args, showJSON, showYAML)
	},
}

// listCmd lists the categories or one category's devices
var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List categories or one category's devices",
	Long: `List the four fixed categories, or the devices under one of them.

With a category argument every device directory is enumerated and
classified, showing the claiming driver and the first summary line.

Examples:
  kmon list
  kmon list thermal
  kmon list net --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = listJSON
		return listCommand(args, listJSON)
	},
}

// doctorCmd diagnoses why categories, devices, or metrics are missing
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose sysfs and terminal issues",
	Long: `Run diagnostic checks against the class tree and the host.

Checks:
  - the class root exists and is readable
  - each category root is present
  - the drivers claim the devices that were found
  - procfs is mounted for the dashboard's host line
  - stdout is a terminal for interactive use

Examples:
  kmon doctor
  kmon doctor --json
  kmon doctor --sysfs-root ./testdata/class`,
	RunE: func(cmd *cobra.Command, args []string) error {
		machineMode = doctorJSON
		return doctorCommand(doctorJSON)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for kmon.

Examples:
  # Bash
  kmon completion bash > /etc/bash_completion.d/kmon

  # Zsh
  kmon completion zsh > "${fpath[1]}/_kmon"

  # Fish
  kmon completion fish > ~/.config/fish/completions/kmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrUsage,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// show command flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output in JSON format")
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "output in YAML format")

	// list command flags
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")

	// doctor command flags
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")

	// Register all commands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
