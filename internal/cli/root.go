package cli

import (
	"github.com/andy/piecework/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "piecework",
	Short: "Piecework payroll for message senders",
	Long: `Piecework records how many messages each worker sent, pays them at a
tiered per-message rate, and keeps an encrypted ledger with running totals.

By default, running piecework without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

// NeedsApp reports whether the command line needs a database.
// Help, shell completion and the rate table run without one, so they never prompt for a key.
func NeedsApp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" || a == "help" {
			return false
		}
	}
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case ratesCmd.Name(), "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return true
}

func init() {
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuiCmd)
}
