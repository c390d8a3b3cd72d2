package cli

import (
	"context"
	"fmt"

	"github.com/andy/piecework/internal/domain"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset data in the database",
	Long: `Reset data in the database.

Examples:
  piecework reset entries    # Delete all ledger entries, keep employees
  piecework reset all        # Wipe everything: entries and employees`,
}

var resetEntriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Delete all ledger entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(domain.ResetLedger,
			"This will delete ALL ledger entries. Employees are kept. Continue?",
			"All ledger entries have been deleted.")
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete ALL data: ledger entries and employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(domain.ResetAll,
			"This will delete ALL data (ledger entries and employees). Continue?",
			"All data has been deleted.")
	},
}

func runReset(scope domain.ResetScope, prompt, done string) error {
	if !confirmPrompt(prompt) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := appInstance.PayrollService.Reset(context.Background(), scope); err != nil {
		return err
	}

	fmt.Println(done)
	return nil
}

func init() {
	resetCmd.AddCommand(resetEntriesCmd)
	resetCmd.AddCommand(resetAllCmd)
}
