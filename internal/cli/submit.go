package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/piecework/internal/domain"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit <id> <\"First Last\"> <messages>",
	Short: "Record a worker's messages and pay",
	Long: `Validate a worker's submission and append it to the ledger.

Examples:
  piecework submit 7 "Ada Lovelace" 2500
  piecework submit 7 2500 --first Ada --last Lovelace`,
	Args: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("first") || cmd.Flags().Changed("last") {
			return cobra.ExactArgs(2)(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var (
			worker *domain.Worker
			entry  *domain.LedgerEntry
			err    error
		)
		if len(args) == 2 {
			first, _ := cmd.Flags().GetString("first")
			last, _ := cmd.Flags().GetString("last")
			worker, entry, err = appInstance.PayrollService.SubmitParts(ctx, args[0], first, last, args[1])
		} else {
			worker, entry, err = appInstance.PayrollService.Submit(ctx, args[0], args[1], args[2])
		}

		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				fmt.Printf("✗ %s\n", e)
			}
			return fmt.Errorf("submission rejected")
		}
		if err != nil {
			return fmt.Errorf("failed to record submission: %w", err)
		}

		fmt.Printf("✓ Recorded %d message(s) for %s (ID: %d)\n", worker.UnitsSent, worker.FullName(), worker.ID)
		fmt.Printf("  Rate: %s per message\n", worker.Rate)
		fmt.Printf("  Pay:  %s\n", money(worker.Pay))
		fmt.Printf("  Ref:  %s\n", entry.Reference)
		return nil
	},
}

func init() {
	submitCmd.Flags().String("first", "", "first name (use with --last instead of a combined name)")
	submitCmd.Flags().String("last", "", "last name")
}
