package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show payroll totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := appInstance.SummaryService.Summary(context.Background())
		if err != nil {
			return fmt.Errorf("failed to compute summary: %w", err)
		}

		fmt.Printf("%-16s %d\n", "Workers:", s.TotalWorkers)
		fmt.Printf("%-16s %d\n", "Messages:", s.TotalMessages)
		fmt.Printf("%-16s %s\n", "Total pay:", money(s.TotalPay))
		fmt.Printf("%-16s %s\n", "Average pay:", money(s.AveragePay))
		return nil
	},
}
