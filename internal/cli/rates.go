package cli

import (
	"errors"
	"fmt"

	"github.com/andy/piecework/internal/domain"
	"github.com/spf13/cobra"
)

var ratesCmd = &cobra.Command{
	Use:   "rates [messages]",
	Short: "Show the pay rate tiers, or quote pay for a message count",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			rate, pay, err := domain.Quote(args[0])
			var verrs domain.ValidationErrors
			if errors.As(err, &verrs) {
				return fmt.Errorf("%s", verrs)
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s message(s) at %s = %s\n", args[0], rate, money(pay))
			return nil
		}

		fmt.Printf("%-20s %s\n", "Messages", "Rate")
		fmt.Println("------------------------------")
		for _, t := range domain.Tiers() {
			span := fmt.Sprintf("%d+", t.Min)
			if t.Max > 0 {
				span = fmt.Sprintf("%d - %d", t.Min, t.Max-1)
			}
			fmt.Printf("%-20s %s\n", span, t.Rate)
		}
		fmt.Printf("\nAccepted per entry: %d - %d messages\n", domain.MinUnits, domain.MaxUnits)
		return nil
	},
}
