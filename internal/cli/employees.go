package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/andy/piecework/internal/domain"
	"github.com/spf13/cobra"
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Browse employees and their ledger entries",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		employees, err := appInstance.PayrollService.Employees(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		if len(employees) == 0 {
			fmt.Println("No employees found")
			return nil
		}

		fmt.Printf("%-10s %-30s %-12s\n", "ID", "Name", "Started")
		fmt.Println("------------------------------------------------------")
		for _, e := range employees {
			fmt.Printf("%-10d %-30s %-12s\n",
				e.ID,
				truncate(e.FullName(), 30),
				e.StartDate.Local().Format("2006-01-02"),
			)
		}

		fmt.Printf("\nTotal: %d employee(s)\n", len(employees))
		return nil
	},
}

var employeesEntriesCmd = &cobra.Command{
	Use:   "entries [id]",
	Short: "Show an employee's ledger entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid employee ID: %w", err)
		}

		employee, entries, err := appInstance.PayrollService.History(context.Background(), id)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("employee %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		fmt.Printf("%s (ID: %d)\n\n", employee.FullName(), employee.ID)
		if len(entries) == 0 {
			fmt.Println("No entries found")
			return nil
		}

		fmt.Printf("%-17s %10s %12s  %s\n", "Date", "Messages", "Pay", "Reference")
		fmt.Println("--------------------------------------------------------------------------------")
		for _, e := range entries {
			fmt.Printf("%-17s %10d %12s  %s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.UnitsSent,
				money(e.Pay),
				e.Reference,
			)
		}

		fmt.Printf("\nTotal: %d entr(ies)\n", len(entries))
		return nil
	},
}

func init() {
	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesEntriesCmd)
}
