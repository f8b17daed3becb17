package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/planboard/core/whatif"
)

var (
	whatifTasks    int
	whatifAvgHours float64
	whatifCapacity float64
)

var whatifCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Estimate delivery time for a hypothetical backlog",
	RunE:  runWhatif,
}

func init() {
	whatifCmd.Flags().IntVar(&whatifTasks, "tasks", 5, "number of tasks")
	whatifCmd.Flags().Float64Var(&whatifAvgHours, "avg-hours", 3, "average hours per task")
	whatifCmd.Flags().Float64Var(&whatifCapacity, "capacity", 6, "daily capacity in hours")
	rootCmd.AddCommand(whatifCmd)
}

func runWhatif(cmd *cobra.Command, args []string) error {
	res, err := whatif.EstimateDelivery(whatif.Estimate{
		TaskCount:       whatifTasks,
		AvgHoursPerTask: whatifAvgHours,
		CapacityHours:   whatifCapacity,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Total effort: %g hours\n", res.TotalHours)
	fmt.Fprintf(cmd.OutOrStdout(), "Estimated days: %d\n", res.EstimatedDays)
	return nil
}
