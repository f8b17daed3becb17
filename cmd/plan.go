package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/planboard/core/planner"
	"github.com/kilianp07/planboard/infra/logger"
	"github.com/kilianp07/planboard/pkg/export"
)

var (
	planFile     string
	planCapacity float64
	planFormat   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Schedule a backlog file and print the result",
	Long: `Reads a backlog file with one task per line in the form
"task name | hours | YYYY-MM-DD" (hours and date optional), packs the
tasks into days and writes the schedule to stdout.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "backlog file (required)")
	planCmd.Flags().Float64Var(&planCapacity, "capacity", 6, "daily capacity in hours")
	planCmd.Flags().StringVar(&planFormat, "format", "json", "output format: json or csv")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	logg := logger.New("plan-command")
	raw, err := os.ReadFile(planFile)
	if err != nil {
		return fmt.Errorf("read backlog: %w", err)
	}
	parsed := planner.ParseTasks(string(raw))
	for _, warn := range parsed.Errors {
		logg.Warnf("%s", warn)
	}
	days, err := planner.Schedule(parsed.Tasks, planCapacity)
	if err != nil {
		return err
	}
	switch planFormat {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), days)
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), days)
	default:
		return fmt.Errorf("unsupported format: %s", planFormat)
	}
}
