package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusops/roomcheck/pkg/core/services"
)

// AssignTwoWeeksCmd creates the assignTwoWeeks command
func AssignTwoWeeksCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignTwoWeeks",
		Short: "Assign student shifts to rooms across a two-week period",
		Long:  "Run the two-week assignment: per-room check time is halved and each shift's rooms are split evenly between week 1 and week 2.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("assignTwoWeeks command", zap.Bool("dry_run", dryRun))

			result, err := services.AssignTwoWeeks(app.Ctx, app.Source, app.Cfg, app.Logger, dryRun)
			if err != nil {
				return fmt.Errorf("two-week assignment failed: %w", err)
			}

			fmt.Printf("\n✓ Two-week room assignment completed\n\n")
			fmt.Printf("Run ID:          %s\n", result.RunID)
			fmt.Printf("Shifts:          %d", result.ShiftCount)
			if result.ExcludedShifts > 0 {
				fmt.Printf(" (%d excluded by closures)", result.ExcludedShifts)
			}
			fmt.Println()
			fmt.Printf("Rooms:           %d\n", result.RoomCount)
			fmt.Printf("Check time:      %d min/room (halved)\n", result.EffectiveCheckMinutes)
			fmt.Printf("Assigned:        %d\n\n", len(result.Assignments))

			printAssignments(result.Assignments)

			if dryRun {
				fmt.Println("This was a dry run. Use without --dry-run to write the output file.")
			} else {
				fmt.Printf("Output written to %s (%s)\n", app.Cfg.OutputDir, services.TwoWeekFileName)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute assignments without writing the output file")

	return cmd
}
