package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusops/roomcheck/pkg/core/services"
)

// AssignCmd creates the assign command (single-week mode)
func AssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign student shifts to unoccupied rooms for one week",
		Long:  "Run the single-week assignment: each room is checked at most once, and an unchecked-rooms table is written alongside the assignments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("assign command", zap.Bool("dry_run", dryRun))

			result, err := services.AssignRooms(app.Ctx, app.Source, app.Cfg, app.Logger, dryRun)
			if err != nil {
				return fmt.Errorf("assignment failed: %w", err)
			}

			fmt.Printf("\n✓ Room assignment completed\n\n")
			fmt.Printf("Run ID:          %s\n", result.RunID)
			fmt.Printf("Shifts:          %d", result.ShiftCount)
			if result.ExcludedShifts > 0 {
				fmt.Printf(" (%d excluded by closures)", result.ExcludedShifts)
			}
			fmt.Println()
			fmt.Printf("Rooms:           %d\n", result.RoomCount)
			fmt.Printf("Assigned:        %d\n", len(result.Assignments))
			fmt.Printf("Unchecked:       %d\n\n", len(result.UnassignedRooms))

			printAssignments(result.Assignments)

			if dryRun {
				fmt.Println("This was a dry run. Use without --dry-run to write the output files.")
			} else {
				fmt.Printf("Output written to %s (%s, %s)\n",
					app.Cfg.OutputDir, services.AssignmentsFileName, services.UncheckedFileName)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Compute assignments without writing output files")

	return cmd
}
