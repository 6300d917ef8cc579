package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListRoomsCmd creates the listRooms command
func ListRoomsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRooms",
		Short: "List the cleaned room inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, err := app.Source.Rooms(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			app.Logger.Info("Rooms loaded", zap.Int("count", len(rooms)))

			fmt.Printf("\nFound %d rooms:\n\n", len(rooms))
			fmt.Printf("%-20s %-10s %-12s %-8s %s\n", "Room", "Building", "Zone", "Priority", "Type")
			for _, room := range rooms {
				fmt.Printf("%-20s %-10s %-12s %-8d %s\n",
					room.Name, room.Building, room.Zone, room.Priority, room.Type)
			}
			fmt.Println()

			return nil
		},
	}
}
