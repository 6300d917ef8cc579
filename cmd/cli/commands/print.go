package commands

import (
	"fmt"

	"github.com/campusops/roomcheck/pkg/core/model"
)

// printAssignments renders the assignment table for the terminal.
func printAssignments(assignments []model.Assignment) {
	if len(assignments) == 0 {
		fmt.Println("No assignments were produced.")
		fmt.Println()
		return
	}

	roomWidth := len("Room")
	for _, asg := range assignments {
		if len(asg.Room) > roomWidth {
			roomWidth = len(asg.Room)
		}
	}

	fmt.Printf("%-20s %-14s %-7s %-7s %-*s %-10s %-12s %s\n",
		"Student", "Day", "Start", "End", roomWidth, "Room", "Zone", "Priority", "Type")
	for _, asg := range assignments {
		fmt.Printf("%-20s %-14s %-7s %-7s %-*s %-10s %-12d %s\n",
			asg.Student, asg.Day, asg.ShiftStart, asg.ShiftEnd,
			roomWidth, asg.Room, asg.Zone, asg.Priority, asg.RoomType)
	}
	fmt.Println()
}
