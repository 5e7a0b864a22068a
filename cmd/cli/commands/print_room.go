package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/services"
)

// PrintRoomCmd creates the printRoom command
func PrintRoomCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "printRoom <room_name>",
		Short: "Print the people occupying the named room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.Room(app.Registry, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n%s (%s, %d/%d occupied)\n", report.Room.Name, report.Room.Kind,
				report.Room.Occupants(), report.Room.Capacity())
			if len(report.Members) == 0 {
				fmt.Println("  The room is empty")
				return nil
			}
			for _, person := range report.Members {
				fmt.Printf("  %s (%s)\n", person.FullName(), person.Role)
			}
			return nil
		},
	}
}
