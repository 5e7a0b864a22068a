package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/model"
)

// CreateRoomCmd creates the createRoom command
func CreateRoomCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "createRoom <office|living-space> <name>...",
		Short: "Create one or more rooms of the given category",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseRoomKind(args[0])
			if err != nil {
				return err
			}

			created, err := app.Registry.CreateRooms(args[1:], kind)
			for _, room := range created {
				fmt.Printf("✓ Created %s %q (capacity %d)\n", room.Kind, room.Name, room.Capacity())
			}
			return err
		},
	}
}
