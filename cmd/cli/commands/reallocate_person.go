package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/allocator"
)

// ReallocatePersonCmd creates the reallocatePerson command
func ReallocatePersonCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reallocatePerson <person_id> <room_name>",
		Short: "Move a person into the named room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, _ := cmd.Flags().GetBool("confirm")

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("person_id must be a number: %w", err)
			}

			person, err := app.Registry.FindPerson(id)
			if err != nil {
				return err
			}
			room, err := app.Registry.FindRoom(args[1])
			if err != nil {
				return err
			}

			outcome, err := allocator.Allocate(person, room, confirm)
			if err != nil {
				return err
			}
			if outcome.Pending != nil {
				fmt.Printf("\n%s %s\n", outcome.Pending, "(re-run with --confirm to proceed)")
				return nil
			}

			fmt.Printf("\n✓ Allocated %q to %s %q\n", person.FullName(), room.Kind, room.Name)
			return nil
		},
	}

	cmd.Flags().Bool("confirm", false, "Confirm moving a person who already holds a room of this kind")

	return cmd
}
