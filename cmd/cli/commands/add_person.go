package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/model"
)

// AddPersonCmd creates the addPerson command
func AddPersonCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addPerson <first_name> <last_name> <fellow|staff> [yes|no]",
		Short: "Add a person and randomly allocate rooms",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			accommodation := ""
			if len(args) > 3 {
				accommodation = args[3]
			}
			wants, err := model.ParseAccommodation(accommodation)
			if err != nil {
				return err
			}

			result, err := app.Registry.AddPerson(args[0], args[1], args[2], wants)
			if err != nil {
				return err
			}

			person := result.Person
			fmt.Printf("\n✓ Added %s %q (id %d)\n", person.Role, person.FullName(), person.ID)
			if result.Office != nil {
				fmt.Printf("  Allocated office: %s\n", result.Office.Name)
			} else {
				fmt.Printf("  No office with space available for %q\n", person.FullName())
			}
			if person.Role == model.Fellow && wants {
				if result.LivingSpace != nil {
					fmt.Printf("  Allocated living space: %s\n", result.LivingSpace.Name)
				} else {
					fmt.Printf("  No living space with room available for %q\n", person.FullName())
				}
			}
			return nil
		},
	}
}
