package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/services"
)

// LoadStateCmd creates the loadState command
func LoadStateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loadState",
		Short: "Merge rooms and people from a store into the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("db")
			if name == "" {
				name = app.Cfg.DefaultStoreName
			}

			result, err := services.LoadState(app.Ctx, app.Registry, app.Provider, app.Logger, name)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ State loaded from %q\n\n", name)
			fmt.Printf("Loaded:   %d offices, %d living spaces, %d fellows, %d staff\n",
				len(result.LoadedOffices), len(result.LoadedLivingSpaces),
				len(result.LoadedFellows), len(result.LoadedStaff))
			fmt.Printf("Modified: %d fellows, %d staff\n",
				len(result.ModifiedFellows), len(result.ModifiedStaff))
			if len(result.SkippedRooms) > 0 || len(result.SkippedPeople) > 0 {
				fmt.Printf("Skipped:  %d rooms, %d people\n",
					len(result.SkippedRooms), len(result.SkippedPeople))
				for _, room := range result.SkippedRooms {
					fmt.Printf("  ✗ room %q (%s)\n", room.Name, room.Type)
				}
				for _, person := range result.SkippedPeople {
					fmt.Printf("  ✗ person %d %s %s (%s)\n", person.ID, person.FirstName, person.LastName, person.Role)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("db", "", "Store name (defaults to the configured default store)")

	return cmd
}
