package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/services"
)

// SaveStateCmd creates the saveState command
func SaveStateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saveState",
		Short: "Save all rooms and people to a store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("db")
			override, _ := cmd.Flags().GetBool("override")
			if name == "" {
				name = app.Cfg.DefaultStoreName
			}

			result, err := services.SaveState(app.Ctx, app.Registry, app.Provider, app.Logger, services.SaveOptions{
				Name:     name,
				Override: override,
			})
			if err != nil {
				return err
			}

			if result.Pending {
				fmt.Printf("\nStore %q already exists. Re-run with --override to replace its contents.\n", result.Target.Name)
				return nil
			}

			fmt.Printf("\n✓ Saved %d rooms and %d people to %q (snapshot %s)\n",
				result.Rooms, result.People, result.Target.Name, result.SnapshotID)
			return nil
		},
	}

	cmd.Flags().String("db", "", "Store name (defaults to the configured default store)")
	cmd.Flags().Bool("override", false, "Write even when the store already exists")

	return cmd
}
