package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/services"
)

// LoadPeopleCmd creates the loadPeople command
func LoadPeopleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "loadPeople <file>",
		Short: "Bulk-add people from a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !filepath.IsAbs(path) && app.Cfg.FilesDirectory != "" {
				if _, err := os.Stat(path); err != nil {
					path = filepath.Join(app.Cfg.FilesDirectory, path)
				}
			}

			result, err := services.LoadPeople(app.Registry, app.Logger, path)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Loaded %d people\n", len(result.Loaded))
			for _, added := range result.Loaded {
				office := "-"
				if added.Office != nil {
					office = added.Office.Name
				}
				fmt.Printf("  %s (%s) office: %s\n", added.Person.FullName(), added.Person.Role, office)
			}
			if len(result.Ignored) > 0 {
				fmt.Printf("\nIgnored %d badly formatted lines:\n", len(result.Ignored))
				for _, line := range result.Ignored {
					fmt.Printf("  ✗ %s\n", line)
				}
			}
			return nil
		},
	}
}
