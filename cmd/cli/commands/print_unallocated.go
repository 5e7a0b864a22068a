package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/services"
)

// PrintUnallocatedCmd creates the printUnallocated command
func PrintUnallocatedCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printUnallocated",
		Short: "Print everyone still missing an allocation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			report := services.Unallocated(app.Registry)
			lines := report.Lines()
			if len(lines) == 0 {
				fmt.Println("No unallocated people to print")
				return nil
			}

			if output != "" {
				if err := services.WriteReport(lines, output); err != nil {
					return err
				}
				fmt.Printf("✓ Unallocated people saved to %q\n", output)
				return nil
			}
			for _, line := range lines {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}
