package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/space-allocator/pkg/core/services"
)

// PrintAllocationsCmd creates the printAllocations command
func PrintAllocationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printAllocations",
		Short: "Print everyone who holds a room, with their allocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			report, err := services.Allocations(app.Registry)
			if err != nil {
				return err
			}

			lines := report.Lines()
			if output != "" {
				if err := services.WriteReport(lines, output); err != nil {
					return err
				}
				fmt.Printf("✓ Allocations saved to %q\n", output)
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
