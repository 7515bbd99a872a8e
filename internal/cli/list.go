package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/autolayout/pkg/demo"
)

// listCommand creates the list command, which prints the available scenes.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demo scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			scenes := demo.All()

			rows := make([][]string, len(scenes))
			for i, sc := range scenes {
				rows[i] = []string{sc.Name, sc.Description}
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Scene", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					if col == 0 {
						return StyleTitle
					}
					return StyleValue
				})

			fmt.Fprintln(out, t.Render())
			printNextStep(out, "Solve one", fmt.Sprintf("%s demo %s", appName, scenes[0].Name))
			return nil
		},
	}
}
