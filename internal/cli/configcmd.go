package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCommand creates the config command, which prints the effective
// configuration as TOML.
func (c *CLI) configCommand() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as TOML.

The output can be saved as config.toml and edited. Values not present in
the file keep their defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showPath {
				path := c.configPath
				if path == "" {
					p, err := defaultConfigPath()
					if err != nil {
						return err
					}
					path = p
				}
				fmt.Fprintln(out, path)
				return nil
			}
			return writeConfig(out, c.Config)
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "print the config file location instead")
	return cmd
}
