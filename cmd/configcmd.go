package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmillana/plz-cli/internal/config"
)

// newConfigCmd creates the config subcommand group
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the plz configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a commented config file in the user config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfigFile()
			if err != nil {
				return err
			}
			fmt.Printf("Created config file at %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "paths",
		Short: "Show the config file locations checked at startup",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, path := range config.GetConfigPaths() {
				fmt.Println(path)
			}
		},
	})

	return cmd
}
