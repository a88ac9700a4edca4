package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize teamlens configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure teamlens and generates a .teamlens.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
