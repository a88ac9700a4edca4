package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "teamlens",
	Short: "Team activity profiling and retrieval-augmented Q&A",
	Long: `Teamlens correlates jira tickets, git commits, and emails into
task-centric and employee-centric activity profiles, derives team
analytics from them, and answers questions about the team's work
through semantic retrieval over the indexed profiles.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
