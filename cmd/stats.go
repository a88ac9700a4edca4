package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print team activity statistics from the configured snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		_, _, _, report, err := correlateSnapshot(cfg)
		if err != nil {
			return err
		}

		if statsJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding stats: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		s := report.Stats
		fmt.Printf("Team members:     %d\n", s.TotalEmployees)
		fmt.Printf("Tickets assigned: %d\n", s.TotalAssigned)
		fmt.Printf("Tickets resolved: %d\n", s.TotalResolved)
		fmt.Printf("Commits:          %d\n", s.TotalCommits)
		fmt.Printf("Emails sent:      %d\n", s.TotalSent)
		fmt.Printf("Emails received:  %d\n", s.TotalReceived)

		if len(s.TopCommitters) > 0 {
			fmt.Printf("\nTop committers:    %s\n", strings.Join(s.TopCommitters, ", "))
		}
		if len(s.TopResolvers) > 0 {
			fmt.Printf("Top resolvers:     %s\n", strings.Join(s.TopResolvers, ", "))
		}

		fmt.Println("\nRoles:")
		fmt.Printf("  Developers:    %s\n", joinOrNone(report.Roles.Developers))
		fmt.Printf("  Communicators: %s\n", joinOrNone(report.Roles.Communicators))
		fmt.Printf("  Managers:      %s\n", joinOrNone(report.Roles.Managers))

		return nil
	},
}

func joinOrNone(people []string) string {
	if len(people) == 0 {
		return "(none)"
	}
	return strings.Join(people, ", ")
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit the full report as JSON")
	rootCmd.AddCommand(statsCmd)
}
