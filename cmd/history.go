package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently answered questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		history, err := openHistory(cfg)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer history.Close()

		entries, err := history.Recent(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No questions recorded yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  [%s]  $%.6f\n", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Mode, e.CostUSD)
			fmt.Printf("  Q: %s\n", e.Question)
			fmt.Printf("  A: %s\n\n", truncate(e.Answer, 200))
		}

		total, err := history.TotalCost(cmd.Context())
		if err == nil {
			fmt.Printf("Total recorded spend: $%.4f\n", total)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
