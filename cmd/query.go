package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/vectordb"
)

var (
	queryLimit       int
	queryClusterType string
)

var queryCmd = &cobra.Command{
	Use:   "query <search terms>",
	Short: "Search the indexed profiles semantically",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}

		var filter *vectordb.SearchFilter
		if queryClusterType != "" {
			clusterType := vectordb.ClusterType(queryClusterType)
			if clusterType != vectordb.ClusterTask && clusterType != vectordb.ClusterEmployee {
				return fmt.Errorf("--type must be task or employee, got %q", queryClusterType)
			}
			filter = &vectordb.SearchFilter{ClusterType: &clusterType}
		}

		query := strings.Join(args, " ")
		results, err := store.Search(ctx, query, queryLimit, filter)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		fmt.Print(vectordb.FormatResults(results))
		return nil
	},
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", 5, "maximum number of results")
	queryCmd.Flags().StringVar(&queryClusterType, "type", "", "restrict to one profile kind (task or employee)")
	rootCmd.AddCommand(queryCmd)
}
