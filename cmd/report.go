package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/report"
)

var reportHTML bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the markdown team activity report",
	Long: `Correlates the configured snapshots and writes a team activity report
to the output directory. With --html an HTML rendering is written
alongside the markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		_, _, _, analysis, err := correlateSnapshot(cfg)
		if err != nil {
			return err
		}

		md := report.Markdown(analysis)

		outPath := reportPath(cfg)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to %s\n", outPath)

		if reportHTML {
			page, err := report.HTML(md)
			if err != nil {
				return err
			}
			htmlPath := strings.TrimSuffix(outPath, ".md") + ".html"
			if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
				return fmt.Errorf("writing HTML report: %w", err)
			}
			fmt.Printf("HTML report written to %s\n", htmlPath)
		}

		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "also write an HTML rendering")
	rootCmd.AddCommand(reportCmd)
}
