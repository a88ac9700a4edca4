package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/audit"
	"github.com/teamlens/teamlens/internal/rag"
)

var askAnonymize bool

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about the team's work",
	Long: `Retrieves the most relevant activity profiles and answers the question
with the configured LLM. By default the employee corpus is used; with
--anonymize only task profiles are retrieved and the answer avoids
naming individuals.`,
	Args: cobra.MinimumNArgs(1),
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
		engine, err := newEngine(cfg, store)
		if err != nil {
			return err
		}

		mode := rag.ModeProfile
		if askAnonymize {
			mode = rag.ModeAnonymous
		}

		question := strings.Join(args, " ")
		answer, err := engine.Answer(ctx, question, mode)
		if err != nil {
			return err
		}

		fmt.Println(answer.Text)
		fmt.Fprintf(os.Stderr, "\n[%s | %d in + %d out tokens | $%.6f | %s]\n",
			answer.Model, answer.InputTokens, answer.OutputTokens,
			answer.CostUSD, answer.Duration.Round(10*time.Millisecond))

		if history, err := openHistory(cfg); err == nil {
			defer history.Close()
			_, err := history.Record(ctx, audit.Entry{
				Question:     question,
				Mode:         string(answer.Mode),
				Answer:       answer.Text,
				Model:        answer.Model,
				InputTokens:  answer.InputTokens,
				OutputTokens: answer.OutputTokens,
				CostUSD:      answer.CostUSD,
				Duration:     answer.Duration,
			})
			if err != nil {
				log.Printf("recording history entry: %v", err)
			}
		} else if verbose {
			log.Printf("opening history database: %v", err)
		}

		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askAnonymize, "anonymize", false, "answer from task profiles only, without naming individuals")
	rootCmd.AddCommand(askCmd)
}
