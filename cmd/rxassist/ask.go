package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rxassist/rxassist/internal/config"
	"github.com/rxassist/rxassist/internal/llm"
	"github.com/rxassist/rxassist/internal/logger"
	"github.com/rxassist/rxassist/internal/query"
)

var askSuggest bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the pharmacy dataset",
	Long: `Routes the question through the keyword intent router. Questions about
prices, coverage, generics, or authorization requirements are answered
directly from the data; anything else goes to the configured language model.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		st, err := loadStore()
		if err != nil {
			return err
		}

		cfg := config.Get()
		var client llm.ChatClient
		ollamaClient, err := llm.NewOllamaClient(cfg.LLM.Model, cfg.LLM.ServerURL)
		if err != nil {
			// Analyzer-backed questions still work without a model.
			logger.L().Warnw("language model unavailable", "err", err)
		} else {
			client = ollamaClient
		}

		engine := query.NewEngine(st, client, cfg.LLM.Timeout)
		fmt.Println(engine.Response(cmd.Context(), question))

		if askSuggest {
			suggester, err := query.NewSuggester()
			if err != nil {
				return err
			}
			if related := suggester.Suggest(question); len(related) > 0 {
				fmt.Println("Related questions:")
				for _, rq := range related {
					fmt.Printf("  - %s\n", rq)
				}
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askSuggest, "suggest", false, "also print related question suggestions")
}
