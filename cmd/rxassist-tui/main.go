package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rxassist/rxassist/internal/config"
	"github.com/rxassist/rxassist/internal/llm"
	"github.com/rxassist/rxassist/internal/logger"
	"github.com/rxassist/rxassist/internal/query"
	"github.com/rxassist/rxassist/internal/tui"
)

func main() {
	_ = godotenv.Load()

	v := viper.GetViper()
	if len(os.Args) > 1 {
		v.SetConfigFile(os.Args[1])
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
	} else {
		v.SetConfigFile("rxassist.yaml")
		_ = v.ReadInConfig()
	}
	v.SetEnvPrefix("RXASSIST")
	v.AutomaticEnv()

	if err := config.Load(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	// Keep log output off the terminal the dashboard draws on.
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "rxassist.log"
	}
	if err := logger.Init(cfg.Logging.Level, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	var client llm.ChatClient
	if ollamaClient, err := llm.NewOllamaClient(cfg.LLM.Model, cfg.LLM.ServerURL); err != nil {
		logger.L().Warnw("language model unavailable", "err", err)
	} else {
		client = ollamaClient
	}

	suggester, err := query.NewSuggester()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading suggestions: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(cfg.DataDir, client, cfg.LLM.Timeout, suggester)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
