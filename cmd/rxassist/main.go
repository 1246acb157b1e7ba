package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rxassist/rxassist/internal/config"
	"github.com/rxassist/rxassist/internal/logger"
	"github.com/rxassist/rxassist/internal/output"
	"github.com/rxassist/rxassist/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rxassist",
	Short: "Pharmacy data assistant CLI",
	Long:  "Query a pharmacy dataset (medications, price rules, policies) from the command line.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environments set variables directly.
		_ = godotenv.Load()

		v := viper.GetViper()
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		} else {
			v.SetConfigFile("rxassist.yaml")
			// Missing default config is fine; defaults and flags apply.
			_ = v.ReadInConfig()
		}
		v.SetEnvPrefix("RXASSIST")
		v.AutomaticEnv()

		if err := config.Load(v); err != nil {
			return err
		}

		cfg := config.Get()
		return logger.Init(cfg.Logging.Level, cfg.Logging.File)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "rxassist %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Version)
		}
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print headline dataset statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		summary, err := st.Summary()
		if err != nil {
			return err
		}
		output.WriteSummary(os.Stdout, summary)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the sample dataset files if they are missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.Get().DataDir
		if err := store.EnsureSampleData(dir); err != nil {
			return err
		}
		fmt.Printf("Sample data ready in %s\n", dir)
		return nil
	},
}

// loadStore loads the dataset or fails the command; every query subcommand
// refuses to run without a loaded store.
func loadStore() (*store.Store, error) {
	st := store.NewStore(config.Get().DataDir)
	if err := st.Load(); err != nil {
		return nil, fmt.Errorf("dataset unavailable: %w", err)
	}
	return st, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default rxassist.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding the dataset CSV files")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
