package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyguardian/uavacademy/internal/config"
	"github.com/skyguardian/uavacademy/internal/content"
	"github.com/skyguardian/uavacademy/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "uavacademy",
	Short: "Bilingual UAV knowledge browser",
	Long:  "UAV Academy: browse drone topics, bookmark them and take quizzes in Chinese or English, right in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides UAVACADEMY_DB)")
	rootCmd.PersistentFlags().String("log", "", "Path to log file (overrides UAVACADEMY_LOG)")
	rootCmd.PersistentFlags().String("content", "", "Directory holding knowledge.yaml (overrides UAVACADEMY_CONTENT)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment, then applies flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.LogPath = p
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.ContentDir = p
	}
	return cfg, nil
}

// openStore creates the database directory if needed and opens the store.
func openStore(cfg config.Config) (*store.Store, error) {
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func loadContent(cfg config.Config) (*content.Store, error) {
	pack, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return pack, nil
}
