package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skyguardian/uavacademy/internal/app"
	"github.com/skyguardian/uavacademy/internal/controller"
	"github.com/skyguardian/uavacademy/internal/i18n"
	"github.com/skyguardian/uavacademy/internal/logging"
	"github.com/skyguardian/uavacademy/internal/screen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	pack, err := loadContent(cfg)
	if err != nil {
		return err
	}
	text, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("starting",
		zap.String("version", version),
		zap.String("db", cfg.DBPath),
		zap.String("content", pack.Version()),
		zap.Int("topics", pack.Len()),
	)

	ctrl := controller.New(ctx, controller.Options{
		Content:  pack,
		States:   st.StateRepo(),
		Attempts: st.AttemptRepo(),
		Logger:   logger,
	})

	return app.Run(screen.Env{Ctrl: ctrl, Text: text})
}
