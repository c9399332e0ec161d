package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"stock-check/core/config"
	"stock-check/core/database"
	"stock-check/core/logger"
	"stock-check/core/register"
	"stock-check/core/sessionstore"
	"stock-check/core/spreadsheet"
	"stock-check/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openStore connects only what the configured session backend needs.
func openStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (sessionstore.Store, error) {
	var client storage.Client
	var db *gorm.DB

	switch cfg.Session.Backend {
	case "database":
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		db = conn
		l.Info("Connected to session database", zap.String("driver", cfg.Database.Driver))
	case "memory":
		l.Warn("Sessions are kept in memory and lost on exit")
	default:
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		client = c
	}

	store, err := sessionstore.New(ctx, cfg.Session, client, cfg.Storage.Bucket, db)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, nil
}

// readTable parses a register file from disk.
func readTable(path string) (register.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return register.Table{}, fmt.Errorf("failed to open register: %w", err)
	}
	defer f.Close()
	return spreadsheet.ReadTable(f, filepath.Base(path))
}

// confirm prompts on out and reads a yes/no answer from in.
func confirm(in *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [yes/no]: ", prompt)
	response, err := in.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "yes" || response == "y"
}
