// Command writepilot runs the AI-assisted blog CMS backend.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tesso57/writepilot/internal/application/usecase"
	"github.com/tesso57/writepilot/internal/infrastructure/ai/openaichat"
	"github.com/tesso57/writepilot/internal/infrastructure/config"
	"github.com/tesso57/writepilot/internal/infrastructure/store"
	"github.com/tesso57/writepilot/internal/presentation/web"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default ~/.config/writepilot/config.yaml)")
	addr := flag.String("addr", "", "http listen address (overrides config)")
	dbPath := flag.String("db", "", "sqlite database path (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *addr, *dbPath, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, addr, dbPath string, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Settings.Addr = addr
	}
	if dbPath != "" {
		cfg.Settings.DatabaseFile = dbPath
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Settings.DatabaseFile), 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	st, err := store.Open(cfg.Settings.DatabaseFile)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	llm, err := openaichat.NewClient(openaichat.Config{
		APIKey:  cfg.Settings.LLM.APIKey,
		Model:   cfg.Settings.LLM.Model,
		BaseURL: cfg.Settings.LLM.BaseURL,
	})
	if err != nil {
		return err
	}

	service := usecase.NewArticleService(st, usecase.NewPromptDraftGenerator(llm))
	srv, err := web.NewServer(service, logger)
	if err != nil {
		return err
	}

	logger.Info("listening", "addr", cfg.Settings.Addr, "db", cfg.Settings.DatabaseFile, "model", cfg.Settings.LLM.Model)
	return http.ListenAndServe(cfg.Settings.Addr, srv.Routes())
}
