package main

import (
	"context"
	"fmt"

	"adhibot/internal/content"
	"adhibot/internal/core"
	"adhibot/internal/llm"
	"adhibot/pkg/schema"
)

// app is the composition root: the snapshot and prompt are built once here
// and handed to the session explicitly.
type app struct {
	cfg      *core.Config
	logger   core.Logger
	snapshot schema.PortfolioSnapshot
	prompt   string
	client   *llm.Client
}

func newApp(ctx context.Context, cfg *core.Config, offline bool) (*app, error) {
	core.InstallDefault(cfg.LogLevel)
	logger := core.NewLogger(cfg.LogLevel)

	src, err := content.LoadFile(cfg.PortfolioFile)
	if err != nil {
		return nil, fmt.Errorf("load portfolio: %w", err)
	}

	snapshot := content.Aggregate(src)
	if snapshot.IsEmpty() {
		logger.Warn("Portfolio is empty", "path", src.Path())
	}

	var composer llm.Composer
	prompt := composer.Prompt(&snapshot)

	llmCfg := cfg.LLMConfig()

	var backend llm.Backend
	switch {
	case offline:
		backend = llm.NewLocalBackend(ctx, nil)
	case llmCfg.HasCredential():
		gemini, err := llm.NewGeminiBackend(ctx, llmCfg)
		if err != nil {
			return nil, err
		}
		backend = gemini
	default:
		// Startup-detectable: every chat turn will report the bot as not configured.
		logger.Warn("GEMINI_API_KEY is not set; replies will report a configuration error")
	}

	client, err := llm.NewClient(llmCfg, backend)
	if err != nil {
		return nil, err
	}

	logger.Info("Assistant ready",
		"model", client.Model(),
		"offline", offline,
		"prompt_length", len(prompt),
		"jobs", len(snapshot.Jobs),
		"projects", len(snapshot.Projects),
		"events", len(snapshot.Events),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		snapshot: snapshot,
		prompt:   prompt,
		client:   client,
	}, nil
}

func (a *app) newSession() *core.Session {
	return core.NewSession(a.snapshot, a.prompt, a.client, a.logger)
}

func (a *app) configured(offline bool) bool {
	return offline || a.cfg.GeminiAPIKey != ""
}
