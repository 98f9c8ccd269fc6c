package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"adhibot/internal/content"
	"adhibot/internal/core"
	"adhibot/internal/llm"
	"adhibot/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "adhibot",
	Short:         "Portfolio chat assistant grounded on CMS content",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	Long: `Chat with the assistant in the terminal.

Examples:
  adhibot chat
  adhibot chat --portfolio ./portfolio.yaml
  adhibot chat --offline`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, offline, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, offline)
		if err != nil {
			return err
		}

		cli := core.NewCLISession(a.newSession(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg.RevealInterval)
		if err := cli.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// --- prompt ---

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the composed system prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		src, err := content.LoadFile(cfg.PortfolioFile)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), llm.ComposeSystemPrompt(content.Aggregate(src)))
		return nil
	},
}

// --- serve ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve one chat session over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, offline, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, offline)
		if err != nil {
			return err
		}

		handler := server.NewHandler(server.Deps{
			Session:    a.newSession(),
			Context:    ctx,
			Configured: a.configured(offline),
			Logger:     a.logger,
		})

		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
			BaseContext: func(_ net.Listener) context.Context {
				return ctx
			},
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("Listening", "addr", cfg.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case <-ctx.Done():
			a.logger.Info("Shutting down")
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func loadConfig(cmd *cobra.Command) (*core.Config, bool, error) {
	envFile, _ := cmd.Flags().GetString("env-file")

	var cfg *core.Config
	var err error
	if envFile != "" {
		cfg, err = core.LoadConfig(envFile)
	} else {
		cfg, err = core.LoadConfig()
	}
	if err != nil {
		return nil, false, err
	}

	if path, _ := cmd.Flags().GetString("portfolio"); path != "" {
		cfg.PortfolioFile = path
	}
	offline, _ := cmd.Flags().GetBool("offline")
	return cfg, offline, nil
}

func init() {
	rootCmd.PersistentFlags().String("portfolio", "", "path to the CMS export (default: $PORTFOLIO_FILE or portfolio.yaml)")
	rootCmd.PersistentFlags().String("env-file", "", "dotenv file to load (default: .env)")
	rootCmd.PersistentFlags().Bool("offline", false, "answer from the local portfolio model instead of Gemini")

	serveCmd.Flags().String("addr", "", "listen address (default: $ADHIBOT_ADDR)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(serveCmd)
}
