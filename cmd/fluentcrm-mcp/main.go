// Command fluentcrm-mcp exposes a FluentCRM installation as an MCP tool
// server, over stdio or HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fluentcrm-mcp/internal/config"
	"fluentcrm-mcp/internal/fluentcrm"
	"fluentcrm-mcp/internal/i18n"
	"fluentcrm-mcp/internal/server"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fluentcrm-mcp",
		Short:         "MCP server for FluentCRM",
		SilenceUsage:  true,
		SilenceErrors: false,
		// Bare invocation keeps the historical behavior: PORT set
		// selects HTTP mode, otherwise the process speaks MCP on
		// stdio.
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cfg.Port != "" {
				return runHTTP(cmd.Context(), cfg)
			}
			return runStdio(cmd.Context(), cfg)
		},
	}

	httpCmd := &cobra.Command{
		Use:   "http",
		Short: "Serve MCP over HTTP with per-session credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			if cfg.Port == "" {
				cfg.Port = "3000"
			}
			return runHTTP(cmd.Context(), cfg)
		},
	}
	httpCmd.Flags().String("port", "", "listen port (default $PORT or 3000)")

	stdioCmd := &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP on standard input/output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStdio(cmd.Context(), config.Load())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fluentcrm-mcp %s\n", version)
		},
	}

	root.AddCommand(httpCmd, stdioCmd, versionCmd)
	return root
}

// newLogger writes to stderr: in stdio mode stdout belongs to the protocol.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func translator(cfg config.Config, logger *slog.Logger) *i18n.Translator {
	tr, ok := i18n.New(cfg.Lang)
	if !ok {
		logger.Warn("unknown MCP_LANG, falling back to en", "lang", cfg.Lang)
	}
	return tr
}

func runStdio(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger()
	client := fluentcrm.New(cfg.APIURL, cfg.APIUsername, cfg.APIPassword)
	srv := server.New(client, translator(cfg, logger), logger)
	return srv.ServeStdio(ctx)
}

func runHTTP(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger()
	if cfg.AuthToken == "" {
		logger.Warn("MCP_AUTH_TOKEN not set; /mcp is open. Set MCP_AUTH_TOKEN to secure it.")
	}

	h := server.NewHTTP(server.HTTPConfig{
		Port:        cfg.Port,
		AuthToken:   cfg.AuthToken,
		KeepAlive:   cfg.KeepAlive,
		APIURL:      cfg.APIURL,
		APIUsername: cfg.APIUsername,
		APIPassword: cfg.APIPassword,
	}, translator(cfg, logger), logger)
	return h.Start(ctx)
}
