// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command folio serves and builds the portfolio site.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olegiv/folio/internal/config"
	"github.com/olegiv/folio/internal/logging"
	"github.com/olegiv/folio/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// app carries what every command needs once the root command has run.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	logOut io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{logOut: stderr}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Render a portfolio site from a content document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newServeCmd(a),
		newBuildCmd(a),
		newInspectCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	a.logger = logging.New(a.logOut, cfg.LogLevel, cfg.IsDevelopment())
	slog.SetDefault(a.logger)
	return nil
}

func versionInfo() version.Info {
	return version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionInfo().String())
			return err
		},
	}
}
