// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olegiv/folio/internal/site"
	"github.com/olegiv/folio/internal/util"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		watch  bool
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir != "" {
				a.cfg.OutputDir = outDir
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.build(ctx, watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when files in FOLIO_SITE_DIR change")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides FOLIO_OUTPUT_DIR)")
	return cmd
}

func (a *app) build(ctx context.Context, watch bool) error {
	if watch && a.cfg.UseEmbeddedSite() {
		return errors.New("--watch needs FOLIO_SITE_DIR; the embedded site never changes")
	}
	if !a.cfg.UseEmbeddedSite() {
		inside, err := util.Within(a.cfg.SiteDir, a.cfg.OutputDir)
		if err != nil {
			return err
		}
		if inside {
			return fmt.Errorf("output directory %s is inside the site directory %s", a.cfg.OutputDir, a.cfg.SiteDir)
		}
	}

	s, err := site.Open(a.cfg)
	if err != nil {
		return err
	}
	b := site.NewBuilder(s, a.cfg.OutputDir, a.logger)

	if err := b.Build(ctx); err != nil {
		if !watch {
			return err
		}
		a.logger.Error("initial build failed", "error", err)
	}

	if !watch {
		return nil
	}
	return site.Watch(ctx, a.cfg.SiteDir, b.Build, a.logger)
}
