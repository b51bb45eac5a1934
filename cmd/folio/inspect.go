// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/olegiv/folio/internal/site"
)

func newInspectCmd(a *app) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load the content document and print it with defaults applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd.Context(), cmd.OutOrStdout(), asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML instead of a Go dump")
	return cmd
}

func (a *app) inspect(ctx context.Context, w io.Writer, asYAML bool) error {
	s, err := site.Open(a.cfg)
	if err != nil {
		return err
	}

	c, err := s.Loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("inspecting content: %w", err)
	}

	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c.Document); err != nil {
			return fmt.Errorf("encoding content: %w", err)
		}
		return enc.Close()
	}

	dump := litter.Options{
		Compact:           false,
		StripPackageNames: true,
		HidePrivateFields: true,
	}
	_, err = fmt.Fprintln(w, dump.Sdump(c))
	return err
}
