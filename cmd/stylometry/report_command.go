package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stylometry/internal/config"
	"stylometry/internal/corpus"
	"stylometry/internal/export"
	"stylometry/internal/stylo"
	"stylometry/internal/textutil"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var author string
	var noLanguage bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Print a human-readable feature report for one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			// A single report never reuses extraction results.
			noCache := func(cfg *config.Config) { cfg.Cache.Enabled = false }
			return ctx.withBuilder(cmd, noCache, func(_ context.Context, builder *corpus.Builder) error {
				raw, err := os.ReadFile(path)
				if err != nil {
					return &stylo.InputError{Source: path, Reason: "read", Err: err}
				}
				text := textutil.Decode(raw)
				fs, err := builder.Extractor().Extract(text, author, filepath.Base(path))
				if err != nil {
					return err
				}

				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				opts := reportOptions(cfg, export.ShouldColorize(out))
				if !noLanguage {
					lang := stylo.DetectLanguage(text)
					opts.Language = &lang
				}
				if err := export.Report(out, fs, opts); err != nil {
					return fmt.Errorf("render report: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "Author label for the document (default from config)")
	cmd.Flags().BoolVar(&noLanguage, "no-language", false, "Skip language detection")
	return cmd
}

func reportOptions(cfg *config.Config, colorize bool) export.ReportOptions {
	return export.ReportOptions{
		Format:   export.Format{Precision: cfg.Output.Precision},
		Colorize: colorize,
	}
}
