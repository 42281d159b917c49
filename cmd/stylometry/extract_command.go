package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stylometry/internal/config"
	"stylometry/internal/corpus"
)

type extractOptions struct {
	author     string
	globs      []string
	output     string
	onlyAuthor string
	lenient    bool
	workers    int
	precision  int
	noCache    bool
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract feature vectors and print or write the CSV table",
		Long: `Extract feature vectors from text files.

Files given as arguments are grouped under --author. With --glob, every match
is grouped under the name of its parent directory; repeat --glob to append
more documents. Files and --glob cannot be combined in one run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(opts.globs) == 0 {
				return errors.New("provide files to extract or at least one --glob pattern")
			}
			if len(args) > 0 && len(opts.globs) > 0 {
				return errors.New("files and --glob are mutually exclusive")
			}

			adjust := func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("lenient") {
					cfg.Corpus.Lenient = opts.lenient
				}
				if flags.Changed("workers") {
					cfg.Corpus.Workers = opts.workers
				}
				if flags.Changed("precision") {
					cfg.Output.Precision = opts.precision
				}
				if opts.noCache {
					cfg.Cache.Enabled = false
				}
			}

			return ctx.withBuilder(cmd, adjust, func(runCtx context.Context, builder *corpus.Builder) error {
				var (
					c   *corpus.Corpus
					err error
				)
				if len(opts.globs) > 0 {
					c, err = builder.FromGlob(runCtx, opts.globs...)
				} else {
					c, err = builder.FromPaths(runCtx, args, opts.author)
				}
				if err != nil {
					return err
				}
				return writeCorpus(cmd, c, opts)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.author, "author", "a", "", "Author label for the given files (default from config)")
	flags.StringArrayVarP(&opts.globs, "glob", "g", nil, "Glob pattern; parent directory names become authors (repeatable)")
	flags.StringVarP(&opts.output, "output", "o", "", "Write the CSV table to this file instead of stdout")
	flags.StringVar(&opts.onlyAuthor, "only-author", "", "Export only this author's documents")
	flags.BoolVar(&opts.lenient, "lenient", false, "Skip unreadable or empty documents instead of failing")
	flags.IntVarP(&opts.workers, "workers", "w", 1, "Documents extracted in parallel")
	flags.IntVar(&opts.precision, "precision", 4, "Decimal places for float features (-1 for shortest)")
	flags.BoolVar(&opts.noCache, "no-cache", false, "Bypass the feature cache for this run")
	return cmd
}

func writeCorpus(cmd *cobra.Command, c *corpus.Corpus, opts extractOptions) error {
	author := strings.TrimSpace(opts.onlyAuthor)
	if opts.output == "" {
		table, err := c.Export(author)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), table)
		return err
	}

	if _, err := c.WriteCSV(opts.output, author); err != nil {
		return err
	}
	count := c.Len()
	if author != "" {
		count = len(c.Documents(author))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d documents to %s\n", count, opts.output)
	return nil
}
