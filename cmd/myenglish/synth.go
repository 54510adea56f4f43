package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-suite/internal/app"
	"github.com/heartmarshall/myenglish-suite/internal/config"
	"github.com/heartmarshall/myenglish-suite/internal/domain"
	"github.com/heartmarshall/myenglish-suite/internal/export"
	"github.com/heartmarshall/myenglish-suite/internal/service/batch"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

type batchFlags struct {
	key    string
	size   int
	prefix string
}

func (f *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.key, "key", "", "content key, usually a YouTube video id")
	cmd.Flags().IntVar(&f.size, "size", 0, "batch size (default: synth.batch_size)")
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "entry id prefix (default: synth.id_prefix)")
}

func (f *batchFlags) input(cmd *cobra.Command) batch.Input {
	in := batch.Input{Key: f.key, IDPrefix: f.prefix}
	if cmd.Flags().Changed("size") {
		size := f.size
		in.BatchSize = &size
	}
	return in
}

// generate loads config, opens the catalog and builds one batch.
func generate(ctx context.Context, in batch.Input) ([]domain.VocabularyEntry, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	cat, err := app.OpenCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer cat.Close()

	entries, err := app.NewBatchService(logger, cat, cfg.Synth).Generate(ctx, in)
	if err != nil {
		logger.Error("generate batch", slog.String("error", err.Error()))
		return nil, err
	}
	return entries, nil
}

func newSynthCmd() *cobra.Command {
	var (
		flags  batchFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Print a vocabulary batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatJSON && format != formatTable {
				return fmt.Errorf("--format must be %s or %s", formatJSON, formatTable)
			}
			entries, err := generate(cmd.Context(), flags.input(cmd))
			if err != nil {
				return err
			}
			if format == formatTable {
				return writeTable(cmd.OutOrStdout(), entries)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or table")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		flags batchFlags
		out   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a vocabulary batch as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := generate(cmd.Context(), flags.input(cmd))
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := export.WriteBatch(f, entries); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d entries to %s\n", len(entries), out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "vocabulary.xlsx", "output file")
	return cmd
}

// writeTable prints entries in aligned columns. Widths are measured in
// terminal cells so wide runes line up.
func writeTable(w io.Writer, entries []domain.VocabularyEntry) error {
	header := []string{"ID", "TIME", "WORD", "SAVED", "DEFINITION"}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		saved := ""
		if e.Saved {
			saved = "*"
		}
		rows[i] = []string{e.ID, e.Timestamp, e.Word, saved, runewidth.Truncate(e.Definition, 60, "…")}
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range append([][]string{header}, rows...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "  ")); err != nil {
			return err
		}
	}
	return nil
}
