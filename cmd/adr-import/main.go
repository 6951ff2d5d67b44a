package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adrgoods/internal/config"
	"adrgoods/internal/pipeline"
	"adrgoods/internal/sheet"
)

var logger *zap.Logger

func newRootCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "adr-import <Tabel_A.xlsx>",
		Short: "Convert the ADR Tabel A spreadsheet to adr.goods XML data",
		Long: `Reads the dangerous goods list (ADR Annex A, part 3, Tabel A) from an
xlsx workbook and writes adr.goods records as an Odoo XML data file to stdout.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			var err error
			logger, err = zap.NewProductionConfig().Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], out, logger)
		},
	}
}

// run converts the workbook at path and writes the XML to out. Nothing is
// written when the conversion fails.
func run(path string, out io.Writer, log *zap.Logger) error {
	rows, err := sheet.ReadFile(path)
	if err != nil {
		return err
	}

	cfg := config.Default()
	records, stats, err := pipeline.NewConverter(cfg, log).Convert(rows)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pipeline.WriteOdooXML(&buf, cfg, records); err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return err
	}
	log.Info("adr goods written",
		zap.String("input", path),
		zap.Int("records", stats.Records),
		zap.Int("duplicates", stats.Duplicates))
	return nil
}

func main() {
	must(execute(newRootCmd(os.Stdout)))
}

// execute runs cmd and flushes the logger whether or not the command failed;
// cobra skips post-run hooks when RunE returns an error.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
