package pipeline

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"adrgoods/internal"
	"adrgoods/internal/config"
	"adrgoods/internal/sheet"
)

type Converter struct {
	cfg      config.Config
	registry *Registry
	logger   *zap.Logger
}

func NewConverter(cfg config.Config, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{cfg: cfg, registry: NewRegistry(cfg, logger), logger: logger}
}

type Stats struct {
	Rows       int
	Header     int
	Blank      int
	Duplicates int
	Records    int
}

// Convert turns sheet rows into records in input order. Header and blank rows
// are skipped, and a UN number seen before is dropped in favour of its first
// row. The first row that fails aborts the run and no records are returned.
func (c *Converter) Convert(rows []sheet.Row) ([]internal.Record, Stats, error) {
	var stats Stats
	seen := map[string]struct{}{}
	out := make([]internal.Record, 0, len(rows))
	width := c.cfg.Width()

	for i, row := range rows {
		stats.Rows++
		if i < c.cfg.HeaderRows {
			stats.Header++
			continue
		}

		cell, err := row.Cell(c.cfg.IdentifierCol)
		if err != nil {
			return nil, stats, &RowError{Line: i + 1, Row: row, Err: err}
		}
		unNumber, ok := sheet.CellString(cell)
		unNumber = strings.TrimSpace(unNumber)
		if !ok || unNumber == "" {
			stats.Blank++
			continue
		}
		if _, dup := seen[unNumber]; dup {
			stats.Duplicates++
			continue
		}
		seen[unNumber] = struct{}{}

		if len(row) < width {
			err := fmt.Errorf("%w: layout needs %d columns, row has %d", sheet.ErrShortRow, width, len(row))
			return nil, stats, &RowError{Line: i + 1, Row: row, Err: err}
		}
		rec, err := c.transformRow(row)
		if err != nil {
			return nil, stats, &RowError{Line: i + 1, Row: row, Err: err}
		}
		out = append(out, rec)
	}

	stats.Records = len(out)
	c.logger.Debug("sheet converted",
		zap.Int("rows", stats.Rows),
		zap.Int("header", stats.Header),
		zap.Int("blank", stats.Blank),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("records", stats.Records))
	return out, stats, nil
}

func (c *Converter) transformRow(row sheet.Row) (internal.Record, error) {
	b := NewRecordBuilder()
	for _, col := range c.cfg.Columns {
		cell, err := row.Cell(col.Index)
		if err != nil {
			return internal.Record{}, fieldErr(col.Field, "", err)
		}
		var value *string
		if s, ok := sheet.CellString(cell); ok {
			value = &s
		}
		if err := c.registry.Apply(col.Field, b, value, row); err != nil {
			return internal.Record{}, err
		}
	}
	rec := b.Build()
	if err := checkRecord(rec); err != nil {
		return internal.Record{}, err
	}
	return rec, nil
}
