package pipeline

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"adrgoods/internal"
	"adrgoods/internal/config"
	"adrgoods/internal/sheet"
)

// Transformer turns one cell into record fields. value is nil when the cell is
// empty; row gives access to sibling cells for fallbacks.
type Transformer func(b *RecordBuilder, value *string, row sheet.Row) error

// Registry holds one Transformer per field. The table is fixed at construction.
type Registry struct {
	cfg          config.Config
	logger       *zap.Logger
	transformers map[internal.Field]Transformer
}

func NewRegistry(cfg config.Config, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{cfg: cfg, logger: logger}
	r.transformers = map[internal.Field]Transformer{
		internal.FieldUNNumber:           r.unNumber,
		internal.FieldName:               r.name,
		internal.FieldClass:              r.class,
		internal.FieldClassificationCode: r.classificationCode,
		internal.FieldLabels:             r.labels,
		internal.FieldTransportCategory:  r.transportCategory,
	}
	return r
}

func (r *Registry) Apply(field internal.Field, b *RecordBuilder, value *string, row sheet.Row) error {
	fn, ok := r.transformers[field]
	if !ok {
		return fieldErr(field, "", ErrUnknownField)
	}
	return fn(b, value, row)
}

// rowUNNumber reads the identifier cell of row as a trimmed string.
func (r *Registry) rowUNNumber(row sheet.Row) (string, error) {
	cell, err := row.Cell(r.cfg.IdentifierCol)
	if err != nil {
		return "", err
	}
	s, _ := sheet.CellString(cell)
	return strings.TrimSpace(s), nil
}

func invalid(kind, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidValue, kind, value)
}
