package sheet

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrShortRow = errors.New("row shorter than sheet layout")

// Row holds the cells of one sheet row in column order. A cell is nil when
// empty, float64 when numeric and string otherwise.
type Row []any

func (r Row) Cell(index int) (any, error) {
	if index < 0 || index >= len(r) {
		return nil, fmt.Errorf("%w: column %d, row has %d", ErrShortRow, index, len(r))
	}
	return r[index], nil
}

// Text joins every non-empty cell so phrases anywhere in the row can be found.
func (r Row) Text() string {
	parts := make([]string, 0, len(r))
	for _, v := range r {
		if s, ok := CellString(v); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}

func (r Row) String() string {
	parts := make([]string, 0, len(r))
	for _, v := range r {
		s, ok := CellString(v)
		if !ok {
			s = "<empty>"
		}
		parts = append(parts, strconv.Quote(s))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CellString coerces a numeric or string cell to its normalized string.
// Integral numbers print without a fractional part. ok is false for empty cells.
func CellString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case float64:
		return formatNumber(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return fmt.Sprint(t), true
	}
}

func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
