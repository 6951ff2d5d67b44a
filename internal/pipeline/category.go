package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"adrgoods/internal"
	"adrgoods/internal/sheet"
)

// "<category> (<tunnel code>)", the category part may span lines.
var categoryPattern = regexp.MustCompile(`(?s)(.*)\(([^)]+)\)`)

func (r *Registry) transportCategory(b *RecordBuilder, value *string, row sheet.Row) error {
	var category, tunnel string
	if value == nil {
		text := row.Text()
		switch {
		case strings.Contains(text, phraseCarriageProhibited):
			category, tunnel = string(internal.CategoryCarriageProhibited), string(internal.TunnelCarriageProhibited)
		case strings.Contains(text, phraseNotSubjectToADR):
			category, tunnel = string(internal.CategoryNotSubjectToADR), string(internal.TunnelNotSubjectToADR)
		default:
			unNumber, err := r.rowUNNumber(row)
			if err != nil {
				return fieldErr(internal.FieldTransportCategory, "", err)
			}
			if _, ok := categoryExceptions[unNumber]; !ok {
				r.logger.Debug("transport category left unset", zap.String("un_number", unNumber))
				return nil
			}
			category, tunnel = string(internal.CategoryNone), string(internal.TunnelNone)
		}
	} else {
		m := categoryPattern.FindStringSubmatch(*value)
		if m == nil {
			return fieldErr(internal.FieldTransportCategory, *value,
				fmt.Errorf("%w: expected \"<category> (<tunnel code>)\"", ErrMalformedValue))
		}
		category = strings.TrimSpace(m[1])
		tunnel = strings.TrimSpace(m[2])
	}

	if strings.Contains(category, provision671) {
		category = "2"
	}
	if category == categoryUnderscore {
		category = string(internal.CategoryNone)
	}

	raw := ""
	if value != nil {
		raw = *value
	}
	if _, ok := validCategories[internal.TransportCategory(category)]; !ok {
		return fieldErr(internal.FieldTransportCategory, raw, invalid("transport category", category))
	}
	if _, ok := validTunnelCodes[internal.TunnelCode(tunnel)]; !ok {
		return fieldErr(internal.FieldTransportCategory, raw, invalid("tunnel restriction code", tunnel))
	}
	b.SetTransport(internal.TransportCategory(category), internal.TunnelCode(tunnel))
	return nil
}
