package pipeline

import (
	"strings"

	"adrgoods/internal/sheet"
	"adrgoods/internal/util"
)

func (r *Registry) unNumber(b *RecordBuilder, value *string, _ sheet.Row) error {
	if value == nil {
		return nil
	}
	b.SetIdentity(r.cfg.RecordPrefix+*value, *value)
	return nil
}

func (r *Registry) name(b *RecordBuilder, value *string, _ sheet.Row) error {
	if value == nil {
		return nil
	}
	b.SetName(util.NormalizeName(*value))
	return nil
}

func (r *Registry) class(b *RecordBuilder, value *string, _ sheet.Row) error {
	if value == nil {
		return nil
	}
	b.SetClassRef(util.RefKey(r.cfg.ClassPrefix, strings.TrimSpace(*value)))
	return nil
}

// classificationCode keeps the first of several alternatives ("1.1D of 1.2D")
// and repairs decimal commas. Some entries (e.g. UN 0190) have no code.
func (r *Registry) classificationCode(b *RecordBuilder, value *string, _ sheet.Row) error {
	if value == nil {
		return nil
	}
	code, _, _ := strings.Cut(*value, " of ")
	code, _, _ = strings.Cut(code, "/")
	code = strings.TrimSpace(strings.ReplaceAll(code, ",", "."))
	if code == "" {
		return nil
	}
	b.SetCode(code)
	return nil
}
