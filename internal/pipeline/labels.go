package pipeline

import (
	"strings"

	"adrgoods/internal"
	"adrgoods/internal/sheet"
	"adrgoods/internal/util"
)

func (r *Registry) labels(b *RecordBuilder, value *string, row sheet.Row) error {
	b.MarkLabels()
	if value == nil {
		return nil
	}

	entries := util.SplitTrim(*value, "+")
	for _, e := range entries {
		// The cell describes the whole row, not a label.
		if _, hit := util.ContainsAny(e, phraseCarriageProhibited, phraseNotSubjectToADR); hit {
			return nil
		}
	}

	for _, label := range expandRadioactive(entries) {
		if label == "" || label == labelNone {
			continue
		}
		if strings.Contains(label, provisionArticles) {
			unNumber, err := r.rowUNNumber(row)
			if err != nil {
				return fieldErr(internal.FieldLabels, *value, err)
			}
			if mapped, ok := articleLabels[unNumber]; ok {
				label = mapped
			}
		}
		if _, ok := validLabels[label]; !ok {
			return fieldErr(internal.FieldLabels, *value, invalid("label", label))
		}
		b.AddLabelRef(util.RefKey(r.cfg.LabelPrefix, label))
	}
	return nil
}

// expandRadioactive replaces 7X with every radioactive label it stands for.
// Choosing one is left to whoever uses the data.
func expandRadioactive(entries []string) []string {
	out := make([]string, 0, len(entries)+len(radioactiveLabels))
	found := false
	for _, e := range entries {
		if e == labelAnyRadioactive {
			found = true
			continue
		}
		out = append(out, e)
	}
	if found {
		out = append(out, radioactiveLabels...)
	}
	return out
}
