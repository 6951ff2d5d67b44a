package config

import "adrgoods/internal"

// Column binds a zero-based sheet column to the field it feeds.
type Column struct {
	Index int
	Field internal.Field
}

type Config struct {
	HeaderRows int
	Columns    []Column

	Model         string
	RecordPrefix  string
	ClassPrefix   string
	LabelPrefix   string
	IdentifierCol int
}

// Default returns the layout of the ADR 2019 "Tabel A" workbook
// (Annex A part 3, Dutch edition). The layout is fixed by the source sheet.
func Default() Config {
	return Config{
		HeaderRows: 3,
		Columns: []Column{
			{Index: 0, Field: internal.FieldUNNumber},
			{Index: 2, Field: internal.FieldName},
			{Index: 5, Field: internal.FieldClass},
			{Index: 6, Field: internal.FieldClassificationCode},
			{Index: 8, Field: internal.FieldLabels},
			{Index: 20, Field: internal.FieldTransportCategory},
		},

		Model:         "adr.goods",
		RecordPrefix:  "adr_goods_",
		ClassPrefix:   "adr_class_",
		LabelPrefix:   "adr_label_",
		IdentifierCol: 0,
	}
}

// Width is the minimum row width the layout needs.
func (c Config) Width() int {
	width := 0
	for _, col := range c.Columns {
		if col.Index+1 > width {
			width = col.Index + 1
		}
	}
	return width
}
