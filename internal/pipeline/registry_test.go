package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"adrgoods/internal"
	"adrgoods/internal/config"
	"adrgoods/internal/sheet"
)

func apply(t *testing.T, field internal.Field, value *string, row sheet.Row) (internal.Record, error) {
	t.Helper()
	r := NewRegistry(config.Default(), nil)
	b := NewRecordBuilder()
	err := r.Apply(field, b, value, row)
	return b.Build(), err
}

func TestIdentityAndName(t *testing.T) {
	row := mkRow(map[int]any{0: "0004"})

	rec, err := apply(t, internal.FieldUNNumber, sp("0004"), row)
	require.NoError(t, err)
	assert.Equal(t, "0004", rec.UNNumber)
	assert.Equal(t, "adr_goods_0004", rec.ID)

	rec, err = apply(t, internal.FieldName, sp(" ONTSTEKERS\nvoor springstoffen "), row)
	require.NoError(t, err)
	require.NotNil(t, rec.Name)
	assert.Equal(t, "ONTSTEKERSvoor springstoffen", *rec.Name)

	rec, err = apply(t, internal.FieldName, nil, row)
	require.NoError(t, err)
	assert.Nil(t, rec.Name)
}

func TestClassRef(t *testing.T) {
	rec, err := apply(t, internal.FieldClass, sp("4.1"), mkRow(nil))
	require.NoError(t, err)
	require.NotNil(t, rec.ClassRef)
	assert.Equal(t, "adr_class_4_1", *rec.ClassRef)
}

func TestClassificationCode(t *testing.T) {
	cases := []struct {
		name  string
		value *string
		want  *string
	}{
		{name: "absent", value: nil, want: nil},
		{name: "plain", value: sp("1.1D"), want: sp("1.1D")},
		{name: "alternatives", value: sp("1.1D of 1.2D"), want: sp("1.1D")},
		{name: "slash alternatives", value: sp("TC3/TFC"), want: sp("TC3")},
		{name: "decimal comma typo", value: sp("1,4S"), want: sp("1.4S")},
		{name: "blank", value: sp("  "), want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := apply(t, internal.FieldClassificationCode, tc.value, mkRow(nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestLabels(t *testing.T) {
	cases := []struct {
		name  string
		value *string
		unNr  any
		want  []string
	}{
		{name: "absent", value: nil, want: nil},
		{name: "single", value: sp("3"), want: []string{"adr_label_3"}},
		{name: "combined", value: sp("2.1 + 6.1"), want: []string{"adr_label_2_1", "adr_label_6_1"}},
		{name: "duplicates collapse", value: sp("3+3"), want: []string{"adr_label_3"}},
		{name: "none sentinel", value: sp("GEEN"), want: nil},
		{name: "blank entries", value: sp("8+ +"), want: []string{"adr_label_8"}},
		{
			name:  "any radioactive",
			value: sp("7X+8"),
			want:  []string{"adr_label_8", "adr_label_7A", "adr_label_7B", "adr_label_7C", "adr_label_7E"},
		},
		{name: "carriage prohibited", value: sp("VERVOER VERBODEN"), want: nil},
		{name: "not subject after label", value: sp("3+NIET ONDERWORPEN AAN HET ADR"), want: nil},
		{name: "article label", value: sp("5.2.2.1.12"), unNr: float64(3540), want: []string{"adr_label_3"}},
		{name: "article label string id", value: sp("zie 5.2.2.1.12"), unNr: "3547", want: []string{"adr_label_8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := apply(t, internal.FieldLabels, tc.value, mkRow(map[int]any{0: tc.unNr}))
			require.NoError(t, err)
			assert.True(t, rec.HasLabels)
			assert.Equal(t, tc.want, rec.LabelRefs)
			assert.NotContains(t, rec.LabelRefs, "adr_label_7X")
		})
	}
}

func TestLabelsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		value string
		unNr  any
	}{
		{name: "unknown label", value: "3+10"},
		{name: "article label for other goods", value: "5.2.2.1.12", unNr: "1234"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := apply(t, internal.FieldLabels, sp(tc.value), mkRow(map[int]any{0: tc.unNr}))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidValue))

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, internal.FieldLabels, fe.Field)
			assert.Equal(t, tc.value, fe.Value)
		})
	}
}

func TestTransportCategory(t *testing.T) {
	cases := []struct {
		name     string
		value    *string
		row      sheet.Row
		category internal.TransportCategory
		tunnel   internal.TunnelCode
	}{
		{name: "plain", value: sp("1 (B1000C)"), category: "1", tunnel: "B1000C"},
		{name: "padded", value: sp(" 3  ( D/E ) "), category: "3", tunnel: "D/E"},
		{name: "multiline", value: sp("2\n(C/E)"), category: "2", tunnel: "C/E"},
		{name: "provision 671", value: sp("BP671 (E)"), category: "2", tunnel: "E"},
		{name: "underscore", value: sp("_ (-)"), category: "-", tunnel: "-"},
		{
			name:     "absent carriage prohibited",
			row:      mkRow(map[int]any{0: "0020", 8: "VERVOER VERBODEN"}),
			category: internal.CategoryCarriageProhibited,
			tunnel:   internal.TunnelCarriageProhibited,
		},
		{
			name:     "absent not subject",
			row:      mkRow(map[int]any{0: "1043", 2: "NIET ONDERWORPEN AAN HET ADR"}),
			category: internal.CategoryNotSubjectToADR,
			tunnel:   internal.TunnelNotSubjectToADR,
		},
		{name: "absent known exception", row: mkRow(map[int]any{0: float64(2071)}), category: "-", tunnel: "-"},
		{name: "absent known exception string", row: mkRow(map[int]any{0: "3363"}), category: "-", tunnel: "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := tc.row
			if row == nil {
				row = mkRow(map[int]any{0: "1090"})
			}
			rec, err := apply(t, internal.FieldTransportCategory, tc.value, row)
			require.NoError(t, err)
			require.NotNil(t, rec.TransportCategory)
			require.NotNil(t, rec.TunnelCode)
			assert.Equal(t, tc.category, *rec.TransportCategory)
			assert.Equal(t, tc.tunnel, *rec.TunnelCode)
		})
	}
}

// A row without category, phrase or known exception keeps both fields unset.
func TestTransportCategoryUnsetWithoutFallback(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRegistry(config.Default(), zap.New(core))
	b := NewRecordBuilder()

	err := r.Apply(internal.FieldTransportCategory, b, nil, mkRow(map[int]any{0: "1234"}))
	require.NoError(t, err)

	rec := b.Build()
	assert.Nil(t, rec.TransportCategory)
	assert.Nil(t, rec.TunnelCode)

	entries := logs.FilterMessage("transport category left unset").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "1234", entries[0].ContextMap()["un_number"])
}

func TestTransportCategoryErrors(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  error
	}{
		{name: "no parentheses", value: "2 E", want: ErrMalformedValue},
		{name: "empty parentheses", value: "2 ()", want: ErrMalformedValue},
		{name: "unknown category", value: "5 (E)", want: ErrInvalidValue},
		{name: "unknown tunnel code", value: "2 (X)", want: ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := apply(t, internal.FieldTransportCategory, sp(tc.value), mkRow(map[int]any{0: "1090"}))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Contains(t, err.Error(), tc.value)
			assert.Nil(t, rec.TransportCategory)
			assert.Nil(t, rec.TunnelCode)
		})
	}
}

func TestApplyUnknownField(t *testing.T) {
	_, err := apply(t, internal.Field("packing_group"), sp("II"), mkRow(nil))
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestBuildIsolatesRecord(t *testing.T) {
	b := NewRecordBuilder()
	b.AddLabelRef("adr_label_3")
	rec := b.Build()
	b.AddLabelRef("adr_label_8")
	assert.Equal(t, []string{"adr_label_3"}, rec.LabelRefs)
}
