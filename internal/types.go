package internal

// Field names a spreadsheet column that feeds one part of a Record.
type Field string

const (
	FieldUNNumber           Field = "un_number"
	FieldName               Field = "name"
	FieldClass              Field = "class_id"
	FieldClassificationCode Field = "classification_code"
	FieldLabels             Field = "label_ids"
	FieldTransportCategory  Field = "transport_category"

	// Derived from the transport category column.
	FieldTunnelCode Field = "tunnel_restriction_code"
)

type TransportCategory string

const (
	CategoryNone               TransportCategory = "-"
	CategoryCarriageProhibited TransportCategory = "CARRIAGE_PROHIBITED"
	CategoryNotSubjectToADR    TransportCategory = "NOT_SUBJECT_TO_ADR"
)

type TunnelCode string

const (
	TunnelNone               TunnelCode = "-"
	TunnelCarriageProhibited TunnelCode = "CARRIAGE_PROHIBITED"
	TunnelNotSubjectToADR    TunnelCode = "NOT_SUBJECT_TO_ADR"
)

// Record is one adr.goods entry built from a single sheet row.
// Optional fields are nil when the row did not provide them.
type Record struct {
	ID                string
	UNNumber          string
	Name              *string
	ClassRef          *string
	Code              *string
	LabelRefs         []string
	HasLabels         bool
	TransportCategory *TransportCategory
	TunnelCode        *TunnelCode
}
