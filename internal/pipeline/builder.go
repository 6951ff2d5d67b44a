package pipeline

import "adrgoods/internal"

// RecordBuilder collects field values while the transformers of one row run.
type RecordBuilder struct {
	rec       internal.Record
	seenLabel map[string]struct{}
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{seenLabel: map[string]struct{}{}}
}

func (b *RecordBuilder) SetIdentity(id, unNumber string) {
	b.rec.ID = id
	b.rec.UNNumber = unNumber
}

func (b *RecordBuilder) SetName(name string) { b.rec.Name = &name }

func (b *RecordBuilder) SetClassRef(ref string) { b.rec.ClassRef = &ref }

func (b *RecordBuilder) SetCode(code string) { b.rec.Code = &code }

// MarkLabels records that the label column was processed, even if it
// produced no references.
func (b *RecordBuilder) MarkLabels() { b.rec.HasLabels = true }

// AddLabelRef appends ref unless it is already present.
func (b *RecordBuilder) AddLabelRef(ref string) {
	if _, ok := b.seenLabel[ref]; ok {
		return
	}
	b.seenLabel[ref] = struct{}{}
	b.rec.LabelRefs = append(b.rec.LabelRefs, ref)
}

func (b *RecordBuilder) SetTransport(category internal.TransportCategory, tunnel internal.TunnelCode) {
	b.rec.TransportCategory = &category
	b.rec.TunnelCode = &tunnel
}

// Build returns a copy that later builder calls cannot change.
func (b *RecordBuilder) Build() internal.Record {
	rec := b.rec
	if b.rec.LabelRefs != nil {
		rec.LabelRefs = append([]string(nil), b.rec.LabelRefs...)
	}
	return rec
}
