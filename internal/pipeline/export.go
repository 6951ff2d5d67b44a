package pipeline

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"adrgoods/internal"
	"adrgoods/internal/config"
)

const xmlHeader = "<?xml version='1.0' encoding='utf-8'?>\n"

// WriteOdooXML writes records as an Odoo data file. Output depends only on the
// records and their order. Records carrying text that XML 1.0 cannot hold are
// rejected before anything is written.
func WriteOdooXML(w io.Writer, cfg config.Config, records []internal.Record) error {
	for _, rec := range records {
		if err := checkRecord(rec); err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(xmlHeader)
	if len(records) == 0 {
		bw.WriteString("<odoo/>\n")
		return bw.Flush()
	}

	bw.WriteString("<odoo>\n")
	for _, rec := range records {
		bw.WriteString("  <record id=\"")
		escape(bw, rec.ID)
		bw.WriteString("\" model=\"")
		escape(bw, cfg.Model)
		bw.WriteString("\">\n")
		writeText(bw, internal.FieldUNNumber, rec.UNNumber)
		if rec.Name != nil {
			writeText(bw, internal.FieldName, *rec.Name)
		}
		if rec.ClassRef != nil {
			writeAttr(bw, internal.FieldClass, "ref", *rec.ClassRef)
		}
		if rec.Code != nil {
			writeText(bw, internal.FieldClassificationCode, *rec.Code)
		}
		if rec.HasLabels {
			writeAttr(bw, internal.FieldLabels, "eval", labelsExpr(rec.LabelRefs))
		}
		if rec.TransportCategory != nil && rec.TunnelCode != nil {
			writeText(bw, internal.FieldTransportCategory, string(*rec.TransportCategory))
			writeText(bw, internal.FieldTunnelCode, string(*rec.TunnelCode))
		}
		bw.WriteString("  </record>\n")
	}
	bw.WriteString("</odoo>\n")
	return bw.Flush()
}

// escape never fails on a bufio.Writer; write errors surface on Flush.
func escape(bw *bufio.Writer, s string) {
	_ = xml.EscapeText(bw, []byte(s))
}

func writeText(bw *bufio.Writer, field internal.Field, text string) {
	fmt.Fprintf(bw, "    <field name=\"%s\">", field)
	escape(bw, text)
	bw.WriteString("</field>\n")
}

func writeAttr(bw *bufio.Writer, field internal.Field, attr, value string) {
	fmt.Fprintf(bw, "    <field name=\"%s\" %s=\"", field, attr)
	escape(bw, value)
	bw.WriteString("\"/>\n")
}

// labelsExpr renders the many2many "replace with" command (6, 0, ids).
func labelsExpr(refs []string) string {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, "ref('"+ref+"')")
	}
	return "[(6, 0, [" + strings.Join(parts, ", ") + "])]"
}

// checkRecord reports the first field whose text cannot be serialized.
func checkRecord(rec internal.Record) error {
	type fieldText struct {
		field internal.Field
		text  string
	}
	texts := []fieldText{
		{internal.FieldUNNumber, rec.ID},
		{internal.FieldUNNumber, rec.UNNumber},
	}
	if rec.Name != nil {
		texts = append(texts, fieldText{internal.FieldName, *rec.Name})
	}
	if rec.ClassRef != nil {
		texts = append(texts, fieldText{internal.FieldClass, *rec.ClassRef})
	}
	if rec.Code != nil {
		texts = append(texts, fieldText{internal.FieldClassificationCode, *rec.Code})
	}
	for _, ref := range rec.LabelRefs {
		texts = append(texts, fieldText{internal.FieldLabels, ref})
	}
	if rec.TransportCategory != nil {
		texts = append(texts, fieldText{internal.FieldTransportCategory, string(*rec.TransportCategory)})
	}
	if rec.TunnelCode != nil {
		texts = append(texts, fieldText{internal.FieldTunnelCode, string(*rec.TunnelCode)})
	}

	for _, ft := range texts {
		if err := xmlText(ft.text); err != nil {
			return fieldErr(ft.field, ft.text, err)
		}
	}
	return nil
}

// xmlText rejects invalid UTF-8 and characters outside the XML 1.0 Char
// production, which xml.EscapeText would otherwise replace with U+FFFD.
func xmlText(s string) error {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidValue, i)
			}
		}
		if !xmlChar(r) {
			return fmt.Errorf("%w: character %U not allowed in XML", ErrInvalidValue, r)
		}
	}
	return nil
}

func xmlChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
