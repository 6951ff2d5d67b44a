package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// NormalizeName trims the cell, drops embedded line breaks without inserting
// spaces and composes the result to NFC.
func NormalizeName(input string) string {
	s := strings.TrimSpace(input)
	s = lineBreaks.Replace(s)
	return norm.NFC.String(s)
}

// RefKey builds an XML id such as adr_class_4_1 from a dotted code.
func RefKey(prefix, code string) string {
	return prefix + strings.ReplaceAll(code, ".", "_")
}

func SplitTrim(input, sep string) []string {
	parts := strings.Split(input, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func ContainsAny(s string, needles ...string) (string, bool) {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return n, true
		}
	}
	return "", false
}
