// Package sexp provides the LibrePCB library element model and its canonical
// s-expression serialization. Every node renders itself through the Stringer
// interface; the byte-exact output format is part of the package contract
// because library files are diffed and committed verbatim.
package sexp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatFloat renders a coordinate or dimension value with at most three
// decimal places. Trailing zeros are stripped down to a single fractional
// digit, and a value that rounds to negative zero is emitted as "0.0" so
// that mirrored geometry serializes identically on both sides of an axis.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if s == "-0.000" {
		s = "0.000"
	}
	if strings.HasSuffix(s, "0") {
		s = strings.TrimRight(s, "0")
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// EscapeString escapes a string for embedding in a quoted s-expression
// token. The backslash must be handled before the named escapes, otherwise
// already-escaped sequences would be escaped twice.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\b", `\b`)
	s = strings.ReplaceAll(s, "\f", `\f`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, "\v", `\v`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Quote escapes s and wraps it in double quotes.
func Quote(s string) string {
	return `"` + EscapeString(s) + `"`
}

// Now returns the current UTC time in the format used by the "created"
// attribute of library elements.
func Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

// indentEntity renders an entity, prefixes every line with one space and
// appends a trailing newline. Nesting depth is encoded purely through
// repeated application as composites embed their children.
func indentEntity(e fmt.Stringer) string {
	lines := strings.Split(e.String(), "\n")
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// indentEntities concatenates the indented renderings of all entities.
func indentEntities[T fmt.Stringer](entities []T) string {
	var b strings.Builder
	for _, e := range entities {
		b.WriteString(indentEntity(e))
	}
	return b.String()
}

// indentStrings indents pre-rendered lines the same way indentEntities
// indents entities. Used for approvals, which are stored as raw text.
func indentStrings(items []string) string {
	var b strings.Builder
	for _, s := range items {
		for _, line := range strings.Split(s, "\n") {
			b.WriteString(" ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
