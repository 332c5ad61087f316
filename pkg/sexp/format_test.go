package sexp

import (
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.14456, "3.145"},
		{-7.0, "-7.0"},
		{0.4, "0.4"},
		{0.0, "0.0"},
		{-0.0001, "0.0"}, // rounds to negative zero, sign must drop
		{1.5875, "1.587"},
		{100.0, "100.0"},
		{-25.4, "-25.4"},
		{0.254, "0.254"},
		{2.5001, "2.5"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFloatNegativeZero(t *testing.T) {
	negZero := -1.0 * 0.0
	if got := FormatFloat(negZero); got != "0.0" {
		t.Errorf("FormatFloat(-0.0) = %q, want %q", got, "0.0")
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{`"`, `\"`},
		{"\n", `\n`},
		{`\`, `\\`},
		{"\t", `\t`},
		{"\b\f\r\v", `\b\f\r\v`},
		{`already \n escaped`, `already \\n escaped`},
		{"say \"hi\"\nbye", `say \"hi\"\nbye`},
	}
	for _, tt := range tests {
		if got := EscapeString(tt.in); got != tt.want {
			t.Errorf("EscapeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("a \"b\""); got != `"a \"b\""` {
		t.Errorf("Quote = %q", got)
	}
}

func TestValueScalars(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{String("name", "bar"), `(name "bar")`},
		{String("description", "My Description\nWith two \" lines"), `(description "My Description\nWith two \" lines")`},
		{Float("rotation", 180.0), "(rotation 180.0)"},
		{Float("length", 3.81), "(length 3.81)"},
		{Bool("deprecated", false), "(deprecated false)"},
		{Bool("fill", true), "(fill true)"},
		{Token("created", "2018-10-17T19:13:41Z"), "(created 2018-10-17T19:13:41Z)"},
		{Token("category", "d0618c29-0436-42da-a388-fdadf7b23892"), "(category d0618c29-0436-42da-a388-fdadf7b23892)"},
	}
	for _, tt := range tests {
		if got := tt.val.String(); got != tt.want {
			t.Errorf("Value %s/%d = %q, want %q", tt.val.Name(), tt.val.Kind(), got, tt.want)
		}
	}
}

func TestIndentEntity(t *testing.T) {
	p := Position{X: 1.0, Y: 2.0}
	if got := indentEntity(p); got != " (position 1.0 2.0)\n" {
		t.Errorf("indentEntity = %q", got)
	}
	nested := NewPolygon("u", LayerSymbolOutlines, 0.25, false, true)
	nested.AddVertex(Position{X: 0, Y: 0}, 0)
	got := indentEntity(nested)
	want := " (polygon u (layer sym_outlines)\n" +
		"  (width 0.25) (fill false) (grab_area true)\n" +
		"  (vertex (position 0.0 0.0) (angle 0.0))\n" +
		" )\n"
	if got != want {
		t.Errorf("indentEntity nested = %q, want %q", got, want)
	}
}
