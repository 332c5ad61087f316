package sexp

import "sort"

// Pin is a connection point of a schematic symbol.
type Pin struct {
	UUID         string
	Name         string
	Position     Position
	Rotation     float64
	Length       float64
	NamePosition Position
	NameRotation float64
	NameHeight   float64
	NameAlign    Align
}

func (p *Pin) String() string {
	return "(pin " + p.UUID + " " + String("name", p.Name).String() + "\n" +
		" " + p.Position.String() +
		" " + Float("rotation", p.Rotation).String() +
		" " + Float("length", p.Length).String() + "\n" +
		" (name_position " + FormatFloat(p.NamePosition.X) + " " + FormatFloat(p.NamePosition.Y) + ")" +
		" " + Float("name_rotation", p.NameRotation).String() +
		" " + Float("name_height", p.NameHeight).String() + "\n" +
		" (name_align " + string(p.NameAlign) + ")\n" +
		")"
}

// Symbol is a complete LibrePCB symbol element.
type Symbol struct {
	ElementHeader
	Pins      []*Pin
	Polygons  []*Polygon
	Circles   []*Circle
	Texts     []*Text
	Approvals []string
}

// NewSymbol returns a symbol without pins or graphics.
func NewSymbol(header ElementHeader) *Symbol {
	return &Symbol{ElementHeader: header}
}

// AddPin appends a pin. Pins keep their insertion order.
func (s *Symbol) AddPin(p *Pin) {
	s.Pins = append(s.Pins, p)
}

// AddPolygon appends a polygon.
func (s *Symbol) AddPolygon(p *Polygon) {
	s.Polygons = append(s.Polygons, p)
}

// AddCircle appends a circle.
func (s *Symbol) AddCircle(c *Circle) {
	s.Circles = append(s.Circles, c)
}

// AddText appends a text element.
func (s *Symbol) AddText(t *Text) {
	s.Texts = append(s.Texts, t)
}

// AddApproval records a pre-rendered approval node.
func (s *Symbol) AddApproval(approval string) {
	s.Approvals = append(s.Approvals, approval)
}

func (s *Symbol) String() string {
	ret := "(librepcb_symbol " + s.UUID + "\n"
	ret += s.headerString()
	ret += indentEntities(s.Pins)
	ret += indentEntities(s.Polygons)
	ret += indentEntities(s.Circles)
	ret += indentEntities(s.Texts)

	approvals := make([]string, len(s.Approvals))
	copy(approvals, s.Approvals)
	sort.Strings(approvals)
	ret += indentStrings(approvals)

	ret += ")"
	return ret
}

// Serialize writes the symbol into its element directory below outputDir.
func (s *Symbol) Serialize(outputDir string) error {
	return writeElement(outputDir, s.UUID, ".librepcb-sym", "1\n", "symbol.lp", s.String())
}
