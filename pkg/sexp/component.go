package sexp

import "sort"

// SignalRole is the electrical role of a component signal.
type SignalRole string

const (
	RolePassive SignalRole = "passive"
)

func (r SignalRole) String() string {
	return "(role " + string(r) + ")"
}

// Signal is an abstract electrical connection point of a component.
type Signal struct {
	UUID      string
	Name      string
	Role      SignalRole
	Required  bool
	Negated   bool
	Clock     bool
	ForcedNet string
}

func (s Signal) String() string {
	return "(signal " + s.UUID + " " + String("name", s.Name).String() + " " + s.Role.String() + "\n" +
		" " + Bool("required", s.Required).String() +
		" " + Bool("negated", s.Negated).String() +
		" " + Bool("clock", s.Clock).String() +
		" " + String("forced_net", s.ForcedNet).String() + "\n" +
		")"
}

// TextDesignator selects what a symbol pin displays in the schematic.
type TextDesignator string

const (
	DesignatorSymbolPinName TextDesignator = "pin"
	DesignatorSignalName    TextDesignator = "signal"
)

func (d TextDesignator) String() string {
	return "(text " + string(d) + ")"
}

// PinSignalMap connects one symbol pin to one component signal.
type PinSignalMap struct {
	PinUUID    string
	SignalUUID string
	Designator TextDesignator
}

func (m PinSignalMap) String() string {
	return "(pin " + m.PinUUID + " " + Token("signal", m.SignalUUID).String() + " " + m.Designator.String() + ")"
}

// Gate places one symbol inside a component variant.
type Gate struct {
	UUID     string
	Symbol   string
	Position Position
	Rotation float64
	Required bool
	Suffix   string
	Pins     []PinSignalMap
}

// AddPinSignalMap connects a symbol pin to a signal.
func (g *Gate) AddPinSignalMap(m PinSignalMap) {
	g.Pins = append(g.Pins, m)
}

// Pin lines serialize in lexical order.
func (g *Gate) String() string {
	ret := "(gate " + g.UUID + "\n" +
		" " + Token("symbol", g.Symbol).String() + "\n" +
		" " + g.Position.String() +
		" " + Float("rotation", g.Rotation).String() +
		" " + Bool("required", g.Required).String() +
		" " + String("suffix", g.Suffix).String() + "\n"
	lines := make([]string, 0, len(g.Pins))
	for _, pin := range g.Pins {
		lines = append(lines, " "+pin.String())
	}
	sort.Strings(lines)
	for _, line := range lines {
		ret += line + "\n"
	}
	ret += ")"
	return ret
}

// Norm is the schematic symbol norm of a component variant. The values are
// stored pre-quoted because the empty norm still serializes as a quoted
// empty string.
type Norm string

const (
	NormEmpty    Norm = `""`
	NormIEEE315  Norm = `"IEEE 315"`
	NormIEC60617 Norm = `"IEC 60617"`
)

func (n Norm) String() string {
	return "(norm " + string(n) + ")"
}

// Variant is one gate arrangement of a component.
type Variant struct {
	UUID        string
	Norm        Norm
	Name        string
	Description string
	Gates       []*Gate
}

// NewVariant returns a variant holding the given initial gate.
func NewVariant(uuid string, norm Norm, name, description string, gate *Gate) *Variant {
	v := &Variant{UUID: uuid, Norm: norm, Name: name, Description: description}
	if gate != nil {
		v.Gates = append(v.Gates, gate)
	}
	return v
}

// AddGate appends a gate to the variant.
func (v *Variant) AddGate(g *Gate) {
	v.Gates = append(v.Gates, g)
}

// Gate blocks serialize in lexical order of their rendered text.
func (v *Variant) String() string {
	ret := "(variant " + v.UUID + " " + v.Norm.String() + "\n" +
		" " + String("name", v.Name).String() + "\n" +
		" " + String("description", v.Description).String() + "\n"
	blocks := make([]string, 0, len(v.Gates))
	for _, g := range v.Gates {
		blocks = append(blocks, indentEntity(g))
	}
	sort.Strings(blocks)
	for _, b := range blocks {
		ret += b
	}
	ret += ")"
	return ret
}

// Component is a complete LibrePCB component element.
type Component struct {
	ElementHeader
	SchematicOnly bool
	DefaultValue  string
	Prefix        string
	Signals       []Signal
	Variants      []*Variant
	Approvals     []string
}

// NewComponent returns a component without signals or variants.
func NewComponent(header ElementHeader, schematicOnly bool, defaultValue, prefix string) *Component {
	return &Component{
		ElementHeader: header,
		SchematicOnly: schematicOnly,
		DefaultValue:  defaultValue,
		Prefix:        prefix,
	}
}

// AddSignal appends a signal. Signals keep their insertion order.
func (c *Component) AddSignal(s Signal) {
	c.Signals = append(c.Signals, s)
}

// AddVariant appends a variant.
func (c *Component) AddVariant(v *Variant) {
	c.Variants = append(c.Variants, v)
}

// AddApproval records a pre-rendered approval node.
func (c *Component) AddApproval(approval string) {
	c.Approvals = append(c.Approvals, approval)
}

func (c *Component) String() string {
	ret := "(librepcb_component " + c.UUID + "\n"
	ret += c.headerString()
	ret += " " + Bool("schematic_only", c.SchematicOnly).String() + "\n" +
		" " + String("default_value", c.DefaultValue).String() + "\n" +
		" " + String("prefix", c.Prefix).String() + "\n"
	ret += indentEntities(c.Signals)
	ret += indentEntities(c.Variants)

	approvals := make([]string, len(c.Approvals))
	copy(approvals, c.Approvals)
	sort.Strings(approvals)
	ret += indentStrings(approvals)

	ret += ")"
	return ret
}

// Serialize writes the component into its element directory below outputDir.
func (c *Component) Serialize(outputDir string) error {
	return writeElement(outputDir, c.UUID, ".librepcb-cmp", "0.1\n", "component.lp", c.String())
}
