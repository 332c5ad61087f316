package sexp

import "sort"

// ComponentPad maps one package pad to one component signal.
type ComponentPad struct {
	PadUUID    string
	SignalUUID string
}

func (p ComponentPad) String() string {
	return "(pad " + p.PadUUID + " " + Token("signal", p.SignalUUID).String() + ")"
}

// Part is an orderable part number provided by a device.
type Part struct {
	MPN          string
	Manufacturer string
	Attributes   []Attribute
}

// AddAttribute appends an attribute to the part.
func (p *Part) AddAttribute(a Attribute) {
	p.Attributes = append(p.Attributes, a)
}

func (p *Part) String() string {
	ret := "(part " + Quote(p.MPN) + " " + String("manufacturer", p.Manufacturer).String() + "\n"
	ret += indentEntities(p.Attributes)
	ret += ")"
	return ret
}

// Device is a complete LibrePCB device element, tying a component to a
// package and mapping pads to signals.
type Device struct {
	ElementHeader
	Component string
	Package   string
	Pads      []ComponentPad
	Parts     []*Part
	Approvals []string
}

// NewDevice returns a device without pad mappings.
func NewDevice(header ElementHeader, component, pkg string) *Device {
	return &Device{ElementHeader: header, Component: component, Package: pkg}
}

// AddPad appends a pad to signal mapping. Mappings serialize sorted by pad
// UUID regardless of insertion order.
func (d *Device) AddPad(pad ComponentPad) {
	d.Pads = append(d.Pads, pad)
}

// AddPart appends an orderable part.
func (d *Device) AddPart(p *Part) {
	d.Parts = append(d.Parts, p)
}

// AddApproval records a pre-rendered approval node.
func (d *Device) AddApproval(approval string) {
	d.Approvals = append(d.Approvals, approval)
}

func (d *Device) String() string {
	ret := "(librepcb_device " + d.UUID + "\n"
	ret += d.headerString()
	ret += " " + Token("component", d.Component).String() + "\n" +
		" " + Token("package", d.Package).String() + "\n"

	pads := make([]ComponentPad, len(d.Pads))
	copy(pads, d.Pads)
	sort.Slice(pads, func(i, j int) bool { return pads[i].PadUUID < pads[j].PadUUID })
	ret += indentEntities(pads)

	ret += indentEntities(d.Parts)

	approvals := make([]string, len(d.Approvals))
	copy(approvals, d.Approvals)
	sort.Strings(approvals)
	ret += indentStrings(approvals)

	ret += ")"
	return ret
}

// Serialize writes the device into its element directory below outputDir.
func (d *Device) Serialize(outputDir string) error {
	return writeElement(outputDir, d.UUID, ".librepcb-dev", "1\n", "device.lp", d.String())
}
