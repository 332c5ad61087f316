package sexp

import "sort"

// ElementHeader carries the metadata attributes shared by every top level
// library element (package, component, device, symbol).
type ElementHeader struct {
	UUID        string
	Name        string
	Description string
	Keywords    string
	Author      string
	Version     string
	Created     string
	Deprecated  bool
	GeneratedBy string
	Categories  []string
}

// headerString renders the attribute lines from name through the category
// list, each indented one level.
func (h *ElementHeader) headerString() string {
	if h.UUID == "" || h.Name == "" {
		panic("sexp: library element without uuid or name")
	}
	ret := " " + String("name", h.Name).String() + "\n" +
		" " + String("description", h.Description).String() + "\n" +
		" " + String("keywords", h.Keywords).String() + "\n" +
		" " + String("author", h.Author).String() + "\n" +
		" " + String("version", h.Version).String() + "\n" +
		" " + Token("created", h.Created).String() + "\n" +
		" " + Bool("deprecated", h.Deprecated).String() + "\n" +
		" " + String("generated_by", h.GeneratedBy).String() + "\n"
	for _, cat := range h.Categories {
		ret += " " + Token("category", cat).String() + "\n"
	}
	return ret
}

// AssemblyType describes how a package gets assembled onto the board.
type AssemblyType string

const (
	AssemblyNone  AssemblyType = "none"
	AssemblyTHT   AssemblyType = "tht"
	AssemblySMT   AssemblyType = "smt"
	AssemblyMixed AssemblyType = "mixed"
	AssemblyOther AssemblyType = "other"
	AssemblyAuto  AssemblyType = "auto"
)

func (a AssemblyType) String() string {
	return "(assembly_type " + string(a) + ")"
}

// AlternativeName is an additional name a package is known by, with a
// reference naming the body that uses it.
type AlternativeName struct {
	Name      string
	Reference string
}

func (a AlternativeName) String() string {
	return "(alternative_name " + Quote(a.Name) + " (reference " + Quote(a.Reference) + "))"
}

// PackagePad is an abstract electrical pad of a package. Footprint pads
// reference package pads by UUID.
type PackagePad struct {
	UUID string
	Name string
}

func (p PackagePad) String() string {
	return "(pad " + p.UUID + " " + String("name", p.Name).String() + ")"
}

// Package3DModel is a 3D model provided by a package.
type Package3DModel struct {
	UUID string
	Name string
}

func (m Package3DModel) String() string {
	return "(3d_model " + m.UUID + " " + String("name", m.Name).String() + ")"
}

// less orders models by UUID, then name.
func (m Package3DModel) less(other Package3DModel) bool {
	if m.UUID == other.UUID {
		return m.Name < other.Name
	}
	return m.UUID < other.UUID
}

// Footprint3DModel enables one of the package 3D models for a footprint.
type Footprint3DModel struct {
	UUID string
}

func (m Footprint3DModel) String() string {
	return "(3d_model " + m.UUID + ")"
}

// ComponentSide is the board side a pad sits on.
type ComponentSide string

const (
	SideTop    ComponentSide = "top"
	SideBottom ComponentSide = "bottom"
)

func (s ComponentSide) String() string {
	return "(side " + string(s) + ")"
}

// PadShape is the copper shape of a footprint pad.
type PadShape string

const (
	ShapeRoundedRect    PadShape = "roundrect"
	ShapeRoundedOctagon PadShape = "octagon"
	ShapeCustom         PadShape = "custom"
)

func (s PadShape) String() string {
	return "(shape " + string(s) + ")"
}

// Size is a width/height pair in millimeters.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) String() string {
	return "(size " + FormatFloat(s.Width) + " " + FormatFloat(s.Height) + ")"
}

// StopMaskConfig selects automatic, disabled or explicit stop mask expansion.
// The zero value is automatic.
type StopMaskConfig struct {
	mode   uint8
	offset float64
}

// StopMaskAuto lets the board rules determine the expansion.
var StopMaskAuto = StopMaskConfig{}

// StopMaskOff disables the stop mask opening.
var StopMaskOff = StopMaskConfig{mode: 1}

// StopMaskOffset sets an explicit expansion in millimeters.
func StopMaskOffset(v float64) StopMaskConfig {
	return StopMaskConfig{mode: 2, offset: v}
}

func (c StopMaskConfig) String() string {
	switch c.mode {
	case 1:
		return "(stop_mask off)"
	case 2:
		return "(stop_mask " + FormatFloat(c.offset) + ")"
	default:
		return "(stop_mask auto)"
	}
}

// SolderPasteConfig selects automatic or disabled solder paste.
type SolderPasteConfig string

const (
	SolderPasteAuto SolderPasteConfig = "auto"
	SolderPasteOff  SolderPasteConfig = "off"
)

func (c SolderPasteConfig) String() string {
	return "(solder_paste " + string(c) + ")"
}

// PadFunction is the electrical or mechanical role of a pad.
type PadFunction string

const (
	FunctionUnspecified    PadFunction = "unspecified"
	FunctionStandardPad    PadFunction = "standard"
	FunctionPressFitPad    PadFunction = "pressfit"
	FunctionThermalPad     PadFunction = "thermal"
	FunctionBGAPad         PadFunction = "bga"
	FunctionEdgeConnector  PadFunction = "edge_connector"
	FunctionTestPad        PadFunction = "test"
	FunctionLocalFiducial  PadFunction = "local_fiducial"
	FunctionGlobalFiducial PadFunction = "global_fiducial"
)

func (f PadFunction) String() string {
	return "(function " + string(f) + ")"
}

// PadHole is a drill inside a THT footprint pad. The vertex list describes
// the drill path; a single vertex yields a round hole.
type PadHole struct {
	UUID     string
	Diameter float64
	Vertices []Vertex
}

func (h PadHole) String() string {
	ret := "(hole " + h.UUID + " " + Float("diameter", h.Diameter).String() + "\n"
	ret += indentEntities(h.Vertices)
	ret += ")"
	return ret
}

// Hole is a non-plated hole of a footprint.
type Hole struct {
	UUID     string
	Diameter float64
	Vertices []Vertex
	StopMask StopMaskConfig
}

func (h Hole) String() string {
	ret := "(hole " + h.UUID + " " + Float("diameter", h.Diameter).String() + "\n"
	ret += " " + h.StopMask.String() + "\n"
	ret += indentEntities(h.Vertices)
	ret += ")"
	return ret
}

// FootprintPad is the geometric realization of a package pad in one
// footprint. SMT pads leave Holes empty.
type FootprintPad struct {
	UUID        string
	Side        ComponentSide
	Shape       PadShape
	Position    Position
	Rotation    float64
	Size        Size
	Radius      float64
	StopMask    StopMaskConfig
	SolderPaste SolderPasteConfig
	Clearance   float64
	Function    PadFunction
	PackagePad  string
	Holes       []PadHole
}

func (p *FootprintPad) String() string {
	ret := "(pad " + p.UUID + " " + p.Side.String() + " " + p.Shape.String() + "\n" +
		" " + p.Position.String() +
		" " + Float("rotation", p.Rotation).String() +
		" " + p.Size.String() +
		" " + Float("radius", p.Radius).String() + "\n" +
		" " + p.StopMask.String() +
		" " + p.SolderPaste.String() +
		" " + Float("clearance", p.Clearance).String() +
		" " + p.Function.String() + "\n" +
		" " + Token("package_pad", p.PackagePad).String() + "\n"
	ret += indentEntities(p.Holes)
	ret += ")"
	return ret
}

// LetterSpacing and LineSpacing only support automatic spacing.
const spacingAuto = "auto"

// StrokeText is a stroke font text element in a footprint.
type StrokeText struct {
	UUID       string
	Layer      Layer
	Height     float64
	Width      float64
	Align      Align
	Position   Position
	Rotation   float64
	AutoRotate bool
	Mirror     bool
	Value      string
}

func (t *StrokeText) String() string {
	return "(stroke_text " + t.UUID + " " + t.Layer.String() + "\n" +
		" " + Float("height", t.Height).String() +
		" " + Float("stroke_width", t.Width).String() +
		" (letter_spacing " + spacingAuto + ")" +
		" (line_spacing " + spacingAuto + ")\n" +
		" " + t.Align.String() +
		" " + t.Position.String() +
		" " + Float("rotation", t.Rotation).String() + "\n" +
		" " + Bool("auto_rotate", t.AutoRotate).String() +
		" " + Bool("mirror", t.Mirror).String() +
		" " + String("value", t.Value).String() + "\n" +
		")"
}

// Zone is a keepout area of a footprint.
type Zone struct {
	UUID       string
	Top        bool
	Inner      bool
	Bottom     bool
	NoCopper   bool
	NoPlanes   bool
	NoExposure bool
	NoDevices  bool
	Vertices   []Vertex
}

// AddVertex appends a vertex to the zone outline.
func (z *Zone) AddVertex(pos Position, angle float64) {
	z.Vertices = append(z.Vertices, Vertex{Position: pos, Angle: angle})
}

func (z *Zone) String() string {
	ret := "(zone " + z.UUID + "\n" +
		" " + Bool("no_copper", z.NoCopper).String() +
		" " + Bool("no_planes", z.NoPlanes).String() +
		" " + Bool("no_exposure", z.NoExposure).String() +
		" " + Bool("no_devices", z.NoDevices).String() + "\n" +
		" " + Bool("top", z.Top).String() +
		" " + Bool("inner", z.Inner).String() +
		" " + Bool("bottom", z.Bottom).String() + "\n"
	ret += indentEntities(z.Vertices)
	ret += ")"
	return ret
}

// Footprint is one land pattern variant of a package. Pads, polygons,
// circles and texts keep their insertion order; 3D model references are
// sorted by UUID.
type Footprint struct {
	UUID        string
	Name        string
	Description string
	Position3D  Position3D
	Rotation3D  Rotation3D
	Models      []Footprint3DModel
	Pads        []*FootprintPad
	Polygons    []*Polygon
	Circles     []*Circle
	Texts       []*StrokeText
	Zones       []*Zone
	Holes       []Hole
}

// NewFootprint returns an empty footprint with identity 3D transform.
func NewFootprint(uuid, name, description string) *Footprint {
	return &Footprint{UUID: uuid, Name: name, Description: description}
}

// AddPad appends a pad. Pads keep their insertion order.
func (f *Footprint) AddPad(pad *FootprintPad) {
	f.Pads = append(f.Pads, pad)
}

// Add3DModel enables a package 3D model for this footprint.
func (f *Footprint) Add3DModel(uuid string) {
	f.Models = append(f.Models, Footprint3DModel{UUID: uuid})
}

// AddPolygon appends a polygon.
func (f *Footprint) AddPolygon(p *Polygon) {
	f.Polygons = append(f.Polygons, p)
}

// AddCircle appends a circle.
func (f *Footprint) AddCircle(c *Circle) {
	f.Circles = append(f.Circles, c)
}

// AddText appends a stroke text.
func (f *Footprint) AddText(t *StrokeText) {
	f.Texts = append(f.Texts, t)
}

// AddZone appends a keepout zone.
func (f *Footprint) AddZone(z *Zone) {
	f.Zones = append(f.Zones, z)
}

// AddHole appends a non-plated hole.
func (f *Footprint) AddHole(h Hole) {
	f.Holes = append(f.Holes, h)
}

func (f *Footprint) String() string {
	if f.UUID == "" || f.Name == "" {
		panic("sexp: footprint without uuid or name")
	}
	models := make([]Footprint3DModel, len(f.Models))
	copy(models, f.Models)
	sort.Slice(models, func(i, j int) bool { return models[i].UUID < models[j].UUID })

	ret := "(footprint " + f.UUID + "\n" +
		" " + String("name", f.Name).String() + "\n" +
		" " + String("description", f.Description).String() + "\n" +
		" " + f.Position3D.String() + " " + f.Rotation3D.String() + "\n"
	ret += indentEntities(models)
	ret += indentEntities(f.Pads)
	ret += indentEntities(f.Polygons)
	ret += indentEntities(f.Circles)
	ret += indentEntities(f.Texts)
	ret += indentEntities(f.Zones)
	ret += indentEntities(f.Holes)
	ret += ")"
	return ret
}

// Package is a complete LibrePCB package element.
type Package struct {
	ElementHeader
	AlternativeNames []AlternativeName
	AssemblyType     AssemblyType
	Pads             []PackagePad
	Models           []Package3DModel
	Footprints       []*Footprint
	Approvals        []string
}

// NewPackage returns a package without pads or footprints.
func NewPackage(header ElementHeader, assembly AssemblyType) *Package {
	return &Package{ElementHeader: header, AssemblyType: assembly}
}

// AddAlternativeName registers an additional package name.
func (p *Package) AddAlternativeName(name, reference string) {
	p.AlternativeNames = append(p.AlternativeNames, AlternativeName{Name: name, Reference: reference})
}

// AddPad appends a package pad. Pads keep their insertion order.
func (p *Package) AddPad(pad PackagePad) {
	p.Pads = append(p.Pads, pad)
}

// Add3DModel registers a 3D model.
func (p *Package) Add3DModel(model Package3DModel) {
	p.Models = append(p.Models, model)
}

// AddFootprint appends a footprint variant.
func (p *Package) AddFootprint(f *Footprint) {
	p.Footprints = append(p.Footprints, f)
}

// AddApproval records a pre-rendered approval node. Approvals serialize in
// lexical order regardless of insertion order.
func (p *Package) AddApproval(approval string) {
	p.Approvals = append(p.Approvals, approval)
}

func (p *Package) String() string {
	ret := "(librepcb_package " + p.UUID + "\n"
	ret += p.headerString()
	for _, alt := range p.AlternativeNames {
		ret += " " + alt.String() + "\n"
	}
	ret += " " + p.AssemblyType.String() + "\n"
	ret += indentEntities(p.Pads)

	models := make([]Package3DModel, len(p.Models))
	copy(models, p.Models)
	sort.Slice(models, func(i, j int) bool { return models[i].less(models[j]) })
	ret += indentEntities(models)

	ret += indentEntities(p.Footprints)

	approvals := make([]string, len(p.Approvals))
	copy(approvals, p.Approvals)
	sort.Strings(approvals)
	ret += indentStrings(approvals)

	ret += ")"
	return ret
}

// Serialize writes the package into its element directory below outputDir.
func (p *Package) Serialize(outputDir string) error {
	return writeElement(outputDir, p.UUID, ".librepcb-pkg", "0.1\n", "package.lp", p.String())
}
