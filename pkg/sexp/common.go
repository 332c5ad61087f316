package sexp

// Position is a 2D point on the board or sheet plane, in millimeters.
type Position struct {
	X float64
	Y float64
}

func (p Position) String() string {
	return "(position " + FormatFloat(p.X) + " " + FormatFloat(p.Y) + ")"
}

// Position3D is a 3D offset applied to footprint models, in millimeters.
type Position3D struct {
	X float64
	Y float64
	Z float64
}

func (p Position3D) String() string {
	return "(3d_position " + FormatFloat(p.X) + " " + FormatFloat(p.Y) + " " + FormatFloat(p.Z) + ")"
}

// Rotation3D is a 3D rotation applied to footprint models, in degrees.
type Rotation3D struct {
	X float64
	Y float64
	Z float64
}

func (r Rotation3D) String() string {
	return "(3d_rotation " + FormatFloat(r.X) + " " + FormatFloat(r.Y) + " " + FormatFloat(r.Z) + ")"
}

// Vertex is one corner of a polygon or zone outline. A non-zero angle bends
// the segment leading to the next vertex into an arc.
type Vertex struct {
	Position Position
	Angle    float64
}

func (v Vertex) String() string {
	return "(vertex " + v.Position.String() + " " + Float("angle", v.Angle).String() + ")"
}

// Layer names the board or symbol layer a graphical element lives on.
type Layer string

// Board and symbol layers used by the generators.
const (
	LayerTopCopper        Layer = "top_cu"
	LayerTopPlacement     Layer = "top_placement"
	LayerTopDocumentation Layer = "top_documentation"
	LayerTopNames         Layer = "top_names"
	LayerTopValues        Layer = "top_values"
	LayerTopCourtyard     Layer = "top_courtyard"
	LayerSymbolOutlines   Layer = "sym_outlines"
	LayerSymbolNames      Layer = "sym_names"
	LayerSymbolValues     Layer = "sym_values"
)

func (l Layer) String() string {
	return "(layer " + string(l) + ")"
}

// Align is a horizontal/vertical text alignment pair such as "center bottom".
type Align string

func (a Align) String() string {
	return "(align " + string(a) + ")"
}

// Polygon is a graphical outline on a single layer.
type Polygon struct {
	UUID     string
	Layer    Layer
	Width    float64
	Fill     bool
	GrabArea bool
	Vertices []Vertex
}

// NewPolygon returns a polygon without vertices.
func NewPolygon(uuid string, layer Layer, width float64, fill, grabArea bool) *Polygon {
	return &Polygon{UUID: uuid, Layer: layer, Width: width, Fill: fill, GrabArea: grabArea}
}

// AddVertex appends a vertex to the outline.
func (p *Polygon) AddVertex(pos Position, angle float64) {
	p.Vertices = append(p.Vertices, Vertex{Position: pos, Angle: angle})
}

func (p *Polygon) String() string {
	ret := "(polygon " + p.UUID + " " + p.Layer.String() + "\n" +
		" " + Float("width", p.Width).String() +
		" " + Bool("fill", p.Fill).String() +
		" " + Bool("grab_area", p.GrabArea).String() + "\n"
	ret += indentEntities(p.Vertices)
	ret += ")"
	return ret
}

// Circle is a graphical circle on a single layer.
type Circle struct {
	UUID     string
	Layer    Layer
	Width    float64
	Fill     bool
	GrabArea bool
	Diameter float64
	Position Position
}

func (c *Circle) String() string {
	return "(circle " + c.UUID + " " + c.Layer.String() + "\n" +
		" " + Float("width", c.Width).String() +
		" " + Bool("fill", c.Fill).String() +
		" " + Bool("grab_area", c.GrabArea).String() +
		" " + Float("diameter", c.Diameter).String() +
		" " + c.Position.String() + "\n" +
		")"
}

// Text is a vector text element in a symbol. Footprints use StrokeText
// instead.
type Text struct {
	UUID     string
	Layer    Layer
	Value    string
	Align    Align
	Height   float64
	Position Position
	Rotation float64
}

func (t *Text) String() string {
	return "(text " + t.UUID + " " + t.Layer.String() + " " + String("value", t.Value).String() + "\n" +
		" " + t.Align.String() +
		" " + Float("height", t.Height).String() +
		" " + t.Position.String() +
		" " + Float("rotation", t.Rotation).String() + "\n" +
		")"
}
