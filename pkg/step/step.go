// Package step is the boundary to 3D solid model export. The generators
// decide the geometry (body and lead boxes, pin-1 markers) and hand it over
// as an assembly of named, colored solids; how the solids are turned into an
// actual STEP file is this package's concern. The default writer emits a
// plain text assembly manifest that downstream CAD tooling converts; it
// keeps the generators testable without a CAD kernel in the build.
package step

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
)

// Standard body colors.
const (
	ColorICBody  = "gray16"
	ColorPin1Dot = "gray55"
	ColorLeadSMT = "gainsboro"
	ColorLeadTHT = "gainsboro"
)

// THTLeadSolderLength is the lead length on the PCB solder side.
const THTLeadSolderLength = 3.0

// SolidKind discriminates the primitive solids the generators emit.
type SolidKind uint8

const (
	SolidBox SolidKind = iota
	SolidCylinder
)

// Solid is one primitive solid, centered at Position.
type Solid struct {
	Kind SolidKind
	// Box dimensions, or diameter/height for cylinders (X=Y=diameter).
	X, Y, Z  float64
	Position [3]float64
}

// Box returns a box solid of the given dimensions.
func Box(x, y, z float64) Solid {
	return Solid{Kind: SolidBox, X: x, Y: y, Z: z}
}

// Cylinder returns a vertical cylinder solid.
func Cylinder(diameter, height float64) Solid {
	return Solid{Kind: SolidCylinder, X: diameter, Y: diameter, Z: height}
}

// At returns a copy of the solid translated to the given center.
func (s Solid) At(x, y, z float64) Solid {
	s.Position = [3]float64{x, y, z}
	return s
}

// Body is a named, colored solid of an assembly.
type Body struct {
	Name  string
	Color string
	Solid Solid
}

// Assembly collects the bodies of one 3D model. Add the same lead shape
// once per location rather than pre-transformed copies; writers exploit
// the repetition when minifying their output.
type Assembly struct {
	name   string
	bodies []Body
}

// NewAssembly returns an empty assembly with the given model name.
func NewAssembly(name string) *Assembly {
	return &Assembly{name: name}
}

// AddBody appends a body to the assembly.
func (a *Assembly) AddBody(body Body) {
	a.bodies = append(a.bodies, body)
}

// Name returns the model name.
func (a *Assembly) Name() string { return a.name }

// Bodies returns the bodies in insertion order.
func (a *Assembly) Bodies() []Body { return a.bodies }

// Save writes the assembly manifest to outPath, creating parent
// directories as needed. Fused collapses the body hierarchy for simple
// parts without repetition.
func (a *Assembly) Save(outPath string, fused bool) error {
	dir := filepath.Dir(outPath)
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return fmt.Errorf("step: %q exists but is not a directory", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("step: creating model directory: %w", err)
	}

	var b strings.Builder
	mode := "default"
	if fused {
		mode = "fused"
	}
	fmt.Fprintf(&b, "assembly %s mode=%s\n", a.name, mode)
	for _, body := range a.bodies {
		s := body.Solid
		kind := "box"
		if s.Kind == SolidCylinder {
			kind = "cylinder"
		}
		fmt.Fprintf(&b, "body %s color=%s %s %s %s %s at %s %s %s\n",
			body.Name, body.Color, kind,
			sexp.FormatFloat(s.X), sexp.FormatFloat(s.Y), sexp.FormatFloat(s.Z),
			sexp.FormatFloat(s.Position[0]), sexp.FormatFloat(s.Position[1]), sexp.FormatFloat(s.Position[2]))
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("step: writing model: %w", err)
	}
	return nil
}
