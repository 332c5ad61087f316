package generator

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/ipc"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/step"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

const (
	soicVersion = "0.1"
	soicCreated = "2018-11-10T20:32:03Z"
	soicTool    = "soic"

	soicLineWidth  = 0.25
	soicTextHeight = 1.0
	// soicCourtyardExcess grows the conductive extents to the courtyard.
	soicCourtyardExcess = 0.25
)

// SoicSeries describes one SOIC body family. Pin counts and heights span a
// grid; every (pins, height) pair yields one package.
type SoicSeries struct {
	// Standard is the body standard, "EIAJ" or "JEDEC".
	Standard string
	// NominalWidth is the lead span used in the package name.
	NominalWidth float64
	Pitch        float64
	Pins         []int
	Heights      []float64
	BodyWidth    float64
	TotalWidth   float64
	LeadWidth    float64
	LeadLength   float64
	// ContactLength is the length of the lead foot on the board.
	ContactLength float64
	// TopOffset extends the body outline beyond the outermost pin row.
	TopOffset float64
	Keywords  string
}

var soicSeries = []SoicSeries{
	{
		Standard:      "EIAJ",
		NominalWidth:  7.62,
		Pitch:         1.27,
		Pins:          []int{6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 28, 30, 32},
		Heights:       []float64{1.2, 1.4, 1.7, 2.7},
		BodyWidth:     5.22,
		TotalWidth:    8.42,
		LeadWidth:     0.4,
		LeadLength:    1.6,
		ContactLength: 0.8,
		TopOffset:     1.0,
		Keywords:      "so,soic,small outline,smd,eiaj",
	},
	{
		Standard:      "EIAJ",
		NominalWidth:  15.24,
		Pitch:         1.27,
		Pins:          []int{20, 22, 24, 28, 30, 32, 36, 40, 42, 44},
		Heights:       []float64{1.2, 1.4, 1.7, 2.7},
		BodyWidth:     12.84,
		TotalWidth:    16.04,
		LeadWidth:     0.4,
		LeadLength:    1.6,
		ContactLength: 0.8,
		TopOffset:     1.0,
		Keywords:      "so,soic,small outline,smd,eiaj",
	},
	{
		Standard:      "JEDEC",
		NominalWidth:  6.0,
		Pitch:         1.27,
		Pins:          []int{6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 28, 30, 32, 36, 40, 42, 44, 48},
		Heights:       []float64{1.75},
		BodyWidth:     3.9,
		TotalWidth:    6.0,
		LeadWidth:     0.45,
		LeadLength:    1.04,
		ContactLength: 0.835,
		TopOffset:     0.8,
		Keywords:      "so,soic,small outline,smd,jedec",
	},
}

func (s SoicSeries) fullName(pinCount int, height float64) string {
	return fmt.Sprintf("SOIC%sP%sX%s-%d",
		ipc.FormatDimension(s.Pitch, 2),
		ipc.FormatDimension(s.NominalWidth, 2),
		ipc.FormatDimension(height, 2),
		pinCount)
}

func (s SoicSeries) description(pinCount int, height float64) string {
	return fmt.Sprintf("%d-pin Small Outline Integrated Circuit (SOIC), "+
		"standardized by %s.\n\n"+
		"Pitch: %s mm\nNominal width: %.2fmm\nHeight: %.2fmm",
		pinCount, s.Standard, formatValue(s.Pitch), s.NominalWidth, height)
}

// BuildSoic builds the package for one pin count and height of a series.
func BuildSoic(ctx context.Context, cache *uuidcache.Cache, series SoicSeries, pinCount int, height float64, opts Options) (*sexp.Package, error) {
	if pinCount%2 != 0 {
		return nil, fmt.Errorf("soic: odd pin count %d", pinCount)
	}
	fullName := series.fullName(pinCount, height)
	res := NewResolver(cache, "pkg", fullName)

	created := opts.Created
	if created == "" {
		created = soicCreated
	}

	pkg := sexp.NewPackage(sexp.ElementHeader{
		UUID:        res.UUID("pkg"),
		Name:        fullName,
		Description: series.description(pinCount, height) + generatedWith(soicTool),
		Keywords:    fmt.Sprintf("soic%d,so%d,%s", pinCount, pinCount, series.Keywords),
		Author:      opts.Author,
		Version:     soicVersion,
		Created:     created,
		Categories:  []string{categorySOIC},
	}, sexp.AssemblySMT)

	padUUIDs := make([]string, pinCount)
	for p := 1; p <= pinCount; p++ {
		padUUIDs[p-1] = res.UUID(fmt.Sprintf("pad-%d", p))
		pkg.AddPad(sexp.PackagePad{UUID: padUUIDs[p-1], Name: fmt.Sprintf("%d", p)})
	}

	modelUUID := ""
	if opts.Models {
		modelUUID = res.UUID("3d-model")
		pkg.Add3DModel(sexp.Package3DModel{UUID: modelUUID, Name: fullName})
	}

	variants := []struct {
		key, name    string
		padWidth     float64
		padExtension float64
	}{
		{"reflow", "reflow", 0.6, 0.0},
		{"handsoldering", "hand soldering", 0.7, 0.5},
	}
	for _, v := range variants {
		fp := soicFootprint(res, series, pinCount, v.key, v.name, v.padWidth, v.padExtension, padUUIDs)
		if modelUUID != "" {
			fp.Add3DModel(modelUUID)
		}
		pkg.AddFootprint(fp)
	}
	return pkg, nil
}

func soicFootprint(res *Resolver, s SoicSeries, pinCount int, key, name string, padWidth, padExtension float64, padUUIDs []string) *sexp.Footprint {
	fp := sexp.NewFootprint(res.UUID("footprint-"+key), name, "")

	bounds := geometry.NewBoundingBox()
	mid := pinCount / 2
	padXOffset := s.TotalWidth/2 - s.ContactLength/2 + 0.15 + padExtension/2
	for p := 1; p <= pinCount; p++ {
		var x, y float64
		if p <= mid {
			y = geometry.PinY(p, mid, s.Pitch, false)
			x = -padXOffset
		} else {
			y = -geometry.PinY(p-mid, mid, s.Pitch, false)
			x = padXOffset
		}
		bounds.ExpandRect(sexp.Position{X: x, Y: y}, s.ContactLength+0.15+padExtension, padWidth)
		fp.AddPad(&sexp.FootprintPad{
			UUID:        padUUIDs[p-1],
			Side:        sexp.SideTop,
			Shape:       sexp.ShapeRoundedRect,
			Position:    sexp.Position{X: x, Y: y},
			Size:        sexp.Size{Width: s.ContactLength + 0.15 + padExtension, Height: padWidth},
			StopMask:    sexp.StopMaskAuto,
			SolderPaste: sexp.SolderPasteAuto,
			Function:    sexp.FunctionStandardPad,
			PackagePad:  padUUIDs[p-1],
		})
	}

	// Documentation: lead contact areas outside the body.
	leadXOffset := s.BodyWidth / 2
	for p := 1; p <= pinCount; p++ {
		var y, xMin, xMax float64
		if p <= mid {
			y = geometry.PinY(p, mid, s.Pitch, false)
			xMin = -leadXOffset - soicLineWidth/2
			xMax = xMin - s.LeadLength
		} else {
			y = -geometry.PinY(p-mid, mid, s.Pitch, false)
			xMin = leadXOffset + soicLineWidth/2
			xMax = xMin + s.LeadLength
		}
		yMin, yMax := y-s.LeadWidth/2, y+s.LeadWidth/2
		lead := sexp.NewPolygon(
			res.UUID(fmt.Sprintf("lead-%d", p)),
			sexp.LayerTopDocumentation, 0.0, true, false)
		lead.AddVertex(sexp.Position{X: xMin, Y: yMax}, 0)
		lead.AddVertex(sexp.Position{X: xMax, Y: yMax}, 0)
		lead.AddVertex(sexp.Position{X: xMax, Y: yMin}, 0)
		lead.AddVertex(sexp.Position{X: xMin, Y: yMin}, 0)
		lead.AddVertex(sexp.Position{X: xMin, Y: yMax}, 0)
		fp.AddPolygon(lead)
	}

	// Body rectangle, once on the silkscreen and once as documentation.
	yMax, yMin := geometry.RowBounds(mid, s.Pitch, s.TopOffset, false)
	dx := s.BodyWidth / 2
	for _, l := range []struct {
		layer sexp.Layer
		uuid  string
		grab  bool
	}{
		{sexp.LayerTopPlacement, res.UUID("polygon-silkscreen-" + key), false},
		{sexp.LayerTopDocumentation, res.UUID("polygon-outline-" + key), true},
	} {
		poly := sexp.NewPolygon(l.uuid, l.layer, soicLineWidth, false, l.grab)
		poly.AddVertex(sexp.Position{X: -dx, Y: yMax}, 0)
		poly.AddVertex(sexp.Position{X: dx, Y: yMax}, 0)
		poly.AddVertex(sexp.Position{X: dx, Y: yMin}, 0)
		poly.AddVertex(sexp.Position{X: -dx, Y: yMin}, 0)
		poly.AddVertex(sexp.Position{X: -dx, Y: yMax}, 0)
		fp.AddPolygon(poly)
	}

	// Courtyard around the pads and the body outline.
	bounds.ExpandRect(sexp.Position{}, s.BodyWidth+soicLineWidth, yMax-yMin+soicLineWidth)
	cb := bounds.Grow(soicCourtyardExcess)
	courtyard := sexp.NewPolygon(res.UUID("polygon-courtyard-"+key), sexp.LayerTopCourtyard, courtyardLineWidth, false, false)
	courtyard.AddVertex(sexp.Position{X: cb.Max.X, Y: cb.Max.Y}, 0)
	courtyard.AddVertex(sexp.Position{X: cb.Max.X, Y: cb.Min.Y}, 0)
	courtyard.AddVertex(sexp.Position{X: cb.Min.X, Y: cb.Min.Y}, 0)
	courtyard.AddVertex(sexp.Position{X: cb.Min.X, Y: cb.Max.Y}, 0)
	fp.AddPolygon(courtyard)

	// Pin 1 dot inside the body outline.
	dotDia := s.Pitch / 2
	fp.AddCircle(&sexp.Circle{
		UUID:     res.UUID("pin1-dot-silkscreen-" + key),
		Layer:    sexp.LayerTopPlacement,
		Fill:     true,
		Diameter: dotDia,
		Position: sexp.Position{
			X: -(dx - dotDia*1.5),
			Y: geometry.PinY(1, mid, s.Pitch, false),
		},
	})

	labelYMax, labelYMin := geometry.RowBounds(mid, s.Pitch, s.TopOffset+1.27, false)
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-name-" + key),
		Layer:      sexp.LayerTopNames,
		Height:     soicTextHeight,
		Width:      0.2,
		Align:      "center bottom",
		Position:   sexp.Position{X: 0, Y: labelYMax},
		AutoRotate: true,
		Value:      "{{NAME}}",
	})
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-value-" + key),
		Layer:      sexp.LayerTopValues,
		Height:     soicTextHeight,
		Width:      0.2,
		Align:      "center top",
		Position:   sexp.Position{X: 0, Y: labelYMin},
		AutoRotate: true,
		Value:      "{{VALUE}}",
	})
	return fp
}

// soicModel builds the 3D assembly: body plus gull wing leads approximated
// as flat boxes at board level.
func soicModel(series SoicSeries, pinCount int, height float64) *step.Assembly {
	a := step.NewAssembly(series.fullName(pinCount, height))
	const standoff = 0.1
	a.AddBody(step.Body{
		Name:  "body",
		Color: step.ColorICBody,
		Solid: step.Box(series.BodyWidth, float64(pinCount/2)*series.Pitch+series.TopOffset, height-standoff).
			At(0, 0, (height+standoff)/2),
	})
	mid := pinCount / 2
	legSpan := series.TotalWidth/2 - series.BodyWidth/2
	for p := 1; p <= pinCount; p++ {
		y := geometry.PinY(p, mid, series.Pitch, false)
		x := -(series.BodyWidth/2 + legSpan/2)
		if p > mid {
			y = -geometry.PinY(p-mid, mid, series.Pitch, false)
			x = -x
		}
		a.AddBody(step.Body{
			Name:  fmt.Sprintf("lead-%d", p),
			Color: step.ColorLeadSMT,
			Solid: step.Box(legSpan, series.LeadWidth, 0.2).At(x, y, 0.1),
		})
	}
	return a
}

// SoicItems returns one batch item per series, pin count and height.
func SoicItems(cache *uuidcache.Cache, opts Options) []Item {
	var items []Item
	for _, series := range soicSeries {
		for _, height := range series.Heights {
			for _, pinCount := range series.Pins {
				series, height, pinCount := series, height, pinCount
				items = append(items, Item{
					Name: series.fullName(pinCount, height),
					Build: func(ctx context.Context) ([]Element, *step.Assembly, error) {
						pkg, err := BuildSoic(ctx, cache, series, pinCount, height, opts)
						if err != nil {
							return nil, nil, err
						}
						var model *step.Assembly
						if opts.Models {
							model = soicModel(series, pinCount, height)
						}
						return []Element{pkg}, model, nil
					},
				})
			}
		}
	}
	return items
}
