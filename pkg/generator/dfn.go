package generator

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/internal/ctxlog"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/ipc"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/step"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

const (
	dfnVersion = "0.1.2"
	dfnCreated = "2019-01-17T06:11:43Z"
	dfnTool    = "dfn"

	dfnSilkscreenWidth  = 0.254
	dfnSilkscreenOffset = 0.15
	dfnLabelOffset      = 1.0
	dfnTextHeight       = 1.0
	// dfnMinClearance is the minimum copper distance between the lead pads
	// and the exposed pad.
	dfnMinClearance = 0.20
	// dfnMinTrace keeps the shrunken exposed pad wide enough to still carry
	// a trace.
	dfnMinTrace = 0.10
	// dfnCourtyardExcess grows the conductive extents to the courtyard.
	dfnCourtyardExcess = 0.25
)

// leadWidth returns the configured or table lead width.
func (c DfnConfig) leadWidth() (float64, error) {
	if c.LeadWidth > 0 {
		return c.LeadWidth, nil
	}
	return ipc.DfnLeadWidth(c.Pitch)
}

// FullName returns the package name: the IPC style name with optional pad
// length and exposed pad suffixes, or the configured override.
func (c DfnConfig) FullName(makeExposed bool) string {
	if c.Name != "" {
		return c.Name
	}
	name := fmt.Sprintf("DFN%sP%sX%sX%s-%d",
		ipc.FormatDimension(c.Pitch, 2),
		ipc.FormatDimension(c.Length, 2),
		ipc.FormatDimension(c.Width, 2),
		ipc.FormatDimension(c.HeightNominal, 2),
		c.PinCount)
	if c.PrintPad {
		name += "P" + ipc.FormatDimension(c.LeadLength, 2)
	}
	if makeExposed {
		w := ipc.FormatDimension(c.ExposedWidth, 2)
		l := ipc.FormatDimension(c.ExposedLength, 2)
		if w == l {
			name += "T" + w
		} else {
			name += "T" + w + "X" + l
		}
	}
	return name
}

// description returns the element description. JEDEC rows name the standard.
func (c DfnConfig) description(makeExposed, jedec bool) string {
	var desc string
	if jedec {
		desc = fmt.Sprintf("%d-pin Dual Flat No-Lead package (DFN), "+
			"standardized by JEDEC MO-229F.\n\n"+
			"Pitch: %.2f mm\nNominal width: %.2f mm\n"+
			"Nominal length: %.2f mm\nHeight: %.2fmm",
			c.PinCount, c.Pitch, c.Width, c.Length, c.HeightNominal)
	} else {
		desc = fmt.Sprintf("%d-pin Dual Flat No-Lead package (DFN), "+
			"Pitch: %.2f mm\nNominal width: %.2f mm\n"+
			"Nominal length: %.2f mm\nHeight: %.2fmm",
			c.PinCount, c.Pitch, c.Width, c.Length, c.HeightNominal)
	}
	if makeExposed {
		desc += fmt.Sprintf("\nExposed Pad: %.2f x %.2f mm", c.ExposedWidth, c.ExposedLength)
	}
	if c.PrintPad {
		desc += fmt.Sprintf("\nPad length: %.2f mm", c.LeadLength)
	}
	return desc
}

func (c DfnConfig) keywordLine(series string) string {
	if c.Keywords != "" {
		return fmt.Sprintf("dfn%d,%s,%s", c.PinCount, series, strings.ToLower(c.Keywords))
	}
	return fmt.Sprintf("dfn%d,%s", c.PinCount, series)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildDfn builds the package element for one DFN configuration, with or
// without its exposed pad.
func BuildDfn(ctx context.Context, cache *uuidcache.Cache, cfg DfnConfig, makeExposed, jedec bool, opts Options) (*sexp.Package, error) {
	leadWidth, err := cfg.leadWidth()
	if err != nil {
		return nil, fmt.Errorf("dfn %s: %w", cfg.FullName(makeExposed), err)
	}
	toeHeel, err := ipc.DfnToeHeel(cfg.Pitch)
	if err != nil {
		return nil, fmt.Errorf("dfn %s: %w", cfg.FullName(makeExposed), err)
	}
	if cfg.PinCount%2 != 0 {
		return nil, fmt.Errorf("dfn %s: odd pin count %d", cfg.FullName(makeExposed), cfg.PinCount)
	}

	fullName := cfg.FullName(makeExposed)
	res := NewResolver(cache, "pkg", fullName)

	series := "dfn,dual flat no-leads"
	if jedec {
		series += ",mo-229f"
	}

	created := opts.Created
	if created == "" {
		created = cfg.Created
	}
	if created == "" {
		if jedec {
			created = dfnCreated
		} else {
			created = sexp.Now()
		}
	}

	pkg := sexp.NewPackage(sexp.ElementHeader{
		UUID:        res.UUID("pkg"),
		Name:        fullName,
		Description: cfg.description(makeExposed, jedec) + generatedWith(dfnTool),
		Keywords:    cfg.keywordLine(series),
		Author:      opts.Author,
		Version:     dfnVersion,
		Created:     created,
		Categories:  []string{categoryDFN},
	}, sexp.AssemblySMT)

	padUUIDs := make([]string, cfg.PinCount)
	for p := 1; p <= cfg.PinCount; p++ {
		padUUIDs[p-1] = res.UUID(fmt.Sprintf("pad-%d", p))
		pkg.AddPad(sexp.PackagePad{UUID: padUUIDs[p-1], Name: fmt.Sprintf("%d", p)})
	}
	epadUUID := ""
	if makeExposed {
		epadUUID = res.UUID("exposed")
		pkg.AddPad(sexp.PackagePad{UUID: epadUUID, Name: "ExposedPad"})
	}

	modelUUID := ""
	if opts.Models {
		modelUUID = res.UUID("3d-model")
		pkg.Add3DModel(sexp.Package3DModel{UUID: modelUUID, Name: fullName})
	}

	variants := []struct {
		key, name    string
		padExtension float64
	}{
		{"reflow", "reflow", 0.0},
		{"hand-soldering", "hand soldering", 0.3},
	}
	for _, v := range variants {
		fp := dfnFootprint(ctx, res, cfg, leadWidth, toeHeel, makeExposed, v.key, v.name, v.padExtension, padUUIDs, epadUUID)
		if modelUUID != "" {
			fp.Add3DModel(modelUUID)
		}
		pkg.AddFootprint(fp)
	}
	return pkg, nil
}

// dfnFootprint builds one footprint variant.
func dfnFootprint(ctx context.Context, res *Resolver, cfg DfnConfig, leadWidth, toeHeel float64, makeExposed bool, key, name string, padExtension float64, padUUIDs []string, epadUUID string) *sexp.Footprint {
	fp := sexp.NewFootprint(res.UUID("footprint-"+key), name, "")

	padLength := cfg.LeadLength + toeHeel + padExtension
	exposedLength := cfg.ExposedLength
	absPadPosX := cfg.Width/2 - cfg.LeadLength/2 + toeHeel/2 + padExtension/2

	// Shrink pads towards the minimum clearance when the exposed pad gets
	// too close, then keep the exposed pad above the minimum trace width.
	if makeExposed {
		adjusted := false
		clearance := cfg.Width/2 - cfg.LeadLength - exposedLength/2
		if clearance < dfnMinClearance {
			d := (dfnMinClearance - clearance) / 2
			padLength -= d
			exposedLength -= 2 * d
			absPadPosX += d / 2
			adjusted = true
		}
		if exposedLength < dfnMinTrace {
			d := dfnMinTrace - exposedLength
			exposedLength += d
			padLength -= d / 2
			absPadPosX += d / 4
			adjusted = true
		}
		if adjusted {
			final := absPadPosX - padLength/2 - exposedLength/2
			ctxlog.FromContext(ctx).Warn("exposed pad clearance adjusted",
				"package", cfg.FullName(makeExposed),
				"variant", name,
				"pad_length", padLength,
				"exposed_length", exposedLength,
				"clearance", final)
		}
	}

	bounds := geometry.NewBoundingBox()
	halfN := cfg.PinCount / 2
	for padIdx := 0; padIdx < cfg.PinCount; padIdx++ {
		y := geometry.PinY(padIdx%halfN+1, halfN, cfg.Pitch, false)
		x := -absPadPosX
		if padIdx >= halfN {
			x = absPadPosX
			y = -y
		}
		bounds.ExpandRect(sexp.Position{X: x, Y: y}, padLength, leadWidth)
		fp.AddPad(&sexp.FootprintPad{
			UUID:        padUUIDs[padIdx],
			Side:        sexp.SideTop,
			Shape:       sexp.ShapeRoundedRect,
			Position:    sexp.Position{X: x, Y: y},
			Size:        sexp.Size{Width: padLength, Height: leadWidth},
			StopMask:    sexp.StopMaskAuto,
			SolderPaste: sexp.SolderPasteAuto,
			Function:    sexp.FunctionStandardPad,
			PackagePad:  padUUIDs[padIdx],
		})
	}
	if makeExposed {
		bounds.ExpandRect(sexp.Position{}, exposedLength, cfg.ExposedWidth)
		fp.AddPad(&sexp.FootprintPad{
			UUID:        epadUUID,
			Side:        sexp.SideTop,
			Shape:       sexp.ShapeRoundedRect,
			Position:    sexp.Position{},
			Size:        sexp.Size{Width: exposedLength, Height: cfg.ExposedWidth},
			StopMask:    sexp.StopMaskAuto,
			SolderPaste: sexp.SolderPasteAuto,
			Function:    sexp.FunctionThermalPad,
			PackagePad:  epadUUID,
		})
	}
	bounds.ExpandRect(sexp.Position{}, cfg.Width, cfg.Length)

	// Silkscreen lines above and below the body. The down leg shortens when
	// the exposed pad pushes the line outwards; a negative leg collapses the
	// polygon to a single line.
	silkDown := cfg.Length/2 - dfnSilkscreenOffset -
		geometry.PinY(1, halfN, cfg.Pitch, false) -
		leadWidth/2 -
		dfnSilkscreenWidth/2
	silkTop := cfg.Length / 2
	if makeExposed {
		silkClearance := silkTop - dfnSilkscreenWidth/2 - cfg.ExposedWidth/2
		if roundTo2(silkClearance) < dfnSilkscreenOffset {
			silkTop += dfnSilkscreenOffset - silkClearance
			silkDown += dfnSilkscreenOffset - silkClearance
		}
	}
	for idx, pos := range []float64{-1, 1} {
		poly := sexp.NewPolygon(
			res.UUID(fmt.Sprintf("polygon-silkscreen-%s-%d", key, idx)),
			sexp.LayerTopPlacement, dfnSilkscreenWidth, false, false)
		poly.AddVertex(sexp.Position{X: -cfg.Width / 2, Y: pos * (silkTop - silkDown)}, 0)
		if silkDown > 0 {
			poly.AddVertex(sexp.Position{X: -cfg.Width / 2, Y: pos * silkTop}, 0)
			poly.AddVertex(sexp.Position{X: cfg.Width / 2, Y: pos * silkTop}, 0)
		}
		poly.AddVertex(sexp.Position{X: cfg.Width / 2, Y: pos * (silkTop - silkDown)}, 0)
		fp.AddPolygon(poly)
	}

	// Documentation: lead contact areas at their nominal size.
	for padIdx := 0; padIdx < cfg.PinCount; padIdx++ {
		y := geometry.PinY(padIdx%halfN+1, halfN, cfg.Pitch, false)
		if padIdx >= halfN {
			y = -y
		}
		yMin, yMax := y-leadWidth/2, y+leadWidth/2
		xMax := cfg.Width / 2
		xMin := xMax - cfg.LeadLength
		if padIdx < halfN {
			xMin, xMax = -xMin, -xMax
		}
		lead := sexp.NewPolygon(
			res.UUID(fmt.Sprintf("lead-%d", padIdx+1)),
			sexp.LayerTopDocumentation, 0.0, true, false)
		lead.AddVertex(sexp.Position{X: xMin, Y: yMax}, 0)
		lead.AddVertex(sexp.Position{X: xMax, Y: yMax}, 0)
		lead.AddVertex(sexp.Position{X: xMax, Y: yMin}, 0)
		lead.AddVertex(sexp.Position{X: xMin, Y: yMin}, 0)
		lead.AddVertex(sexp.Position{X: xMin, Y: yMax}, 0)
		fp.AddPolygon(lead)
	}
	if makeExposed {
		xMax, yMax := cfg.ExposedLength/2, cfg.ExposedWidth/2
		exp := sexp.NewPolygon(res.UUID("lead-exposed"), sexp.LayerTopDocumentation, 0.0, true, false)
		exp.AddVertex(sexp.Position{X: -xMax, Y: yMax}, 0)
		exp.AddVertex(sexp.Position{X: xMax, Y: yMax}, 0)
		exp.AddVertex(sexp.Position{X: xMax, Y: -yMax}, 0)
		exp.AddVertex(sexp.Position{X: -xMax, Y: -yMax}, 0)
		exp.AddVertex(sexp.Position{X: -xMax, Y: yMax}, 0)
		fp.AddPolygon(exp)
	}

	// Body outline, chamfered at pin 1 when configured.
	const outlineWidth = 0.2
	dx := cfg.Width/2 - outlineWidth/2
	dy := cfg.Length/2 - outlineWidth/2
	outline := sexp.NewPolygon(res.UUID("body-outline"), sexp.LayerTopDocumentation, outlineWidth, false, false)
	if d := cfg.Pin1Corner; d > 0 {
		outline.AddVertex(sexp.Position{X: -dx + d, Y: dy}, 0)
		outline.AddVertex(sexp.Position{X: dx, Y: dy}, 0)
		outline.AddVertex(sexp.Position{X: dx, Y: -dy}, 0)
		outline.AddVertex(sexp.Position{X: -dx, Y: -dy}, 0)
		outline.AddVertex(sexp.Position{X: -dx, Y: dy - d}, 0)
		outline.AddVertex(sexp.Position{X: -dx + d, Y: dy}, 0)
	} else {
		outline.AddVertex(sexp.Position{X: -dx, Y: dy}, 0)
		outline.AddVertex(sexp.Position{X: dx, Y: dy}, 0)
		outline.AddVertex(sexp.Position{X: dx, Y: -dy}, 0)
		outline.AddVertex(sexp.Position{X: -dx, Y: -dy}, 0)
		outline.AddVertex(sexp.Position{X: -dx, Y: dy}, 0)
	}
	fp.AddPolygon(outline)

	if cfg.DocFn != nil {
		cfg.DocFn(cfg, res, fp)
	}

	// Courtyard around the conductive extents and the body.
	cb := bounds.Grow(dfnCourtyardExcess)
	courtyard := sexp.NewPolygon(res.UUID("polygon-courtyard-"+key), sexp.LayerTopCourtyard, courtyardLineWidth, false, false)
	courtyard.AddVertex(sexp.Position{X: cb.Max.X, Y: cb.Max.Y}, 0)
	courtyard.AddVertex(sexp.Position{X: cb.Max.X, Y: cb.Min.Y}, 0)
	courtyard.AddVertex(sexp.Position{X: cb.Min.X, Y: cb.Min.Y}, 0)
	courtyard.AddVertex(sexp.Position{X: cb.Min.X, Y: cb.Max.Y}, 0)
	fp.AddPolygon(courtyard)

	// Pin 1 dot. Larger packages get a bigger dot, and the dot follows the
	// silkscreen line when that moved away from the body.
	circDia := dfnSilkscreenWidth
	if cfg.Width >= 3.0 && cfg.Length >= 3.0 {
		circDia = 2 * dfnSilkscreenWidth
	}
	var circX, circY float64
	if circDia == dfnSilkscreenWidth {
		circY = cfg.Length/2 + circDia
		circX = -cfg.Width/2 - dfnSilkscreenWidth
	} else {
		circY = cfg.Length/2 + dfnSilkscreenWidth/2
		circX = -cfg.Width/2 - circDia
	}
	if silkDown < 0 {
		circY -= silkDown
	}
	fp.AddCircle(&sexp.Circle{
		UUID:     res.UUID("circle-silkscreen-" + key),
		Layer:    sexp.LayerTopPlacement,
		Fill:     true,
		Diameter: circDia,
		Position: sexp.Position{X: circX, Y: circY},
	})

	labelY := cfg.Length/2 + dfnLabelOffset
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-name-" + key),
		Layer:      sexp.LayerTopNames,
		Height:     dfnTextHeight,
		Width:      0.2,
		Align:      "center bottom",
		Position:   sexp.Position{X: 0, Y: labelY},
		AutoRotate: true,
		Value:      "{{NAME}}",
	})
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-value-" + key),
		Layer:      sexp.LayerTopValues,
		Height:     dfnTextHeight,
		Width:      0.2,
		Align:      "center top",
		Position:   sexp.Position{X: 0, Y: -labelY},
		AutoRotate: true,
		Value:      "{{VALUE}}",
	})
	return fp
}

// dfnModel builds the 3D assembly: body, lead boxes and the exposed pad.
func dfnModel(cfg DfnConfig, leadWidth float64, makeExposed bool) *step.Assembly {
	a := step.NewAssembly(cfg.FullName(makeExposed))
	a.AddBody(step.Body{
		Name:  "body",
		Color: step.ColorICBody,
		Solid: step.Box(cfg.Width, cfg.Length, cfg.HeightNominal).At(0, 0, cfg.HeightNominal/2),
	})
	halfN := cfg.PinCount / 2
	for padIdx := 0; padIdx < cfg.PinCount; padIdx++ {
		y := geometry.PinY(padIdx%halfN+1, halfN, cfg.Pitch, false)
		x := -(cfg.Width/2 - cfg.LeadLength/2)
		if padIdx >= halfN {
			x, y = -x, -y
		}
		a.AddBody(step.Body{
			Name:  fmt.Sprintf("lead-%d", padIdx+1),
			Color: step.ColorLeadSMT,
			Solid: step.Box(cfg.LeadLength, leadWidth, 0.02).At(x, y, 0.01),
		})
	}
	if makeExposed {
		a.AddBody(step.Body{
			Name:  "epad",
			Color: step.ColorLeadSMT,
			Solid: step.Box(cfg.ExposedLength, cfg.ExposedWidth, 0.02).At(0, 0, 0.01),
		})
	}
	return a
}

// dfnExposedSettings returns which exposed pad variants a row generates.
func dfnExposedSettings(cfg DfnConfig) []bool {
	if cfg.ExposedWidth > 0 && cfg.ExposedLength > 0 {
		if cfg.AlsoNoExp {
			return []bool{true, false}
		}
		return []bool{true}
	}
	return []bool{false}
}

// DfnItems returns the batch items of the JEDEC table followed by the third
// party packages.
func DfnItems(cache *uuidcache.Cache, opts Options) []Item {
	var items []Item
	add := func(cfg DfnConfig, jedec bool) {
		for _, makeExposed := range dfnExposedSettings(cfg) {
			cfg, makeExposed := cfg, makeExposed
			items = append(items, Item{
				Name: cfg.FullName(makeExposed),
				Build: func(ctx context.Context) ([]Element, *step.Assembly, error) {
					pkg, err := BuildDfn(ctx, cache, cfg, makeExposed, jedec, opts)
					if err != nil {
						return nil, nil, err
					}
					var model *step.Assembly
					if opts.Models {
						leadWidth, err := cfg.leadWidth()
						if err != nil {
							return nil, nil, err
						}
						model = dfnModel(cfg, leadWidth, makeExposed)
					}
					return []Element{pkg}, model, nil
				},
			})
		}
	}
	for _, cfg := range dfnJEDECConfigs {
		add(cfg, true)
	}
	for _, cfg := range dfnThirdPartyConfigs {
		add(cfg, false)
	}
	return items
}
