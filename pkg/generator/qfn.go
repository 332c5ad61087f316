package generator

import (
	"context"
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceParts/internal/ctxlog"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/ipc"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/step"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

const (
	qfnVersion    = "0.3.1"
	qfnCreated    = "2019-02-07T21:03:03Z"
	qfnTool       = "qfn"
	qfnLineWidth  = 0.25
	qfnTextHeight = 1.0
	qfnTextOffset = 1.0
	// minCornerClearance is the minimum copper distance both between the
	// corner pads of adjacent sides and between any pad and the exposed pad.
	minCornerClearance = 0.2
	// silkscreenGap keeps the silkscreen lines off the pads.
	silkscreenGap = 0.15
)

// QfnConfig is one JEDEC MO-220 package variation. Dimensions follow the
// standard's symbols: body D x E, exposed pad D2 x E2, lead length L, pin
// counts ND/NE per side.
type QfnConfig struct {
	Variation  string
	Height     float64 // A
	Pitch      float64 // e
	BodyX      float64 // D
	BodyY      float64 // E
	EpadX      float64 // D2
	EpadY      float64 // E2
	LeadLength float64 // L
	ND, NE     int
}

// PinCount returns the number of perimeter pins.
func (c QfnConfig) PinCount() int {
	return 2*c.ND + 2*c.NE
}

// IPCName returns the IPC-7351 style package name.
func (c QfnConfig) IPCName() string {
	return fmt.Sprintf("%cQFN%sP%sX%sX%s-%d-%s",
		c.Variation[0],
		ipc.FormatDimension(c.Pitch, 2),
		ipc.FormatDimension(c.BodyX, 2),
		ipc.FormatDimension(c.BodyY, 2),
		ipc.FormatDimension(c.Height, 2),
		c.PinCount(), c.Variation)
}

// Description returns the package description without the generator note.
func (c QfnConfig) Description() (string, error) {
	var fullName string
	switch c.Variation[0] {
	case 'V':
		fullName = "Very Thin Quad Flat No Lead Package (VQFN)"
	case 'W':
		fullName = "Very Very Thin Quad Flat No Lead Package (WQFN)"
	default:
		return "", fmt.Errorf("qfn: invalid variation %q", c.Variation)
	}
	return fmt.Sprintf("%d-pin %s, standardized by JEDEC in MO-220. "+
		"Variation %s\n\nPitch: %s mm\nBody size: %sx%s mm\nMax height: %s mm",
		c.PinCount(), fullName, c.Variation,
		formatValue(c.Pitch), formatValue(c.BodyX), formatValue(c.BodyY), formatValue(c.Height)), nil
}

// normalized shrinks the lead length and the exposed pad until every pad
// keeps the minimum clearance, both diagonally between the corner pads of
// adjacent sides and towards the exposed pad. The JEDEC maximum dimensions
// routinely violate both.
func (c QfnConfig) normalized(bmax float64) (QfnConfig, error) {
	x := c.BodyX/2 - (c.Pitch*float64(c.ND-1)/2 + bmax/2)
	y := c.BodyY/2 - (c.Pitch*float64(c.NE-1)/2 + bmax/2)

	d := math.Hypot(math.Max(x-c.LeadLength, 0), math.Max(y-c.LeadLength, 0))
	if d < minCornerClearance {
		// Each branch backs off slightly past the clearance so float rounding
		// cannot land just below it; the difference disappears when formatting.
		switch {
		case x-y >= minCornerClearance:
			c.LeadLength = x - minCornerClearance - 0.0001
		case y-x >= minCornerClearance:
			c.LeadLength = y - minCornerClearance - 0.0001
		default:
			c.LeadLength = 0.5*(x+y) - math.Sqrt(x*y/2-(x*x+y*y)/4+0.02) - 0.001
		}
		d = math.Hypot(math.Max(x-c.LeadLength, 0), math.Max(y-c.LeadLength, 0))
	}
	if d < minCornerClearance {
		return c, fmt.Errorf("qfn %s: corner pad clearance %.4f below %.2f", c.Variation, d, minCornerClearance)
	}

	if minCornerClearance > c.BodyX/2-(c.LeadLength+c.EpadX/2) ||
		minCornerClearance > c.BodyY/2-(c.LeadLength+c.EpadY/2) {
		dAdj := minCornerClearance - (c.BodyX/2 - (c.LeadLength + c.EpadX/2))
		eAdj := minCornerClearance - (c.BodyY/2 - (c.LeadLength + c.EpadY/2))

		// Shrink along the worse axis first; the lead length shortens by
		// half the adjustment, so the other axis may only need the rest.
		if dAdj > eAdj {
			c.EpadX -= dAdj
			c.LeadLength -= dAdj / 2
			if eAdj > dAdj/2 {
				c.EpadY -= 2 * (eAdj - dAdj/2)
			}
		} else {
			c.EpadY -= eAdj
			c.LeadLength -= eAdj / 2
			if dAdj > eAdj/2 {
				c.EpadX -= 2 * (dAdj - eAdj/2)
			}
		}

		// Truncate onto the 10um grid so later rounding cannot eat back
		// into the clearance.
		c.LeadLength = geometry.TruncateToGrid(c.LeadLength, 0.01)
		c.EpadX = geometry.TruncateToGrid(c.EpadX, 0.01)
		c.EpadY = geometry.TruncateToGrid(c.EpadY, 0.01)

		if c.LeadLength <= 0 || c.EpadX <= 0 || c.EpadY <= 0 {
			return c, fmt.Errorf("qfn %s: body too small for %.2f mm pad to epad clearance", c.Variation, minCornerClearance)
		}
	}
	return c, nil
}

// qfnPad is the placement of one perimeter pad.
type qfnPad struct {
	pos        sexp.Position
	length     float64
	width      float64
	horizontal bool
}

// padCoords places perimeter pad p (1-based, counter-clockwise from the
// middle of the left side) for the given density excess.
func (c QfnConfig) padCoords(p int, bmax float64, excess ipc.Excess) qfnPad {
	var side, half bool
	var sideNumber float64
	switch {
	case p <= c.NE:
		side, half = true, false
		sideNumber = float64(p) - float64(c.NE+1)/2
	case p <= c.NE+c.ND:
		side, half = false, false
		sideNumber = float64(p-c.NE) - float64(c.ND+1)/2
	case p <= 2*c.NE+c.ND:
		side, half = true, true
		sideNumber = float64(p-c.NE-c.ND) - float64(c.NE+1)/2
	default:
		side, half = false, true
		sideNumber = float64(p-2*c.NE-c.ND) - float64(c.ND+1)/2
	}

	// The pad extends toe past the body outline and heel back inside past
	// the maximum lead length; its width is the maximum lead width plus the
	// side excess on both flanks.
	l := c.LeadLength + excess.Toe + excess.Heel
	w := bmax + 2*excess.Side

	var x, y float64
	if side {
		x = c.BodyX/2 + excess.Toe - l/2
		y = sideNumber * c.Pitch
	} else {
		y = c.BodyY/2 + excess.Toe - l/2
		x = -sideNumber * c.Pitch
	}
	if !half {
		x, y = -x, -y
	}
	return qfnPad{pos: sexp.Position{X: x, Y: y}, length: l, width: w, horizontal: side}
}

// pinExtent returns the distance from each center line to the outside edge
// of the outermost pad, used for the silkscreen corners.
func (c QfnConfig) pinExtent(bmax float64, excess ipc.Excess) (x, y float64) {
	x = c.Pitch*float64(c.ND)/2 + bmax/2 + excess.Side
	y = c.Pitch*float64(c.NE)/2 + bmax/2 + excess.Side
	return x, y
}

// BuildQfn builds the package element for one QFN variation.
func BuildQfn(ctx context.Context, cache *uuidcache.Cache, cfg QfnConfig, opts Options) (*sexp.Package, error) {
	bmax, err := ipc.QfnMaxLeadWidth(cfg.Pitch)
	if err != nil {
		return nil, fmt.Errorf("qfn %s: %w", cfg.Variation, err)
	}
	norm, err := cfg.normalized(bmax)
	if err != nil {
		return nil, err
	}
	if norm.LeadLength != cfg.LeadLength || norm.EpadX != cfg.EpadX || norm.EpadY != cfg.EpadY {
		clearance := math.Min(
			norm.BodyX/2-(norm.LeadLength+norm.EpadX/2),
			norm.BodyY/2-(norm.LeadLength+norm.EpadY/2))
		ctxlog.FromContext(ctx).Warn("pad clearance adjusted",
			"package", norm.IPCName(),
			"lead_length", norm.LeadLength,
			"epad_x", norm.EpadX,
			"epad_y", norm.EpadY,
			"clearance", clearance)
	}
	cfg = norm
	desc, err := cfg.Description()
	if err != nil {
		return nil, err
	}

	fullName := cfg.IPCName()
	res := NewResolver(cache, "pkg", fullName)
	n := cfg.PinCount()

	created := qfnCreated
	if opts.Created != "" {
		created = opts.Created
	}
	pkg := sexp.NewPackage(sexp.ElementHeader{
		UUID:        res.UUID("pkg"),
		Name:        fullName,
		Description: desc + generatedWith(qfnTool),
		Keywords:    "",
		Author:      opts.Author,
		Version:     qfnVersion,
		Created:     created,
		Categories:  []string{categoryQFN},
	}, sexp.AssemblySMT)

	padUUIDs := make([]string, n)
	for p := 1; p <= n; p++ {
		padUUIDs[p-1] = res.UUID(fmt.Sprintf("pad-%d", p))
		pkg.AddPad(sexp.PackagePad{UUID: padUUIDs[p-1], Name: fmt.Sprintf("%d", p)})
	}
	epadUUID := res.UUID("epad")
	pkg.AddPad(sexp.PackagePad{UUID: epadUUID, Name: fmt.Sprintf("%d", n+1)})

	modelUUID := ""
	if opts.Models {
		modelUUID = res.UUID("3d-model")
		pkg.Add3DModel(sexp.Package3DModel{UUID: modelUUID, Name: fullName})
	}

	for _, density := range []ipc.Density{ipc.DensityB, ipc.DensityA, ipc.DensityC} {
		fp := qfnFootprint(res, cfg, bmax, density, padUUIDs, epadUUID)
		if modelUUID != "" {
			fp.Add3DModel(modelUUID)
		}
		pkg.AddFootprint(fp)
	}
	return pkg, nil
}

// qfnFootprint builds one density level footprint.
func qfnFootprint(res *Resolver, cfg QfnConfig, bmax float64, density ipc.Density, padUUIDs []string, epadUUID string) *sexp.Footprint {
	key := density.Key()
	excess := ipc.QfnExcess(density)
	fp := sexp.NewFootprint(res.UUID("footprint-"+key), density.Name(), "")

	// Perimeter pads. Horizontal side pads rotate by 90 degrees so the pad
	// length always points away from the body.
	for p := 1; p <= cfg.PinCount(); p++ {
		pad := cfg.padCoords(p, bmax, excess)
		rotation := 0.0
		if pad.horizontal {
			rotation = 90.0
		}
		fp.AddPad(&sexp.FootprintPad{
			UUID:        padUUIDs[p-1],
			Side:        sexp.SideTop,
			Shape:       sexp.ShapeRoundedRect,
			Position:    pad.pos,
			Rotation:    rotation,
			Size:        sexp.Size{Width: pad.width, Height: pad.length},
			StopMask:    sexp.StopMaskAuto,
			SolderPaste: sexp.SolderPasteAuto,
			Function:    sexp.FunctionStandardPad,
			PackagePad:  padUUIDs[p-1],
		})
	}
	fp.AddPad(&sexp.FootprintPad{
		UUID:        epadUUID,
		Side:        sexp.SideTop,
		Shape:       sexp.ShapeRoundedRect,
		Position:    sexp.Position{},
		Size:        sexp.Size{Width: cfg.EpadX, Height: cfg.EpadY},
		StopMask:    sexp.StopMaskAuto,
		SolderPaste: sexp.SolderPasteAuto,
		Function:    sexp.FunctionThermalPad,
		PackagePad:  epadUUID,
	})

	// Silkscreen: one right angle per quadrant, except the pin 1 quadrant
	// at the top left which loses its vertical leg as the pin 1 marker.
	pinExtX, pinExtY := cfg.pinExtent(bmax, excess)
	pinExtX += silkscreenGap
	pinExtY += silkscreenGap
	fullExtX := math.Max(cfg.BodyX/2, pinExtX+qfnLineWidth)
	fullExtY := math.Max(cfg.BodyY/2, pinExtY+qfnLineWidth)
	for quadrant := 1; quadrant <= 4; quadrant++ {
		poly := sexp.NewPolygon(
			res.UUID(fmt.Sprintf("polygon-silkscreen-%d-%s", quadrant, key)),
			sexp.LayerTopPlacement, qfnLineWidth, false, false)

		signX := -1.0
		if quadrant == 1 || quadrant == 4 {
			signX = 1.0
		}
		signY := -1.0
		if quadrant == 1 || quadrant == 2 {
			signY = 1.0
		}

		if quadrant == 2 {
			poly.AddVertex(sexp.Position{X: signX * (fullExtX + qfnLineWidth/2), Y: signY * (fullExtY + qfnLineWidth/2)}, 0)
			poly.AddVertex(sexp.Position{X: signX * (pinExtX + qfnLineWidth/2), Y: signY * (fullExtY + qfnLineWidth/2)}, 0)
		} else {
			poly.AddVertex(sexp.Position{X: signX * (fullExtX + qfnLineWidth/2), Y: signY * (pinExtY + qfnLineWidth/2)}, 0)
			poly.AddVertex(sexp.Position{X: signX * (fullExtX + qfnLineWidth/2), Y: signY * (fullExtY + qfnLineWidth/2)}, 0)
			poly.AddVertex(sexp.Position{X: signX * (pinExtX + qfnLineWidth/2), Y: signY * (fullExtY + qfnLineWidth/2)}, 0)
		}
		fp.AddPolygon(poly)
	}

	// Documentation outline, fully inside the body.
	ox := cfg.BodyX/2 - qfnLineWidth/2
	oy := cfg.BodyY/2 - qfnLineWidth/2
	outline := sexp.NewPolygon(res.UUID("polygon-outline-"+key), sexp.LayerTopDocumentation, qfnLineWidth, false, false)
	outline.AddVertex(sexp.Position{X: ox, Y: oy}, 0)
	outline.AddVertex(sexp.Position{X: ox, Y: -oy}, 0)
	outline.AddVertex(sexp.Position{X: -ox, Y: -oy}, 0)
	outline.AddVertex(sexp.Position{X: -ox, Y: oy}, 0)
	outline.AddVertex(sexp.Position{X: ox, Y: oy}, 0)
	fp.AddPolygon(outline)

	// Courtyard.
	cx := cfg.BodyX/2 + excess.Toe + excess.Courtyard
	cy := cfg.BodyY/2 + excess.Toe + excess.Courtyard
	courtyard := sexp.NewPolygon(res.UUID("polygon-courtyard-"+key), sexp.LayerTopCourtyard, courtyardLineWidth, false, false)
	for _, sign := range [][2]float64{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}, {1, 1}} {
		courtyard.AddVertex(sexp.Position{X: sign[0] * cx, Y: sign[1] * cy}, 0)
	}
	fp.AddPolygon(courtyard)

	// Labels.
	labelY := cfg.BodyY/2 + qfnTextOffset
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-name-" + key),
		Layer:      sexp.LayerTopNames,
		Height:     qfnTextHeight,
		Width:      0.2,
		Align:      "center bottom",
		Position:   sexp.Position{X: 0, Y: labelY},
		AutoRotate: true,
		Value:      "{{NAME}}",
	})
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-value-" + key),
		Layer:      sexp.LayerTopValues,
		Height:     qfnTextHeight,
		Width:      0.2,
		Align:      "center top",
		Position:   sexp.Position{X: 0, Y: -labelY},
		AutoRotate: true,
		Value:      "{{VALUE}}",
	})
	return fp
}

// qfnModel builds the 3D assembly for a QFN package: molded body, exposed
// pad and one lead box per perimeter pin.
func qfnModel(cfg QfnConfig, bmax float64) *step.Assembly {
	a := step.NewAssembly(cfg.IPCName())
	a.AddBody(step.Body{
		Name:  "body",
		Color: step.ColorICBody,
		Solid: step.Box(cfg.BodyX, cfg.BodyY, cfg.Height).At(0, 0, cfg.Height/2),
	})
	a.AddBody(step.Body{
		Name:  "epad",
		Color: step.ColorLeadSMT,
		Solid: step.Box(cfg.EpadX, cfg.EpadY, 0.02).At(0, 0, 0.01),
	})
	excess := ipc.QfnExcess(ipc.DensityB)
	for p := 1; p <= cfg.PinCount(); p++ {
		pad := cfg.padCoords(p, bmax, excess)
		x, y := bmax, cfg.LeadLength
		if pad.horizontal {
			x, y = cfg.LeadLength, bmax
		}
		a.AddBody(step.Body{
			Name:  fmt.Sprintf("lead-%d", p),
			Color: step.ColorLeadSMT,
			Solid: step.Box(x, y, 0.02).At(pad.pos.X, pad.pos.Y, 0.01),
		})
	}
	return a
}

// QfnItems returns the batch items of the JEDEC MO-220 table.
func QfnItems(cache *uuidcache.Cache, opts Options) []Item {
	items := make([]Item, 0, len(qfnJEDECConfigs))
	for _, cfg := range qfnJEDECConfigs {
		cfg := cfg
		items = append(items, Item{
			Name: cfg.IPCName(),
			Build: func(ctx context.Context) ([]Element, *step.Assembly, error) {
				pkg, err := BuildQfn(ctx, cache, cfg, opts)
				if err != nil {
					return nil, nil, err
				}
				var model *step.Assembly
				if opts.Models {
					bmax, _ := ipc.QfnMaxLeadWidth(cfg.Pitch)
					norm, err := cfg.normalized(bmax)
					if err != nil {
						return nil, nil, err
					}
					model = qfnModel(norm, bmax)
				}
				return []Element{pkg}, model, nil
			},
		})
	}
	return items
}
