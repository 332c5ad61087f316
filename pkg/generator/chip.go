package generator

import (
	"context"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/ipc"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/step"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

const (
	chipVersion = "0.3"
	chipTool    = "chip"

	chipLineWidth        = 0.25
	chipLineWidthThin    = 0.15
	chipLineWidthThinner = 0.05
	chipTextHeight       = 1.0
	chipLabelOffset      = 1.1
	chipLabelOffsetThin  = 0.8
	chipSilkClearance    = 0.15

	deviceVersion = "0.3"
	deviceCreated = "2019-01-29T19:47:42Z"
)

// ChipConfig is one two-terminal chip body. Dimensions follow the Samsung
// resistor specs; land protrusions come from the IPC tables.
type ChipConfig struct {
	SizeImperial string
	Length       float64
	Width        float64
	Height       float64
	// Gap is the distance between the two terminals.
	Gap float64
}

// SizeMetric derives the metric size code, e.g. 3.2 x 1.6 mm becomes "3216".
func (c ChipConfig) SizeMetric() string {
	return fmt.Sprintf("%02d%02d", int(c.Length*10), int(c.Width*10))
}

// chipFamily groups configs sharing a name pattern and keywords.
type chipFamily struct {
	prefix   string
	bodyKind string
	keywords string
	created  string
	configs  []ChipConfig
}

var chipFamilies = []chipFamily{
	{
		prefix:   "RESC",
		bodyKind: "chip resistor",
		keywords: "r,resistor,chip,generic",
		created:  "2018-12-19T00:08:03Z",
		configs: []ChipConfig{
			//   imperial, len,   wid,  hght, gap
			{"01005", 0.4, 0.2, 0.15, 0.2},
			{"0201", 0.6, 0.3, 0.26, 0.28},
			{"0402", 1.0, 0.5, 0.35, 0.5},
			{"0603", 1.6, 0.8, 0.55, 0.8},
			{"0805", 2.0, 1.25, 0.70, 1.2},
			{"1206", 3.2, 1.6, 0.70, 1.8},
			{"1210", 3.2, 2.55, 0.70, 1.8},
			{"1218", 3.2, 4.6, 0.70, 1.8},
			{"2010", 5.0, 2.5, 0.70, 3.3},
			{"2512", 6.4, 3.2, 0.70, 4.6},
		},
	},
	{
		prefix:   "RESJ",
		bodyKind: "J-lead resistor",
		keywords: "r,resistor,j-lead,generic",
		created:  "2019-01-04T23:06:17Z",
		configs: []ChipConfig{
			{"4527", 11.56, 6.98, 5.84, 5.2},
		},
	},
}

func (f chipFamily) fullName(cfg ChipConfig) string {
	return fmt.Sprintf("%s%s (%s)", f.prefix, cfg.SizeMetric(), cfg.SizeImperial)
}

func (f chipFamily) description(cfg ChipConfig) string {
	return fmt.Sprintf("Generic %s %s (imperial %s).\n\nLength: %smm\nWidth: %smm",
		f.bodyKind, cfg.SizeMetric(), cfg.SizeImperial,
		formatValue(cfg.Length), formatValue(cfg.Width))
}

// chipLineWidths returns the silkscreen and documentation line widths for a
// body length. Small bodies get thinner lines.
func chipLineWidths(length float64) (silk, doc float64) {
	switch {
	case length >= 2.0:
		return chipLineWidth, chipLineWidth
	case length >= 1.0:
		return chipLineWidthThin, chipLineWidthThin
	default:
		return chipLineWidthThin, chipLineWidthThinner
	}
}

// BuildChipPackage builds the package for one chip body.
func BuildChipPackage(ctx context.Context, cache *uuidcache.Cache, family chipFamily, cfg ChipConfig, opts Options) (*sexp.Package, error) {
	fullName := family.fullName(cfg)
	res := NewResolver(cache, "pkg", fullName)

	created := opts.Created
	if created == "" {
		created = family.created
	}

	pkg := sexp.NewPackage(sexp.ElementHeader{
		UUID:        res.UUID("pkg"),
		Name:        fullName,
		Description: family.description(cfg) + generatedWith(chipTool),
		Keywords:    fmt.Sprintf("%s,%s,%s", cfg.SizeMetric(), cfg.SizeImperial, family.keywords),
		Author:      opts.Author,
		Version:     chipVersion,
		Created:     created,
		Categories:  []string{categoryChip},
	}, sexp.AssemblySMT)

	padUUIDs := []string{res.UUID("pad-1"), res.UUID("pad-2")}
	pkg.AddPad(sexp.PackagePad{UUID: padUUIDs[0], Name: "1"})
	pkg.AddPad(sexp.PackagePad{UUID: padUUIDs[1], Name: "2"})

	modelUUID := ""
	if opts.Models {
		modelUUID = res.UUID("3d-model")
		pkg.Add3DModel(sexp.Package3DModel{UUID: modelUUID, Name: fullName})
	}

	for _, density := range []ipc.Density{ipc.DensityB, ipc.DensityA} {
		fp := chipFootprint(res, cfg, density, padUUIDs)
		if modelUUID != "" {
			fp.Add3DModel(modelUUID)
		}
		pkg.AddFootprint(fp)
	}
	return pkg, nil
}

func chipFootprint(res *Resolver, cfg ChipConfig, density ipc.Density, padUUIDs []string) *sexp.Footprint {
	key := density.Key()
	fp := sexp.NewFootprint(res.UUID("footprint-"+key), density.Name(), "")
	excess := ipc.ChipExcess(cfg.Length, density)
	silkLw, docLw := chipLineWidths(cfg.Length)

	// Terminal dimensions come from the body, protrusions from the table.
	padWidth := cfg.Width + excess.Side
	padLength := (cfg.Length-cfg.Gap)/2 + excess.Toe
	padDx := cfg.Gap/2 + padLength/2
	for p, sign := range []float64{-1, 1} {
		fp.AddPad(&sexp.FootprintPad{
			UUID:        padUUIDs[p],
			Side:        sexp.SideTop,
			Shape:       sexp.ShapeRoundedRect,
			Position:    sexp.Position{X: sign * padDx},
			Size:        sexp.Size{Width: padLength, Height: padWidth},
			StopMask:    sexp.StopMaskAuto,
			SolderPaste: sexp.SolderPasteAuto,
			Function:    sexp.FunctionStandardPad,
			PackagePad:  padUUIDs[p],
		})
	}
	maxX := padLength/2 + padDx
	maxY := cfg.Width / 2

	// Documentation: filled terminal areas and the body edges between them.
	halfGap := cfg.Gap / 2
	dx := cfg.Length / 2
	dy := cfg.Width / 2
	left := sexp.NewPolygon(res.UUID("polygon-outline-left-"+key), sexp.LayerTopDocumentation, 0.0, true, true)
	left.AddVertex(sexp.Position{X: -dx, Y: dy}, 0)
	left.AddVertex(sexp.Position{X: -halfGap, Y: dy}, 0)
	left.AddVertex(sexp.Position{X: -halfGap, Y: -dy}, 0)
	left.AddVertex(sexp.Position{X: -dx, Y: -dy}, 0)
	left.AddVertex(sexp.Position{X: -dx, Y: dy}, 0)
	fp.AddPolygon(left)
	right := sexp.NewPolygon(res.UUID("polygon-outline-right-"+key), sexp.LayerTopDocumentation, 0.0, true, true)
	right.AddVertex(sexp.Position{X: dx, Y: dy}, 0)
	right.AddVertex(sexp.Position{X: halfGap, Y: dy}, 0)
	right.AddVertex(sexp.Position{X: halfGap, Y: -dy}, 0)
	right.AddVertex(sexp.Position{X: dx, Y: -dy}, 0)
	right.AddVertex(sexp.Position{X: dx, Y: dy}, 0)
	fp.AddPolygon(right)
	edgeY := cfg.Width/2 - docLw/2
	for _, l := range []struct {
		uuid string
		sign float64
	}{
		{"polygon-outline-top-" + key, 1},
		{"polygon-outline-bot-" + key, -1},
	} {
		edge := sexp.NewPolygon(res.UUID(l.uuid), sexp.LayerTopDocumentation, docLw, false, true)
		edge.AddVertex(sexp.Position{X: -halfGap, Y: l.sign * edgeY}, 0)
		edge.AddVertex(sexp.Position{X: halfGap, Y: l.sign * edgeY}, 0)
		fp.AddPolygon(edge)
	}

	// Silkscreen lines fit between the pads only on larger bodies.
	if cfg.Length > 1.0 {
		silkDx := cfg.Gap/2 - silkLw/2 - chipSilkClearance
		silkDy := cfg.Width/2 + silkLw/2
		for _, l := range []struct {
			uuid string
			sign float64
		}{
			{"line-silkscreen-top-" + key, 1},
			{"line-silkscreen-bot-" + key, -1},
		} {
			line := sexp.NewPolygon(res.UUID(l.uuid), sexp.LayerTopPlacement, silkLw, false, false)
			line.AddVertex(sexp.Position{X: -silkDx, Y: l.sign * silkDy}, 0)
			line.AddVertex(sexp.Position{X: silkDx, Y: l.sign * silkDy}, 0)
			fp.AddPolygon(line)
		}
		maxY = cfg.Width/2 + silkLw
	}

	cx := maxX + excess.Courtyard
	cy := maxY + excess.Courtyard
	courtyard := sexp.NewPolygon(res.UUID("polygon-courtyard-"+key), sexp.LayerTopCourtyard, courtyardLineWidth, false, false)
	courtyard.AddVertex(sexp.Position{X: cx, Y: cy}, 0)
	courtyard.AddVertex(sexp.Position{X: cx, Y: -cy}, 0)
	courtyard.AddVertex(sexp.Position{X: -cx, Y: -cy}, 0)
	courtyard.AddVertex(sexp.Position{X: -cx, Y: cy}, 0)
	fp.AddPolygon(courtyard)

	labelOffset := chipLabelOffset
	if cfg.Width < 2.0 {
		labelOffset = chipLabelOffsetThin
	}
	labelY := cfg.Width/2 + labelOffset
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-name-" + key),
		Layer:      sexp.LayerTopNames,
		Height:     chipTextHeight,
		Width:      0.2,
		Align:      "center bottom",
		Position:   sexp.Position{X: 0, Y: labelY},
		AutoRotate: true,
		Value:      "{{NAME}}",
	})
	fp.AddText(&sexp.StrokeText{
		UUID:       res.UUID("text-value-" + key),
		Layer:      sexp.LayerTopValues,
		Height:     chipTextHeight,
		Width:      0.2,
		Align:      "center top",
		Position:   sexp.Position{X: 0, Y: -labelY},
		AutoRotate: true,
		Value:      "{{VALUE}}",
	})
	return fp
}

// chipModel builds the 3D assembly: ceramic body between two terminal caps.
func chipModel(family chipFamily, cfg ChipConfig) *step.Assembly {
	a := step.NewAssembly(family.fullName(cfg))
	termLength := (cfg.Length - cfg.Gap) / 2
	a.AddBody(step.Body{
		Name:  "body",
		Color: step.ColorICBody,
		Solid: step.Box(cfg.Gap, cfg.Width, cfg.Height).At(0, 0, cfg.Height/2),
	})
	for i, sign := range []float64{-1, 1} {
		a.AddBody(step.Body{
			Name:  fmt.Sprintf("terminal-%d", i+1),
			Color: step.ColorLeadSMT,
			Solid: step.Box(termLength, cfg.Width, cfg.Height).
				At(sign*(cfg.Gap/2+termLength/2), 0, cfg.Height/2),
		})
	}
	return a
}

// resistor component and symbol shared by all chip resistor devices

const (
	resistorName    = "Resistor"
	resistorCreated = "2019-01-29T19:47:42Z"
)

// BuildResistorSymbol builds the schematic symbol: an IEC 60617 rectangle
// with one pin per side.
func BuildResistorSymbol(cache *uuidcache.Cache, opts Options) *sexp.Symbol {
	res := NewResolver(cache, "sym", resistorName)
	created := opts.Created
	if created == "" {
		created = resistorCreated
	}
	sym := sexp.NewSymbol(sexp.ElementHeader{
		UUID:        res.UUID("sym"),
		Name:        resistorName,
		Description: "A generic resistor." + generatedWith(chipTool),
		Keywords:    "r,resistor,resistance",
		Author:      opts.Author,
		Version:     chipVersion,
		Created:     created,
		Categories:  []string{categoryResistorDevice},
	})
	for _, p := range []struct {
		name     string
		x        float64
		rotation float64
	}{
		{"1", -3.81, 0},
		{"2", 3.81, 180},
	} {
		sym.AddPin(&sexp.Pin{
			UUID:         res.UUID("pin-" + p.name),
			Name:         p.name,
			Position:     sexp.Position{X: p.x},
			Rotation:     p.rotation,
			Length:       2.54,
			NamePosition: sexp.Position{X: 3.175},
			NameHeight:   2.5,
			NameAlign:    "left center",
		})
	}
	body := sexp.NewPolygon(res.UUID("polygon-body"), sexp.LayerSymbolOutlines, 0.2, false, true)
	body.AddVertex(sexp.Position{X: -1.27, Y: 0.508}, 0)
	body.AddVertex(sexp.Position{X: 1.27, Y: 0.508}, 0)
	body.AddVertex(sexp.Position{X: 1.27, Y: -0.508}, 0)
	body.AddVertex(sexp.Position{X: -1.27, Y: -0.508}, 0)
	body.AddVertex(sexp.Position{X: -1.27, Y: 0.508}, 0)
	sym.AddPolygon(body)
	sym.AddText(&sexp.Text{
		UUID:     res.UUID("text-name"),
		Layer:    sexp.LayerSymbolNames,
		Value:    "{{NAME}}",
		Align:    "center bottom",
		Height:   2.54,
		Position: sexp.Position{X: 0, Y: 0.762},
	})
	sym.AddText(&sexp.Text{
		UUID:     res.UUID("text-value"),
		Layer:    sexp.LayerSymbolValues,
		Value:    "{{VALUE}}",
		Align:    "center top",
		Height:   2.54,
		Position: sexp.Position{X: 0, Y: -0.762},
	})
	return sym
}

// BuildResistorComponent builds the component tying the two passive signals
// to the symbol pins.
func BuildResistorComponent(cache *uuidcache.Cache, opts Options) *sexp.Component {
	res := NewResolver(cache, "cmp", resistorName)
	symRes := NewResolver(cache, "sym", resistorName)
	created := opts.Created
	if created == "" {
		created = resistorCreated
	}
	cmp := sexp.NewComponent(sexp.ElementHeader{
		UUID:        res.UUID("cmp"),
		Name:        resistorName,
		Description: "A generic resistor." + generatedWith(chipTool),
		Keywords:    "r,resistor,resistance",
		Author:      opts.Author,
		Version:     chipVersion,
		Created:     created,
		Categories:  []string{categoryResistorDevice},
	}, false, "{{RESISTANCE}}", "R")
	signalUUIDs := []string{res.UUID("signal-1"), res.UUID("signal-2")}
	for i, u := range signalUUIDs {
		cmp.AddSignal(sexp.Signal{UUID: u, Name: fmt.Sprintf("%d", i+1), Role: sexp.RolePassive})
	}
	gate := &sexp.Gate{
		UUID:     res.UUID("gate"),
		Symbol:   symRes.UUID("sym"),
		Required: true,
	}
	for i, u := range signalUUIDs {
		gate.AddPinSignalMap(sexp.PinSignalMap{
			PinUUID:    symRes.UUID(fmt.Sprintf("pin-%d", i+1)),
			SignalUUID: u,
			Designator: sexp.DesignatorSymbolPinName,
		})
	}
	cmp.AddVariant(sexp.NewVariant(res.UUID("variant-default"), sexp.NormIEC60617, "default", "", gate))
	return cmp
}

// BuildResistorDevice builds the device mapping a chip package onto the
// resistor component. The package must have been generated already; an
// unknown package is an error rather than a silently minted UUID.
func BuildResistorDevice(cache *uuidcache.Cache, family chipFamily, cfg ChipConfig, opts Options) (*sexp.Device, error) {
	metric := cfg.SizeMetric()
	fullName := fmt.Sprintf("Resistor %s (%s)", metric, cfg.SizeImperial)
	res := NewResolver(cache, "dev", fullName)
	cmpRes := NewResolver(cache, "cmp", resistorName)

	pkgName := family.fullName(cfg)
	pkgUUID, ok := cache.Lookup(uuidcache.Key("pkg", pkgName, "pkg"))
	if !ok {
		return nil, fmt.Errorf("device %s: package %q not generated", fullName, pkgName)
	}

	created := opts.Created
	if created == "" {
		created = deviceCreated
	}
	dev := sexp.NewDevice(sexp.ElementHeader{
		UUID:        res.UUID("dev"),
		Name:        fullName,
		Description: fmt.Sprintf("Generic SMD resistor %s (imperial %s).", metric, cfg.SizeImperial) + generatedWith(chipTool),
		Keywords:    fmt.Sprintf("%s,%s,r,resistor,resistance,smd,smt", metric, cfg.SizeImperial),
		Author:      opts.Author,
		Version:     deviceVersion,
		Created:     created,
		Categories:  []string{categoryResistorDevice},
	}, cmpRes.UUID("cmp"), pkgUUID)

	for i := 1; i <= 2; i++ {
		padUUID, ok := cache.Lookup(uuidcache.Key("pkg", pkgName, fmt.Sprintf("pad-%d", i)))
		if !ok {
			return nil, fmt.Errorf("device %s: pad %d of %q not generated", fullName, i, pkgName)
		}
		dev.AddPad(sexp.ComponentPad{PadUUID: padUUID, SignalUUID: cmpRes.UUID(fmt.Sprintf("signal-%d", i))})
	}
	return dev, nil
}

// ChipItems returns the chip packages followed by the resistor symbol,
// component and devices. Devices come last so the package pad UUIDs they
// reference exist in the cache.
func ChipItems(cache *uuidcache.Cache, opts Options) []Item {
	var items []Item
	for _, family := range chipFamilies {
		for _, cfg := range family.configs {
			family, cfg := family, cfg
			items = append(items, Item{
				Name: family.fullName(cfg),
				Build: func(ctx context.Context) ([]Element, *step.Assembly, error) {
					pkg, err := BuildChipPackage(ctx, cache, family, cfg, opts)
					if err != nil {
						return nil, nil, err
					}
					var model *step.Assembly
					if opts.Models {
						model = chipModel(family, cfg)
					}
					return []Element{pkg}, model, nil
				},
			})
		}
	}
	items = append(items, Item{
		Name: resistorName,
		Build: func(ctx context.Context) ([]Element, *step.Assembly, error) {
			sym := BuildResistorSymbol(cache, opts)
			cmp := BuildResistorComponent(cache, opts)
			return []Element{sym, cmp}, nil, nil
		},
	})
	for _, family := range chipFamilies {
		for _, cfg := range family.configs {
			family, cfg := family, cfg
			items = append(items, Item{
				Name: fmt.Sprintf("Resistor %s (%s)", cfg.SizeMetric(), cfg.SizeImperial),
				Build: func(ctx context.Context) ([]Element, *step.Assembly, error) {
					dev, err := BuildResistorDevice(cache, family, cfg, opts)
					if err != nil {
						return nil, nil, err
					}
					return []Element{dev}, nil, nil
				},
			})
		}
	}
	return items
}
