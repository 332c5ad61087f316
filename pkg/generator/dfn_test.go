package generator

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceParts/internal/ctxlog"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/ipc"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
)

func TestDfnFullName(t *testing.T) {
	cfg := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 1.60, "V3030D-1,VEED-1")
	require.Equal(t, "DFN50P300X300X95-8", cfg.FullName(false))
	// square exposed pad collapses to a single dimension
	sq := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.45, 1.60, 1.60, "V3030D-7,VEED-7")
	require.Equal(t, "DFN50P300X300X95-8T160", sq.FullName(true))
	// rectangular exposed pad names both
	require.Equal(t, "DFN50P300X300X95-8T220X160", cfg.FullName(true))
	// pad length disambiguator
	pp := dfn(3.0, 3.0, 0.5, 10, 0.95, 1.00, 0.55, 2.20, 1.60, "x").printPad()
	require.Equal(t, "DFN50P300X300X95-10P55T220X160", pp.FullName(true))
	// explicit name override wins
	named := cfg
	named.Name = "SENSIRION_SHTC3"
	require.Equal(t, "SENSIRION_SHTC3", named.FullName(true))
}

func TestDfnDescription(t *testing.T) {
	cfg := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 1.60, "kw")

	jedec := cfg.description(true, true)
	require.Contains(t, jedec, "8-pin Dual Flat No-Lead package (DFN), standardized by JEDEC MO-229F.")
	require.Contains(t, jedec, "Pitch: 0.50 mm")
	require.Contains(t, jedec, "Exposed Pad: 2.20 x 1.60 mm")

	third := cfg.description(false, false)
	require.NotContains(t, third, "JEDEC")
	require.NotContains(t, third, "Exposed Pad")

	pp := cfg.printPad()
	require.Contains(t, pp.description(false, true), "Pad length: 0.55 mm")
}

func TestDfnExposedSettings(t *testing.T) {
	withBoth := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 1.60, "kw")
	require.Equal(t, []bool{true, false}, dfnExposedSettings(withBoth))
	require.Equal(t, []bool{true}, dfnExposedSettings(withBoth.expOnly()))

	noPad := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 0, 0, "kw")
	require.Equal(t, []bool{false}, dfnExposedSettings(noPad))
}

func TestDfnPadClearanceShrink(t *testing.T) {
	// An oversized exposed pad must shrink the lead pads until 0.2 mm of
	// copper clearance remains. The numbers replicate the footprint math.
	cfg := dfn(2.0, 2.0, 0.5, 6, 0.95, 1.00, 0.40, 1.75, 0.80, "V2020D-4").expOnly()
	toeHeel, err := ipc.DfnToeHeel(cfg.Pitch)
	require.NoError(t, err)

	padLength := cfg.LeadLength + toeHeel
	exposedLength := cfg.ExposedLength
	absPadPosX := cfg.Width/2 - cfg.LeadLength/2 + toeHeel/2

	clearance := cfg.Width/2 - cfg.LeadLength - exposedLength/2
	require.Less(t, clearance, dfnMinClearance)
	d := (dfnMinClearance - clearance) / 2
	padLength -= d
	exposedLength -= 2 * d
	absPadPosX += d / 2

	got := absPadPosX - padLength/2 - exposedLength/2
	require.InDelta(t, dfnMinClearance, got, 0.001)
	require.Greater(t, exposedLength, dfnMinTrace)
}

func TestDfnClearanceShrinkWarns(t *testing.T) {
	cache := newTestCache(t)
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&buf, nil)))

	// the oversized exposed pad from the shrink scenario must warn
	tight := dfn(2.0, 2.0, 0.5, 6, 0.95, 1.00, 0.40, 1.75, 0.80, "V2020D-4").expOnly()
	_, err := BuildDfn(ctx, cache, tight, true, true, Options{Author: "Test"})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "exposed pad clearance adjusted")

	// a roomy package builds silently
	buf.Reset()
	roomy := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 1.00, 1.00, "kw")
	_, err = BuildDfn(ctx, cache, roomy, true, true, Options{Author: "Test"})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "clearance adjusted")
}

func TestDfnFootprintCourtyardContainsPads(t *testing.T) {
	cache := newTestCache(t)
	cfg := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 1.60, "kw")

	pkg, err := BuildDfn(context.Background(), cache, cfg, true, true, Options{Author: "Test"})
	require.NoError(t, err)
	require.Len(t, pkg.Footprints, 2)

	for _, fp := range pkg.Footprints {
		pads := geometry.NewBoundingBox()
		for _, pad := range fp.Pads {
			pads.ExpandRect(pad.Position, pad.Size.Width, pad.Size.Height)
		}
		var courtyard geometry.BoundingBox
		found := false
		for _, poly := range fp.Polygons {
			if poly.Layer != sexp.LayerTopCourtyard {
				continue
			}
			found = true
			courtyard = geometry.NewBoundingBox()
			for _, v := range poly.Vertices {
				courtyard.Expand(v.Position)
			}
		}
		require.True(t, found, "%s: no courtyard", fp.Name)
		require.True(t, courtyard.ContainsBox(pads),
			"%s: courtyard %+v does not contain pads %+v", fp.Name, courtyard, pads)
	}
}

func TestBuildDfnJEDEC(t *testing.T) {
	cache := newTestCache(t)
	cfg := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 1.60, "V3030D-1,VEED-1")

	pkg, err := BuildDfn(context.Background(), cache, cfg, true, true, Options{Author: "Test"})
	require.NoError(t, err)
	out := pkg.String()

	require.Contains(t, out, `(name "DFN50P300X300X95-8T220X160")`)
	require.Contains(t, out, `(keywords "dfn8,dfn,dual flat no-leads,mo-229f,v3030d-1,veed-1")`)
	require.Contains(t, out, `(version "0.1.2")`)
	require.Contains(t, out, "(created 2019-01-17T06:11:43Z)")
	require.Contains(t, out, categoryDFN)
	require.Contains(t, out, `(name "ExposedPad")`)
	// reflow and hand soldering variants
	require.Equal(t, 2, strings.Count(out, "(footprint "))
	require.Contains(t, out, `(name "reflow")`)
	require.Contains(t, out, `(name "hand soldering")`)
}

func TestBuildDfnThirdParty(t *testing.T) {
	cache := newTestCache(t)
	var cfg DfnConfig
	for _, c := range dfnThirdPartyConfigs {
		if c.Name == "SENSIRION_SHTCx" {
			cfg = c
		}
	}
	require.NotZero(t, cfg.PinCount, "SENSIRION_SHTCx config missing")

	pkg, err := BuildDfn(context.Background(), cache, cfg, true, false, Options{Author: "Test"})
	require.NoError(t, err)
	out := pkg.String()
	require.Contains(t, out, `(name "SENSIRION_SHTC3")`)
	require.NotContains(t, out, "JEDEC")
	// the config documentation hook draws the sensor opening
	require.Contains(t, out, "(circle ")
}

func TestBuildDfnRejectsOddPinCount(t *testing.T) {
	cache := newTestCache(t)
	cfg := dfn(3.0, 3.0, 0.5, 7, 0.95, 1.00, 0.55, 0, 0, "kw")
	_, err := BuildDfn(context.Background(), cache, cfg, false, true, Options{})
	require.Error(t, err)
}

func TestDfnItemsCoverTable(t *testing.T) {
	cache := newTestCache(t)
	items := DfnItems(cache, Options{})

	// every JEDEC row yields one item per exposed setting
	want := 0
	for _, cfg := range dfnJEDECConfigs {
		want += len(dfnExposedSettings(cfg))
	}
	for _, cfg := range dfnThirdPartyConfigs {
		want += len(dfnExposedSettings(cfg))
	}
	require.Len(t, items, want)

	names := make(map[string]bool, len(items))
	for _, item := range items {
		require.False(t, names[item.Name], "duplicate item name %s", item.Name)
		names[item.Name] = true
	}
}

func TestDfnLeadWidthLookup(t *testing.T) {
	cfg := dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 0, 0, "kw")
	w, err := cfg.leadWidth()
	require.NoError(t, err)
	require.InDelta(t, 0.30, w, 1e-9)

	cfg.LeadWidth = 0.42
	w, err = cfg.leadWidth()
	require.NoError(t, err)
	require.InDelta(t, 0.42, w, 1e-9)

	cfg.LeadWidth = 0
	cfg.Pitch = 0.33
	_, err = cfg.leadWidth()
	require.ErrorIs(t, err, ipc.ErrUnknownPitch)
}

func TestDfnPadPositions(t *testing.T) {
	// Pins 1..n/2 run down the left side, the rest mirror on the right.
	halfN := 4
	pitch := 0.5
	top := geometry.PinY(1, halfN, pitch, false)
	bottom := geometry.PinY(halfN, halfN, pitch, false)
	require.InDelta(t, 0.75, top, 1e-9)
	require.InDelta(t, -0.75, bottom, 1e-9)
}
