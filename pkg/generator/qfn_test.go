package generator

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceParts/internal/ctxlog"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/ipc"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

func newTestCache(t *testing.T) *uuidcache.Cache {
	t.Helper()
	cache, err := uuidcache.New(filepath.Join(t.TempDir(), "uuid_cache.csv"))
	require.NoError(t, err)
	return cache
}

// cornerClearance recomputes the diagonal distance between the corner pads
// of adjacent sides from a normalized config.
func cornerClearance(cfg QfnConfig, bmax float64) float64 {
	x := cfg.BodyX/2 - (cfg.Pitch*float64(cfg.ND-1)/2 + bmax/2)
	y := cfg.BodyY/2 - (cfg.Pitch*float64(cfg.NE-1)/2 + bmax/2)
	return math.Hypot(math.Max(x-cfg.LeadLength, 0), math.Max(y-cfg.LeadLength, 0))
}

func TestQfnClearanceSweep(t *testing.T) {
	// Every JEDEC MO-220 row must normalize to at least the minimum corner
	// and exposed pad clearance.
	for _, cfg := range qfnJEDECConfigs {
		bmax, err := ipc.QfnMaxLeadWidth(cfg.Pitch)
		require.NoError(t, err, cfg.Variation)

		norm, err := cfg.normalized(bmax)
		require.NoError(t, err, cfg.Variation)

		if d := cornerClearance(norm, bmax); d < minCornerClearance-1e-9 {
			t.Errorf("%s: corner clearance %.4f below %.2f", cfg.Variation, d, minCornerClearance)
		}
		epadX := norm.BodyX/2 - (norm.LeadLength + norm.EpadX/2)
		epadY := norm.BodyY/2 - (norm.LeadLength + norm.EpadY/2)
		if epadX < minCornerClearance-1e-9 || epadY < minCornerClearance-1e-9 {
			t.Errorf("%s: exposed pad clearance %.4f/%.4f below %.2f",
				cfg.Variation, epadX, epadY, minCornerClearance)
		}
		if norm.LeadLength <= 0 || norm.EpadX <= 0 || norm.EpadY <= 0 {
			t.Errorf("%s: normalization collapsed dimensions: %+v", cfg.Variation, norm)
		}
	}
}

func TestQfnEpadShrink(t *testing.T) {
	// Exposed pad too large for its body: 2.4 mm pad in a 3.0 mm body with
	// 0.4 mm leads leaves -0.1 mm clearance. Normalization must shrink the
	// pad and lead onto the 10um grid, landing just above the minimum.
	cfg := QfnConfig{
		Variation: "VTEST", Height: 0.9, Pitch: 0.5,
		BodyX: 3.0, BodyY: 3.0, EpadX: 2.4, EpadY: 2.4,
		LeadLength: 0.4, ND: 4, NE: 4,
	}
	bmax, err := ipc.QfnMaxLeadWidth(cfg.Pitch)
	require.NoError(t, err)

	norm, err := cfg.normalized(bmax)
	require.NoError(t, err)

	require.Less(t, norm.EpadX, cfg.EpadX)
	require.Less(t, norm.LeadLength, cfg.LeadLength)

	clearance := norm.BodyX/2 - (norm.LeadLength + norm.EpadX/2)
	require.GreaterOrEqual(t, clearance, minCornerClearance-1e-9)
	require.LessOrEqual(t, clearance, minCornerClearance+0.03)

	// 10um grid
	for _, v := range []float64{norm.LeadLength, norm.EpadX, norm.EpadY} {
		scaled := v * 100
		require.InDelta(t, math.Round(scaled), scaled, 1e-6)
	}
}

func TestQfnClearanceAdjustmentWarns(t *testing.T) {
	cache := newTestCache(t)
	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&buf, nil)))

	// shrinking the exposed pad must leave a Warn trace
	tight := QfnConfig{
		Variation: "VTEST", Height: 0.9, Pitch: 0.5,
		BodyX: 3.0, BodyY: 3.0, EpadX: 2.4, EpadY: 2.4,
		LeadLength: 0.4, ND: 4, NE: 4,
	}
	_, err := BuildQfn(ctx, cache, tight, Options{Author: "Test"})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "pad clearance adjusted")

	// a roomy body builds silently
	buf.Reset()
	roomy := QfnConfig{
		Variation: "VROOM", Height: 0.9, Pitch: 0.5,
		BodyX: 4.0, BodyY: 4.0, EpadX: 2.0, EpadY: 2.0,
		LeadLength: 0.4, ND: 4, NE: 4,
	}
	_, err = BuildQfn(ctx, cache, roomy, Options{Author: "Test"})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "clearance adjusted")
}

func TestQfnNormalizedRejectsImpossibleBody(t *testing.T) {
	// Pads that meet at the corner cannot be fixed by shortening the leads.
	cfg := QfnConfig{
		Variation: "VBAD", Height: 0.9, Pitch: 0.5,
		BodyX: 2.0, BodyY: 2.0, EpadX: 1.9, EpadY: 1.9,
		LeadLength: 0.4, ND: 4, NE: 4,
	}
	bmax, err := ipc.QfnMaxLeadWidth(cfg.Pitch)
	require.NoError(t, err)
	_, err = cfg.normalized(bmax)
	require.Error(t, err)
}

func TestQfnIPCName(t *testing.T) {
	cfg := QfnConfig{Variation: "VEEB", Height: 1.0, Pitch: 0.8,
		BodyX: 3.0, BodyY: 3.0, EpadX: 1.25, EpadY: 1.25, LeadLength: 0.75, ND: 1, NE: 1}
	require.Equal(t, "VQFN80P300X300X100-4-VEEB", cfg.IPCName())
}

func TestQfnDescription(t *testing.T) {
	cfg := QfnConfig{Variation: "WGGD", Height: 0.8, Pitch: 0.5,
		BodyX: 4.0, BodyY: 4.0, EpadX: 2.1, EpadY: 2.1, LeadLength: 0.4, ND: 5, NE: 5}
	desc, err := cfg.Description()
	require.NoError(t, err)
	require.Contains(t, desc, "20-pin Very Very Thin Quad Flat No Lead Package (WQFN)")
	require.Contains(t, desc, "standardized by JEDEC in MO-220. Variation WGGD")
	require.Contains(t, desc, "Pitch: 0.5 mm")
	require.Contains(t, desc, "Body size: 4.0x4.0 mm")
	require.Contains(t, desc, "Max height: 0.8 mm")

	_, err = QfnConfig{Variation: "XBAD"}.Description()
	require.Error(t, err)
}

func TestQfnPadCoords(t *testing.T) {
	// 2x2 pins per side at 0.5 mm pitch: pin 1 sits on the left side below
	// the center line, pin counting runs counter-clockwise.
	cfg := QfnConfig{Variation: "VTEST", Height: 0.9, Pitch: 0.5,
		BodyX: 3.0, BodyY: 3.0, LeadLength: 0.4, ND: 2, NE: 2}
	excess := ipc.QfnExcess(ipc.DensityB)
	bmax := 0.30

	p1 := cfg.padCoords(1, bmax, excess)
	require.True(t, p1.horizontal)
	require.Negative(t, p1.pos.X)
	require.InDelta(t, 0.25, p1.pos.Y, 1e-9)

	// opposite side mirrors
	p5 := cfg.padCoords(5, bmax, excess)
	require.True(t, p5.horizontal)
	require.InDelta(t, -p1.pos.X, p5.pos.X, 1e-9)
	require.InDelta(t, -p1.pos.Y, p5.pos.Y, 1e-9)

	// bottom side pads are vertical
	p3 := cfg.padCoords(3, bmax, excess)
	require.False(t, p3.horizontal)
	require.Negative(t, p3.pos.Y)
}

func TestBuildQfn(t *testing.T) {
	cache := newTestCache(t)
	cfg := qfnJEDECConfigs[0]
	pkg, err := BuildQfn(context.Background(), cache, cfg, Options{Author: "Test"})
	require.NoError(t, err)

	out := pkg.String()
	require.Contains(t, out, `(name "`+cfg.IPCName()+`")`)
	require.Contains(t, out, `(version "0.3.1")`)
	require.Contains(t, out, "(created 2019-02-07T21:03:03Z)")
	require.Contains(t, out, categoryQFN)
	// three density variants
	require.Equal(t, 3, strings.Count(out, "(footprint "))
	// every footprint references all perimeter pins plus the exposed pad
	require.Equal(t, 3*(cfg.PinCount()+1), strings.Count(out, "(package_pad "))
}
