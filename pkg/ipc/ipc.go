// Package ipc holds the IPC-7351 derived land pattern tables used by the
// footprint generators: density level excesses, lead dimension lookups by
// pitch, and the dimension formatting used in IPC package names.
package ipc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrUnknownPitch is returned when a lead table has no row for the
// requested pitch. Callers treat this as a configuration error of the
// offending part, not as a fatal condition.
var ErrUnknownPitch = errors.New("ipc: no table entry for pitch")

// Density is an IPC-7351 land pattern density level.
type Density uint8

const (
	// DensityA maximizes land protrusion for maximum solder fillets.
	DensityA Density = iota
	// DensityB is the median protrusion used for standard designs.
	DensityB
	// DensityC minimizes protrusion for high density designs.
	DensityC
)

// ParseDensity maps the single letter form to a density level.
func ParseDensity(s string) (Density, error) {
	switch s {
	case "A", "a":
		return DensityA, nil
	case "B", "b":
		return DensityB, nil
	case "C", "c":
		return DensityC, nil
	}
	return DensityB, fmt.Errorf("ipc: unknown density level %q", s)
}

// String returns the single letter level name.
func (d Density) String() string {
	switch d {
	case DensityA:
		return "A"
	case DensityC:
		return "C"
	default:
		return "B"
	}
}

// Name returns the human readable footprint name for the density level.
func (d Density) Name() string {
	switch d {
	case DensityA:
		return "Density Level A (max protrusion)"
	case DensityC:
		return "Density Level C (min protrusion)"
	default:
		return "Density Level B (median protrusion)"
	}
}

// Key returns the identifier fragment used in UUID cache keys.
func (d Density) Key() string {
	switch d {
	case DensityA:
		return "density~a"
	case DensityC:
		return "density~c"
	default:
		return "density~b"
	}
}

// Excess is the set of land protrusions a density level adds to the
// nominal lead dimensions, plus the courtyard excess around the body.
type Excess struct {
	Toe       float64
	Heel      float64
	Side      float64
	Courtyard float64
}

// QfnExcess returns the land protrusions for no-lead quad packages
// (IPC-7351 table for QFN/DFN leads). The side excess is negative: the pad
// is narrower than the maximum lead to keep adjacent pads clear at fine
// pitches.
func QfnExcess(d Density) Excess {
	switch d {
	case DensityA:
		return Excess{Toe: 0.40, Heel: 0.00, Side: -0.04, Courtyard: 0.5}
	case DensityC:
		return Excess{Toe: 0.20, Heel: 0.00, Side: -0.04, Courtyard: 0.1}
	default:
		return Excess{Toe: 0.30, Heel: 0.00, Side: -0.04, Courtyard: 0.25}
	}
}

// ChipExcess returns the land protrusions for two-terminal chip components
// (IPC-7351B tables 3-5 and 3-6). Bodies shorter than 1.6 mm use the small
// outline table. The heel is zero for both tables.
func ChipExcess(length float64, d Density) Excess {
	if length >= 1.6 {
		switch d {
		case DensityA:
			return Excess{Toe: 0.55, Side: 0.05, Courtyard: 0.50}
		case DensityC:
			return Excess{Toe: 0.15, Side: -0.05, Courtyard: 0.12}
		default:
			return Excess{Toe: 0.35, Side: 0.00, Courtyard: 0.25}
		}
	}
	switch d {
	case DensityA:
		return Excess{Toe: 0.20, Side: 0.05, Courtyard: 0.20}
	case DensityC:
		return Excess{Toe: 0.00, Side: 0.00, Courtyard: 0.10}
	default:
		return Excess{Toe: 0.10, Side: 0.00, Courtyard: 0.15}
	}
}

// pitchKey converts a pitch in millimeters to a table key in hundredths,
// sidestepping float equality.
func pitchKey(pitch float64) int {
	return int(math.Round(pitch * 100))
}

// qfnMaxLeadWidth is the JEDEC MO-220 maximum lead width per pitch.
var qfnMaxLeadWidth = map[int]float64{
	100: 0.45,
	80:  0.35,
	65:  0.35,
	50:  0.30,
	40:  0.25,
}

// QfnMaxLeadWidth returns the maximum lead width b(max) for a QFN pitch.
func QfnMaxLeadWidth(pitch float64) (float64, error) {
	w, ok := qfnMaxLeadWidth[pitchKey(pitch)]
	if !ok {
		return 0, fmt.Errorf("%w %s", ErrUnknownPitch, strconv.FormatFloat(pitch, 'f', -1, 64))
	}
	return w, nil
}

// dfnToeHeel is the combined toe and heel excess for no-lead dual packages
// per pitch (IPC-7351C).
var dfnToeHeel = map[int]float64{
	100: 0.35,
	95:  0.35,
	80:  0.33,
	65:  0.31,
	50:  0.29,
	40:  0.27,
	35:  0.25,
}

// DfnToeHeel returns the toe plus heel land excess for a DFN pitch.
func DfnToeHeel(pitch float64) (float64, error) {
	v, ok := dfnToeHeel[pitchKey(pitch)]
	if !ok {
		return 0, fmt.Errorf("%w %s", ErrUnknownPitch, strconv.FormatFloat(pitch, 'f', -1, 64))
	}
	return v, nil
}

// dfnLeadWidth is the JEDEC MO-229 nominal lead width per pitch.
var dfnLeadWidth = map[int]float64{
	95: 0.45,
	80: 0.35,
	65: 0.35,
	50: 0.30,
	40: 0.25,
}

// DfnLeadWidth returns the nominal lead width for a DFN pitch.
func DfnLeadWidth(pitch float64) (float64, error) {
	w, ok := dfnLeadWidth[pitchKey(pitch)]
	if !ok {
		return 0, fmt.Errorf("%w %s", ErrUnknownPitch, strconv.FormatFloat(pitch, 'f', -1, 64))
	}
	return w, nil
}

// FormatDimension renders a dimension in millimeters the way IPC package
// names encode it: scaled by 10^decimals, rounded, and truncated to an
// integer. 0.5 mm pitch with two decimals becomes "50".
func FormatDimension(mm float64, decimals int) string {
	scaled := mm * math.Pow(10, float64(decimals))
	return strconv.Itoa(int(math.Round(scaled*10) / 10))
}
