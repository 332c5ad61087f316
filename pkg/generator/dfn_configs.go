package generator

import "github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"

// DfnConfig is one dual flat no-lead package configuration. JEDEC symbols:
// body D (Length) x E (Width), exposed pad E2 (ExposedWidth) x D2
// (ExposedLength), lead length L.
type DfnConfig struct {
	Length        float64
	Width         float64
	Pitch         float64
	PinCount      int
	HeightNominal float64
	HeightMax     float64
	LeadLength    float64
	ExposedWidth  float64 // E2
	ExposedLength float64 // D2
	Keywords      string
	// AlsoNoExp additionally generates the variant without the exposed pad.
	AlsoNoExp bool
	// PrintPad appends the pad length to the name to disambiguate otherwise
	// identical packages.
	PrintPad bool
	// LeadWidth overrides the MO-229 lead width lookup when non-zero.
	LeadWidth float64
	// Name overrides the generated IPC name.
	Name    string
	Created string
	// Pin1Corner chamfers the documentation outline at pin 1 by the given
	// edge length.
	Pin1Corner float64
	// DocFn adds extra documentation graphics to each footprint.
	DocFn func(cfg DfnConfig, res *Resolver, fp *sexp.Footprint)
}

// dfn builds a table row with the column order of MO-229F: body size, pitch,
// pin count, nominal and maximum height, lead length, exposed pad size.
func dfn(length, width, pitch float64, pinCount int, heightNominal, heightMax, leadLength, exposedWidth, exposedLength float64, keywords string) DfnConfig {
	return DfnConfig{
		Length:        length,
		Width:         width,
		Pitch:         pitch,
		PinCount:      pinCount,
		HeightNominal: heightNominal,
		HeightMax:     heightMax,
		LeadLength:    leadLength,
		ExposedWidth:  exposedWidth,
		ExposedLength: exposedLength,
		Keywords:      keywords,
		AlsoNoExp:     true,
	}
}

// expOnly drops the variant without the exposed pad, used where it would
// collide with another table row.
func (c DfnConfig) expOnly() DfnConfig {
	c.AlsoNoExp = false
	return c
}

// printPad marks the row as needing the pad length in its name.
func (c DfnConfig) printPad() DfnConfig {
	c.PrintPad = true
	return c
}

// dfnJEDECConfigs lists the package configurations of JEDEC MO-229F.
var dfnJEDECConfigs = []DfnConfig{
	// Table 6
	// Square, 1.5 x 1.5
	dfn(1.5, 1.5, 0.5, 4, 0.95, 1.00, 0.55, 0.70, 0.10, "V1515D,VBBD"),
	dfn(1.5, 1.5, 0.5, 4, 0.75, 0.80, 0.55, 0.70, 0.10, "W1515D,WBBD"),
	// Square, 2.0 x 2.0
	dfn(2.0, 2.0, 0.65, 6, 0.95, 1.00, 0.30, 1.58, 0.65, "V2020C,VCCC"), // no nominal exp_pad
	dfn(2.0, 2.0, 0.5, 4, 0.95, 1.00, 0.55, 1.20, 0.60, "V2020D-1,VCCD-1"),
	dfn(2.0, 2.0, 0.5, 4, 0.75, 0.80, 0.55, 1.20, 0.60, "W2020D-1,WCCD-1"),
	dfn(2.0, 2.0, 0.5, 6, 0.95, 1.00, 0.40, 1.75, 0.80, "V2020D-4,VCCD-4").expOnly(), // no nominal exp_pad
	dfn(2.0, 2.0, 0.5, 6, 0.75, 0.80, 0.40, 1.75, 0.80, "W2020D-4,WCCD-4").expOnly(), // no nominal exp_pad
	dfn(2.0, 2.0, 0.5, 6, 0.95, 1.00, 0.55, 1.20, 0.60, "V2020D-2,VCCD-2"),
	dfn(2.0, 2.0, 0.5, 6, 0.75, 0.80, 0.55, 1.20, 0.60, "W2020D-2,WCCD-2"),
	dfn(2.0, 2.0, 0.5, 8, 0.95, 1.00, 0.30, 1.20, 0.60, "V2020D-3,VCCD-3"),
	// Square, 2.5 x 2.5
	dfn(2.5, 2.5, 0.8, 6, 0.95, 1.00, 0.55, 1.50, 0.70, "V2525B,VDDB"),
	dfn(2.5, 2.5, 0.8, 6, 0.75, 0.80, 0.55, 1.50, 0.70, "W2525B,WDDB"),
	dfn(2.5, 2.5, 0.5, 6, 0.95, 1.00, 0.55, 1.70, 1.10, "V2525D-1,VDDD-1"),
	dfn(2.5, 2.5, 0.5, 6, 0.75, 0.80, 0.55, 1.70, 1.10, "W2525D-1,WDDD-1"),
	dfn(2.5, 2.5, 0.5, 8, 0.95, 1.00, 0.55, 1.70, 1.10, "V2525D-2,VDDD-2"),
	dfn(2.5, 2.5, 0.5, 8, 0.75, 0.80, 0.55, 1.70, 1.10, "W2525D-2,WDDD-2"),
	// Square, 3.0 x 3.0
	dfn(3.0, 3.0, 0.95, 6, 0.95, 1.00, 0.55, 1.50, 0.70, "V3030A-1,VEEA-1"),
	dfn(3.0, 3.0, 0.95, 6, 0.95, 1.00, 0.55, 1.50, 1.20, "V3030A-2,VEEA-2").expOnly(),
	// no_exp above, as it would be the same as the V3030A-1 without exposed pad
	dfn(3.0, 3.0, 0.95, 6, 0.75, 0.80, 0.55, 1.50, 1.20, "W3030A-2,WEEA-2"),
	dfn(3.0, 3.0, 0.8, 6, 0.95, 1.00, 0.50, 2.20, 1.30, "V3030B,VEEB"),
	dfn(3.0, 3.0, 0.8, 6, 0.75, 0.80, 0.55, 2.20, 1.30, "W3030B,WEEB"),
	dfn(3.0, 3.0, 0.65, 8, 0.95, 1.00, 0.30, 2.25, 1.30, "V3030C-1,VEEC-1"), // no nominal exp_pad
	dfn(3.0, 3.0, 0.65, 8, 0.95, 1.00, 0.40, 2.50, 1.75, "V3030C-2,VEEC-2").expOnly(), // no nominal exp_pad
	dfn(3.0, 3.0, 0.65, 8, 0.75, 0.80, 0.40, 2.50, 1.75, "W3030C-2,WEEC-2").expOnly(), // no nominal exp_pad
	dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 1.60, "V3030D-1,VEED-1"),
	dfn(3.0, 3.0, 0.5, 8, 0.75, 0.80, 0.55, 2.00, 1.20, "W3030D-1,WEED-1"),
	dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.40, 2.70, 1.75, "V3030D-4,VEED-4").expOnly(), // no nominal exp_pad
	dfn(3.0, 3.0, 0.5, 8, 0.75, 0.80, 0.40, 2.70, 1.75, "W3030D-4,WEED-4").expOnly(), // no nominal exp_pad
	dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 2.50, 1.50, "V3030D-6,VEED-6").expOnly(), // no nominal exp_pad
	dfn(3.0, 3.0, 0.5, 8, 0.75, 0.80, 0.55, 2.50, 1.50, "W3030D-6,WEED-6").expOnly(), // no nominal exp_pad
	dfn(3.0, 3.0, 0.5, 8, 0.95, 1.00, 0.45, 1.60, 1.60, "V3030D-7,VEED-7").expOnly(), // no nominal pad length and exp_pad
	dfn(3.0, 3.0, 0.5, 8, 0.75, 0.80, 0.45, 1.60, 1.60, "W3030D-7,WEED-7").expOnly(), // no nominal pad length and exp_pad
	dfn(3.0, 3.0, 0.5, 10, 0.95, 1.00, 0.55, 2.20, 1.60, "V3030D-2,VEED-2").printPad(),
	dfn(3.0, 3.0, 0.5, 10, 0.75, 0.80, 0.55, 2.00, 1.20, "W3030D-2,WEED-2"),
	dfn(3.0, 3.0, 0.5, 10, 0.95, 1.00, 0.30, 2.20, 1.60, "V3030D-3,VEED-3").printPad(),
	dfn(3.0, 3.0, 0.5, 10, 0.95, 1.00, 0.40, 2.70, 1.75, "V3030D-5,VEED-5").expOnly(), // no nominal exp_pad
	dfn(3.0, 3.0, 0.5, 10, 0.75, 0.80, 0.40, 2.70, 1.75, "W3030D-5,WEED-5").expOnly(), // no nominal exp_pad
	// Square, 3.5 x 3.5
	dfn(3.5, 3.5, 0.5, 10, 0.95, 1.00, 0.55, 2.70, 2.10, "V3535D-1,VFFD-1"),
	dfn(3.5, 3.5, 0.5, 10, 0.75, 0.80, 0.55, 2.70, 2.10, "W3535D-1,WFFD-1"),
	dfn(3.5, 3.5, 0.5, 12, 0.95, 1.00, 0.55, 2.70, 2.10, "V3535D-2,VFFD-2"),
	dfn(3.5, 3.5, 0.5, 12, 0.75, 0.80, 0.55, 2.70, 2.10, "W3535D-2,WFFD-2"),
	// Square, 4.0 x 4.0
	dfn(4.0, 4.0, 0.8, 8, 0.95, 1.00, 0.55, 3.00, 2.20, "V4040B,VGGB"),
	dfn(4.0, 4.0, 0.8, 8, 0.75, 0.80, 0.55, 3.00, 2.20, "W4040B,WGGB"),
	dfn(4.0, 4.0, 0.65, 10, 0.95, 1.00, 0.40, 3.50, 2.80, "V4040C,VGGC").expOnly(), // no nominal exp_pad
	dfn(4.0, 4.0, 0.65, 10, 0.75, 0.80, 0.40, 3.50, 2.80, "W4040C,WGGC").expOnly(), // no nominal exp_pad
	dfn(4.0, 4.0, 0.5, 10, 0.95, 1.00, 0.55, 3.20, 2.60, "V4040D-1,VGGD-1"),
	dfn(4.0, 4.0, 0.5, 10, 0.75, 0.80, 0.55, 3.00, 2.20, "W4040D-1,WGGD-1"),
	dfn(4.0, 4.0, 0.5, 12, 0.95, 1.00, 0.55, 3.20, 2.60, "V4040D-2,VGGD-2"),
	dfn(4.0, 4.0, 0.5, 12, 0.75, 0.80, 0.55, 3.00, 2.20, "W4040D-2,WGGD-2"),
	dfn(4.0, 4.0, 0.5, 14, 0.95, 1.00, 0.55, 3.20, 2.60, "V4040D-3,VGGD-3"),
	dfn(4.0, 4.0, 0.5, 14, 0.75, 0.80, 0.55, 3.00, 2.20, "W4040D-3,WGGD-3"),
	// Square, 5.0 x 5.0
	dfn(5.0, 5.0, 0.8, 8, 0.95, 1.00, 0.55, 4.00, 3.20, "V5050B,VJJB"),
	dfn(5.0, 5.0, 0.8, 8, 0.75, 0.80, 0.55, 4.00, 3.20, "W5050B,WJJB"),
	dfn(5.0, 5.0, 0.5, 16, 0.95, 1.00, 0.55, 4.20, 3.60, "V5050D-1,VJJD-1"),
	dfn(5.0, 5.0, 0.5, 16, 0.75, 0.80, 0.55, 4.00, 3.20, "W5050D-1,WJJD-1"),
	dfn(5.0, 5.0, 0.5, 18, 0.95, 1.00, 0.55, 4.20, 3.60, "V5050D-2,VJJD-2"),
	dfn(5.0, 5.0, 0.5, 18, 0.75, 0.80, 0.55, 4.00, 3.20, "W5050D-2,WJJD-2"),
	// Table 6
	// Rectangular, Type 1, 2.0 x 2.5
	dfn(2.0, 2.5, 0.8, 4, 0.95, 1.00, 0.55, 1.00, 0.70, "V2025B,VCDB"),
	dfn(2.0, 2.5, 0.8, 4, 0.75, 0.80, 0.55, 1.00, 0.70, "W2025B,WCDB"),
	dfn(2.0, 2.5, 0.5, 6, 0.95, 1.00, 0.55, 1.00, 0.70, "V2025D-1,VCDD-1"),
	dfn(2.0, 2.5, 0.5, 6, 0.75, 0.80, 0.55, 1.00, 0.70, "W2025D-1,WCDD-1"),
	dfn(2.0, 2.5, 0.5, 8, 0.95, 1.00, 0.55, 1.10, 0.80, "V2025D-2,VCDD-2"), // no nominal exp_pad
	dfn(2.0, 2.5, 0.5, 8, 0.75, 0.80, 0.55, 1.10, 0.80, "W2025D-2,WCDD-2"), // no nominal exp_pad
	// Rectangular, Type 1, 2.0 x 3.0
	dfn(2.0, 3.0, 0.5, 6, 0.95, 1.00, 0.40, 1.00, 1.20, "V2030D-1,VCED-1").expOnly(), // no nominal exp_pad
	dfn(2.0, 3.0, 0.5, 6, 0.75, 0.80, 0.40, 1.00, 1.20, "W2030D-1,WCED-1").expOnly(), // no nominal exp_pad
	dfn(2.0, 3.0, 0.5, 8, 0.95, 1.00, 0.40, 1.75, 1.90, "V2030D-2,VCED-2").expOnly(), // no nominal exp_pad
	dfn(2.0, 3.0, 0.5, 8, 0.75, 0.80, 0.40, 1.75, 1.90, "W2030D-2,WCED-2").expOnly(), // no nominal exp_pad
	dfn(2.0, 3.0, 0.5, 8, 0.95, 1.00, 0.45, 1.60, 1.60, "V2030D-3,VCED-3").expOnly(), // no nominal pad length and exp_pad
	dfn(2.0, 3.0, 0.5, 8, 0.75, 0.80, 0.45, 1.60, 1.60, "W2030D-3,WCED-3").expOnly(), // no nominal pad length and exp_pad
	dfn(2.0, 3.0, 0.5, 8, 0.55, 0.65, 0.45, 1.60, 1.60, "U2030D").expOnly(), // no nominal pad length and exp_pad
	// Rectangular, Type 1, 2.5 x 3.0
	dfn(2.5, 3.0, 0.8, 6, 0.95, 1.00, 0.55, 1.50, 1.20, "V2530B,VDEB"),
	dfn(2.5, 3.0, 0.8, 6, 0.75, 0.80, 0.55, 1.50, 1.20, "W2530B,WDEB"),
	dfn(2.5, 3.0, 0.5, 8, 0.95, 1.00, 0.55, 1.50, 1.20, "V2530D,VDED"),
	dfn(2.5, 3.0, 0.5, 8, 0.75, 0.80, 0.55, 1.50, 1.20, "W2530D,WDED"),
	// Rectangular, Type 1, 3.0 x 4.0
	dfn(3.0, 4.0, 0.8, 6, 0.95, 1.00, 0.55, 2.00, 2.20, "V3040B,VEGB"),
	dfn(3.0, 4.0, 0.8, 6, 0.75, 0.80, 0.55, 2.00, 2.20, "W3040B,WEGB"),
	dfn(3.0, 4.0, 0.5, 10, 0.95, 1.00, 0.55, 2.00, 2.20, "V3040D,VEGD"),
	dfn(3.0, 4.0, 0.5, 10, 0.75, 0.80, 0.55, 2.00, 2.20, "W3040D,WEGD"),
	// Rectangular, Type 1, 4.0 x 5.0
	dfn(4.0, 5.0, 0.8, 10, 0.95, 1.00, 0.55, 3.00, 3.20, "V4050B,VGJB"),
	dfn(4.0, 5.0, 0.8, 10, 0.75, 0.80, 0.55, 3.00, 3.20, "W4050B,WGJB"),
	dfn(4.0, 5.0, 0.5, 14, 0.95, 1.00, 0.55, 3.00, 3.20, "V4050D,VGJD"),
	dfn(4.0, 5.0, 0.5, 14, 0.75, 0.80, 0.55, 3.00, 3.20, "W4050D,WGJD"),
	// Table 7
	// Rectangular, Type 2, 1.5 x 1.0
	dfn(1.5, 1.0, 0.5, 4, 0.95, 1.00, 0.30, 0.00, 0.00, "V1510D,VBAD"),
	dfn(1.5, 1.0, 0.5, 4, 0.75, 0.80, 0.30, 0.00, 0.00, "W1510D,VBAD"),
	// Rectangular, Type 2, 2.0 x 1.0
	dfn(2.0, 1.0, 0.5, 4, 0.95, 1.00, 0.30, 0.00, 0.00, "V2010D-1,VCAD-1"),
	dfn(2.0, 1.0, 0.5, 4, 0.75, 0.80, 0.30, 0.00, 0.00, "W2010D-1,WCAD-1"),
	dfn(2.0, 1.0, 0.5, 6, 0.95, 1.00, 0.30, 0.00, 0.00, "V2010D-2,VCAD-2"),
	dfn(2.0, 1.0, 0.5, 6, 0.75, 0.80, 0.30, 0.00, 0.00, "W2010D-2,WCAD-2"),
	// Rectangular, Type 2, 2.0 x 1.5
	dfn(2.0, 1.5, 0.5, 4, 0.95, 1.00, 0.55, 1.20, 0.10, "V2015D-1,VCBD-1"),
	dfn(2.0, 1.5, 0.5, 4, 0.75, 0.80, 0.55, 1.20, 0.10, "W2015D-1,WCBD-1"),
	dfn(2.0, 1.5, 0.5, 6, 0.95, 1.00, 0.55, 1.20, 0.10, "V2015D-2,VCBD-2"),
	dfn(2.0, 1.5, 0.5, 6, 0.75, 0.80, 0.55, 1.20, 0.10, "W2015D-2,WCBD-2"),
	// Rectangular, Type 2, 2.5 x 1.5
	dfn(2.5, 1.5, 0.5, 6, 0.95, 1.00, 0.55, 1.70, 0.10, "V2515D-1,VDBD-1"),
	dfn(2.5, 1.5, 0.5, 6, 0.75, 0.80, 0.55, 1.70, 0.10, "W2515D-1,WDBD-1"),
	dfn(2.5, 1.5, 0.5, 8, 0.95, 1.00, 0.55, 1.70, 0.10, "V2515D-2,VDBD-2"),
	dfn(2.5, 1.5, 0.5, 8, 0.75, 0.80, 0.55, 1.70, 0.10, "W2515D-2,WDBD-2"),
	// Rectangular, Type 2, 2.5 x 2.0
	dfn(2.5, 2.0, 0.5, 4, 0.95, 1.00, 0.55, 1.70, 0.60, "V2520D-1,VDCD-1"),
	dfn(2.5, 2.0, 0.5, 4, 0.75, 0.80, 0.55, 1.70, 0.60, "W2520D-1,WDCD-1"),
	dfn(2.5, 2.0, 0.5, 6, 0.95, 1.00, 0.55, 1.70, 0.60, "V2520D-2,VDCD-2"),
	dfn(2.5, 2.0, 0.5, 6, 0.75, 0.80, 0.55, 1.70, 0.60, "W2520D-2,WDCD-2"),
	dfn(2.5, 2.0, 0.5, 8, 0.95, 1.00, 0.55, 1.70, 0.60, "V2520D-3,VDCD-3"),
	dfn(2.5, 2.0, 0.5, 8, 0.75, 0.80, 0.55, 1.70, 0.60, "W2520D-3,WDCD-3"),
	// Rectangular, Type 2, 3.0 x 1.5
	dfn(3.0, 1.5, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 0.10, "V3015D-1,VEBD-1"),
	dfn(3.0, 1.5, 0.5, 8, 0.75, 0.80, 0.55, 2.20, 0.10, "W3015D-1,WEBD-1"),
	dfn(3.0, 1.5, 0.5, 10, 0.95, 1.00, 0.55, 2.20, 0.10, "W3015D-2,VEBD-2"),
	dfn(3.0, 1.5, 0.5, 10, 0.75, 0.80, 0.55, 2.20, 0.10, "W3015D-2,WEBD-2"),
	// Rectangular, Type 2, 3.0 x 2.0
	dfn(3.0, 2.0, 0.95, 6, 0.95, 1.00, 0.30, 2.20, 0.60, "V3020A,VECA"), // no nominal exp_pad, using manual values
	dfn(3.0, 2.0, 0.65, 8, 0.95, 1.00, 0.30, 2.20, 0.60, "V3020C,VECC"), // no nominal exp_pad, using manual values
	dfn(3.0, 2.0, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 0.60, "V3020D-1,V3020D-4,VECD-1,VECD-4"),
	dfn(3.0, 2.0, 0.5, 8, 0.75, 0.80, 0.55, 2.20, 0.60, "W3020D-1,W3020D-4,WECD-1,WECD-4"),
	// Commented out as they coincide with the V3020D-1, only the tolerances are different,
	// so we may need to re-add them again later.
	// dfn(3.0, 2.0, 0.5, 8, 0.95, 1.00, 0.40, 2.20, 0.60, "V3020D-4,VECD-4").expOnly(), // no nominal exp_pad
	// dfn(3.0, 2.0, 0.5, 8, 0.75, 0.80, 0.40, 2.20, 0.60, "W3020D-4,WECD-4").expOnly(), // no nominal exp_pad
	dfn(3.0, 2.0, 0.5, 10, 0.95, 1.00, 0.55, 2.20, 0.60, "V3020D-2,VECD-2").printPad(),
	dfn(3.0, 2.0, 0.5, 10, 0.75, 0.80, 0.55, 2.20, 0.60, "W3020D-2,WECD-2"),
	dfn(3.0, 2.0, 0.5, 10, 0.95, 1.00, 0.30, 2.20, 0.60, "V3020D-3,VECD-3").printPad(),
	// Rectangular, Type 2, 3.0 x 2.5
	dfn(3.0, 2.5, 0.5, 8, 0.95, 1.00, 0.55, 2.20, 1.10, "V3025D-1,VEDD-1"),
	dfn(3.0, 2.5, 0.5, 8, 0.75, 0.80, 0.55, 2.20, 1.10, "V3025D-1,WEDD-1"),
	dfn(3.0, 2.5, 0.5, 10, 0.95, 1.00, 0.50, 2.20, 1.10, "V3025D-2,VEDD-2"),
	dfn(3.0, 2.5, 0.5, 10, 0.75, 0.80, 0.50, 2.20, 1.10, "V3025D-2,WEDD-2"),
	// Rectangular, Type 2, 3.5 x 2.5
	dfn(3.5, 2.5, 0.5, 10, 0.95, 1.00, 0.55, 2.70, 1.10, "V3525D-1,VFDD-1"),
	dfn(3.5, 2.5, 0.5, 10, 0.75, 0.80, 0.55, 2.70, 1.10, "W3525D-1,WFDD-1"),
	dfn(3.5, 2.5, 0.5, 12, 0.95, 1.00, 0.55, 2.70, 1.10, "V3525D-2,VFDD-2"),
	dfn(3.5, 2.5, 0.5, 12, 0.75, 0.80, 0.55, 2.70, 1.10, "W3525D-2,WFDD-2"),
	// Rectangular, Type 2, 3.5 x 3.0
	dfn(3.5, 3.0, 0.5, 10, 0.95, 1.00, 0.55, 2.70, 1.60, "V3530D-1,VFED-1"),
	dfn(3.5, 3.0, 0.5, 10, 0.75, 0.80, 0.55, 2.70, 1.60, "W3530D-1,WFED-1"),
	dfn(3.5, 3.0, 0.5, 12, 0.95, 1.00, 0.55, 2.70, 1.60, "V3530D-2,VFED-2"),
	dfn(3.5, 3.0, 0.5, 12, 0.75, 0.80, 0.55, 2.70, 1.60, "W3530D-2,WFED-2"),
	// Rectangular, Type 2, 4.0 x 3.0
	dfn(4.0, 3.0, 0.5, 10, 0.95, 1.00, 0.55, 3.20, 1.60, "V4030D-1,VGED-1"),
	dfn(4.0, 3.0, 0.5, 10, 0.75, 0.80, 0.55, 3.20, 1.60, "W4030D-1,WGED-1"),
	dfn(4.0, 3.0, 0.5, 12, 0.95, 1.00, 0.55, 3.20, 1.60, "V4030D-2,VGED-2"),
	dfn(4.0, 3.0, 0.5, 12, 0.75, 0.80, 0.55, 3.20, 1.60, "W4030D-2,WGED-2"),
	dfn(4.0, 3.0, 0.5, 12, 0.95, 1.00, 0.40, 3.70, 1.80, "V4030D-4,VGED-4").expOnly(), // no nominal exp_pad
	dfn(4.0, 3.0, 0.5, 12, 0.75, 0.80, 0.40, 3.70, 1.80, "W4030D-4,WGED-4").expOnly(), // no nominal exp_pad
	dfn(4.0, 3.0, 0.5, 14, 0.95, 1.00, 0.55, 3.20, 1.60, "V4030D-3,VGED-3"),
	dfn(4.0, 3.0, 0.5, 14, 0.75, 0.80, 0.55, 3.20, 1.60, "W4030D-3,WGED-3"),
	// Rectangular, Type 2, 5.0 x 3.0
	dfn(5.0, 3.0, 0.5, 16, 0.95, 1.00, 0.55, 4.20, 1.60, "V5030D-1,VJED-1"),
	dfn(5.0, 3.0, 0.5, 16, 0.75, 0.80, 0.55, 4.20, 1.60, "W5030D-1,WJED-1"),
	dfn(5.0, 3.0, 0.5, 18, 0.95, 1.00, 0.55, 4.20, 1.60, "V5030D-2,VJED-2"),
	dfn(5.0, 3.0, 0.5, 18, 0.75, 0.80, 0.55, 4.20, 1.60, "W5030D-2,WJED-2"),
	// Rectangular, Type 2, 5.0 x 4.0
	dfn(5.0, 4.0, 0.5, 14, 0.95, 1.00, 0.55, 4.20, 2.60, "V5040D-1,VJGD-1"),
	dfn(5.0, 4.0, 0.5, 14, 0.75, 0.80, 0.55, 4.20, 2.60, "W5040D-1,WJGD-1"),
	dfn(5.0, 4.0, 0.5, 16, 0.95, 1.00, 0.55, 4.20, 2.60, "V5040D-2,VJGD-2"),
	dfn(5.0, 4.0, 0.5, 16, 0.75, 0.80, 0.55, 4.20, 2.60, "W5040D-2,WJGD-2"),
	dfn(5.0, 4.0, 0.5, 18, 0.95, 1.00, 0.55, 4.20, 2.60, "V5040D-3,VJGD-3"),
	dfn(5.0, 4.0, 0.5, 18, 0.75, 0.80, 0.55, 4.20, 2.60, "W5040D-3,WJGD-3"),
	// Rectangular, Type 2, 6.0 x 5.0
	dfn(6.0, 5.0, 0.5, 16, 0.95, 1.00, 0.55, 4.70, 3.40, "V6050D-1,VLJD-1").expOnly(), // no nominal exp_pad
	dfn(6.0, 5.0, 0.5, 16, 0.75, 0.80, 0.55, 4.70, 3.40, "W6050D-1,WLJD-1").expOnly(), // no nominal exp_pad
	dfn(6.0, 5.0, 0.5, 18, 0.95, 1.00, 0.55, 4.70, 3.40, "V6050D-2,VLJD-2").expOnly(), // no nominal exp_pad
	dfn(6.0, 5.0, 0.5, 18, 0.75, 0.80, 0.55, 4.70, 3.40, "W6050D-2,WLJD-2").expOnly(), // no nominal exp_pad
}

// drawCircle returns a documentation hook adding a centered circle, used for
// the sensing opening of humidity and gas sensors.
func drawCircle(diameter float64) func(DfnConfig, *Resolver, *sexp.Footprint) {
	return func(_ DfnConfig, res *Resolver, fp *sexp.Footprint) {
		fp.AddCircle(&sexp.Circle{
			UUID:     res.UUID("hole-circle-doc"),
			Layer:    sexp.LayerTopDocumentation,
			Width:    0.1,
			Diameter: diameter,
		})
	}
}

// dfnThirdPartyConfigs lists manufacturer specific DFN packages that deviate
// from the JEDEC tables.
var dfnThirdPartyConfigs = []DfnConfig{
	// Sensirion
	{
		Length:        2.0,
		Width:         2.0,
		Pitch:         1.0,
		PinCount:      4,
		HeightNominal: 0.75,
		HeightMax:     0.80,
		LeadLength:    0.35,
		LeadWidth:     0.35,
		ExposedWidth:  1.60,
		ExposedLength: 0.70,
		Keywords:      "sensirion,sht,shtcx,shtc1,shtc3",
		Name:          "SENSIRION_SHTCx",
		Created:       "2019-01-24T21:50:44Z",
		Pin1Corner:    0.2,
		DocFn:         drawCircle(0.9),
	},
	{
		Length:        3.0,
		Width:         3.0,
		Pitch:         1.0,
		PinCount:      6,
		HeightNominal: 1.1,
		HeightMax:     1.20,
		LeadLength:    0.4,
		LeadWidth:     0.4,
		ExposedWidth:  2.4,
		ExposedLength: 1.5,
		Keywords:      "sensirion,sht,sht2x,sht20,sht21,sht25",
		Name:          "SENSIRION_SHT2x",
		Created:       "2019-01-24T22:13:46Z",
		Pin1Corner:    0.2,
	},
	{
		Length:        2.45,
		Width:         2.45,
		Pitch:         0.8,
		PinCount:      6,
		HeightNominal: 0.9,
		HeightMax:     0.9,
		LeadLength:    0.35,
		LeadWidth:     0.4,
		ExposedWidth:  1.7,
		ExposedLength: 1.25,
		Keywords:      "sensirion,sgp,sgp30,sgpc3",
		Name:          "SENSIRION_SGPxx",
		Pin1Corner:    0.3,
		DocFn:         drawCircle(1.1),
	},
	// Microchip
	{
		Length:        2.0,
		Width:         3.0,
		Pitch:         0.5,
		PinCount:      8,
		HeightNominal: 0.90,
		HeightMax:     1.00,
		LeadLength:    0.40,
		ExposedWidth:  1.45,
		ExposedLength: 1.75,
		Keywords:      "microchip mc",
	},
}
