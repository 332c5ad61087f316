package sexp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testHeader(uuid, name string) ElementHeader {
	return ElementHeader{
		UUID:        uuid,
		Name:        name,
		Description: "A multiline description.\n\nDescription",
		Keywords:    "my, keywords",
		Author:      "Test",
		Version:     "0.2",
		Created:     "2018-10-17T19:13:41Z",
		GeneratedBy: "black magic",
		Categories:  []string{"d0618c29-0436-42da-a388-fdadf7b23892"},
	}
}

func TestPosition(t *testing.T) {
	require.Equal(t, "(position 1.0 2.0)", Position{X: 1.0, Y: 2.0}.String())
}

func TestVertex(t *testing.T) {
	v := Vertex{Position: Position{X: -2.54, Y: 22.86}}
	require.Equal(t, "(vertex (position -2.54 22.86) (angle 0.0))", v.String())
}

func TestPolygon(t *testing.T) {
	polygon := NewPolygon("743dbf3d-98e8-46f0-9a32-00e00d0e811f", LayerSymbolOutlines, 0.25, false, true)
	polygon.AddVertex(Position{X: -2.54, Y: 22.86}, 0.0)
	polygon.AddVertex(Position{X: 2.54, Y: 22.86}, 0.0)
	polygon.AddVertex(Position{X: 2.54, Y: -25.4}, 0.0)
	polygon.AddVertex(Position{X: -2.54, Y: -25.4}, 0.0)
	polygon.AddVertex(Position{X: -2.54, Y: 22.86}, 0.0)

	want := "(polygon 743dbf3d-98e8-46f0-9a32-00e00d0e811f (layer sym_outlines)\n" +
		" (width 0.25) (fill false) (grab_area true)\n" +
		" (vertex (position -2.54 22.86) (angle 0.0))\n" +
		" (vertex (position 2.54 22.86) (angle 0.0))\n" +
		" (vertex (position 2.54 -25.4) (angle 0.0))\n" +
		" (vertex (position -2.54 -25.4) (angle 0.0))\n" +
		" (vertex (position -2.54 22.86) (angle 0.0))\n" +
		")"
	require.Equal(t, want, polygon.String())
}

func TestCircle(t *testing.T) {
	c := &Circle{
		UUID:     "b5599e68-ff6a-464b-9a40-c6ba8ef8daf5",
		Layer:    LayerSymbolOutlines,
		Width:    0.254,
		Diameter: 1.27,
		Position: Position{X: 5.715, Y: 0.0},
	}
	want := "(circle b5599e68-ff6a-464b-9a40-c6ba8ef8daf5 (layer sym_outlines)\n" +
		" (width 0.254) (fill false) (grab_area false) (diameter 1.27) (position 5.715 0.0)\n" +
		")"
	require.Equal(t, want, c.String())
}

func TestText(t *testing.T) {
	text := &Text{
		UUID:     "b9c4aa19-0a46-400c-9c96-e8c3dfb8f83e",
		Layer:    LayerSymbolNames,
		Value:    "{{NAME}}",
		Align:    "center bottom",
		Height:   2.54,
		Position: Position{X: 0.0, Y: 22.86},
	}
	want := "(text b9c4aa19-0a46-400c-9c96-e8c3dfb8f83e (layer sym_names) (value \"{{NAME}}\")\n" +
		" (align center bottom) (height 2.54) (position 0.0 22.86) (rotation 0.0)\n" +
		")"
	require.Equal(t, want, text.String())
}

func TestSymbolPin(t *testing.T) {
	pin := &Pin{
		UUID:         "my_uuid",
		Name:         "foo",
		Position:     Position{X: 1.0, Y: 2.0},
		Rotation:     180.0,
		Length:       3.81,
		NamePosition: Position{X: 3.0, Y: 4.0},
		NameRotation: 270.0,
		NameHeight:   2.5,
		NameAlign:    "left center",
	}
	want := "(pin my_uuid (name \"foo\")\n" +
		" (position 1.0 2.0) (rotation 180.0) (length 3.81)\n" +
		" (name_position 3.0 4.0) (name_rotation 270.0) (name_height 2.5)\n" +
		" (name_align left center)\n" +
		")"
	require.Equal(t, want, pin.String())
}

func TestSymbol(t *testing.T) {
	symbol := NewSymbol(testHeader("01b03c10-7334-4bd5-b2bc-942c18325d2b", "Sym name"))
	symbol.AddPin(&Pin{
		UUID:         "6da06b2b-7806-4e68-bd0c-e9f18eb2f9d8",
		Name:         "1",
		Position:     Position{X: 5.08, Y: 20.32},
		Rotation:     180.0,
		Length:       3.81,
		NamePosition: Position{X: 1.0, Y: 2.0},
		NameRotation: 270.0,
		NameHeight:   2.5,
		NameAlign:    "left center",
	})
	polygon := NewPolygon("743dbf3d-98e8-46f0-9a32-00e00d0e811f", LayerSymbolOutlines, 0.25, false, true)
	polygon.AddVertex(Position{X: -2.54, Y: 22.86}, 0.0)
	polygon.AddVertex(Position{X: -2.54, Y: -25.4}, 0.0)
	polygon.AddVertex(Position{X: -2.54, Y: 22.86}, 0.0)
	symbol.AddPolygon(polygon)
	symbol.AddCircle(&Circle{
		UUID:     "b5599e68-ff6a-464b-9a40-c6ba8ef8daf5",
		Layer:    LayerSymbolOutlines,
		Width:    0.254,
		Diameter: 1.27,
		Position: Position{X: 5.715, Y: 0.0},
	})
	symbol.AddText(&Text{
		UUID:     "b9c4aa19-0a46-400c-9c96-e8c3dfb8f83e",
		Layer:    LayerSymbolNames,
		Value:    "{{NAME}}",
		Align:    "center bottom",
		Height:   2.54,
		Position: Position{X: 0.0, Y: 22.86},
	})
	symbol.AddApproval("(approval foo)")
	symbol.AddApproval("(approval bar)")

	want := `(librepcb_symbol 01b03c10-7334-4bd5-b2bc-942c18325d2b
 (name "Sym name")
 (description "A multiline description.\n\nDescription")
 (keywords "my, keywords")
 (author "Test")
 (version "0.2")
 (created 2018-10-17T19:13:41Z)
 (deprecated false)
 (generated_by "black magic")
 (category d0618c29-0436-42da-a388-fdadf7b23892)
 (pin 6da06b2b-7806-4e68-bd0c-e9f18eb2f9d8 (name "1")
  (position 5.08 20.32) (rotation 180.0) (length 3.81)
  (name_position 1.0 2.0) (name_rotation 270.0) (name_height 2.5)
  (name_align left center)
 )
 (polygon 743dbf3d-98e8-46f0-9a32-00e00d0e811f (layer sym_outlines)
  (width 0.25) (fill false) (grab_area true)
  (vertex (position -2.54 22.86) (angle 0.0))
  (vertex (position -2.54 -25.4) (angle 0.0))
  (vertex (position -2.54 22.86) (angle 0.0))
 )
 (circle b5599e68-ff6a-464b-9a40-c6ba8ef8daf5 (layer sym_outlines)
  (width 0.254) (fill false) (grab_area false) (diameter 1.27) (position 5.715 0.0)
 )
 (text b9c4aa19-0a46-400c-9c96-e8c3dfb8f83e (layer sym_names) (value "{{NAME}}")
  (align center bottom) (height 2.54) (position 0.0 22.86) (rotation 0.0)
 )
 (approval bar)
 (approval foo)
)`
	if diff := cmp.Diff(want, symbol.String()); diff != "" {
		t.Errorf("symbol mismatch (-want +got):\n%s", diff)
	}
}

func TestSignal(t *testing.T) {
	signal := Signal{
		UUID: "f46a4643-fc68-4593-a889-3d987bfe3544",
		Name: "1",
		Role: RolePassive,
	}
	want := "(signal f46a4643-fc68-4593-a889-3d987bfe3544 (name \"1\") (role passive)\n" +
		" (required false) (negated false) (clock false) (forced_net \"\")\n" +
		")"
	require.Equal(t, want, signal.String())
}

func TestPinSignalMap(t *testing.T) {
	m := PinSignalMap{
		PinUUID:    "0189aafc-f88a-4e65-8fb4-09a047a3e334",
		SignalUUID: "46f7e0e2-74a6-442b-9a5c-1bd4ea3da59c",
		Designator: DesignatorSymbolPinName,
	}
	require.Equal(t,
		"(pin 0189aafc-f88a-4e65-8fb4-09a047a3e334 (signal 46f7e0e2-74a6-442b-9a5c-1bd4ea3da59c) (text pin))",
		m.String())
}

func testGate() *Gate {
	gate := &Gate{
		UUID:     "c1e4b542-a1b1-44d5-bec3-070776143a29",
		Symbol:   "8f1a97f2-4cdf-43da-b38d-b3787c47b5ad",
		Required: true,
	}
	gate.AddPinSignalMap(PinSignalMap{
		PinUUID:    "0189aafc-f88a-4e65-8fb4-09a047a3e334",
		SignalUUID: "46f7e0e2-74a6-442b-9a5c-1bd4ea3da59c",
		Designator: DesignatorSymbolPinName,
	})
	return gate
}

func TestGate(t *testing.T) {
	want := `(gate c1e4b542-a1b1-44d5-bec3-070776143a29
 (symbol 8f1a97f2-4cdf-43da-b38d-b3787c47b5ad)
 (position 0.0 0.0) (rotation 0.0) (required true) (suffix "")
 (pin 0189aafc-f88a-4e65-8fb4-09a047a3e334 (signal 46f7e0e2-74a6-442b-9a5c-1bd4ea3da59c) (text pin))
)`
	require.Equal(t, want, testGate().String())
}

func TestVariant(t *testing.T) {
	variant := NewVariant("abeeeed0-6e9a-4fdc-bc2b-e2c5b06bbe3a", NormEmpty, "default", "", testGate())
	want := `(variant abeeeed0-6e9a-4fdc-bc2b-e2c5b06bbe3a (norm "")
 (name "default")
 (description "")
 (gate c1e4b542-a1b1-44d5-bec3-070776143a29
  (symbol 8f1a97f2-4cdf-43da-b38d-b3787c47b5ad)
  (position 0.0 0.0) (rotation 0.0) (required true) (suffix "")
  (pin 0189aafc-f88a-4e65-8fb4-09a047a3e334 (signal 46f7e0e2-74a6-442b-9a5c-1bd4ea3da59c) (text pin))
 )
)`
	require.Equal(t, want, variant.String())
}

func TestComponent(t *testing.T) {
	component := NewComponent(ElementHeader{
		UUID:        "00c36da8-e22b-43a1-9a87-c3a67e863f49",
		Name:        "Generic Connector 1x27",
		Description: "A 1x27 soldered wire connector.\n\nNext line",
		Keywords:    "connector, 1x27",
		Author:      "Test R.",
		Version:     "0.2",
		Created:     "2018-10-17T19:13:41Z",
		GeneratedBy: "black magic",
		Categories:  []string{"d0618c29-0436-42da-a388-fdadf7b23892"},
	}, false, "", "J")
	component.AddSignal(Signal{
		UUID: "f46a4643-fc68-4593-a889-3d987bfe3544",
		Name: "1",
		Role: RolePassive,
	})
	component.AddVariant(NewVariant("abeeeed0-6e9a-4fdc-bc2b-e2c5b06bbe3a", NormEmpty, "default", "", testGate()))
	component.AddApproval("(approval foo)")
	component.AddApproval("(approval bar)")

	want := `(librepcb_component 00c36da8-e22b-43a1-9a87-c3a67e863f49
 (name "Generic Connector 1x27")
 (description "A 1x27 soldered wire connector.\n\nNext line")
 (keywords "connector, 1x27")
 (author "Test R.")
 (version "0.2")
 (created 2018-10-17T19:13:41Z)
 (deprecated false)
 (generated_by "black magic")
 (category d0618c29-0436-42da-a388-fdadf7b23892)
 (schematic_only false)
 (default_value "")
 (prefix "J")
 (signal f46a4643-fc68-4593-a889-3d987bfe3544 (name "1") (role passive)
  (required false) (negated false) (clock false) (forced_net "")
 )
 (variant abeeeed0-6e9a-4fdc-bc2b-e2c5b06bbe3a (norm "")
  (name "default")
  (description "")
  (gate c1e4b542-a1b1-44d5-bec3-070776143a29
   (symbol 8f1a97f2-4cdf-43da-b38d-b3787c47b5ad)
   (position 0.0 0.0) (rotation 0.0) (required true) (suffix "")
   (pin 0189aafc-f88a-4e65-8fb4-09a047a3e334 (signal 46f7e0e2-74a6-442b-9a5c-1bd4ea3da59c) (text pin))
  )
 )
 (approval bar)
 (approval foo)
)`
	if diff := cmp.Diff(want, component.String()); diff != "" {
		t.Errorf("component mismatch (-want +got):\n%s", diff)
	}
}

func TestPackagePad(t *testing.T) {
	pad := PackagePad{UUID: "5c4d39d3-35cc-4836-a082-693143ee9135", Name: "1"}
	require.Equal(t, "(pad 5c4d39d3-35cc-4836-a082-693143ee9135 (name \"1\"))", pad.String())
}

func testFootprintPad(uuid string, y float64) *FootprintPad {
	return &FootprintPad{
		UUID:        uuid,
		Side:        SideTop,
		Shape:       ShapeRoundedRect,
		Position:    Position{X: 0.0, Y: y},
		Size:        Size{Width: 2.54, Height: 1.5875},
		Radius:      0.5,
		StopMask:    StopMaskAuto,
		SolderPaste: SolderPasteOff,
		Clearance:   0.1,
		Function:    FunctionUnspecified,
		PackagePad:  uuid,
		Holes: []PadHole{{
			UUID:     uuid,
			Diameter: 1.0,
			Vertices: []Vertex{{Position: Position{X: 0.0, Y: 0.0}}},
		}},
	}
}

func TestFootprintPad(t *testing.T) {
	want := `(pad 5c4d39d3-35cc-4836-a082-693143ee9135 (side top) (shape roundrect)
 (position 0.0 22.86) (rotation 0.0) (size 2.54 1.587) (radius 0.5)
 (stop_mask auto) (solder_paste off) (clearance 0.1) (function unspecified)
 (package_pad 5c4d39d3-35cc-4836-a082-693143ee9135)
 (hole 5c4d39d3-35cc-4836-a082-693143ee9135 (diameter 1.0)
  (vertex (position 0.0 0.0) (angle 0.0))
 )
)`
	pad := testFootprintPad("5c4d39d3-35cc-4836-a082-693143ee9135", 22.86)
	require.Equal(t, want, pad.String())
}

func TestStrokeText(t *testing.T) {
	text := &StrokeText{
		UUID:       "f16d1604-8a82-4688-bc58-be1c1375873f",
		Layer:      LayerTopNames,
		Height:     1.0,
		Width:      0.2,
		Align:      "center bottom",
		Position:   Position{X: 0.0, Y: 25.63},
		AutoRotate: true,
		Value:      "{{NAME}}",
	}
	want := `(stroke_text f16d1604-8a82-4688-bc58-be1c1375873f (layer top_names)
 (height 1.0) (stroke_width 0.2) (letter_spacing auto) (line_spacing auto)
 (align center bottom) (position 0.0 25.63) (rotation 0.0)
 (auto_rotate true) (mirror false) (value "{{NAME}}")
)`
	require.Equal(t, want, text.String())
}

func testFootprint() *Footprint {
	footprint := NewFootprint("17b9f232-2b15-4281-a07d-ad0db5213f92", "default", "")
	footprint.Position3D = Position3D{X: 1.0, Y: 2.0, Z: 3.0}
	footprint.Rotation3D = Rotation3D{X: 10.0, Y: 20.0, Z: 30.0}
	footprint.Add3DModel("ea459880-68df-4929-b796-b5c8686a1862")
	footprint.AddPad(testFootprintPad("5c4d39d3-35cc-4836-a082-693143ee9135", 22.86))
	footprint.AddPad(testFootprintPad("6100dd55-d3b3-4139-9085-d5a75e783c37", 20.32))
	polygon := NewPolygon("5e18e4ea-5667-42b3-b60f-fcc91b0461d3", LayerTopPlacement, 0.25, false, true)
	polygon.AddVertex(Position{X: -1.27, Y: 24.36}, 0.0)
	polygon.AddVertex(Position{X: 1.27, Y: 24.36}, 0.0)
	polygon.AddVertex(Position{X: 1.27, Y: -24.36}, 0.0)
	polygon.AddVertex(Position{X: -1.27, Y: -24.36}, 0.0)
	polygon.AddVertex(Position{X: -1.27, Y: 24.36}, 0.0)
	footprint.AddPolygon(polygon)
	footprint.AddText(&StrokeText{
		UUID:       "f16d1604-8a82-4688-bc58-be1c1375873f",
		Layer:      LayerTopNames,
		Height:     1.0,
		Width:      0.2,
		Align:      "center bottom",
		Position:   Position{X: 0.0, Y: 25.63},
		AutoRotate: true,
		Value:      "{{NAME}}",
	})
	return footprint
}

func TestFootprint(t *testing.T) {
	want := `(footprint 17b9f232-2b15-4281-a07d-ad0db5213f92
 (name "default")
 (description "")
 (3d_position 1.0 2.0 3.0) (3d_rotation 10.0 20.0 30.0)
 (3d_model ea459880-68df-4929-b796-b5c8686a1862)
 (pad 5c4d39d3-35cc-4836-a082-693143ee9135 (side top) (shape roundrect)
  (position 0.0 22.86) (rotation 0.0) (size 2.54 1.587) (radius 0.5)
  (stop_mask auto) (solder_paste off) (clearance 0.1) (function unspecified)
  (package_pad 5c4d39d3-35cc-4836-a082-693143ee9135)
  (hole 5c4d39d3-35cc-4836-a082-693143ee9135 (diameter 1.0)
   (vertex (position 0.0 0.0) (angle 0.0))
  )
 )
 (pad 6100dd55-d3b3-4139-9085-d5a75e783c37 (side top) (shape roundrect)
  (position 0.0 20.32) (rotation 0.0) (size 2.54 1.587) (radius 0.5)
  (stop_mask auto) (solder_paste off) (clearance 0.1) (function unspecified)
  (package_pad 6100dd55-d3b3-4139-9085-d5a75e783c37)
  (hole 6100dd55-d3b3-4139-9085-d5a75e783c37 (diameter 1.0)
   (vertex (position 0.0 0.0) (angle 0.0))
  )
 )
 (polygon 5e18e4ea-5667-42b3-b60f-fcc91b0461d3 (layer top_placement)
  (width 0.25) (fill false) (grab_area true)
  (vertex (position -1.27 24.36) (angle 0.0))
  (vertex (position 1.27 24.36) (angle 0.0))
  (vertex (position 1.27 -24.36) (angle 0.0))
  (vertex (position -1.27 -24.36) (angle 0.0))
  (vertex (position -1.27 24.36) (angle 0.0))
 )
 (stroke_text f16d1604-8a82-4688-bc58-be1c1375873f (layer top_names)
  (height 1.0) (stroke_width 0.2) (letter_spacing auto) (line_spacing auto)
  (align center bottom) (position 0.0 25.63) (rotation 0.0)
  (auto_rotate true) (mirror false) (value "{{NAME}}")
 )
)`
	if diff := cmp.Diff(want, testFootprint().String()); diff != "" {
		t.Errorf("footprint mismatch (-want +got):\n%s", diff)
	}
}

func TestPackage(t *testing.T) {
	pkg := NewPackage(ElementHeader{
		UUID:        "009e35ef-1f50-4bf3-ab58-11eb85bf5503",
		Name:        "Soldered Wire Connector 1x19 ⌀1.0mm",
		Description: "A 1x19 soldered wire connector with 2.54mm pin spacing and 1.0mm drill holes.\n\nGenerated with librepcb-parts-generator (generate_connectors.py)",
		Keywords:    "connector, 1x19, d1.0, connector, soldering, generic",
		Author:      "Danilo B.",
		Version:     "0.1",
		Created:     "2018-10-17T19:13:41Z",
		GeneratedBy: "black magic",
		Categories:  []string{"56a5773f-eeb4-4b39-8cb9-274f3da26f4f"},
	}, AssemblyTHT)
	pkg.AddPad(PackagePad{UUID: "5c4d39d3-35cc-4836-a082-693143ee9135", Name: "1"})
	pkg.AddPad(PackagePad{UUID: "6100dd55-d3b3-4139-9085-d5a75e783c37", Name: "2"})
	pkg.Add3DModel(Package3DModel{UUID: "ea459880-68df-4929-b796-b5c8686a1862", Name: "3dmodel"})
	pkg.AddFootprint(testFootprint())
	pkg.AddApproval("(approval foo)")
	pkg.AddApproval("(approval bar)")

	got := pkg.String()
	require.True(t, strings.HasPrefix(got, "(librepcb_package 009e35ef-1f50-4bf3-ab58-11eb85bf5503\n"))

	want := `(librepcb_package 009e35ef-1f50-4bf3-ab58-11eb85bf5503
 (name "Soldered Wire Connector 1x19 ⌀1.0mm")
 (description "A 1x19 soldered wire connector with 2.54mm pin spacing and 1.0mm drill holes.\n\nGenerated with librepcb-parts-generator (generate_connectors.py)")
 (keywords "connector, 1x19, d1.0, connector, soldering, generic")
 (author "Danilo B.")
 (version "0.1")
 (created 2018-10-17T19:13:41Z)
 (deprecated false)
 (generated_by "black magic")
 (category 56a5773f-eeb4-4b39-8cb9-274f3da26f4f)
 (assembly_type tht)
 (pad 5c4d39d3-35cc-4836-a082-693143ee9135 (name "1"))
 (pad 6100dd55-d3b3-4139-9085-d5a75e783c37 (name "2"))
 (3d_model ea459880-68df-4929-b796-b5c8686a1862 (name "3dmodel"))
 (footprint 17b9f232-2b15-4281-a07d-ad0db5213f92
  (name "default")
  (description "")
  (3d_position 1.0 2.0 3.0) (3d_rotation 10.0 20.0 30.0)
  (3d_model ea459880-68df-4929-b796-b5c8686a1862)
  (pad 5c4d39d3-35cc-4836-a082-693143ee9135 (side top) (shape roundrect)
   (position 0.0 22.86) (rotation 0.0) (size 2.54 1.587) (radius 0.5)
   (stop_mask auto) (solder_paste off) (clearance 0.1) (function unspecified)
   (package_pad 5c4d39d3-35cc-4836-a082-693143ee9135)
   (hole 5c4d39d3-35cc-4836-a082-693143ee9135 (diameter 1.0)
    (vertex (position 0.0 0.0) (angle 0.0))
   )
  )
  (pad 6100dd55-d3b3-4139-9085-d5a75e783c37 (side top) (shape roundrect)
   (position 0.0 20.32) (rotation 0.0) (size 2.54 1.587) (radius 0.5)
   (stop_mask auto) (solder_paste off) (clearance 0.1) (function unspecified)
   (package_pad 6100dd55-d3b3-4139-9085-d5a75e783c37)
   (hole 6100dd55-d3b3-4139-9085-d5a75e783c37 (diameter 1.0)
    (vertex (position 0.0 0.0) (angle 0.0))
   )
  )
  (polygon 5e18e4ea-5667-42b3-b60f-fcc91b0461d3 (layer top_placement)
   (width 0.25) (fill false) (grab_area true)
   (vertex (position -1.27 24.36) (angle 0.0))
   (vertex (position 1.27 24.36) (angle 0.0))
   (vertex (position 1.27 -24.36) (angle 0.0))
   (vertex (position -1.27 -24.36) (angle 0.0))
   (vertex (position -1.27 24.36) (angle 0.0))
  )
  (stroke_text f16d1604-8a82-4688-bc58-be1c1375873f (layer top_names)
   (height 1.0) (stroke_width 0.2) (letter_spacing auto) (line_spacing auto)
   (align center bottom) (position 0.0 25.63) (rotation 0.0)
   (auto_rotate true) (mirror false) (value "{{NAME}}")
  )
 )
 (approval bar)
 (approval foo)
)`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("package mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentPad(t *testing.T) {
	pad := ComponentPad{PadUUID: "67a7b034-b30b-4644-b8d3-d7a99606efdc", SignalUUID: "9bccea5e-e23f-4b88-9de1-4be00dc0c12a"}
	require.Equal(t,
		"(pad 67a7b034-b30b-4644-b8d3-d7a99606efdc (signal 9bccea5e-e23f-4b88-9de1-4be00dc0c12a))",
		pad.String())
}

func TestDevice(t *testing.T) {
	device := NewDevice(ElementHeader{
		UUID:        "00652f30-9f89-4027-91f5-7bd684eee751",
		Name:        "Foo",
		Description: "Bar",
		Keywords:    "foo, bar",
		Author:      "J. Rando",
		Version:     "0.1",
		Created:     "2018-10-17T19:13:41Z",
		GeneratedBy: "black magic",
		Categories:  []string{"ade6d8ff-3c4f-4dac-a939-cc540c87c280"},
	}, "bc911fcc-8b5c-4728-b596-d644797c55da", "b4e92c64-18c4-44a6-aa39-d1be3e8c29bd")
	device.AddPad(ComponentPad{PadUUID: "aec3f475-28c4-4508-ab4f-e1b618a0d77d", SignalUUID: "726fd1ce-a01b-4287-bb61-e3ff165a0644"})
	device.AddPad(ComponentPad{PadUUID: "67a7b034-b30b-4644-b8d3-d7a99606efdc", SignalUUID: "9bccea5e-e23f-4b88-9de1-4be00dc0c12a"})
	device.AddPart(&Part{MPN: "mpn1", Manufacturer: "man1"})
	device.AddPart(&Part{MPN: "mpn2", Manufacturer: "man2"})
	device.AddApproval("(approval foo)")
	device.AddApproval("(approval bar)")

	want := `(librepcb_device 00652f30-9f89-4027-91f5-7bd684eee751
 (name "Foo")
 (description "Bar")
 (keywords "foo, bar")
 (author "J. Rando")
 (version "0.1")
 (created 2018-10-17T19:13:41Z)
 (deprecated false)
 (generated_by "black magic")
 (category ade6d8ff-3c4f-4dac-a939-cc540c87c280)
 (component bc911fcc-8b5c-4728-b596-d644797c55da)
 (package b4e92c64-18c4-44a6-aa39-d1be3e8c29bd)
 (pad 67a7b034-b30b-4644-b8d3-d7a99606efdc (signal 9bccea5e-e23f-4b88-9de1-4be00dc0c12a))
 (pad aec3f475-28c4-4508-ab4f-e1b618a0d77d (signal 726fd1ce-a01b-4287-bb61-e3ff165a0644))
 (part "mpn1" (manufacturer "man1")
 )
 (part "mpn2" (manufacturer "man2")
 )
 (approval bar)
 (approval foo)
)`
	if diff := cmp.Diff(want, device.String()); diff != "" {
		t.Errorf("device mismatch (-want +got):\n%s", diff)
	}
}

func TestAttribute(t *testing.T) {
	a := Attribute{Name: "VOLTAGE", Value: "5", Type: TypeVoltage, Prefix: PrefixNone}
	require.Equal(t, `(attribute "VOLTAGE" (type voltage) (unit volt) (value "5"))`, a.String())

	def := Attribute{Name: "NOTE", Value: "x"}
	require.Equal(t, `(attribute "NOTE" (type string) (unit none) (value "x"))`, def.String())
}

func TestSortPackage3DModels(t *testing.T) {
	pkg := NewPackage(testHeader("009e35ef-1f50-4bf3-ab58-11eb85bf5503", "p"), AssemblySMT)
	pkg.Add3DModel(Package3DModel{UUID: "2e2263b8-c5e2-4d09-87b2-5aafbfa836c9", Name: "a"})
	pkg.Add3DModel(Package3DModel{UUID: "161c65b0-a386-4b45-9ac2-0293a812fb62", Name: "b"})
	out := pkg.String()
	first := strings.Index(out, "161c65b0-a386-4b45-9ac2-0293a812fb62")
	second := strings.Index(out, "2e2263b8-c5e2-4d09-87b2-5aafbfa836c9")
	require.Less(t, first, second, "3d models must serialize sorted by uuid")
}

func TestSerializeWritesUnixLineEndings(t *testing.T) {
	dir := t.TempDir()
	pkg := NewPackage(testHeader("009e35ef-1f50-4bf3-ab58-11eb85bf5503", "p"), AssemblySMT)
	require.NoError(t, pkg.Serialize(dir))

	elementDir := filepath.Join(dir, pkg.UUID)
	marker, err := os.ReadFile(filepath.Join(elementDir, ".librepcb-pkg"))
	require.NoError(t, err)
	require.Equal(t, "0.1\n", string(marker))

	body, err := os.ReadFile(filepath.Join(elementDir, "package.lp"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(body), ")\n"))
	require.NotContains(t, string(body), "\r")
}

func TestSerializeDeviceMarker(t *testing.T) {
	dir := t.TempDir()
	device := NewDevice(testHeader("00652f30-9f89-4027-91f5-7bd684eee751", "d"),
		"bc911fcc-8b5c-4728-b596-d644797c55da", "b4e92c64-18c4-44a6-aa39-d1be3e8c29bd")
	require.NoError(t, device.Serialize(dir))
	marker, err := os.ReadFile(filepath.Join(dir, device.UUID, ".librepcb-dev"))
	require.NoError(t, err)
	require.Equal(t, "1\n", string(marker))
}

func TestMissingNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for element without name")
		}
	}()
	pkg := NewPackage(ElementHeader{UUID: "009e35ef-1f50-4bf3-ab58-11eb85bf5503"}, AssemblySMT)
	_ = pkg.String()
}
