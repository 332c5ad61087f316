// Package geometry provides the 2D helpers shared by the footprint
// generators: bounding boxes for extent tracking and pin grid placement.
// All dimensions are millimeters with the package center at the origin.
package geometry

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceParts/pkg/sexp"
)

// BoundingBox tracks the axis aligned extent of a set of positions.
type BoundingBox struct {
	Min sexp.Position
	Max sexp.Position
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: sexp.Position{X: 1e9, Y: 1e9},
		Max: sexp.Position{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box is empty.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position.
func (bb *BoundingBox) Expand(pos sexp.Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// ExpandRect expands the bounding box to include an axis aligned rectangle
// of the given size centered at pos.
func (bb *BoundingBox) ExpandRect(pos sexp.Position, width, height float64) {
	bb.Expand(sexp.Position{X: pos.X - width/2, Y: pos.Y - height/2})
	bb.Expand(sexp.Position{X: pos.X + width/2, Y: pos.Y + height/2})
}

// ExpandBox expands to include another bounding box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Grow returns a copy of the bounding box expanded by margin on all sides.
func (bb BoundingBox) Grow(margin float64) BoundingBox {
	return BoundingBox{
		Min: sexp.Position{X: bb.Min.X - margin, Y: bb.Min.Y - margin},
		Max: sexp.Position{X: bb.Max.X + margin, Y: bb.Max.Y + margin},
	}
}

// Contains checks if a position is within the bounding box.
func (bb BoundingBox) Contains(pos sexp.Position) bool {
	return pos.X >= bb.Min.X && pos.X <= bb.Max.X &&
		pos.Y >= bb.Min.Y && pos.Y <= bb.Max.Y
}

// ContainsBox checks if another bounding box lies entirely inside.
func (bb BoundingBox) ContainsBox(other BoundingBox) bool {
	return bb.Contains(other.Min) && bb.Contains(other.Max)
}

// Width returns the width of the bounding box.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box.
func (bb BoundingBox) Center() sexp.Position {
	return sexp.Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

// PinY returns the y coordinate of a pin in a vertical row. Pin numbers are
// 1-based with pin 1 at the top; the middle pin lands at or near y=0. With
// gridAlign the row shifts so pins stay on the spacing grid instead of
// centering the row exactly.
func PinY(pinNumber, pinCount int, spacing float64, gridAlign bool) float64 {
	var mid float64
	if gridAlign {
		mid = float64((pinCount + 1) / 2)
	} else {
		mid = float64(pinCount+1) / 2.0
	}
	y := -roundTo(float64(pinNumber)*spacing-mid*spacing, 2)
	if y == 0 {
		return 0.0 // avoid negative zero
	}
	return y
}

// RowBounds returns the outermost y coordinates of a pin row, extended by
// offset beyond the first and last pin.
func RowBounds(pinCount int, spacing, offset float64, gridAlign bool) (top, bottom float64) {
	top = PinY(1, pinCount, spacing, gridAlign) + offset
	bottom = PinY(pinCount, pinCount, spacing, gridAlign) - offset
	return top, bottom
}

// roundTo rounds to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

// TruncateToGrid snaps a positive dimension down onto a grid, e.g. 0.01 mm.
func TruncateToGrid(v, grid float64) float64 {
	return math.Floor((v+1e-9)/grid) * grid
}
