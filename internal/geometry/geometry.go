// Package geometry implements the aspect-correction math applied to a
// window rectangle during a live resize drag. It is pure arithmetic with no
// OS dependencies so it can be tested on any platform.
package geometry

import (
	"fmt"
	"math"
)

// Rect is a window bounding box in screen coordinates. The field order and
// widths match the Win32 RECT structure so a candidate rectangle delivered
// with WM_SIZING can be reinterpreted in place.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns Right - Left.
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// DragEdge identifies which edge or corner of the window the user is
// dragging. The numeric values equal the Win32 WMSZ_* constants so the
// WM_SIZING wparam converts directly.
type DragEdge uint8

const (
	EdgeNone        DragEdge = 0
	EdgeLeft        DragEdge = 1
	EdgeRight       DragEdge = 2
	EdgeTop         DragEdge = 3
	EdgeTopLeft     DragEdge = 4
	EdgeTopRight    DragEdge = 5
	EdgeBottom      DragEdge = 6
	EdgeBottomLeft  DragEdge = 7
	EdgeBottomRight DragEdge = 8
)

// String returns a string representation of the drag edge
func (e DragEdge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeTopLeft:
		return "top-left"
	case EdgeTopRight:
		return "top-right"
	case EdgeBottom:
		return "bottom"
	case EdgeBottomLeft:
		return "bottom-left"
	case EdgeBottomRight:
		return "bottom-right"
	default:
		return "none"
	}
}

// Aspect is a target aspect ratio stored as height over width, so a new
// height is width multiplied by the ratio. A zero Aspect is invalid.
type Aspect float64

// NewAspect builds an Aspect from the familiar width:height form
// (e.g. 16, 9). Both components must be positive.
func NewAspect(width, height float64) (Aspect, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("aspect components must be positive, got %g:%g", width, height)
	}
	return Aspect(height / width), nil
}

// Valid reports whether the aspect can be used for correction.
func (a Aspect) Valid() bool {
	return a > 0
}

// heightFor derives the height that matches the aspect for a given width.
func (a Aspect) heightFor(width int32) int32 {
	return roundInt(float64(width) * float64(a))
}

// widthFor derives the width that matches the aspect for a given height.
func (a Aspect) widthFor(height int32) int32 {
	return roundInt(float64(height) / float64(a))
}

// roundInt rounds half away from zero, matching the behavior expected for
// derived pixel dimensions.
func roundInt(v float64) int32 {
	return int32(math.Round(v))
}

// Correct mutates r in place so its width/height ratio matches the aspect,
// anchoring the edges the user is not dragging. It reports whether the
// rectangle was modified.
//
// Edge drags keep the dimension the user changed and derive the other: a
// top or bottom drag keeps the new height and recomputes width against the
// left edge; a left or right drag keeps the new width and recomputes height
// against the top edge.
//
// Corner drags change both dimensions at once, so the driven dimension is
// chosen by comparing how far each dimension is from the value the other
// one implies. The interpretation requiring the smaller correction wins,
// which minimizes visible snap while the cursor moves diagonally. Whichever
// dimension is derived, the edges on the sides not named by the corner stay
// anchored.
//
// The rectangle is left untouched when the current width or height is not
// positive, when the aspect is invalid, when the edge is not recognized, or
// when the derived dimension would round to zero or below.
func (a Aspect) Correct(r *Rect, edge DragEdge) bool {
	if r == nil || !a.Valid() {
		return false
	}

	w := r.Width()
	h := r.Height()
	if w <= 0 || h <= 0 {
		return false
	}

	switch edge {
	case EdgeTop, EdgeBottom:
		// Height is what the user changed; derive width, keep left fixed.
		newW := a.widthFor(h)
		if newW <= 0 {
			return false
		}
		r.Right = r.Left + newW

	case EdgeLeft, EdgeRight:
		// Width is what the user changed; derive height, keep top fixed.
		newH := a.heightFor(w)
		if newH <= 0 {
			return false
		}
		r.Bottom = r.Top + newH

	case EdgeTopLeft, EdgeTopRight, EdgeBottomLeft, EdgeBottomRight:
		return a.correctCorner(r, edge, w, h)

	default:
		return false
	}

	return true
}

// correctCorner resolves the ambiguity of a diagonal drag: both dimensions
// moved, so treat the one whose implied counterpart is closer to the actual
// counterpart as the one the user meant to control. The comparison is
// strictly errH < errW; equal errors fall to the height-driven branch.
func (a Aspect) correctCorner(r *Rect, edge DragEdge, w, h int32) bool {
	idealHFromW := float64(w) * float64(a)
	idealWFromH := float64(h) / float64(a)

	errH := math.Abs(idealHFromW - float64(h))
	errW := math.Abs(idealWFromH - float64(w))

	if errH < errW {
		// Width-driven: derive height, anchor the horizontal edge
		// opposite the dragged corner.
		newH := a.heightFor(w)
		if newH <= 0 {
			return false
		}
		if edge == EdgeTopLeft || edge == EdgeTopRight {
			r.Top = r.Bottom - newH
		} else {
			r.Bottom = r.Top + newH
		}
	} else {
		// Height-driven: derive width, anchor the vertical edge
		// opposite the dragged corner.
		newW := a.widthFor(h)
		if newW <= 0 {
			return false
		}
		if edge == EdgeTopLeft || edge == EdgeBottomLeft {
			r.Left = r.Right - newW
		} else {
			r.Right = r.Left + newW
		}
	}

	return true
}
