package erase

import (
	"image"
)

type Reason int

const (
	ReasonNone Reason = iota
	ReasonCornersDiffer
	ReasonAlreadyTransparent
	ReasonEmpty
)

func (r Reason) String() string {
	switch r {
	case ReasonCornersDiffer:
		return "corners differ"
	case ReasonAlreadyTransparent:
		return "already transparent"
	case ReasonEmpty:
		return "empty image"
	default:
		return "none"
	}
}

// Outcome is the verdict of Sample. Corners is only populated for non-empty
// images, in Seeds order: top-left, top-right, bottom-left, bottom-right.
type Outcome struct {
	Reason     Reason
	Corners    [4]Color
	Background Color
}

func (o Outcome) Eligible() bool {
	return o.Reason == ReasonNone
}

// Corners returns the four corner coordinates of r, coincident ones included.
func Corners(r image.Rectangle) [4]image.Point {
	minX, minY := r.Min.X, r.Min.Y
	maxX, maxY := r.Max.X-1, r.Max.Y-1
	return [4]image.Point{
		{minX, minY},
		{maxX, minY},
		{minX, maxY},
		{maxX, maxY},
	}
}

// Seeds returns the corner coordinates of r with duplicates removed, so a
// 1-pixel-wide or tall image yields two seeds and a 1x1 image yields one.
func Seeds(r image.Rectangle) []image.Point {
	if r.Empty() {
		return nil
	}
	seeds := make([]image.Point, 0, 4)
outer:
	for _, p := range Corners(r) {
		for _, s := range seeds {
			if s == p {
				continue outer
			}
		}
		seeds = append(seeds, p)
	}
	return seeds
}

// Sample decides whether img has a single, still opaque background color.
// All four corners must match exactly; there is no majority vote.
func Sample(img *image.NRGBA) Outcome {
	r := img.Bounds()
	if r.Empty() {
		return Outcome{Reason: ReasonEmpty}
	}

	var out Outcome
	for i, p := range Corners(r) {
		out.Corners[i] = At(img, p.X, p.Y)
	}

	bg := out.Corners[0]
	for _, c := range out.Corners[1:] {
		if c != bg {
			out.Reason = ReasonCornersDiffer
			return out
		}
	}

	out.Background = bg
	if bg.A == 0 {
		out.Reason = ReasonAlreadyTransparent
	}
	return out
}
