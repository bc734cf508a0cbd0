// Package erase removes a uniform background from pixel art.
//
// The background is the color shared by all four corners of the image. Every
// pixel of exactly that color that is 4-connected to a corner is replaced by
// fully transparent black. Interior pockets of the same color that are
// enclosed by other colors are left alone.
package erase

import (
	"fmt"
	"image"
)

type Status int

const (
	StatusOK Status = iota
	StatusCornersDiffer
	StatusAlreadyTransparent
	StatusNoMatch
	StatusEmpty
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCornersDiffer:
		return "corners differ"
	case StatusAlreadyTransparent:
		return "already transparent"
	case StatusNoMatch:
		return "0 pixels matched"
	case StatusEmpty:
		return "empty image"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes what Process did to one image.
type Result struct {
	Status     Status
	Removed    int
	Background Color
	Corners    [4]Color
}

// Modified reports whether the image was changed and needs to be persisted.
func (r Result) Modified() bool {
	return r.Removed > 0
}

func (r Result) String() string {
	switch r.Status {
	case StatusOK:
		return fmt.Sprintf("OK - removed %d px (bg color %s)", r.Removed, r.Background)
	case StatusCornersDiffer:
		return fmt.Sprintf("SKIP (corners differ: (%s, %s, %s, %s))",
			r.Corners[0], r.Corners[1], r.Corners[2], r.Corners[3])
	default:
		return fmt.Sprintf("SKIP (%s)", r.Status)
	}
}

// Process samples the corners of img and, when they agree on an opaque
// color, erases the background reachable from each corner in place.
func Process(img *image.NRGBA) Result {
	out := Sample(img)
	res := Result{Corners: out.Corners, Background: out.Background}

	switch out.Reason {
	case ReasonCornersDiffer:
		res.Status = StatusCornersDiffer
		return res
	case ReasonAlreadyTransparent:
		res.Status = StatusAlreadyTransparent
		return res
	case ReasonEmpty:
		res.Status = StatusEmpty
		return res
	}

	res.Removed = Fill(img, out.Background, Seeds(img.Bounds()))
	if res.Removed == 0 {
		res.Status = StatusNoMatch
	}
	return res
}
