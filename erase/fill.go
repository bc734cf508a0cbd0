package erase

import (
	"fmt"
	"image"
)

// Filler erases 4-connected regions of one color from an image, in place.
//
// The visited grid and the queue are shared by every Fill call on the same
// Filler. Erased pixels never match an opaque target again and untouched
// pixels never change, so a pixel visited from one seed needs no second look
// from another.
type Filler struct {
	img     *image.NRGBA
	rect    image.Rectangle
	width   int
	visited []bool
	queue   []image.Point
}

func NewFiller(img *image.NRGBA) *Filler {
	r := img.Bounds()
	return &Filler{
		img:     img,
		rect:    r,
		width:   r.Dx(),
		visited: make([]bool, r.Dx()*r.Dy()),
	}
}

func (f *Filler) index(p image.Point) int {
	return (p.Y-f.rect.Min.Y)*f.width + (p.X - f.rect.Min.X)
}

// mark records p as queued and reports whether it was new.
func (f *Filler) mark(p image.Point) bool {
	i := f.index(p)
	if f.visited[i] {
		return false
	}
	f.visited[i] = true
	return true
}

var neighbours = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Fill erases the region of bg connected to seed and returns the number of
// pixels it set to Transparent. A seed that does not hold bg, or that an
// earlier Fill on this Filler already reached, erases nothing.
// It panics if seed lies outside the image.
func (f *Filler) Fill(bg Color, seed image.Point) int {
	if !seed.In(f.rect) {
		panic(fmt.Sprintf("erase: seed %v outside image bounds %v", seed, f.rect))
	}
	if At(f.img, seed.X, seed.Y) != bg || !f.mark(seed) {
		return 0
	}

	f.queue = append(f.queue[:0], seed)

	count := 0
	for head := 0; head < len(f.queue); head++ {
		p := f.queue[head]
		if At(f.img, p.X, p.Y) != bg {
			continue
		}
		set(f.img, p.X, p.Y, Transparent)
		count++

		for _, d := range neighbours {
			n := p.Add(d)
			if !n.In(f.rect) || !f.mark(n) {
				continue
			}
			if At(f.img, n.X, n.Y) == bg {
				f.queue = append(f.queue, n)
			}
		}
	}
	f.queue = f.queue[:0]

	return count
}

// Run fills from each seed in order against the same image and returns the
// total number of erased pixels. Seeds must be filled sequentially; they
// share and mutate one buffer.
func (f *Filler) Run(bg Color, seeds []image.Point) int {
	total := 0
	for _, s := range seeds {
		total += f.Fill(bg, s)
	}
	return total
}

// Fill erases every pixel of color bg reachable from any of seeds.
func Fill(img *image.NRGBA, bg Color, seeds []image.Point) int {
	return NewFiller(img).Run(bg, seeds)
}
