package erase

import (
	"image"
	"testing"
)

func TestSeeds(t *testing.T) {
	tests := []struct {
		name string
		r    image.Rectangle
		want []image.Point
	}{
		{"square", image.Rect(0, 0, 3, 3), []image.Point{{0, 0}, {2, 0}, {0, 2}, {2, 2}}},
		{"single", image.Rect(0, 0, 1, 1), []image.Point{{0, 0}}},
		{"row", image.Rect(0, 0, 5, 1), []image.Point{{0, 0}, {4, 0}}},
		{"column", image.Rect(0, 0, 1, 4), []image.Point{{0, 0}, {0, 3}}},
		{"offset", image.Rect(2, 3, 4, 5), []image.Point{{2, 3}, {3, 3}, {2, 4}, {3, 4}}},
		{"empty", image.Rect(0, 0, 0, 0), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Seeds(tt.r)
			if len(got) != len(tt.want) {
				t.Fatalf("Seeds(%v) = %v, want %v", tt.r, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Seeds(%v)[%d] = %v, want %v", tt.r, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSampleEligible(t *testing.T) {
	img := newImage(3, 2, red)
	set(img, 1, 0, blue)

	out := Sample(img)
	if !out.Eligible() {
		t.Fatalf("reason = %v, want eligible", out.Reason)
	}
	if out.Background != red {
		t.Errorf("background = %v, want %v", out.Background, red)
	}
}

func TestSampleSingleCornerDiffers(t *testing.T) {
	corners := Corners(image.Rect(0, 0, 4, 4))
	for i, p := range corners {
		img := newImage(4, 4, white)
		set(img, p.X, p.Y, Color{254, 255, 255, 255})

		out := Sample(img)
		if out.Reason != ReasonCornersDiffer {
			t.Errorf("corner %d: reason = %v, want corners differ", i, out.Reason)
		}
		if out.Corners[i] == white {
			t.Errorf("corner %d not reported as differing", i)
		}
	}
}

func TestSampleDoesNotModify(t *testing.T) {
	img := newImage(3, 3, white)
	before := Clone(img)
	Sample(img)
	if string(img.Pix) != string(before.Pix) {
		t.Error("Sample changed the buffer")
	}
}

func TestColorString(t *testing.T) {
	if got, want := (Color{1, 22, 255, 0}).String(), "(1, 22, 255, 0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
