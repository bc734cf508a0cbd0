package batch

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Load decodes the image at path into a non-premultiplied RGBA buffer whose
// bounds start at the origin. The decoder's format name is returned so the
// image can be written back in kind.
func Load(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}

	return toNRGBA(img), format, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Save encodes img as format and atomically replaces path with the result.
// The file keeps its permission bits. Only formats that can carry an alpha
// channel losslessly are accepted.
func Save(img image.Image, format, path string) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination for %q: %w", path, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", path, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Chmod(outFile.Name(), mode); defErr != nil {
				err = fmt.Errorf("could not set mode of %q: %w", path, defErr)
			} else if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not replace %q: %w", path, defErr)
			}
		}
		if err != nil {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", defErr)
			}
		}
	}()

	switch format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err = enc.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG %q: %w", path, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode BMP %q: %w", path, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("could not encode TIFF %q: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	canRename = true
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
