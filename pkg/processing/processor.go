package processing

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	apperrors "github.com/menta2k/aspect-normalizer/pkg/errors"
	"github.com/menta2k/aspect-normalizer/pkg/types"
)

// Options controls encoding and padding
type Options struct {
	JPEGQuality int
	PadColor    color.Color
}

// DefaultOptions returns JPEG quality 75 and black padding
func DefaultOptions() Options {
	return Options{
		JPEGQuality: 75,
		PadColor:    color.Black,
	}
}

// Processor handles image processing operations
type Processor struct {
	opts Options
}

// NewProcessor creates a new image processor
func NewProcessor() *Processor {
	return &Processor{opts: DefaultOptions()}
}

// NewProcessorWithOptions creates a processor with custom options
func NewProcessorWithOptions(opts Options) *Processor {
	if opts.JPEGQuality <= 0 {
		opts.JPEGQuality = DefaultOptions().JPEGQuality
	}
	if opts.PadColor == nil {
		opts.PadColor = DefaultOptions().PadColor
	}
	return &Processor{opts: opts}
}

// Handle is one opened source image. The pixel buffer is only valid until
// Close is called.
type Handle struct {
	Path string
	img  image.Image
}

// Image returns the decoded image, or nil once the handle is closed
func (h *Handle) Image() image.Image {
	return h.img
}

// Size returns the pixel dimensions of the image
func (h *Handle) Size() types.Size {
	if h.img == nil {
		return types.Size{}
	}
	b := h.img.Bounds()
	return types.Size{Width: b.Dx(), Height: b.Dy()}
}

// Close releases the pixel buffer
func (h *Handle) Close() error {
	h.img = nil
	return nil
}

// Open decodes the image at path into a Handle
func (p *Processor) Open(path string) (*Handle, error) {
	img, err := p.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return &Handle{Path: path, img: img}, nil
}

// LoadImage loads an image from a file path with WebP support
func (p *Processor) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	// Fallback: explicit WebP decode
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind %s: %w", path, err)
		}
	}

	img, _, err := image.Decode(f)
	if err != nil {
		msg := fmt.Sprintf("cannot decode %s", filepath.Base(path))
		if strings.EqualFold(filepath.Ext(path), ".cr2") {
			// x/image/tiff reads the TIFF container but not the old-style
			// JPEG data Canon stores in it
			msg += ": raw files are only read when their main image is a plain TIFF image"
		}
		return nil, apperrors.NewUnsupportedFormatError(msg, err)
	}
	return img, nil
}

// Pad scales img to fit inside size and centres it on a canvas of the pad
// color. Nothing is cropped.
func (p *Processor) Pad(img image.Image, size types.Size) (*image.NRGBA, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid pad size %s", size)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, apperrors.NewDegenerateSizeError(w, h)
	}

	fitW, fitH := size.Width, size.Height
	srcRatio := float64(w) / float64(h)
	dstRatio := float64(size.Width) / float64(size.Height)
	switch {
	case srcRatio > dstRatio:
		fitH = maxInt(1, int(math.Round(float64(h)/float64(w)*float64(size.Width))))
	case srcRatio < dstRatio:
		fitW = maxInt(1, int(math.Round(float64(w)/float64(h)*float64(size.Height))))
	}

	fitted := imaging.Resize(img, fitW, fitH, imaging.Lanczos)
	if fitW == size.Width && fitH == size.Height {
		return fitted, nil
	}

	canvas := imaging.New(size.Width, size.Height, p.opts.PadColor)
	x := int(math.RoundToEven(float64(size.Width-fitW) * 0.5))
	y := int(math.RoundToEven(float64(size.Height-fitH) * 0.5))
	return imaging.Paste(canvas, fitted, image.Pt(x, y)), nil
}

// FitCrop cuts the largest box with the aspect ratio of size out of img,
// placed so that the normalized focal point (fx, fy) decides how much is
// trimmed from each side, and scales it to size. With the box already at
// size no resampling happens.
func (p *Processor) FitCrop(img image.Image, size types.Size, fx, fy float64) (*image.NRGBA, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid crop size %s", size)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, apperrors.NewDegenerateSizeError(w, h)
	}

	cropW, cropH := float64(w), float64(h)
	srcRatio := float64(w) / float64(h)
	dstRatio := float64(size.Width) / float64(size.Height)
	switch {
	case srcRatio > dstRatio:
		cropW = dstRatio * float64(h)
	case srcRatio < dstRatio:
		cropH = float64(w) / dstRatio
	}

	left := (float64(w) - cropW) * clamp(fx, 0, 1)
	top := (float64(h) - cropH) * clamp(fy, 0, 1)
	rect := image.Rect(
		int(math.Round(left)),
		int(math.Round(top)),
		int(math.Round(left+cropW)),
		int(math.Round(top+cropH)),
	).Add(b.Min).Intersect(b)
	if rect.Empty() {
		return nil, fmt.Errorf("empty crop rectangle")
	}

	cropped := imaging.Crop(img, rect)
	return imaging.Resize(cropped, size.Width, size.Height, imaging.Lanczos), nil
}

// SaveImage encodes img to a new file at path; the format follows the file
// extension. An existing file is never overwritten: the returned error then
// wraps fs.ErrExist.
func (p *Processor) SaveImage(img image.Image, path string) (err error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return apperrors.NewUnsupportedFormatError(
			fmt.Sprintf("cannot encode %s", filepath.Base(path)), err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(p.opts.JPEGQuality)); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Apply renders one variant of the image behind h into dir and returns the
// written path
func (p *Processor) Apply(h *Handle, spec types.VariantSpec, dir string) (string, error) {
	img := h.Image()
	if img == nil {
		return "", fmt.Errorf("image %s is closed", h.Path)
	}

	var out image.Image
	var err error
	switch spec.Operation {
	case types.OpSaveOriginal:
		out = img
	case types.OpPad:
		out, err = p.Pad(img, spec.Size)
	case types.OpCrop:
		fx, fy := spec.Anchor.Point()
		out, err = p.FitCrop(img, spec.Size, fx, fy)
	default:
		return "", fmt.Errorf("unknown operation %q", spec.Operation)
	}
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", spec.Operation, spec.Filename, err)
	}

	path := filepath.Join(dir, spec.Filename)
	if err := p.SaveImage(out, path); err != nil {
		return "", err
	}
	return path, nil
}

// ParseHexColor reads "#rgb" or "#rrggbb"
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Helper functions
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
