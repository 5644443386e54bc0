package types

import (
	"fmt"

	"github.com/menta2k/aspect-normalizer/pkg/anchor"
)

// Size is a pixel size
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Operation names what the image codec does for a variant
type Operation string

const (
	// OpSaveOriginal re-encodes the source image unchanged
	OpSaveOriginal Operation = "save_original"
	// OpPad letterboxes the source onto a larger solid canvas
	OpPad Operation = "pad"
	// OpCrop cuts a box of Size out of the source at Anchor
	OpCrop Operation = "crop"
)

// VariantSpec is one derived output of a source image
type VariantSpec struct {
	Operation Operation     `json:"operation"`
	Size      Size          `json:"size"`
	Anchor    anchor.Anchor `json:"-"`
	// AnchorName is the configured name, which differs from Anchor.String()
	// when the configured name was not found in the anchor table.
	AnchorName string `json:"anchor,omitempty"`
	Suffix     string `json:"suffix"`
	Filename   string `json:"filename"`
}
