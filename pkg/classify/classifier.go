package classify

import (
	"fmt"

	"github.com/menta2k/aspect-normalizer/pkg/ratio"
)

// Orientation is landscape or portrait
type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
)

// Classification relates an image ratio to its orientation's reference ratio
type Classification string

const (
	// MatchesReference needs no variants
	MatchesReference Classification = "matches_reference"
	// WideOfReference has excess width: pad height, crop width
	WideOfReference Classification = "wide_of_reference"
	// TallOfReference has excess height: pad width, crop height
	TallOfReference Classification = "tall_of_reference"
)

// Result is the outcome of classifying one ratio
type Result struct {
	Orientation    Orientation
	Classification Classification
}

// Classifier decides orientation and classification against a reference ratio
type Classifier struct {
	reference ratio.AspectRatio
}

// New creates a Classifier for the default 4:3 reference
func New() *Classifier {
	return &Classifier{reference: ratio.Landscape}
}

// NewWithReference creates a Classifier for a custom landscape reference.
// A reference below 1 is taken as its landscape reciprocal.
func NewWithReference(reference ratio.AspectRatio) (*Classifier, error) {
	if reference.IsZero() {
		return nil, fmt.Errorf("reference ratio is not set")
	}
	if reference.Less(ratio.Square) {
		reference = reference.Reciprocal()
	}
	return &Classifier{reference: reference}, nil
}

// Reference returns the reference ratio used for the given orientation
func (c *Classifier) Reference(o Orientation) ratio.AspectRatio {
	if o == Portrait {
		return c.reference.Reciprocal()
	}
	return c.reference
}

// Classify maps a ratio onto exactly one orientation and classification.
// A square ratio takes the portrait branch.
func (c *Classifier) Classify(r ratio.AspectRatio) Result {
	landscapeRef := c.reference
	portraitRef := c.reference.Reciprocal()

	switch {
	case r.Equal(landscapeRef):
		return Result{Landscape, MatchesReference}
	case r.Equal(portraitRef):
		return Result{Portrait, MatchesReference}
	case r.IsLandscape():
		if r.Greater(landscapeRef) {
			return Result{Landscape, WideOfReference}
		}
		return Result{Landscape, TallOfReference}
	default:
		if r.Greater(portraitRef) {
			return Result{Portrait, WideOfReference}
		}
		return Result{Portrait, TallOfReference}
	}
}
