package planner

import (
	"fmt"

	"github.com/menta2k/aspect-normalizer/pkg/anchor"
	"github.com/menta2k/aspect-normalizer/pkg/classify"
	"github.com/menta2k/aspect-normalizer/pkg/ratio"
	"github.com/menta2k/aspect-normalizer/pkg/types"
)

// Output naming
const (
	OriginalPrefix     = "Original_"
	ExtendedHeight     = "extended_height"
	ExtendedWidth      = "extended_width"
	CroppedToPrefix    = "cropped_to_"
	OutputExtension    = ".jpg"
	originalSuffixName = "original"
)

// Config holds the planner policy
type Config struct {
	Reference   ratio.AspectRatio
	WideAnchors []string
	TallAnchors []string
}

// DefaultConfig returns the 4:3 policy with left/center/right and
// top/center/bottom crops
func DefaultConfig() Config {
	return Config{
		Reference:   ratio.Landscape,
		WideAnchors: []string{"left", "center", "right"},
		TallAnchors: []string{"top", "center", "bottom"},
	}
}

// Planner expands a classification into an ordered list of variants
type Planner struct {
	classifier  *classify.Classifier
	wideAnchors []plannedAnchor
	tallAnchors []plannedAnchor
	warnings    []error
}

type plannedAnchor struct {
	name   string
	anchor anchor.Anchor
}

// Plan is the list of variants for one image
type Plan struct {
	Name     string
	Info     classify.ImageInfo
	Variants []types.VariantSpec
	// Subdir is set when the variants go into a directory named after the image
	Subdir bool
	// Warnings carries non-fatal InvalidAnchorWarnings
	Warnings []error
}

// New creates a Planner with the default policy
func New() *Planner {
	p, _ := NewWithConfig(DefaultConfig())
	return p
}

// NewWithConfig creates a Planner with a custom policy. Anchor names are
// validated here; unknown names do not fail construction but are reported
// on every Plan and cropped at the center.
func NewWithConfig(config Config) (*Planner, error) {
	reference := config.Reference
	if reference.IsZero() {
		reference = ratio.Landscape
	}
	classifier, err := classify.NewWithReference(reference)
	if err != nil {
		return nil, err
	}
	if len(config.WideAnchors) == 0 || len(config.TallAnchors) == 0 {
		return nil, fmt.Errorf("wide and tall anchor sets must not be empty")
	}

	p := &Planner{classifier: classifier}
	p.wideAnchors = p.resolve(config.WideAnchors)
	p.tallAnchors = p.resolve(config.TallAnchors)
	return p, nil
}

func (p *Planner) resolve(names []string) []plannedAnchor {
	out := make([]plannedAnchor, 0, len(names))
	for _, name := range names {
		a, err := anchor.Parse(name)
		if err != nil {
			p.warnings = append(p.warnings, err)
		}
		out = append(out, plannedAnchor{name: name, anchor: a})
	}
	return out
}

// Classifier returns the classifier the planner measures images with
func (p *Planner) Classifier() *classify.Classifier {
	return p.classifier
}

// Plan computes the variants of an image called name with the given size.
// name is the base file name without extension.
func (p *Planner) Plan(name string, width, height int) (Plan, error) {
	info, err := p.classifier.Inspect(width, height)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Name: name,
		Info: info,
		Variants: []types.VariantSpec{{
			Operation: types.OpSaveOriginal,
			Size:      types.Size{Width: width, Height: height},
			Anchor:    anchor.Center,
			Suffix:    originalSuffixName,
			Filename:  OriginalPrefix + name + OutputExtension,
		}},
	}

	ref := info.Reference
	switch info.Classification {
	case classify.MatchesReference:
		return plan, nil

	case classify.WideOfReference:
		padded := types.Size{Width: width, Height: ref.DivFloor(width)}
		cropped := types.Size{Width: ref.MulFloor(height), Height: height}
		plan.Variants = append(plan.Variants, padSpec(name, ExtendedHeight, padded))
		plan.Variants = append(plan.Variants, p.cropSpecs(name, cropped, p.wideAnchors)...)

	case classify.TallOfReference:
		padded := types.Size{Width: ref.MulFloor(height), Height: height}
		cropped := types.Size{Width: width, Height: ref.DivFloor(width)}
		plan.Variants = append(plan.Variants, padSpec(name, ExtendedWidth, padded))
		plan.Variants = append(plan.Variants, p.cropSpecs(name, cropped, p.tallAnchors)...)
	}

	plan.Subdir = true
	plan.Warnings = append(plan.Warnings, p.warnings...)
	return plan, nil
}

func padSpec(name, suffix string, size types.Size) types.VariantSpec {
	return types.VariantSpec{
		Operation: types.OpPad,
		Size:      size,
		Anchor:    anchor.Center,
		Suffix:    suffix,
		Filename:  name + "_" + suffix + OutputExtension,
	}
}

func (p *Planner) cropSpecs(name string, size types.Size, anchors []plannedAnchor) []types.VariantSpec {
	specs := make([]types.VariantSpec, 0, len(anchors))
	for _, a := range anchors {
		suffix := CroppedToPrefix + a.name
		specs = append(specs, types.VariantSpec{
			Operation:  types.OpCrop,
			Size:       size,
			Anchor:     a.anchor,
			AnchorName: a.name,
			Suffix:     suffix,
			Filename:   name + "_" + suffix + OutputExtension,
		})
	}
	return specs
}
