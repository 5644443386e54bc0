package classify

import (
	"image"

	"github.com/menta2k/aspect-normalizer/pkg/ratio"
)

// ImageInfo contains basic image metadata and its classification
type ImageInfo struct {
	Width          int
	Height         int
	AspectRatio    ratio.AspectRatio
	Orientation    Orientation
	Classification Classification
	// Reference is the ratio the image is measured against, 4:3 or 3:4
	Reference ratio.AspectRatio
}

// Inspect classifies an image of the given size
func (c *Classifier) Inspect(width, height int) (ImageInfo, error) {
	r, err := ratio.FromDimensions(width, height)
	if err != nil {
		return ImageInfo{}, err
	}
	res := c.Classify(r)
	return ImageInfo{
		Width:          width,
		Height:         height,
		AspectRatio:    r,
		Orientation:    res.Orientation,
		Classification: res.Classification,
		Reference:      c.Reference(res.Orientation),
	}, nil
}

// GetImageInfo classifies a decoded image
func (c *Classifier) GetImageInfo(img image.Image) (ImageInfo, error) {
	bounds := img.Bounds()
	return c.Inspect(bounds.Dx(), bounds.Dy())
}
