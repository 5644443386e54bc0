// Package aspectnormalizer normalizes a folder of photographs to a reference
// aspect ratio.
//
// Every image is measured against the reference (4:3 by default, 3:4 for
// portrait images). Images already at the reference are re-encoded as is;
// every other image gets a subdirectory holding the original, a padded
// version that reaches the reference by adding black bars, and three crops
// that reach it by trimming.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		aspectnormalizer "github.com/menta2k/aspect-normalizer"
//	)
//
//	func main() {
//		n := aspectnormalizer.New()
//
//		summary, err := n.RunBatch(".", ".")
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("wrote %d files to %s", summary.Written, summary.OutputDir)
//	}
//
// The package consists of four main components:
//
// 1. Ratio (pkg/ratio): exact aspect ratios with bounded-denominator rounding
// 2. Classify (pkg/classify): orientation and classification against the reference
// 3. Planner (pkg/planner): the ordered list of variants for one image
// 4. Processing (pkg/processing): decoding, padding, cropping and encoding
package aspectnormalizer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/menta2k/aspect-normalizer/internal/logger"
	"github.com/menta2k/aspect-normalizer/internal/utils"
	"github.com/menta2k/aspect-normalizer/pkg/classify"
	apperrors "github.com/menta2k/aspect-normalizer/pkg/errors"
	"github.com/menta2k/aspect-normalizer/pkg/planner"
	"github.com/menta2k/aspect-normalizer/pkg/processing"
)

// Version of the aspect normalizer
const Version = "1.0.0"

// BatchOptions controls how a directory is walked and where output goes
type BatchOptions struct {
	InputExtensions []string
	OutputPrefix    string
	TimestampLayout string
	// Clock stamps the output directory name; time.Now when nil
	Clock func() time.Time
}

// DefaultBatchOptions accepts jpeg, jpg and cr2 files and names the output
// directory "Output - <timestamp>"
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		InputExtensions: []string{"jpeg", "jpg", "cr2"},
		OutputPrefix:    "Output - ",
		TimestampLayout: "2006-01-02 15:04:05.000000",
		Clock:           time.Now,
	}
}

// Normalizer runs the planner and the image processor over files
type Normalizer struct {
	planner   *planner.Planner
	processor *processing.Processor
	batch     BatchOptions
}

// New creates a Normalizer with default configuration
func New() *Normalizer {
	return &Normalizer{
		planner:   planner.New(),
		processor: processing.NewProcessor(),
		batch:     DefaultBatchOptions(),
	}
}

// NewWithConfig creates a Normalizer with custom configuration
func NewWithConfig(plannerConfig planner.Config, processingOptions processing.Options, batchOptions BatchOptions) (*Normalizer, error) {
	p, err := planner.NewWithConfig(plannerConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid planner configuration: %w", err)
	}
	if len(batchOptions.InputExtensions) == 0 {
		return nil, fmt.Errorf("no input extensions configured")
	}
	if batchOptions.TimestampLayout == "" {
		batchOptions.TimestampLayout = DefaultBatchOptions().TimestampLayout
	}
	if batchOptions.Clock == nil {
		batchOptions.Clock = time.Now
	}

	return &Normalizer{
		planner:   p,
		processor: processing.NewProcessorWithOptions(processingOptions),
		batch:     batchOptions,
	}, nil
}

// FileResult describes the outcome for one source image
type FileResult struct {
	Source  string
	Plan    planner.Plan
	Written []string
}

// FileError ties a per-image failure to its file name
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Summary reports a whole batch run
type Summary struct {
	OutputDir string
	// Empty is set when the input directory held no files at all
	Empty     bool
	Processed int
	Skipped   int
	Failed    int
	Written   int
	Errors    []FileError
}

// Inspect classifies an image size
func (n *Normalizer) Inspect(width, height int) (classify.ImageInfo, error) {
	return n.planner.Classifier().Inspect(width, height)
}

// Plan returns the variants an image of the given size would produce
func (n *Normalizer) Plan(name string, width, height int) (planner.Plan, error) {
	return n.planner.Plan(name, width, height)
}

// ProcessFile opens one image, plans its variants and writes them below
// outputDir. The image is released before returning.
func (n *Normalizer) ProcessFile(inputPath, outputDir string) (FileResult, error) {
	result := FileResult{Source: inputPath}
	name := utils.BaseName(inputPath)

	h, err := n.processor.Open(inputPath)
	if err != nil {
		return result, fmt.Errorf("failed to load image: %w", err)
	}
	defer h.Close()

	size := h.Size()
	plan, err := n.planner.Plan(name, size.Width, size.Height)
	if err != nil {
		return result, fmt.Errorf("failed to plan variants: %w", err)
	}
	result.Plan = plan

	log := logger.WithFields(logrus.Fields{
		"file":           filepath.Base(inputPath),
		"size":           size.String(),
		"aspect_ratio":   plan.Info.AspectRatio.String(),
		"orientation":    plan.Info.Orientation,
		"classification": plan.Info.Classification,
	})
	log.Info("picture classified")
	for _, warning := range plan.Warnings {
		log.WithError(warning).Warn("crop anchor not found, cropping at center")
	}

	dir := outputDir
	if plan.Subdir {
		dir = filepath.Join(outputDir, name)
		if err := utils.CreateDir(dir); err != nil {
			return result, fmt.Errorf("failed to create directory for %s: %w", name, err)
		}
	}

	for _, spec := range plan.Variants {
		path, err := n.processor.Apply(h, spec, dir)
		if err != nil {
			return result, fmt.Errorf("failed to write %s: %w", spec.Filename, err)
		}
		result.Written = append(result.Written, path)
		log.WithField("output", path).Debug("variant written")
	}

	return result, nil
}

// RunBatch processes every matching file directly inside inputDir into a new
// timestamped directory below outputRoot. A failing image is logged and
// counted; it does not stop the batch. An existing output directory does.
func (n *Normalizer) RunBatch(inputDir, outputRoot string) (Summary, error) {
	var summary Summary

	files, err := utils.ListFiles(inputDir)
	if err != nil {
		return summary, err
	}
	if len(files) == 0 {
		logger.WithField("dir", inputDir).Info(apperrors.NewEmptyDirectoryNotice(inputDir).Message)
		summary.Empty = true
		return summary, nil
	}

	outputDir := filepath.Join(outputRoot, n.batch.OutputPrefix+n.batch.Clock().Format(n.batch.TimestampLayout))
	if err := utils.CreateDir(outputDir); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return summary, apperrors.NewOutputExistsError(outputDir, err)
		}
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}
	summary.OutputDir = outputDir
	logger.WithFields(logrus.Fields{"input": inputDir, "output": outputDir}).Info("processing pictures")

	for _, file := range files {
		if !utils.HasExtension(file, n.batch.InputExtensions) {
			summary.Skipped++
			continue
		}

		result, err := n.ProcessFile(filepath.Join(inputDir, file), outputDir)
		summary.Written += len(result.Written)
		if err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, FileError{File: file, Err: err})
			logger.WithError(err).WithField("file", file).Error("picture skipped")
			continue
		}
		summary.Processed++
	}

	logger.WithFields(logrus.Fields{
		"processed": summary.Processed,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
		"written":   summary.Written,
	}).Info("batch finished")

	return summary, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
