package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	aspectnormalizer "github.com/menta2k/aspect-normalizer"
	"github.com/menta2k/aspect-normalizer/internal/config"
	"github.com/menta2k/aspect-normalizer/internal/logger"
)

func main() {
	var in, out, configPath, logLevel string
	var showVersion bool

	flag.StringVar(&in, "in", ".", "directory holding the pictures to normalize")
	flag.StringVar(&out, "out", ".", "directory in which the timestamped output directory is created")
	flag.StringVar(&configPath, "config", "", "optional YAML or JSON configuration file")
	flag.StringVar(&logLevel, "log-level", "", "override the configured log level (debug|info|warn|error)")
	flag.BoolVar(&showVersion, "version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-in dir] [-out dir] [-config file.yaml]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(aspectnormalizer.GetVersion())
		return
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := logger.Setup(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}); err != nil {
		log.Fatal(err)
	}

	plannerConfig, err := cfg.PlannerConfig()
	if err != nil {
		log.Fatal(err)
	}
	processingOptions, err := cfg.ProcessingOptions()
	if err != nil {
		log.Fatal(err)
	}

	batch := aspectnormalizer.DefaultBatchOptions()
	batch.InputExtensions = cfg.InputExtensions
	batch.OutputPrefix = cfg.Output.Prefix
	batch.TimestampLayout = cfg.Output.TimestampLayout

	normalizer, err := aspectnormalizer.NewWithConfig(plannerConfig, processingOptions, batch)
	if err != nil {
		log.Fatal(err)
	}

	summary, err := normalizer.RunBatch(in, out)
	if err != nil {
		logger.WithError(err).Fatal("batch aborted")
	}
	if summary.Empty {
		return
	}

	logger.WithFields(logrus.Fields{
		"output":    summary.OutputDir,
		"processed": summary.Processed,
		"failed":    summary.Failed,
	}).Info("done")
}
