package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/telluris/satdiff/internal/batch"
	"github.com/telluris/satdiff/internal/config"
	"github.com/telluris/satdiff/internal/source"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	fThreshold int
	fConfig    string
	fAOI       string
	fScenes    string
	fDemo      bool
	fRegions   bool
	fExtras    bool
	fVerbose   bool
	fVersion   bool
)

func main() {
	flag.IntVar(&fThreshold, "threshold", -1, "pixel difference threshold 0-255 (default: from config)")
	flag.StringVar(&fConfig, "config", "", "path to a YAML configuration file")
	flag.StringVar(&fAOI, "aoi", "", "registry AOI name to attach to the run")
	flag.StringVar(&fScenes, "scenes", "", "composite a directory of date-stamped scenes instead of reading two rasters")
	flag.BoolVar(&fDemo, "demo", false, "run on a synthetic pair instead of reading rasters")
	flag.BoolVar(&fRegions, "regions", false, "also write regions.json")
	flag.BoolVar(&fExtras, "extras", false, "also write overlay.png and heatmap.png")
	flag.BoolVar(&fVerbose, "v", false, "enable debug logging")
	flag.BoolVar(&fVersion, "version", false, "print version information")
	flag.Usage = usage
	flag.Parse()

	if fVersion {
		fmt.Printf("satdiff %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Logs go to stderr; stdout carries only the run summary.
	level := zerolog.InfoLevel
	if fVerbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	cfg := config.Default()
	if fConfig != "" {
		var err error
		if cfg, err = config.Load(fConfig); err != nil {
			return err
		}
	}
	threshold := cfg.ChangeThreshold
	if fThreshold >= 0 {
		threshold = fThreshold
	}

	var aoi *config.AOI
	if fAOI != "" {
		entry, ok := cfg.AOIs[fAOI]
		if !ok {
			return fmt.Errorf("unknown aoi %q, not in the registry", fAOI)
		}
		aoi = &entry
	}

	if fDemo && fScenes != "" {
		return fmt.Errorf("-demo and -scenes are mutually exclusive")
	}

	var src source.Source
	var outDir string
	args := flag.Args()
	switch {
	case fDemo:
		if len(args) != 1 {
			return fmt.Errorf("demo mode expects <outdir>, got %d arguments", len(args))
		}
		src = source.Synthetic{}
		outDir = args[0]
	case fScenes != "":
		if len(args) != 1 {
			return fmt.Errorf("scene mode expects <outdir>, got %d arguments", len(args))
		}
		src = source.SceneDir{Dir: fScenes}
		outDir = args[0]
	default:
		if len(args) != 3 {
			return fmt.Errorf("expected <before> <after> <outdir>, got %d arguments", len(args))
		}
		src = source.FileSource{BeforePath: args[0], AfterPath: args[1]}
		outDir = args[2]
	}

	stats, err := batch.New(log).Run(src, batch.Options{
		OutDir:    outDir,
		Threshold: threshold,
		ThumbSize: cfg.ThumbnailSize,
		Regions:   fRegions,
		Extras:    fExtras,
		AOI:       aoi,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Change pixels : %d\n", stats.ChangedPixels)
	fmt.Printf("Change area %% : %.2f%%\n", stats.ChangePct)
	fmt.Printf("Outputs saved : %s\n", outDir)
	return nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "satdiff - before/after change detection for satellite composites")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  satdiff [flags] <before> <after> <outdir>")
	fmt.Fprintln(out, "  satdiff [flags] -scenes <dir> <outdir>")
	fmt.Fprintln(out, "  satdiff [flags] -demo <outdir>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Reads two single-band rasters (TIFF, PNG, JPEG or GIF), runs the")
	fmt.Fprintln(out, "change-detection pipeline and writes four thumbnails plus meta.json")
	fmt.Fprintln(out, "to the output directory.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}
