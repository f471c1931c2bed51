package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"rotlab/internal/batch"
	"rotlab/internal/config"
	"rotlab/internal/logging"
	"rotlab/internal/mathutil"
	"rotlab/internal/output"
	"rotlab/internal/raster"
	"rotlab/internal/scene"
	"rotlab/internal/texture"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneName := flag.String("scene", "", "Scene to spin: triangle or cube (default: triangle)")
	axis := flag.String("axis", "", "Rotation axis x, y or z (default: the scene's own)")
	frames := flag.Int("frames", 0, "Number of frames (default: 72)")
	step := flag.Float64("step", 0, "Degrees per RotateLeft step (default: 5)")
	format := flag.String("format", "", "Frame format: webp, png, tiff or svg (default: webp)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	texPath := flag.String("texture", "", "Texture image (tga, png, jpeg, bmp, webp)")
	debug := flag.Bool("debug", false, "Debug logging")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:     *sceneName,
		Axis:      *axis,
		Step:      *step,
		Frames:    *frames,
		Format:    *format,
		OutputDir: *outputDir,
		Texture:   *texPath,
		Workers:   *workers,
		Debug:     *debug,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := logging.Setup(cfg.Debug)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := run(ctx, log, cfg)
	stop()
	_ = log.Sync()
	os.Exit(code)
}

func run(ctx context.Context, log *zap.Logger, cfg config.Config) int {
	sc, err := scene.ByName(cfg.Scene)
	if err != nil {
		log.Error("Bad scene", zap.Error(err))
		return 2
	}
	sc.SetStep(cfg.StepDegrees)
	if cfg.Axis != "" {
		a, err := mathutil.ParseAxis(cfg.Axis)
		if err != nil {
			log.Error("Bad axis", zap.Error(err))
			return 2
		}
		sc.SetAxis(a)
	}
	f, err := output.ParseFormat(cfg.Format)
	if err != nil {
		log.Error("Bad format", zap.Error(err))
		return 2
	}

	opts := raster.DefaultOptions()
	opts.Width, opts.Height = cfg.Width, cfg.Height
	opts.Supersample = cfg.Supersample
	if cfg.Light {
		lc := raster.DefaultLightConfig()
		opts.Light = &lc
	}
	if cfg.Texture != "" {
		tex, err := texture.NewCache().Get(cfg.Texture)
		if err != nil {
			log.Error("Texture load failed", zap.Error(err))
			return 1
		}
		opts.Texture = tex
		log.Debug("Texture loaded",
			zap.String("path", cfg.Texture),
			zap.Int("width", tex.Bounds().Dx()),
			zap.Int("height", tex.Bounds().Dy()))
	}

	runID := uuid.NewString()

	start := time.Now()
	results, err := batch.Run(ctx, batch.Config{
		RunID:      runID,
		OutputDir:  cfg.OutputDir,
		Frames:     cfg.Frames,
		Format:     f,
		Render:     opts,
		ThumbSize:  cfg.ThumbSize,
		Animate:    cfg.Animate,
		FrameDelay: time.Duration(cfg.FrameMS) * time.Millisecond,
		Workers:    cfg.Workers,
	}, sc)
	if err != nil {
		log.Error("Run failed", zap.Error(err))
		return 1
	}

	// Count results
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, runID, results); err != nil {
		log.Warn("Manifest write failed", zap.Error(err))
	}

	log.Info("Rendered",
		zap.Int("ok", len(results)-failed),
		zap.Int("failed", failed),
		zap.Float32("finalAngle", sc.Angle()),
		zap.String("output", cfg.OutputDir),
		zap.String("run", runID),
		zap.String("manifest", manifestPath),
		zap.Duration("elapsed", time.Since(start)))

	if failed > 0 {
		return 1
	}
	return 0
}
