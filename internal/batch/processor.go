package batch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"rotlab/internal/logging"
	"rotlab/internal/output"
	"rotlab/internal/postprocess"
	"rotlab/internal/raster"
	"rotlab/internal/scene"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnimationFile is written next to the frames when Config.Animate is set.
const AnimationFile = "spin.webp"

// Config holds all shared resources for a batch run.
type Config struct {
	RunID      string // generated when empty
	OutputDir  string
	Frames     int
	Format     output.Format
	Render     raster.Options // Width/Height are the final frame size
	ThumbSize  int            // 0 disables thumbnails
	Animate    bool
	FrameDelay time.Duration
	Workers    int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame    int
	Angle    float32
	File     string
	Thumb    string
	Checksum uint64
	Success  bool
	Error    string
}

// Run steps sc once per frame, RotateLeft between frames, and renders the
// snapshots on a worker pool. Per-frame failures are reported in the results;
// the error is non-nil only for setup failures or cancellation.
func Run(ctx context.Context, cfg Config, sc *scene.Scene) ([]Result, error) {
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	log, ctx := logging.FromWithFields(ctx, zap.String("run", cfg.RunID))
	log, ctx = logging.SubFrom(ctx, "batch")

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if cfg.ThumbSize > 0 {
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, "thumbs"), 0755); err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
	}

	// Snapshots are taken in order; each Geometry is immutable once returned.
	total := cfg.Frames
	geoms := make([]scene.Geometry, total)
	for i := 0; i < total; i++ {
		if i > 0 {
			sc.Apply(scene.RotateLeft)
		}
		geoms[i] = sc.Geometry()
	}

	results := make([]Result, total)
	for i, g := range geoms {
		results[i] = Result{Frame: i, Angle: g.Angle, Error: "not rendered"}
	}
	var frames []image.Image
	if cfg.Animate {
		frames = make([]image.Image, total)
	}
	var processed atomic.Int64

	start := time.Now()
	log.Info("Starting run",
		zap.String("scene", sc.Name()),
		zap.Stringer("axis", sc.Axis()),
		zap.Int("frames", total),
		zap.String("format", string(cfg.Format)),
		zap.Int("workers", cfg.Workers))

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("Progress",
						zap.Int64("done", p),
						zap.Int("total", total),
						zap.Float64("framesPerSec", float64(p)/elapsed))
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				var img image.Image
				results[idx], img = processFrame(cfg, idx, geoms[idx])
				if frames != nil {
					frames[idx] = img
				}
				if !results[idx].Success {
					log.Warn("Frame failed", zap.Int("frame", idx), zap.String("error", results[idx].Error))
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	var cancelled error
send:
	for i := range geoms {
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break send
		case frameChan <- i:
		}
	}
	close(frameChan)

	wg.Wait()
	close(done)

	if cancelled != nil {
		log.Warn("Run cancelled", zap.Int64("done", processed.Load()), zap.Error(cancelled))
		return results, fmt.Errorf("batch: %w", cancelled)
	}

	if cfg.Animate {
		if err := writeAnimation(cfg, frames); err != nil {
			return results, err
		}
	}

	log.Info("Run complete", zap.Int("frames", total), zap.Duration("elapsed", time.Since(start)))
	return results, nil
}

func processFrame(cfg Config, idx int, g scene.Geometry) (Result, image.Image) {
	res := Result{Frame: idx, Angle: g.Angle}

	var buf bytes.Buffer
	var img *image.NRGBA
	if cfg.Format.IsRaster() || cfg.ThumbSize > 0 || cfg.Animate {
		img = raster.RenderGeometry(g, cfg.Render)
		if cfg.Render.Supersample > 1 {
			img = postprocess.Downsample(img, cfg.Render.Width, cfg.Render.Height)
		}
	}

	var err error
	if cfg.Format.IsRaster() {
		err = output.Encode(&buf, img, cfg.Format)
	} else {
		err = output.EncodeSVG(&buf, g, cfg.Render)
	}
	if err != nil {
		res.Error = err.Error()
		return res, nil
	}

	res.File = fmt.Sprintf("frame_%04d%s", idx, cfg.Format.Ext())
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, res.File), buf.Bytes(), 0644); err != nil {
		res.Error = err.Error()
		return res, nil
	}
	res.Checksum = xxhash.Sum64(buf.Bytes())

	if cfg.ThumbSize > 0 {
		thumb := filepath.Join("thumbs", fmt.Sprintf("frame_%04d.png", idx))
		if err := writePNG(filepath.Join(cfg.OutputDir, thumb), postprocess.Thumbnail(img, cfg.ThumbSize)); err != nil {
			res.Error = fmt.Sprintf("thumbnail: %v", err)
			return res, nil
		}
		res.Thumb = thumb
	}

	res.Success = true
	if img == nil {
		return res, nil
	}
	return res, img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAnimation(cfg Config, frames []image.Image) error {
	kept := frames[:0:0]
	for _, img := range frames {
		if img != nil {
			kept = append(kept, img)
		}
	}
	f, err := os.Create(filepath.Join(cfg.OutputDir, AnimationFile))
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if err := output.EncodeAnimation(f, kept, cfg.FrameDelay); err != nil {
		f.Close()
		return fmt.Errorf("batch: %w", err)
	}
	return f.Close()
}
