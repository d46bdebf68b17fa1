package internal

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rm-hull/frosted-glass-overlays/internal/img"
	"github.com/rm-hull/frosted-glass-overlays/internal/img/stage"
)

type job struct {
	inputPath  string
	outputPath string
}

type FileError struct {
	Path string
	Err  error
}

type Summary struct {
	Succeeded int
	Failures  []FileError
	Elapsed   time.Duration
}

type Processor struct {
	startTime time.Time
	poolSize  int
	jobs      chan job
	results   chan FileError
	files     []job
	iconPaths []string
	cfg       Config
}

// NewProcessor validates the input path and builds the per-file job list.
// A single-file input yields one job; a directory input yields one job per
// entry, writing alongside the original names under the output directory.
func NewProcessor(cfg Config) (*Processor, error) {
	if cfg.PoolSize < 1 {
		return nil, errors.New("pool size must be at least 1")
	}

	info, err := os.Stat(cfg.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input path %q does not exist", cfg.Input)
		}
		return nil, fmt.Errorf("failed to stat input path %q: %w", cfg.Input, err)
	}

	iconPaths := ListIcons(cfg.IconDir)

	var files []job
	if info.IsDir() {
		entries, err := os.ReadDir(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to read input directory: %w", err)
		}
		if err := os.MkdirAll(cfg.Output, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		files = make([]job, len(entries))
		for i, entry := range entries {
			files[i] = job{
				inputPath:  filepath.Join(cfg.Input, entry.Name()),
				outputPath: filepath.Join(cfg.Output, entry.Name()),
			}
		}
	} else {
		files = []job{{inputPath: cfg.Input, outputPath: cfg.Output}}
	}

	log.Printf("Processing %d file(s) with %d icon(s)", len(files), len(iconPaths))

	return &Processor{
		startTime: time.Now(),
		poolSize:  cfg.PoolSize,
		jobs:      make(chan job),
		results:   make(chan FileError),
		files:     files,
		iconPaths: iconPaths,
		cfg:       cfg,
	}, nil
}

func (p *Processor) DispatchJobs() {
	go func() {
		for _, file := range p.files {
			p.jobs <- file
		}
		close(p.jobs)
	}()
}

func (p *Processor) StartWorkers() {
	for i := 0; i < p.poolSize; i++ {
		go p.worker(i)
	}
}

func (p *Processor) worker(i int) {
	for file := range p.jobs {
		p.results <- FileError{Path: file.inputPath, Err: p.processFile(file)}
	}
	if p.poolSize > 1 {
		log.Printf("Worker %d finished", i)
	}
}

func (p *Processor) processFile(j job) error {
	picture, err := img.Open(j.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	pipeline := []img.PipelineStage{
		&stage.BottomBlurStage{
			Radius:     p.cfg.BlurRadius,
			BandHeight: p.cfg.BandHeight,
		},
		&stage.IconOverlayStage{
			IconPaths:  p.iconPaths,
			BandHeight: p.cfg.BandHeight,
			IconSize:   p.cfg.IconSize,
			Spacing:    p.cfg.Spacing,
		},
		&stage.TimeOverlayStage{
			Text:           p.cfg.TimeText,
			BandHeight:     p.cfg.BandHeight,
			FontSize:       p.cfg.FontSize,
			Padding:        p.cfg.Padding,
			VerticalOffset: p.cfg.VerticalOffset,
			FontPath:       p.cfg.FontPath,
		},
	}

	if err := picture.Pipeline(pipeline...); err != nil {
		return fmt.Errorf("failed to process image pipeline: %w", err)
	}

	if err := picture.Save(j.outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	log.Printf("Enhanced %s -> %s", j.inputPath, j.outputPath)
	return nil
}

// Wait collects one result per job. Per-file failures are logged and
// aggregated; they never abort the batch.
func (p *Processor) Wait() Summary {
	summary := Summary{}
	for range p.files {
		result := <-p.results
		if result.Err != nil {
			log.Printf("Failed to process %s: %v", result.Path, result.Err)
			summary.Failures = append(summary.Failures, result)
		} else {
			summary.Succeeded++
		}
	}
	summary.Elapsed = time.Since(p.startTime)
	log.Printf("Processed %d file(s) in %s (errors=%d)", len(p.files), summary.Elapsed, len(summary.Failures))
	return summary
}
