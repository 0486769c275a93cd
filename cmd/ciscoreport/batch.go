package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"ciscoreport/logger"
	"ciscoreport/model"
	"ciscoreport/parser"
)

type batch struct {
	*logger.Logger

	parser      *parser.Parser
	workers     int
	maxFileSize int64
}

func newBatch(log *logger.Logger, cfg config) *batch {
	return &batch{
		Logger:      log.With("run", uuid.NewString()),
		parser:      parser.New(cfg.parserOptions()),
		workers:     cfg.Workers,
		maxFileSize: cfg.MaxFileSize,
	}
}

// run parses paths concurrently. Results keep the order of paths; the first
// failure cancels files that have not started yet.
func (b *batch) run(ctx context.Context, paths []string) ([]model.File, error) {
	start := time.Now()
	files := make([]model.File, len(paths))

	p := pool.New().WithMaxGoroutines(b.workers).WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := b.parseFile(path)
			if err != nil {
				return err
			}
			files[i] = model.File{Name: filepath.Base(path), Report: report}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	b.Infof("parsed %d file(s) in %s", len(files), time.Since(start).Round(time.Millisecond))
	return files, nil
}

func (b *batch) parseFile(path string) (*model.Report, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.Size() > b.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, filepath.Base(path), fi.Size(), b.maxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	start := time.Now()
	report, err := b.parser.ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if report.General.Hostname == "" {
		b.Warning("no hostname found, file may not be a running-config", "file", path)
	}

	b.Debug("parsed file",
		"file", path,
		"hostname", report.General.Hostname,
		"vlans", len(report.Vlans),
		"svis", len(report.SVIs),
		"ports", len(report.Ports),
		"took", time.Since(start),
	)
	return report, nil
}
