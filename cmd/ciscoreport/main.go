package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ciscoreport/generator"
	"ciscoreport/logger"
	"ciscoreport/model"
)

func main() {
	opts, err := parseCLI(os.Args[1:])
	if err != nil {
		if isHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Println("Error:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options) error {
	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}
	cfg.applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return err
	}

	logger.Level.SetByName(cfg.LogLevel)
	log := logger.New()

	format, err := generator.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	paths, err := expandInputs(opts.Args.Files)
	if err != nil {
		return err
	}
	if err := validateFiles(paths, cfg.MaxFiles); err != nil {
		return err
	}
	log.Debugf("parsing %d file(s) with %d worker(s)", len(paths), cfg.Workers)

	files, err := newBatch(log, cfg).run(ctx, paths)
	if err != nil {
		return err
	}

	result, err := generator.Generate(format, selectPage(files, opts.Page))
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(result)
		return err
	}
	if err := os.WriteFile(opts.Output, result, 0644); err != nil {
		return err
	}
	log.Infof("report written to %s", opts.Output)
	return nil
}

// selectPage returns the 1-based page'th file, clamped to the available
// range. Page 0 selects every file.
func selectPage(files []model.File, page int) []model.File {
	if page == 0 || len(files) == 0 {
		return files
	}
	page = min(max(page, 1), len(files))
	return files[page-1 : page]
}
