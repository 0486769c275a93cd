package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	ErrInvalidFileType = errors.New("invalid file")
	ErrTooManyFiles    = errors.New("too many files")
	ErrFileTooLarge    = errors.New("file too large")
	ErrNoFiles         = errors.New("no input files")
)

// expandInputs resolves glob arguments ("configs/**/*.txt"); plain paths pass through.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !hasGlobMeta(arg) {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q: %w", arg, ErrNoFiles)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	return paths, nil
}

// validateFiles checks the whole batch before anything is read. Every file
// with the wrong extension is reported and none of the batch is parsed.
func validateFiles(paths []string, maxFiles int) error {
	if len(paths) > maxFiles {
		return fmt.Errorf("%w: %d given, at most %d allowed", ErrTooManyFiles, len(paths), maxFiles)
	}

	var errs []error
	for _, p := range paths {
		if !hasConfigExt(p) {
			errs = append(errs, fmt.Errorf("%w: %s must be a .txt or .log file", ErrInvalidFileType, filepath.Base(p)))
		}
	}
	return errors.Join(errs...)
}

func hasConfigExt(path string) bool {
	return strings.HasSuffix(path, ".txt") || strings.HasSuffix(path, ".log")
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
