package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var desiredExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// ProcessFile runs a single scenario file.
func ProcessFile(runner Runner, path string) ([]Outcome, error) {
	return runner.RunFile(path)
}

// ProcessFiles runs every path in order and concatenates the outcomes.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	runner Runner,
	paths []string,
	processor func(Runner, string) ([]Outcome, error),
) ([]Outcome, error) {
	var all []Outcome
	for _, path := range paths {
		outcomes, err := ProcessPath(ctx, logger, runner, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, outcomes...)
	}
	return all, nil
}

type fileResult struct {
	path     string
	outcomes []Outcome
	err      error
}

// ProcessPath runs path directly when it is a file. A directory is walked
// for .yaml/.yml files which are run concurrently, at most NumCPU at a
// time. A file that cannot be run inside a directory becomes a KindFile
// outcome carrying the error, so one bad file does not hide the others.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	runner Runner,
	path string,
	processor func(Runner, string) ([]Outcome, error),
) ([]Outcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return processor(runner, path)
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	sort.Strings(files)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Finish()

	results := make(chan fileResult, len(files))
	sem := make(chan struct{}, runtime.NumCPU())

	scheduled := 0
schedule:
	for _, filePath := range files {
		select {
		case <-ctx.Done():
			break schedule
		case sem <- struct{}{}:
		}
		scheduled++
		go func(fp string) {
			defer func() { <-sem }()
			outcomes, err := processor(runner, fp)
			results <- fileResult{path: fp, outcomes: outcomes, err: err}
		}(filePath)
	}

	byFile := make(map[string]fileResult, scheduled)
	for range scheduled {
		r := <-results
		byFile[r.path] = r
		_ = bar.Add(1)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// keep output stable regardless of completion order
	var outcomes []Outcome
	for _, fp := range files {
		r := byFile[fp]
		if r.err != nil {
			if logger != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(r.err))
			}
			outcomes = append(outcomes, Outcome{File: fp, Kind: KindFile, Name: filepath.Base(fp), Err: r.err.Error()})
			continue
		}
		outcomes = append(outcomes, r.outcomes...)
	}
	return outcomes, nil
}
