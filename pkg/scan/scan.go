package scan

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/mdnote/pkg/fsutil"
	"github.com/yaklabco/mdnote/pkg/outline"
)

// Scanner analyzes many files with a shared analyzer.
type Scanner struct {
	analyzer *outline.Analyzer
}

// New returns a Scanner using analyzer.
func New(analyzer *outline.Analyzer) *Scanner {
	return &Scanner{analyzer: analyzer}
}

// Run discovers files and analyzes them on a pool of opts.Jobs workers.
// Outcomes are returned in discovery order whatever the completion order.
func (s *Scanner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Totals.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	work := make(chan int)
	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				outcomes[i] = s.analyze(ctx, files[i])
				done[i] = true
			}
		}()
	}

feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case work <- i:
		}
	}
	close(work)
	wg.Wait()

	for i, outcome := range outcomes {
		if done[i] {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("scan cancelled: %w", err)
	}
	return result, nil
}

func (s *Scanner) analyze(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	stats := s.analyzer.Analyze(string(data))
	outcome.Stats = &stats
	return outcome
}
