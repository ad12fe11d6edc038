package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mhr3/kmp/ascii"
	"github.com/mhr3/kmp/internal/bytealg"
	"github.com/mhr3/kmp/kmp"
	"github.com/mhr3/kmp/utf8"
)

// ErrMismatch is returned in verify mode when KMP and the brute-force scan
// disagree on a position.
var ErrMismatch = errors.New("position differs from reference scan")

// Record is one measurement row.
type Record struct {
	Dataset    string
	TextLen    int
	PatternLen int
	// Position is the first match or kmp.NotFound.
	Position int
	// Ops is the kmp operation count, table construction included.
	Ops int
	// Elapsed covers the scan only; table construction is excluded.
	Elapsed time.Duration
	RunID   string
}

// Runner searches every dataset of a batch.
type Runner struct {
	cfg    Config
	logger *slog.Logger
}

// NewRunner returns a Runner for cfg. A nil logger discards output.
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run processes datasets on cfg.Workers goroutines and returns the records
// in input order. Datasets with a missing file are logged and skipped.
// Cancelling ctx stops dispatching new datasets; searches already running
// finish first.
func (r *Runner) Run(ctx context.Context, datasets []Dataset) ([]Record, error) {
	if len(datasets) == 0 {
		return nil, ErrNoDatasets
	}
	runID := uuid.NewString()

	type outcome struct {
		rec Record
		ok  bool
		err error
	}
	results := make([]outcome, len(datasets))

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := r.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(datasets) {
		workers = len(datasets)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rec, err := r.runOne(datasets[i])
				if errors.Is(err, ErrIncompletePair) {
					r.logger.Warn("skipping dataset", "dataset", datasets[i].ID, "err", err)
					continue
				}
				rec.RunID = runID
				results[i] = outcome{rec: rec, ok: err == nil, err: err}
			}
		}()
	}

dispatch:
	for i := range datasets {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	var recs []Record
	var errs []error
	for _, o := range results {
		if o.err != nil {
			errs = append(errs, o.err)
		}
		if o.ok {
			recs = append(recs, o.rec)
			r.logRecord(o.rec)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return recs, errors.Join(errs...)
}

func (r *Runner) logRecord(rec Record) {
	r.logger.Info("dataset done",
		"dataset", rec.Dataset,
		"text_len", rec.TextLen,
		"pattern_len", rec.PatternLen,
		"position", rec.Position,
		"iterations", rec.Ops,
		"time_ms", millis(rec.Elapsed),
	)
}

func (r *Runner) runOne(ds Dataset) (Record, error) {
	text, pattern, err := Load(ds, r.cfg.Trim)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Dataset: ds.ID}
	var find func() kmp.Result
	var want func() int

	if r.cfg.Runes {
		if !utf8.ValidString(text) || !utf8.ValidString(pattern) {
			r.logger.Warn("invalid UTF-8, bad bytes search as U+FFFD", "dataset", ds.ID)
		}
		tr, pr := utf8.Runes(text), utf8.Runes(pattern)
		m := kmp.NewSliceMatcher(pr)
		rec.TextLen, rec.PatternLen = len(tr), len(pr)
		find = func() kmp.Result { return m.Find(tr) }
		want = func() int { return bytealg.IndexFunc(tr, pr) }
	} else {
		m := kmp.NewMatcher(pattern, !r.cfg.CaseInsensitive)
		rec.TextLen, rec.PatternLen = len(text), len(pattern)
		find = func() kmp.Result { return m.Find(text) }
		want = func() int {
			if r.cfg.CaseInsensitive {
				return ascii.IndexFold(text, pattern)
			}
			return bytealg.Index(text, pattern)
		}
	}

	res, elapsed := Measure(find, r.cfg.Repeat)
	rec.Position, rec.Ops, rec.Elapsed = res.Pos, res.Ops, elapsed

	if r.cfg.Verify {
		w := want()
		if rec.PatternLen == 0 {
			w = kmp.NotFound
		}
		if w != rec.Position {
			return rec, fmt.Errorf("dataset %s: %w: kmp=%d reference=%d", ds.ID, ErrMismatch, rec.Position, w)
		}
		if r.cfg.CaseInsensitive && !r.cfg.Runes && rec.Position >= 0 {
			end := rec.Position + len(pattern)
			if end > len(text) || !ascii.EqualFold(text[rec.Position:end], pattern) {
				return rec, fmt.Errorf("dataset %s: %w: kmp=%d does not fold-equal the pattern", ds.ID, ErrMismatch, rec.Position)
			}
		}
	}
	return rec, nil
}

// Measure calls find repeat times and returns its result together with
// the fastest observed duration. The timer wraps only the call, so any
// preparation done before Measure is not counted.
func Measure(find func() kmp.Result, repeat int) (kmp.Result, time.Duration) {
	if repeat < 1 {
		repeat = 1
	}
	var res kmp.Result
	best := time.Duration(-1)
	for i := 0; i < repeat; i++ {
		start := time.Now()
		res = find()
		if d := time.Since(start); best < 0 || d < best {
			best = d
		}
	}
	return res, best
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
