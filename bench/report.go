package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// csvHeader names the report columns. iterations holds Record.Ops.
var csvHeader = []string{"dataset", "text_len", "pattern_len", "position", "iterations", "time_ms", "run_id"}

// WriteCSV writes recs as CSV with a header row.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.Dataset,
			strconv.Itoa(rec.TextLen),
			strconv.Itoa(rec.PatternLen),
			strconv.Itoa(rec.Position),
			strconv.Itoa(rec.Ops),
			strconv.FormatFloat(millis(rec.Elapsed), 'f', 4, 64),
			rec.RunID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the report to path, creating its directory.
func WriteCSVFile(path string, recs []Record) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := WriteCSV(f, recs); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Summary aggregates a batch. OpsPerSymbol is total ops divided by the
// total of text and pattern lengths; it stays bounded by a small constant
// when the search is linear.
type Summary struct {
	Datasets     int
	Found        int
	TotalOps     int
	TotalSymbols int
	MaxOpsRatio  float64
	OpsPerSymbol float64
}

// Summarize computes the Summary of recs.
func Summarize(recs []Record) Summary {
	var s Summary
	for _, rec := range recs {
		s.Datasets++
		if rec.Position >= 0 {
			s.Found++
		}
		size := rec.TextLen + rec.PatternLen
		s.TotalOps += rec.Ops
		s.TotalSymbols += size
		if size > 0 {
			if r := float64(rec.Ops) / float64(size); r > s.MaxOpsRatio {
				s.MaxOpsRatio = r
			}
		}
	}
	if s.TotalSymbols > 0 {
		s.OpsPerSymbol = float64(s.TotalOps) / float64(s.TotalSymbols)
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("datasets", s.Datasets),
		slog.Int("found", s.Found),
		slog.Int("total_ops", s.TotalOps),
		slog.Int("total_symbols", s.TotalSymbols),
		slog.Float64("ops_per_symbol", s.OpsPerSymbol),
		slog.Float64("max_ops_ratio", s.MaxOpsRatio),
	)
}
