package bench

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNoDatasets is returned when discovery finds nothing to run.
	ErrNoDatasets = errors.New("no datasets found")
	// ErrIncompletePair marks a dataset whose text or pattern file is missing.
	ErrIncompletePair = errors.New("dataset is missing its text or pattern file")
)

// Dataset is one (text, pattern) pair of files.
type Dataset struct {
	ID      string `toml:"id" yaml:"id"`
	Text    string `toml:"text" yaml:"text"`
	Pattern string `toml:"pattern" yaml:"pattern"`
}

// Resolve returns the pairs the configuration describes: the explicit
// list when present, otherwise the result of Discover.
func (c Config) Resolve() ([]Dataset, error) {
	if len(c.Datasets) == 0 {
		return Discover(c.DataDir, c.TextGlob, c.PatternGlob)
	}
	out := make([]Dataset, len(c.Datasets))
	for i, ds := range c.Datasets {
		if !filepath.IsAbs(ds.Text) {
			ds.Text = filepath.Join(c.DataDir, ds.Text)
		}
		if !filepath.IsAbs(ds.Pattern) {
			ds.Pattern = filepath.Join(c.DataDir, ds.Pattern)
		}
		out[i] = ds
	}
	return out, nil
}

// Discover pairs files in dir matching textGlob with files matching
// patternGlob by the text captured by the '*'. A file whose partner is
// missing still yields a Dataset, so the runner can report it. Datasets
// are ordered by numeric id when ids are numbers, else lexically.
func Discover(dir, textGlob, patternGlob string) ([]Dataset, error) {
	tpre, tsuf, _ := strings.Cut(textGlob, "*")
	ppre, psuf, _ := strings.Cut(patternGlob, "*")

	// dir is read literally; only the file name is matched against the
	// globs, so directories named like "data[1]" still work.
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	byID := make(map[string]*Dataset)
	collect := func(glob, pre, suf string, set func(*Dataset, string)) error {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			ok, err := filepath.Match(glob, name)
			if err != nil {
				return fmt.Errorf("glob %s: %w", glob, err)
			}
			if !ok {
				continue
			}
			id := strings.TrimSuffix(strings.TrimPrefix(name, pre), suf)
			if id == "" {
				continue
			}
			ds, found := byID[id]
			if !found {
				ds = &Dataset{ID: id}
				byID[id] = ds
			}
			set(ds, filepath.Join(dir, name))
		}
		return nil
	}

	if err := collect(textGlob, tpre, tsuf, func(ds *Dataset, p string) { ds.Text = p }); err != nil {
		return nil, err
	}
	if err := collect(patternGlob, ppre, psuf, func(ds *Dataset, p string) { ds.Pattern = p }); err != nil {
		return nil, err
	}
	if len(byID) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDatasets, dir)
	}

	out := make([]Dataset, 0, len(byID))
	for id, ds := range byID {
		if ds.Text == "" {
			ds.Text = filepath.Join(dir, tpre+id+tsuf)
		}
		if ds.Pattern == "" {
			ds.Pattern = filepath.Join(dir, ppre+id+psuf)
		}
		out = append(out, *ds)
	}
	sort.Slice(out, func(i, j int) bool {
		return idLess(out[i].ID, out[j].ID)
	})
	return out, nil
}

func idLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

// Load reads both files of ds. Missing files are reported as
// ErrIncompletePair.
func Load(ds Dataset, trim bool) (text, pattern string, err error) {
	read := func(path string) (string, error) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("dataset %s: %w: %s", ds.ID, ErrIncompletePair, path)
		}
		if err != nil {
			return "", fmt.Errorf("dataset %s: %w", ds.ID, err)
		}
		s := string(data)
		if trim {
			s = strings.TrimSpace(s)
		}
		return s, nil
	}

	if text, err = read(ds.Text); err != nil {
		return "", "", err
	}
	if pattern, err = read(ds.Pattern); err != nil {
		return "", "", err
	}
	return text, pattern, nil
}
