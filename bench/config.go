// Package bench runs KMP searches over a batch of (text, pattern) datasets
// read from disk and reports one measurement row per dataset.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config controls dataset discovery, searching and reporting.
type Config struct {
	// DataDir holds the dataset files. Relative dataset paths are resolved
	// against it.
	DataDir string `toml:"data_dir" yaml:"data_dir"`
	// TextGlob and PatternGlob name the two halves of a pair. Each must
	// contain exactly one '*', which captures the dataset id.
	TextGlob    string `toml:"text_glob" yaml:"text_glob"`
	PatternGlob string `toml:"pattern_glob" yaml:"pattern_glob"`
	// Datasets lists pairs explicitly. When non-empty, discovery is skipped.
	Datasets []Dataset `toml:"datasets" yaml:"datasets"`

	// Output is the CSV report path. Empty disables the file report.
	Output string `toml:"output" yaml:"output"`

	Workers         int  `toml:"workers" yaml:"workers"`
	Repeat          int  `toml:"repeat" yaml:"repeat"`
	CaseInsensitive bool `toml:"case_insensitive" yaml:"case_insensitive"`
	// Runes searches over Unicode code points instead of bytes.
	Runes bool `toml:"runes" yaml:"runes"`
	// Trim strips leading and trailing whitespace from loaded files.
	Trim bool `toml:"trim" yaml:"trim"`
	// Verify cross-checks every position against a brute-force scan.
	Verify bool `toml:"verify" yaml:"verify"`
}

// DefaultConfig returns the configuration used when no manifest is given.
func DefaultConfig() Config {
	return Config{
		DataDir:     "vhodnie",
		TextGlob:    "text*.txt",
		PatternGlob: "pattern*.txt",
		Output:      filepath.Join("results", "results.csv"),
		Workers:     runtime.GOMAXPROCS(0),
		Repeat:      1,
		Trim:        true,
	}
}

// ConfigError reports a manifest that could not be read or decoded.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var errUnknownFormat = errors.New("unknown manifest format (want .toml, .yaml or .yml)")

// LoadConfig reads a TOML or YAML manifest, chosen by file extension, on
// top of DefaultConfig. Keys absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = errUnknownFormat
	}
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	// Relative data dirs in a manifest are relative to the manifest.
	if cfg.DataDir != "" && !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(filepath.Dir(path), cfg.DataDir)
	}
	return cfg, nil
}

// Validate checks the configuration for values the runner cannot use.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1, got %d", c.Repeat)
	}
	if c.Runes && c.CaseInsensitive {
		return errors.New("case-insensitive search is byte-only and cannot be combined with runes")
	}
	if len(c.Datasets) == 0 {
		if c.DataDir == "" {
			return errors.New("data dir is required when no datasets are listed")
		}
		for _, g := range []string{c.TextGlob, c.PatternGlob} {
			if strings.Count(g, "*") != 1 || strings.ContainsRune(g, filepath.Separator) {
				return fmt.Errorf("glob %q must be a file name with exactly one '*'", g)
			}
		}
	}
	seen := make(map[string]bool, len(c.Datasets))
	for i, ds := range c.Datasets {
		if ds.ID == "" || ds.Text == "" || ds.Pattern == "" {
			return fmt.Errorf("dataset #%d: id, text and pattern are required", i+1)
		}
		if seen[ds.ID] {
			return fmt.Errorf("dataset %q listed twice", ds.ID)
		}
		seen[ds.ID] = true
	}
	return nil
}
