// Command kmpbench searches a directory of text/pattern pairs with KMP and
// writes one CSV row of measurements per pair.
//
//	kmpbench --data vhodnie --out results/results.csv
//	kmpbench --config bench.toml --verify --repeat 5
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/mhr3/kmp/bench"
	"github.com/mhr3/kmp/internal/sysinfo"
)

type cmd struct {
	f        *flag.FlagSet
	config   string
	logLevel string
	watch    bool
	cfg      bench.Config
}

func newCommand() *cmd {
	c := &cmd{
		f:   flag.NewFlagSet("kmpbench", flag.ContinueOnError),
		cfg: bench.DefaultConfig(),
	}
	c.f.StringVarP(&c.config, "config", "c", "", "TOML or YAML manifest")
	c.f.StringVar(&c.logLevel, "log-level", "info", "debug, info, warn or error")
	c.f.BoolVarP(&c.watch, "watch", "w", false, "rerun whenever the data dir changes")

	c.f.StringVarP(&c.cfg.DataDir, "data", "d", c.cfg.DataDir, "directory holding the datasets")
	c.f.StringVar(&c.cfg.TextGlob, "text-glob", c.cfg.TextGlob, "file name pattern of text files")
	c.f.StringVar(&c.cfg.PatternGlob, "pattern-glob", c.cfg.PatternGlob, "file name pattern of pattern files")
	c.f.StringVarP(&c.cfg.Output, "out", "o", c.cfg.Output, "CSV report path, empty to skip")
	c.f.IntVarP(&c.cfg.Workers, "workers", "j", c.cfg.Workers, "datasets searched in parallel")
	c.f.IntVarP(&c.cfg.Repeat, "repeat", "r", c.cfg.Repeat, "time each scan N times and keep the fastest")
	c.f.BoolVarP(&c.cfg.CaseInsensitive, "ignore-case", "i", c.cfg.CaseInsensitive, "fold ASCII letters")
	c.f.BoolVar(&c.cfg.Runes, "runes", c.cfg.Runes, "search code points instead of bytes")
	c.f.BoolVar(&c.cfg.Trim, "trim", c.cfg.Trim, "strip surrounding whitespace from files")
	c.f.BoolVar(&c.cfg.Verify, "verify", c.cfg.Verify, "cross-check positions with a brute-force scan")
	return c
}

// parse applies args on top of the manifest, so explicit flags win.
func (c *cmd) parse(args []string) error {
	if err := c.f.Parse(args); err != nil {
		return err
	}
	if c.config == "" {
		return nil
	}
	fileCfg, err := bench.LoadConfig(c.config)
	if err != nil {
		return err
	}
	flagCfg := c.cfg
	c.cfg = fileCfg
	c.f.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			c.cfg.DataDir = flagCfg.DataDir
		case "text-glob":
			c.cfg.TextGlob = flagCfg.TextGlob
		case "pattern-glob":
			c.cfg.PatternGlob = flagCfg.PatternGlob
		case "out":
			c.cfg.Output = flagCfg.Output
		case "workers":
			c.cfg.Workers = flagCfg.Workers
		case "repeat":
			c.cfg.Repeat = flagCfg.Repeat
		case "ignore-case":
			c.cfg.CaseInsensitive = flagCfg.CaseInsensitive
		case "runes":
			c.cfg.Runes = flagCfg.Runes
		case "trim":
			c.cfg.Trim = flagCfg.Trim
		case "verify":
			c.cfg.Verify = flagCfg.Verify
		}
	})
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(s)))
	return l, err
}

func (c *cmd) runOnce(ctx context.Context, logger *slog.Logger) error {
	datasets, err := c.cfg.Resolve()
	if err != nil {
		return err
	}
	recs, runErr := bench.NewRunner(c.cfg, logger).Run(ctx, datasets)

	if c.cfg.Output != "" && len(recs) > 0 {
		if err := bench.WriteCSVFile(c.cfg.Output, recs); err != nil {
			return err
		}
		logger.Info("report written", "path", c.cfg.Output, "rows", len(recs))
	}
	logger.Info("summary", "batch", bench.Summarize(recs))
	return runErr
}

func run(args []string) error {
	c := newCommand()
	if err := c.parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	level, err := parseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := c.cfg.Validate(); err != nil {
		return err
	}
	logger.Info("starting", "platform", sysinfo.Platform(), "workers", c.cfg.Workers, "data", c.cfg.DataDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if c.watch {
		return bench.Watch(ctx, c.cfg.WatchDirs(), bench.DefaultDebounce, logger, func(ctx context.Context) error {
			return c.runOnce(ctx, logger)
		})
	}
	return c.runOnce(ctx, logger)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "kmpbench:", err)
		os.Exit(1)
	}
}
