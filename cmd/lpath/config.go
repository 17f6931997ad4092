package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lpath/longest"
)

// Config holds every setting of a solve or compare run. It can be loaded
// from a YAML file (--config); explicitly set flags override file values.
type Config struct {
	Strategy    string        `yaml:"strategy" validate:"required,strategy"`
	Directed    *bool         `yaml:"directed"`
	LogPath     string        `yaml:"log_path"`
	LogLevel    string        `yaml:"log_level" validate:"required,oneof=trace debug info warn error disabled"`
	TimeLimit   time.Duration `yaml:"time_limit" validate:"gte=0s"`
	MetricsFile string        `yaml:"metrics_file"`
	DOTFile     string        `yaml:"dot_file"`
	ReportFile  string        `yaml:"report_file"`
	Input       string        `yaml:"input" validate:"omitempty,input"`
}

// defaultConfig mirrors longest.DefaultOptions on a directed graph.
func defaultConfig() Config {
	directed := true

	return Config{
		Strategy: longest.DefaultOptions().Strategy.String(),
		Directed: &directed,
		LogLevel: "info",
	}
}

// IsDirected reports the graph mode, defaulting to directed.
func (c Config) IsDirected() bool { return c.Directed == nil || *c.Directed }

var configValidate = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := longest.ParseStrategy(fl.Field().String())
		return err == nil
	})
	// "-" is stdin; anything else must name an existing regular file.
	_ = v.RegisterValidation("input", func(fl validator.FieldLevel) bool {
		path := fl.Field().String()
		if path == "-" {
			return true
		}
		fi, err := os.Stat(path)
		return err == nil && fi.Mode().IsRegular()
	})

	return v
}

// loadConfig reads a YAML file over the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// runFlags are the flags of solve and compare. Flags a command does not
// register are never Changed, so resolve leaves their config values alone.
type runFlags struct {
	configPath  string
	strategy    string
	undirected  bool
	logPath     string
	logLevel    string
	timeLimit   time.Duration
	metricsFile string
	dotFile     string
	reportFile  string
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.StringVarP(&f.strategy, "method", "m", "", "search method: BRUTE_FORCE | BRANCH_N_BOUND | FAST_BOUND | BRUTE_FORCE_COMPLETE")
	fs.BoolVarP(&f.undirected, "undirected", "u", false, "treat every edge as undirected")
	fs.StringVarP(&f.logPath, "log-path", "p", "", "write every improvement to this file (\"-\" for stdout)")
	fs.Lookup("log-path").NoOptDefVal = "-"
	fs.StringVar(&f.logLevel, "log-level", "", "trace | debug | info | warn | error | disabled")
	fs.DurationVar(&f.timeLimit, "time-limit", 0, "stop the search after this long (0 = unlimited)")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
}

// registerArtefacts adds the single-result outputs used only by solve.
func (f *runFlags) registerArtefacts(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.dotFile, "dot-file", "", "write the graph with the best path highlighted as Graphviz DOT")
	fs.StringVar(&f.reportFile, "report-file", "", "write the result as JSON to this file (\"-\" for stdout)")
}

// resolve merges defaults, the optional config file, flags and the
// positional input argument, then validates the result.
func (f *runFlags) resolve(cmd *cobra.Command, args []string) (Config, error) {
	cfg := defaultConfig()
	var err error
	if f.configPath != "" {
		if cfg, err = loadConfig(f.configPath); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("method") {
		cfg.Strategy = f.strategy
	}
	if fs.Changed("undirected") {
		directed := !f.undirected
		cfg.Directed = &directed
	}
	if fs.Changed("log-path") {
		cfg.LogPath = f.logPath
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("time-limit") {
		cfg.TimeLimit = f.timeLimit
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fs.Changed("dot-file") {
		cfg.DOTFile = f.dotFile
	}
	if fs.Changed("report-file") {
		cfg.ReportFile = f.reportFile
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	if err = configValidate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
