package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"
)

// Parts accepted by Config.Part.
const (
	PartOne = "1"
	PartTwo = "2"
	PartAll = "all"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the effective configuration of one pipeloop run.
type Config struct {
	// Input is the path of the puzzle file.
	Input string
	// Part selects which answer to print: "1", "2" or "all".
	Part string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is text or json.
	LogFormat string
	// Render prints the classified grid after the answers.
	Render bool
	// Reverse traces the loop in the opposite sense.
	Reverse bool
	// Profile, when set, is the directory a CPU profile is written to.
	Profile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Part:      PartAll,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// file mirrors the attributes accepted in an HCL configuration file.
type file struct {
	Input     string `hcl:"input,optional"`
	Part      string `hcl:"part,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	Render    bool   `hcl:"render,optional"`
	Reverse   bool   `hcl:"reverse,optional"`
	Profile   string `hcl:"profile,optional"`
}

// Load builds a configuration from the defaults, the HCL file at configPath
// and the dotenv file at envPath (each skipped when its path is empty), and
// finally the variables visible through lookup, which normally is
// os.LookupEnv. Process variables take precedence over the dotenv file.
func Load(configPath, envPath string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if configPath != "" {
		var err error
		if cfg, err = ApplyFile(cfg, configPath); err != nil {
			return Config{}, err
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		var err error
		if dotenv, err = godotenv.Read(envPath); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", envPath, err)
		}
	}
	env := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	}

	return ApplyEnv(cfg, env)
}

// ApplyFile overlays the attributes set in the HCL file at path onto cfg.
func ApplyFile(cfg Config, path string) (Config, error) {
	var f file
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return applyDecoded(cfg, f), nil
}

// ApplySource is ApplyFile over in-memory HCL source; filename is used only
// for diagnostics and must end in ".hcl".
func ApplySource(cfg Config, filename string, src []byte) (Config, error) {
	var f file
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return applyDecoded(cfg, f), nil
}

// applyDecoded overlays the non-zero fields of f onto cfg.
func applyDecoded(cfg Config, f file) Config {
	setString(&cfg.Input, f.Input)
	setString(&cfg.Part, f.Part)
	setString(&cfg.LogLevel, f.LogLevel)
	setString(&cfg.LogFormat, f.LogFormat)
	setString(&cfg.Profile, f.Profile)
	cfg.Render = cfg.Render || f.Render
	cfg.Reverse = cfg.Reverse || f.Reverse
	return cfg
}

// ApplyEnv overlays PIPELOOP_* variables found through lookup onto cfg.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	strs := map[string]*string{
		"PIPELOOP_INPUT":      &cfg.Input,
		"PIPELOOP_PART":       &cfg.Part,
		"PIPELOOP_LOG_LEVEL":  &cfg.LogLevel,
		"PIPELOOP_LOG_FORMAT": &cfg.LogFormat,
		"PIPELOOP_PROFILE":    &cfg.Profile,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			setString(dst, v)
		}
	}

	bools := map[string]*bool{
		"PIPELOOP_RENDER":  &cfg.Render,
		"PIPELOOP_REVERSE": &cfg.Reverse,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, key, v)
		}
		*dst = b
	}
	return cfg, nil
}

// Validate rejects unknown parts, log levels and log formats.
func (c Config) Validate() error {
	switch c.Part {
	case PartOne, PartTwo, PartAll:
	default:
		return fmt.Errorf("%w: part must be '1', '2' or 'all', got %q", ErrInvalid, c.Part)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Wants reports whether the configured part includes answer n.
func (c Config) Wants(n int) bool {
	return c.Part == PartAll || c.Part == strconv.Itoa(n)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
