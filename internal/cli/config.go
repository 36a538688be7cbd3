package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// fileConfig mirrors the flags that may be preset from a TOML file.
type fileConfig struct {
	Output    string   `toml:"output"`
	Sort      string   `toml:"sort"`
	Out       string   `toml:"out"`
	Count     string   `toml:"count"`
	Remove    []string `toml:"remove"`
	DryRun    *bool    `toml:"dry_run"`
	KeepGoing *bool    `toml:"keep_going"`
}

// loadConfig reads and decodes the TOML file at path. Unknown keys are rejected.
func loadConfig(fsys afero.Fs, path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	return cfg, nil
}

// apply sets every flag the user did not pass explicitly to its configured value.
func (cfg fileConfig) apply(flags *pflag.FlagSet) error {
	values := map[string]string{
		"output": cfg.Output,
		"sort":   cfg.Sort,
		"out":    cfg.Out,
		"count":  cfg.Count,
		"remove": strings.Join(cfg.Remove, ","),
	}

	if cfg.DryRun != nil {
		values["dry-run"] = strconv.FormatBool(*cfg.DryRun)
	}

	if cfg.KeepGoing != nil {
		values["keep-going"] = strconv.FormatBool(*cfg.KeepGoing)
	}

	for name, value := range values {
		if value == "" || flags.Changed(name) {
			continue
		}

		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("applying config value %q for %q: %w", value, name, err)
		}
	}

	return nil
}
