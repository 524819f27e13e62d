// Package lexconfig loads optional on-disk defaults for the basiclex CLI.
//
// A project can drop a `.basiclexrc.yaml` next to the scripts it tokenizes
// to avoid repeating the same flags on every invocation; command-line flags
// always take precedence over whatever the file specifies.
package lexconfig

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the subset of basiclex's behavior that can be defaulted from
// a file instead of typed on the command line every time.
type Config struct {
	ShowPos             bool `yaml:"showPos"`
	ShowType            bool `yaml:"showType"`
	OnlyErrors          bool `yaml:"onlyErrors"`
	Watch               bool `yaml:"watch"`
	WatchDebounceMillis int  `yaml:"watchDebounceMillis"`
}

// Default returns the configuration basiclex uses when no file is present.
func Default() Config {
	return Config{WatchDebounceMillis: 200}
}

// Load reads and parses path. A missing file is not an error: it returns
// Default() unchanged, since the config file is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
