package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrNotFound = errors.New("no config file exists")

type Config struct {
	Log struct {
		Label     string `toml:"label"`
		File      string `toml:"file"`
		MaxSizeMB int    `toml:"max_size_mb"`
	} `toml:"log"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
	Sort struct {
		Order string `toml:"order"`
	} `toml:"sort"`
}

// Default is used when no config file exists.
func Default() *Config {
	var conf Config
	conf.Log.Label = "collect"
	conf.Log.MaxSizeMB = 10
	conf.Output.Format = "json"
	return &conf
}

var pathHierarchy = []string{
	"collect.toml",
	"/etc/collect.toml",
	"/usr/local/etc/collect.toml",
}

// Load reads the first config file that exists in the path hierarchy.
func Load() (*Config, error) {
	return LoadFrom(pathHierarchy...)
}

// LoadFrom reads the first of paths that exists. Fields the file leaves out
// keep their Default values.
func LoadFrom(paths ...string) (*Config, error) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil && os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, err
		}

		defer f.Close()

		conf := Default()
		dec := toml.NewDecoder(f)
		if _, err := dec.Decode(conf); err != nil {
			return nil, fmt.Errorf("decoding '%s': %w", path, err)
		}
		if err := conf.Validate(); err != nil {
			return nil, fmt.Errorf("validating '%s': %w", path, err)
		}

		return conf, nil
	}

	return nil, fmt.Errorf("%w {%s}", ErrNotFound, strings.Join(paths, ", "))
}

func (conf *Config) Validate() error {
	switch conf.Output.Format {
	case "json", "text", "html":
	default:
		return fmt.Errorf("unsupported output format '%s'", conf.Output.Format)
	}
	switch conf.Sort.Order {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("unsupported sort order '%s'", conf.Sort.Order)
	}
	if conf.Log.MaxSizeMB < 0 {
		return fmt.Errorf("negative log max_size_mb %d", conf.Log.MaxSizeMB)
	}
	return nil
}
