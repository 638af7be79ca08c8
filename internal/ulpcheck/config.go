package ulpcheck

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the file read by "ulpcheck run".
//
//	workers: 4
//	sweeps:
//	  - func: exp2
//	    step: 0.0173
//	  - func: log
//	    min: 0.5
//	    max: 2
//	    samples: 100000
//	    bound: 2
type Config struct {
	// Workers sizes the shared pool; zero uses GOMAXPROCS.
	Workers int     `yaml:"workers,omitempty"`
	Sweeps  []Sweep `yaml:"sweeps"`
}

// LoadConfig reads and validates a sweep file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read sweep file")
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates the YAML in data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse sweep file")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sweep file")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if len(c.Sweeps) == 0 {
		return errors.New("sweeps list is required and must be non-empty")
	}
	for i, s := range c.Sweeps {
		if s.Func == "" {
			return errors.Errorf("sweeps[%d]: func is required", i)
		}
		if _, ok := Lookup(s.Func); !ok {
			return errors.Errorf("sweeps[%d]: unknown function %q", i, s.Func)
		}
		if s.Step != 0 && s.Samples != 0 {
			return errors.Errorf("sweeps[%d]: step and samples are exclusive", i)
		}
	}
	return nil
}
