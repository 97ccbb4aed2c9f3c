package main

import (
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Input     string `yaml:"input,omitempty"`
	Precision int    `yaml:"precision"`
	Progress  int    `yaml:"progress"`
}

func DefaultConfig() Config {
	return Config{
		Precision: 3,
		Progress:  100,
	}
}

// Read overlays the file contents onto c. A missing file is fine,
// defaults stay in place.
func (c *Config) Read(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return xerrors.Errorf("open: %w", err)
	}
	defer f.Close()
	contents, err := io.ReadAll(f)
	if err != nil {
		return xerrors.Errorf("read: %w", err)
	}
	if err := yaml.Unmarshal(contents, c); err != nil {
		return xerrors.Errorf("unmarshal: %w", err)
	}
	if c.Precision < 0 {
		return xerrors.Errorf("precision %d: must not be negative", c.Precision)
	}
	if c.Progress <= 0 {
		return xerrors.Errorf("progress %d: must be positive", c.Progress)
	}
	return nil
}
