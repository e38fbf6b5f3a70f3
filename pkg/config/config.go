// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// DefaultNames are the files Discover looks for, in order
var DefaultNames = []string{
	".sheetmerge.yaml",
	".sheetmerge.yml",
	".sheetmerge.json",
	".sheetmerge.hcl",
}

// 🎞️ Animation configures the synthetic progress shown while sorting
type Animation struct {
	Steps    int
	Interval time.Duration
	Ceiling  int
}

// 📚 Config represents the complete configuration
type Config struct {
	LogLevel string
	// ProgressResetDelay is how long the final progress stays on screen
	// before the bar resets and the command exits; 0 skips the reset
	ProgressResetDelay time.Duration
	Animation          Animation
	TargetPatterns     []string

	location string
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Animation: Animation{
			Steps:    20,
			Interval: 200 * time.Millisecond,
			Ceiling:  90,
		},
		TargetPatterns: []string{"*.xlsx", "*.xls"},
	}
}

// 🎯 Load loads the configuration from a file. An empty path yields Default.
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Discover returns the first of DefaultNames present in dir, or "" if none is
func Discover(dir string) string {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return errors.Errorf("log_level %q: %w", cfg.LogLevel, err)
	}
	if cfg.ProgressResetDelay < 0 {
		return errors.Errorf("progress_reset_delay must not be negative")
	}
	if cfg.Animation.Steps < 0 {
		return errors.Errorf("animation.steps must not be negative")
	}
	if cfg.Animation.Steps > 0 && cfg.Animation.Interval <= 0 {
		return errors.Errorf("animation.interval must be positive")
	}
	if cfg.Animation.Ceiling < 0 || cfg.Animation.Ceiling > 100 {
		return errors.Errorf("animation.ceiling must be between 0 and 100")
	}
	if len(cfg.TargetPatterns) == 0 {
		return errors.Errorf("target_patterns must not be empty")
	}
	for _, p := range cfg.TargetPatterns {
		if !doublestar.ValidatePattern(p) {
			return errors.Errorf("target_patterns: invalid pattern %q", p)
		}
	}
	return nil
}

// Level returns the parsed log level
func (cfg *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	src := cfg.location
	if src == "" {
		src = "defaults"
	}
	return fmt.Sprintf("%s: level=%s reset=%s animation=%dx%s->%d%% patterns=%s",
		src, cfg.LogLevel, cfg.ProgressResetDelay, cfg.Animation.Steps, cfg.Animation.Interval,
		cfg.Animation.Ceiling, strings.Join(cfg.TargetPatterns, ","))
}

// fileConfig is the on disk shape shared by the YAML and JSON parsers;
// unset fields keep their defaults
type fileConfig struct {
	LogLevel           *string        `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	ProgressResetDelay *string        `json:"progress_reset_delay,omitempty" yaml:"progress_reset_delay,omitempty"`
	Animation          *fileAnimation `json:"animation,omitempty" yaml:"animation,omitempty"`
	TargetPatterns     []string       `json:"target_patterns,omitempty" yaml:"target_patterns,omitempty"`
}

type fileAnimation struct {
	Steps    *int    `json:"steps,omitempty" yaml:"steps,omitempty" hcl:"steps,optional"`
	Interval *string `json:"interval,omitempty" yaml:"interval,omitempty" hcl:"interval,optional"`
	Ceiling  *int    `json:"ceiling,omitempty" yaml:"ceiling,omitempty" hcl:"ceiling,optional"`
}

// toConfig overlays the set fields onto Default
func (f fileConfig) toConfig() (*Config, error) {
	cfg := Default()
	if f.LogLevel != nil {
		cfg.LogLevel = *f.LogLevel
	}
	if f.ProgressResetDelay != nil {
		d, err := parseDuration("progress_reset_delay", *f.ProgressResetDelay)
		if err != nil {
			return nil, err
		}
		cfg.ProgressResetDelay = d
	}
	if f.Animation != nil {
		if f.Animation.Steps != nil {
			cfg.Animation.Steps = *f.Animation.Steps
		}
		if f.Animation.Interval != nil {
			d, err := parseDuration("animation.interval", *f.Animation.Interval)
			if err != nil {
				return nil, err
			}
			cfg.Animation.Interval = d
		}
		if f.Animation.Ceiling != nil {
			cfg.Animation.Ceiling = *f.Animation.Ceiling
		}
	}
	if len(f.TargetPatterns) > 0 {
		cfg.TargetPatterns = append([]string(nil), f.TargetPatterns...)
	}
	return cfg, nil
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Errorf("%s: %w", field, err)
	}
	return d, nil
}
