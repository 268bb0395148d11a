/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package config loads the meet configuration file. Every field has a
// default, so a missing file yields a usable configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"

	"github.com/mikeb26/swimseed/seed"
)

// WebhookEnv overrides Notify.DiscordWebhook so the secret can stay out of
// the config file.
const WebhookEnv = "HEATSHEET_DISCORD_WEBHOOK"

type MeetConfig struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"`
}

type RosterConfig struct {
	// Labels names the time columns following the identity columns. Empty
	// selects roster.DefaultEventLabels.
	Labels []string `yaml:"labels,omitempty"`
}

type LayoutConfig struct {
	BandHeight  int         `yaml:"band_height"`
	BaseWidth   int         `yaml:"base_width"`
	HeaderRows  int         `yaml:"header_rows"`
	FirstColumn int         `yaml:"first_column"`
	Spacing     map[int]int `yaml:"spacing"`
}

type CacheConfig struct {
	Bucket string        `yaml:"bucket"`
	MaxAge time.Duration `yaml:"max_age"`
}

type PublishConfig struct {
	Bucket string `yaml:"bucket"`
}

type NotifyConfig struct {
	DiscordWebhook string `yaml:"discord_webhook"`
}

// Config models heatsheet.yaml.
type Config struct {
	Meet        MeetConfig    `yaml:"meet"`
	Category    string        `yaml:"category"`
	Roster      RosterConfig  `yaml:"roster"`
	Lanes       []int         `yaml:"lanes"`
	MaxEntrants int           `yaml:"max_entrants"`
	Layout      LayoutConfig  `yaml:"layout"`
	Cache       CacheConfig   `yaml:"cache"`
	Publish     PublishConfig `yaml:"publish"`
	Notify      NotifyConfig  `yaml:"notify"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	l := seed.DefaultLayout()
	spacing := make(map[int]int, len(l.Spacing))
	for d, s := range l.Spacing {
		spacing[d] = s
	}

	return &Config{
		Category:    seed.CategoryMixed.String(),
		Lanes:       append([]int(nil), seed.SixLanePattern...),
		MaxEntrants: seed.DefaultMaxEntrants,
		Layout: LayoutConfig{
			BandHeight:  l.BandHeight,
			BaseWidth:   l.BaseWidth,
			HeaderRows:  l.HeaderRows,
			FirstColumn: l.FirstColumn,
			Spacing:     spacing,
		},
		Cache: CacheConfig{
			MaxAge: 24 * time.Hour,
		},
	}
}

// Load reads path. A missing file is not an error and yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		// explicit lists replace the defaults rather than merging into them
		cfg.Lanes = nil
		cfg.Layout.Spacing = nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode: %w", err)
		}
		if cfg.Lanes == nil {
			cfg.Lanes = Default().Lanes
		}
		if cfg.Layout.Spacing == nil {
			cfg.Layout.Spacing = Default().Layout.Spacing
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(WebhookEnv); v != "" {
		c.Notify.DiscordWebhook = v
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := seed.ParseCategory(c.Category); err != nil {
		return fmt.Errorf("config: category: %w", err)
	}
	if err := seed.LanePattern(c.Lanes).Validate(); err != nil {
		return fmt.Errorf("config: lanes: %w", err)
	}
	if c.MaxEntrants < 0 {
		return fmt.Errorf("config: max_entrants %d must not be negative",
			c.MaxEntrants)
	}
	if c.Layout.HeaderRows < 0 || c.Layout.FirstColumn < 0 {
		return fmt.Errorf("config: layout offsets must not be negative: %w",
			seed.ErrInvalidLayout)
	}
	if rows := c.Layout.HeaderRows + len(c.Lanes); c.Layout.BandHeight < rows {
		return fmt.Errorf("config: layout.band_height %d cannot hold %d header rows and %d lanes: %w",
			c.Layout.BandHeight, c.Layout.HeaderRows, len(c.Lanes),
			seed.ErrInvalidLayout)
	}
	if cols := c.Layout.FirstColumn + seed.CellFields; c.Layout.BaseWidth < cols {
		return fmt.Errorf("config: layout.base_width %d cannot hold first_column %d and %d fields: %w",
			c.Layout.BaseWidth, c.Layout.FirstColumn, seed.CellFields,
			seed.ErrInvalidLayout)
	}
	for d, s := range c.Layout.Spacing {
		if s < 0 {
			return fmt.Errorf("config: layout.spacing[%d] = %d must not be negative: %w",
				d, s, seed.ErrInvalidLayout)
		}
	}
	if c.Cache.MaxAge < 0 {
		return fmt.Errorf("config: cache.max_age %v must not be negative",
			c.Cache.MaxAge)
	}
	if _, err := c.MeetDate(); err != nil {
		return fmt.Errorf("config: meet.date: %w", err)
	}
	return nil
}

// MeetDate parses Meet.Date, returning the zero time if it is unset.
func (c *Config) MeetDate() (time.Time, error) {
	return parseDateOrZero(c.Meet.Date)
}

// ParsedCategory returns the configured category. Validate has already
// rejected bad values for configs produced by Load or Parse.
func (c *Config) ParsedCategory() seed.Category {
	cat, err := seed.ParseCategory(c.Category)
	if err != nil {
		return seed.CategoryMixed
	}
	return cat
}

// SeedOptions converts the configuration into seeder options.
func (c *Config) SeedOptions() seed.Options {
	spacing := make(map[int]int, len(c.Layout.Spacing))
	for d, s := range c.Layout.Spacing {
		spacing[d] = s
	}

	return seed.Options{
		Pattern: append(seed.LanePattern(nil), c.Lanes...),
		Layout: seed.Layout{
			LaneCount:   len(c.Lanes),
			BandHeight:  c.Layout.BandHeight,
			BaseWidth:   c.Layout.BaseWidth,
			HeaderRows:  c.Layout.HeaderRows,
			FirstColumn: c.Layout.FirstColumn,
			Spacing:     spacing,
		},
		MaxEntrants: c.MaxEntrants,
	}
}

// parseDateOrZero returns a parsed time or zero if input is empty or "null".
func parseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}
