package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/auction"
)

// Config holds the draft engine settings loaded from YAML. Every field has
// a default so the file is optional.
type Config struct {
	Draft struct {
		AuctionWindowSeconds int           `yaml:"auction_window_seconds"`
		RookieWindowSeconds  int           `yaml:"rookie_window_seconds"`
		ExpiryToleranceMS    int           `yaml:"expiry_tolerance_ms"`
		RookieYears          int           `yaml:"rookie_years"`
		WageTable            map[int]int64 `yaml:"wage_table"`
		RookieMaxSalary      int64         `yaml:"rookie_max_salary"`
		RookieMinSalary      int64         `yaml:"rookie_min_salary"`
	} `yaml:"draft"`

	Pricing struct {
		MaxOpening int64 `yaml:"max_opening"`
		TailRank   int   `yaml:"tail_rank"`
	} `yaml:"pricing"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// draftConfig converts the YAML settings to the engine config, falling back
// to the engine defaults for anything unset.
func (c *Config) draftConfig() auction.Config {
	cfg := auction.DefaultConfig()
	if c.Draft.AuctionWindowSeconds > 0 {
		cfg.AuctionWindow = time.Duration(c.Draft.AuctionWindowSeconds) * time.Second
	}
	if c.Draft.RookieWindowSeconds > 0 {
		cfg.RookieWindow = time.Duration(c.Draft.RookieWindowSeconds) * time.Second
	}
	if c.Draft.ExpiryToleranceMS > 0 {
		cfg.ExpiryTolerance = time.Duration(c.Draft.ExpiryToleranceMS) * time.Millisecond
	}
	if c.Draft.RookieYears > 0 {
		cfg.RookieYears = c.Draft.RookieYears
	}
	if len(c.Draft.WageTable) > 0 {
		cfg.WageTable = c.Draft.WageTable
	}
	if c.Draft.RookieMaxSalary > 0 {
		cfg.RookieMaxSalary = c.Draft.RookieMaxSalary
	}
	if c.Draft.RookieMinSalary > 0 {
		cfg.RookieMinSalary = c.Draft.RookieMinSalary
	}
	return cfg
}
