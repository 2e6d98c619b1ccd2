package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfigFile is the layout of a configuration file. Every attribute is
// optional; absent ones keep the current value.
type hclConfigFile struct {
	TickInterval   *string `hcl:"tick_interval,optional"`
	LogLevel       *string `hcl:"log_level,optional"`
	LogFile        *string `hcl:"log_file,optional"`
	Summary        *bool   `hcl:"summary,optional"`
	PlayerOneColor *string `hcl:"player_one_color,optional"`
	PlayerTwoColor *string `hcl:"player_two_color,optional"`
}

// LoadFile applies the HCL file at path on top of cfg.
func LoadFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return apply(file.Body, path, cfg)
}

// Decode applies HCL source on top of cfg; filename is used in diagnostics.
func Decode(src []byte, filename string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}
	return apply(file.Body, filename, cfg)
}

func apply(body hcl.Body, filename string, cfg *Config) error {
	var parsed hclConfigFile
	diags := gohcl.DecodeBody(body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	if parsed.TickInterval != nil {
		interval, err := time.ParseDuration(*parsed.TickInterval)
		if err != nil {
			return fmt.Errorf("invalid tick_interval in %s: %w", filename, err)
		}
		cfg.TickInterval = interval
	}
	if parsed.LogLevel != nil {
		cfg.LogLevel = *parsed.LogLevel
	}
	if parsed.LogFile != nil {
		cfg.LogFile = *parsed.LogFile
	}
	if parsed.Summary != nil {
		cfg.Summary = *parsed.Summary
	}
	if parsed.PlayerOneColor != nil {
		cfg.PlayerOneColor = *parsed.PlayerOneColor
	}
	if parsed.PlayerTwoColor != nil {
		cfg.PlayerTwoColor = *parsed.PlayerTwoColor
	}
	return nil
}
