// Package config loads lithic settings from file, environment, and defaults.
package config

import (
	"errors"
	"strings"
)

// Default configuration values.
const (
	DefaultOutputColor       = true
	DefaultOutputVerbose     = false
	DefaultPatchDryRun       = false
	DefaultPatchBackupSuffix = ""
)

// ErrBackupSuffixPathSeparator indicates a backup suffix containing a path
// separator, which would redirect the backup outside the target directory.
var ErrBackupSuffixPathSeparator = errors.New("patch.backup_suffix must not contain a path separator")

// Config is the top-level configuration struct for lithic.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Patch  PatchConfig  `mapstructure:"patch"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Color   bool `mapstructure:"color"`
	Verbose bool `mapstructure:"verbose"`
}

// PatchConfig holds patching behavior settings.
type PatchConfig struct {
	DryRun       bool   `mapstructure:"dry_run"`
	BackupSuffix string `mapstructure:"backup_suffix"`
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Patch.BackupSuffix, `/\`) {
		return ErrBackupSuffixPathSeparator
	}

	return nil
}
