// Package config provides configuration structures and loading for report runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportConfig holds the complete report configuration. Every field can be
// overridden by the corresponding command line flag.
type ReportConfig struct {
	// RootDir is the directory holding one subdirectory per collection.
	RootDir string `yaml:"root_dir"`

	// BranchMap is the path of the optional branch metadata file.
	BranchMap string `yaml:"branch_map"`

	// JSONFile and HTMLFile are output paths; empty means stdout (JSON)
	// or no rendering (HTML).
	JSONFile string `yaml:"json_file"`
	HTMLFile string `yaml:"html_file"`

	// WithFiles adds the per-language catalog path table to the JSON output.
	WithFiles bool `yaml:"with_files"`

	// Entities are descriptors of the form collectionId:version:state,
	// used when the report command is run without arguments.
	Entities []string `yaml:"entities"`
}

// DefaultConfigFile is the config filename looked up in the working
// directory when --config is not given.
const DefaultConfigFile = "ts-status-helper.yaml"

// Load reads a report configuration from a YAML file. When path is empty,
// DefaultConfigFile is tried and its absence is not an error.
func Load(path string) (*ReportConfig, error) {
	optional := false
	if path == "" {
		path = DefaultConfigFile
		optional = true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return &ReportConfig{}, nil
		}
		return nil, fmt.Errorf("fail to read config %s: %w", path, err)
	}
	cfg := &ReportConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("fail to parse config %s: %w", path, err)
	}
	return cfg, nil
}
