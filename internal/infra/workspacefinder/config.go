package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/ITour-BioInfo/PanelAppByIvan/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads panelapp.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "panelapp.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.PanelApp.Paths.PanelsDir != "" {
		cfg.Paths.PanelsDir = y.PanelApp.Paths.PanelsDir
	}
	if y.PanelApp.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.PanelApp.Paths.ReportsDir
	}
	if y.PanelApp.Validation.StrictCase != nil {
		cfg.Validation.StrictCase = *y.PanelApp.Validation.StrictCase
	}

	return cfg, nil
}

type yamlConfig struct {
	PanelApp struct {
		Paths struct {
			PanelsDir  string `yaml:"panels_dir"`
			ReportsDir string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Validation struct {
			StrictCase *bool `yaml:"strict_case"`
		} `yaml:"validation"`
	} `yaml:"panelapp"`
}
