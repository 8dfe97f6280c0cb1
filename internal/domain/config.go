package domain

// Config represents the minimal PanelApp configuration loaded from panelapp.yaml.
type Config struct {
	Paths      PathsConfig
	Validation ValidationConfig
}

type PathsConfig struct {
	PanelsDir  string
	ReportsDir string
}

type ValidationConfig struct {
	// StrictCase escalates case-insensitive duplicate warnings to errors.
	StrictCase bool
}

// DefaultConfig provides sane defaults if panelapp.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			PanelsDir:  "panels",
			ReportsDir: "reports",
		},
		Validation: ValidationConfig{StrictCase: false},
	}
}
