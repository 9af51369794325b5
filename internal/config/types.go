package config

// Config holds one invocation's search parameters. It is never mutated after New.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// Settings are the ambient options read from YAML settings files.
type Settings struct {
	Verbose bool   `yaml:"verbose" json:"verbose"`
	LogFile string `yaml:"log_file" json:"log_file"`
}

// settingsOverlay keeps track of which keys a file actually set.
type settingsOverlay struct {
	Verbose *bool   `yaml:"verbose"`
	LogFile *string `yaml:"log_file"`
}

