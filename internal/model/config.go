package model

// Config holds the runtime configuration for a conversion run. Values
// come from defaults, the optional config file, WAYMARK_* environment
// variables, and command-line flags, in ascending precedence.
type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// InputConfig controls how raw records are read and validated.
type InputConfig struct {
	// NamePrefix labels records that arrive without a name; a record's
	// sequence number is appended, e.g. "Point 3".
	NamePrefix string `yaml:"name_prefix" mapstructure:"name_prefix"`

	// Strict aborts the run on the first invalid record instead of
	// skipping it.
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

// OutputConfig controls document and report rendering.
type OutputConfig struct {
	// Compact writes the GeoJSON document without indentation.
	Compact bool `yaml:"compact" mapstructure:"compact"`

	// IncludeFooter appends the generator footer to Markdown reports.
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`

	// Verbose enables progress output on stderr.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the configuration used when nothing overrides
// it.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			NamePrefix: "Point",
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
