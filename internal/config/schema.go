package config

// Config is the effective runtime configuration.
type Config struct {
	Theme       string    `mapstructure:"theme" yaml:"theme"`
	Title       string    `mapstructure:"title" yaml:"title"`
	Placeholder string    `mapstructure:"placeholder" yaml:"placeholder"`
	CharLimit   int       `mapstructure:"char_limit" yaml:"char_limit"`
	AltScreen   bool      `mapstructure:"alt_screen" yaml:"alt_screen"`
	Log         LogConfig `mapstructure:"log" yaml:"log"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so
// logs only go to a file; an empty File disables logging.
type LogConfig struct {
	File   string `mapstructure:"file" yaml:"file"`
	Level  string `mapstructure:"level" yaml:"level"`   // debug | info | warn | error
	Format string `mapstructure:"format" yaml:"format"` // json | text
}
