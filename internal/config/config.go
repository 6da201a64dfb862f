package config

// Config is the root application configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Study StudyConfig `yaml:"study"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// StudyConfig holds parsing and review defaults.
type StudyConfig struct {
	Language      string `yaml:"language"        env:"STUDY_LANGUAGE"        env-default:"id"`
	RandomOrder   bool   `yaml:"random_order"    env:"STUDY_RANDOM_ORDER"    env-default:"false"`
	SnippetLength int    `yaml:"snippet_length"  env:"STUDY_SNIPPET_LENGTH"  env-default:"20"`
	MaxInputBytes int64  `yaml:"max_input_bytes" env:"STUDY_MAX_INPUT_BYTES" env-default:"1048576"`
}
