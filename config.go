package docmodel

import "github.com/dmitrymomot/docmodel/pkg/config"

// Config is the environment configuration of a Runtime.
type Config struct {
	LogLevel  string `env:"DOCMODEL_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DOCMODEL_LOG_FORMAT" envDefault:"json"`
	// Locale is the language failure messages are rendered in.
	Locale string `env:"DOCMODEL_LOCALE" envDefault:"en"`
	// MessagesPath is an optional YAML or JSON file, or a directory of them,
	// layered over the built-in messages.
	MessagesPath string `env:"DOCMODEL_MESSAGES_PATH"`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
