package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized step headers for better log readability
	Colours     bool `envconfig:"E2E_COLOURS" default:"true"`
	SearchLimit int  `envconfig:"E2E_SEARCH_LIMIT" default:"10"`
	// E2E_CENSORED_WORDS is handed to the moderator of every started network
	CensoredWords string `envconfig:"E2E_CENSORED_WORDS" default:"darn"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
