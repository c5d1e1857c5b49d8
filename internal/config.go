package internal

import (
	"fmt"
	"mytwitter/errors"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel            string `env:"LOG_LEVEL,default=ERROR"`
	SeedDefaultProfiles bool   `env:"SEED_DEFAULT_PROFILES,default=true"`
	Colours             bool   `env:"COLOURS,default=true"`
	CensoredWords       string `env:"CENSORED_WORDS"`
	CensorCharacter     string `env:"CENSOR_CHARACTER,default=*"`
	SearchLimit         int    `env:"SEARCH_LIMIT,default=10"`
	ActivityLimit       int    `env:"ACTIVITY_LIMIT,default=20"`
	InactiveMarker      string `env:"INACTIVE_MARKER,default= (inactive)"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if _, err := CharacterRune(config.CensorCharacter); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Words splits CENSORED_WORDS on commas, dropping blank entries.
func (c Config) Words() []string {
	var words []string
	for _, word := range strings.Split(c.CensoredWords, ",") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w, got %q", errors.ErrInvalidCharacter, str)
	}
	return r[0], nil
}
