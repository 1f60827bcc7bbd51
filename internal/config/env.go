package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads the first .env found in the working directory or its
// parent. Variables already set in the environment are not overwritten. It
// returns the file that was loaded, or "" when there was none.
func LoadEnv() string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return ""
		}
		return candidate
	}
	return ""
}

// LogLevelFromEnv reads LOG_LEVEL, defaulting to info when it is unset or
// invalid.
func LogLevelFromEnv() logrus.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
