package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE files into the process environment in order.
// Variables already set win over file values; missing files are skipped
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}
