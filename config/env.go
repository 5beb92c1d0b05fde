package config

import "os"

// Getenv returns the value of an environment variable, or fallback when it
// is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
