package config

import "os"

// Get returns the environment variable named key, or fallback if unset
// or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
