// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if the variable is not set.
func GetEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("config: %s=%q is not an integer: %w", key, value, err)
	}
	return n, nil
}

// GetEnvMillis reads a duration expressed in milliseconds.
func GetEnvMillis(key string, fallback time.Duration) (time.Duration, error) {
	n, err := GetEnvInt(key, int(fallback/time.Millisecond))
	if err != nil {
		return fallback, err
	}
	return time.Duration(n) * time.Millisecond, nil
}
