// SPDX-License-Identifier: EPL-2.0

// Package config reads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything tunable at startup.
type Config struct {
	// Workers sizes the feature-extraction pool.  Zero means one
	// worker per CPU.
	Workers int
	// WindowSeconds bounds the audio handed to analysis.
	WindowSeconds float64
	// AnalysisRate resamples the buffer before analysis when set.
	// Zero keeps the native rate.
	AnalysisRate int
	// FFTSize and HopSize parameterize the spectral stages.
	FFTSize int
	HopSize int
	// TempDir receives temporary playback assets.
	TempDir string
	// HistoryPath locates the report archive.  Empty disables it.
	HistoryPath string
}

// Load builds a Config from the environment.  A .env file in the
// working directory is merged in when present; real environment
// variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Workers:       envInt("YYDB_WORKERS", 0),
		WindowSeconds: envFloat("YYDB_WINDOW_SECONDS", 60),
		AnalysisRate:  envInt("YYDB_ANALYSIS_RATE", 0),
		FFTSize:       envInt("YYDB_FFT_SIZE", 2048),
		HopSize:       envInt("YYDB_HOP_SIZE", 512),
		TempDir:       envString("YYDB_TEMP_DIR", os.TempDir()),
		HistoryPath:   envString("YYDB_HISTORY_PATH", ""),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
