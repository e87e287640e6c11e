// SPDX-License-Identifier: EPL-2.0

package config_test

import (
	"testing"

	"github.com/sumingyd/yydb-analyzer/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	if cfg.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %v, expected 60", cfg.WindowSeconds)
	}
	if cfg.FFTSize != 2048 {
		t.Errorf("FFTSize = %d, expected 2048", cfg.FFTSize)
	}
	if cfg.HopSize != 512 {
		t.Errorf("HopSize = %d, expected 512", cfg.HopSize)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, expected 0 (auto)", cfg.Workers)
	}
	if cfg.TempDir == "" {
		t.Error("TempDir empty, expected system temp fallback")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("YYDB_WORKERS", "4")
	t.Setenv("YYDB_WINDOW_SECONDS", "30.5")
	t.Setenv("YYDB_FFT_SIZE", "4096")
	t.Setenv("YYDB_HISTORY_PATH", "/var/lib/yydb/history.db")

	cfg := config.Load()
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, expected 4", cfg.Workers)
	}
	if cfg.WindowSeconds != 30.5 {
		t.Errorf("WindowSeconds = %v, expected 30.5", cfg.WindowSeconds)
	}
	if cfg.FFTSize != 4096 {
		t.Errorf("FFTSize = %d, expected 4096", cfg.FFTSize)
	}
	if cfg.HistoryPath != "/var/lib/yydb/history.db" {
		t.Errorf("HistoryPath = %s", cfg.HistoryPath)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("YYDB_WORKERS", "many")
	t.Setenv("YYDB_WINDOW_SECONDS", "a minute")

	cfg := config.Load()
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, expected fallback 0", cfg.Workers)
	}
	if cfg.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %v, expected fallback 60", cfg.WindowSeconds)
	}
}
