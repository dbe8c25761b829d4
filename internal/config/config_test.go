package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "STORAGE_DRIVER", "DATA_PATH", "STATIC_DIR", "DEV",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.Driver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", cfg.Storage.Driver)
	}
	if cfg.Storage.DataPath != "./data" {
		t.Errorf("data path = %q, want ./data", cfg.Storage.DataPath)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Server.Addr())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("SERVER_READ_TIMEOUT", "30")
	t.Setenv("DEV", "1")

	cfg := Load()
	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Errorf("addr = %q, want 127.0.0.1:9000", cfg.Server.Addr())
	}
	if cfg.Storage.Driver != "file" {
		t.Errorf("driver = %q, want file", cfg.Storage.Driver)
	}
	if cfg.Server.ReadTimeout != 30 {
		t.Errorf("read timeout = %d, want 30", cfg.Server.ReadTimeout)
	}
	if !cfg.App.Dev {
		t.Error("DEV=1 should enable dev mode")
	}
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	if cfg := Load(); cfg.Server.ReadTimeout != 15 {
		t.Errorf("read timeout = %d, want default 15", cfg.Server.ReadTimeout)
	}
}
