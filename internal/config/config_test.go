package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xfer", "config.toml")
	t.Setenv(EnvConfigPath, path)
	return path
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with missing file unexpected error: %v", err)
	}
	if len(cfg.Servers) != 0 {
		t.Errorf("Load() servers = %v, want empty", cfg.Servers)
	}
	if cfg.DefaultServer != "" {
		t.Errorf("Load() default server = %q, want empty", cfg.DefaultServer)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := useTempConfig(t)

	cfg := &Config{
		DefaultServer: "work",
		Servers: map[string]ServerConfig{
			"work": {
				Host:              "example.com",
				User:              "deploy",
				KeyPath:           "/home/me/.ssh/id_ed25519",
				Port:              2222,
				DefaultRemotePath: "/srv/app",
			},
			"backup": {
				Host: "backup.example.com",
				User: "bob",
			},
		},
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := useTempConfig(t)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("servers = not toml at all ["), 0600); err != nil {
		t.Fatalf("failed to write malformed config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected parse error for malformed file, got nil")
	} else if !strings.Contains(err.Error(), path) {
		t.Errorf("Load() error should name the file, got: %v", err)
	}
}

func TestAddServerValidation(t *testing.T) {
	tests := []struct {
		name      string
		alias     string
		srv       ServerConfig
		expectErr string
	}{
		{
			name:  "valid entry",
			alias: "work",
			srv:   ServerConfig{Host: "example.com", User: "deploy"},
		},
		{
			name:  "valid entry with all options",
			alias: "aws-ec2",
			srv: ServerConfig{
				Host: "10.0.0.1", User: "admin",
				KeyPath: "/keys/k", Port: 2222, DefaultRemotePath: "/srv",
			},
		},
		{
			name:      "alias with colon",
			alias:     "bad:alias",
			srv:       ServerConfig{Host: "example.com", User: "deploy"},
			expectErr: "invalid alias",
		},
		{
			name:      "single letter alias collides with drive letters",
			alias:     "c",
			srv:       ServerConfig{Host: "example.com", User: "deploy"},
			expectErr: "invalid alias",
		},
		{
			name:      "empty host",
			alias:     "work",
			srv:       ServerConfig{User: "deploy"},
			expectErr: "invalid host",
		},
		{
			name:      "host with shell metacharacters",
			alias:     "work",
			srv:       ServerConfig{Host: "example.com;rm", User: "deploy"},
			expectErr: "invalid host",
		},
		{
			name:      "empty user",
			alias:     "work",
			srv:       ServerConfig{Host: "example.com"},
			expectErr: "invalid user",
		},
		{
			name:      "port out of range",
			alias:     "work",
			srv:       ServerConfig{Host: "example.com", User: "deploy", Port: 70000},
			expectErr: "invalid port",
		},
		{
			name:      "default remote path with metacharacters",
			alias:     "work",
			srv:       ServerConfig{Host: "example.com", User: "deploy", DefaultRemotePath: "/srv`whoami`"},
			expectErr: "invalid default remote path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.AddServer(tt.alias, tt.srv)

			if tt.expectErr != "" {
				if err == nil {
					t.Fatalf("AddServer() expected error containing %q, got nil", tt.expectErr)
				}
				if !strings.Contains(err.Error(), tt.expectErr) {
					t.Errorf("AddServer() error = %v, want containing %q", err, tt.expectErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("AddServer() unexpected error: %v", err)
			}
			if _, ok := cfg.Server(tt.alias); !ok {
				t.Errorf("AddServer() did not store alias %q", tt.alias)
			}
		})
	}
}

func TestRemoveServerClearsDefault(t *testing.T) {
	cfg := &Config{
		DefaultServer: "work",
		Servers: map[string]ServerConfig{
			"work":   {Host: "example.com", User: "deploy"},
			"backup": {Host: "backup.example.com", User: "bob"},
		},
	}

	if err := cfg.RemoveServer("work"); err != nil {
		t.Fatalf("RemoveServer() unexpected error: %v", err)
	}
	if cfg.DefaultServer != "" {
		t.Errorf("removing the default server should clear DefaultServer, got %q", cfg.DefaultServer)
	}
	if _, ok := cfg.Server("work"); ok {
		t.Error("RemoveServer() left the entry in place")
	}

	if err := cfg.RemoveServer("missing"); err == nil {
		t.Error("RemoveServer() expected error for unknown alias, got nil")
	}
}

func TestSetDefault(t *testing.T) {
	cfg := &Config{
		Servers: map[string]ServerConfig{
			"work": {Host: "example.com", User: "deploy"},
		},
	}

	if err := cfg.SetDefault("work"); err != nil {
		t.Fatalf("SetDefault() unexpected error: %v", err)
	}
	if cfg.DefaultServer != "work" {
		t.Errorf("SetDefault() default = %q, want work", cfg.DefaultServer)
	}

	if err := cfg.SetDefault("missing"); err == nil {
		t.Error("SetDefault() expected error for unknown alias, got nil")
	}
}

func TestAliasesSorted(t *testing.T) {
	cfg := &Config{
		Servers: map[string]ServerConfig{
			"zeta":  {Host: "z.example.com", User: "z"},
			"alpha": {Host: "a.example.com", User: "a"},
			"mid":   {Host: "m.example.com", User: "m"},
		},
	}

	want := []string{"alpha", "mid", "zeta"}
	if got := cfg.Aliases(); !reflect.DeepEqual(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
}
