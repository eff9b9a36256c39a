package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Provider != "groq" {
		t.Errorf("Provider = %q", c.Provider)
	}
	if c.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q", c.Model)
	}
	if c.Temperature != 0.7 {
		t.Errorf("Temperature = %v", c.Temperature)
	}
	if c.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d", c.MaxTokens)
	}
	if c.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", c.ListenAddr)
	}
	if c.RetryMaxAttempts != 3 {
		t.Errorf("RetryMaxAttempts = %d", c.RetryMaxAttempts)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_key: file-key\nprovider: ollama\nmodel: llama3\nmax_tokens: 2048\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.APIKey != "file-key" || c.Provider != "ollama" || c.Model != "llama3" || c.MaxTokens != 2048 {
		t.Errorf("unexpected config: %+v", c)
	}
	// File values override defaults but defaults still fill the rest.
	if c.Temperature != 0.7 {
		t.Errorf("Temperature = %v", c.Temperature)
	}
}

func TestLoadGroqKeyFromEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "env-key")
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", c.APIKey)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{APIKey: "k", Provider: "groq", Model: "m", Temperature: 0.5, MaxTokens: 512}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("perm = %o, want 600", info.Mode().Perm())
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.APIKey != "k" || out.Provider != "groq" || out.Model != "m" || out.MaxTokens != 512 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
