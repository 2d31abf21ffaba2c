package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll(filepath.Join(dir, ".plz"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".plz", ConfigFileName), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	writeConfigFile(t, `
api_base: https://proxy.example.com/v1
model: gpt-4o
shell: zsh
tokens:
  command: 200
  commit: 2000
defaults:
  gitmoji: true
`)

	fc, err := LoadConfigFile()
	if err != nil {
		t.Fatalf("LoadConfigFile() unexpected error: %v", err)
	}

	if fc.APIBase != "https://proxy.example.com/v1" {
		t.Errorf("APIBase = %q", fc.APIBase)
	}
	if fc.Model != "gpt-4o" {
		t.Errorf("Model = %q", fc.Model)
	}
	if fc.Shell != "zsh" {
		t.Errorf("Shell = %q", fc.Shell)
	}
	if fc.Tokens == nil || fc.Tokens.Command != 200 || fc.Tokens.Commit != 2000 {
		t.Errorf("Tokens = %+v, want command 200 / commit 2000", fc.Tokens)
	}
	if fc.Defaults == nil || !fc.Defaults.Gitmoji {
		t.Errorf("Defaults = %+v, want gitmoji true", fc.Defaults)
	}
}

func TestLoadConfigFile_NoneFound(t *testing.T) {
	isolate(t)

	fc, err := LoadConfigFile()
	if err != nil {
		t.Fatalf("LoadConfigFile() unexpected error: %v", err)
	}
	if fc == nil || fc.APIKey != "" || fc.Tokens != nil {
		t.Errorf("LoadConfigFile() = %+v, want empty config", fc)
	}
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	isolate(t)
	writeConfigFile(t, "model: [unterminated")

	if _, err := LoadConfigFile(); err == nil {
		t.Error("LoadConfigFile() expected parse error, got nil")
	}
}

func TestApplyFileConfig(t *testing.T) {
	fc := &FileConfig{
		APIBase: "https://file.example.com/v1",
		APIKey:  "sk-from-file",
		Model:   "file-model",
		Shell:   "fish",
		Tokens:  &TokensConfig{Command: 50, Commit: 500},
		Defaults: &DefaultsConfig{
			Gitmoji: true,
			Debug:   true,
		},
	}

	t.Run("fills empty fields", func(t *testing.T) {
		cfg := NewConfig()
		cfg.ApplyFileConfig(fc)

		if cfg.APIKey != "sk-from-file" {
			t.Errorf("APIKey = %q, want file value", cfg.APIKey)
		}
		if cfg.Model != "file-model" || cfg.Shell != "fish" {
			t.Errorf("Model/Shell = %q/%q, want file values", cfg.Model, cfg.Shell)
		}
		if cfg.CommandMaxTokens != 50 || cfg.CommitMaxTokens != 500 {
			t.Errorf("token budgets = %d/%d, want 50/500", cfg.CommandMaxTokens, cfg.CommitMaxTokens)
		}
		if !cfg.DefaultGitmoji || !cfg.Debug {
			t.Error("boolean defaults not applied")
		}
	})

	t.Run("never overrides set fields", func(t *testing.T) {
		cfg := &Config{
			APIKey:           "sk-from-flag",
			Model:            "flag-model",
			CommandMaxTokens: 99,
		}
		cfg.ApplyFileConfig(fc)

		if cfg.APIKey != "sk-from-flag" {
			t.Errorf("APIKey = %q, file config overrode a flag", cfg.APIKey)
		}
		if cfg.Model != "flag-model" {
			t.Errorf("Model = %q, file config overrode a flag", cfg.Model)
		}
		if cfg.CommandMaxTokens != 99 {
			t.Errorf("CommandMaxTokens = %d, file config overrode a flag", cfg.CommandMaxTokens)
		}
	})

	t.Run("nil file config", func(t *testing.T) {
		cfg := NewConfig()
		cfg.ApplyFileConfig(nil)
		if cfg.APIKey != "" {
			t.Errorf("ApplyFileConfig(nil) mutated the config: %+v", cfg)
		}
	})
}

func TestValidate_FileLayerLowestPriority(t *testing.T) {
	isolate(t)
	writeConfigFile(t, "api_key: sk-from-file\nmodel: file-model\n")
	t.Setenv(EnvModel, "env-model")

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	if cfg.APIKey != "sk-from-file" {
		t.Errorf("APIKey = %q, want file value used when env is unset", cfg.APIKey)
	}
	if cfg.Model != "env-model" {
		t.Errorf("Model = %q, want env to win over the file", cfg.Model)
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	isolate(t)

	path, err := CreateDefaultConfigFile()
	if err != nil {
		t.Fatalf("CreateDefaultConfigFile() unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created at %s: %v", path, err)
	}

	// Second call refuses to clobber the existing file
	if _, err := CreateDefaultConfigFile(); err == nil {
		t.Error("CreateDefaultConfigFile() expected error for existing file, got nil")
	}
}
