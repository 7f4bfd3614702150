package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultColumn != "Todo" {
		t.Errorf("Default DefaultColumn = %s, want Todo", cfg.DefaultColumn)
	}
	if len(cfg.FenceLanguages) != 1 || cfg.FenceLanguages[0] != "kanban" {
		t.Errorf("Default FenceLanguages = %v, want [kanban]", cfg.FenceLanguages)
	}
	if cfg.HighlightDuration() != DefaultHighlightTTL {
		t.Errorf("Default HighlightDuration = %v, want %v", cfg.HighlightDuration(), DefaultHighlightTTL)
	}
	if cfg.RenderMarkdown {
		t.Error("Default RenderMarkdown = true, want false")
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Default theme preset = %s, want default", cfg.ColorScheme.Preset)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PASOMD_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.DefaultColumn != "Todo" {
		t.Errorf("Loaded DefaultColumn = %s, want Todo (default)", cfg.DefaultColumn)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("PASOMD_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "pasomd")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `default_column: "Inbox"
fence_languages: ["kanban", "board"]
highlight_ttl: "2s"
render_markdown: true
theme:
  preset: "monochrome"
  highlight: "#00FF00"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.DefaultColumn != "Inbox" {
		t.Errorf("Loaded DefaultColumn = %s, want Inbox", cfg.DefaultColumn)
	}
	if len(cfg.FenceLanguages) != 2 || cfg.FenceLanguages[1] != "board" {
		t.Errorf("Loaded FenceLanguages = %v, want [kanban board]", cfg.FenceLanguages)
	}
	if cfg.HighlightDuration() != 2*time.Second {
		t.Errorf("Loaded HighlightDuration = %v, want 2s", cfg.HighlightDuration())
	}
	if !cfg.RenderMarkdown {
		t.Error("Loaded RenderMarkdown = false, want true")
	}
	if cfg.ColorScheme.Highlight != "#00FF00" {
		t.Errorf("Loaded theme highlight = %s, want #00FF00", cfg.ColorScheme.Highlight)
	}
	// Unset colors come from the chosen preset
	if cfg.ColorScheme.Title != MonochromeColorScheme().Title {
		t.Errorf("Loaded theme title = %s, want monochrome %s", cfg.ColorScheme.Title, MonochromeColorScheme().Title)
	}
}

func TestLoadFromPartialConfig(t *testing.T) {
	t.Setenv("PASOMD_THEME_FILE", "")
	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(configPath, []byte("render_markdown: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	// Missing keys fall back to defaults
	if cfg.DefaultColumn != "Todo" {
		t.Errorf("DefaultColumn = %s, want Todo", cfg.DefaultColumn)
	}
	if len(cfg.FenceLanguages) != 1 || cfg.FenceLanguages[0] != "kanban" {
		t.Errorf("FenceLanguages = %v, want [kanban]", cfg.FenceLanguages)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default %s", cfg.ColorScheme.Accent, DefaultColorScheme().Accent)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	t.Setenv("PASOMD_THEME_FILE", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() of a missing file failed: %v", err)
	}
	if cfg.DefaultColumn != "Todo" {
		t.Errorf("DefaultColumn = %s, want Todo", cfg.DefaultColumn)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(configPath, []byte("default_column: [unclosed\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("LoadFrom() with invalid YAML should fail")
	}
}

func TestHighlightDurationFallback(t *testing.T) {
	for _, value := range []string{"soon", "-1s", "0s"} {
		cfg := &Config{HighlightTTL: value}
		if got := cfg.HighlightDuration(); got != DefaultHighlightTTL {
			t.Errorf("HighlightDuration(%q) = %v, want %v", value, got, DefaultHighlightTTL)
		}
	}
}

func TestSave(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("PASOMD_THEME_FILE", "")

	cfg := Default()
	cfg.DefaultColumn = "Backlog"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if loaded.DefaultColumn != "Backlog" {
		t.Errorf("Reloaded DefaultColumn = %s, want Backlog", loaded.DefaultColumn)
	}
}
