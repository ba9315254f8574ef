package configs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_CreateDefaultConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linelens.yaml")
	if err := CreateDefaultConfig(path, FormatYAML); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, section := range []string{"app:", "log:", "analyze:", "watch:"} {
		if !strings.Contains(content, section) {
			t.Errorf("config file missing section %q", section)
		}
	}
	if !strings.Contains(content, "format: text") {
		t.Error("config file missing analyze format default")
	}
}

func Test_CreateDefaultConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linelens.json")
	if err := CreateDefaultConfig(path, FormatJSON); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("generated config is not valid JSON: %v", err)
	}
	if _, ok := settings["analyze"]; !ok {
		t.Error("generated config missing analyze section")
	}
}

func Test_CreateDefaultConfig_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linelens.toml")
	if err := CreateDefaultConfig(path, FormatTOML); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[analyze]") {
		t.Error("generated config missing [analyze] table")
	}
}

func Test_CreateDefaultConfig_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linelens.yaml")
	if err := os.WriteFile(path, []byte("version: 1.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CreateDefaultConfig(path, FormatYAML); err == nil {
		t.Fatal("expected error when config file already exists")
	}
}

func Test_CreateDefaultConfig_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linelens.txt")
	if err := CreateDefaultConfig(path, FormatText); err == nil {
		t.Fatal("expected error for text format")
	}
}

func Test_CreateDefaultConfig_NestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "deep", "linelens.yaml")
	if err := CreateDefaultConfig(path, FormatYAML); err != nil {
		t.Fatalf("CreateDefaultConfig: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
}
