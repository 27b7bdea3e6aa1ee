// ABOUTME: Tests for settings loading, merging, validation and tree option mapping
// ABOUTME: Uses temp directories and t.Setenv for isolated file-based tests

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/checktree-go/pkg/checktree"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{TreeID: "global", Theme: "dark", OptimisticToggle: Bool(true)}
	project := &Settings{TreeID: "project", OptimisticToggle: Bool(false)}

	got := merge(global, project)
	if got.TreeID != "project" {
		t.Errorf("TreeID = %q; want %q", got.TreeID, "project")
	}
	if got.Theme != "dark" {
		t.Errorf("Theme = %q; want inherited %q", got.Theme, "dark")
	}
	if got.OptimisticToggle == nil || *got.OptimisticToggle {
		t.Errorf("OptimisticToggle = %v; want explicit false from project", got.OptimisticToggle)
	}
	if !*global.OptimisticToggle {
		t.Error("merge mutated the global settings")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()
	if merge(nil, nil) == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       Settings
		wantErr string
	}{
		{"empty ok", Settings{}, ""},
		{"all ok", Settings{CheckModel: "all", Format: FormatText}, ""},
		{"bad model", Settings{CheckModel: "folders"}, "check model"},
		{"bad format", Settings{Format: "pdf"}, "unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v; want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v; want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestTreeOptions(t *testing.T) {
	t.Parallel()

	s := &Settings{
		CheckModel:         "all",
		OptimisticToggle:   Bool(false),
		OnlyLeafCheckboxes: Bool(true),
	}
	got := s.TreeOptions("files")
	want := checktree.DefaultTreeOptions("files")
	want.CheckModel = checktree.CheckAll
	want.OptimisticToggle = false
	want.OnlyLeafCheckboxes = true
	if got != want {
		t.Errorf("TreeOptions() = %+v; want %+v", got, want)
	}

	s.TreeID = "configured"
	if got := s.TreeOptions("files").TreeID; got != "configured" {
		t.Errorf("TreeID = %q; want configured id to win", got)
	}
}

func TestOutputFormat(t *testing.T) {
	t.Parallel()
	if got := (&Settings{}).OutputFormat(); got != FormatHTML {
		t.Errorf("OutputFormat() = %q; want %q", got, FormatHTML)
	}
	if got := (&Settings{Format: FormatText}).OutputFormat(); got != FormatText {
		t.Errorf("OutputFormat() = %q; want %q", got, FormatText)
	}
}

func writeSettings(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_GlobalAndProject(t *testing.T) {
	globalDir := t.TempDir()
	project := t.TempDir()
	t.Setenv(EnvConfigDir, globalDir)
	t.Setenv(EnvTheme, "")
	t.Setenv("TREE_SUFFIX", "42")

	writeSettings(t, filepath.Join(globalDir, "settings.json"),
		`{"tree_id": "tree-${TREE_SUFFIX}", "theme": "dark", "show_node_icon": false}`)
	writeSettings(t, ProjectSettingsFile(project), `{"theme": "light", "format": "text"}`)

	s, err := Load(project)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.TreeID != "tree-42" {
		t.Errorf("TreeID = %q; want expanded %q", s.TreeID, "tree-42")
	}
	if s.Theme != "light" {
		t.Errorf("Theme = %q; want project override %q", s.Theme, "light")
	}
	if s.OutputFormat() != FormatText {
		t.Errorf("Format = %q; want %q", s.Format, FormatText)
	}
	if s.TreeOptions("x").ShowNodeIcon {
		t.Error("ShowNodeIcon should be false from global settings")
	}
}

func TestLoad_EnvThemeWins(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())
	t.Setenv(EnvTheme, "monochrome")

	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Theme != "monochrome" {
		t.Errorf("Theme = %q; want %q", s.Theme, "monochrome")
	}
}

func TestLoad_Errors(t *testing.T) {
	globalDir := t.TempDir()
	t.Setenv(EnvConfigDir, globalDir)
	t.Setenv(EnvTheme, "")

	writeSettings(t, filepath.Join(globalDir, "settings.json"), "{broken")
	if _, err := Load(t.TempDir()); err == nil || !strings.Contains(err.Error(), "global config") {
		t.Errorf("Load() error = %v; want global parse error", err)
	}

	writeSettings(t, filepath.Join(globalDir, "settings.json"), `{"check_model": "some"}`)
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load() should reject an unknown check model")
	}
}

func TestGlobalDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/ct")
	if got := GlobalSettingsFile(); got != filepath.Join("/tmp/ct", "settings.json") {
		t.Errorf("GlobalSettingsFile() = %q", got)
	}
}
