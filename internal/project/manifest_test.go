package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"pseudo/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_NoManifestReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	m, ok, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("no manifest exists, ok must be false")
	}
	if m.Config.Output.IndentWidth != 3 || m.Config.Convert.Language != "auto" {
		t.Fatalf("defaults not applied: %+v", m.Config)
	}
	if !m.Config.Output.AnnotationsEnabled() {
		t.Fatal("annotations default to enabled")
	}
}

func TestLoad_ManifestOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[convert]
language = "java"

[output]
indent_width = 4
annotations = false
`)
	m, ok, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest exists, ok must be true")
	}
	if m.Config.Convert.Language != "java" {
		t.Errorf("language = %q", m.Config.Convert.Language)
	}
	if m.Config.Output.IndentWidth != 4 {
		t.Errorf("indent_width = %d", m.Config.Output.IndentWidth)
	}
	if m.Config.Output.AnnotationsEnabled() {
		t.Error("annotations = false not honored")
	}
	// fields the manifest left out keep their defaults
	if m.Config.Convert.MaxDiagnostics != 256 {
		t.Errorf("max_diagnostics = %d", m.Config.Convert.MaxDiagnostics)
	}
	if m.Config.Output.Extension != ".pseudo" {
		t.Errorf("extension = %q", m.Config.Output.Extension)
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoad_WalksUpward(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output]\nindent_width = 2\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := project.Load(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if m.Config.Output.IndentWidth != 2 {
		t.Fatalf("indent_width = %d", m.Config.Output.IndentWidth)
	}
}

func TestLoad_RejectsUnknownLanguage(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[convert]\nlanguage = \"python\"\n")
	_, ok, err := project.Load(dir)
	if !ok || err == nil {
		t.Fatalf("ok=%v err=%v, want a language error", ok, err)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[convert]\ntarget = \"vb\"\n")
	_, _, err := project.Load(dir)
	if err == nil {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestLoad_ExtensionGainsDot(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output]\nextension = \"txt\"\n")
	m, _, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Config.Output.Extension != ".txt" {
		t.Fatalf("extension = %q", m.Config.Output.Extension)
	}
}

func TestCombine_Deterministic(t *testing.T) {
	a := project.HashBytes([]byte("content"))
	b := project.HashBytes([]byte("options"))
	k1 := project.Combine(a, b)
	k2 := project.Combine(a, b)
	if k1 != k2 {
		t.Fatal("same inputs must give the same key")
	}
	if k1 == project.Combine(b, a) {
		t.Fatal("order must matter")
	}
	var zero project.Digest
	if k1 == zero {
		t.Fatal("key must not be zero")
	}
}
