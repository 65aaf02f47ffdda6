package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded pseudo.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the pseudo.toml schema. Every field defaults; a manifest only
// overrides what it names.
type Config struct {
	Convert ConvertConfig `toml:"convert"`
	Output  OutputConfig  `toml:"output"`
}

// ConvertConfig controls the pipeline input side.
type ConvertConfig struct {
	// Language forces the input dialect: "js", "java", or "auto".
	Language string `toml:"language"`
	// MaxDiagnostics caps the diagnostics kept per file.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// OutputConfig controls the rendered pseudocode.
type OutputConfig struct {
	IndentWidth int    `toml:"indent_width"`
	Annotations *bool  `toml:"annotations"`
	Strict      bool   `toml:"strict"`
	Extension   string `toml:"extension"`
}

// DefaultConfig returns the built-in defaults used when no manifest exists
// or a field is left out.
func DefaultConfig() Config {
	return Config{
		Convert: ConvertConfig{
			Language:       "auto",
			MaxDiagnostics: 256,
		},
		Output: OutputConfig{
			IndentWidth: 3,
			Extension:   ".pseudo",
		},
	}
}

// AnnotationsEnabled resolves the tri-state annotations toggle: absent
// means enabled.
func (o OutputConfig) AnnotationsEnabled() bool {
	return o.Annotations == nil || *o.Annotations
}

// Load discovers and parses the nearest manifest above startDir. When no
// manifest exists it returns ok=false and a manifest holding the defaults.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: DefaultConfig()}, false, nil
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := ParseLanguage(cfg.Convert.Language); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Convert.MaxDiagnostics <= 0 {
		cfg.Convert.MaxDiagnostics = DefaultConfig().Convert.MaxDiagnostics
	}
	if cfg.Output.Extension == "" {
		cfg.Output.Extension = DefaultConfig().Output.Extension
	}
	if !strings.HasPrefix(cfg.Output.Extension, ".") {
		cfg.Output.Extension = "." + cfg.Output.Extension
	}
	return cfg, nil
}

// ParseLanguage validates a manifest language value.
func ParseLanguage(name string) (string, error) {
	switch name {
	case "", "auto", "js", "javascript", "java":
		return name, nil
	}
	return "", fmt.Errorf("unknown [convert].language %q (expected js|java|auto)", name)
}
