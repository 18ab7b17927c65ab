package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for a generation run.
// All exclusion and rename tables are plain data so the generator can be
// retargeted to a different protocol meta-model without code changes.
type Config struct {
	// Spec is the path to the meta-model document (metaModel.json)
	Spec    string   `yaml:"spec"`
	Name    string   `yaml:"name"`
	Targets []Target `yaml:"targets"`

	// EnumRenames maps enumeration names whose generated name would collide
	// with an unrelated result type sharing the source identifier
	EnumRenames map[string]string `yaml:"enumRenames"`
	// ReservedInterfaces are message-envelope structures the runtime supplies
	// natively; they are stripped from the model before generation
	ReservedInterfaces []string `yaml:"reservedInterfaces"`
	// ReservedTypes are type aliases the runtime supplies natively
	ReservedTypes []string `yaml:"reservedTypes"`
}

// Target represents configuration for a single output target
type Target struct {
	Type      string `yaml:"type"`
	OutDir    string `yaml:"outDir"`
	Namespace string `yaml:"namespace"`

	// PrimitiveAliases are alias names mapped onto native types of the target
	// language; their declarations are suppressed
	PrimitiveAliases []string `yaml:"primitiveAliases"`
	// HandwrittenBindings are interface names whose JSON binding is supplied
	// by hand; only a forward declaration is emitted for them
	HandwrittenBindings []string `yaml:"handwrittenBindings"`
	// MethodPrefixes are wire-method prefixes dropped when deriving symbol
	// names (e.g. "$" in "$/cancelRequest")
	MethodPrefixes []string `yaml:"methodPrefixes"`
	// ErrorType is the error-payload type every request is parameterized with
	ErrorType string `yaml:"errorType"`
}

// Default returns the configuration for the Language Server Protocol
// meta-model, the shape this generator was built against.
func Default() *Config {
	return &Config{
		Name: "lsp",
		EnumRenames: map[string]string{
			"InitializeError": "InitializeErrorCodes",
		},
		ReservedInterfaces: []string{
			"Message", "RequestMessage", "ResponseMessage", "ResponseError",
			"NotificationMessage", "LSPObject", "T",
		},
		ReservedTypes: []string{"LSPAny"},
		Targets: []Target{DefaultTarget()},
	}
}

// DefaultTarget returns the default C++ target configuration.
func DefaultTarget() Target {
	return Target{
		Type:                "cpp",
		Namespace:           "Lsp",
		PrimitiveAliases:    []string{"integer", "uinteger", "decimal"},
		HandwrittenBindings: []string{"SelectionRange", "FormattingOptions", "ChangeAnnotationsType"},
		MethodPrefixes:      []string{"$", "window", "client"},
		ErrorType:           "ResponseError",
	}
}

// Load loads configuration from a YAML file. Tables left unset in the file
// fall back to the LSP defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Spec == "" {
		return nil, errors.New("config.spec is required")
	}
	def := Default()
	if cfg.EnumRenames == nil {
		cfg.EnumRenames = def.EnumRenames
	}
	if cfg.ReservedInterfaces == nil {
		cfg.ReservedInterfaces = def.ReservedInterfaces
	}
	if cfg.ReservedTypes == nil {
		cfg.ReservedTypes = def.ReservedTypes
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.New("config.targets must list at least one target")
	}
	defTarget := DefaultTarget()
	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if t.Type == "" || t.OutDir == "" {
			return nil, fmt.Errorf("targets[%d] missing required fields (type, outDir)", i)
		}
		if !filepath.IsAbs(t.OutDir) {
			abs, _ := filepath.Abs(t.OutDir)
			t.OutDir = abs
		}
		if t.Namespace == "" {
			t.Namespace = defTarget.Namespace
		}
		if t.PrimitiveAliases == nil {
			t.PrimitiveAliases = defTarget.PrimitiveAliases
		}
		if t.HandwrittenBindings == nil {
			t.HandwrittenBindings = defTarget.HandwrittenBindings
		}
		if t.MethodPrefixes == nil {
			t.MethodPrefixes = defTarget.MethodPrefixes
		}
		if t.ErrorType == "" {
			t.ErrorType = defTarget.ErrorType
		}
	}
	if !filepath.IsAbs(cfg.Spec) {
		abs, _ := filepath.Abs(cfg.Spec)
		cfg.Spec = abs
	}
	return &cfg, nil
}
