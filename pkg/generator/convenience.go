package generator

import (
	"path/filepath"

	"github.com/blimu-dev/lspgen/pkg/config"
)

// GenerateCpp is a convenience function for generating the C++ artifacts from
// a meta-model document with the default LSP configuration
func GenerateCpp(spec, outDir string) error {
	absOutDir, err := filepath.Abs(outDir)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Spec = spec
	cfg.Targets[0].OutDir = absOutDir

	return NewService().GenerateFromConfig(cfg, "")
}

// GenerateFromConfig is a convenience function for generating from a config file
func GenerateFromConfig(configPath string, onlyTarget ...string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	only := ""
	if len(onlyTarget) > 0 {
		only = onlyTarget[0]
	}

	return NewService().GenerateFromConfig(cfg, only)
}

// ValidateSpec validates a meta-model document without generating anything
func ValidateSpec(specPath string) error {
	return Validate(specPath)
}
