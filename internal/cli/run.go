package cli

import (
	"errors"
	"path/filepath"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/generator"
)

// FallbackParams configures a single-target run without a config file
type FallbackParams struct {
	Spec      string
	OutDir    string
	Namespace string
}

// RunGenerateParams holds the generate command parameters
type RunGenerateParams struct {
	ConfigPath   string
	SingleTarget string
	Fallback     FallbackParams
}

// RunValidate checks a meta-model document without writing anything
func RunValidate(input string) error {
	return generator.Validate(input)
}

// RunGenerate runs a generation pass from a config file or from the fallback
// flags; the fallback uses the default LSP tables.
func RunGenerate(p RunGenerateParams) error {
	if p.ConfigPath != "" {
		cfg, err := config.Load(p.ConfigPath)
		if err != nil {
			return err
		}
		return generator.NewService().GenerateFromConfig(cfg, p.SingleTarget)
	}

	if p.Fallback.Spec == "" || p.Fallback.OutDir == "" {
		return errors.New("either --config or both --input and --out must be provided")
	}

	cfg := config.Default()
	cfg.Spec = absPath(p.Fallback.Spec)
	cfg.Targets[0].OutDir = absPath(p.Fallback.OutDir)
	if p.Fallback.Namespace != "" {
		cfg.Targets[0].Namespace = p.Fallback.Namespace
	}
	return generator.NewService().GenerateFromConfig(cfg, p.SingleTarget)
}

// utility
func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}
