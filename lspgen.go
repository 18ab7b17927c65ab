// Package lspgen generates strongly-typed C++ declarations and JSON bindings
// from a protocol meta-model, as published with the Language Server Protocol
// specification.
//
// Quick Start:
//
//	import "github.com/blimu-dev/lspgen"
//
//	// Generate the C++ artifacts with the default LSP configuration
//	err := lspgen.GenerateCpp("./metaModel.json", "./src/lsp")
//
// The exclusion tables (framework-reserved names, hand-written bindings,
// method prefixes) are configuration data; see the config package to retarget
// the generator to a different protocol meta-model.
package lspgen

import (
	"github.com/blimu-dev/lspgen/pkg/generator"
)

// GenerateCpp generates the four C++ artifacts (types, JSON bindings,
// notifications, requests) from a meta-model document with the default LSP
// configuration.
//
// Parameters:
//   - spec: path to the meta-model document (metaModel.json)
//   - outDir: output directory for the generated headers
func GenerateCpp(spec, outDir string) error {
	return generator.GenerateCpp(spec, outDir)
}

// GenerateFromConfig generates artifacts from a YAML configuration file.
// Optionally, a single target type can be named to generate only that target.
//
// Example:
//
//	// Generate all targets from config
//	err := lspgen.GenerateFromConfig("./lspgen.yaml")
//
//	// Generate only the cpp target
//	err := lspgen.GenerateFromConfig("./lspgen.yaml", "cpp")
func GenerateFromConfig(configPath string, onlyTarget ...string) error {
	return generator.GenerateFromConfig(configPath, onlyTarget...)
}

// ValidateSpec validates a meta-model document: it must decode, normalize and
// form an acyclic dependency graph with no dangling references.
//
// Example:
//
//	err := lspgen.ValidateSpec("./metaModel.json")
//	if err != nil {
//		log.Fatalf("Invalid meta-model: %v", err)
//	}
func ValidateSpec(spec string) error {
	return generator.ValidateSpec(spec)
}
