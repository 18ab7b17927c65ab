package generator

import (
	"fmt"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/generator/cpp"
	"github.com/blimu-dev/lspgen/pkg/metamodel"
	"github.com/blimu-dev/lspgen/pkg/model"
)

// Generator defines the interface for target-language generators
type Generator interface {
	// Generate emits the four artifacts for a normalized model
	Generate(target config.Target, m *model.Model) error
	// GetType returns the type identifier for this generator (e.g., "cpp")
	GetType() string
}

// Registry manages available generators
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Generator),
	}
}

// Register adds a generator to the registry
func (r *Registry) Register(gen Generator) {
	r.generators[gen.GetType()] = gen
}

// Get retrieves a generator by type
func (r *Registry) Get(genType string) (Generator, bool) {
	gen, exists := r.generators[genType]
	return gen, exists
}

// GetAvailableTypes returns all registered generator types
func (r *Registry) GetAvailableTypes() []string {
	types := make([]string, 0, len(r.generators))
	for t := range r.generators {
		types = append(types, t)
	}
	return types
}

// Service provides high-level generation functionality
type Service struct {
	registry *Registry
}

// NewService creates a new generator service with default generators
func NewService() *Service {
	registry := NewRegistry()
	registry.Register(cpp.NewCppGenerator())
	return &Service{
		registry: registry,
	}
}

// NewServiceWithRegistry creates a new generator service with a custom registry
func NewServiceWithRegistry(registry *Registry) *Service {
	return &Service{
		registry: registry,
	}
}

// GenerateFromConfig loads the meta-model named by the configuration, builds
// and normalizes the model and runs every configured target over it. The
// model is built once and read-only during generation.
func (s *Service) GenerateFromConfig(cfg *config.Config, onlyTarget string) error {
	m, err := loadModel(cfg)
	if err != nil {
		return err
	}

	for _, target := range cfg.Targets {
		if onlyTarget != "" && target.Type != onlyTarget {
			continue
		}

		gen, exists := s.registry.Get(target.Type)
		if !exists {
			return fmt.Errorf("unsupported target type: %s", target.Type)
		}
		if err := gen.Generate(target, m); err != nil {
			return fmt.Errorf("target %s: %w", target.Type, err)
		}
	}

	return nil
}

// Validate loads, builds and normalizes the meta-model and verifies that the
// declaration universe resolves: every dependency names a declared entity and
// the graph is acyclic. Nothing is written.
func Validate(specPath string) error {
	cfg := config.Default()
	cfg.Spec = specPath
	m, err := loadModel(cfg)
	if err != nil {
		return err
	}
	if _, err := model.ResolveOrder(m.TypeAliases, m.Interfaces); err != nil {
		return err
	}
	return nil
}

// GetRegistry returns the generator registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

func loadModel(cfg *config.Config) (*model.Model, error) {
	doc, err := metamodel.Load(cfg.Spec)
	if err != nil {
		return nil, err
	}
	m, err := metamodel.Build(doc)
	if err != nil {
		return nil, err
	}
	if err := Normalize(m, cfg); err != nil {
		return nil, err
	}
	return m, nil
}
