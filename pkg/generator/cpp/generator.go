package cpp

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/model"
)

//go:embed templates/*
var templatesFS embed.FS

// CppGenerator emits the four C++ artifacts for a normalized model:
// declarations, JSON bindings, notifications and requests
type CppGenerator struct{}

// NewCppGenerator creates a new C++ generator
func NewCppGenerator() *CppGenerator {
	return &CppGenerator{}
}

// GetType returns the generator type identifier
func (g *CppGenerator) GetType() string {
	return "cpp"
}

// Generate renders the four artifacts into the target's output directory.
// The model is only read; a write failure propagates immediately and may
// leave earlier artifacts behind.
func (g *CppGenerator) Generate(target config.Target, m *model.Model) error {
	if err := os.MkdirAll(target.OutDir, 0o755); err != nil {
		return err
	}

	typesAndInterfaces, err := writeTypesAndInterfaces(m, target)
	if err != nil {
		return err
	}
	declarations := writeEnums(m) + typesAndInterfaces

	bindings := writeEnumBindings(m) + writeInterfaceBindings(m, target)
	notifications := writeNotifications(m, target)
	requests := writeRequests(m, target)

	artifacts := []struct {
		template string
		file     string
		body     string
	}{
		{"types.h.gotmpl", "types.h", declarations},
		{"types_json.h.gotmpl", "types_json.h", bindings},
		{"notifications.h.gotmpl", "notifications.h", notifications},
		{"requests.h.gotmpl", "requests.h", requests},
	}
	for _, artifact := range artifacts {
		targetPath := filepath.Join(target.OutDir, artifact.file)
		data := map[string]any{"Namespace": target.Namespace, "Body": artifact.body}
		if err := renderFile(artifact.template, targetPath, data); err != nil {
			return err
		}
	}
	return nil
}

// renderFile renders a template file to the target path
func renderFile(templateName, targetPath string, data map[string]any) error {
	tmplContent, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Funcs(sprig.FuncMap()).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	file, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", targetPath, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	return nil
}
