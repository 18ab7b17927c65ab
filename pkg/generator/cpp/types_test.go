package cpp

import (
	"strings"
	"testing"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/model"
)

func TestWritePropertyShapes(t *testing.T) {
	m := &model.Model{}
	tests := []struct {
		name     string
		property model.Property
		expected string
	}{
		{
			"plain required field",
			model.Property{Name: "line", Type: "unsigned int", Kind: model.KindPlain},
			"\tunsigned int line;\n",
		},
		{
			"optional field",
			model.Property{Name: "rangeLength", Type: "unsigned int", Optional: true, Kind: model.KindPlain},
			"\tstd::optional<unsigned int> rangeLength;\n",
		},
		{
			"self-reference is heap-boxed",
			model.Property{Name: "parent", Type: "SelectionRange", Kind: model.KindPlain},
			"\tstd::unique_ptr<SelectionRange> parent;\n",
		},
		{
			"optional self-reference is still heap-boxed",
			model.Property{Name: "parent", Type: "SelectionRange", Optional: true, Kind: model.KindPlain},
			"\tstd::unique_ptr<SelectionRange> parent;\n",
		},
		{
			"literal constant",
			model.Property{Name: "kind", Type: "'rename'", Kind: model.KindLiteralConstant},
			"\tstatic inline const std::string kind = \"rename\";\n",
		},
	}

	for _, test := range tests {
		result, err := writeProperty(test.property, "SelectionRange", m)
		if err != nil {
			t.Errorf("%s: writeProperty failed: %v", test.name, err)
			continue
		}
		if result != test.expected {
			t.Errorf("%s:\ngot      %q\nexpected %q", test.name, result, test.expected)
		}
	}
}

func TestWritePropertyLiteralAlternativesDocumented(t *testing.T) {
	p := model.Property{
		Name:      "kind",
		Type:      "create",
		Kind:      model.KindLiteralConstant,
		AltValues: []string{"rename", "delete"},
	}

	result, err := writeProperty(p, "CreateFile", &model.Model{})
	if err != nil {
		t.Fatalf("writeProperty failed: %v", err)
	}
	if !strings.Contains(result, `static inline const std::string kind = "create";`) {
		t.Errorf("missing constant declaration:\n%s", result)
	}
	// The alternatives show up in the documentation, never as extra fields
	if !strings.Contains(result, `"rename"`) || !strings.Contains(result, `"delete"`) {
		t.Errorf("alternative literals missing from documentation:\n%s", result)
	}
	if strings.Count(result, "static inline") != 1 {
		t.Errorf("alternatives must not produce additional fields:\n%s", result)
	}
}

func TestWritePropertyUnionReordering(t *testing.T) {
	p := model.Property{
		Name: "documentation",
		Kind: model.KindUnion,
		Alternatives: []model.Alternative{
			{Value: "A", Deprecated: true, Since: "3.0"},
			{Value: "B", Deprecated: false, Since: "3.15"},
			{Value: "C", Deprecated: false, Since: "3.0"},
		},
	}

	result, err := writeProperty(p, "CompletionItem", &model.Model{})
	if err != nil {
		t.Fatalf("writeProperty failed: %v", err)
	}
	if !strings.Contains(result, "std::variant<C, B, A> documentation;") {
		t.Errorf("alternatives not reordered to [C, B, A]:\n%s", result)
	}
}

func TestWritePropertyUnionResolvesReferences(t *testing.T) {
	m := &model.Model{
		Interfaces: []model.Interface{
			{Name: "Old", Deprecated: true, Since: "3.0"},
			{Name: "New", Since: "3.16"},
		},
	}
	p := model.Property{
		Name: "contents",
		Kind: model.KindUnion,
		Alternatives: []model.Alternative{
			{Value: "Old", Ref: "Old"},
			{Value: "New", Ref: "New"},
		},
	}

	result, err := writeProperty(p, "Hover", m)
	if err != nil {
		t.Fatalf("writeProperty failed: %v", err)
	}
	if !strings.Contains(result, "std::variant<New, Old> contents;") {
		t.Errorf("deprecated referenced alternative not pushed last:\n%s", result)
	}
}

func TestWritePropertyConflictingKinds(t *testing.T) {
	p := model.Property{Name: "kind", Type: "Hover", Kind: model.KindLiteralConstant}
	if _, err := writeProperty(p, "Hover", &model.Model{}); err == nil {
		t.Fatal("expected error for literal constant that is also a self-reference")
	}
}

func TestWriteMainInterface(t *testing.T) {
	m := &model.Model{}
	iface := model.Interface{
		Name:    "CodeActionParams",
		Extends: []string{"WorkDoneProgressParams", "PartialResultParams"},
		Children: []model.Interface{
			{
				Name: "DisabledType",
				Properties: []model.Property{
					{Name: "reason", Type: "std::string", Kind: model.KindPlain},
				},
			},
		},
		Properties: []model.Property{
			{Name: "textDocument", Type: "TextDocumentIdentifier", Kind: model.KindPlain},
		},
	}

	result, err := writeMainInterface(iface, m)
	if err != nil {
		t.Fatalf("writeMainInterface failed: %v", err)
	}

	if !strings.Contains(result, "struct CodeActionParams : public WorkDoneProgressParams, public PartialResultParams {") {
		t.Errorf("bad header:\n%s", result)
	}
	childPos := strings.Index(result, "struct DisabledType {")
	propPos := strings.Index(result, "TextDocumentIdentifier textDocument;")
	if childPos < 0 || propPos < 0 {
		t.Fatalf("missing child or property:\n%s", result)
	}
	if childPos > propPos {
		t.Errorf("nested child must be rendered before the parent's properties:\n%s", result)
	}
}

func TestWriteEnums(t *testing.T) {
	m := &model.Model{
		Enumerations: []model.Enumeration{
			{
				Name: "TextDocumentSyncKind",
				Base: model.EnumBaseNumeric,
				Values: []model.EnumValue{
					{Name: "None", Value: "0"},
					{Name: "Full", Value: "1"},
				},
			},
			{
				Name: "MarkupKind",
				Base: model.EnumBaseString,
				Values: []model.EnumValue{
					{Name: "PlainText", Value: "plaintext"},
				},
			},
		},
	}

	result := writeEnums(m)
	if !strings.Contains(result, "enum class TextDocumentSyncKind {\n\tNone = 0,\n\tFull = 1,\n};") {
		t.Errorf("bad numeric enum:\n%s", result)
	}
	// String enums carry no wire value in the declaration
	if !strings.Contains(result, "enum class MarkupKind {\n\tPlainText,\n};") {
		t.Errorf("bad string enum:\n%s", result)
	}
}

func TestWriteTypeSkipsPrimitiveAliases(t *testing.T) {
	target := config.DefaultTarget()
	m := &model.Model{
		TypeAliases: []model.TypeAlias{
			{Name: "integer", Value: "int"},
			{Name: "DocumentSelector", Value: "std::vector<DocumentFilter>"},
		},
		Interfaces: []model.Interface{{Name: "DocumentFilter"}},
	}
	// DocumentSelector depends on DocumentFilter
	m.TypeAliases[1].Dependencies = []string{"DocumentFilter"}

	result, err := writeTypesAndInterfaces(m, target)
	if err != nil {
		t.Fatalf("writeTypesAndInterfaces failed: %v", err)
	}
	if strings.Contains(result, "using integer") {
		t.Errorf("primitive alias emitted:\n%s", result)
	}
	if !strings.Contains(result, "using DocumentSelector = std::vector<DocumentFilter>;") {
		t.Errorf("missing alias declaration:\n%s", result)
	}
	if strings.Index(result, "struct DocumentFilter") > strings.Index(result, "using DocumentSelector") {
		t.Errorf("dependency emitted after its dependent:\n%s", result)
	}
}
