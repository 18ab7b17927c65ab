package cpp

import (
	"strings"
	"testing"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/model"
)

func TestFlattenPropertiesInheritance(t *testing.T) {
	m := &model.Model{
		Interfaces: []model.Interface{
			{
				Name: "Parent",
				Properties: []model.Property{
					{Name: "p1", Type: "int", Kind: model.KindPlain},
					{Name: "p2", Type: "int", Kind: model.KindPlain},
				},
			},
			{
				Name:    "Child",
				Extends: []string{"Parent"},
				Properties: []model.Property{
					{Name: "p3", Type: "int", Kind: model.KindPlain},
				},
			},
		},
	}

	got := flattenProperties(m.Interface("Child"), m)
	expected := "p3, p1, p2"
	if joined := strings.Join(got, ", "); joined != expected {
		t.Errorf("flattened properties = %q, expected %q", joined, expected)
	}
}

func TestWriteInterfaceBindings(t *testing.T) {
	target := config.DefaultTarget()
	m := &model.Model{
		Interfaces: []model.Interface{
			{
				Name: "WorkspaceEdit",
				Children: []model.Interface{
					{
						Name: "ChangesType",
						Properties: []model.Property{
							{Name: "uri", Type: "std::string", Kind: model.KindPlain},
						},
					},
				},
				Properties: []model.Property{
					{Name: "changes", Type: "ChangesType", Optional: true, Kind: model.KindPlain},
				},
			},
			{Name: "InitializedParams"},
			{Name: "SelectionRange", Properties: []model.Property{
				{Name: "range", Type: "Range", Kind: model.KindPlain},
			}},
		},
	}

	result := writeInterfaceBindings(m, target)

	// Nested children are scoped and emitted before the parent's own binding
	childPos := strings.Index(result, "JSONIFY(WorkspaceEdit::ChangesType, uri)")
	parentPos := strings.Index(result, "JSONIFY(WorkspaceEdit, changes)")
	if childPos < 0 || parentPos < 0 {
		t.Fatalf("missing bindings:\n%s", result)
	}
	if childPos > parentPos {
		t.Errorf("child binding must precede the parent's:\n%s", result)
	}

	if !strings.Contains(result, "JSONIFY_EMPTY(InitializedParams)") {
		t.Errorf("empty interface must get an empty-object binding:\n%s", result)
	}

	// Hand-written exceptions yield a forward declaration only, regardless of
	// their declared properties
	if !strings.Contains(result, "JSONIFY_FWD(SelectionRange)") {
		t.Errorf("missing forward declaration for hand-written binding:\n%s", result)
	}
	if strings.Contains(result, "JSONIFY(SelectionRange") {
		t.Errorf("hand-written binding must not emit a property list:\n%s", result)
	}
}

func TestWriteEnumBindings(t *testing.T) {
	m := &model.Model{
		Enumerations: []model.Enumeration{
			{
				Name: "MarkupKind",
				Base: model.EnumBaseString,
				Values: []model.EnumValue{
					{Name: "PlainText", Value: "plaintext"},
					{Name: "Markdown", Value: "markdown"},
				},
			},
			{
				Name: "TextDocumentSyncKind",
				Base: model.EnumBaseNumeric,
				Values: []model.EnumValue{
					{Name: "None", Value: "0"},
				},
			},
		},
	}

	result := writeEnumBindings(m)
	if !strings.Contains(result, "JSONIFY_ENUM( MarkupKind, {") {
		t.Errorf("missing string enum binding:\n%s", result)
	}
	if !strings.Contains(result, `{MarkupKind::PlainText, "plaintext"},`) {
		t.Errorf("missing enumerator pair:\n%s", result)
	}
	// Numeric enums serialize through their value, no binding
	if strings.Contains(result, "TextDocumentSyncKind") {
		t.Errorf("numeric enum must not produce a binding:\n%s", result)
	}
}
