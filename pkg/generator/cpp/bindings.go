package cpp

import (
	"fmt"
	"strings"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/model"
)

// writeEnumBindings renders the wire tables for string-backed enumerations.
// Numeric enums serialize through their value and need no binding.
func writeEnumBindings(m *model.Model) string {
	var b strings.Builder
	for _, e := range m.Enumerations {
		if e.Base != model.EnumBaseString {
			continue
		}
		var content strings.Builder
		for _, v := range e.Values {
			fmt.Fprintf(&content, "    {%s::%s, \"%s\"},\n", e.Name, v.Name, v.Value)
		}
		fmt.Fprintf(&b, "\nJSONIFY_ENUM( %s, {\n%s})\n", e.Name, content.String())
	}
	return b.String()
}

// writeInterfaceBindings renders one binding per top-level interface, in
// input order, recursing into nested children
func writeInterfaceBindings(m *model.Model, target config.Target) string {
	handwritten := make(map[string]struct{}, len(target.HandwrittenBindings))
	for _, name := range target.HandwrittenBindings {
		handwritten[name] = struct{}{}
	}

	var b strings.Builder
	for i := range m.Interfaces {
		b.WriteString(writeInterfaceBinding(&m.Interfaces[i], nil, m, handwritten))
	}
	return b.String()
}

// writeInterfaceBinding emits the binding for one interface, keyed by its
// fully scoped name. Interfaces with a hand-written binding get a forward
// declaration only. Child bindings come before the parent's own.
func writeInterfaceBinding(iface *model.Interface, parents []string, m *model.Model, handwritten map[string]struct{}) string {
	scope := append(append([]string{}, parents...), iface.Name)
	scoped := strings.Join(scope, "::")

	if _, ok := handwritten[iface.Name]; ok {
		return fmt.Sprintf("\nJSONIFY_FWD(%s)\n", scoped)
	}

	var b strings.Builder
	if len(scope) == 1 {
		b.WriteString("\n")
	}

	for i := range iface.Children {
		b.WriteString(writeInterfaceBinding(&iface.Children[i], scope, m, handwritten))
	}

	properties := flattenProperties(iface, m)
	if len(properties) == 0 {
		fmt.Fprintf(&b, "JSONIFY_EMPTY(%s)\n", scoped)
	} else {
		fmt.Fprintf(&b, "JSONIFY(%s, %s)\n", scoped, strings.Join(properties, ", "))
	}
	return b.String()
}

// flattenProperties computes the flattened property-name list of an
// interface: its own property names in declared order, followed by each base
// interface's flattened list in declaration order
func flattenProperties(iface *model.Interface, m *model.Model) []string {
	var properties []string
	for _, p := range iface.Properties {
		properties = append(properties, strings.TrimSuffix(p.Name, "?"))
	}
	for _, base := range iface.Extends {
		if parent := m.Interface(base); parent != nil {
			properties = append(properties, flattenProperties(parent, m)...)
		}
	}
	return properties
}
