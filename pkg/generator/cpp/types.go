package cpp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/model"
	"github.com/blimu-dev/lspgen/pkg/utils"
)

// formatDoc renders a documentation string as indented comment lines
func formatDoc(doc, indent string) string {
	if doc == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		b.WriteString(indent)
		if line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// writeEnums renders every enumeration in declaration order. Numeric enums
// emit name = value pairs; string enums emit name-only enumerators, the wire
// value lives in the JSON binding.
func writeEnums(m *model.Model) string {
	var b strings.Builder
	for _, e := range m.Enumerations {
		var content strings.Builder
		for _, v := range e.Values {
			content.WriteString(formatDoc(v.Documentation, "\t"))
			if e.Base == model.EnumBaseString {
				fmt.Fprintf(&content, "\t%s,\n", v.Name)
			} else {
				fmt.Fprintf(&content, "\t%s = %s,\n", v.Name, v.Value)
			}
		}
		b.WriteString("\n")
		b.WriteString(formatDoc(e.Documentation, ""))
		fmt.Fprintf(&b, "enum class %s {\n%s};\n", e.Name, content.String())
	}
	return b.String()
}

// writeTypesAndInterfaces renders type aliases and interfaces in
// dependency-resolved order
func writeTypesAndInterfaces(m *model.Model, target config.Target) (string, error) {
	order, err := model.ResolveOrder(m.TypeAliases, m.Interfaces)
	if err != nil {
		return "", err
	}

	primitives := make(map[string]struct{}, len(target.PrimitiveAliases))
	for _, name := range target.PrimitiveAliases {
		primitives[name] = struct{}{}
	}

	var b strings.Builder
	for _, decl := range order {
		if decl.Alias != nil {
			b.WriteString(writeType(*decl.Alias, primitives))
			continue
		}
		text, err := writeMainInterface(*decl.Interface, m)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// writeType renders a type alias declaration. Aliases mapped onto native
// types of the target language are suppressed.
func writeType(alias model.TypeAlias, primitives map[string]struct{}) string {
	if _, ok := primitives[alias.Name]; ok {
		return ""
	}
	return fmt.Sprintf("\n%susing %s = %s;\n", formatDoc(alias.Documentation, ""), alias.Name, alias.Value)
}

func writeMainInterface(iface model.Interface, m *model.Model) (string, error) {
	var extends string
	if len(iface.Extends) > 0 {
		extends = " : public " + strings.Join(iface.Extends, ", public ")
	}

	content, err := writeMembers(iface, m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("\n%sstruct %s%s {\n%s};\n", formatDoc(iface.Documentation, ""), iface.Name, extends, content), nil
}

func writeChildInterface(iface model.Interface, m *model.Model) (string, error) {
	content, err := writeMembers(iface, m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("struct %s {\n%s};\n", iface.Name, content), nil
}

// writeMembers renders nested children depth-first, then the properties in
// declared order
func writeMembers(iface model.Interface, m *model.Model) (string, error) {
	var b strings.Builder
	for _, child := range iface.Children {
		text, err := writeChildInterface(child, m)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	for _, p := range iface.Properties {
		text, err := writeProperty(p, iface.Name, m)
		if err != nil {
			return "", fmt.Errorf("interface %s: %w", iface.Name, err)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// writeProperty renders a single property according to the per-property shape
// policy: a union property first becomes a tagged variant over its reordered
// alternatives, a direct self-reference is heap-boxed to bound the value
// size, an optional property wraps its type, and a literal constant becomes a
// named compile-time string with no per-instance storage.
func writeProperty(p model.Property, enclosing string, m *model.Model) (string, error) {
	doc := p.Documentation
	typ := p.Type

	if p.Kind == model.KindUnion {
		typ = variantType(p.Alternatives, m)
	}

	switch {
	case typ == enclosing:
		if p.Kind == model.KindLiteralConstant {
			return "", fmt.Errorf("property %s is both a literal constant and a self-reference", p.Name)
		}
		return fmt.Sprintf("%sstd::unique_ptr<%s> %s;\n", formatDoc(doc, "\t"), typ, p.Name), nil

	case p.Optional:
		return fmt.Sprintf("%sstd::optional<%s> %s;\n", formatDoc(doc, "\t"), typ, p.Name), nil

	case p.Kind == model.KindLiteralConstant:
		for _, alt := range p.AltValues {
			line := fmt.Sprintf("Alternative literal: \"%s\"", utils.StripQuotes(alt))
			if doc == "" {
				doc = line
			} else {
				doc += "\n" + line
			}
		}
		return fmt.Sprintf("%sstatic inline const std::string %s = \"%s\";\n",
			formatDoc(doc, "\t"), p.Name, utils.StripQuotes(typ)), nil

	default:
		return fmt.Sprintf("%s%s %s;\n", formatDoc(doc, "\t"), typ, p.Name), nil
	}
}

// variantType reorders the alternatives by the tie-break policy and joins
// them into a closed tagged variant. Downstream decoding matches alternatives
// in declared order and accepts the first structurally-compatible one, so
// non-deprecated alternatives come first, then ascending introduction
// version. Reference alternatives inherit the referenced entity's deprecation
// flag and version.
func variantType(alternatives []model.Alternative, m *model.Model) string {
	alts := make([]model.Alternative, len(alternatives))
	copy(alts, alternatives)

	for i := range alts {
		if alts[i].Ref == "" {
			continue
		}
		if deprecated, since, ok := m.EntityMeta(alts[i].Ref); ok {
			alts[i].Deprecated = deprecated
			alts[i].Since = since
		}
	}

	sort.SliceStable(alts, func(i, j int) bool {
		if alts[i].Deprecated != alts[j].Deprecated {
			return !alts[i].Deprecated
		}
		return alts[i].Since < alts[j].Since
	})

	arms := make([]string, 0, len(alts))
	for _, alt := range alts {
		arms = append(arms, alt.Value)
	}
	return fmt.Sprintf("std::variant<%s>", strings.Join(arms, ", "))
}
