package generator

import (
	"fmt"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/model"
	"github.com/blimu-dev/lspgen/pkg/utils"
)

// Normalize cleans the parsed model in place so that the resolver and the
// renderers can rely on a single declaration universe: enumerations are
// deduplicated and renamed per the configured table, framework-reserved
// declarations are stripped, shadowed aliases are dropped and satisfied enum
// dependencies are pruned. Applying Normalize to an already-normalized model
// is a no-op.
func Normalize(m *model.Model, cfg *config.Config) error {
	dedupeEnumerations(m)
	cleanEnumerations(m, cfg.EnumRenames)
	removeReservedInterfaces(m, cfg.ReservedInterfaces)
	removeReservedTypes(m, cfg.ReservedTypes)
	removeShadowedAliases(m)
	pruneEnumDependencies(m)
	return validateProperties(m)
}

// dedupeEnumerations removes duplicate enumerations by name, keeping the
// first occurrence
func dedupeEnumerations(m *model.Model) {
	seen := make(map[string]struct{}, len(m.Enumerations))
	kept := m.Enumerations[:0]
	for _, e := range m.Enumerations {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		kept = append(kept, e)
	}
	m.Enumerations = kept
}

// cleanEnumerations applies the rename table and canonicalizes enumerator
// names and literals. Numeric literals get their first character capitalized,
// string literals lose their surrounding quote characters.
func cleanEnumerations(m *model.Model, renames map[string]string) {
	for i := range m.Enumerations {
		e := &m.Enumerations[i]
		if renamed, ok := renames[e.Name]; ok {
			e.Name = renamed
		}
		for j := range e.Values {
			v := &e.Values[j]
			v.Name = utils.UpperFirst(v.Name)
			if e.Base == model.EnumBaseString {
				v.Value = utils.StripQuotes(v.Value)
			} else {
				v.Value = utils.UpperFirst(v.Value)
			}
		}
	}
}

func removeReservedInterfaces(m *model.Model, reserved []string) {
	set := nameSet(reserved)
	kept := m.Interfaces[:0]
	for _, iface := range m.Interfaces {
		if _, ok := set[iface.Name]; ok {
			continue
		}
		kept = append(kept, iface)
	}
	m.Interfaces = kept
}

func removeReservedTypes(m *model.Model, reserved []string) {
	set := nameSet(reserved)
	kept := m.TypeAliases[:0]
	for _, alias := range m.TypeAliases {
		if _, ok := set[alias.Name]; ok {
			continue
		}
		kept = append(kept, alias)
	}
	m.TypeAliases = kept
}

// removeShadowedAliases drops any type alias whose name is already taken by
// an enumeration or an interface
func removeShadowedAliases(m *model.Model) {
	taken := make(map[string]struct{}, len(m.Enumerations)+len(m.Interfaces))
	for _, e := range m.Enumerations {
		taken[e.Name] = struct{}{}
	}
	for _, iface := range m.Interfaces {
		taken[iface.Name] = struct{}{}
	}

	kept := m.TypeAliases[:0]
	for _, alias := range m.TypeAliases {
		if _, ok := taken[alias.Name]; ok {
			continue
		}
		kept = append(kept, alias)
	}
	m.TypeAliases = kept
}

// pruneEnumDependencies strips enumeration names from every dependency set.
// Enumerations are always emitted first and can never participate in a cycle.
func pruneEnumDependencies(m *model.Model) {
	enums := make(map[string]struct{}, len(m.Enumerations))
	for _, e := range m.Enumerations {
		enums[e.Name] = struct{}{}
	}

	filter := func(deps []string) []string {
		kept := deps[:0]
		for _, d := range deps {
			if _, ok := enums[d]; ok {
				continue
			}
			kept = append(kept, d)
		}
		return kept
	}

	for i := range m.TypeAliases {
		m.TypeAliases[i].Dependencies = filter(m.TypeAliases[i].Dependencies)
	}
	for i := range m.Interfaces {
		m.Interfaces[i].Dependencies = filter(m.Interfaces[i].Dependencies)
	}
}

// validateProperties enforces the mutually-exclusive property-kind invariant:
// a literal constant can never also be a self-reference. The generator fails
// rather than guessing a precedence.
func validateProperties(m *model.Model) error {
	for i := range m.Interfaces {
		if err := validateInterface(&m.Interfaces[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateInterface(iface *model.Interface) error {
	for _, p := range iface.Properties {
		if p.Kind == model.KindLiteralConstant && p.Type == iface.Name {
			return fmt.Errorf("interface %s: property %s is both a literal constant and a self-reference", iface.Name, p.Name)
		}
	}
	for i := range iface.Children {
		if err := validateInterface(&iface.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
