package metamodel

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/blimu-dev/lspgen/pkg/model"
	"github.com/blimu-dev/lspgen/pkg/utils"
)

// baseTypes maps meta-model base type names onto native C++ types
var baseTypes = map[string]string{
	"string":      "std::string",
	"integer":     "int",
	"uinteger":    "unsigned int",
	"decimal":     "double",
	"boolean":     "bool",
	"null":        "std::nullptr_t",
	"URI":         "std::string",
	"DocumentUri": "std::string",
	"RegExp":      "std::string",
}

// Build converts a raw meta-model document into the generator model.
// Type expressions are rendered into their target representation, literal
// types become nested child interfaces, and every reference name encountered
// is recorded in the owning entity's dependency set.
func Build(doc *Document) (*model.Model, error) {
	m := &model.Model{}

	for _, e := range doc.Enumerations {
		enum, err := buildEnumeration(e)
		if err != nil {
			return nil, err
		}
		m.Enumerations = append(m.Enumerations, enum)
	}

	for _, a := range doc.TypeAliases {
		deps := newDepSet(a.Name)
		value, err := typeString(a.Type, &scope{deps: deps})
		if err != nil {
			return nil, fmt.Errorf("type alias %s: %w", a.Name, err)
		}
		m.TypeAliases = append(m.TypeAliases, model.TypeAlias{
			Name:          a.Name,
			Documentation: a.Documentation,
			Value:         value,
			Since:         a.Since,
			Deprecated:    a.Deprecated != "",
			Dependencies:  deps.names,
		})
	}

	for _, s := range doc.Structures {
		iface, err := buildStructure(s)
		if err != nil {
			return nil, err
		}
		m.Interfaces = append(m.Interfaces, iface)
	}

	for _, n := range doc.Notifications {
		params, err := messageType(n.Params)
		if err != nil {
			return nil, fmt.Errorf("notification %s: %w", n.Method, err)
		}
		m.Notifications = append(m.Notifications, model.Notification{
			Method:        n.Method,
			Documentation: n.Documentation,
			Params:        params,
		})
	}

	for _, r := range doc.Requests {
		params, err := messageType(r.Params)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", r.Method, err)
		}
		result, err := messageType(r.Result)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", r.Method, err)
		}
		m.Requests = append(m.Requests, model.Request{
			Method:        r.Method,
			Documentation: r.Documentation,
			Params:        params,
			Result:        result,
		})
	}

	return m, nil
}

func buildEnumeration(e Enumeration) (model.Enumeration, error) {
	base := model.EnumBaseNumeric
	if e.Type != nil && e.Type.Name == "string" {
		base = model.EnumBaseString
	}

	enum := model.Enumeration{
		Name:          e.Name,
		Documentation: e.Documentation,
		Base:          base,
		Since:         e.Since,
		Deprecated:    e.Deprecated != "",
	}
	for _, v := range e.Values {
		literal, err := enumLiteral(v)
		if err != nil {
			return model.Enumeration{}, fmt.Errorf("enumeration %s: %w", e.Name, err)
		}
		enum.Values = append(enum.Values, model.EnumValue{
			Name:          v.Name,
			Value:         literal,
			Documentation: v.Documentation,
			Deprecated:    v.Deprecated != "",
		})
	}
	return enum, nil
}

// enumLiteral renders an enumerator value: string values stay unquoted text,
// numeric values keep their JSON literal form
func enumLiteral(v EnumValue) (string, error) {
	raw := strings.TrimSpace(string(v.Value))
	if raw == "" {
		return "", fmt.Errorf("value %s has no literal", v.Name)
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(v.Value, &s); err != nil {
			return "", fmt.Errorf("value %s: %w", v.Name, err)
		}
		return s, nil
	}
	return raw, nil
}

func buildStructure(s Structure) (model.Interface, error) {
	deps := newDepSet(s.Name)
	iface := model.Interface{
		Name:          s.Name,
		Documentation: s.Documentation,
		Since:         s.Since,
		Deprecated:    s.Deprecated != "",
	}

	// Mixins are plain data aggregation, same as extends
	bases := append(append([]*Type{}, s.Extends...), s.Mixins...)
	for _, base := range bases {
		if base.Kind != "reference" {
			return model.Interface{}, fmt.Errorf("structure %s: non-reference base of kind %q", s.Name, base.Kind)
		}
		iface.Extends = append(iface.Extends, base.Name)
		deps.add(base.Name)
	}

	for _, p := range s.Properties {
		prop, err := buildProperty(p, &iface, deps)
		if err != nil {
			return model.Interface{}, fmt.Errorf("structure %s: %w", s.Name, err)
		}
		iface.Properties = append(iface.Properties, prop)
	}

	iface.Dependencies = deps.names
	return iface, nil
}

func buildProperty(p Property, owner *model.Interface, deps *depSet) (model.Property, error) {
	if p.Type == nil {
		return model.Property{}, fmt.Errorf("property %s has no type", p.Name)
	}

	prop := model.Property{
		Name:          p.Name,
		Documentation: p.Documentation,
		Optional:      p.Optional,
		Kind:          model.KindPlain,
	}
	sc := &scope{owner: owner, prop: p.Name, deps: deps}

	switch p.Type.Kind {
	case "stringLiteral":
		value, err := p.Type.StringValue()
		if err != nil {
			return model.Property{}, fmt.Errorf("property %s: %w", p.Name, err)
		}
		prop.Kind = model.KindLiteralConstant
		prop.Type = value

	case "or":
		if values, ok := stringLiteralItems(p.Type.Items); ok {
			// A discriminator with several known tags: constant plus
			// documented alternatives
			prop.Kind = model.KindLiteralConstant
			prop.Type = values[0]
			prop.AltValues = values[1:]
			break
		}
		prop.Kind = model.KindUnion
		for _, item := range p.Type.Items {
			arm, err := typeString(item, sc)
			if err != nil {
				return model.Property{}, fmt.Errorf("property %s: %w", p.Name, err)
			}
			alt := model.Alternative{Value: arm}
			if item.Kind == "reference" {
				alt.Ref = item.Name
			}
			prop.Alternatives = append(prop.Alternatives, alt)
		}

	default:
		value, err := typeString(p.Type, sc)
		if err != nil {
			return model.Property{}, fmt.Errorf("property %s: %w", p.Name, err)
		}
		prop.Type = value
	}

	return prop, nil
}

// stringLiteralItems reports whether every union arm is a string literal and
// returns their values in declaration order
func stringLiteralItems(items []*Type) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		if item.Kind != "stringLiteral" {
			return nil, false
		}
		v, err := item.StringValue()
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// messageType renders the parameter or result type of a protocol message.
// A nil type means the message carries no payload.
func messageType(t *Type) (string, error) {
	if t == nil {
		return "", nil
	}
	return typeString(t, &scope{deps: newDepSet("")})
}

// scope carries the context a type expression is rendered in: the interface
// that receives nested literal children, the property name used to derive
// their names, and the dependency set of the owning top-level entity.
type scope struct {
	owner    *model.Interface
	prop     string
	deps     *depSet
	literals int
}

// typeString renders a type expression into C++ syntax
func typeString(t *Type, sc *scope) (string, error) {
	switch t.Kind {
	case "base":
		native, ok := baseTypes[t.Name]
		if !ok {
			return "", fmt.Errorf("unknown base type %q", t.Name)
		}
		return native, nil

	case "reference":
		sc.deps.add(t.Name)
		return t.Name, nil

	case "array":
		element, err := typeString(t.Element, sc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("std::vector<%s>", element), nil

	case "map":
		key, err := typeString(t.Key, sc)
		if err != nil {
			return "", err
		}
		valueType, err := t.MapValue()
		if err != nil {
			return "", err
		}
		value, err := typeString(valueType, sc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("std::unordered_map<%s, %s>", key, value), nil

	case "tuple":
		arms, err := typeStrings(t.Items, sc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("std::tuple<%s>", strings.Join(arms, ", ")), nil

	case "or":
		arms, err := typeStrings(t.Items, sc)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("std::variant<%s>", strings.Join(arms, ", ")), nil

	case "and":
		// Intersection types only occur as structure bases in practice;
		// inline occurrences collapse to their first arm
		if len(t.Items) == 0 {
			return "", fmt.Errorf("empty intersection type")
		}
		return typeString(t.Items[0], sc)

	case "literal":
		return literalType(t, sc)

	case "stringLiteral":
		// In a nested position the literal constrains the wire value only;
		// the carrier is still a string
		return "std::string", nil

	default:
		return "", fmt.Errorf("unknown type kind %q", t.Kind)
	}
}

func typeStrings(items []*Type, sc *scope) ([]string, error) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := typeString(item, sc)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// literalType turns an inline structure literal into a nested child interface
// of the enclosing structure, named after the property that declares it
func literalType(t *Type, sc *scope) (string, error) {
	lit, err := t.LiteralValue()
	if err != nil {
		return "", err
	}
	if len(lit.Properties) == 0 {
		return "nlohmann::json", nil
	}
	if sc.owner == nil {
		return "", fmt.Errorf("structure literal outside of a structure")
	}

	name := utils.ToPascalCase(sc.prop) + "Type"
	sc.literals++
	if sc.literals > 1 {
		name = fmt.Sprintf("%s%d", name, sc.literals)
	}

	child := model.Interface{Name: name, Documentation: lit.Documentation}
	for _, p := range lit.Properties {
		prop, err := buildProperty(p, &child, sc.deps)
		if err != nil {
			return "", fmt.Errorf("literal %s: %w", name, err)
		}
		child.Properties = append(child.Properties, prop)
	}
	sc.owner.Children = append(sc.owner.Children, child)
	return name, nil
}

// depSet is an ordered, deduplicated set of referenced entity names.
// The owner's own name is never recorded: self-references are broken by the
// renderer, not the resolver.
type depSet struct {
	owner string
	seen  map[string]struct{}
	names []string
}

func newDepSet(owner string) *depSet {
	return &depSet{owner: owner, seen: make(map[string]struct{})}
}

func (d *depSet) add(name string) {
	if name == d.owner {
		return
	}
	if _, ok := d.seen[name]; ok {
		return
	}
	d.seen[name] = struct{}{}
	d.names = append(d.names, name)
}
