package model

// EnumBase represents the wire representation of an enumeration
type EnumBase string

const (
	EnumBaseNumeric EnumBase = "numeric"
	EnumBaseString  EnumBase = "string"
)

// PropertyKind represents the shape policy applied to a property
type PropertyKind string

const (
	// KindPlain is a regular field of the resolved type
	KindPlain PropertyKind = "plain"
	// KindLiteralConstant is a compile-time string constant, no per-instance storage
	KindLiteralConstant PropertyKind = "literalConstant"
	// KindUnion is a closed tagged variant over a list of alternatives
	KindUnion PropertyKind = "union"
)

// Model is the root of the normalized protocol meta-model.
// Enumerations, TypeAliases and Interfaces share one name universe:
// a name appears in at most one of the three collections after normalization.
type Model struct {
	Enumerations  []Enumeration
	TypeAliases   []TypeAlias
	Interfaces    []Interface
	Notifications []Notification
	Requests      []Request
}

// Enumeration is a named set of wire values. It never depends on other entities.
type Enumeration struct {
	Name          string
	Documentation string
	Base          EnumBase
	Since         string
	Deprecated    bool
	Values        []EnumValue
}

// EnumValue is a single enumerator (name + literal wire value)
type EnumValue struct {
	Name          string
	Value         string
	Documentation string
	Deprecated    bool
}

// TypeAlias names an underlying type expression.
// Dependencies lists the entity names referenced by the expression.
type TypeAlias struct {
	Name          string
	Documentation string
	Value         string
	Since         string
	Deprecated    bool
	Dependencies  []string
}

// Interface is a pure-data structure. Extends lists base interface names in
// declaration order; Children are nested interfaces rendered before the
// properties. Dependencies never contains the interface's own name, so that a
// self-referential property cannot block dependency resolution.
type Interface struct {
	Name          string
	Documentation string
	Extends       []string
	Since         string
	Deprecated    bool
	Children      []Interface
	Properties    []Property
	Dependencies  []string
}

// Property is a single interface member. For KindLiteralConstant, Type holds
// the literal text and AltValues the documented alternative literals. For
// KindUnion, Alternatives holds the variant arms and Type is derived by the
// renderer after tie-break ordering.
type Property struct {
	Name          string
	Documentation string
	Type          string
	Optional      bool
	Kind          PropertyKind
	AltValues     []string
	Alternatives  []Alternative
}

// Alternative is one arm of a union property. Ref is set when the arm is a
// bare reference to a named entity, in which case the deprecation flag and
// introduction version are resolved against the model at render time.
type Alternative struct {
	Value      string
	Ref        string
	Since      string
	Deprecated bool
}

// Notification is a one-way protocol message. Params is empty when absent.
type Notification struct {
	Method        string
	Documentation string
	Params        string
}

// Request is a protocol message expecting a correlated response.
// Params and Result are empty when absent.
type Request struct {
	Method        string
	Documentation string
	Params        string
	Result        string
}

// Interface returns the top-level interface with the given name, or nil.
func (m *Model) Interface(name string) *Interface {
	for i := range m.Interfaces {
		if m.Interfaces[i].Name == name {
			return &m.Interfaces[i]
		}
	}
	return nil
}

// TypeAlias returns the type alias with the given name, or nil.
func (m *Model) TypeAlias(name string) *TypeAlias {
	for i := range m.TypeAliases {
		if m.TypeAliases[i].Name == name {
			return &m.TypeAliases[i]
		}
	}
	return nil
}

// Enumeration returns the enumeration with the given name, or nil.
func (m *Model) Enumeration(name string) *Enumeration {
	for i := range m.Enumerations {
		if m.Enumerations[i].Name == name {
			return &m.Enumerations[i]
		}
	}
	return nil
}

// EntityMeta resolves the deprecation flag and introduction version of a named
// entity across the full declaration universe. ok is false for unknown names.
func (m *Model) EntityMeta(name string) (deprecated bool, since string, ok bool) {
	if a := m.TypeAlias(name); a != nil {
		return a.Deprecated, a.Since, true
	}
	if i := m.Interface(name); i != nil {
		return i.Deprecated, i.Since, true
	}
	if e := m.Enumeration(name); e != nil {
		return e.Deprecated, e.Since, true
	}
	return false, "", false
}
