// Package metamodel reads the LSP meta-model document (metaModel.json) and
// turns it into the generator's internal model.
package metamodel

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Document is the raw meta-model as published with the protocol specification
type Document struct {
	MetaData      MetaData       `json:"metaData"`
	Requests      []Request      `json:"requests"`
	Notifications []Notification `json:"notifications"`
	Structures    []Structure    `json:"structures"`
	Enumerations  []Enumeration  `json:"enumerations"`
	TypeAliases   []TypeAlias    `json:"typeAliases"`
}

// MetaData holds the protocol version the document describes
type MetaData struct {
	Version string `json:"version"`
}

// Request describes a protocol request entry
type Request struct {
	Method        string `json:"method"`
	Params        *Type  `json:"params"`
	Result        *Type  `json:"result"`
	ErrorData     *Type  `json:"errorData"`
	Documentation string `json:"documentation"`
	Since         string `json:"since"`
	Deprecated    string `json:"deprecated"`
	Proposed      bool   `json:"proposed"`
}

// Notification describes a protocol notification entry
type Notification struct {
	Method        string `json:"method"`
	Params        *Type  `json:"params"`
	Documentation string `json:"documentation"`
	Since         string `json:"since"`
	Deprecated    string `json:"deprecated"`
	Proposed      bool   `json:"proposed"`
}

// Structure describes a named structure with optional bases and mixins
type Structure struct {
	Name          string     `json:"name"`
	Extends       []*Type    `json:"extends"`
	Mixins        []*Type    `json:"mixins"`
	Properties    []Property `json:"properties"`
	Documentation string     `json:"documentation"`
	Since         string     `json:"since"`
	Deprecated    string     `json:"deprecated"`
	Proposed      bool       `json:"proposed"`
}

// Property describes a single structure member
type Property struct {
	Name          string `json:"name"`
	Type          *Type  `json:"type"`
	Optional      bool   `json:"optional"`
	Documentation string `json:"documentation"`
	Since         string `json:"since"`
	Deprecated    string `json:"deprecated"`
	Proposed      bool   `json:"proposed"`
}

// Enumeration describes a named enumeration and its values
type Enumeration struct {
	Name                 string      `json:"name"`
	Type                 *Type       `json:"type"`
	Values               []EnumValue `json:"values"`
	SupportsCustomValues bool        `json:"supportsCustomValues"`
	Documentation        string      `json:"documentation"`
	Since                string      `json:"since"`
	Deprecated           string      `json:"deprecated"`
	Proposed             bool        `json:"proposed"`
}

// EnumValue is a single enumerator; Value is a JSON string or number
type EnumValue struct {
	Name          string          `json:"name"`
	Value         json.RawMessage `json:"value"`
	Documentation string          `json:"documentation"`
	Since         string          `json:"since"`
	Deprecated    string          `json:"deprecated"`
	Proposed      bool            `json:"proposed"`
}

// TypeAlias describes a named alias for a type expression
type TypeAlias struct {
	Name          string `json:"name"`
	Type          *Type  `json:"type"`
	Documentation string `json:"documentation"`
	Since         string `json:"since"`
	Deprecated    string `json:"deprecated"`
	Proposed      bool   `json:"proposed"`
}

// Type is one node of a type expression. Kind selects which fields apply:
// base/reference use Name, array uses Element, map uses Key and Value,
// or/and/tuple use Items, literal and stringLiteral use Value.
type Type struct {
	Kind    string          `json:"kind"`
	Name    string          `json:"name"`
	Element *Type           `json:"element"`
	Key     *Type           `json:"key"`
	Items   []*Type         `json:"items"`
	Value   json.RawMessage `json:"value"`
}

// MapValue decodes the value type of a map node
func (t *Type) MapValue() (*Type, error) {
	var v Type
	if err := json.Unmarshal(t.Value, &v); err != nil {
		return nil, fmt.Errorf("map value of kind %q: %w", t.Kind, err)
	}
	return &v, nil
}

// StructureLiteral is the payload of a literal type node
type StructureLiteral struct {
	Properties    []Property `json:"properties"`
	Documentation string     `json:"documentation"`
	Since         string     `json:"since"`
	Deprecated    string     `json:"deprecated"`
	Proposed      bool       `json:"proposed"`
}

// LiteralValue decodes the structure payload of a literal node
func (t *Type) LiteralValue() (*StructureLiteral, error) {
	var v StructureLiteral
	if err := json.Unmarshal(t.Value, &v); err != nil {
		return nil, fmt.Errorf("literal value: %w", err)
	}
	return &v, nil
}

// StringValue decodes the payload of a stringLiteral node
func (t *Type) StringValue() (string, error) {
	var v string
	if err := json.Unmarshal(t.Value, &v); err != nil {
		return "", fmt.Errorf("string literal value: %w", err)
	}
	return v, nil
}
