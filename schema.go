package jsonls

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// schema.go defines the Schema keyword set, Draft-04/06/07 style, with a
// custom Unmarshal/Marshal split for polymorphic keywords (items, const,
// boolean schemas). There is no $ref resolution network, $dynamicRef/
// $anchor/$defs scoping, or locale/i18n hooks: an unresolved $ref here is
// always the empty (always-valid) schema, never walked or compiled.

// Number preserves a numeric keyword's original source lexeme alongside its
// decoded float64, so multipleOf can decompose it exactly instead of losing
// precision to a float64 round-trip. exclusiveMinimum/exclusiveMaximum also
// accept the Draft-04 boolean-modifier form ("exclusiveMinimum": true), so
// Number doubles as that keyword's wire value: IsBool/BoolValue are set
// whenever the wire value is a boolean, and only the minimum/maximum and
// exclusiveMinimum/exclusiveMaximum evaluators read them.
type Number struct {
	Value  float64
	Lexeme string

	IsBool    bool
	BoolValue bool
}

// UnmarshalJSON captures the decoded value and raw lexeme for the numeric
// form, or the decoded flag for the Draft-04 boolean form.
func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == 't' || trimmed[0] == 'f') {
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		n.IsBool = true
		n.BoolValue = b
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = v
	n.Lexeme = string(trimmed)
	return nil
}

// MarshalJSON re-emits the decoded value (the lexeme is an internal detail).
func (n Number) MarshalJSON() ([]byte, error) {
	if n.IsBool {
		return json.Marshal(n.BoolValue)
	}
	return json.Marshal(n.Value)
}

// ConstValue distinguishes "const not present" from "const: null".
type ConstValue struct {
	Value any
	IsSet bool
}

func (c *ConstValue) UnmarshalJSON(data []byte) error {
	c.IsSet = true
	if string(data) == "null" {
		c.Value = nil
		return nil
	}
	return json.Unmarshal(data, &c.Value)
}

func (c ConstValue) MarshalJSON() ([]byte, error) {
	if !c.IsSet || c.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// SchemaType holds one or more JSON Schema primitive type names, accepting
// either a single string or an array of strings on the wire.
type SchemaType []string

func (t *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = SchemaType{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return ErrInvalidSchemaType
	}
	*t = SchemaType(many)
	return nil
}

func (t SchemaType) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// Dependency is the value of a Draft-07 "dependencies" entry: either a list
// of required sibling properties (dependentRequired) or a schema the whole
// instance must satisfy when the key is present (dependentSchemas).
type Dependency struct {
	Required []string
	Schema   *Schema
}

func (d *Dependency) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &d.Required)
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d.Schema = &s
	return nil
}

// Schema is a compiled-free, in-memory JSON Schema: every keyword the
// validator consults, decoded straight off the schema document.
// A Schema is either a boolean schema (Boolean != nil) or a keyword object;
// in the latter case zero-value keyword fields mean "not present", not
// "present with the zero value" — callers must nil-check before applying.
type Schema struct {
	Boolean *bool `json:"-"`

	ID     string `json:"$id,omitempty"`
	Schema string `json:"$schema,omitempty"`
	Ref    string `json:"$ref,omitempty"`

	// Applicability
	Type  SchemaType  `json:"type,omitempty"`
	Enum  []any       `json:"enum,omitempty"`
	Const *ConstValue `json:"const,omitempty"`

	// Composition
	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	If   *Schema `json:"if,omitempty"`
	Then *Schema `json:"then,omitempty"`
	Else *Schema `json:"else,omitempty"`

	// Numbers
	MultipleOf       *Number `json:"multipleOf,omitempty"`
	Minimum          *Number `json:"minimum,omitempty"`
	Maximum          *Number `json:"maximum,omitempty"`
	ExclusiveMinimum *Number `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *Number `json:"exclusiveMaximum,omitempty"`

	// Strings
	MinLength *int    `json:"minLength,omitempty"`
	MaxLength *int    `json:"maxLength,omitempty"`
	Pattern   *string `json:"pattern,omitempty"`
	Format    *string `json:"format,omitempty"`

	// Arrays. ItemsList is the Draft-07 tuple form ("items": [schema, ...]);
	// Items is the single-schema form, applied to every element. Decoding sets
	// one or the other; when ItemsList is set, Items is ignored and elements
	// past the tuple prefix are checked against AdditionalItems.
	Items           *Schema   `json:"-"`
	ItemsList       []*Schema `json:"-"`
	AdditionalItems *Schema   `json:"additionalItems,omitempty"`
	Contains        *Schema   `json:"contains,omitempty"`
	MinItems        *int      `json:"minItems,omitempty"`
	MaxItems        *int      `json:"maxItems,omitempty"`
	UniqueItems     *bool     `json:"uniqueItems,omitempty"`

	// Objects
	Properties           map[string]*Schema     `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema     `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema                `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema                `json:"propertyNames,omitempty"`
	Required             []string               `json:"required,omitempty"`
	MinProperties        *int                   `json:"minProperties,omitempty"`
	MaxProperties        *int                   `json:"maxProperties,omitempty"`
	Dependencies         map[string]*Dependency `json:"dependencies,omitempty"`

	// Annotations
	Title              *string           `json:"title,omitempty"`
	Description        *string           `json:"description,omitempty"`
	Default            any               `json:"default,omitempty"`
	Deprecated         *bool             `json:"deprecated,omitempty"`
	DeprecationMessage *string           `json:"deprecationMessage,omitempty"`
	ErrorMessage       map[string]string `json:"errorMessage,omitempty"`

	Extra map[string]any `json:"-"`
}

// knownSchemaKeywords lists every keyword UnmarshalJSON assigns to a typed
// field, so collectExtra can find the rest. Extension keywords are
// preserved in Extra, never validated against.
var knownSchemaKeywords = map[string]struct{}{
	"$id": {}, "$schema": {}, "$ref": {},
	"type": {}, "enum": {}, "const": {},
	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {},
	"if": {}, "then": {}, "else": {},
	"multipleOf": {}, "minimum": {}, "maximum": {}, "exclusiveMinimum": {}, "exclusiveMaximum": {},
	"minLength": {}, "maxLength": {}, "pattern": {}, "format": {},
	"items": {}, "additionalItems": {}, "contains": {}, "minItems": {}, "maxItems": {}, "uniqueItems": {},
	"properties": {}, "patternProperties": {}, "additionalProperties": {}, "propertyNames": {},
	"required": {}, "minProperties": {}, "maxProperties": {}, "dependencies": {},
	"title": {}, "description": {}, "default": {}, "deprecated": {}, "deprecationMessage": {}, "errorMessage": {},
}

// UnmarshalJSON decodes either a boolean schema or a keyword object,
// including the "items" schema-or-array polymorphism.
func (s *Schema) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrSchemaDecode
	}

	if trimmed[0] == 't' || trimmed[0] == 'f' {
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return ErrInvalidSchemaType
		}
		s.Boolean = &b
		return nil
	}

	type alias Schema
	aux := &struct {
		Items json.RawMessage `json:"items,omitempty"`
		*alias
	}{alias: (*alias)(s)}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if len(aux.Items) > 0 {
		itemsTrimmed := bytes.TrimSpace(aux.Items)
		if len(itemsTrimmed) > 0 && itemsTrimmed[0] == '[' {
			if err := json.Unmarshal(aux.Items, &s.ItemsList); err != nil {
				return err
			}
		} else {
			var single Schema
			if err := json.Unmarshal(aux.Items, &single); err != nil {
				return err
			}
			s.Items = &single
		}
	}

	return s.collectExtra(data)
}

func (s *Schema) collectExtra(data []byte) error {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	// A JSON null leaves the *ConstValue field nil without calling its
	// UnmarshalJSON, so an explicit "const": null is recorded here.
	if _, ok := all["const"]; ok && s.Const == nil {
		s.Const = &ConstValue{IsSet: true}
	}
	for k := range knownSchemaKeywords {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil
	}
	extra := make(map[string]any, len(all))
	for k, raw := range all {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		extra[k] = v
	}
	s.Extra = extra
	return nil
}

// MarshalJSON re-encodes a parsed schema, including its "items" form and any
// Extra keywords.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		return json.Marshal(*s.Boolean)
	}
	type alias Schema
	out := map[string]any{}
	data, err := json.Marshal((*alias)(s))
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if s.ItemsList != nil {
		out["items"] = s.ItemsList
	} else if s.Items != nil {
		out["items"] = s.Items
	}
	for k, v := range s.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// ParseSchema decodes a schema document.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// IsAlwaysTrue reports whether s imposes no constraints: the `true` boolean
// schema, or an unresolved $ref — $ref is not a vocabulary this validator
// resolves, so it is always satisfied. A keyword object with no recognized
// keywords set isn't special-cased here; it already validates everything
// because each evaluateXxx no-ops on a nil/zero field.
func (s *Schema) IsAlwaysTrue() bool {
	if s == nil {
		return true
	}
	if s.Boolean != nil {
		return *s.Boolean
	}
	if s.Ref != "" {
		return true
	}
	return false
}

// IsAlwaysFalse reports whether s is the `false` boolean schema.
func (s *Schema) IsAlwaysFalse() bool {
	return s != nil && s.Boolean != nil && !*s.Boolean
}
