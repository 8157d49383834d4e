// Package schema defines the declarative record model consumed by the
// generator: a YAML file listing record types, their per-field divide
// strategies, and the record-level capability declarations.
//
// The model is deliberately opaque about field types: a field's type is a
// Go type expression reproduced verbatim in generated code, never inspected.
package schema

// Capability tokens recognized on a record declaration.
const (
	// CapabilityDivisible requests the split capability (always available).
	CapabilityDivisible = "divisible"
	// CapabilityIterator additionally requests the parallel-iterator glue.
	CapabilityIterator = "iterator"
)

// Power tokens recognized on a record declaration.
const (
	PowerIndexed = "indexed"
	PowerBlocked = "blocked"
)

// Divide annotation tokens with a dedicated strategy. Any other token, or an
// absent annotation, resolves to the recurse strategy.
const (
	DivideClone   = "clone"
	DivideCopy    = "copy"
	DivideDefault = "default"
)

// SchemaFile represents the root of a YAML schema definition file.
type SchemaFile struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name for generated files.
	Package string `yaml:"package"`

	// Records lists the record declarations to generate capabilities for.
	Records []RecordDecl `yaml:"records"`
}

// RecordDecl declares one record type to make divisible.
type RecordDecl struct {
	// Name is the Go type name of the record. The type itself is declared by
	// the user; the generator only emits methods on it.
	Name string `yaml:"name"`

	// TypeParams is the record's generic parameter list with constraints,
	// e.g. "T any, U comparable". Empty for non-generic records.
	TypeParams string `yaml:"type_params,omitempty"`

	// TraitBounds optionally replaces the derived type parameter list in
	// generated free functions.
	TraitBounds string `yaml:"trait_bounds,omitempty"`

	// Power is the capability-kind tag: "indexed" or "blocked". Required.
	Power string `yaml:"power"`

	// Capabilities selects what to generate. Accepts a single string or a
	// list. Defaults to just the divisible capability.
	Capabilities StringOrArray `yaml:"capabilities,omitempty"`

	// Item is the iterated item type. Required with the iterator capability.
	Item string `yaml:"item,omitempty"`

	// SequentialIterator is the sequential iterator type returned by the
	// generated extraction methods. Required with the iterator capability.
	SequentialIterator string `yaml:"sequential_iterator,omitempty"`

	// IteratorExtraction is a Go expression over the bound variable "it"
	// (the inner field's iterator) producing the record's own sequential
	// iterator. Required with the iterator capability.
	IteratorExtraction string `yaml:"iterator_extraction,omitempty"`

	// Imports lists extra import paths referenced by field type expressions.
	Imports []string `yaml:"imports,omitempty"`

	// Fields is the ordered field list. Order is significant: generated
	// splits reassemble records in exactly this order.
	Fields []FieldDecl `yaml:"fields"`

	// Variants marks a tagged-union declaration. Unions are not divisible;
	// its presence is a hard validation error.
	Variants []map[string]any `yaml:"variants,omitempty"`
}

// FieldDecl declares one record field.
type FieldDecl struct {
	// Name is the Go field name.
	Name string `yaml:"name"`

	// Type is the field's Go type expression, reproduced verbatim.
	Type string `yaml:"type"`

	// DivideBy is the divide annotation token: "clone", "copy", "default",
	// or empty/anything else for recurse.
	DivideBy string `yaml:"divide_by,omitempty"`

	// Iterator earmarks this field as the record's iteration target.
	Iterator bool `yaml:"iterator,omitempty"`
}

// HasIterator reports whether the iterator capability was requested.
func (r *RecordDecl) HasIterator() bool {
	return r.Capabilities.Contains(CapabilityIterator)
}

// FieldNames returns the declared field names in order.
func (r *RecordDecl) FieldNames() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}

	return names
}

// IsRecognizedDivideToken reports whether token is part of the divide
// annotation vocabulary. Unrecognized tokens still resolve to recurse, but
// deserve a warning.
func IsRecognizedDivideToken(token string) bool {
	switch token {
	case "", DivideClone, DivideCopy, DivideDefault:
		return true
	default:
		return false
	}
}

// IsRecognizedPower reports whether token is a known power tag.
func IsRecognizedPower(token string) bool {
	return token == PowerIndexed || token == PowerBlocked
}

// IsRecognizedCapability reports whether token is a known capability.
func IsRecognizedCapability(token string) bool {
	return token == CapabilityDivisible || token == CapabilityIterator
}
