package plan

import (
	"divigen/divisible"
	"divigen/internal/diagnostic"
)

// Plan is the final output of the resolution pipeline: every record that
// survived validation, ready for code generation, plus all diagnostics.
type Plan struct {
	// Package is the Go package name for generated files.
	Package string
	// Records are the fully resolved record declarations. Records with error
	// diagnostics are excluded; generation is all-or-nothing per record.
	Records []ResolvedRecord
	// Diagnostics contains all findings from validation and resolution.
	Diagnostics diagnostic.Diagnostics
}

// ResolvedRecord is a record declaration with every field tagged with its
// division strategy and, when iterator glue was requested, the validated
// iteration-target index.
type ResolvedRecord struct {
	// Name is the record's Go type name.
	Name string
	// TypeParams is the generic parameter list with constraints, or empty.
	TypeParams string
	// TraitBounds optionally overrides derived bounds in free functions.
	TraitBounds string
	// Power is the resolved capability-kind tag.
	Power divisible.Power
	// HasIterator is true when the iterator capability was requested.
	HasIterator bool
	// Item is the iterated item type (iterator capability only).
	Item string
	// SequentialIterator is the sequential iterator type (iterator capability only).
	SequentialIterator string
	// IteratorExtraction is the extraction expression over "it" (iterator capability only).
	IteratorExtraction string
	// Imports lists extra import paths referenced by field types.
	Imports []string
	// Fields is the ordered, strategy-tagged field list.
	Fields []ResolvedField
	// IterationTarget is the validated index of the iteration-target field,
	// or -1 when iterator glue was not requested.
	IterationTarget int
}

// ResolvedField is a field with its resolved division strategy.
type ResolvedField struct {
	// Name is the field's Go name.
	Name string
	// Type is the field's Go type expression, opaque to the generator.
	Type string
	// Strategy governs what each half of a split receives.
	Strategy Strategy
	// IteratorMark earmarks the field as the record's iteration target.
	IteratorMark bool
}

// RecurseFields returns the fields split recursively, in declaration order.
// Only these contribute to the record's length.
func (r *ResolvedRecord) RecurseFields() []ResolvedField {
	var out []ResolvedField

	for _, f := range r.Fields {
		if f.Strategy == StrategyRecurse {
			out = append(out, f)
		}
	}

	return out
}

// TargetField returns the located iteration-target field. Only valid when
// IterationTarget >= 0.
func (r *ResolvedRecord) TargetField() ResolvedField {
	return r.Fields[r.IterationTarget]
}
