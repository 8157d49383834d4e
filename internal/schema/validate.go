package schema

import (
	"fmt"

	"divigen/internal/diagnostic"
)

// Validate checks the schema file for structural problems. All findings are
// reported as diagnostics; an invalid record never reaches generation.
func (f *SchemaFile) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if len(f.Records) == 0 {
		diags.AddWarning(diagnostic.CodeEmptyRecord, "schema declares no records", "", "")
	}

	seen := make(map[string]bool)

	for i := range f.Records {
		rec := &f.Records[i]
		rec.validate(&diags)

		if rec.Name != "" && seen[rec.Name] {
			diags.AddError(diagnostic.CodeDuplicateRecord,
				fmt.Sprintf("record %q declared more than once", rec.Name), rec.Name, "")
		}

		seen[rec.Name] = true
	}

	return diags
}

// validate checks a single record declaration.
func (r *RecordDecl) validate(diags *diagnostic.Diagnostics) {
	if r.Name == "" {
		diags.AddError(diagnostic.CodeEmptyRecord, "record declaration has no name", "", "")
		return
	}

	// A union shape cannot be split field-wise; refuse outright rather than
	// attempt partial generation.
	if len(r.Variants) > 0 {
		diags.AddError(diagnostic.CodeUnsupportedShape,
			"record declares variants; tagged unions are not divisible", r.Name, "")
		return
	}

	switch {
	case r.Power == "":
		diags.AddError(diagnostic.CodeMissingPower, "missing required power tag", r.Name, "")
	case !IsRecognizedPower(r.Power):
		diags.AddError(diagnostic.CodeUnknownPower,
			fmt.Sprintf("unknown power tag %q (want %q or %q)", r.Power, PowerIndexed, PowerBlocked),
			r.Name, "")
	}

	for _, c := range r.Capabilities {
		if !IsRecognizedCapability(c) {
			diags.AddError(diagnostic.CodeUnknownCapability,
				fmt.Sprintf("unknown capability %q", c), r.Name, "")
		}
	}

	if r.HasIterator() {
		if r.Item == "" {
			diags.AddError(diagnostic.CodeMissingItem,
				"iterator capability requires an item type", r.Name, "")
		}

		if r.SequentialIterator == "" {
			diags.AddError(diagnostic.CodeMissingSequentialIter,
				"iterator capability requires a sequential_iterator type", r.Name, "")
		}

		if r.IteratorExtraction == "" {
			diags.AddError(diagnostic.CodeMissingIterExtraction,
				"iterator capability requires an iterator_extraction expression", r.Name, "")
		}
	}

	fieldSeen := make(map[string]bool)

	for _, field := range r.Fields {
		if field.Name == "" {
			diags.AddError(diagnostic.CodeInvalidField, "field declaration has no name", r.Name, "")
			continue
		}

		if field.Type == "" {
			diags.AddError(diagnostic.CodeInvalidField, "field declaration has no type", r.Name, field.Name)
		}

		if fieldSeen[field.Name] {
			diags.AddError(diagnostic.CodeDuplicateField,
				fmt.Sprintf("field %q declared more than once", field.Name), r.Name, field.Name)
		}

		fieldSeen[field.Name] = true
	}
}
