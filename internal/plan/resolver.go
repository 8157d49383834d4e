// Package plan resolves validated record schemas into a strategy-tagged
// intermediate representation: every field carries its division strategy and,
// when iterator glue is requested, the record carries the validated index of
// its single iteration-target field.
package plan

import (
	"fmt"

	"divigen/divisible"
	"divigen/internal/diagnostic"
	"divigen/internal/schema"
)

// Resolver turns schema declarations into resolved records.
type Resolver struct {
	file  *schema.SchemaFile
	diags diagnostic.Diagnostics
}

// NewResolver creates a Resolver for the given schema file.
func NewResolver(file *schema.SchemaFile) *Resolver {
	return &Resolver{file: file}
}

// Resolve validates the schema and resolves every record. Records with error
// diagnostics are dropped from the plan; the diagnostics explain why.
func (r *Resolver) Resolve() *Plan {
	r.diags.Merge(r.file.Validate())

	// Records already rejected by validation must not be resolved.
	failed := make(map[string]bool)
	for _, e := range r.diags.Errors {
		failed[e.Record] = true
	}

	p := &Plan{Package: r.file.Package}

	for i := range r.file.Records {
		rec := &r.file.Records[i]
		if rec.Name == "" || failed[rec.Name] {
			continue
		}

		resolved, ok := r.resolveRecord(rec)
		if ok {
			p.Records = append(p.Records, resolved)
		}
	}

	p.Diagnostics = r.diags

	return p
}

// resolveRecord tags every field with its strategy and locates the iteration
// target when the record requests iterator glue.
func (r *Resolver) resolveRecord(rec *schema.RecordDecl) (ResolvedRecord, bool) {
	out := ResolvedRecord{
		Name:               rec.Name,
		TypeParams:         rec.TypeParams,
		TraitBounds:        rec.TraitBounds,
		HasIterator:        rec.HasIterator(),
		Item:               rec.Item,
		SequentialIterator: rec.SequentialIterator,
		IteratorExtraction: rec.IteratorExtraction,
		Imports:            rec.Imports,
		IterationTarget:    -1,
	}

	switch rec.Power {
	case schema.PowerIndexed:
		out.Power = divisible.Indexed
	case schema.PowerBlocked:
		out.Power = divisible.Blocked
	}

	for _, field := range rec.Fields {
		if !schema.IsRecognizedDivideToken(field.DivideBy) {
			// Default resolution is preserved, but a typo in the annotation
			// vocabulary should not pass silently.
			r.diags.AddWarning(diagnostic.CodeUnknownDivideToken,
				fmt.Sprintf("unrecognized divide_by token %q resolves to recurse", field.DivideBy),
				rec.Name, field.Name)
		}

		out.Fields = append(out.Fields, ResolvedField{
			Name:         field.Name,
			Type:         field.Type,
			Strategy:     ResolveStrategy(field.DivideBy),
			IteratorMark: field.Iterator,
		})
	}

	if out.HasIterator {
		idx, ok := r.locateIterationTarget(rec.Name, out.Fields)
		if !ok {
			return ResolvedRecord{}, false
		}

		out.IterationTarget = idx
	}

	return out, true
}
