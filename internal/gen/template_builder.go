package gen

import (
	"fmt"
	"strings"
	"unicode"

	"divigen/internal/plan"
)

// runtimeAlias is the package name the generated code references the
// divisible runtime under.
const runtimeAlias = "divisible"

// templateData holds all data needed for the capability template.
type templateData struct {
	PackageName string
	Filename    string
	Imports     []importSpec
	RecordName  string
	// RecordType is the record with its type arguments, e.g. "Zip[T]".
	RecordType string
	Receiver   string
	Runtime    string
	PowerName  string
	PolicyName string
	// Assert enables the compile-time interface compliance check
	// (non-generic records only; a generic assertion needs instantiation).
	Assert bool
	// Length synthesis: seed expression, comparison operator, and one
	// BaseLength call expression per Recurse field.
	LengthSeed   string
	LengthCmp    string
	LengthFields []string
	// Split synthesis: one left/right pair per field, declaration order.
	SplitPairs []splitPair
	// Iterator glue, nil unless the iterator capability was requested.
	Iterator *iteratorData
	// FuncTypeParams is the bracketed parameter list for generated free
	// functions, e.g. "[T any]"; empty for non-generic records.
	FuncTypeParams string
}

// splitPair is the (left, right) expression synthesized for one field.
type splitPair struct {
	// VarLeft and VarRight name the pair's halves, by field position.
	VarLeft  string
	VarRight string
	// Expr evaluates to the two halves in one step, so every field is
	// evaluated exactly once even when the strategy consumes the value.
	Expr string
	// Field is the record field assembled from this pair.
	Field string
	// Comment notes the applied strategy when comment emission is on.
	Comment string
}

// iteratorData carries the secondary-capability glue for one record.
type iteratorData struct {
	SeqIterType string
	ItemType    string
	// TargetExpr addresses the located iteration-target field.
	TargetExpr string
	// Extraction is the user's expression over the bound variable "it".
	Extraction string
	FlattenName string
}

// buildTemplateData constructs the template data for one resolved record.
func (g *Generator) buildTemplateData(pkg string, rec *plan.ResolvedRecord) *templateData {
	if g.config.PackageName != "" {
		pkg = g.config.PackageName
	}

	names := paramNames(rec.TypeParams)

	data := &templateData{
		PackageName: pkg,
		Filename:    snakeCase(rec.Name) + "_divisible.go",
		RecordName:  rec.Name,
		RecordType:  instantiate(rec.Name, names),
		Receiver:    g.config.Receiver,
		Runtime:     runtimeAlias,
		PowerName:   exportName(rec.Power.String()),
		PolicyName:  g.config.LengthPolicy.String(),
		Assert:      len(names) == 0,
	}

	imports := map[string]importSpec{
		g.config.RuntimeImport: {Path: g.config.RuntimeImport},
	}
	for _, path := range rec.Imports {
		imports[path] = importSpec{Path: path}
	}

	data.Imports = sortImports(imports)

	g.buildLength(data, rec)
	g.buildSplit(data, rec)

	if rec.HasIterator {
		g.buildIterator(data, rec)
	}

	return data
}

// instantiate appends type arguments to a record name: Zip + [T] -> "Zip[T]".
func instantiate(name string, params []string) string {
	if len(params) == 0 {
		return name
	}

	return name + "[" + strings.Join(params, ", ") + "]"
}

// paramNames extracts the parameter names from a declaration list like
// "T any, U comparable" or "K, V any". Commas nested in constraint
// expressions are skipped.
func paramNames(list string) []string {
	var names []string

	for _, group := range splitTopLevel(list) {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}

		name, _, _ := strings.Cut(group, " ")
		names = append(names, strings.TrimSpace(name))
	}

	return names
}

// splitTopLevel splits a comma-separated list, ignoring commas inside
// brackets, braces, and parentheses.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	if start < len(s) {
		parts = append(parts, s[start:])
	}

	return parts
}

// snakeCase converts a Go type name to a snake_case file stem. Upper-case
// runs stay together, so acronyms keep their shape: HTTPRange -> http_range.
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}

		// A word starts at an upper following a non-upper, or at the last
		// upper of a run followed by a lower.
		prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

		if i > 0 && (prevLower || nextLower) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// exportName capitalizes a tag name into its runtime constant, e.g.
// "indexed" -> "Indexed".
func exportName(tag string) string {
	if tag == "" {
		return ""
	}

	return strings.ToUpper(tag[:1]) + tag[1:]
}

// pairVars names the halves of the split pair for the field at position i.
func pairVars(i int) (string, string) {
	return fmt.Sprintf("f%dLeft", i), fmt.Sprintf("f%dRight", i)
}
