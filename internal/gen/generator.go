// Package gen synthesizes Go source from resolved record plans: the length
// aggregation, the binary split, and the optional parallel-iterator glue.
// Emission goes through text/template into go/format; the synthesis itself
// only assembles per-field expressions from the resolved strategies.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"divigen/internal/common"
	"divigen/internal/plan"
)

// LengthPolicy selects how Recurse field lengths aggregate into the record's
// length. The two policies are mutually incompatible readings of the same
// operation; a generator run applies exactly one.
type LengthPolicy int

const (
	// LengthBounded takes the minimum finite length: a record is as short as
	// its shortest dividable component. This matches the historical default.
	LengthBounded LengthPolicy = iota
	// LengthUnbounded takes the maximum length: a record is as long as its
	// longest dividable component.
	LengthUnbounded
)

// String returns a human-readable policy name.
func (p LengthPolicy) String() string {
	switch p {
	case LengthBounded:
		return "bounded"
	case LengthUnbounded:
		return "unbounded"
	default:
		return common.UnknownStr
	}
}

// ParseLengthPolicy parses a policy name as accepted on the CLI.
func ParseLengthPolicy(s string) (LengthPolicy, error) {
	switch s {
	case "bounded":
		return LengthBounded, nil
	case "unbounded":
		return LengthUnbounded, nil
	default:
		return LengthBounded, fmt.Errorf("unknown length policy %q (want bounded or unbounded)", s)
	}
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the schema's package name when non-empty.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// LengthPolicy selects the length aggregation semantics.
	LengthPolicy LengthPolicy
	// Receiver is the method receiver name in generated code.
	Receiver string
	// RuntimeImport is the import path of the divisible runtime package.
	RuntimeImport string
	// GenerateComments enables per-field strategy comments.
	GenerateComments bool
	// Logger receives non-fatal generation events. Defaults to a nop logger.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		LengthPolicy:     LengthBounded,
		Receiver:         "d",
		RuntimeImport:    "divigen/divisible",
		GenerateComments: true,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Receiver == "" {
		config.Receiver = "d"
	}

	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultGeneratorConfig().RuntimeImport
	}

	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "zip_range_divisible.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per resolved record.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range p.Records {
		file, err := g.generateRecord(p.Package, &p.Records[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Records[i].Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateRecord renders and formats the capability file for one record.
func (g *Generator) generateRecord(pkg string, rec *plan.ResolvedRecord) (*GeneratedFile, error) {
	data := g.buildTemplateData(pkg, rec)

	var buf bytes.Buffer
	if err := capabilityTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  g.pruneImports(data.Filename, formatted),
	}, nil
}

// pruneImports drops imports a record declared but its field types never
// used. Best-effort: on failure the formatted source is kept and the failure
// is logged so it does not pass silently.
func (g *Generator) pruneImports(filename string, src []byte) []byte {
	cleaned, err := imports.Process(filename, src, nil)
	if err != nil {
		g.config.Logger.Warn("import pruning failed",
			zap.String("file", filename),
			zap.Error(err))

		return src
	}

	return cleaned
}

// sortImports converts an import set to a deterministic slice.
func sortImports(set map[string]importSpec) []importSpec {
	out := make([]importSpec, 0, len(set))
	for _, imp := range set {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// importSpec is a single import line of a generated file.
type importSpec struct {
	Alias string
	Path  string
}

var capabilityTemplate = template.Must(template.New("capability").Parse(`// Code generated by divigen. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{if .Assert}}var _ {{.Runtime}}.Divisible[{{.RecordType}}] = {{.RecordType}}{}
{{end}}
// Power reports the division capability kind of {{.RecordName}}.
func ({{.Receiver}} {{.RecordType}}) Power() {{.Runtime}}.Power {
	return {{.Runtime}}.{{.PowerName}}
}

// BaseLength reports the length of {{.RecordName}}, aggregated over its
// recursively divided fields ({{.PolicyName}} policy).
func ({{.Receiver}} {{.RecordType}}) BaseLength() int {
	length := {{.LengthSeed}}
{{range .LengthFields}}
	if l := {{.}}.BaseLength(); l {{$.LengthCmp}} length {
		length = l
	}
{{end}}
	return length
}

// DivideAt splits {{.RecordName}} in two at index. The receiver is consumed:
// both halves are assembled from disjoint partitions of its fields.
func ({{.Receiver}} {{.RecordType}}) DivideAt(index int) ({{.RecordType}}, {{.RecordType}}) {
{{range .SplitPairs}}	{{.VarLeft}}, {{.VarRight}} := {{.Expr}}{{if .Comment}} // {{.Comment}}{{end}}
{{end}}
	left := {{.RecordType}}{
{{range .SplitPairs}}		{{.Field}}: {{.VarLeft}},
{{end}}	}
	right := {{.RecordType}}{
{{range .SplitPairs}}		{{.Field}}: {{.VarRight}},
{{end}}	}

	return left, right
}
{{if .Iterator}}
// ExtractIter consumes the next size items of {{$.RecordName}} into a
// sequential iterator, keeping the remainder for subsequent calls.
func ({{.Receiver}} *{{.RecordType}}) ExtractIter(size int) {{.Iterator.SeqIterType}} {
	it := {{.Iterator.TargetExpr}}.ExtractIter(size)
	return {{.Iterator.Extraction}}
}

// ToSequential consumes {{.RecordName}} into a sequential iterator.
func ({{.Receiver}} {{.RecordType}}) ToSequential() {{.Iterator.SeqIterType}} {
	it := {{.Iterator.TargetExpr}}.ToSequential()
	return {{.Iterator.Extraction}}
}

// BlocksSizes forwards the preferred block sizes of the inner sequence.
func ({{.Receiver}} *{{.RecordType}}) BlocksSizes() []int {
	return {{.Iterator.TargetExpr}}.BlocksSizes()
}

// Policy forwards the scheduling hint of the inner sequence.
func ({{.Receiver}} {{.RecordType}}) Policy() {{.Runtime}}.Policy {
	return {{.Iterator.TargetExpr}}.Policy()
}

// {{.Iterator.FlattenName}} drains {{.RecordName}} block-wise into a flat
// item sequence, preserving the canonical enumeration order.
func {{.Iterator.FlattenName}}{{.FuncTypeParams}}({{.Receiver}} {{.RecordType}}) ([]{{.Iterator.ItemType}}, error) {
	return {{.Runtime}}.Flatten[{{.RecordType}}, {{.Iterator.ItemType}}, {{.Iterator.SeqIterType}}]({{.Receiver}})
}
{{end}}`))
