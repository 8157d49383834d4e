package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"divigen/divisible"
	"divigen/internal/diagnostic"
	"divigen/internal/schema"
)

func iterRecord() schema.RecordDecl {
	return schema.RecordDecl{
		Name:               "ZipRange",
		TypeParams:         "T any",
		Power:              schema.PowerIndexed,
		Capabilities:       schema.StringOrArray{schema.CapabilityDivisible, schema.CapabilityIterator},
		Item:               "T",
		SequentialIterator: "*divisible.SliceIter[T]",
		IteratorExtraction: "it",
		Fields: []schema.FieldDecl{
			{Name: "Data", Type: "divisible.SliceRange[T]", Iterator: true},
			{Name: "Tag", Type: "string", DivideBy: schema.DivideCopy},
			{Name: "Scale", Type: "Ratio", DivideBy: schema.DivideClone},
			{Name: "Scratch", Type: "[]byte", DivideBy: schema.DivideDefault},
		},
	}
}

func TestResolveTagsEveryField(t *testing.T) {
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{iterRecord()}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Records, 1)

	rec := p.Records[0]
	assert.Equal(t, "ranges", p.Package)
	assert.Equal(t, divisible.Indexed, rec.Power)
	assert.True(t, rec.HasIterator)

	want := []Strategy{StrategyRecurse, StrategyCopyBoth, StrategyCloneBoth, StrategyDefaultRight}
	require.Len(t, rec.Fields, len(want))

	for i, f := range rec.Fields {
		assert.Equal(t, want[i], f.Strategy, f.Name)
	}

	// Field order survives resolution untouched.
	assert.Equal(t, []ResolvedField{rec.Fields[0]}, rec.RecurseFields())
	assert.Equal(t, 0, rec.IterationTarget)
	assert.Equal(t, "Data", rec.TargetField().Name)
}

func TestResolveBlockedPower(t *testing.T) {
	rec := iterRecord()
	rec.Power = schema.PowerBlocked
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.Len(t, p.Records, 1)
	assert.Equal(t, divisible.Blocked, p.Records[0].Power)
}

func TestResolveUnknownTokenWarns(t *testing.T) {
	rec := iterRecord()
	rec.Fields[1].DivideBy = "bogus"
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.IsValid(), "a typo must not fail the build")
	require.Len(t, p.Records, 1)

	// The field behaves exactly like an unannotated one.
	assert.Equal(t, StrategyRecurse, p.Records[0].Fields[1].Strategy)

	require.NotEmpty(t, p.Diagnostics.Warnings)
	assert.Equal(t, diagnostic.CodeUnknownDivideToken, p.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "Tag", p.Diagnostics.Warnings[0].Field)
}

func TestResolveValidationFailureDropsRecord(t *testing.T) {
	rec := iterRecord()
	rec.Power = ""
	good := iterRecord()
	good.Name = "Other"
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec, good}}

	p := NewResolver(f).Resolve()
	assert.True(t, p.Diagnostics.HasErrors())

	// Failure is local to the bad record; the good one still resolves.
	require.Len(t, p.Records, 1)
	assert.Equal(t, "Other", p.Records[0].Name)
}

func TestLocateSingleRecurseWithoutEarmark(t *testing.T) {
	rec := iterRecord()
	rec.Fields[0].Iterator = false
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Records, 1)
	assert.Equal(t, 0, p.Records[0].IterationTarget)
}

func TestLocateAmbiguousWithoutEarmark(t *testing.T) {
	rec := iterRecord()
	rec.Fields[0].Iterator = false
	rec.Fields[1] = schema.FieldDecl{Name: "More", Type: "divisible.SliceRange[T]"}
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.HasErrors())
	assert.Equal(t, diagnostic.CodeAmbiguousIterationTarget, p.Diagnostics.Errors[0].Code)
	assert.Empty(t, p.Records, "no partial generation for ambiguous records")
}

func TestLocateEarmarkDisambiguates(t *testing.T) {
	rec := iterRecord()
	rec.Fields[1] = schema.FieldDecl{Name: "More", Type: "divisible.SliceRange[T]"}
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Records, 1)
	assert.Equal(t, 0, p.Records[0].IterationTarget)
}

func TestLocateNoCandidates(t *testing.T) {
	rec := iterRecord()
	rec.Fields = []schema.FieldDecl{
		{Name: "Tag", Type: "string", DivideBy: schema.DivideCopy},
	}
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.HasErrors())
	assert.Equal(t, diagnostic.CodeAmbiguousIterationTarget, p.Diagnostics.Errors[0].Code)
}

func TestLocateEarmarkOnPassengerField(t *testing.T) {
	// An earmark on a non-recurse field is a contradiction: it suppresses the
	// fallback and leaves no candidate.
	rec := iterRecord()
	rec.Fields[0].Iterator = false
	rec.Fields[1].Iterator = true
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.HasErrors())
	assert.Equal(t, diagnostic.CodeAmbiguousIterationTarget, p.Diagnostics.Errors[0].Code)
	assert.NotEmpty(t, p.Diagnostics.Warnings, "the contradictory earmark itself is flagged")
}

func TestResolveNoIteratorSkipsLocator(t *testing.T) {
	rec := iterRecord()
	rec.Capabilities = schema.StringOrArray{schema.CapabilityDivisible}
	rec.Fields[1] = schema.FieldDecl{Name: "More", Type: "divisible.SliceRange[T]"}
	f := &schema.SchemaFile{Package: "ranges", Records: []schema.RecordDecl{rec}}

	p := NewResolver(f).Resolve()
	require.True(t, p.Diagnostics.IsValid(), "two recurse fields are fine without iterator glue")
	require.Len(t, p.Records, 1)
	assert.Equal(t, -1, p.Records[0].IterationTarget)
}
