package gen

import "divigen/internal/plan"

// buildLength synthesizes the BaseLength aggregation. Only Recurse fields
// contribute; clone/copy/default fields are size-less passengers.
//
// Bounded policy: minimum finite length, seeded with the Unbounded sentinel.
// Seeding with MaxInt makes unbounded components drop out of the minimum
// without a separate filter, and leaves Unbounded as the answer for records
// with no Recurse fields at all.
//
// Unbounded policy: maximum length, seeded with zero. A record without any
// Recurse field reports Unbounded, except for a field-less record, which
// reports zero.
func (g *Generator) buildLength(data *templateData, rec *plan.ResolvedRecord) {
	recurse := rec.RecurseFields()

	for _, f := range recurse {
		data.LengthFields = append(data.LengthFields, data.Receiver+"."+f.Name)
	}

	switch g.config.LengthPolicy {
	case LengthUnbounded:
		data.LengthCmp = ">"
		data.LengthSeed = "0"

		if len(recurse) == 0 && len(rec.Fields) > 0 {
			data.LengthSeed = runtimeAlias + ".Unbounded"
		}

	default:
		data.LengthCmp = "<"
		data.LengthSeed = runtimeAlias + ".Unbounded"
	}
}
