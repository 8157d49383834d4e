package plan

import (
	"fmt"

	"divigen/internal/common"
	"divigen/internal/diagnostic"
)

// locateIterationTarget finds the single field the iterator glue delegates
// to. Fields earmarked iterator: true and divided recursively are the
// candidates; when no field carries the earmark at all, the sole recurse
// field is taken instead. Zero or multiple candidates is a hard failure:
// the generator refuses to guess which inner sequence a record wraps.
func (r *Resolver) locateIterationTarget(record string, fields []ResolvedField) (int, bool) {
	earmarked := false

	var candidates []int

	for i, f := range fields {
		if f.IteratorMark {
			earmarked = true

			if f.Strategy == StrategyRecurse {
				candidates = append(candidates, i)
			} else {
				r.diags.AddWarning(diagnostic.CodeAmbiguousIterationTarget,
					fmt.Sprintf("field is earmarked iterator but divided by %s; ignored", f.Strategy),
					record, f.Name)
			}
		}
	}

	if !earmarked {
		for i, f := range fields {
			if f.Strategy == StrategyRecurse {
				candidates = append(candidates, i)
			}
		}
	}

	idx, ok := common.Single(candidates)
	if !ok {
		if len(candidates) == 0 {
			r.diags.AddError(diagnostic.CodeAmbiguousIterationTarget,
				"no recursively divided field eligible as iteration target", record, "")
		} else {
			names := make([]string, len(candidates))
			for i, c := range candidates {
				names[i] = fields[c].Name
			}

			r.diags.AddError(diagnostic.CodeAmbiguousIterationTarget,
				fmt.Sprintf("multiple fields eligible as iteration target: %v; earmark exactly one with iterator: true", names),
				record, "")
		}

		return 0, false
	}

	return idx, true
}
