package gen

import "divigen/internal/plan"

// buildIterator synthesizes the secondary capability: extraction methods
// delegating to the located iteration-target field, hint pass-throughs, and
// the block-wise flatten adapter function.
func (g *Generator) buildIterator(data *templateData, rec *plan.ResolvedRecord) {
	target := rec.TargetField()

	// The bounds override, when present, replaces the derived parameter list
	// of generated free functions. Receiver parameter names are unaffected:
	// they always come from the record's own declaration.
	funcParams := rec.TypeParams
	if rec.TraitBounds != "" {
		funcParams = rec.TraitBounds
	}

	if funcParams != "" {
		data.FuncTypeParams = "[" + funcParams + "]"
	}

	data.Iterator = &iteratorData{
		SeqIterType: rec.SequentialIterator,
		ItemType:    rec.Item,
		TargetExpr:  data.Receiver + "." + target.Name,
		Extraction:  rec.IteratorExtraction,
		FlattenName: "Flatten" + rec.Name,
	}
}
