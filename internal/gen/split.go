package gen

import "divigen/internal/plan"

// buildSplit synthesizes the DivideAt body: one (left, right) pair expression
// per field, in declaration order, followed by reassembly of two records from
// the left and right halves respectively. Every field expression appears
// exactly once; for Recurse fields the split consumes the value, so a second
// evaluation would be incorrect, not just wasteful.
func (g *Generator) buildSplit(data *templateData, rec *plan.ResolvedRecord) {
	for i, f := range rec.Fields {
		varLeft, varRight := pairVars(i)
		fieldExpr := data.Receiver + "." + f.Name

		var expr, comment string

		switch f.Strategy {
		case plan.StrategyCloneBoth:
			expr = fieldExpr + ".Clone(), " + fieldExpr
			comment = "clone both halves"
		case plan.StrategyCopyBoth:
			expr = fieldExpr + ", " + fieldExpr
			comment = "copy both halves"
		case plan.StrategyDefaultRight:
			expr = fieldExpr + ", " + runtimeAlias + ".Zero[" + f.Type + "]()"
			comment = "keep left, zero right"
		default:
			expr = fieldExpr + ".DivideAt(index)"
			comment = "recurse"
		}

		if !g.config.GenerateComments {
			comment = ""
		}

		data.SplitPairs = append(data.SplitPairs, splitPair{
			VarLeft:  varLeft,
			VarRight: varRight,
			Expr:     expr,
			Field:    f.Name,
			Comment:  comment,
		})
	}
}
