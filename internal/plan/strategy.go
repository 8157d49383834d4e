package plan

import (
	"divigen/internal/common"
	"divigen/internal/schema"
)

// Strategy is the per-field rule governing what each half of a split
// receives.
type Strategy int

const (
	// StrategyRecurse splits the field recursively at the same index.
	StrategyRecurse Strategy = iota
	// StrategyCloneBoth gives both halves an independent deep copy.
	StrategyCloneBoth
	// StrategyCopyBoth gives both halves a bitwise duplicate.
	StrategyCopyBoth
	// StrategyDefaultRight moves the value left and zeroes the right half.
	StrategyDefaultRight
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyRecurse:
		return "recurse"
	case StrategyCloneBoth:
		return "clone_both"
	case StrategyCopyBoth:
		return "copy_both"
	case StrategyDefaultRight:
		return "default_right"
	default:
		return common.UnknownStr
	}
}

// ResolveStrategy maps a divide annotation token to its strategy. An absent
// or unrecognized token resolves to recurse: anything not explicitly marked
// is assumed to be itself divisible. Callers that care about typos should
// also check schema.IsRecognizedDivideToken.
func ResolveStrategy(token string) Strategy {
	switch token {
	case schema.DivideClone:
		return StrategyCloneBoth
	case schema.DivideCopy:
		return StrategyCopyBoth
	case schema.DivideDefault:
		return StrategyDefaultRight
	default:
		return StrategyRecurse
	}
}
