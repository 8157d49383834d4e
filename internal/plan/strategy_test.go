package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStrategy(t *testing.T) {
	tests := []struct {
		token string
		want  Strategy
	}{
		{token: "clone", want: StrategyCloneBoth},
		{token: "copy", want: StrategyCopyBoth},
		{token: "default", want: StrategyDefaultRight},
		{token: "", want: StrategyRecurse},
		// Unrecognized tokens keep the permissive default: anything not
		// explicitly marked is assumed to be itself divisible.
		{token: "bogus", want: StrategyRecurse},
		{token: "Clone", want: StrategyRecurse},
	}

	for _, tt := range tests {
		t.Run("token "+tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStrategy(tt.token))
		})
	}
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "recurse", StrategyRecurse.String())
	assert.Equal(t, "clone_both", StrategyCloneBoth.String())
	assert.Equal(t, "copy_both", StrategyCopyBoth.String())
	assert.Equal(t, "default_right", StrategyDefaultRight.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}
