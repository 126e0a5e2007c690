package decision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPriorities(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected Priorities
	}{
		{"example from the docs", []string{"Cost", "Cost", "Lifestyle"}, Priorities{"Cost", "Lifestyle"}},
		{"nil input", nil, Priorities{}},
		{"empty input", []string{}, Priorities{}},
		{"trims entries", []string{"  Cost ", "\tStability"}, Priorities{"Cost", "Stability"}},
		{"drops empty entries", []string{"", "  ", "Cost"}, Priorities{"Cost"}},
		{"case-insensitive duplicates keep first", []string{"cost", "COST", "Lifestyle"}, Priorities{"cost", "Lifestyle"}},
		{"keeps order", []string{"Stability", "Cost", "Flexibility"}, Priorities{"Stability", "Cost", "Flexibility"}},
		{"unknown labels kept as typed", []string{"Commute time"}, Priorities{"Commute time"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SetPriorities(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSetPriorities_TooMany(t *testing.T) {
	t.Run("four distinct entries", func(t *testing.T) {
		got, err := SetPriorities([]string{"Cost", "Lifestyle", "Stability", "Flexibility"})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, ErrTooManyPriorities)
		assert.Contains(t, err.Error(), "got 4")
	})

	t.Run("raw length is checked before collapsing", func(t *testing.T) {
		_, err := SetPriorities([]string{"Cost", "Cost", "Cost", "Cost"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTooManyPriorities)
	})
}

func TestSetPriorities_Properties(t *testing.T) {
	inputs := [][]string{
		{"a", "A", "b"},
		{"x", " x ", "X"},
		{"one", "two", "three"},
		{"", "", ""},
		{"Cost", "cost", "Career growth"},
	}

	for _, input := range inputs {
		got, err := SetPriorities(input)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), MaxPriorities)

		seen := map[string]bool{}
		for _, p := range got {
			assert.NotEmpty(t, p)
			key := strings.ToLower(p)
			assert.False(t, seen[key], "duplicate %q in %v", p, got)
			seen[key] = true
		}
	}
}

func TestCanonicalizer(t *testing.T) {
	c := NewCanonicalizer(DefaultKnownPriorities)
	assert.Equal(t, len(DefaultKnownPriorities), c.Known())

	t.Run("rewrites known labels", func(t *testing.T) {
		got, err := c.SetPriorities([]string{"cost", "WORK-LIFE BALANCE", "career Growth"})
		require.NoError(t, err)
		assert.Equal(t, Priorities{"Cost", "Work-life balance", "Career growth"}, got)
	})

	t.Run("collapses after rewriting", func(t *testing.T) {
		got, err := c.SetPriorities([]string{"cost", "Cost ", "Commute"})
		require.NoError(t, err)
		assert.Equal(t, Priorities{"Cost", "Commute"}, got)
	})

	t.Run("custom list ignores blanks and duplicates", func(t *testing.T) {
		custom := NewCanonicalizer([]string{"Schools", " ", "schools", "Weather"})
		assert.Equal(t, 2, custom.Known())
		assert.Equal(t, "Schools", custom.Canonical("SCHOOLS"))
		assert.Equal(t, "cost", custom.Canonical("cost"))
	})

	t.Run("nil canonicalizer is a no-op", func(t *testing.T) {
		var nilC *Canonicalizer
		assert.Equal(t, "cost", nilC.Canonical("cost"))
		assert.Equal(t, 0, nilC.Known())
	})
}

func TestPriorities_Join(t *testing.T) {
	assert.Equal(t, "general factors", Priorities{}.String())
	assert.Equal(t, "Cost, Lifestyle", Priorities{"Cost", "Lifestyle"}.String())
	assert.Equal(t, "none", Priorities(nil).Join("none"))
}
