package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Setenv("DH_TEST_HOST", "localhost")
	t.Setenv("DH_TEST_EMPTY", "")

	tests := []struct {
		name    string
		input   string
		want    string
		missing []string
	}{
		{name: "empty input", input: "", want: ""},
		{name: "no references", input: ":8080", want: ":8080"},
		{name: "set variable", input: "${DH_TEST_HOST}:8080", want: "localhost:8080"},
		{name: "set variable ignores default", input: "${DH_TEST_HOST:0.0.0.0}", want: "localhost"},
		{name: "set but empty", input: "[${DH_TEST_EMPTY:fallback}]", want: "[]"},
		{name: "default used", input: "${DH_TEST_UNSET_PORT:9000}", want: "9000"},
		{name: "empty default", input: "a${DH_TEST_UNSET_X:}b", want: "ab"},
		{name: "default with colon", input: "${DH_TEST_UNSET_ADDR:127.0.0.1:80}", want: "127.0.0.1:80"},
		{name: "dollar without braces", input: "$DH_TEST_HOST", want: "$DH_TEST_HOST"},
		{
			name:    "missing variables",
			input:   "${DH_TEST_UNSET_A}/${DH_TEST_UNSET_B}",
			want:    "${DH_TEST_UNSET_A}/${DH_TEST_UNSET_B}",
			missing: []string{"DH_TEST_UNSET_A", "DH_TEST_UNSET_B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input)
			assert.Equal(t, tt.want, got)
			if len(tt.missing) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrUndefinedVariable)
			for _, name := range tt.missing {
				assert.Contains(t, err.Error(), name)
			}
		})
	}
}

func TestExpandWith(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "PATH_PREFIX" {
			return "/v2", true
		}
		return "", false
	}

	got, err := ExpandWith("${PATH_PREFIX}/mcp", lookup)
	require.NoError(t, err)
	assert.Equal(t, "/v2/mcp", got)

	_, err = ExpandWith("${HOME}", lookup)
	require.ErrorIs(t, err, ErrUndefinedVariable)
}
