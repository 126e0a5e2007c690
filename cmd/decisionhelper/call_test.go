package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atlanticdynamic/decision-helper/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEndpoint(t *testing.T) string {
	t.Helper()
	server := tools.NewServer(&mcp.Implementation{Name: "test", Version: "1.0.0"}, "", tools.New())
	ts := httptest.NewServer(mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil))
	t.Cleanup(ts.Close)
	return ts.URL + "/mcp"
}

func TestCallCmd(t *testing.T) {
	endpoint := newTestEndpoint(t)

	t.Run("list", func(t *testing.T) {
		out, err := runApp(t, "call", "--url", endpoint, "--list")
		require.NoError(t, err)
		for _, name := range tools.Names {
			assert.Contains(t, out, name)
		}
	})

	t.Run("call", func(t *testing.T) {
		out, err := runApp(t, "call", "--url", endpoint, tools.StartDecision,
			`{"title":"Move","optionA":"London","optionB":"Berlin"}`)
		require.NoError(t, err)
		assert.Contains(t, out, `"optionA": "London"`)
		assert.Contains(t, out, `"id"`)
	})

	t.Run("tool error prints the message and exits 2", func(t *testing.T) {
		out, err := runApp(t, "call", "--url", endpoint, tools.StartDecision,
			`{"title":"","optionA":"London","optionB":"Berlin"}`)
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(t, err))
		assert.Contains(t, out, "title")
	})

	t.Run("missing tool name", func(t *testing.T) {
		_, err := runApp(t, "call", "--url", endpoint)
		require.Error(t, err)
		assert.Equal(t, 1, exitCode(t, err))
		assert.Contains(t, err.Error(), "tool name required")
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := runApp(t, "call", "--url", "ftp://example.com", "--list")
		require.Error(t, err)
		assert.Equal(t, 1, exitCode(t, err))
	})

	t.Run("bad arguments", func(t *testing.T) {
		_, err := runApp(t, "call", "--url", endpoint, tools.SetPriorities, `not json`)
		require.Error(t, err)
		assert.Equal(t, 1, exitCode(t, err))
	})
}

func TestReadArguments(t *testing.T) {
	got, err := readArguments(`{"a":1}`, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)

	got, err = readArguments("-", strings.NewReader(`{"priorities":["cost"]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"priorities":["cost"]}`, got)

	got, err = readArguments("", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
