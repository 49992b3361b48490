package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffYAML(t *testing.T) {
	t.Run("equal documents yield empty report", func(t *testing.T) {
		doc := []byte("addOns:\n  - id: websocket\n    fileVersion: 5\n")
		result, err := DiffYAML("a.yaml", doc, "b.yaml", doc, false)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("key order does not matter", func(t *testing.T) {
		a := []byte("id: websocket\nfileVersion: 5\n")
		b := []byte("fileVersion: 5\nid: websocket\n")
		result, err := DiffYAML("a.yaml", a, "b.yaml", b, false)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("changed value is reported", func(t *testing.T) {
		a := []byte("addOns:\n  - id: websocket\n    fileVersion: 5\n")
		b := []byte("addOns:\n  - id: websocket\n    fileVersion: 6\n")
		result, err := DiffYAML("a.yaml", a, "b.yaml", b, false)
		require.NoError(t, err)
		assert.NotEmpty(t, result)
		assert.Contains(t, result, "fileVersion")
	})

	t.Run("both empty", func(t *testing.T) {
		result, err := DiffYAML("a.yaml", nil, "b.yaml", nil, false)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("malformed input is an error", func(t *testing.T) {
		_, err := DiffYAML("a.yaml", []byte("x: [unclosed"), "b.yaml", []byte("x: 1"), false)
		assert.Error(t, err)
	})
}
