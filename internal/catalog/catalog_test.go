package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/addonmodel/cli/internal/addon"
)

func TestLookup(t *testing.T) {
	first := &addon.AddOn{ID: "a", FileVersion: 1}
	second := &addon.AddOn{ID: "a", FileVersion: 2}
	other := &addon.AddOn{ID: "b", FileVersion: 1}
	c := New(first, second, other)

	assert.Same(t, first, c.Lookup("a"))
	assert.Same(t, other, c.Lookup("b"))
	assert.Nil(t, c.Lookup("missing"))
}

func TestLoadableIn(t *testing.T) {
	old := &addon.AddOn{ID: "old", NotFromVersion: "2.10.0"}
	current := &addon.AddOn{ID: "current", NotBeforeVersion: "2.10.0"}
	unbounded := &addon.AddOn{ID: "unbounded"}
	c := New(old, current, unbounded)

	tests := []struct {
		name        string
		hostVersion string
		want        []string
	}{
		{
			name:        "empty host version keeps everything",
			hostVersion: "",
			want:        []string{"old", "current", "unbounded"},
		},
		{
			name:        "new host drops outdated records",
			hostVersion: "2.16.1",
			want:        []string{"current", "unbounded"},
		},
		{
			name:        "old host drops too-new records",
			hostVersion: "2.9.0",
			want:        []string{"old", "unbounded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.LoadableIn(tt.hostVersion, nil)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
