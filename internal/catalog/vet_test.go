package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addonmodel/cli/internal/addon"
	"github.com/addonmodel/cli/internal/semver"
)

func TestVetCleanCatalog(t *testing.T) {
	c := New(
		&addon.AddOn{ID: "a", FileVersion: 1, Dependencies: &addon.Dependencies{
			AddOns: []addon.Dependency{{
				ID:                   "b",
				NotBeforeFileVersion: addon.NoFileVersionBound,
				NotFromFileVersion:   addon.NoFileVersionBound,
				SemVer:               "^1.0",
			}},
		}},
		&addon.AddOn{ID: "b", FileVersion: 1, Version: semver.MustParse("1.1.0")},
	)

	assert.Empty(t, Vet(c))
}

func TestVetFindings(t *testing.T) {
	tests := []struct {
		name    string
		catalog *Catalog
		want    string
	}{
		{
			name: "duplicate release",
			catalog: New(
				&addon.AddOn{ID: "a", FileVersion: 1},
				&addon.AddOn{ID: "a", FileVersion: 1},
			),
			want: "duplicate release",
		},
		{
			name: "dependency without id",
			catalog: New(&addon.AddOn{ID: "a", FileVersion: 1, Dependencies: &addon.Dependencies{
				AddOns: []addon.Dependency{{
					NotBeforeFileVersion: addon.NoFileVersionBound,
					NotFromFileVersion:   addon.NoFileVersionBound,
				}},
			}}),
			want: "dependency without id",
		},
		{
			name: "dependency not in catalog",
			catalog: New(&addon.AddOn{ID: "a", FileVersion: 1, Dependencies: &addon.Dependencies{
				AddOns: []addon.Dependency{{
					ID:                   "ghost",
					NotBeforeFileVersion: addon.NoFileVersionBound,
					NotFromFileVersion:   addon.NoFileVersionBound,
				}},
			}}),
			want: "not in the catalog",
		},
		{
			name: "invalid version range",
			catalog: New(
				&addon.AddOn{ID: "a", FileVersion: 1, Dependencies: &addon.Dependencies{
					AddOns: []addon.Dependency{{
						ID:                   "b",
						NotBeforeFileVersion: addon.NoFileVersionBound,
						NotFromFileVersion:   addon.NoFileVersionBound,
						SemVer:               ">>nonsense<<",
					}},
				}},
				&addon.AddOn{ID: "b", FileVersion: 1},
			),
			want: "invalid version range",
		},
		{
			name: "inverted file-version bounds",
			catalog: New(
				&addon.AddOn{ID: "a", FileVersion: 1, Dependencies: &addon.Dependencies{
					AddOns: []addon.Dependency{{
						ID:                   "b",
						NotBeforeFileVersion: 5,
						NotFromFileVersion:   3,
					}},
				}},
				&addon.AddOn{ID: "b", FileVersion: 1},
			),
			want: "impossible file-version bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Vet(tt.catalog)
			require.Len(t, problems, 1)
			assert.Contains(t, problems[0].Message, tt.want)
			assert.Equal(t, "a", problems[0].AddOn)
		})
	}
}

func TestVetPackageURL(t *testing.T) {
	t.Run("matching package file", func(t *testing.T) {
		c := New(&addon.AddOn{
			ID: "websocket", FileVersion: 5, Status: addon.StatusRelease,
			URL: "https://example.org/files/websocket-release-5.addon",
		})
		assert.Empty(t, Vet(c))
	})

	t.Run("mismatched file version", func(t *testing.T) {
		c := New(&addon.AddOn{
			ID: "websocket", FileVersion: 6, Status: addon.StatusRelease,
			URL: "https://example.org/files/websocket-release-5.addon",
		})
		problems := Vet(c)
		require.Len(t, problems, 1)
		assert.Contains(t, problems[0].Message, "file version 5")
	})

	t.Run("non-package url is ignored", func(t *testing.T) {
		c := New(&addon.AddOn{
			ID: "websocket", FileVersion: 5,
			URL: "https://example.org/files/websocket.tar.gz",
		})
		assert.Empty(t, Vet(c))
	})
}

func TestVetDistinctReleasesAreNotDuplicates(t *testing.T) {
	c := New(
		&addon.AddOn{ID: "a", FileVersion: 1},
		&addon.AddOn{ID: "a", FileVersion: 2},
	)

	assert.Empty(t, Vet(c))
}
