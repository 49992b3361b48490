package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain version",
			input: "1.2.3",
			want:  "1.2.3",
		},
		{
			name:  "two components",
			input: "1.2",
			want:  "1.2.0",
		},
		{
			name:  "prerelease",
			input: "2.0.0-beta.1",
			want:  "2.0.0-beta.1",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "not-a-version",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestVersionEqual(t *testing.T) {
	a := MustParse("1.2.3")
	b := MustParse("1.2.3")
	c := MustParse("1.2.4")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	var nilVersion *Version
	assert.True(t, nilVersion.Equal(nil))
	assert.False(t, nilVersion.Equal(a))
	assert.False(t, a.Equal(nil))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    *Version
		b    *Version
		want int
	}{
		{
			name: "equal",
			a:    MustParse("1.0.0"),
			b:    MustParse("1.0.0"),
			want: 0,
		},
		{
			name: "a older",
			a:    MustParse("1.0.0"),
			b:    MustParse("1.1.0"),
			want: -1,
		},
		{
			name: "a newer",
			a:    MustParse("2.0.0"),
			b:    MustParse("1.9.9"),
			want: 1,
		},
		{
			name: "nil sorts first",
			a:    nil,
			b:    MustParse("0.0.1"),
			want: -1,
		},
		{
			name: "both nil",
			a:    nil,
			b:    nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestSatisfies(t *testing.T) {
	c, err := ParseConstraint(">= 1.1.0")
	require.NoError(t, err)

	assert.True(t, Satisfies(MustParse("1.1.0"), c))
	assert.True(t, Satisfies(MustParse("2.0.0"), c))
	assert.False(t, Satisfies(MustParse("1.0.9"), c))
	assert.False(t, Satisfies(nil, c))
}

func TestMatchRange(t *testing.T) {
	tests := []struct {
		name     string
		version  *Version
		rawRange string
		want     bool
	}{
		{
			name:     "caret range match",
			version:  MustParse("1.4.2"),
			rawRange: "^1.1",
			want:     true,
		},
		{
			name:     "caret range major bump",
			version:  MustParse("2.0.0"),
			rawRange: "^1.1",
			want:     false,
		},
		{
			name:     "exact match",
			version:  MustParse("1.0.0"),
			rawRange: "1.0.0",
			want:     true,
		},
		{
			name:     "nil version never matches",
			version:  nil,
			rawRange: ">= 0.0.0",
			want:     false,
		},
		{
			name:     "malformed range matches nothing",
			version:  MustParse("1.0.0"),
			rawRange: ">>nonsense<<",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchRange(tt.version, tt.rawRange))
		})
	}
}
