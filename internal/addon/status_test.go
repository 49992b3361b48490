package addon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOrdering(t *testing.T) {
	ordered := []Status{StatusUnknown, StatusExample, StatusAlpha, StatusBeta, StatusWeekly, StatusRelease}

	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i].After(ordered[i-1]),
			"%s should be after %s", ordered[i], ordered[i-1])
		assert.False(t, ordered[i-1].After(ordered[i]),
			"%s should not be after %s", ordered[i-1], ordered[i])
	}

	assert.False(t, StatusBeta.After(StatusBeta))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "release", StatusRelease.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "unknown", Status(42).String())
	assert.Equal(t, "unknown", Status(-1).String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "release", want: StatusRelease},
		{input: "weekly", want: StatusWeekly},
		{input: "beta", want: StatusBeta},
		{input: "alpha", want: StatusAlpha},
		{input: "example", want: StatusExample},
		{input: "unknown", want: StatusUnknown},
		{input: "stable", wantErr: true},
		{input: "", wantErr: true},
		{input: "Release", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
