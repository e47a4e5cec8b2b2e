package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	types := []string{"Text", "TimeT", "IPv4", "IPv6", "UInt32", "UInt64", "Float64", "MAC"}

	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{"case difference", "uint32", "UInt32", true},
		{"transposed digits", "UInt23", "UInt32", true},
		{"separator noise", "Float_64", "Float64", true},
		{"nothing close", "Blob", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.input, types, DefaultThreshold)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRank_StableOrder(t *testing.T) {
	ranked := Rank("source.ipp", []string{"source.port", "destination.ip", "source.ip"}, 0.5)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "source.ip", ranked[0].Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}
