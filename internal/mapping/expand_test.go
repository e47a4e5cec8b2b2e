package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap-generator/internal/convert"
)

func TestExpander_Expand(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected []Setter
	}{
		{
			name: "ip to ECS field links related.ip",
			row:  Row{Source: "c_ip", Type: "IPv4", Primary: "source.ip"},
			expected: []Setter{
				{Source: "c_ip", Destination: "source.ip", Mode: ModeSet, Conversion: convert.IP},
				{Source: "c_ip", Destination: "related.ip", Mode: ModeAppend, Conversion: convert.IP},
			},
		},
		{
			name: "ip to RSA field only does not link",
			row:  Row{Source: "x_ip", Type: "IPv4", Primary: "rsa.custom.ip"},
			expected: []Setter{
				{Source: "x_ip", Destination: "rsa.custom.ip", Mode: ModeSet, Conversion: convert.IP},
			},
		},
		{
			name: "ip to RSA and ECS links once",
			row:  Row{Source: "daddr", Type: "IPv6", Primary: "rsa.network.daddr", Alternate: "destination.ip"},
			expected: []Setter{
				{Source: "daddr", Destination: "rsa.network.daddr", Mode: ModeSet, Conversion: convert.IP},
				{Source: "daddr", Destination: "destination.ip", Mode: ModeSet, Conversion: convert.IP},
				{Source: "daddr", Destination: "related.ip", Mode: ModeAppend, Conversion: convert.IP},
			},
		},
		{
			name: "numeric to RSA",
			row:  Row{Source: "sig_id", Type: "UInt32", Primary: "rsa.misc.sigid"},
			expected: []Setter{
				{Source: "sig_id", Destination: "rsa.misc.sigid", Mode: ModeSet, Conversion: convert.Long},
			},
		},
		{
			name: "alternate only",
			row:  Row{Source: "msg", Type: "Text", Alternate: "message"},
			expected: []Setter{
				{Source: "msg", Destination: "message", Mode: ModeSet, Conversion: convert.None},
			},
		},
		{
			name: "same destination twice is kept twice",
			row:  Row{Source: "fqdn", Type: "", Primary: "host.name", Alternate: "host.name"},
			expected: []Setter{
				{Source: "fqdn", Destination: "host.name", Mode: ModeSet, Conversion: convert.None},
				{Source: "fqdn", Destination: "host.name", Mode: ModeSet, Conversion: convert.None},
			},
		},
		{
			name:     "no destinations",
			row:      Row{Source: "unused", Type: "IPv4"},
			expected: []Setter{},
		},
	}

	e := NewExpander(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, setters, err := e.Expand(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.row.Source, src)
			assert.Equal(t, tt.expected, setters)
		})
	}
}

func TestExpander_UnsupportedType(t *testing.T) {
	_, _, err := NewExpander(DefaultConfig()).Expand(Row{Source: "blob", Type: "Blob", Primary: "file.data"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), `"blob"`)
	assert.Contains(t, err.Error(), `"Blob"`)
}

func TestExpander_CustomRelatedField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RelatedIPField = "related.addresses"

	_, setters, err := NewExpander(cfg).Expand(Row{Source: "c_ip", Type: "IPv4", Primary: "client.ip"})
	require.NoError(t, err)
	require.Len(t, setters, 2)
	assert.Equal(t, "related.addresses", setters[1].Destination)
}

func TestRow_Destinations(t *testing.T) {
	assert.Nil(t, Row{}.Destinations())
	assert.Equal(t, []string{"a", "b"}, Row{Primary: "a", Alternate: "b"}.Destinations())
	assert.Equal(t, []string{"b"}, Row{Alternate: "b"}.Destinations())
}
