package mapping

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/namespace"
)

func sampleRows() []Row {
	return []Row{
		{Description: "Client IP", Source: "c_ip", Type: "IPv4", Primary: "source.ip"},
		{Description: "Signature", Source: "sig_id", Type: "UInt32", Primary: "rsa.misc.sigid"},
		{Source: "event_time", Type: "TimeT", Primary: "rsa.time.event_time", Alternate: "@timestamp"},
		{Source: "hostname", Type: "Text", Primary: "host.name"},
		{Source: "shost", Type: "Text", Primary: "host.name", Alternate: "rsa.network.shost"},
		{Source: "fqdn", Type: "Text", Primary: "related.hosts"},
		{Source: "dhost", Type: "Text", Primary: "related.hosts"},
		{Source: "smacaddr", Type: "MAC", Primary: "source.mac"},
		{Source: "custom_ip", Type: "IPv6", Primary: "rsa.custom.ip"},
		{Source: "bytes", Type: "UInt64", Primary: "network.bytes"},
		{Source: "ratio", Type: "Float64", Primary: "rsa.misc.ratio"},
		{Source: "unused", Type: "Text"},
	}
}

func sampleOverrides(t *testing.T) *Overrides {
	t.Helper()

	o := NewOverrides()
	require.NoError(t, o.AddRecord([]string{"host.name", "by_prio", "hostname", "shost"}))
	require.NoError(t, o.AddRecord([]string{"related.hosts", "append"}))

	return o
}

func TestEmit_Examples(t *testing.T) {
	table, err := compile(t, []Row{
		{Source: "c_ip", Type: "IPv4", Primary: "source.ip"},
		{Source: "sig_id", Type: "UInt32", Primary: "rsa.misc.sigid"},
	}, nil)
	require.NoError(t, err)

	tables := table.EmitAll(DefaultConfig().Namespaces)

	expectedECS := []Entry{{
		Source:     "c_ip",
		Conversion: convert.IP,
		Targets: []Target{
			{Field: "source.ip", Mode: ModeSet},
			{Field: "related.ip", Mode: ModeAppend},
		},
	}}
	expectedRSA := []Entry{{
		Source:     "sig_id",
		Conversion: convert.Long,
		Targets:    []Target{{Field: "rsa.misc.sigid", Mode: ModeSet}},
	}}

	if diff := cmp.Diff(expectedECS, tables.ECS); diff != "" {
		t.Errorf("ECS mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(expectedRSA, tables.RSA); diff != "" {
		t.Errorf("RSA mismatch (-want +got):\n%s", diff)
	}
}

func TestEmit_SortedAndPartitioned(t *testing.T) {
	table, err := compile(t, sampleRows(), sampleOverrides(t))
	require.NoError(t, err)

	tables := table.EmitAll(DefaultConfig().Namespaces)

	ecsSources := sourcesOf(tables.ECS)
	rsaSources := sourcesOf(tables.RSA)

	assert.True(t, slices.IsSorted(ecsSources))
	assert.True(t, slices.IsSorted(rsaSources))
	assert.Equal(t, []string{"bytes", "c_ip", "dhost", "event_time", "fqdn", "hostname", "shost", "smacaddr"}, ecsSources)
	assert.Equal(t, []string{"custom_ip", "event_time", "ratio", "shost", "sig_id"}, rsaSources)

	for _, e := range tables.ECS {
		for _, tg := range e.Targets {
			assert.False(t, DefaultConfig().Namespaces.IsRSA(tg.Field), tg.Field)
		}
	}

	for _, e := range tables.RSA {
		for _, tg := range e.Targets {
			assert.True(t, DefaultConfig().Namespaces.IsRSA(tg.Field), tg.Field)
		}
	}

	shost := findEntry(t, tables.ECS, "shost")
	assert.Equal(t, []Target{{Field: "host.name", Mode: ModePriority, Priority: 1}}, shost.Targets)

	mac := findEntry(t, tables.ECS, "smacaddr")
	assert.Equal(t, convert.MAC, mac.Conversion)

	eventTime := findEntry(t, tables.RSA, "event_time")
	assert.Equal(t, convert.Date, eventTime.Conversion)
	assert.Equal(t, []Target{{Field: "rsa.time.event_time", Mode: ModeSet}}, eventTime.Targets)
}

func TestEmit_Idempotent(t *testing.T) {
	first, err := compile(t, sampleRows(), sampleOverrides(t))
	require.NoError(t, err)

	second, err := compile(t, sampleRows(), sampleOverrides(t))
	require.NoError(t, err)

	ns := DefaultConfig().Namespaces
	if diff := cmp.Diff(first.EmitAll(ns), second.EmitAll(ns)); diff != "" {
		t.Errorf("repeated compilation differs (-first +second):\n%s", diff)
	}

	if diff := cmp.Diff(first.EmitAll(ns), first.EmitAll(ns)); diff != "" {
		t.Errorf("repeated emission differs:\n%s", diff)
	}
}

func TestEmit_IndependentOfRowOrder(t *testing.T) {
	base, err := compile(t, sampleRows(), sampleOverrides(t))
	require.NoError(t, err)

	ns := DefaultConfig().Namespaces
	want := base.EmitAll(ns)

	rng := rand.New(rand.NewSource(7))

	for i := range 20 {
		rows := sampleRows()
		rng.Shuffle(len(rows), func(a, b int) { rows[a], rows[b] = rows[b], rows[a] })

		table, err := compile(t, rows, sampleOverrides(t))
		require.NoError(t, err, "permutation %d", i)

		if diff := cmp.Diff(want, table.EmitAll(ns)); diff != "" {
			t.Fatalf("permutation %d differs (-want +got):\n%s", i, diff)
		}
	}
}

func sourcesOf(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Source
	}

	return out
}

func findEntry(t *testing.T, entries []Entry, src string) Entry {
	t.Helper()

	for _, e := range entries {
		if e.Source == src {
			return e
		}
	}

	t.Fatalf("no entry for %q", src)

	return Entry{}
}

func TestEmitAll_CustomPrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Namespaces = namespace.NewClassifier("vendor.")

	table, err := Compile(cfg, Rows([]Row{
		{Source: "sig_id", Type: "UInt32", Primary: "vendor.sigid"},
		{Source: "legacy", Type: "Text", Primary: "rsa.misc.legacy"},
	}), nil)
	require.NoError(t, err)

	tables := table.EmitAll(cfg.Namespaces)

	assert.Equal(t, []string{"legacy"}, sourcesOf(tables.ECS))
	assert.Equal(t, []string{"sig_id"}, sourcesOf(tables.RSA))
}
