package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap-generator/internal/config"
	"fieldmap-generator/internal/mapping"
)

// record builds a 13 column meta table record.
func record(desc, src, typ, dst, alt string) string {
	cells := make([]string, 13)
	cells[3], cells[4], cells[6], cells[11], cells[12] = desc, src, typ, dst, alt

	return strings.Join(cells, ",")
}

func defaultLayout() Layout {
	return LayoutOf(config.Default())
}

func collect(t *testing.T, input string, layout Layout) ([]mapping.Row, error) {
	t.Helper()

	var rows []mapping.Row

	for row, err := range Rows(strings.NewReader(input), layout) {
		if err != nil {
			return rows, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func TestRows_SkipsHeader(t *testing.T) {
	input := strings.Join([]string{
		"revision,a,b,description,name,c,type,d,e,f,g,ecs,alt",
		record("Client IP", "c_ip", "IPv4", "source.ip", ""),
		record("Signature", "sig_id", "UInt32", "rsa.misc.sigid", "rule.id"),
	}, "\n")

	rows, err := collect(t, input, defaultLayout())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, mapping.Row{Description: "Client IP", Source: "c_ip", Type: "IPv4", Primary: "source.ip"}, rows[0])
	assert.Equal(t, "rule.id", rows[1].Alternate)
}

func TestRows_HeaderOnlyOnFirstRecord(t *testing.T) {
	input := strings.Join([]string{
		record("", "c_ip", "IPv4", "source.ip", ""),
		"revision,,,,late,,Text,,,,,message,",
	}, "\n")

	rows, err := collect(t, input, defaultLayout())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "late", rows[1].Source)
}

func TestRows_BOM(t *testing.T) {
	input := "\uFEFFrevision,,,,,,,,,,,,\n" + record("", "msg", "Text", "message", "")

	rows, err := collect(t, input, defaultLayout())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "msg", rows[0].Source)
}

func TestRows_QuotedCells(t *testing.T) {
	input := `,,,"Description, with comma",msg,,Text,,,,,message,` + "\n"

	rows, err := collect(t, input, defaultLayout())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Description, with comma", rows[0].Description)
}

func TestRows_ShortRecord(t *testing.T) {
	input := record("", "msg", "Text", "message", "") + "\nshort,record\n"

	rows, err := collect(t, input, defaultLayout())
	require.ErrorIs(t, err, ErrShortRecord)
	assert.Contains(t, err.Error(), "record 2")
	assert.Len(t, rows, 1)
}

func TestRows_CustomLayout(t *testing.T) {
	layout := Layout{
		Columns:        config.Columns{Description: 4, Source: 0, Type: 1, Map: 2, Alt: 3},
		HeaderSentinel: "source",
	}
	input := "source,type,map,alt,description\nc_ip,IPv4,source.ip,,Client\n"

	rows, err := collect(t, input, layout)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mapping.Row{Description: "Client", Source: "c_ip", Type: "IPv4", Primary: "source.ip"}, rows[0])
}

func TestRecords_MalformedCSV(t *testing.T) {
	var gotErr error

	for _, err := range Records(strings.NewReader("a,\"unterminated\n")) {
		if err != nil {
			gotErr = err
		}
	}

	assert.ErrorContains(t, gotErr, "reading CSV")
}

func TestRows_InvalidUTF8(t *testing.T) {
	input := record("", "c_ip", "IPv4", "source.ip", "") + "\n" +
		record("", "host\xffname", "Text", "host.name", "") + "\n"

	rows, err := collect(t, input, defaultLayout())
	require.ErrorIs(t, err, ErrInvalidUTF8)
	assert.ErrorContains(t, err, "line 2")
	assert.ErrorContains(t, err, "column 4")
	assert.Len(t, rows, 1)
}

func TestReadRowsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.csv")
	require.NoError(t, os.WriteFile(path, []byte(record("", "msg", "Text", "message", "")+"\n"), 0o644))

	rows, err := ReadRowsFile(path, defaultLayout())
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = ReadRowsFile(filepath.Join(dir, "missing.csv"), defaultLayout())
	assert.Error(t, err)
}

func TestLoadOverridesFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "overrides.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("related.hosts,append\nhost.name,by_prio,hostname,shost\n"), 0o644))

	o, err := LoadOverridesFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"related.hosts", "host.name"}, o.Destinations())

	ymlPath := filepath.Join(dir, "overrides.yml")
	require.NoError(t, os.WriteFile(ymlPath, []byte("- field: related.hosts\n  mode: append\n"), 0o644))

	o, err = LoadOverridesFile(ymlPath)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Len())

	badPath := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(badPath, []byte("host.name,by_prio,only\n"), 0o644))

	_, err = LoadOverridesFile(badPath)
	assert.ErrorIs(t, err, mapping.ErrInvalidOverride)
}
