package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleList() List {
	return List{
		Command: "vocabularies required",
		Column:  "vocabulary",
		Items:   []string{"HP", "MONDO"},
		Summary: map[string]interface{}{"count": 2},
	}
}

func TestWriteListPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, FormatPlain, sampleList()))

	assert.Equal(t, "HP\nMONDO\n", buf.String())
}

func TestWriteListPlainEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, FormatPlain, List{}))

	assert.Empty(t, buf.String())
}

func TestWriteListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, FormatJSON, sampleList()))

	var out struct {
		Success bool                   `json:"success"`
		Command string                 `json:"command"`
		Data    []string               `json:"data"`
		Summary map[string]interface{} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.True(t, out.Success)
	assert.Equal(t, "vocabularies required", out.Command)
	assert.Equal(t, []string{"HP", "MONDO"}, out.Data)
	assert.Equal(t, float64(2), out.Summary["count"])
}

func TestWriteListJSONEmptyKeepsData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, FormatJSON, List{Command: "vocabularies required"}))

	assert.Contains(t, buf.String(), `"data": []`)
}

func TestWriteListYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, FormatYAML, sampleList()))

	var out Output
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))

	assert.True(t, out.Success)
	assert.Equal(t, []interface{}{"HP", "MONDO"}, out.Data)
}

func TestWriteListTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, FormatTable, sampleList()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "VOCABULARY", strings.TrimSpace(lines[0]))
	assert.Equal(t, "HP", strings.TrimSpace(lines[2]))
}

func TestWriteListCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, FormatCSV, sampleList()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"vocabulary"}, {"HP"}, {"MONDO"}}, records)
}

func TestWriteListCSVQuotesIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	list := List{Column: "vocabulary", Items: []string{"ICD,10", `say "hi"`}}
	require.NoError(t, WriteList(&buf, FormatCSV, list))

	assert.Equal(t, "vocabulary\n\"ICD,10\"\n\"say \"\"hi\"\"\"\n", buf.String())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"vocabulary"}, {"ICD,10"}, {`say "hi"`}}, records)
}

func TestWriteListUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteList(&buf, "xml", sampleList())

	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats {
		assert.NoError(t, ValidateFormat(f))
	}
	assert.Error(t, ValidateFormat("xml"))
}

func TestJSONFormatterError(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	require.NoError(t, formatter.WriteError("vocabularies required", errors.New("Vocabularies query failed"), "QUERY_FAILED", "check credentials"))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, false, out["success"])
	errOut, ok := out["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "QUERY_FAILED", errOut["code"])
}
