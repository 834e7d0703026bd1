package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmptyRegistry(t *testing.T) {
	opts := testOptions(t, "text")

	buf := &bytes.Buffer{}
	cmd := NewListCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "No patients found.")
}

func TestListOrdersByName(t *testing.T) {
	opts := testOptions(t, "text")
	registerOne(t, opts, "Zoe", "Adams")
	registerOne(t, opts, "Amy", "Young")

	buf := &bytes.Buffer{}
	cmd := NewListCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "(2 patients)")
	assert.Less(t,
		bytes.Index(buf.Bytes(), []byte("Adams")),
		bytes.Index(buf.Bytes(), []byte("Young")),
		"expected Adams before Young, got:\n%s", output)
}

func TestListJSON(t *testing.T) {
	opts := testOptions(t, "json")
	registerOne(t, opts, "John", "Doe")

	buf := &bytes.Buffer{}
	cmd := NewListCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	patients, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, patients, 1)

	record, ok := patients[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "John", record["first_name"])
	assert.Equal(t, "Doe", record["last_name"])
}
