package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicbox/patreg/internal/patient"
)

func TestExportWritesDatedFile(t *testing.T) {
	opts := testOptions(t, "text")
	registerOne(t, opts, "John", "Doe")
	registerOne(t, opts, "Jane", "Smith")

	outDir := t.TempDir()

	buf := &bytes.Buffer{}
	cmd := NewExportCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--out", outDir})

	require.NoError(t, cmd.Execute())

	want := filepath.Join(outDir, fmt.Sprintf("patients-%s.json", time.Now().UTC().Format("2006-01-02")))
	assert.Contains(t, buf.String(), want)

	data, err := os.ReadFile(want)
	require.NoError(t, err)

	var doc patient.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotEmpty(t, doc.ExportID)
	require.Len(t, doc.Patients, 2)
	assert.Equal(t, "Doe", doc.Patients[0].LastName)
}

func TestExportUsesConfigDir(t *testing.T) {
	opts := testOptions(t, "text")
	registerOne(t, opts, "John", "Doe")
	opts.cfg.ExportDir = t.TempDir()

	buf := &bytes.Buffer{}
	cmd := NewExportCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), opts.cfg.ExportDir)
}

func TestExportWriteFailure(t *testing.T) {
	opts := testOptions(t, "text")
	registerOne(t, opts, "John", "Doe")

	buf := &bytes.Buffer{}
	cmd := NewExportCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--out", filepath.Join(t.TempDir(), "no", "such", "dir")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E004")
}
