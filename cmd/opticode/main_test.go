package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/HerbHall/opticode/internal/config"
	"github.com/HerbHall/opticode/internal/inventory"
)

func newTestApp(t *testing.T, stdin string) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	var stdout, stderr bytes.Buffer
	a := &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		newLogger: func(config.LoggingSettings) (*zap.Logger, error) {
			return zaptest.NewLogger(t), nil
		},
	}
	return a, &stdout, &stderr
}

func TestRun_NoArgs(t *testing.T) {
	a, _, stderr := newTestApp(t, "")
	assert.Equal(t, exitUsage, a.run(nil))
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	a, _, stderr := newTestApp(t, "")
	assert.Equal(t, exitUsage, a.run([]string{"frobnicate"}))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
}

func TestRun_Version(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	assert.Equal(t, exitOK, a.run([]string{"version"}))
	assert.Contains(t, stdout.String(), "opticode")
}

func TestDecode_Args(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	require.Equal(t, exitOK, a.run([]string{"decode", "020B1234AB", "01:0D:09:44:01"}))

	var got []decodeResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Report)
	assert.Equal(t, "Optical Interfaces: SMF", got[0].Report.ModuleType)
	assert.Equal(t, "100G 4WDM-20 MSA Spec", got[0].Report.LaneGroups[0].ModuleMedia)
	require.NotNil(t, got[1].Report)
	assert.Equal(t, "Optical Interfaces: MMF", got[1].Report.ModuleType)
}

func TestDecode_Stdin(t *testing.T) {
	a, stdout, _ := newTestApp(t, "# port 1/1/c1\n  020B1234AB  \n\nZZ\n")
	assert.Equal(t, exitFailure, a.run([]string{"decode", "--format", "json"}))

	var got []decodeResult
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "020B1234AB", got[0].Code)
	assert.NotNil(t, got[0].Report)
	assert.Equal(t, "ZZ", got[1].Code)
	assert.Nil(t, got[1].Report)
	assert.Contains(t, got[1].Error, "malformed compliance code")
}

func TestDecode_NoCodes(t *testing.T) {
	a, _, _ := newTestApp(t, "\n# nothing\n")
	assert.Equal(t, exitUsage, a.run([]string{"decode"}))
}

func TestDecode_YAML(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	require.Equal(t, exitOK, a.run([]string{"decode", "--format", "yaml", "03:1A:01:F4:00"}))

	out := stdout.String()
	assert.Contains(t, out, "module_type: Passive Cu")
	assert.Contains(t, out, "media_table: none")
	assert.Contains(t, out, "host_lanes: Invalid Host Lane Count")
	assert.Contains(t, out, "media_lanes: 4")
}

func TestDecode_BadFormat(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	assert.Equal(t, exitUsage, a.run([]string{"decode", "--format", "table", "01"}))
	assert.Empty(t, stdout.String())
}

func TestDecode_BadFlag(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	assert.Equal(t, exitUsage, a.run([]string{"decode", "--nope"}))
}

func TestDecode_Help(t *testing.T) {
	a, _, stderr := newTestApp(t, "")
	assert.Equal(t, exitOK, a.run([]string{"decode", "--help"}))
	assert.Contains(t, stderr.String(), "--format")
}

func TestDecode_ConfigFileFormat(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	cfg := filepath.Join(t.TempDir(), "opticode.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  format: yaml\n"), 0o600))

	require.Equal(t, exitOK, a.run([]string{"decode", "--config", cfg, "C0"}))
	assert.Contains(t, stdout.String(), "module_type: Vendor Specific/Custom")
}

func writeInventory(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInventory(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	inv := writeInventory(t, `
hosts:
  - name: pe1
    ports:
      - port: 1/1/c1
        optical_compliance: "02:0B:12:34:AB"
      - port: 1/1/c2
        optical_compliance: "01:0D:09:44:01"
`)
	metricsFile := filepath.Join(t.TempDir(), "opticode.prom")

	require.Equal(t, exitOK, a.run([]string{"inventory", "--concurrency", "2", "--metrics-file", metricsFile, inv}))

	var res inventory.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 2, res.Decoded)
	assert.Equal(t, 0, res.Malformed)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "1/1/c2", res.Entries[1].Port)

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `opticode_decodes_total{outcome="ok"} 2`)
}

func TestInventory_MalformedPortFails(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	inv := writeInventory(t, "hosts:\n  - name: pe1\n    ports:\n      - port: x\n        optical_compliance: \"0\"\n")

	assert.Equal(t, exitFailure, a.run([]string{"inventory", inv}))

	var res inventory.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	assert.Equal(t, 1, res.Malformed)
}

func TestInventory_Usage(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	assert.Equal(t, exitUsage, a.run([]string{"inventory"}))
}

func TestInventory_MissingFile(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	assert.Equal(t, exitFailure, a.run([]string{"inventory", filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestTables(t *testing.T) {
	a, stdout, _ := newTestApp(t, "")
	require.Equal(t, exitOK, a.run([]string{"tables"}))

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "Optical Interfaces: SMF", got["module_type"]["0x02"])
	assert.Equal(t, "End of list", got["host_electrical"]["0xFF"])
	assert.Equal(t, "100G 4WDM-20 MSA Spec", got["smf_media"]["0x12"])
	assert.Equal(t, "Undefined", got["mmf_media"]["0x00"])
}
