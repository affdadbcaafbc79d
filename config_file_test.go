package easylog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	easylog "github.com/RealFaceCode/easyLog"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easylog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadConfigTogglesAndLevels(t *testing.T) {
	path := writeConfig(t, `
console: true
file: false
colorless: true
metadata:
  date: false
  time: false
  file: false
  function: false
  line: false
buffer:
  console: true
  capacity: 16
levels:
  - name: AUDIT
    color: bold_cyan
  - name: SECURITY
    color: red
`)

	var buf bytes.Buffer
	log := easylog.NewWithOptions(easylog.Options{ConsoleWriter: &buf, ForceColor: true})
	require.NoError(t, log.LoadConfig(path))

	log.Custom("AUDIT", "admin login")
	log.Custom("SECURITY", "door ajar")

	out := buf.String()
	require.Equal(t, "AUDIT\t:  : admin login\nSECURITY\t:  : door ajar\n", out,
		"colorless config must strip escapes and metadata config must strip the block")
	require.Len(t, log.ConsoleBuffer(), 2)
}

func TestLoadConfigFileLoggers(t *testing.T) {
	dir := t.TempDir()
	auditPath := filepath.Join(dir, "audit.log")
	path := writeConfig(t, `
console: false
file: true
defaultFile: false
metadata:
  date: false
  time: false
  file: false
  function: false
  line: false
fileLoggers:
  - name: audit
    path: `+auditPath+`
    truncate: true
useFileLogger: audit
`)

	log := easylog.NewWithOptions(easylog.Options{ConsoleWriter: bytes.NewBuffer(nil), NoColor: true})
	require.NoError(t, log.LoadConfig(path))

	log.Warning("audited")
	require.NoError(t, log.CloseStreams())

	raw, err := os.ReadFile(auditPath)
	require.NoError(t, err)
	require.Equal(t, "WARNING\t:  : audited\n", string(raw))
}

func TestLoadConfigThreadedStartsWorker(t *testing.T) {
	path := writeConfig(t, `
threaded: true
`)
	log := easylog.NewWithOptions(easylog.Options{ConsoleWriter: bytes.NewBuffer(nil), NoColor: true})
	require.NoError(t, log.LoadConfig(path))
	require.True(t, log.WorkerRunning())
	log.Wait()
}

func TestLoadConfigUnknownColor(t *testing.T) {
	path := writeConfig(t, `
levels:
  - name: AUDIT
    color: chartreuse
`)
	log := easylog.NewWithOptions(easylog.Options{ConsoleWriter: bytes.NewBuffer(nil), NoColor: true})
	err := log.LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "chartreuse")
}

func TestLoadConfigDuplicateLevel(t *testing.T) {
	path := writeConfig(t, `
levels:
  - name: INFO
    color: green
`)
	log := easylog.NewWithOptions(easylog.Options{ConsoleWriter: bytes.NewBuffer(nil), NoColor: true})
	err := log.LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestLoadConfigMissingFile(t *testing.T) {
	log := easylog.New()
	err := log.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "console: [unclosed")
	log := easylog.New()
	err := log.LoadConfig(path)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "parse config"))
}
