package docxml

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// withConfig installs a modified copy of the default config for the duration of the test
func withConfig(t *testing.T, modify func(*Config)) {
	t.Helper()
	previous := GetGlobalConfig()
	config := DefaultConfig()
	if modify != nil {
		modify(config)
	}
	SetGlobalConfig(config)
	t.Cleanup(func() { SetGlobalConfig(previous) })
}

// captureLogs routes the global logger into a buffer at the given level
func captureLogs(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := GetLogger()
	SetLogger(NewLogger(&buf, level))
	t.Cleanup(func() { SetLogger(previous) })
	return &buf
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
