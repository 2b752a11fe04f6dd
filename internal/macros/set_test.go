package macros

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbedtools/mbed-vscode-tools/internal/logging"
)

func TestAddSplitsOnFirstEquals(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Macro
	}{
		{"bare name", "MBED_TICKLESS", Macro{Name: "MBED_TICKLESS"}},
		{"name and value", "DEVICE_USTICKER=1", Macro{Name: "DEVICE_USTICKER", Value: "1", HasValue: true}},
		{"value containing equals", "FOO=a=b", Macro{Name: "FOO", Value: "a=b", HasValue: true}},
		{"empty value", "FOO=", Macro{Name: "FOO", Value: "", HasValue: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewSet(logging.Nop())
			set.Add(tt.raw)
			require.Equal(t, 1, set.Len())
			assert.Equal(t, tt.expected, set.InOrder()[0])
		})
	}
}

func TestOverrideKeepsPositionAndWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	set := NewSet(logging.New(&buf, slog.LevelWarn, "text"))

	set.AddAll([]string{"FOO=1", "BAR"})
	set.Add("FOO=2")

	assert.Equal(t, []string{"FOO=2", "BAR"}, Strings(set.InOrder()))
	assert.Equal(t, 1, strings.Count(buf.String(), "macro overridden"))
	assert.Contains(t, buf.String(), "FOO=1")
	assert.Contains(t, buf.String(), "FOO=2")
}

func TestSameValueIsNotAnOverride(t *testing.T) {
	var buf bytes.Buffer
	set := NewSet(logging.New(&buf, slog.LevelWarn, "text"))

	set.Add("FOO=1")
	set.Add("FOO=1")
	set.Add("BARE")
	set.Add("BARE")

	assert.Equal(t, 2, set.Len())
	assert.Empty(t, buf.String())
}

func TestBareVersusEmptyValueIsAnOverride(t *testing.T) {
	var buf bytes.Buffer
	set := NewSet(logging.New(&buf, slog.LevelWarn, "text"))

	set.Add("FOO")
	set.Add("FOO=")

	assert.Equal(t, []string{"FOO="}, Strings(set.InOrder()))
	assert.Equal(t, 1, strings.Count(buf.String(), "macro overridden"))
}

func TestInOrderVersusSorted(t *testing.T) {
	set := NewSet(logging.Nop())
	set.AddAll([]string{"ZULU", "ALPHA=1", "MIKE"})

	assert.Equal(t, []string{"ZULU", "ALPHA=1", "MIKE"}, Strings(set.InOrder()))
	assert.Equal(t, []string{"ALPHA=1", "MIKE", "ZULU"}, Strings(set.Sorted()))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.txt")
	content := "FOO=1\n\n  BAR  \n\nBAZ=hello world\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	raws, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"FOO=1", "BAR", "BAZ=hello world"}, raws)
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
