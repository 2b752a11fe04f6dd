package cmake

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator writes a shell script standing in for cmake.
func stubGenerator(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-cmake")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestGenerateSuccess(t *testing.T) {
	r := &Runner{Bin: stubGenerator(t, "exit 0\n")}

	err := r.Generate(context.Background(), "/src", "/build")
	assert.NoError(t, err)
}

func TestGenerateSurfacesStderr(t *testing.T) {
	r := &Runner{Bin: stubGenerator(t, "echo 'CMake Error: no CMakeLists.txt' >&2\nexit 1\n")}

	err := r.Generate(context.Background(), "/src", "/build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CMake Error: no CMakeLists.txt")
}

func TestGenerateMissingBinary(t *testing.T) {
	r := &Runner{Bin: filepath.Join(t.TempDir(), "does-not-exist")}

	err := r.Generate(context.Background(), "/src", "/build")
	assert.Error(t, err)
}

func TestNewRunnerUsesDefaultBin(t *testing.T) {
	assert.Equal(t, DefaultBin, NewRunner().Bin)
}
