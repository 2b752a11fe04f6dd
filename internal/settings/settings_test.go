package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSettings(programDir string) *Settings {
	return &Settings{
		Toolchain:      "GCC_ARM",
		Target:         "DISCO_L072CZ_LRWAN1",
		Profile:        "develop",
		ProgramDir:     programDir,
		PropertiesFile: filepath.Join(programDir, ".vscode", "c_cpp_properties.json"),
		ConfEntry:      "Mbed",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	saved := sampleSettings(dir)

	require.NoError(t, saved.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), Path(dir))
	assert.Contains(t, err.Error(), "configure")
}

func TestBuildDirDerivation(t *testing.T) {
	s := &Settings{
		Toolchain:  "gcc_arm",
		Target:     "disco_l072cz_lrwan1",
		Profile:    "DEVELOP",
		ProgramDir: "/work/app",
	}

	expected := filepath.Join("/work/app", "cmake_build", "DISCO_L072CZ_LRWAN1", "develop", "GCC_ARM")
	assert.Equal(t, expected, s.BuildDir())
	assert.Equal(t, filepath.Join(expected, "build.ninja"), s.BuildFile())
	assert.Equal(t, filepath.Join(expected, "mbed_config.cmake"), s.CMakeConfFile())
}
