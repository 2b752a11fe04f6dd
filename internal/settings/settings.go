// Package settings persists the parameters of the last configure run so
// that update and header runs do not need them re-specified.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"

	"github.com/mbedtools/mbed-vscode-tools/internal/ninja"
)

// FileName of the settings file, stored in the program directory.
const FileName = ".mbed-vscode-tools.kdl"

// BuildRootName is the directory mbed-tools places CMake output under.
const BuildRootName = "cmake_build"

// CMakeConfFileName is the file mbed-tools configure leaves in the build
// directory; its presence proves configure ran.
const CMakeConfFileName = "mbed_config.cmake"

// Settings is the persisted record of one configure invocation.
type Settings struct {
	Toolchain      string `kdl:"toolchain"`
	Target         string `kdl:"target"`
	Profile        string `kdl:"profile"`
	ProgramDir     string `kdl:"program-dir"`
	PropertiesFile string `kdl:"properties-file"`
	ConfEntry      string `kdl:"conf-entry"`
}

type document struct {
	Settings Settings `kdl:"settings"`
}

// Path returns the settings file path for a program directory.
func Path(programDir string) string {
	return filepath.Join(programDir, FileName)
}

// Load reads the settings saved by a previous configure run. A missing file
// means configure was never run here.
func Load(programDir string) (*Settings, error) {
	path := Path(programDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no settings found at %s; run 'mbed-vscode-tools configure' first", path)
		}
		return nil, fmt.Errorf("cannot read settings %s: %w", path, err)
	}

	var doc document
	if err := kdl.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed settings file %s: %w", path, err)
	}

	return &doc.Settings, nil
}

// Save writes the settings block into the program directory.
func (s *Settings) Save() error {
	path := Path(s.ProgramDir)
	if err := os.WriteFile(path, []byte(s.format()), 0644); err != nil {
		return fmt.Errorf("cannot write settings %s: %w", path, err)
	}
	return nil
}

func (s *Settings) format() string {
	var b strings.Builder
	b.WriteString("settings {\n")
	writeNode(&b, "toolchain", s.Toolchain)
	writeNode(&b, "target", s.Target)
	writeNode(&b, "profile", s.Profile)
	writeNode(&b, "program-dir", s.ProgramDir)
	writeNode(&b, "properties-file", s.PropertiesFile)
	writeNode(&b, "conf-entry", s.ConfEntry)
	b.WriteString("}\n")
	return b.String()
}

func writeNode(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "    %s %q\n", name, value)
}

// BuildDir derives the CMake build directory the same way mbed-tools does:
// <program-dir>/cmake_build/<TARGET>/<profile>/<TOOLCHAIN>.
func (s *Settings) BuildDir() string {
	return filepath.Join(s.ProgramDir, BuildRootName,
		strings.ToUpper(s.Target),
		strings.ToLower(s.Profile),
		strings.ToUpper(s.Toolchain))
}

// BuildFile is the build.ninja inside BuildDir.
func (s *Settings) BuildFile() string {
	return filepath.Join(s.BuildDir(), ninja.BuildFileName)
}

// CMakeConfFile is the mbed_config.cmake inside BuildDir.
func (s *Settings) CMakeConfFile() string {
	return filepath.Join(s.BuildDir(), CMakeConfFileName)
}
