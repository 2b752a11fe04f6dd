// Package ninja scrapes compiler include paths and preprocessor defines out
// of a CMake-generated build.ninja file.
//
// The format is undocumented but stable in practice: the ninja generator
// concatenates all defines of a target onto a single "DEFINES = " line and
// all include flags onto a single "INCLUDES = " line inside the build rule.
// Only the first occurrence of each line is consulted.
package ninja

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BuildFileName is the file the native generator emits into the build dir.
const BuildFileName = "build.ninja"

// Line prefixes recognized after stripping rule indentation.
const (
	definesPrefix  = "DEFINES = "
	includesPrefix = "INCLUDES = "
)

// greenteaClientInclude is not discoverable from build.ninja; the greentea
// client headers are fetched by CMake into _deps and referenced through a
// target this scrape never sees, so the path is appended as a fixed step.
var greenteaClientInclude = filepath.Join("_deps", "greentea-client-src", "include")

// BuildArtifact holds what was scraped out of one build.ninja. Immutable
// once returned; discarded after being merged into a properties file.
type BuildArtifact struct {
	IncludePaths []string
	Defines      []string
}

// scanState tracks which of the two interesting lines were already seen.
// The scan stops at haveBoth; later DEFINES/INCLUDES lines are ignored.
type scanState int

const (
	seekingBoth scanState = iota
	haveDefines
	haveIncludes
	haveBoth
)

func (s scanState) with(other scanState) scanState {
	if s == seekingBoth {
		return other
	}
	return haveBoth
}

// Scan reads a build.ninja stream and extracts include paths and defines.
// A stream containing neither marker line yields two empty slices, not an
// error; a target without macros is valid.
func Scan(r io.Reader) (*BuildArtifact, error) {
	artifact := &BuildArtifact{
		IncludePaths: []string{},
		Defines:      []string{},
	}
	state := seekingBoth

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for state != haveBoth && scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")

		switch {
		case state != haveDefines && strings.HasPrefix(line, definesPrefix):
			artifact.Defines = splitFlags(strings.TrimPrefix(line, definesPrefix), "-D", stripNothing)
			state = state.with(haveDefines)
		case state != haveIncludes && strings.HasPrefix(line, includesPrefix):
			artifact.IncludePaths = splitFlags(strings.TrimPrefix(line, includesPrefix), "-I", stripQuotes)
			state = state.with(haveIncludes)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading build file: %w", err)
	}

	return artifact, nil
}

// ParseBuildFile opens the build.ninja at path and scrapes it, then appends
// the greentea client include directory relative to the file's directory.
func ParseBuildFile(path string) (*BuildArtifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open build file %s: %w", path, err)
	}
	defer f.Close()

	artifact, err := Scan(f)
	if err != nil {
		return nil, err
	}

	greentea := filepath.Join(filepath.Dir(path), greenteaClientInclude)
	artifact.IncludePaths = appendUnique(artifact.IncludePaths, greentea)

	return artifact, nil
}

// splitFlags breaks a single rule line into the values of one repeated flag.
// The flag marker is glued to its value with no guaranteed separator, so the
// line is split on the marker itself and each chunk trimmed. Exact
// duplicates are suppressed at insertion, keeping first-seen order.
func splitFlags(line, marker string, strip func(string) string) []string {
	values := []string{}
	seen := make(map[string]struct{})

	for _, chunk := range strings.Split(line, marker)[1:] {
		value := strip(strings.TrimSpace(chunk))
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}

	return values
}

func stripNothing(s string) string { return s }

// stripQuotes removes one surrounding double-quote pair. The generator
// quotes every include path, but only a complete pair is stripped so an
// unquoted path survives unmodified.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
