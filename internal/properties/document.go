// Package properties loads, patches and rewrites VS Code's
// c_cpp_properties.json. The file is externally owned: it is created by the
// editor and partly authored by the user, so everything except the two
// fields this tool manages must round-trip untouched. The document is held
// as an ordered-key tree so unknown fields, nesting and key order survive.
package properties

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// FileName is the conventional name under .vscode/.
const FileName = "c_cpp_properties.json"

// DefaultEntry is the configuration entry this tool manages unless told
// otherwise.
const DefaultEntry = "Mbed"

// DefaultIndent is the serialization width used when the caller does not
// specify one.
const DefaultIndent = 4

const (
	configurationsKey = "configurations"
	nameKey           = "name"
	includePathKey    = "includePath"
	definesKey        = "defines"
)

// Precondition violations on the named entry. Both abort an update before
// anything is written; the tool never guesses between duplicates and never
// silently creates an entry.
var (
	ErrEntryNotFound  = errors.New("configuration entry not found")
	ErrDuplicateEntry = errors.New("duplicate configuration entry")
)

// Document is one deserialized c_cpp_properties.json bound to its path.
type Document struct {
	path string
	root *orderedmap.OrderedMap
}

// Load reads and deserializes the document at path. The file must already
// exist; VS Code creates it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s does not exist; create it in VS Code first", path)
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	root := orderedmap.New()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("malformed properties file %s: %w", path, err)
	}

	return &Document{path: path, root: root}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// CheckEntry verifies the uniqueness precondition: exactly one entry named
// name must exist.
func (d *Document) CheckEntry(name string) error {
	_, _, err := d.findEntry(name)
	return err
}

// Update overwrites the matched entry's includePath and defines wholesale.
// The fields are always written as arrays, never null. Nothing else in the
// document changes, and nothing touches disk until Save.
func (d *Document) Update(name string, includePaths, defines []string) error {
	idx, entries, err := d.findEntry(name)
	if err != nil {
		return err
	}

	if includePaths == nil {
		includePaths = []string{}
	}
	if defines == nil {
		defines = []string{}
	}

	entry := entries[idx].(orderedmap.OrderedMap)
	entry.Set(includePathKey, includePaths)
	entry.Set(definesKey, defines)
	entries[idx] = entry
	d.root.Set(configurationsKey, entries)

	return nil
}

// Save serializes the whole document with the given indent width and writes
// it in a single call.
func (d *Document) Save(indent int) error {
	if indent <= 0 {
		indent = DefaultIndent
	}

	data, err := json.MarshalIndent(d.root, "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("cannot serialize %s: %w", d.path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", d.path, err)
	}
	return nil
}

// findEntry scans the configurations array counting entries whose name
// matches, and returns the index of the match.
func (d *Document) findEntry(name string) (int, []interface{}, error) {
	raw, ok := d.root.Get(configurationsKey)
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q in %s (no %q array)", ErrEntryNotFound, name, d.path, configurationsKey)
	}
	entries, ok := raw.([]interface{})
	if !ok {
		return 0, nil, fmt.Errorf("malformed properties file %s: %q is not an array", d.path, configurationsKey)
	}

	idx := -1
	count := 0
	for i, el := range entries {
		entry, ok := el.(orderedmap.OrderedMap)
		if !ok {
			continue
		}
		if v, ok := entry.Get(nameKey); ok {
			if s, ok := v.(string); ok && s == name {
				idx = i
				count++
			}
		}
	}

	switch {
	case count == 0:
		return 0, nil, fmt.Errorf("%w: %q in %s", ErrEntryNotFound, name, d.path)
	case count > 1:
		return 0, nil, fmt.Errorf("%w: %q appears %d times in %s", ErrDuplicateEntry, name, count, d.path)
	}

	return idx, entries, nil
}
