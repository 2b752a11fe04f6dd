package properties

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// WriteStarter writes a boilerplate properties file containing a single
// entry named entry with empty includePath/defines. It refuses to touch an
// existing file; the document is user territory once it exists.
func WriteStarter(path, entry string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists; refusing to overwrite", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}

	cfg := orderedmap.New()
	cfg.Set(nameKey, entry)
	cfg.Set(includePathKey, []string{})
	cfg.Set(definesKey, []string{})
	cfg.Set("cStandard", "c17")
	cfg.Set("cppStandard", "c++17")

	root := orderedmap.New()
	root.Set(configurationsKey, []interface{}{cfg})
	root.Set("version", 4)

	data, err := json.MarshalIndent(root, "", strings.Repeat(" ", DefaultIndent))
	if err != nil {
		return fmt.Errorf("cannot serialize starter document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
