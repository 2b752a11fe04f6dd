package macros

import (
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a supplementary macro file: one macro per line, NAME or
// NAME=VALUE, each line trimmed, blank lines dropped.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read macro file %s: %w", path, err)
	}

	raws := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		raws = append(raws, line)
	}

	return raws, nil
}
