package macros

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// IncludeGuard derives an include guard from a header filename: every
// non-alphanumeric rune becomes an underscore, everything is uppercased.
// "mbed_config.h" -> "MBED_CONFIG_H".
func IncludeGuard(fileName string) string {
	var b strings.Builder
	for _, r := range fileName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Render produces the generated header content for the given macros. The
// caller chooses the ordering; the header sink passes Set.Sorted().
func Render(fileName string, ms []Macro) string {
	guard := IncludeGuard(fileName)

	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n\n", fileName)
	b.WriteString("// Automatically generated configuration file.\n")
	b.WriteString("// Do not edit. Content may be overwritten.\n\n")
	fmt.Fprintf(&b, "#ifndef %s\n", guard)
	fmt.Fprintf(&b, "#define %s\n\n", guard)

	for _, m := range ms {
		if m.HasValue {
			fmt.Fprintf(&b, "#define %s %s\n", m.Name, m.Value)
		} else {
			fmt.Fprintf(&b, "#define %s\n", m.Name)
		}
	}

	fmt.Fprintf(&b, "\n#endif // %s\n", guard)
	return b.String()
}

// WriteHeader renders the sorted macros of set into a header at path.
func WriteHeader(path string, set *Set) error {
	content := Render(filepath.Base(path), set.Sorted())
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("cannot write header %s: %w", path, err)
	}
	return nil
}
