// Package cmake invokes the native build-file generator. The tool never
// drives the build itself; it only needs build.ninja regenerated before
// scraping it.
package cmake

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// DefaultBin is the generator binary looked up on PATH.
const DefaultBin = "cmake"

// Runner invokes the generator. Bin is overridable for tests.
type Runner struct {
	Bin string
}

// NewRunner returns a Runner using the cmake on PATH.
func NewRunner() *Runner {
	return &Runner{Bin: DefaultBin}
}

// Generate runs `cmake -S <programDir> -B <buildDir> -GNinja` synchronously.
// On non-zero exit the captured stderr is surfaced verbatim in the error.
// No retries.
func (r *Runner) Generate(ctx context.Context, programDir, buildDir string) error {
	cmd := exec.CommandContext(ctx, r.Bin, "-S", programDir, "-B", buildDir, "-GNinja")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("build file generation failed: %w\n%s", err, stderr.String())
		}
		return fmt.Errorf("build file generation failed: %w", err)
	}

	return nil
}
