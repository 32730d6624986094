package eval

import (
	"os"
	"path/filepath"
	"testing"
)

// TestTestdataScriptsPassTheirOwnAssertions runs every .koi script under
// testdata/ end to end; each script asserts its own invariants via
// assert/assertEqual and is expected to run to completion without a
// fatal abort.
func TestTestdataScriptsPassTheirOwnAssertions(t *testing.T) {
	matches, err := filepath.Glob("../testdata/*.koi")
	if err != nil || len(matches) == 0 {
		t.Fatalf("no testdata scripts found: %v", err)
	}
	for _, path := range matches {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			run(t, string(src))
		})
	}
}
