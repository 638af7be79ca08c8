package math

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// gofmt keeps at most one blank line between declarations.
func TestSourcesSingleBlankLines(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no sources found")
	}
	for _, name := range files {
		src, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
		if i := bytes.Index(src, []byte("\n\n\n")); i >= 0 {
			line := bytes.Count(src[:i], []byte("\n")) + 2
			t.Errorf("%s:%d: repeated blank line", name, line)
		}
	}
}
