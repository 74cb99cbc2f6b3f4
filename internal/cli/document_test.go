package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/qrterm/pkg/errors"
)

const sampleDoc = "# Links\n" +
	"\n" +
	"```qrcode\n" +
	"hello\n" +
	"```\n" +
	"\n" +
	"```go\n" +
	"fmt.Println(\"not a code\")\n" +
	"```\n" +
	"\n" +
	"```qrcode-ex\n" +
	"columns:\n" +
	"  - data: a\n" +
	"  - data: b\n" +
	"    caption: \"*Second*\"\n" +
	"```\n"

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDocCommand(t *testing.T) {
	newTestEnv(t)
	out, err := execute(t, nil, "doc", writeDoc(t, sampleDoc))
	if err != nil {
		t.Fatalf("doc: %v", err)
	}

	// Two blocks of divider, 15 code lines, caption, divider.
	lines := outputLines(out)
	if len(lines) != 36 {
		t.Fatalf("got %d lines, want 36", len(lines))
	}
	if got := strings.TrimSpace(lines[16]); got != "hello" {
		t.Errorf("first caption = %q, want %q", got, "hello")
	}
	second := lines[34]
	if !strings.Contains(second, "a") || !strings.Contains(second, "Second") {
		t.Errorf("second caption line = %q", second)
	}
	if strings.Contains(out, "not a code") {
		t.Error("go block was rendered")
	}
}

func TestDocCommandNoBlocks(t *testing.T) {
	newTestEnv(t)
	out, err := execute(t, nil, "doc", writeDoc(t, "# Nothing\n\n```go\nx := 1\n```\n"))
	if err != nil {
		t.Fatalf("doc: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
}

func TestDocCommandErrors(t *testing.T) {
	newTestEnv(t)

	_, err := execute(t, nil, "doc", filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	path := writeDoc(t, "intro\n\n```qrcode-ex\ncolumns: []\n```\n")
	_, err = execute(t, nil, "doc", path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("bad document error = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), path+":3:") {
		t.Errorf("error %q does not name the block position", err)
	}
}
