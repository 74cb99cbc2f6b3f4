package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnCacheMiss(ctx, "render")
	h.OnRenderComplete(ctx, 2, 3*time.Millisecond, nil)
	h.OnCacheSet(ctx, "render", 512)
	h.OnCacheHit(ctx, "render")
	h.OnRenderComplete(ctx, 1, time.Millisecond, errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"cache miss", "rendered", "columns=2", "cache set", "bytes=512", "cache hit", "render failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnCacheHit(context.Background(), "render")
	if buf.Len() != 0 {
		t.Errorf("hooks logged at info level: %q", buf.String())
	}
}
