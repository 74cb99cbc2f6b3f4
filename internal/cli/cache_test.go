package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/qrterm/pkg/cache"
)

func TestCachePath(t *testing.T) {
	env := newTestEnv(t)
	out, err := execute(t, nil, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if want := filepath.Join(env.cacheDir, appName) + "\n"; out != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}
}

func TestCacheClear(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, nil, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("empty cache output = %q", out)
	}

	fc, err := cache.NewFileCache(filepath.Join(env.cacheDir, appName))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"one", "two"} {
		if err := fc.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatal(err)
		}
	}

	out, err = execute(t, nil, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if !strings.Contains(out, "Cleared 2 cached entries") {
		t.Errorf("clear output = %q", out)
	}
	if _, hit, _ := fc.Get(ctx, "one"); hit {
		t.Error("entry survived cache clear")
	}
}

func TestNewServerCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, backend, err := newServerCache(ctx, true, "")
	if err != nil || backend != "disabled" {
		t.Errorf("no-cache = %v, %q, %v", c, backend, err)
	}

	c, backend, err = newServerCache(ctx, false, "")
	if err != nil {
		t.Fatalf("file cache: %v", err)
	}
	if _, ok := c.(*cache.FileCache); !ok || backend != filepath.Join(env.cacheDir, appName) {
		t.Errorf("file cache = %T, %q", c, backend)
	}

	if _, _, err := newServerCache(ctx, false, "not a url"); err == nil {
		t.Error("bad redis URL should fail")
	}
}
