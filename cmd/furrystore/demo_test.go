package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/odvcencio/furry-store/store"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchSeed_LogsStartFailure(t *testing.T) {
	var out syncBuffer
	logger := newLogger(&out, false)
	path := filepath.Join(t.TempDir(), "missing", "seed.yaml")

	watchSeed(context.Background(), path, logger, make(chan store.Record))

	got := out.String()
	if !strings.Contains(got, "level=WARN") || !strings.Contains(got, "seed watch failed") {
		t.Fatalf("expected warning for watcher that cannot start, got %q", got)
	}
}

func TestWatchSeed_LogsReloadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("number: 1\n"), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	var out syncBuffer
	logger := newLogger(&out, false)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watchSeed(ctx, path, logger, make(chan store.Record))
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for !strings.Contains(out.String(), "seed reload failed") {
		select {
		case <-tick.C:
			if err := os.WriteFile(path, []byte("number: [1\n"), 0o644); err != nil {
				t.Fatalf("rewrite seed: %v", err)
			}
		case <-deadline:
			t.Fatalf("expected warning for unparsable seed, got %q", out.String())
		}
	}
	if strings.Contains(out.String(), "seed watch failed") {
		t.Fatalf("expected watcher to keep running after a bad reload, got %q", out.String())
	}
}
