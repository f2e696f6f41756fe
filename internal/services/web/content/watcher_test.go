package content

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte(minimalDoc), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	initial, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	store := NewStore(initial)

	var logs lockedBuffer
	w := NewWatcher(path, store, log.New(&logs, "", 0))
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() error = %v", err)
		}
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	updated := strings.Replace(minimalDoc, "Test Owner", "Renamed Owner", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite content: %v", err)
	}
	waitFor(t, func() bool { return store.Current().Profile.Name == "Renamed Owner" })

	if err := os.WriteFile(path, []byte("profile: {}\n"), 0o644); err != nil {
		t.Fatalf("write broken content: %v", err)
	}
	waitFor(t, func() bool { return strings.Contains(logs.String(), "content reload failed") })
	if got := store.Current().Profile.Name; got != "Renamed Owner" {
		t.Fatalf("broken document replaced live content: name = %q", got)
	}
}

func TestStoreSwapIgnoresNil(t *testing.T) {
	t.Parallel()

	site := &Site{Profile: Profile{Name: "x"}}
	store := NewStore(site)
	store.Swap(nil)
	if store.Current() != site {
		t.Fatal("nil swap replaced the live document")
	}
}
