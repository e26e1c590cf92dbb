package server

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wahhaj007/portfolio/internal/page"
	"github.com/wahhaj007/portfolio/internal/profile"
)

type pageSink struct {
	mu    sync.Mutex
	pages []*page.Page
}

func (s *pageSink) apply(pg *page.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages = append(s.pages, pg)
}

func (s *pageSink) last() *page.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[len(s.pages)-1]
}

func startReloader(t *testing.T, path string, sink *pageSink, logger *zap.Logger) {
	t.Helper()
	build := func() (*page.Page, error) {
		p, err := profile.Load(path)
		if err != nil {
			return nil, err
		}
		return page.New(p, page.Options{})
	}

	r := NewReloader(path, build, sink.apply, logger)
	r.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
}

func TestReloader_AppliesNewProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Before\nemail: a@example.com\n"), 0o644))

	sink := &pageSink{}
	startReloader(t, path, sink, zap.NewNop())

	// Rewrite until the watcher has been registered and picked up a change.
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("name: After\nemail: a@example.com\n"), 0o644)
		pg := sink.last()
		return pg != nil && pg.View(page.DefaultTheme).Name == "After"
	}, 5*time.Second, 100*time.Millisecond)
}

func TestReloader_KeepsPageOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Before\nemail: a@example.com\n"), 0o644))

	core, logs := observer.New(zap.InfoLevel)
	sink := &pageSink{}
	startReloader(t, path, sink, zap.New(core))

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("name: [broken\n"), 0o644)
		return logs.FilterMessage("Profile reload failed, keeping previous page").Len() > 0
	}, 5*time.Second, 100*time.Millisecond)
	assert.Nil(t, sink.last())
}

func TestReloader_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: A\nemail: a@example.com\n"), 0o644))

	core, logs := observer.New(zap.InfoLevel)
	sink := &pageSink{}
	startReloader(t, path, sink, zap.New(core))

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Watching profile").Len() > 0
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Nil(t, sink.last())
}
