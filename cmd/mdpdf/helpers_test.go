package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-mdpdf"
)

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a canned result.
type mockConverter struct {
	mu          sync.Mutex
	calls       []mdpdf.Input
	convertFunc func(ctx context.Context, input mdpdf.Input) (*mdpdf.ConvertResult, error)
}

func (m *mockConverter) Convert(ctx context.Context, input mdpdf.Input) (*mdpdf.ConvertResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.convertFunc != nil {
		return m.convertFunc(ctx, input)
	}

	result := &mdpdf.ConvertResult{PDF: []byte("%PDF-1.3 mock"), Pages: 3}
	if input.HTML || input.HTMLOnly {
		result.HTML = []byte("<!DOCTYPE html><html></html>")
	}
	if input.HTMLOnly {
		result.PDF = nil
	}
	return result, nil
}

func (m *mockConverter) getCalls() []mdpdf.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mdpdf.Input{}, m.calls...)
}

// testPool hands out the same mock converter up to size times concurrently.
type testPool struct {
	sem    chan CLIConverter
	size   int
	mu     sync.Mutex
	closed bool
}

func newTestPool(conv CLIConverter, size int) *testPool {
	if size < 1 {
		size = 1
	}
	p := &testPool{sem: make(chan CLIConverter, size), size: size}
	for range size {
		p.sem <- conv
	}
	return p
}

func (p *testPool) Acquire() CLIConverter {
	conv, ok := <-p.sem
	if !ok {
		return nil
	}
	return conv
}

func (p *testPool) Release(c CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.sem <- c:
	default:
	}
}

func (p *testPool) Size() int {
	return p.size
}

func (p *testPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.sem)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Test Environment
// ---------------------------------------------------------------------------

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	poolSize int
}

var fixedNow = time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

// newTestEnv returns an environment with captured writers, the given
// variables, and a pool factory returning a test pool around conv.
// A nil conv uses the real converter pool.
func newTestEnv(vars map[string]string, conv CLIConverter) *testEnv {
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	te.Environment = &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			env := make([]string, 0, len(vars))
			for k, v := range vars {
				env = append(env, k+"="+v)
			}
			sort.Strings(env)
			return env
		},
		NewPool: func(size int, opts ...mdpdf.Option) (Pool, error) {
			te.poolSize = size
			if conv == nil {
				return newConverterPool(size, opts...)
			}
			return newTestPool(conv, size), nil
		},
	}
	return te
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
