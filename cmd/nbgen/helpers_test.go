package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and fake PDF exporter
// ---------------------------------------------------------------------------

// fakePDF records calls and returns canned bytes or an error.
type fakePDF struct {
	pdf     []byte
	err     error
	calls   atomic.Int32
	closed  atomic.Bool
	timeout time.Duration
	lastDoc string
}

func (f *fakePDF) ToPDF(_ context.Context, htmlContent string) ([]byte, error) {
	f.calls.Add(1)
	f.lastDoc = htmlContent
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func (f *fakePDF) Close() error {
	f.closed.Store(true)
	return nil
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	pdf    *fakePDF
}

// newTestEnv returns an isolated environment: vars replaces the process
// environment and the clock is fixed.
func newTestEnv(vars map[string]string) *testEnv {
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		pdf:    &fakePDF{pdf: []byte("%PDF-1.7 fake")},
	}
	fixed := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	te.Environment = &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			sort.Strings(out)
			return out
		},
		NewPDF: func(timeout time.Duration) pdfExporter {
			te.pdf.timeout = timeout
			return te.pdf
		},
	}
	return te
}

const sampleRecords = `records:
  - kind: text
    unit: "1.1"
    body: a point about the topic
    source: www.some.source
  - kind: code
    unit: "1.1"
    body: "[i for i in range(10)]"
  - kind: code
    unit: "1.1"
    body: "print((1)"
  - kind: image
    unit: "1.2"
    body: some_image.png
    source: site_1
`

// writeFile writes content under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}
