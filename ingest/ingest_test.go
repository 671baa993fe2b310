package ingest_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/ingest"
	"github.com/fwojciec/msdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocset creates a docset directory under root populated with the given
// files, keyed by relative path.
func writeDocset(t *testing.T, root, docset string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, docset, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// nameParser extracts the entry name from the first line of the page.
func nameParser() *mock.Parser {
	return &mock.Parser{
		ParseFn: func(path string, data []byte) (*msdocs.Entry, error) {
			name, body, ok := strings.Cut(string(data), "\n")
			if !ok || name == "" {
				return nil, msdocs.Errorf(msdocs.EINVALID, "page %q has no name", path)
			}
			return &msdocs.Entry{Name: name, Description: body}, nil
		},
	}
}

// recordingWriter collects written entries, last write wins.
type recordingWriter struct {
	mu      sync.Mutex
	entries map[string]string
}

func newRecordingWriter() *recordingWriter {
	return &recordingWriter{entries: make(map[string]string)}
}

func (w *recordingWriter) writer() *mock.EntryWriter {
	return &mock.EntryWriter{
		CreateEntryFn: func(ctx context.Context, entry *msdocs.Entry) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			w.entries[entry.Name] = entry.Description
			return nil
		},
	}
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("parses pages and writes entries", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeDocset(t, root, "sdk", map[string]string{
			"fileapi/nf-fileapi-createfilew.md": "CreateFileW\nCreates or opens a file.",
			"heapapi/nf-heapapi-heapalloc.md":   "HeapAlloc\nAllocates a block of memory.",
		})

		writer := newRecordingWriter()
		b := &ingest.Builder{Parser: nameParser(), Entries: writer.writer(), Concurrency: 2}

		result, err := b.Build(context.Background(), root, []string{"sdk"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Parsed)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, "Creates or opens a file.", writer.entries["CreateFileW"])
		assert.Equal(t, "Allocates a block of memory.", writer.entries["HeapAlloc"])
	})

	t.Run("skips underscore-prefixed and non-markdown files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeDocset(t, root, "sdk", map[string]string{
			"fileapi/nf-fileapi-createfilew.md": "CreateFileW\nCreates or opens a file.",
			"fileapi/_index.md":                 "Index\nnot a page",
			"fileapi/notes.txt":                 "Notes\nnot a page",
		})

		writer := newRecordingWriter()
		b := &ingest.Builder{Parser: nameParser(), Entries: writer.writer()}

		result, err := b.Build(context.Background(), root, []string{"sdk"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Parsed)
		assert.NotContains(t, writer.entries, "Index")
		assert.NotContains(t, writer.entries, "Notes")
	})

	t.Run("counts malformed pages as skipped", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeDocset(t, root, "sdk", map[string]string{
			"good.md": "HeapFree\nFrees a block of memory.",
			"bad.md":  "",
		})

		var skipped []string
		writer := newRecordingWriter()
		b := &ingest.Builder{Parser: nameParser(), Entries: writer.writer()}

		result, err := b.Build(context.Background(), root, []string{"sdk"}, func(ev ingest.ProgressEvent) {
			if ev.Type == ingest.ProgressSkipped {
				skipped = append(skipped, ev.Path)
			}
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Parsed)
		assert.Equal(t, 1, result.Skipped)
		require.Len(t, skipped, 1)
		assert.Contains(t, skipped[0], "bad.md")
	})

	t.Run("later docsets win on duplicate names", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeDocset(t, root, "sdk", map[string]string{
			"heapapi.md": "HeapAlloc\nuser-mode description",
		})
		writeDocset(t, root, "wdk", map[string]string{
			"ntifs.md": "HeapAlloc\nkernel-mode description",
		})

		writer := newRecordingWriter()
		b := &ingest.Builder{Parser: nameParser(), Entries: writer.writer()}

		result, err := b.Build(context.Background(), root, []string{"sdk", "wdk"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Parsed)
		assert.Equal(t, "kernel-mode description", writer.entries["HeapAlloc"])
	})

	t.Run("reports missing docsets and continues", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeDocset(t, root, "wdk", map[string]string{
			"ntifs.md": "ZwCreateFile\nCreates a file from kernel mode.",
		})

		var missing []string
		writer := newRecordingWriter()
		b := &ingest.Builder{Parser: nameParser(), Entries: writer.writer()}

		result, err := b.Build(context.Background(), root, []string{"sdk", "wdk"}, func(ev ingest.ProgressEvent) {
			if ev.Type == ingest.ProgressDocsetMissing {
				missing = append(missing, ev.Path)
			}
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Parsed)
		require.Len(t, missing, 1)
		assert.Contains(t, missing[0], "sdk")
	})

	t.Run("fails when nothing was parsed", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writer := newRecordingWriter()
		b := &ingest.Builder{Parser: nameParser(), Entries: writer.writer()}

		_, err := b.Build(context.Background(), root, []string{"sdk"}, nil)
		require.Error(t, err)
		assert.Equal(t, msdocs.EINVALID, msdocs.ErrorCode(err))
	})

	t.Run("aborts on storage failure", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeDocset(t, root, "sdk", map[string]string{
			"heapapi.md": "HeapAlloc\nAllocates a block of memory.",
		})

		b := &ingest.Builder{
			Parser: nameParser(),
			Entries: &mock.EntryWriter{
				CreateEntryFn: func(ctx context.Context, entry *msdocs.Entry) error {
					return msdocs.Errorf(msdocs.EINTERNAL, "disk full")
				},
			},
		}

		_, err := b.Build(context.Background(), root, []string{"sdk"}, nil)
		require.Error(t, err)
		assert.Equal(t, msdocs.EINTERNAL, msdocs.ErrorCode(err))
	})

	t.Run("storage failure does not strand worker goroutines", func(t *testing.T) {
		root := t.TempDir()
		files := make(map[string]string, 200)
		for i := 0; i < 200; i++ {
			files[fmt.Sprintf("page-%03d.md", i)] = fmt.Sprintf("Function%03d\nbody", i)
		}
		writeDocset(t, root, "sdk", files)

		b := &ingest.Builder{
			Parser: nameParser(),
			Entries: &mock.EntryWriter{
				CreateEntryFn: func(ctx context.Context, entry *msdocs.Entry) error {
					return msdocs.Errorf(msdocs.EINTERNAL, "disk full")
				},
			},
			Concurrency: 4,
		}

		before := runtime.NumGoroutine()
		_, err := b.Build(context.Background(), root, []string{"sdk"}, nil)
		require.Error(t, err)

		assert.Eventually(t, func() bool {
			return runtime.NumGoroutine() <= before
		}, 2*time.Second, 10*time.Millisecond, "worker goroutines still running after Build returned")
	})

	t.Run("invalid entries from storage count as skipped", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeDocset(t, root, "sdk", map[string]string{
			"good.md": "HeapAlloc\nAllocates a block of memory.",
			"odd.md":  "+\noperator page",
		})

		b := &ingest.Builder{
			Parser: nameParser(),
			Entries: &mock.EntryWriter{
				CreateEntryFn: func(ctx context.Context, entry *msdocs.Entry) error {
					return entry.Validate()
				},
			},
		}

		result, err := b.Build(context.Background(), root, []string{"sdk"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Parsed)
		assert.Equal(t, 1, result.Skipped)
	})
}
