// Package ingest walks cloned documentation trees, parses their pages
// concurrently, and writes the extracted entries to storage.
package ingest

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/msdocs"
	"golang.org/x/sync/errgroup"
)

// DefaultDocsets are the content roots of the two Microsoft documentation
// repositories, relative to the checkout directory.
var DefaultDocsets = []string{
	"sdk-api/sdk-api-src/content",
	"windows-driver-docs-ddi/wdk-ddi-src/content",
}

// ProgressType identifies the kind of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressDocsetMissing
	ProgressParsed
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports build progress.
type ProgressEvent struct {
	Type  ProgressType
	Path  string // source file or docset directory
	Name  string // extracted entry name, for ProgressParsed
	Total int    // files in the current docset, for ProgressStarted
	Error error  // parse error, for ProgressSkipped and ProgressDocsetMissing
}

// ProgressFunc is called as pages are processed. May be nil.
type ProgressFunc func(ProgressEvent)

// Result summarizes a build.
type Result struct {
	Parsed  int // entries written
	Skipped int // malformed pages
	Bytes   int // uncompressed description bytes written
}

// Builder parses docset trees and writes entries.
type Builder struct {
	Parser  msdocs.Parser
	Entries msdocs.EntryWriter

	// Concurrency limits parallel page parsing. Defaults to 8.
	Concurrency int
}

// parseResult carries one page's outcome from a worker to the collector.
type parseResult struct {
	path  string
	entry *msdocs.Entry
	err   error
}

// Build processes every docset under root. Docsets are processed in order so
// that duplicate names resolve to the later docset (last write wins). A
// missing docset directory is reported and skipped; a build that yields zero
// entries is an error.
func (b *Builder) Build(ctx context.Context, root string, docsets []string, progress ProgressFunc) (*Result, error) {
	if len(docsets) == 0 {
		docsets = DefaultDocsets
	}

	var result Result
	for _, docset := range docsets {
		dir := filepath.Join(root, docset)
		if err := b.buildDocset(ctx, dir, &result, progress); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished})
	}

	if result.Parsed == 0 {
		return nil, msdocs.Errorf(msdocs.EINVALID, "no pages were parsed under %q", root)
	}

	return &result, nil
}

// buildDocset parses one docset directory tree.
func (b *Builder) buildDocset(ctx context.Context, dir string, result *Result, progress ProgressFunc) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		// A missing docset usually means git submodules were not pulled.
		if progress != nil {
			progress(ProgressEvent{
				Type:  ProgressDocsetMissing,
				Path:  dir,
				Error: msdocs.Errorf(msdocs.ENOTFOUND, "docset directory %q not found", dir),
			})
		}
		return nil
	}

	files, err := collectPages(dir)
	if err != nil {
		return err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Path: dir, Total: len(files)})
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	// Buffered to the full work count so workers never block on send and the
	// spawner's Wait completes even when the collector below returns early.
	resultCh := make(chan parseResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, path := range files {
			g.Go(func() error {
				resultCh <- b.parsePage(path)
				return gctx.Err()
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Writes happen here, on a single goroutine; SQLite allows one writer.
	for res := range resultCh {
		if res.err != nil {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Path: res.path, Error: res.err})
			}
			continue
		}

		if err := b.Entries.CreateEntry(ctx, res.entry); err != nil {
			if msdocs.ErrorCode(err) == msdocs.EINVALID {
				result.Skipped++
				if progress != nil {
					progress(ProgressEvent{Type: ProgressSkipped, Path: res.path, Error: err})
				}
				continue
			}
			return err
		}

		result.Parsed++
		result.Bytes += len(res.entry.Description)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressParsed, Path: res.path, Name: res.entry.Name})
		}
	}

	return ctx.Err()
}

// parsePage reads and parses a single page file.
func (b *Builder) parsePage(path string) parseResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return parseResult{path: path, err: err}
	}

	entry, err := b.Parser.Parse(path, data)
	return parseResult{path: path, entry: entry, err: err}
}

// collectPages lists the markdown pages under dir. Files whose base name
// starts with '_' are templates and index pages, not API documentation.
func collectPages(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		base := d.Name()
		if strings.HasPrefix(base, "_") || !strings.HasSuffix(base, ".md") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
