package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the documentation for an exact match", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Resolver = &mock.Resolver{
			ResolveFn: func(ctx context.Context, query string) (*msdocs.Match, error) {
				assert.Equal(t, "CreateFileW", query)
				return &msdocs.Match{
					Name:  "CreateFileW",
					Entry: &msdocs.Entry{Name: "CreateFileW", Description: "# CreateFileW\n\nCreates or opens a file."},
					Kind:  msdocs.MatchExact,
				}, nil
			},
		}

		cmd := &ShowCmd{Symbol: "CreateFileW"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Creates or opens a file.")
		assert.NotContains(t, stdout.String(), "Showing results for")
	})

	t.Run("announces fuzzy matches with the edit distance", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Resolver = &mock.Resolver{
			ResolveFn: func(ctx context.Context, query string) (*msdocs.Match, error) {
				return &msdocs.Match{
					Name:     "CreateFileW",
					Entry:    &msdocs.Entry{Name: "CreateFileW", Description: "docs"},
					Kind:     msdocs.MatchFuzzy,
					Distance: 2,
				}, nil
			},
		}

		cmd := &ShowCmd{Symbol: "CreateFileww"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Showing results for CreateFileW (edit distance 2)")
		assert.Contains(t, stdout.String(), "docs")
	})

	t.Run("reports missing documentation on stderr", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Resolver = &mock.Resolver{
			ResolveFn: func(ctx context.Context, query string) (*msdocs.Match, error) {
				return nil, msdocs.Errorf(msdocs.ENOTFOUND, "no documentation for %q", query)
			},
		}

		cmd := &ShowCmd{Symbol: "NoSuchFunction"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, msdocs.ENOTFOUND, msdocs.ErrorCode(err))
		assert.Contains(t, stderr.String(), `no documentation found for "NoSuchFunction"`)
		assert.Empty(t, stdout.String())
	})
}
