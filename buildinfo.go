package msdocs

import (
	"context"
	"time"
)

// FormatVersion identifies the database artifact layout. Bumped when the
// schema or the description encoding changes incompatibly.
const FormatVersion = "1"

// BuildInfo describes a built database artifact.
type BuildInfo struct {
	FormatVersion string    `json:"formatVersion"`
	BuildID       string    `json:"buildId"`
	BuiltAt       time.Time `json:"builtAt"`
	EntryCount    int       `json:"entryCount"`
}

// BuildInfoService reads and writes artifact metadata.
type BuildInfoService interface {
	// BuildInfo retrieves the artifact metadata.
	// Returns ENOTFOUND if the artifact has never been stamped.
	BuildInfo(ctx context.Context) (*BuildInfo, error)

	// SetBuildInfo stamps the artifact. FormatVersion, BuildID, and BuiltAt
	// are filled in by the implementation.
	SetBuildInfo(ctx context.Context, info *BuildInfo) error
}
