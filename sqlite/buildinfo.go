package sqlite

import (
	"context"
	"strconv"
	"time"

	"github.com/fwojciec/msdocs"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ msdocs.BuildInfoService = (*BuildInfoService)(nil)

// Meta table keys.
const (
	metaFormatVersion = "format_version"
	metaBuildID       = "build_id"
	metaBuiltAt       = "built_at"
	metaEntryCount    = "entry_count"
)

// BuildInfoService implements msdocs.BuildInfoService using SQLite.
type BuildInfoService struct {
	db *DB
}

// NewBuildInfoService creates a new BuildInfoService.
func NewBuildInfoService(db *DB) *BuildInfoService {
	return &BuildInfoService{db: db}
}

// SetBuildInfo stamps the artifact with a fresh build ID and timestamp.
func (s *BuildInfoService) SetBuildInfo(ctx context.Context, info *msdocs.BuildInfo) error {
	info.FormatVersion = msdocs.FormatVersion
	info.BuildID = uuid.New().String()
	info.BuiltAt = time.Now().UTC()

	pairs := map[string]string{
		metaFormatVersion: info.FormatVersion,
		metaBuildID:       info.BuildID,
		metaBuiltAt:       info.BuiltAt.Format(time.RFC3339),
		metaEntryCount:    strconv.Itoa(info.EntryCount),
	}

	for key, value := range pairs {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value); err != nil {
			return err
		}
	}

	return nil
}

// BuildInfo retrieves the artifact metadata.
func (s *BuildInfoService) BuildInfo(ctx context.Context) (*msdocs.BuildInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM meta")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(values) == 0 {
		return nil, msdocs.Errorf(msdocs.ENOTFOUND, "database has no build metadata")
	}

	info := &msdocs.BuildInfo{
		FormatVersion: values[metaFormatVersion],
		BuildID:       values[metaBuildID],
	}
	if v, ok := values[metaBuiltAt]; ok {
		builtAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, msdocs.Errorf(msdocs.EINTERNAL, "corrupt built_at value %q", v)
		}
		info.BuiltAt = builtAt
	}
	if v, ok := values[metaEntryCount]; ok {
		count, err := strconv.Atoi(v)
		if err != nil {
			return nil, msdocs.Errorf(msdocs.EINTERNAL, "corrupt entry_count value %q", v)
		}
		info.EntryCount = count
	}

	return info, nil
}
