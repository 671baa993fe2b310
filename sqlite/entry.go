package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/msdocs"
)

// Compile-time interface verification.
var (
	_ msdocs.EntryStore  = (*EntryService)(nil)
	_ msdocs.EntryWriter = (*EntryService)(nil)
)

// EntryService implements msdocs.EntryStore and msdocs.EntryWriter using
// SQLite. Descriptions are stored compressed; reads verify the stored hash
// so a corrupt artifact surfaces as EINTERNAL instead of garbage output.
// Used directly it is the lazy store: every lookup is a disk read.
type EntryService struct {
	db    *DB
	codec msdocs.Codec
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB, codec msdocs.Codec) *EntryService {
	return &EntryService{db: db, codec: codec}
}

// hashDescription computes xxHash of the uncompressed description and
// returns a hex string.
func hashDescription(description string) string {
	h := xxhash.Sum64String(description)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateEntry writes an entry. An existing entry with the same name is
// replaced: the SDK and WDK docsets overlap and the last parsed page wins.
func (s *EntryService) CreateEntry(ctx context.Context, entry *msdocs.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	compressed, err := s.codec.Compress([]byte(entry.Description))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO entries (name, description, description_hash, raw_size)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			description_hash = excluded.description_hash,
			raw_size = excluded.raw_size
	`, entry.Name, compressed, hashDescription(entry.Description), len(entry.Description))

	return err
}

// FindEntryByName retrieves the entry for an exact, case-sensitive name.
func (s *EntryService) FindEntryByName(ctx context.Context, name string) (*msdocs.Entry, error) {
	var compressed []byte
	var hash string

	err := s.db.QueryRowContext(ctx, `
		SELECT description, description_hash
		FROM entries
		WHERE name = ?
	`, name).Scan(&compressed, &hash)

	if err == sql.ErrNoRows {
		return nil, msdocs.Errorf(msdocs.ENOTFOUND, "entry %q not found", name)
	}
	if err != nil {
		return nil, err
	}

	return s.decodeEntry(name, compressed, hash)
}

// FindEntries retrieves entries matching the filter, ordered by name.
func (s *EntryService) FindEntries(ctx context.Context, filter msdocs.EntryFilter) ([]*msdocs.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT name, description, description_hash FROM entries WHERE 1=1")

	if filter.Prefix != nil {
		query.WriteString(` AND name LIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(*filter.Prefix)+"%")
	}

	query.WriteString(" ORDER BY name ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*msdocs.Entry
	for rows.Next() {
		var name, hash string
		var compressed []byte

		if err := rows.Scan(&name, &compressed, &hash); err != nil {
			return nil, err
		}

		entry, err := s.decodeEntry(name, compressed, hash)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Names returns every entry name in lexicographic order.
func (s *EntryService) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM entries ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Count returns the number of entries.
func (s *EntryService) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

// decodeEntry decompresses a stored description and verifies its hash.
func (s *EntryService) decodeEntry(name string, compressed []byte, hash string) (*msdocs.Entry, error) {
	description, err := s.codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	if hashDescription(string(description)) != hash {
		return nil, msdocs.Errorf(msdocs.EINTERNAL, "corrupt entry %q: hash mismatch", name)
	}

	return &msdocs.Entry{
		Name:        name,
		Description: string(description),
	}, nil
}

// escapeLike escapes LIKE metacharacters; API names routinely contain
// underscores.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
