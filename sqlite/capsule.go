package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/mako"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mako.CapsuleIndex = (*CapsuleIndex)(nil)

// CapsuleIndex implements mako.CapsuleIndex using SQLite.
type CapsuleIndex struct {
	db *DB
}

// NewCapsuleIndex creates a new CapsuleIndex.
func NewCapsuleIndex(db *DB) *CapsuleIndex {
	return &CapsuleIndex{db: db}
}

// UpsertCapsule inserts or replaces the record for its URL. New records
// get a generated ID; the ID of an existing record for the same URL is
// preserved.
func (s *CapsuleIndex) UpsertCapsule(ctx context.Context, rec *mako.CapsuleRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if existing, err := s.FindCapsuleByURL(ctx, rec.URL); err == nil {
		rec.ID = existing.ID
	} else if mako.ErrorCode(err) != mako.ENOTFOUND {
		return err
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.GeneratedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO capsules (id, url, type, entity, tokens, language, updated, content_hash, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			type = excluded.type,
			entity = excluded.entity,
			tokens = excluded.tokens,
			language = excluded.language,
			updated = excluded.updated,
			content_hash = excluded.content_hash,
			generated_at = excluded.generated_at
	`, rec.ID, rec.URL, string(rec.Type), rec.Entity, rec.Tokens, rec.Language,
		rec.Updated.UTC().Format(time.RFC3339), rec.ContentHash,
		rec.GeneratedAt.Format(time.RFC3339))

	return err
}

// FindCapsuleByURL retrieves a record by canonical URL.
func (s *CapsuleIndex) FindCapsuleByURL(ctx context.Context, url string) (*mako.CapsuleRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, type, entity, tokens, language, updated, content_hash, generated_at
		FROM capsules
		WHERE url = ?
	`, url)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, mako.Errorf(mako.ENOTFOUND, "capsule not found")
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// FindCapsules retrieves records matching the filter, ordered by URL.
func (s *CapsuleIndex) FindCapsules(ctx context.Context, filter mako.CapsuleFilter) ([]*mako.CapsuleRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, type, entity, tokens, language, updated, content_hash, generated_at FROM capsules WHERE 1=1")

	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Type))
	}
	if filter.Language != nil {
		query.WriteString(" AND language = ?")
		args = append(args, *filter.Language)
	}

	query.WriteString(" ORDER BY url ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*mako.CapsuleRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteCapsule removes the record for a URL.
func (s *CapsuleIndex) DeleteCapsule(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM capsules WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return mako.Errorf(mako.ENOTFOUND, "capsule not found")
	}

	return nil
}

// scanRecord scans one capsule row using the provided Scan function.
func scanRecord(scan func(dest ...any) error) (*mako.CapsuleRecord, error) {
	var rec mako.CapsuleRecord
	var typ, updated, generatedAt string

	if err := scan(&rec.ID, &rec.URL, &typ, &rec.Entity, &rec.Tokens,
		&rec.Language, &updated, &rec.ContentHash, &generatedAt); err != nil {
		return nil, err
	}

	rec.Type = mako.Type(typ)

	var err error
	rec.Updated, err = time.Parse(time.RFC3339, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated: %w", err)
	}
	rec.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated_at: %w", err)
	}

	return &rec, nil
}
