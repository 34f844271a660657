package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/notekit"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ notekit.ContentService = (*ContentService)(nil)

// ContentService implements notekit.ContentService using SQLite.
// Tokenizer handles are not persisted.
type ContentService struct {
	db *DB
}

// NewContentService creates a new ContentService.
func NewContentService(db *DB) *ContentService {
	return &ContentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateContent stores a new record, assigning its ID and content hash.
// FetchedAt is set to now when the record has none.
func (s *ContentService) CreateContent(ctx context.Context, c *notekit.Content) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	if c.FetchedAt.IsZero() {
		c.FetchedAt = time.Now().UTC()
	}
	c.ContentHash = ""
	if c.HasText {
		c.ContentHash = hashContent(c.Text)
	}

	var summaryModel, summaryText sql.NullString
	if c.State == notekit.StateSummarized {
		summaryModel = sql.NullString{String: c.Summary.Model, Valid: true}
		summaryText = sql.NullString{String: c.Summary.Text, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contents (id, source_url, kind, state, text, token_count, content_hash,
			summary_model, summary_text, summary_token_count, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.SourceURL, string(c.Kind), int(c.State), sql.NullString{String: c.Text, Valid: c.HasText},
		c.TokenCount, c.ContentHash, summaryModel, summaryText, c.Summary.TokenCount,
		c.FetchedAt.Format(time.RFC3339))

	return err
}

const selectContents = `SELECT id, source_url, kind, state, text, token_count, content_hash,
	summary_model, summary_text, summary_token_count, fetched_at FROM contents`

// FindContentByID retrieves a record by ID.
func (s *ContentService) FindContentByID(ctx context.Context, id string) (*notekit.Content, error) {
	c, err := scanContent(s.db.QueryRowContext(ctx, selectContents+" WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, notekit.Errorf(notekit.ENOTFOUND, "content not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindContents retrieves records matching the filter, most recently fetched first.
func (s *ContentService) FindContents(ctx context.Context, filter notekit.ContentFilter) ([]*notekit.Content, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectContents + " WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []*notekit.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}

	return contents, rows.Err()
}

// DeleteContent permanently removes a record.
func (s *ContentService) DeleteContent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return notekit.Errorf(notekit.ENOTFOUND, "content not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContent(row scanner) (*notekit.Content, error) {
	var c notekit.Content
	var kind, fetchedAt string
	var state int
	var text, summaryModel, summaryText sql.NullString

	if err := row.Scan(&c.ID, &c.SourceURL, &kind, &state, &text, &c.TokenCount, &c.ContentHash,
		&summaryModel, &summaryText, &c.Summary.TokenCount, &fetchedAt); err != nil {
		return nil, err
	}

	c.Kind = notekit.ContentKind(kind)
	c.State = notekit.ContentState(state)
	c.Text, c.HasText = text.String, text.Valid
	c.Summary.Model = summaryModel.String
	c.Summary.Text = summaryText.String

	var err error
	c.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &c, nil
}
