package notekit

import (
	"context"
	"time"
)

// ContentKind selects the text extraction strategy for a page.
type ContentKind string

// KindBlog extracts every visible text node of the page.
// It is the only kind with an extraction strategy.
const KindBlog ContentKind = "blog"

// ContentState tags how far a record has progressed through the pipeline.
type ContentState int

// ContentState constants, in pipeline order.
const (
	StateUnscraped ContentState = iota
	StateScraped
	StateTokenized
	StateSummarized
)

// String returns the state name.
func (s ContentState) String() string {
	switch s {
	case StateUnscraped:
		return "unscraped"
	case StateScraped:
		return "scraped"
	case StateTokenized:
		return "tokenized"
	case StateSummarized:
		return "summarized"
	default:
		return "unknown"
	}
}

// Summary describes a summary of a record's text.
// Its TokenCount describes the summary text, not the original.
type Summary struct {
	Model      string       `json:"model"`
	Text       string       `json:"text"`
	Tokenizer  TokenCounter `json:"-"`
	TokenCount int          `json:"tokenCount"`
}

// Content represents one scraped, tokenized document.
//
// Text is meaningful only when HasText is set. TokenCount is meaningful only
// when the record reached StateTokenized. Pipeline stages never mutate a
// record in place; they return a new one.
type Content struct {
	ID          string       `json:"id"`
	SourceURL   string       `json:"sourceUrl"`
	Kind        ContentKind  `json:"kind"`
	State       ContentState `json:"state"`
	Text        string       `json:"text"`
	HasText     bool         `json:"hasText"`
	TokenCount  int          `json:"tokenCount"`
	Tokenizer   TokenCounter `json:"-"`
	Summary     Summary      `json:"summary"`
	ContentHash string       `json:"contentHash"`
	FetchedAt   time.Time    `json:"fetchedAt"`
}

// NewContent returns an unscraped record for url.
func NewContent(url string, kind ContentKind) *Content {
	return &Content{SourceURL: url, Kind: kind, State: StateUnscraped}
}

// Clone returns a shallow copy of c.
func (c *Content) Clone() *Content {
	other := *c
	return &other
}

// Validate returns an error if the record contains invalid fields.
func (c *Content) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "content source URL required")
	}
	if c.Kind == "" {
		return Errorf(EINVALID, "content kind required")
	}
	return nil
}

// ContentService represents a service for managing stored records.
type ContentService interface {
	// CreateContent stores a new record.
	CreateContent(ctx context.Context, c *Content) error

	// FindContentByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindContentByID(ctx context.Context, id string) (*Content, error)

	// FindContents retrieves records matching the filter.
	FindContents(ctx context.Context, filter ContentFilter) ([]*Content, error)

	// DeleteContent permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteContent(ctx context.Context, id string) error
}

// ContentFilter represents a filter for FindContents.
type ContentFilter struct {
	ID        *string      `json:"id"`
	SourceURL *string      `json:"sourceUrl"`
	Kind      *ContentKind `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ContentWriter writes records to storage.
type ContentWriter interface {
	CreateContent(ctx context.Context, c *Content) error
}
