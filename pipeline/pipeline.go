// Package pipeline sequences fetching, text extraction, tokenization and
// summarization of web pages.
//
// Every stage takes a record and returns a new one with its State advanced.
// The input record is never modified.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notekit"
)

// Pipeline scrapes and tokenizes content records.
type Pipeline struct {
	Fetcher          notekit.Fetcher
	Extractor        notekit.TextExtractor
	DefaultTokenizer notekit.TokenCounter
	Logger           *slog.Logger
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// Scrape fetches the record's page once and extracts its text according to
// the record's kind. Blog pages are then tokenized with the default tokenizer.
//
// A non-200 response returns the unchanged record with a *notekit.FetchError.
// Kinds without an extraction strategy, and blog pages without any text,
// return a scraped record whose text is unset; tokenizing it fails later
// with EINVALIDSTATE.
func (p *Pipeline) Scrape(ctx context.Context, c *notekit.Content) (*notekit.Content, error) {
	if err := c.Validate(); err != nil {
		return c, err
	}

	html, err := p.Fetcher.Fetch(ctx, c.SourceURL)
	if err != nil {
		return c, err
	}

	out := c.Clone()
	out.State = notekit.StateScraped
	out.Text, out.HasText = "", false
	out.TokenCount, out.Tokenizer = 0, nil
	out.FetchedAt = time.Now().UTC()

	if c.Kind != notekit.KindBlog {
		p.logger().Debug("no extraction strategy", "url", c.SourceURL, "kind", c.Kind)
		return out, nil
	}

	text, err := p.Extractor.ExtractText(html)
	if err != nil {
		return c, err
	}
	if text == "" {
		p.logger().Debug("page has no text", "url", c.SourceURL)
		return out, nil
	}
	out.Text, out.HasText = text, true

	return p.Tokenize(ctx, out, notekit.DefaultTokenizer{})
}

// Tokenize counts the record's tokens with the chosen tokenizer.
// A custom tokenizer is stored on the returned record; the default one is not.
//
// Returns EINVALID when no usable tokenizer is chosen and EINVALIDSTATE when
// the record has no extracted text.
func (p *Pipeline) Tokenize(ctx context.Context, c *notekit.Content, choice notekit.TokenizerChoice) (*notekit.Content, error) {
	var tok notekit.TokenCounter
	var custom bool
	switch ch := choice.(type) {
	case notekit.DefaultTokenizer:
		tok = p.DefaultTokenizer
		if tok == nil {
			return c, notekit.Errorf(notekit.EINVALID, "default tokenizer not configured")
		}
	case notekit.CustomTokenizer:
		if ch.Tokenizer == nil {
			return c, notekit.Errorf(notekit.EINVALID, "tokenizer cannot be nil when not using the default")
		}
		tok, custom = ch.Tokenizer, true
	default:
		return c, notekit.Errorf(notekit.EINVALID, "tokenizer choice required")
	}

	if !c.HasText {
		return c, notekit.Errorf(notekit.EINVALIDSTATE, "content %s has no extracted text", c.SourceURL)
	}

	n, err := tok.CountTokens(ctx, c.Text)
	if err != nil {
		return c, err
	}

	out := c.Clone()
	out.TokenCount = n
	if custom {
		out.Tokenizer = tok
	} else {
		out.Tokenizer = nil
	}
	if out.State < notekit.StateTokenized {
		out.State = notekit.StateTokenized
	}
	return out, nil
}

// AttachSummary overwrites the record's summary. The token count is not
// checked against the summary text.
func AttachSummary(c *notekit.Content, s notekit.Summary) *notekit.Content {
	out := c.Clone()
	out.Summary = s
	out.State = notekit.StateSummarized
	return out
}

// Summarize writes a summary of the record's text with summarizer and
// attaches it. The summary's tokens are counted with tokenizer, or with the
// default tokenizer when tokenizer is nil.
func (p *Pipeline) Summarize(ctx context.Context, c *notekit.Content, summarizer notekit.Summarizer, tokenizer notekit.TokenCounter) (*notekit.Content, error) {
	if summarizer == nil {
		return c, notekit.Errorf(notekit.EINVALID, "summarizer required")
	}
	if !c.HasText {
		return c, notekit.Errorf(notekit.EINVALIDSTATE, "content %s has no extracted text", c.SourceURL)
	}
	if tokenizer == nil {
		tokenizer = p.DefaultTokenizer
	}
	if tokenizer == nil {
		return c, notekit.Errorf(notekit.EINVALID, "default tokenizer not configured")
	}

	text, err := summarizer.Summarize(ctx, c.Text)
	if err != nil {
		return c, err
	}

	n, err := tokenizer.CountTokens(ctx, text)
	if err != nil {
		return c, err
	}

	return AttachSummary(c, notekit.Summary{
		Model:      summarizer.Model(),
		Text:       text,
		Tokenizer:  tokenizer,
		TokenCount: n,
	}), nil
}
