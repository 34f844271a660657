// Package fs provides file-based export of scraped content.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/notekit"
)

// URLToPath converts a page URL to a relative file path under its host.
// Example: https://example.com/blog/post → example.com/blog/post.txt
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", notekit.Errorf(notekit.EINVALID, "URL %q has no host", rawURL)
	}

	p := u.Path
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", notekit.Errorf(notekit.EINVALID, "path traversal in URL %q", rawURL)
		}
	}

	// Root or trailing slash → index.txt
	switch {
	case p == "" || p == "/":
		p = "index.txt"
	case strings.HasSuffix(p, "/"):
		p = strings.TrimPrefix(p, "/") + "index.txt"
	default:
		p = strings.TrimPrefix(p, "/") + ".txt"
	}

	return path.Join(u.Host, p), nil
}

// FormatContent formats a record's text with YAML frontmatter.
// A summary, when attached, follows the text.
func FormatContent(c *notekit.Content) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(c.SourceURL)
	b.WriteString("\nkind: ")
	b.WriteString(string(c.Kind))
	b.WriteString("\ntokens: ")
	b.WriteString(strconv.Itoa(c.TokenCount))
	if c.State == notekit.StateSummarized {
		b.WriteString("\nsummary_model: ")
		b.WriteString(c.Summary.Model)
		b.WriteString("\nsummary_tokens: ")
		b.WriteString(strconv.Itoa(c.Summary.TokenCount))
	}
	b.WriteString("\nfetched: ")
	b.WriteString(c.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(c.Text)
	if c.State == notekit.StateSummarized {
		b.WriteString("\n\n## Summary\n\n")
		b.WriteString(c.Summary.Text)
	}
	return b.String()
}

// Ensure Writer implements notekit.ContentWriter at compile time.
var _ notekit.ContentWriter = (*Writer)(nil)

// Writer writes records as text files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateContent writes a record to disk. Records without text are rejected
// with EINVALIDSTATE.
func (w *Writer) CreateContent(ctx context.Context, c *notekit.Content) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.HasText {
		return notekit.Errorf(notekit.EINVALIDSTATE, "content %s has no extracted text", c.SourceURL)
	}

	relPath, err := URLToPath(c.SourceURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatContent(c)), 0644)
}
