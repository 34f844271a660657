// Package huggingface provides a notekit.Hub backed by the Hugging Face hub.
package huggingface

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/notekit"
	"github.com/gomlx/go-huggingface/hub"
)

// DefaultRevision is the branch files are resolved against.
const DefaultRevision = "main"

// CacheDirName is the hub cache kept inside each model directory.
const CacheDirName = ".hf-cache"

// Ensure Client implements notekit.Hub at compile time.
var _ notekit.Hub = (*Client)(nil)

// RepoFile identifies one file to fetch from the hub.
type RepoFile struct {
	RepoID   string
	Revision string
	Filename string
	Token    string
	CacheDir string
}

// FileFetcher downloads f into f.CacheDir and returns the cached path.
type FileFetcher func(ctx context.Context, f RepoFile) (string, error)

// HubFetcher fetches files with the go-huggingface hub client.
func HubFetcher(ctx context.Context, f RepoFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	repo := hub.New(f.RepoID).WithRevision(f.Revision).WithCacheDir(f.CacheDir)
	if f.Token != "" {
		repo = repo.WithAuth(f.Token)
	}
	return repo.DownloadFile(f.Filename)
}

// Client places repository files in a local model directory.
type Client struct {
	fetch    FileFetcher
	revision string

	mu    sync.Mutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithRevision sets the branch, tag or commit files are resolved against.
func WithRevision(revision string) Option {
	return func(c *Client) {
		c.revision = revision
	}
}

// WithFetcher replaces HubFetcher.
func WithFetcher(fetch FileFetcher) Option {
	return func(c *Client) {
		c.fetch = fetch
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		fetch:    HubFetcher,
		revision: DefaultRevision,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login stores token for subsequent downloads. The token is not validated.
func (c *Client) Login(ctx context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	return nil
}

// Download returns dir/filename, fetching it through the hub cache in
// dir/CacheDirName first if it is not already there. Filenames that would
// resolve outside dir are rejected with EINVALID. Hub errors are returned
// unchanged.
func (c *Client) Download(ctx context.Context, repoID, filename, dir string) (string, error) {
	if repoID == "" {
		return "", notekit.Errorf(notekit.EINVALID, "repository ID required")
	}
	path, err := notekit.LocalPath(dir, filename)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	cached, err := c.fetch(ctx, RepoFile{
		RepoID:   repoID,
		Revision: c.revision,
		Filename: filename,
		Token:    c.currentToken(),
		CacheDir: filepath.Join(dir, CacheDirName),
	})
	if err != nil {
		return "", err
	}

	if err := place(cached, path); err != nil {
		return "", err
	}
	return path, nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// place exposes the cached file at path. Cache entries may be symlinks into
// a blob store, so the link target is hard linked, or copied when the file
// system refuses links.
func place(cached, path string) error {
	src, err := filepath.EvalSymlinks(cached)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.Link(src, path); err == nil {
		return nil
	}
	return copyFile(src, path)
}

// copyFile writes through path+".incomplete" and renames on success.
func copyFile(src, path string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := path + ".incomplete"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
