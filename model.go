package notekit

import (
	"context"
	"path/filepath"
)

// Model is a handle to a loaded local model file.
type Model struct {
	RepoID   string
	Filename string
	Path     string

	// Header fields of the model file.
	Version      uint32
	TensorCount  uint64
	Architecture string
	Name         string

	// ContextLength is the inference context window in tokens.
	ContextLength int

	// TrainedContextLength is the context length declared by the file, or 0.
	TrainedContextLength int

	Metadata map[string]any
}

// ModelRequest describes a model to provision and load.
type ModelRequest struct {
	RepoID   string
	Filename string

	// Dir is the local cache directory. The file is cached at Dir/Filename.
	Dir string

	Verbose bool

	// ContextLength is the requested context window. Zero uses the model default.
	ContextLength int
}

// Hub downloads files from a model hub.
type Hub interface {
	// Login stores the credential used by subsequent downloads.
	Login(ctx context.Context, token string) error

	// Download ensures repoID/filename is present in dir and returns its local path.
	Download(ctx context.Context, repoID, filename, dir string) (string, error)
}

// ModelLoader resolves a model request to a loaded model handle,
// downloading the file from the hub when it is not cached.
type ModelLoader interface {
	LoadModel(ctx context.Context, req ModelRequest) (*Model, error)
}

// LocalPath joins dir and the slash-separated filename. Empty or absolute
// filenames and filenames with ".." segments that leave dir are rejected
// with EINVALID.
func LocalPath(dir, filename string) (string, error) {
	if filename == "" {
		return "", Errorf(EINVALID, "filename required")
	}
	name := filepath.FromSlash(filename)
	if !filepath.IsLocal(name) {
		return "", Errorf(EINVALID, "path traversal: filename %q leaves the model directory", filename)
	}
	return filepath.Join(dir, name), nil
}
