// Package gguf opens GGUF model files and exposes them as notekit.Model
// handles. Only the header and metadata are read; tensor data is left on disk.
package gguf

import (
	"log/slog"
	"os"

	"github.com/fwojciec/notekit"
	parser "github.com/gpustack/gguf-parser-go"
)

// DefaultContextLength is used when neither the request nor the file sets one.
const DefaultContextLength = 512

// Options configures Open.
type Options struct {
	RepoID        string
	Filename      string
	ContextLength int
	Verbose       bool
	Logger        *slog.Logger
}

// Open parses the header and metadata of the GGUF file at path and picks the
// context length: the requested one, else the trained one, else
// DefaultContextLength. A missing file returns the os error unchanged; a file
// that does not parse returns EINVALID.
func Open(path string, opts Options) (*notekit.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	f, err := parser.ParseGGUFFile(path)
	if err != nil {
		return nil, notekit.Errorf(notekit.EINVALID, "invalid GGUF file %s: %v", path, err)
	}

	m := &notekit.Model{
		RepoID:      opts.RepoID,
		Filename:    opts.Filename,
		Path:        path,
		Version:     uint32(f.Header.Version),
		TensorCount: f.Header.TensorCount,
		Metadata:    make(map[string]any, len(f.Header.MetadataKV)),
	}
	for _, kv := range f.Header.MetadataKV {
		m.Metadata[kv.Key] = metadataValue(kv.Value)
	}

	m.Architecture, _ = m.Metadata["general.architecture"].(string)
	m.Name, _ = m.Metadata["general.name"].(string)
	if m.Architecture != "" {
		m.TrainedContextLength = toInt(m.Metadata[m.Architecture+".context_length"])
	}

	switch {
	case opts.ContextLength > 0:
		m.ContextLength = opts.ContextLength
	case m.TrainedContextLength > 0:
		m.ContextLength = m.TrainedContextLength
	default:
		m.ContextLength = DefaultContextLength
	}

	if opts.Verbose && opts.Logger != nil {
		opts.Logger.Info("model loaded",
			"path", m.Path,
			"version", m.Version,
			"architecture", m.Architecture,
			"name", m.Name,
			"tensors", m.TensorCount,
			"metadata", len(m.Metadata),
			"n_ctx", m.ContextLength,
			"n_ctx_train", m.TrainedContextLength,
		)
	}

	return m, nil
}

// metadataValue flattens array values to []any; scalars are kept as parsed.
func metadataValue(v any) any {
	if arr, ok := v.(parser.GGUFMetadataKVArrayValue); ok {
		out := make([]any, len(arr.Array))
		for i, e := range arr.Array {
			out[i] = metadataValue(e)
		}
		return out
	}
	return v
}

func toInt(v any) int {
	switch n := v.(type) {
	case uint8:
		return int(n)
	case int8:
		return int(n)
	case uint16:
		return int(n)
	case int16:
		return int(n)
	case uint32:
		return int(n)
	case int32:
		return int(n)
	case uint64:
		return int(n)
	case int64:
		return int(n)
	default:
		return 0
	}
}
