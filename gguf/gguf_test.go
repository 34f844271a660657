package gguf_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/notekit"
	"github.com/fwojciec/notekit/gguf"
	"github.com/fwojciec/notekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ggufMagic is "GGUF" read as a little-endian uint32.
const ggufMagic uint32 = 0x46554747

// builder writes a GGUF header for tests.
type builder struct {
	buf bytes.Buffer
	kvs int
	kv  bytes.Buffer
}

func (b *builder) str(w *bytes.Buffer, s string) {
	_ = binary.Write(w, binary.LittleEndian, uint64(len(s)))
	w.WriteString(s)
}

func (b *builder) String(key, val string) *builder {
	b.kvs++
	b.str(&b.kv, key)
	_ = binary.Write(&b.kv, binary.LittleEndian, uint32(8))
	b.str(&b.kv, val)
	return b
}

func (b *builder) Uint32(key string, val uint32) *builder {
	b.kvs++
	b.str(&b.kv, key)
	_ = binary.Write(&b.kv, binary.LittleEndian, uint32(4))
	_ = binary.Write(&b.kv, binary.LittleEndian, val)
	return b
}

func (b *builder) Bool(key string, val bool) *builder {
	b.kvs++
	b.str(&b.kv, key)
	_ = binary.Write(&b.kv, binary.LittleEndian, uint32(7))
	v := uint8(0)
	if val {
		v = 1
	}
	b.kv.WriteByte(v)
	return b
}

func (b *builder) Float32(key string, val float32) *builder {
	b.kvs++
	b.str(&b.kv, key)
	_ = binary.Write(&b.kv, binary.LittleEndian, uint32(6))
	_ = binary.Write(&b.kv, binary.LittleEndian, val)
	return b
}

func (b *builder) Strings(key string, vals ...string) *builder {
	b.kvs++
	b.str(&b.kv, key)
	_ = binary.Write(&b.kv, binary.LittleEndian, uint32(9))
	_ = binary.Write(&b.kv, binary.LittleEndian, uint32(8))
	_ = binary.Write(&b.kv, binary.LittleEndian, uint64(len(vals)))
	for _, v := range vals {
		b.str(&b.kv, v)
	}
	return b
}

func (b *builder) Bytes(version uint32, tensors uint64) []byte {
	var out bytes.Buffer
	_ = binary.Write(&out, binary.LittleEndian, ggufMagic)
	_ = binary.Write(&out, binary.LittleEndian, version)
	_ = binary.Write(&out, binary.LittleEndian, tensors)
	_ = binary.Write(&out, binary.LittleEndian, uint64(b.kvs))
	out.Write(b.kv.Bytes())
	return out.Bytes()
}

func llamaFile() []byte {
	return (&builder{}).
		String("general.architecture", "llama").
		String("general.name", "Llama 3.2 3B Instruct").
		Uint32("llama.context_length", 131072).
		Float32("llama.rope.freq_base", 500000).
		Bool("tokenizer.ggml.add_bos_token", true).
		Strings("tokenizer.ggml.tokens", "<s>", "</s>", "hello").
		Bytes(3, 0)
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.gguf")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestOpen_Metadata(t *testing.T) {
	t.Parallel()

	t.Run("reads header and metadata", func(t *testing.T) {
		t.Parallel()

		m, err := gguf.Open(writeFile(t, llamaFile()), gguf.Options{})

		require.NoError(t, err)
		assert.Equal(t, uint32(3), m.Version)
		assert.Equal(t, uint64(0), m.TensorCount)
		assert.Equal(t, "llama", m.Architecture)
		assert.Equal(t, "Llama 3.2 3B Instruct", m.Name)
		assert.Equal(t, 131072, m.TrainedContextLength)
		assert.Equal(t, true, m.Metadata["tokenizer.ggml.add_bos_token"])
		assert.Equal(t, float32(500000), m.Metadata["llama.rope.freq_base"])
		assert.Equal(t, []any{"<s>", "</s>", "hello"}, m.Metadata["tokenizer.ggml.tokens"])
	})

	t.Run("rejects wrong magic", func(t *testing.T) {
		t.Parallel()

		_, err := gguf.Open(writeFile(t, []byte("GGML\x03\x00\x00\x00")), gguf.Options{})

		require.Error(t, err)
		assert.Equal(t, notekit.EINVALID, notekit.ErrorCode(err))
	})

	t.Run("rejects truncated metadata", func(t *testing.T) {
		t.Parallel()

		data := llamaFile()

		_, err := gguf.Open(writeFile(t, data[:len(data)-4]), gguf.Options{})

		require.Error(t, err)
		assert.Equal(t, notekit.EINVALID, notekit.ErrorCode(err))
	})

	t.Run("accepts file without metadata", func(t *testing.T) {
		t.Parallel()

		m, err := gguf.Open(writeFile(t, (&builder{}).Bytes(3, 0)), gguf.Options{})

		require.NoError(t, err)
		assert.Empty(t, m.Metadata)
		assert.Zero(t, m.TrainedContextLength)
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("uses requested context length", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, llamaFile())

		m, err := gguf.Open(path, gguf.Options{RepoID: "org/repo", Filename: "model.gguf", ContextLength: 4096})

		require.NoError(t, err)
		assert.Equal(t, 4096, m.ContextLength)
		assert.Equal(t, path, m.Path)
		assert.Equal(t, "org/repo", m.RepoID)
		assert.Equal(t, "model.gguf", m.Filename)
	})

	t.Run("falls back to trained context length", func(t *testing.T) {
		t.Parallel()

		m, err := gguf.Open(writeFile(t, llamaFile()), gguf.Options{})

		require.NoError(t, err)
		assert.Equal(t, 131072, m.ContextLength)
	})

	t.Run("falls back to default context length", func(t *testing.T) {
		t.Parallel()

		m, err := gguf.Open(writeFile(t, (&builder{}).Bytes(3, 0)), gguf.Options{})

		require.NoError(t, err)
		assert.Equal(t, gguf.DefaultContextLength, m.ContextLength)
	})

	t.Run("logs metadata when verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		_, err := gguf.Open(writeFile(t, llamaFile()), gguf.Options{Verbose: true, Logger: logger})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "model loaded")
		assert.Contains(t, buf.String(), "architecture=llama")
	})

	t.Run("stays quiet when not verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		_, err := gguf.Open(writeFile(t, llamaFile()), gguf.Options{Logger: logger})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := gguf.Open(filepath.Join(t.TempDir(), "absent.gguf"), gguf.Options{})

		assert.True(t, os.IsNotExist(err))
	})
}

func TestLoader_LoadModel(t *testing.T) {
	t.Parallel()

	t.Run("downloads through hub then opens", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, llamaFile())
		var gotRepo, gotFile, gotDir string
		hub := &mock.Hub{
			DownloadFn: func(_ context.Context, repoID, filename, dir string) (string, error) {
				gotRepo, gotFile, gotDir = repoID, filename, dir
				return path, nil
			},
		}

		m, err := gguf.NewLoader(hub, nil).LoadModel(context.Background(), notekit.ModelRequest{
			RepoID:        "org/repo",
			Filename:      "model.gguf",
			Dir:           "models",
			ContextLength: 2048,
		})

		require.NoError(t, err)
		assert.Equal(t, "org/repo", gotRepo)
		assert.Equal(t, "model.gguf", gotFile)
		assert.Equal(t, "models", gotDir)
		assert.Equal(t, 2048, m.ContextLength)
		assert.Equal(t, "llama", m.Architecture)
	})

	t.Run("returns hub errors unchanged", func(t *testing.T) {
		t.Parallel()

		hubErr := errors.New("gated repository")
		hub := &mock.Hub{
			DownloadFn: func(context.Context, string, string, string) (string, error) {
				return "", hubErr
			},
		}

		_, err := gguf.NewLoader(hub, nil).LoadModel(context.Background(), notekit.ModelRequest{RepoID: "org/repo", Filename: "model.gguf"})

		assert.Same(t, hubErr, err)
	})
}
