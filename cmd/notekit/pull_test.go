package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/notekit"
	main "github.com/fwojciec/notekit/cmd/notekit"
	"github.com/fwojciec/notekit/config"
	"github.com/fwojciec/notekit/mock"
	"github.com/fwojciec/notekit/provision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("authenticates then provisions", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var calls []string
		var gotReq notekit.ModelRequest
		hub := &mock.Hub{
			LoginFn: func(_ context.Context, token string) error {
				calls = append(calls, "login:"+token)
				return nil
			},
		}
		loader := &mock.ModelLoader{
			LoadModelFn: func(_ context.Context, req notekit.ModelRequest) (*notekit.Model, error) {
				calls = append(calls, "load")
				gotReq = req
				return &notekit.Model{
					Filename:      req.Filename,
					Path:          filepath.Join(req.Dir, req.Filename),
					Architecture:  "llama",
					Name:          "Tiny Llama",
					ContextLength: 2048,
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Config:      config.Config{HFToken: "hf_test", ModelDir: "unused"},
			Hub:         hub,
			Provisioner: &provision.Provisioner{Loader: loader},
		}

		cmd := &main.PullCmd{Repo: "org/repo", File: "model.gguf", Dir: dir, Ctx: 2048, Verbose: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"login:hf_test", "load"}, calls)
		assert.Equal(t, notekit.ModelRequest{
			RepoID:        "org/repo",
			Filename:      "model.gguf",
			Dir:           dir,
			Verbose:       true,
			ContextLength: 2048,
		}, gotReq)
		assert.Contains(t, stdout.String(), "Loaded Tiny Llama (llama, context 2048)")
	})

	t.Run("uses configured model directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var gotDir string
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Config: config.Config{HFToken: "hf_test", ModelDir: dir},
			Hub: &mock.Hub{
				LoginFn: func(context.Context, string) error { return nil },
			},
			Provisioner: &provision.Provisioner{Loader: &mock.ModelLoader{
				LoadModelFn: func(_ context.Context, req notekit.ModelRequest) (*notekit.Model, error) {
					gotDir = req.Dir
					return &notekit.Model{Filename: req.Filename}, nil
				},
			}},
		}

		err := (&main.PullCmd{Repo: "org/repo", File: "model.gguf"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, dir, gotDir)
	})

	t.Run("fails without token before touching hub", func(t *testing.T) {
		t.Parallel()

		hub := &mock.Hub{
			LoginFn: func(context.Context, string) error {
				t.Fatal("Login must not be called")
				return nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Hub:    hub,
		}

		err := (&main.PullCmd{Repo: "org/repo", File: "model.gguf"}).Run(deps)

		assert.Equal(t, notekit.EUNAUTHORIZED, notekit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "HF_TOKEN not found")
	})
}
