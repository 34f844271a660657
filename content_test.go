package notekit_test

import (
	"testing"

	"github.com/fwojciec/notekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContent(t *testing.T) {
	t.Parallel()

	c := notekit.NewContent("https://example.com/post", notekit.KindBlog)

	assert.Equal(t, "https://example.com/post", c.SourceURL)
	assert.Equal(t, notekit.KindBlog, c.Kind)
	assert.Equal(t, notekit.StateUnscraped, c.State)
	assert.False(t, c.HasText)
	assert.Zero(t, c.TokenCount)
	assert.Nil(t, c.Tokenizer)
	assert.Equal(t, notekit.Summary{}, c.Summary)
}

func TestContent_Clone(t *testing.T) {
	t.Parallel()

	c := notekit.NewContent("https://example.com/post", notekit.KindBlog)
	other := c.Clone()
	other.Text = "changed"
	other.HasText = true

	assert.False(t, c.HasText)
	assert.Empty(t, c.Text)
}

func TestContent_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		err := (&notekit.Content{Kind: notekit.KindBlog}).Validate()

		require.Error(t, err)
		assert.Equal(t, notekit.EINVALID, notekit.ErrorCode(err))
	})

	t.Run("requires kind", func(t *testing.T) {
		t.Parallel()

		err := (&notekit.Content{SourceURL: "https://example.com"}).Validate()

		require.Error(t, err)
		assert.Equal(t, notekit.EINVALID, notekit.ErrorCode(err))
	})

	t.Run("accepts complete record", func(t *testing.T) {
		t.Parallel()

		err := notekit.NewContent("https://example.com", notekit.KindBlog).Validate()

		assert.NoError(t, err)
	})
}

func TestContentState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unscraped", notekit.StateUnscraped.String())
	assert.Equal(t, "scraped", notekit.StateScraped.String())
	assert.Equal(t, "tokenized", notekit.StateTokenized.String())
	assert.Equal(t, "summarized", notekit.StateSummarized.String())
	assert.Equal(t, "unknown", notekit.ContentState(42).String())
}
