package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/notekit"
	"github.com/fwojciec/notekit/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize_ReturnsErrorWhenTextEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "") // nil client ok for this test

	_, err := s.Summarize(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, notekit.EINVALID, notekit.ErrorCode(err))
	assert.Contains(t, notekit.ErrorMessage(err), "text required")
}

func TestSummarizer_Model(t *testing.T) {
	t.Parallel()

	t.Run("defaults when empty", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, gemini.DefaultSummaryModel, gemini.NewSummarizer(nil, "").Model())
	})

	t.Run("keeps configured model", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "gemini-2.0-flash", gemini.NewSummarizer(nil, "gemini-2.0-flash").Model())
	})
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("Some page text.")

	assert.Contains(t, prompt, "<page>\nSome page text.\n</page>")
	assert.Contains(t, prompt, "Summarize the page.")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "summarize")
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}
