package gemini

import (
	"context"

	"github.com/fwojciec/notekit"
	"google.golang.org/genai"
)

// DefaultSummaryModel is the model used when none is configured.
const DefaultSummaryModel = "gemini-2.5-flash"

// Ensure Summarizer implements notekit.Summarizer at compile time.
var _ notekit.Summarizer = (*Summarizer)(nil)

// Summarizer implements notekit.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultSummaryModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultSummaryModel
	}
	return &Summarizer{client: client, model: model}
}

// Model returns the name of the model that writes summaries.
func (s *Summarizer) Model() string {
	return s.model
}

// Summarize returns a summary of text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", notekit.Errorf(notekit.EINVALID, "text required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", notekit.Errorf(notekit.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize web pages. Write a concise summary of the page text provided. Keep the key facts and do not add information that is not in the text.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt wraps the page text in the summary prompt.
func BuildUserPrompt(text string) string {
	return "<page>\n" + text + "\n</page>\n\nSummarize the page."
}
