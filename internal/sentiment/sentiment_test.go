package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClassifier struct {
	name  string
	stars int
	err   error
	calls int
}

func (s *stubClassifier) Name() string { return s.name }

func (s *stubClassifier) Stars(_ context.Context, _ string) (int, error) {
	s.calls++
	return s.stars, s.err
}

func TestLabelFor(t *testing.T) {
	want := map[int]Label{1: Negative, 2: Negative, 3: Neutral, 4: Positive, 5: Positive}
	for stars, label := range want {
		assert.Equal(t, label, LabelFor(stars), "stars=%d", stars)
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		want   Label
	}{
		{"majority_negative", []Label{Negative, Negative, Positive}, Negative},
		{"tie_prefers_positive", []Label{Negative, Positive, Neutral}, Positive},
		{"tie_neutral_over_negative", []Label{Negative, Neutral}, Neutral},
		{"majority_neutral", []Label{Neutral, Neutral, Positive, Negative}, Neutral},
		{"empty", nil, Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overall(tt.labels))
		})
	}
}

func TestLexiconClassifier(t *testing.T) {
	c := NewLexiconClassifier()
	ctx := context.Background()

	tests := []struct {
		text string
		want int
	}{
		{"Shares surged to a record high after strong profit growth", 5},
		{"Stock gains in early trade", 4},
		{"Company announces board meeting date", 3},
		{"Shares fell on Monday", 2},
		{"Stock plunged after fraud probe and downgrade", 1},
	}
	for _, tt := range tests {
		got, err := c.Stars(ctx, tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestFallbackClassifier(t *testing.T) {
	ctx := context.Background()

	t.Run("primary_ok", func(t *testing.T) {
		primary := &stubClassifier{name: "p", stars: 5}
		secondary := &stubClassifier{name: "s", stars: 1}
		got, err := NewFallbackClassifier(primary, secondary, zap.NewNop().Sugar()).Stars(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, 5, got)
		assert.Zero(t, secondary.calls)
	})

	t.Run("primary_fails", func(t *testing.T) {
		primary := &stubClassifier{name: "p", err: errors.New("quota exceeded")}
		secondary := &stubClassifier{name: "s", stars: 2}
		c := NewFallbackClassifier(primary, secondary, zap.NewNop().Sugar())
		got, err := c.Stars(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Equal(t, "p+s", c.Name())
	})

	t.Run("cancelled_context_skips_fallback", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		primary := &stubClassifier{name: "p", err: context.Canceled}
		secondary := &stubClassifier{name: "s", stars: 2}
		_, err := NewFallbackClassifier(primary, secondary, zap.NewNop().Sugar()).Stars(cctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, secondary.calls)
	})
}

func TestGeminiClassifier_Stars(t *testing.T) {
	var gotPrompt string
	g := &GeminiClassifier{
		model: "gemini-test",
		generate: func(_ context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "```json\n{\"stars\": 4}\n```", nil
		},
	}

	got, err := g.Stars(context.Background(), "Profit rose")
	require.NoError(t, err)
	assert.Equal(t, 4, got)
	assert.Contains(t, gotPrompt, "Profit rose")
	assert.Equal(t, "gemini:gemini-test", g.Name())
}

func TestGeminiClassifier_Errors(t *testing.T) {
	g := &GeminiClassifier{generate: func(context.Context, string) (string, error) {
		return "", errors.New("503")
	}}
	_, err := g.Stars(context.Background(), "x")
	assert.Error(t, err)

	_, err = parseStars(`{"stars": 9}`)
	assert.ErrorContains(t, err, "out of range")

	_, err = parseStars("four stars")
	assert.Error(t, err)
}
