// Package sentiment rates news text on a 1-5 star scale and folds the
// ratings into Positive, Neutral or Negative labels.
package sentiment

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Label is the sentiment reported to clients.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Classifier rates a text from 1 (very negative) to 5 (very positive) stars.
type Classifier interface {
	Name() string
	Stars(ctx context.Context, text string) (int, error)
}

// LabelFor maps stars to a label: 4-5 Positive, 3 Neutral, otherwise Negative.
func LabelFor(stars int) Label {
	switch {
	case stars >= 4:
		return Positive
	case stars == 3:
		return Neutral
	default:
		return Negative
	}
}

// Overall returns the most frequent label. Ties go to Positive, then
// Neutral, then Negative. No labels at all is Neutral.
func Overall(labels []Label) Label {
	if len(labels) == 0 {
		return Neutral
	}
	counts := map[Label]int{}
	for _, l := range labels {
		counts[l]++
	}
	best := Positive
	for _, l := range []Label{Neutral, Negative} {
		if counts[l] > counts[best] {
			best = l
		}
	}
	return best
}

// FallbackClassifier uses primary and falls back to secondary on error.
type FallbackClassifier struct {
	primary   Classifier
	secondary Classifier
	log       *zap.SugaredLogger
}

// NewFallbackClassifier chains two classifiers.
func NewFallbackClassifier(primary, secondary Classifier, log *zap.SugaredLogger) *FallbackClassifier {
	return &FallbackClassifier{primary: primary, secondary: secondary, log: log}
}

// Name returns the provider's display name.
func (f *FallbackClassifier) Name() string {
	return fmt.Sprintf("%s+%s", f.primary.Name(), f.secondary.Name())
}

// Stars asks the primary classifier first.
func (f *FallbackClassifier) Stars(ctx context.Context, text string) (int, error) {
	stars, err := f.primary.Stars(ctx, text)
	if err == nil {
		return stars, nil
	}
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	f.log.Warnw("classifier failed, using fallback",
		"classifier", f.primary.Name(),
		"fallback", f.secondary.Name(),
		"error", err,
	)
	return f.secondary.Stars(ctx, text)
}
