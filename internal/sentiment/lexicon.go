package sentiment

import (
	"context"
	"strings"
	"unicode"
)

var positiveWords = toSet(
	"gain", "gains", "gained", "rise", "rises", "rose", "rising", "surge", "surges", "surged",
	"rally", "rallies", "rallied", "jump", "jumps", "jumped", "soar", "soars", "soared",
	"up", "high", "record", "beat", "beats", "outperform", "outperforms", "upgrade", "upgraded",
	"buy", "bullish", "profit", "profits", "growth", "grows", "strong", "stronger", "robust",
	"boost", "boosts", "positive", "optimistic", "dividend", "expansion", "win", "wins", "approval",
)

var negativeWords = toSet(
	"loss", "losses", "fall", "falls", "fell", "falling", "drop", "drops", "dropped", "decline",
	"declines", "declined", "slump", "slumps", "plunge", "plunges", "plunged", "crash", "crashes",
	"down", "low", "miss", "misses", "missed", "underperform", "downgrade", "downgraded",
	"sell", "bearish", "weak", "weaker", "cut", "cuts", "probe", "fraud", "lawsuit", "penalty",
	"debt", "default", "negative", "pessimistic", "layoffs", "warning", "concern", "concerns", "slide", "slides",
)

// LexiconClassifier counts financial polarity words. It needs no network
// access and serves as the fallback for model-based classifiers.
type LexiconClassifier struct{}

// NewLexiconClassifier returns a word-list classifier.
func NewLexiconClassifier() *LexiconClassifier { return &LexiconClassifier{} }

// Name returns the provider's display name.
func (LexiconClassifier) Name() string { return "lexicon" }

// Stars maps net polarity to stars: +2 or more is 5, +1 is 4, 0 is 3,
// -1 is 2 and -2 or less is 1.
func (LexiconClassifier) Stars(_ context.Context, text string) (int, error) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var net int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			net++
		}
		if _, ok := negativeWords[w]; ok {
			net--
		}
	}

	switch {
	case net >= 2:
		return 5, nil
	case net == 1:
		return 4, nil
	case net == 0:
		return 3, nil
	case net == -1:
		return 2, nil
	default:
		return 1, nil
	}
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
