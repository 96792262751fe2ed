// Package moderation masks profanity in user-submitted text before it
// is persisted.
package moderation

import (
	"strings"

	goaway "github.com/TwiN/go-away"
)

const maskRune = '*'

// extraProfanities covers mild insults the feed has always censored
// but go-away's default lexicon leaves out.
var extraProfanities = []string{"idiot", "moron", "stupid", "dumbass"}

// Filter replaces profane words with length-preserving masked tokens.
// It is pure and safe for concurrent use.
type Filter struct {
	detector *goaway.ProfanityDetector
}

func NewFilter() *Filter {
	profanities := make([]string, 0, len(goaway.DefaultProfanities)+len(extraProfanities))
	profanities = append(profanities, goaway.DefaultProfanities...)
	profanities = append(profanities, extraProfanities...)

	return &Filter{
		detector: goaway.NewProfanityDetector().
			WithCustomDictionary(profanities, goaway.DefaultFalsePositives, goaway.DefaultFalseNegatives),
	}
}

// Mask splits text on single spaces, masks each token the detector
// classifies as profane, and rejoins. Splitting on " " rather than all
// whitespace is intentional: it matches the feed's documented behavior,
// and means punctuation stays attached to its token (so "idiot," may
// escape classification while "idiot" does not).
func (f *Filter) Mask(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" && f.detector.IsProfane(w) {
			words[i] = maskWord(w)
		}
	}
	return strings.Join(words, " ")
}

// maskWord keeps the token's rune length. Tokens of one or two runes
// become all mask characters; longer tokens keep their first and last
// rune with every interior rune masked.
func maskWord(w string) string {
	runes := []rune(w)
	if len(runes) <= 2 {
		return strings.Repeat(string(maskRune), len(runes))
	}
	masked := make([]rune, len(runes))
	masked[0] = runes[0]
	for i := 1; i < len(runes)-1; i++ {
		masked[i] = maskRune
	}
	masked[len(runes)-1] = runes[len(runes)-1]
	return string(masked)
}
