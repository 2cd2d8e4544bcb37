// Package morph provides detectors backed by the kagome morphological
// analyzer. Tokenizer construction is expensive, so a single Analyzer is
// shared across detectors and goroutines (kagome tokenization is safe
// for concurrent use).
package morph

import (
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Analyzer wraps a kagome tokenizer with the bundled IPA dictionary.
type Analyzer struct {
	tok *tokenizer.Tokenizer
}

func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{tok: t}, nil
}

// Tokenize returns tokens with rune-indexed Start/End positions.
func (a *Analyzer) Tokenize(text string) []tokenizer.Token {
	return a.tok.Tokenize(text)
}
