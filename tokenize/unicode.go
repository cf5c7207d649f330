package tokenize

import (
	"github.com/blugelabs/bluge/analysis/tokenizer"
)

// unicodeSegmenter wraps bluge's unicode word tokenizer. Unlike the
// default pattern, it keeps one-character tokens; combine with
// MinLengthFilter to reproduce the two-character floor.
func unicodeSegmenter() func(string) []string {
	tok := tokenizer.NewUnicodeTokenizer()
	return func(doc string) []string {
		stream := tok.Tokenize([]byte(doc))
		out := make([]string, 0, len(stream))
		for _, t := range stream {
			out = append(out, string(t.Term))
		}
		return out
	}
}
