package tokenize

import (
	snowballeng "github.com/kljensen/snowball/english"
)

// Filter rewrites a unigram sequence. Filters run before n-gram
// assembly so removed tokens never leak into bigrams.
type Filter interface {
	Apply(tokens []string) []string
}

type StopWordFilter struct {
	words map[string]struct{}
}

func NewStopWordFilter(words []string) StopWordFilter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return StopWordFilter{words: set}
}

func (f StopWordFilter) Apply(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, stop := f.words[t]; !stop {
			out = append(out, t)
		}
	}
	return out
}

type MinLengthFilter struct {
	min int
}

func NewMinLengthFilter(min int) MinLengthFilter {
	return MinLengthFilter{min: min}
}

// Min returns the configured length threshold.
func (f MinLengthFilter) Min() int {
	return f.min
}

func (f MinLengthFilter) Apply(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) >= f.min {
			out = append(out, t)
		}
	}
	return out
}

// StemFilter reduces tokens to their root form with the Snowball
// (Porter2) English stemmer.
type StemFilter struct{}

func (StemFilter) Apply(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = snowballeng.Stem(t, false)
	}
	return out
}

// EnglishStopWords returns a default English stop-word list.
func EnglishStopWords() []string {
	return []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been",
		"before", "being", "below", "between", "both", "but", "by", "can",
		"did", "do", "does", "doing", "down", "during", "each", "few",
		"for", "from", "further", "had", "has", "have", "having", "he",
		"her", "here", "hers", "herself", "him", "himself", "his", "how",
		"i", "if", "in", "into", "is", "it", "its", "itself", "just",
		"me", "more", "most", "my", "myself", "no", "nor", "not", "now",
		"of", "off", "on", "once", "only", "or", "other", "our", "ours",
		"ourselves", "out", "over", "own", "same", "she", "should", "so",
		"some", "such", "than", "that", "the", "their", "theirs", "them",
		"themselves", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "very", "was",
		"we", "were", "what", "when", "where", "which", "while", "who",
		"whom", "why", "will", "with", "you", "your", "yours", "yourself",
		"yourselves",
	}
}
