package scrub

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Scrubber blanks configured boilerplate phrases out of documents
// before tokenization. Matching is case-insensitive and ignores
// punctuation and spacing inside a phrase, so "Terms of Service" and
// "terms-of-service" both hit the same pattern.
type Scrubber struct {
	matcher *goahocorasick.Machine
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewScrubber builds the Aho-Corasick automaton over the normalized
// phrase list. Phrases that normalize to nothing are rejected by Build.
func NewScrubber(phrases []string) (Scrubber, error) {
	patterns := make([][]rune, len(phrases))
	for i, p := range phrases {
		patterns[i] = normalizeRunes([]rune(p))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Scrubber{}, err
	}
	return Scrubber{matcher: m}, nil
}

// Scrub replaces every matched phrase with spaces, preserving the
// document length so the remaining text keeps its word boundaries.
// It returns the scrubbed document and the normalized phrases found.
func (s *Scrubber) Scrub(original string) (string, []string) {
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := s.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	found := make([]string, 0, len(spans))
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		origStart := mapping.origIdx[normStart]
		origEnd := mapping.origIdx[normEnd-1] + 1
		for i := origStart; i < origEnd; i++ {
			origRunes[i] = ' '
		}
		found = append(found, string(span.Word))
	}

	return string(origRunes), found
}

// normalize lowercases the input, strips noise runes and keeps a map
// from normalized positions back to original rune positions.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		if isNoise(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
