package tokenize

import (
	"regexp"
	"strings"

	"vector-lab/errors"

	"github.com/go-playground/validator/v10"
)

// DefaultPattern matches maximal runs of two or more word characters.
// One-character tokens carry almost no signal and are dropped at the source.
const DefaultPattern = `\w\w+`

var validate = validator.New()

type Segmenter int

const (
	// SegmenterPattern splits documents with a regular expression.
	SegmenterPattern Segmenter = iota
	// SegmenterUnicode splits documents with bluge's unicode word
	// segmentation, for corpora where ASCII word classes are too narrow.
	SegmenterUnicode
)

type Options struct {
	// Pattern defines what constitutes a token for SegmenterPattern.
	Pattern   string
	Segmenter Segmenter
	// KeepCase disables the default lowercase folding.
	KeepCase bool
	NgramMin int `validate:"min=1"`
	NgramMax int `validate:"min=1"`
	// Filters run on unigrams, before n-gram assembly.
	Filters []Filter
}

func DefaultOptions() Options {
	return Options{
		Pattern:  DefaultPattern,
		NgramMin: 1,
		NgramMax: 1,
	}
}

// Tokenizer turns one document into an ordered sequence of normalized
// tokens. It is a pure function of its input and configuration and is
// safe for concurrent use.
type Tokenizer struct {
	segment  func(string) []string
	keepCase bool
	ngramMin int
	ngramMax int
	filters  []Filter
}

func New(opts Options) (*Tokenizer, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, err
	}
	if opts.NgramMin > opts.NgramMax {
		return nil, errors.ErrInvalidNgramRange
	}

	t := &Tokenizer{
		keepCase: opts.KeepCase,
		ngramMin: opts.NgramMin,
		ngramMax: opts.NgramMax,
		filters:  opts.Filters,
	}

	switch opts.Segmenter {
	case SegmenterUnicode:
		t.segment = unicodeSegmenter()
	default:
		pattern := opts.Pattern
		if pattern == "" {
			pattern = DefaultPattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		t.segment = func(doc string) []string {
			return re.FindAllString(doc, -1)
		}
	}
	return t, nil
}

// Tokenize extracts the token sequence of a single document: segment,
// filter, then assemble n-grams. Consecutive unigrams forming an n-gram
// are joined with a single space.
func (t *Tokenizer) Tokenize(doc string) []string {
	if !t.keepCase {
		doc = strings.ToLower(doc)
	}
	tokens := t.segment(doc)
	for _, f := range t.filters {
		tokens = f.Apply(tokens)
	}
	return ngrams(tokens, t.ngramMin, t.ngramMax)
}

func ngrams(tokens []string, minN, maxN int) []string {
	if minN == 1 && maxN == 1 {
		return tokens
	}
	var out []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
