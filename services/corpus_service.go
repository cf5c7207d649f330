package services

import (
	"log/slog"
	"sort"

	"vector-lab/domain/corpus"
	"vector-lab/errors"
	"vector-lab/tokenize"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

type ICorpusService interface {
	Profile(c corpus.Corpus) (CorpusProfile, error)
}

type TermCount struct {
	Term  string
	Count int
}

// CorpusProfile summarizes a corpus before vectorization: volume,
// distinct terms and the ISO 639-1 language distribution.
type CorpusProfile struct {
	Documents     int
	Tokens        int
	DistinctTerms int
	Languages     map[string]int
	TopTerms      []TermCount
}

type CorpusService struct {
	tokenizer *tokenize.Tokenizer
	log       *slog.Logger
	topN      int
}

func NewCorpusService(tokenizer *tokenize.Tokenizer, log *slog.Logger, topN int) *CorpusService {
	return &CorpusService{tokenizer: tokenizer, log: log, topN: topN}
}

func (s *CorpusService) Profile(c corpus.Corpus) (CorpusProfile, error) {
	if len(c) == 0 {
		return CorpusProfile{}, errors.ErrEmptyCorpus
	}

	profile := CorpusProfile{
		Documents: len(c),
		Languages: make(map[string]int),
	}

	freq := make(map[string]int)
	for _, doc := range c {
		info := whatlanggo.Detect(string(doc))
		profile.Languages[info.Lang.Iso6391()]++

		for _, term := range s.tokenizer.Tokenize(string(doc)) {
			freq[term]++
			profile.Tokens++
		}
	}
	profile.DistinctTerms = len(freq)

	terms := lo.MapToSlice(freq, func(term string, count int) TermCount {
		return TermCount{Term: term, Count: count}
	})
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > s.topN {
		terms = terms[:s.topN]
	}
	profile.TopTerms = terms

	s.log.Debug("Corpus profiled",
		"documents", profile.Documents,
		"tokens", profile.Tokens,
		"distinct", profile.DistinctTerms,
	)
	return profile, nil
}
