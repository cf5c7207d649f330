package vectorizer

import (
	"sort"

	"vector-lab/domain/corpus"
	"vector-lab/errors"
	"vector-lab/tokenize"
)

// Vocabulary is the frozen term→column mapping produced by a fit.
// Column indices follow ascending lexicographic term order, so fitting
// twice on the same corpus reproduces identical indices. A Vocabulary
// is a value: transforms never mutate it, a new fit yields a new one.
type Vocabulary struct {
	// Terms holds the surviving terms in column order.
	Terms []string `json:"terms"`
	// DocFreq holds, per column, the number of fit-corpus documents
	// containing that term.
	DocFreq []int `json:"doc_freq"`
	// NumDocs is the size of the corpus the vocabulary was fit on.
	NumDocs int `json:"num_docs"`

	index map[string]int
}

func newVocabulary(terms []string, docFreq map[string]int, numDocs int) Vocabulary {
	v := Vocabulary{
		Terms:   terms,
		DocFreq: make([]int, len(terms)),
		NumDocs: numDocs,
		index:   make(map[string]int, len(terms)),
	}
	for i, term := range terms {
		v.index[term] = i
		v.DocFreq[i] = docFreq[term]
	}
	return v
}

// RestoreVocabulary rebuilds the lookup index of a vocabulary that was
// deserialized from storage.
func RestoreVocabulary(terms []string, docFreq []int, numDocs int) Vocabulary {
	v := Vocabulary{
		Terms:   terms,
		DocFreq: docFreq,
		NumDocs: numDocs,
		index:   make(map[string]int, len(terms)),
	}
	for i, term := range terms {
		v.index[term] = i
	}
	return v
}

func (v Vocabulary) Size() int {
	return len(v.Terms)
}

// Index returns the column of a term and whether the term is known.
func (v Vocabulary) Index(term string) (int, bool) {
	idx, ok := v.index[term]
	return idx, ok
}

type CountOptions struct {
	// MinDF drops terms appearing in fewer documents than this
	// absolute count. Zero behaves as one.
	MinDF int
	// MaxDF drops terms appearing in more documents than this
	// absolute count. Zero means unbounded.
	MaxDF int
	// MaxFeatures, when positive, keeps only the N terms with the
	// highest total corpus frequency, ties broken by lexicographic
	// term order.
	MaxFeatures int
	// Binary caps every cell at 1 regardless of occurrence count.
	Binary bool
}

// CountVectorizer maps corpora to sparse token-count matrices under a
// vocabulary produced by Fit.
type CountVectorizer struct {
	tokenizer *tokenize.Tokenizer
	opts      CountOptions
}

func NewCountVectorizer(t *tokenize.Tokenizer, opts CountOptions) *CountVectorizer {
	if opts.MinDF < 1 {
		opts.MinDF = 1
	}
	return &CountVectorizer{tokenizer: t, opts: opts}
}

// Fit scans the corpus and returns the frozen vocabulary. It fails
// with ErrEmptyVocabulary when no term survives the document-frequency
// and max-features filters.
func (cv *CountVectorizer) Fit(c corpus.Corpus) (Vocabulary, error) {
	docFreq := make(map[string]int)
	totalFreq := make(map[string]int)

	for _, doc := range c {
		seen := make(map[string]struct{})
		for _, term := range cv.tokenizer.Tokenize(string(doc)) {
			totalFreq[term]++
			if _, dup := seen[term]; !dup {
				docFreq[term]++
				seen[term] = struct{}{}
			}
		}
	}

	surviving := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < cv.opts.MinDF {
			continue
		}
		if cv.opts.MaxDF > 0 && df > cv.opts.MaxDF {
			continue
		}
		surviving = append(surviving, term)
	}

	if cv.opts.MaxFeatures > 0 && len(surviving) > cv.opts.MaxFeatures {
		// Highest corpus frequency first, lexicographic on ties.
		sort.Slice(surviving, func(i, j int) bool {
			fi, fj := totalFreq[surviving[i]], totalFreq[surviving[j]]
			if fi != fj {
				return fi > fj
			}
			return surviving[i] < surviving[j]
		})
		surviving = surviving[:cv.opts.MaxFeatures]
	}

	if len(surviving) == 0 {
		return Vocabulary{}, errors.ErrEmptyVocabulary
	}

	sort.Strings(surviving)
	return newVocabulary(surviving, docFreq, len(c)), nil
}

// Transform maps each document to a sparse count row under the frozen
// vocabulary. Tokens outside the vocabulary are dropped silently: the
// vocabulary must generalize to unseen text at inference time, so an
// unknown token is a non-event, not an error. The call is pure and
// idempotent.
func (cv *CountVectorizer) Transform(c corpus.Corpus, vocab Vocabulary) SparseMatrix {
	m, _ := cv.TransformCounted(c, vocab)
	return m
}

// TransformCounted transforms the corpus and reports how many tokens
// fell outside the vocabulary, so callers can track drop rates without
// a second tokenization pass.
func (cv *CountVectorizer) TransformCounted(c corpus.Corpus, vocab Vocabulary) (SparseMatrix, uint64) {
	var dropped uint64
	m := NewSparseMatrix(len(c), vocab.Size())
	for i, doc := range c {
		counts := make(map[int]float64)
		for _, term := range cv.tokenizer.Tokenize(string(doc)) {
			idx, known := vocab.Index(term)
			if !known {
				dropped++
				continue
			}
			if cv.opts.Binary {
				counts[idx] = 1
			} else {
				counts[idx]++
			}
		}
		m.Rows[i] = FromCounts(vocab.Size(), counts)
	}
	return m, dropped
}

// FitTransform fits the vocabulary and transforms the same corpus.
func (cv *CountVectorizer) FitTransform(c corpus.Corpus) (Vocabulary, SparseMatrix, error) {
	vocab, err := cv.Fit(c)
	if err != nil {
		return Vocabulary{}, SparseMatrix{}, err
	}
	return vocab, cv.Transform(c, vocab), nil
}
