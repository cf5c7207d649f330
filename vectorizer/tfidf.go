package vectorizer

import (
	"math"

	"vector-lab/domain/corpus"
	"vector-lab/errors"
	"vector-lab/tokenize"
)

type Norm int

const (
	// NormL2 divides each row by its Euclidean norm, the default.
	NormL2 Norm = iota
	// NormNone leaves rows unnormalized.
	NormNone
)

type TfidfOptions struct {
	// SmoothIDF computes idf(j) = ln((1+n)/(1+df(j))) + 1, acting as
	// if one extra document contained every term. Without smoothing
	// the formula is ln(n/df(j)) + 1 and a zero document frequency is
	// an error.
	SmoothIDF bool
	// SublinearTF replaces raw counts with 1 + ln(tf).
	SublinearTF bool
	Norm        Norm
}

func DefaultTfidfOptions() TfidfOptions {
	return TfidfOptions{SmoothIDF: true, Norm: NormL2}
}

// TfidfTransformer reweights raw count matrices into TF-IDF scores.
// Fit derives the per-column idf vector from fit-time document
// frequencies; Transform is then a pure function of its input.
type TfidfTransformer struct {
	opts TfidfOptions
	idf  []float64
}

func NewTfidfTransformer(opts TfidfOptions) *TfidfTransformer {
	return &TfidfTransformer{opts: opts}
}

// RestoreTfidfTransformer rebuilds a fitted transformer from an idf
// vector that was loaded from storage.
func RestoreTfidfTransformer(idf []float64, opts TfidfOptions) *TfidfTransformer {
	return &TfidfTransformer{opts: opts, idf: idf}
}

// Fit computes the idf vector from per-column document frequencies and
// the fit-corpus size. Refitting replaces the vector entirely.
func (t *TfidfTransformer) Fit(docFreq []int, numDocs int) error {
	idf := make([]float64, len(docFreq))
	for j, df := range docFreq {
		if t.opts.SmoothIDF {
			idf[j] = math.Log(float64(1+numDocs)/float64(1+df)) + 1
			continue
		}
		if df == 0 {
			return errors.ErrZeroDocumentFrequency
		}
		idf[j] = math.Log(float64(numDocs)/float64(df)) + 1
	}
	t.idf = idf
	return nil
}

// IDF exposes the fitted per-column idf weights.
func (t *TfidfTransformer) IDF() []float64 {
	return t.idf
}

// Transform reweights a count matrix: cell(i,j) = tf(i,j) * idf(j),
// then L2 row normalization unless disabled. Rows with no recognized
// term stay all-zero. The input matrix is left untouched.
func (t *TfidfTransformer) Transform(m SparseMatrix) (SparseMatrix, error) {
	if t.idf == nil {
		return SparseMatrix{}, errors.ErrNotFitted
	}
	if m.Cols != len(t.idf) {
		return SparseMatrix{}, errors.ErrShapeMismatch
	}

	out := NewSparseMatrix(m.NumRows(), m.Cols)
	for i, row := range m.Rows {
		weighted := row.Clone()
		for k, idx := range weighted.Indices {
			tf := weighted.Values[k]
			if t.opts.SublinearTF {
				tf = 1 + math.Log(tf)
			}
			weighted.Values[k] = tf * t.idf[idx]
		}
		if t.opts.Norm == NormL2 {
			if norm := weighted.L2Norm(); norm > 0 {
				for k := range weighted.Values {
					weighted.Values[k] /= norm
				}
			}
		}
		out.Rows[i] = weighted
	}
	return out, nil
}

// TfidfVectorizer composes a CountVectorizer with a TfidfTransformer.
type TfidfVectorizer struct {
	counts *CountVectorizer
	tfidf  *TfidfTransformer
}

func NewTfidfVectorizer(t *tokenize.Tokenizer, countOpts CountOptions, tfidfOpts TfidfOptions) *TfidfVectorizer {
	return &TfidfVectorizer{
		counts: NewCountVectorizer(t, countOpts),
		tfidf:  NewTfidfTransformer(tfidfOpts),
	}
}

// Fit builds the vocabulary and the idf vector in one pass over the
// training corpus.
func (tv *TfidfVectorizer) Fit(c corpus.Corpus) (Vocabulary, error) {
	vocab, err := tv.counts.Fit(c)
	if err != nil {
		return Vocabulary{}, err
	}
	if err := tv.tfidf.Fit(vocab.DocFreq, vocab.NumDocs); err != nil {
		return Vocabulary{}, err
	}
	return vocab, nil
}

func (tv *TfidfVectorizer) Transform(c corpus.Corpus, vocab Vocabulary) (SparseMatrix, error) {
	return tv.tfidf.Transform(tv.counts.Transform(c, vocab))
}

func (tv *TfidfVectorizer) FitTransform(c corpus.Corpus) (Vocabulary, SparseMatrix, error) {
	vocab, err := tv.Fit(c)
	if err != nil {
		return Vocabulary{}, SparseMatrix{}, err
	}
	m, err := tv.Transform(c, vocab)
	if err != nil {
		return Vocabulary{}, SparseMatrix{}, err
	}
	return vocab, m, nil
}

// IDF exposes the fitted idf vector of the underlying transformer.
func (tv *TfidfVectorizer) IDF() []float64 {
	return tv.tfidf.IDF()
}
