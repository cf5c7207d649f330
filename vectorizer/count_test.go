package vectorizer

import (
	"testing"

	"vector-lab/domain/corpus"
	"vector-lab/errors"
	"vector-lab/tokenize"

	"github.com/stretchr/testify/require"
)

func newTestTokenizer(t *testing.T) *tokenize.Tokenizer {
	t.Helper()
	tok, err := tokenize.New(tokenize.DefaultOptions())
	require.NoError(t, err)
	return tok
}

var smallCorpus = corpus.FromStrings([]string{
	"This is the first document.",
	"This is the second second document.",
	"And the third one. Yes, yes, yes this",
	"Is this the first document?",
})

func TestCountVectorizer_FitVocabulary(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{})
	vocab, err := cv.Fit(smallCorpus)
	req.NoError(err)

	req.Equal([]string{
		"and", "document", "first", "is", "one",
		"second", "the", "third", "this", "yes",
	}, vocab.Terms)
	req.Equal(10, vocab.Size())
	req.Equal(4, vocab.NumDocs)

	// Column indices follow sorted term order.
	idx, ok := vocab.Index("document")
	req.True(ok)
	req.Equal(1, idx)
	_, ok = vocab.Index("my")
	req.False(ok)

	// Document frequencies align with columns.
	df := func(term string) int {
		i, ok := vocab.Index(term)
		req.True(ok)
		return vocab.DocFreq[i]
	}
	req.Equal(1, df("and"))
	req.Equal(3, df("document"))
	req.Equal(4, df("the"))
	req.Equal(1, df("second"))
}

func TestCountVectorizer_TransformCounts(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{})
	vocab, m, err := cv.FitTransform(smallCorpus)
	req.NoError(err)

	req.Equal(4, m.NumRows())
	req.Equal(vocab.Size(), m.NumCols())

	// "This is the first document."
	req.Equal([]float64{0, 1, 1, 1, 0, 0, 1, 0, 1, 0}, m.Rows[0].ToDense())
	// "This is the second second document." counts "second" twice.
	req.Equal([]float64{0, 1, 0, 1, 0, 2, 1, 0, 1, 0}, m.Rows[1].ToDense())
	// "And the third one. Yes, yes, yes this"
	req.Equal([]float64{1, 0, 0, 0, 1, 0, 1, 1, 1, 3}, m.Rows[2].ToDense())
}

func TestCountVectorizer_UnseenTokensDroppedSilently(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{})
	vocab, err := cv.Fit(smallCorpus)
	req.NoError(err)

	m := cv.Transform(corpus.FromStrings([]string{"this is my second, yes"}), vocab)
	req.Equal(1, m.NumRows())
	req.Equal([]float64{0, 0, 0, 1, 0, 1, 0, 0, 1, 1}, m.Rows[0].ToDense())

	// The frozen vocabulary never grows.
	req.Equal(10, vocab.Size())
	_, ok := vocab.Index("my")
	req.False(ok)
}

func TestCountVectorizer_TransformIdempotent(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{})
	vocab, err := cv.Fit(smallCorpus)
	req.NoError(err)

	first := cv.Transform(smallCorpus, vocab)
	second := cv.Transform(smallCorpus, vocab)
	req.Equal(first, second)
}

func TestCountVectorizer_RefitReproducesIndices(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{})
	first, err := cv.Fit(smallCorpus)
	req.NoError(err)
	second, err := cv.Fit(smallCorpus)
	req.NoError(err)

	req.Equal(first.Terms, second.Terms)
	req.Equal(first.DocFreq, second.DocFreq)
}

func TestCountVectorizer_Binary(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{Binary: true})
	_, m, err := cv.FitTransform(smallCorpus)
	req.NoError(err)

	for _, row := range m.Rows {
		for _, v := range row.Values {
			req.Equal(1.0, v)
		}
	}
}

func TestCountVectorizer_MinDF(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{MinDF: 2})
	vocab, err := cv.Fit(corpus.FromStrings([]string{"hello world", "hello universe"}))
	req.NoError(err)

	req.Equal([]string{"hello"}, vocab.Terms)
}

func TestCountVectorizer_MaxDF(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{MaxDF: 1})
	vocab, err := cv.Fit(corpus.FromStrings([]string{"hello world", "hello universe"}))
	req.NoError(err)

	req.Equal([]string{"universe", "world"}, vocab.Terms)
}

func TestCountVectorizer_MaxFeatures(t *testing.T) {
	c := corpus.FromStrings([]string{"aa bb bb cc", "bb cc", "cc aa"})

	t.Run("keeps top terms by corpus frequency", func(t *testing.T) {
		req := require.New(t)
		cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{MaxFeatures: 2})
		vocab, err := cv.Fit(c)
		req.NoError(err)
		// bb and cc both occur 3 times, aa only twice.
		req.Equal([]string{"bb", "cc"}, vocab.Terms)
	})

	t.Run("breaks frequency ties lexicographically", func(t *testing.T) {
		req := require.New(t)
		cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{MaxFeatures: 1})
		vocab, err := cv.Fit(c)
		req.NoError(err)
		req.Equal([]string{"bb"}, vocab.Terms)
	})
}

func TestCountVectorizer_EmptyVocabulary(t *testing.T) {
	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{})

	t.Run("empty corpus", func(t *testing.T) {
		_, err := cv.Fit(corpus.Corpus{})
		require.ErrorIs(t, err, errors.ErrEmptyVocabulary)
	})

	t.Run("documents without tokens", func(t *testing.T) {
		_, err := cv.Fit(corpus.FromStrings([]string{"! ? .", "a b c"}))
		require.ErrorIs(t, err, errors.ErrEmptyVocabulary)
	})

	t.Run("filters too strict", func(t *testing.T) {
		strict := NewCountVectorizer(newTestTokenizer(t), CountOptions{MinDF: 10})
		_, err := strict.Fit(smallCorpus)
		require.ErrorIs(t, err, errors.ErrEmptyVocabulary)
	})
}

func TestCountVectorizer_Bigrams(t *testing.T) {
	req := require.New(t)

	opts := tokenize.DefaultOptions()
	opts.NgramMax = 2
	tok, err := tokenize.New(opts)
	req.NoError(err)

	cv := NewCountVectorizer(tok, CountOptions{})
	vocab, err := cv.Fit(corpus.FromStrings([]string{"this is fine", "this is"}))
	req.NoError(err)

	req.Equal([]string{"fine", "is", "is fine", "this", "this is"}, vocab.Terms)
}

func TestCountVectorizer_TransformCountedReportsDrops(t *testing.T) {
	req := require.New(t)

	cv := NewCountVectorizer(newTestTokenizer(t), CountOptions{})
	vocab, err := cv.Fit(smallCorpus)
	req.NoError(err)

	m, dropped := cv.TransformCounted(corpus.FromStrings([]string{"this is my second, yes"}), vocab)
	req.Equal(uint64(1), dropped)
	req.Equal(cv.Transform(corpus.FromStrings([]string{"this is my second, yes"}), vocab).ToDense(), m.ToDense())
}
