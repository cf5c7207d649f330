package services

import (
	"log/slog"
	"time"

	"vector-lab/domain/corpus"
	"vector-lab/errors"
	"vector-lab/observability"
	"vector-lab/repositories"
	"vector-lab/tokenize"
	"vector-lab/vectorizer"

	"github.com/google/uuid"
)

type IVectorizerService interface {
	Fit(c corpus.Corpus) (FitResult, error)
	Transform(modelID uuid.UUID, c corpus.Corpus) (vectorizer.SparseMatrix, error)
}

// FitResult reports the outcome of fitting one corpus: the persisted
// model id, the frozen vocabulary and the training-corpus matrix.
type FitResult struct {
	ModelID    uuid.UUID
	Vocabulary vectorizer.Vocabulary
	Matrix     vectorizer.SparseMatrix
}

// VectorizerService orchestrates the pipeline: tokenize, fit, weight,
// persist the model, and transform fresh corpora against stored models.
type VectorizerService struct {
	repo    repositories.IModelRepository
	log     *slog.Logger
	monitor *observability.MonitoringManager

	tokOpts   tokenize.Options
	countOpts vectorizer.CountOptions
	// tfidfOpts selects TF-IDF weighting; nil keeps raw counts.
	tfidfOpts *vectorizer.TfidfOptions
}

func NewVectorizerService(
	repo repositories.IModelRepository,
	log *slog.Logger,
	monitor *observability.MonitoringManager,
	tokOpts tokenize.Options,
	countOpts vectorizer.CountOptions,
	tfidfOpts *vectorizer.TfidfOptions,
) *VectorizerService {
	return &VectorizerService{
		repo:      repo,
		log:       log,
		monitor:   monitor,
		tokOpts:   tokOpts,
		countOpts: countOpts,
		tfidfOpts: tfidfOpts,
	}
}

// Fit builds the vocabulary from the corpus, transforms the corpus,
// persists the resulting model and returns it all to the caller.
func (s *VectorizerService) Fit(c corpus.Corpus) (FitResult, error) {
	if len(c) == 0 {
		return FitResult{}, errors.ErrEmptyCorpus
	}

	tok, err := tokenize.New(s.tokOpts)
	if err != nil {
		return FitResult{}, err
	}
	cv := vectorizer.NewCountVectorizer(tok, s.countOpts)

	vocab, err := cv.Fit(c)
	if err != nil {
		return FitResult{}, err
	}
	counts, unknown := cv.TransformCounted(c, vocab)

	model := s.snapshotModel(vocab)

	matrix := counts
	if s.tfidfOpts != nil {
		transformer := vectorizer.NewTfidfTransformer(*s.tfidfOpts)
		if err := transformer.Fit(vocab.DocFreq, vocab.NumDocs); err != nil {
			return FitResult{}, err
		}
		if matrix, err = transformer.Transform(counts); err != nil {
			return FitResult{}, err
		}
		model.IDF = transformer.IDF()
		model.SublinearTF = s.tfidfOpts.SublinearTF
		model.NoRowNorm = s.tfidfOpts.Norm == vectorizer.NormNone
	}

	if err := s.repo.Store(model); err != nil {
		return FitResult{}, err
	}

	s.recordTransform(c, counts, unknown)
	s.monitor.IncrFitsCompleted()
	s.monitor.SetVocabularySize(vocab.Size())
	s.log.Info("Vectorizer fitted",
		"model_id", model.ID,
		"documents", len(c),
		"vocabulary", vocab.Size(),
		"weighted", s.tfidfOpts != nil,
	)

	return FitResult{ModelID: model.ID, Vocabulary: vocab, Matrix: matrix}, nil
}

// Transform vectorizes a corpus against a previously stored model. The
// tokenizer is rebuilt from the model snapshot so the analysis matches
// the fit exactly, whatever the service is currently configured with.
func (s *VectorizerService) Transform(modelID uuid.UUID, c corpus.Corpus) (vectorizer.SparseMatrix, error) {
	if len(c) == 0 {
		return vectorizer.SparseMatrix{}, errors.ErrEmptyCorpus
	}

	model, err := s.repo.Get(modelID)
	if err != nil {
		return vectorizer.SparseMatrix{}, err
	}

	tok, err := tokenize.New(analyzerOptions(model))
	if err != nil {
		return vectorizer.SparseMatrix{}, err
	}

	cv := vectorizer.NewCountVectorizer(tok, vectorizer.CountOptions{Binary: model.Binary})
	vocab := vectorizer.RestoreVocabulary(model.Terms, model.DocFreq, model.NumDocs)
	counts, unknown := cv.TransformCounted(c, vocab)
	s.recordTransform(c, counts, unknown)

	if model.IDF == nil {
		return counts, nil
	}

	opts := vectorizer.TfidfOptions{SublinearTF: model.SublinearTF}
	if model.NoRowNorm {
		opts.Norm = vectorizer.NormNone
	}
	return vectorizer.RestoreTfidfTransformer(model.IDF, opts).Transform(counts)
}

// snapshotModel freezes the vocabulary together with every analyzer
// setting needed to rebuild the fit-time tokenizer later.
func (s *VectorizerService) snapshotModel(vocab vectorizer.Vocabulary) repositories.Model {
	model := repositories.Model{
		ID:       uuid.New(),
		FittedAt: time.Now().UTC(),
		Terms:    vocab.Terms,
		DocFreq:  vocab.DocFreq,
		NumDocs:  vocab.NumDocs,
		Binary:   s.countOpts.Binary,
		Pattern:  s.tokOpts.Pattern,
		NgramMin: s.tokOpts.NgramMin,
		NgramMax: s.tokOpts.NgramMax,
		KeepCase: s.tokOpts.KeepCase,
		Unicode:  s.tokOpts.Segmenter == tokenize.SegmenterUnicode,
	}
	for _, f := range s.tokOpts.Filters {
		switch f := f.(type) {
		case tokenize.StopWordFilter:
			model.StopWords = true
		case tokenize.MinLengthFilter:
			model.MinTokenLength = f.Min()
		case tokenize.StemFilter:
			model.Stem = true
		}
	}
	return model
}

// analyzerOptions rebuilds the fit-time tokenizer configuration from a
// stored model, filter order matching the fit.
func analyzerOptions(model repositories.Model) tokenize.Options {
	opts := tokenize.Options{
		Pattern:  model.Pattern,
		KeepCase: model.KeepCase,
		NgramMin: model.NgramMin,
		NgramMax: model.NgramMax,
	}
	if model.Unicode {
		opts.Segmenter = tokenize.SegmenterUnicode
	}
	if model.MinTokenLength > 0 {
		opts.Filters = append(opts.Filters, tokenize.NewMinLengthFilter(model.MinTokenLength))
	}
	if model.StopWords {
		opts.Filters = append(opts.Filters, tokenize.NewStopWordFilter(tokenize.EnglishStopWords()))
	}
	if model.Stem {
		opts.Filters = append(opts.Filters, tokenize.StemFilter{})
	}
	return opts
}

func (s *VectorizerService) recordTransform(c corpus.Corpus, counts vectorizer.SparseMatrix, unknown uint64) {
	// Binary models undercount repeated tokens here; close enough for
	// throughput monitoring.
	var recognized float64
	for _, row := range counts.Rows {
		for _, v := range row.Values {
			recognized += v
		}
	}

	s.monitor.AddDocsVectorized(uint64(len(c)))
	s.monitor.AddTokensSeen(uint64(recognized) + unknown)
	s.monitor.AddUnknownDropped(unknown)
}
