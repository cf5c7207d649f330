package errors

import "fmt"

var (
	ErrEmptyCorpus           = fmt.Errorf("corpus contains no documents")
	ErrEmptyVocabulary       = fmt.Errorf("no terms survived vocabulary filtering")
	ErrZeroDocumentFrequency = fmt.Errorf("unsmoothed idf requested for a term with zero document frequency")
	ErrInvalidNgramRange     = fmt.Errorf("ngram range lower bound exceeds upper bound")
	ErrNotFitted             = fmt.Errorf("transformer has not been fitted")
	ErrModelNotFound         = fmt.Errorf("model not found")
	ErrShapeMismatch         = fmt.Errorf("matrix column count does not match fitted vocabulary size")
)
