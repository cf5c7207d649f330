//go:generate go run go.uber.org/mock/mockgen -source=model.go -destination=../mocks/mock_model_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"vector-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IModelRepository interface {
	Store(model Model) error
	Get(id uuid.UUID) (Model, error)
	List() ([]Model, error)
	Delete(id uuid.UUID) error
}

// Model is the persisted snapshot of a fitted vectorizer: the frozen
// vocabulary, its fit-time document frequencies, the idf vector for
// TF-IDF models (nil for plain count models) and the full analyzer and
// weighting settings needed to reproduce the fit-time analysis.
type Model struct {
	ID       uuid.UUID `json:"id"`
	FittedAt time.Time `json:"fitted_at"`

	Terms   []string `json:"terms"`
	DocFreq []int    `json:"doc_freq"`
	NumDocs int      `json:"num_docs"`

	IDF    []float64 `json:"idf,omitempty"`
	Binary bool      `json:"binary"`

	Pattern  string `json:"pattern"`
	NgramMin int    `json:"ngram_min"`
	NgramMax int    `json:"ngram_max"`

	KeepCase bool `json:"keep_case,omitempty"`
	Unicode  bool `json:"unicode,omitempty"`
	// StopWords records that the default English stop-word list ran at
	// fit time; the list itself is versioned with the code.
	StopWords      bool `json:"stop_words,omitempty"`
	Stem           bool `json:"stem,omitempty"`
	MinTokenLength int  `json:"min_token_length,omitempty"`

	SublinearTF bool `json:"sublinear_tf,omitempty"`
	NoRowNorm   bool `json:"no_row_norm,omitempty"`
}

type ModelRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewModelRepository(db *badger.DB, log *slog.Logger) ModelRepository {
	return ModelRepository{db: db, log: log}
}

func modelKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("model:%s", id))
}

// Store persists a model snapshot as a single JSON blob keyed by its id.
func (r ModelRepository) Store(model Model) error {
	bytes, err := json.Marshal(model)
	if err != nil {
		return err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(modelKey(model.ID), bytes)
	})
	if err != nil {
		return err
	}
	r.log.Debug("Model stored", "id", model.ID, "terms", len(model.Terms))
	return nil
}

func (r ModelRepository) Get(id uuid.UUID) (Model, error) {
	var model Model
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(modelKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &model)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return Model{}, errors.ErrModelNotFound
	}
	if err != nil {
		return Model{}, err
	}
	return model, nil
}

// List returns all stored models, most recently fitted first.
func (r ModelRepository) List() ([]Model, error) {
	var models []Model
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("model:")
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var model Model
				if err := json.Unmarshal(value, &model); err != nil {
					return err
				}
				models = append(models, model)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].FittedAt.After(models[j].FittedAt)
	})
	return models, nil
}

func (r ModelRepository) Delete(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(modelKey(id)); stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrModelNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(modelKey(id))
	})
}
