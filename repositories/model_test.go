package repositories

import (
	"log/slog"
	"testing"
	"time"

	"vector-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) ModelRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewModelRepository(db, slog.Default())
}

func testModel(fittedAt time.Time) Model {
	return Model{
		ID:       uuid.New(),
		FittedAt: fittedAt,
		Terms:    []string{"document", "first", "second"},
		DocFreq:  []int{3, 2, 1},
		NumDocs:  4,
		IDF:      []float64{1.1, 1.4, 1.9},
		Binary:   false,
		Pattern:  `\w\w+`,
		NgramMin: 1,
		NgramMax: 2,

		Stem:           true,
		StopWords:      true,
		MinTokenLength: 2,
		SublinearTF:    true,
		NoRowNorm:      true,
	}
}

func TestModelRepository_StoreAndGet(t *testing.T) {
	req := require.New(t)
	repo := newTestRepo(t)

	original := testModel(time.Now().UTC().Truncate(time.Millisecond))
	req.NoError(repo.Store(original))

	fetched, err := repo.Get(original.ID)
	req.NoError(err)
	req.Equal(original.ID, fetched.ID)
	req.Equal(original.Terms, fetched.Terms)
	req.Equal(original.DocFreq, fetched.DocFreq)
	req.Equal(original.NumDocs, fetched.NumDocs)
	req.Equal(original.IDF, fetched.IDF)
	req.Equal(original.Pattern, fetched.Pattern)
	req.True(fetched.Stem)
	req.True(fetched.StopWords)
	req.Equal(2, fetched.MinTokenLength)
	req.True(fetched.SublinearTF)
	req.True(fetched.NoRowNorm)
	req.True(original.FittedAt.Equal(fetched.FittedAt))
}

func TestModelRepository_CountModelHasNoIDF(t *testing.T) {
	req := require.New(t)
	repo := newTestRepo(t)

	model := testModel(time.Now().UTC())
	model.IDF = nil
	model.Binary = true
	req.NoError(repo.Store(model))

	fetched, err := repo.Get(model.ID)
	req.NoError(err)
	req.Nil(fetched.IDF)
	req.True(fetched.Binary)
}

func TestModelRepository_GetUnknown(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get(uuid.New())
	require.ErrorIs(t, err, errors.ErrModelNotFound)
}

func TestModelRepository_ListNewestFirst(t *testing.T) {
	req := require.New(t)
	repo := newTestRepo(t)

	now := time.Now().UTC()
	oldest := testModel(now.Add(-2 * time.Hour))
	middle := testModel(now.Add(-1 * time.Hour))
	newest := testModel(now)
	for _, m := range []Model{middle, newest, oldest} {
		req.NoError(repo.Store(m))
	}

	models, err := repo.List()
	req.NoError(err)
	req.Len(models, 3)
	req.Equal(newest.ID, models[0].ID)
	req.Equal(middle.ID, models[1].ID)
	req.Equal(oldest.ID, models[2].ID)
}

func TestModelRepository_Delete(t *testing.T) {
	req := require.New(t)
	repo := newTestRepo(t)

	model := testModel(time.Now().UTC())
	req.NoError(repo.Store(model))
	req.NoError(repo.Delete(model.ID))

	_, err := repo.Get(model.ID)
	req.ErrorIs(err, errors.ErrModelNotFound)

	req.ErrorIs(repo.Delete(model.ID), errors.ErrModelNotFound)
}

func TestModelRepository_StoreOverwrites(t *testing.T) {
	req := require.New(t)
	repo := newTestRepo(t)

	model := testModel(time.Now().UTC())
	req.NoError(repo.Store(model))

	model.Terms = []string{"replaced"}
	model.DocFreq = []int{1}
	req.NoError(repo.Store(model))

	fetched, err := repo.Get(model.ID)
	req.NoError(err)
	req.Equal([]string{"replaced"}, fetched.Terms)

	models, err := repo.List()
	req.NoError(err)
	req.Len(models, 1)
}
