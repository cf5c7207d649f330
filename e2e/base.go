package e2e

import (
	"log/slog"
	"os"

	"vector-lab/domain/corpus"
	"vector-lab/observability"
	"vector-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/suite"
)

// BasePipelineSuite wires a real badger store and repository for
// scenario tests. Each suite run gets its own database directory.
type BasePipelineSuite struct {
	suite.Suite

	Config  Config
	Log     *slog.Logger
	DB      *badger.DB
	Repo    repositories.ModelRepository
	Monitor *observability.MonitoringManager
}

func (s *BasePipelineSuite) SetupSuite() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.Config = cfg

	s.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.DB = db

	s.Repo = repositories.NewModelRepository(db, s.Log)
	s.Monitor = observability.NewMonitoringManager(s.Log)
}

func (s *BasePipelineSuite) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}

// FixtureCorpus returns the corpus under E2E_CORPUS_DIR when set,
// otherwise the built-in training documents.
func (s *BasePipelineSuite) FixtureCorpus() corpus.Corpus {
	if s.Config.CorpusDir == "" {
		return corpus.FromStrings([]string{
			"This is the first document.",
			"This is the second second document.",
			"And the third one. Yes, yes, yes this",
			"Is this the first document?",
		})
	}

	entries, err := os.ReadDir(s.Config.CorpusDir)
	s.Require().NoError(err)

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(s.Config.CorpusDir + "/" + entry.Name())
		s.Require().NoError(err)
		docs = append(docs, string(data))
	}
	s.Require().NotEmpty(docs, "corpus directory %s holds no documents", s.Config.CorpusDir)
	return corpus.FromStrings(docs)
}
