package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"vector-lab/domain/corpus"
	"vector-lab/internal"
	"vector-lab/observability"
	"vector-lab/repositories"
	"vector-lab/scrub"
	"vector-lab/services"
	"vector-lab/tokenize"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vectorize terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components and centralizes error reporting, so
// defers execute before the process exits and the wiring stays testable.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Monitoring
	monitor := observability.NewMonitoringManager(logger)
	go monitor.Listen(ctx, config.MetricInterval)

	// 5. Corpus loading (cmd-level glue; the core never touches disk)
	docs, err := loadCorpus(config, logger)
	if err != nil {
		return exitRuntime, err
	}

	if phrases := config.ScrubPhraseList(); len(phrases) > 0 {
		scrubber, err := scrub.NewScrubber(phrases)
		if err != nil {
			return exitConfig, fmt.Errorf("scrub phrases: %w", err)
		}
		docs = scrubCorpus(docs, &scrubber, logger)
	}

	// 6. Services
	tok, err := tokenize.New(config.TokenizerOptions())
	if err != nil {
		return exitConfig, err
	}
	corpusService := services.NewCorpusService(tok, logger, config.TopTerms)
	repo := repositories.NewModelRepository(db, logger)
	vectorizerService := services.NewVectorizerService(
		repo, logger, monitor,
		config.TokenizerOptions(), config.CountOptions(), config.TfidfOptions(),
	)

	// 7. Profile, fit, report
	profile, err := corpusService.Profile(docs)
	if err != nil {
		return exitRuntime, err
	}
	printProfile(profile)

	result, err := vectorizerService.Fit(docs)
	if err != nil {
		return exitRuntime, fmt.Errorf("fit failed: %w", err)
	}
	printFitResult(result)

	stats := monitor.GetLatest()
	logger.Info("Pipeline finished",
		"model_id", result.ModelID,
		"docs", stats.DocsVectorized,
		"tokens", stats.TokensSeen,
		"dropped", stats.UnknownDropped,
	)
	return exitOK, nil
}

func scrubCorpus(docs corpus.Corpus, scrubber *scrub.Scrubber, logger *slog.Logger) corpus.Corpus {
	out := make(corpus.Corpus, len(docs))
	for i, doc := range docs {
		cleaned, found := scrubber.Scrub(string(doc))
		if len(found) > 0 {
			logger.Debug("Scrubbed boilerplate", "document", i, "phrases", found)
		}
		out[i] = corpus.Document(cleaned)
	}
	return out
}

func printProfile(profile services.CorpusProfile) {
	color.Green.Println("Corpus profile")
	fmt.Printf("  documents: %d  tokens: %d  distinct terms: %d\n",
		profile.Documents, profile.Tokens, profile.DistinctTerms)

	langs := make([]string, 0, len(profile.Languages))
	for lang, count := range profile.Languages {
		langs = append(langs, fmt.Sprintf("%s:%d", lang, count))
	}
	fmt.Printf("  languages: %s\n", strings.Join(langs, " "))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Term", "Count"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, tc := range profile.TopTerms {
		table.Append([]string{tc.Term, strconv.Itoa(tc.Count)})
	}
	table.Render()
}

func printFitResult(result services.FitResult) {
	color.Cyan.Println("Fit result")
	fmt.Printf("  model: %s\n", result.ModelID)
	fmt.Printf("  vocabulary: %d terms, matrix %dx%d (%d non-zero)\n",
		result.Vocabulary.Size(),
		result.Matrix.NumRows(), result.Matrix.NumCols(), result.Matrix.Nnz(),
	)
}
