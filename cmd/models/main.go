package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"vector-lab/internal"
	"vector-lab/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// models lists the fitted vectorizer models stored in BadgerDB.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening while another process holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromString(config.LogLevel)
	repo := repositories.NewModelRepository(db, logger)

	models, err := repo.List()
	if err != nil {
		log.Fatalf("Failed to list models: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Fitted At", "Terms", "Docs", "Weighted", "Ngrams", "Binary"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, m := range models {
		table.Append([]string{
			m.ID.String(),
			m.FittedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(len(m.Terms)),
			strconv.Itoa(m.NumDocs),
			strconv.FormatBool(m.IDF != nil),
			fmt.Sprintf("(%d,%d)", m.NgramMin, m.NgramMax),
			strconv.FormatBool(m.Binary),
		})
	}
	table.Render()
	fmt.Printf("%d model(s)\n", len(models))
}
