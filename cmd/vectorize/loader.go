package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vector-lab/domain/corpus"
	"vector-lab/internal"

	"github.com/gabriel-vasile/mimetype"
)

// loadCorpus reads documents from the configured directory, or from
// stdin (one document per line) when no directory is set.
func loadCorpus(config internal.Config, logger *slog.Logger) (corpus.Corpus, error) {
	if config.CorpusDir == "" {
		return readStdin()
	}
	return readDir(config.CorpusDir, logger)
}

// readDir walks a directory and keeps only files that sniff as text.
// Binary files (images, archives, pdfs) are skipped, not failed on.
func readDir(dir string, logger *slog.Logger) (corpus.Corpus, error) {
	var docs corpus.Corpus
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			logger.Warn("Skipping unreadable file", "path", path, "error", err)
			return nil
		}
		if !strings.HasPrefix(mtype.String(), "text/") {
			logger.Debug("Skipping non-text file", "path", path, "mime", mtype.String())
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		docs = append(docs, corpus.Document(content))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading corpus dir %s: %w", dir, err)
	}
	logger.Info("Corpus loaded", "dir", dir, "documents", len(docs))
	return docs, nil
}

func readStdin() (corpus.Corpus, error) {
	var docs corpus.Corpus
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			docs = append(docs, corpus.Document(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return docs, nil
}
