package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_CORPUS_DIR optionally points the scenario at a real corpus
	// directory instead of the built-in fixture documents.
	CorpusDir string `envconfig:"E2E_CORPUS_DIR"`
	// E2E_DEBUG_MATRIX dumps the full dense matrix when a check fails
	DebugMatrix bool `envconfig:"E2E_DEBUG_MATRIX" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
