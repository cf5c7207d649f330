package internal

import (
	"strings"
	"time"

	"vector-lab/tokenize"
	"vector-lab/vectorizer"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	// CorpusDir points at a directory of text files; empty means the
	// corpus is read from stdin, one document per line.
	CorpusDir string `env:"CORPUS_DIR"`

	NgramMin    int  `env:"NGRAM_MIN,default=1" validate:"min=1"`
	NgramMax    int  `env:"NGRAM_MAX,default=1" validate:"min=1"`
	MinDF       int  `env:"MIN_DF,default=1" validate:"min=1"`
	MaxDF       int  `env:"MAX_DF,default=0" validate:"min=0"`
	MaxFeatures int  `env:"MAX_FEATURES,default=0" validate:"min=0"`
	Binary      bool `env:"BINARY,default=false"`

	Tfidf          bool `env:"TFIDF,default=true"`
	SublinearTF    bool `env:"SUBLINEAR_TF,default=false"`
	NoIDFSmoothing bool `env:"NO_IDF_SMOOTHING,default=false"`
	NoRowNorm      bool `env:"NO_ROW_NORM,default=false"`

	StopWords        bool `env:"STOP_WORDS,default=false"`
	Stem             bool `env:"STEM,default=false"`
	UnicodeSegmenter bool `env:"UNICODE_SEGMENTER,default=false"`
	// ScrubPhrases lists boilerplate phrases to blank out of every
	// document before tokenization, comma separated.
	ScrubPhrases string `env:"SCRUB_PHRASES"`

	MetricInterval time.Duration `env:"METRIC_INTERVAL,default=5s"`
	TopTerms       int           `env:"TOP_TERMS,default=15" validate:"min=1"`
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

func (c Config) ScrubPhraseList() []string {
	if strings.TrimSpace(c.ScrubPhrases) == "" {
		return nil
	}
	parts := strings.Split(c.ScrubPhrases, ",")
	phrases := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	return phrases
}

func (c Config) TokenizerOptions() tokenize.Options {
	opts := tokenize.DefaultOptions()
	opts.NgramMin = c.NgramMin
	opts.NgramMax = c.NgramMax
	if c.UnicodeSegmenter {
		opts.Segmenter = tokenize.SegmenterUnicode
		opts.Filters = append(opts.Filters, tokenize.NewMinLengthFilter(2))
	}
	if c.StopWords {
		opts.Filters = append(opts.Filters, tokenize.NewStopWordFilter(tokenize.EnglishStopWords()))
	}
	if c.Stem {
		opts.Filters = append(opts.Filters, tokenize.StemFilter{})
	}
	return opts
}

func (c Config) CountOptions() vectorizer.CountOptions {
	return vectorizer.CountOptions{
		MinDF:       c.MinDF,
		MaxDF:       c.MaxDF,
		MaxFeatures: c.MaxFeatures,
		Binary:      c.Binary,
	}
}

func (c Config) TfidfOptions() *vectorizer.TfidfOptions {
	if !c.Tfidf {
		return nil
	}
	opts := vectorizer.DefaultTfidfOptions()
	opts.SmoothIDF = !c.NoIDFSmoothing
	opts.SublinearTF = c.SublinearTF
	if c.NoRowNorm {
		opts.Norm = vectorizer.NormNone
	}
	return &opts
}
