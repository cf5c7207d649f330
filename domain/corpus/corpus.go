package corpus

import "github.com/samber/lo"

// Document is an immutable piece of raw text.
type Document string

// Corpus is an ordered, index-addressable collection of documents.
// Document order is significant: the row order of any matrix produced
// from a corpus follows it.
type Corpus []Document

func FromStrings(docs []string) Corpus {
	return lo.Map(docs, func(d string, _ int) Document { return Document(d) })
}

func (c Corpus) Strings() []string {
	return lo.Map(c, func(d Document, _ int) string { return string(d) })
}

func (c Corpus) Len() int {
	return len(c)
}

// Bunch is a labelled dataset: documents paired with integer labels and
// the human-readable names those labels index into.
type Bunch struct {
	Documents  Corpus
	Labels     []int
	LabelNames []string
}

// LabelName resolves the name of the label assigned to document i.
// It returns an empty string when the label is out of range.
func (b Bunch) LabelName(i int) string {
	if i < 0 || i >= len(b.Labels) {
		return ""
	}
	label := b.Labels[i]
	if label < 0 || label >= len(b.LabelNames) {
		return ""
	}
	return b.LabelNames[label]
}
