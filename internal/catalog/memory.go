package catalog

import (
	"fmt"
	"langtrainer/internal/app"
	"langtrainer/internal/random"
)

type indexSource interface {
	Index(n int) (int, error)
}

// Memory is the in-memory implementation of app.Catalog.
// Vocabulary is walked with a cursor (cyclic), phrases are sampled uniformly.
type Memory struct {
	languages app.LanguagePair

	vocabulary []app.VocabularyEntry
	phrases    []app.PhraseEntry

	// Index of the last returned vocabulary entry; -1 before the first call.
	currentIndex int

	phraseSelector indexSource
}

var _ app.Catalog = (*Memory)(nil)

type Option func(*Memory)

// Replaces the crypto-seeded source used by RandomPhrase.
func WithIndexSource(source indexSource) Option {
	return func(m *Memory) {
		m.phraseSelector = source
	}
}

func New(languages app.LanguagePair, options ...Option) (*Memory, error) {
	res := &Memory{
		languages:    languages,
		vocabulary:   []app.VocabularyEntry{},
		phrases:      []app.PhraseEntry{},
		currentIndex: -1,
	}

	for _, option := range options {
		option(res)
	}

	if res.phraseSelector == nil {
		uniform, err := random.NewSeededUniform()

		if err != nil {
			return nil, err
		}

		res.phraseSelector = uniform
	}

	return res, nil
}

func (m *Memory) Languages() app.LanguagePair {
	return m.languages
}

func (m *Memory) AddVocabulary(entry app.VocabularyEntry) {
	m.vocabulary = append(m.vocabulary, entry)
}

func (m *Memory) AddPhrase(entry app.PhraseEntry) {
	m.phrases = append(m.phrases, entry)
}

func (m *Memory) NextVocabulary() (app.VocabularyEntry, error) {
	if len(m.vocabulary) <= 0 {
		return app.VocabularyEntry{}, fmt.Errorf("vocabulary: %w", app.ErrEmptyCatalog)
	}

	m.currentIndex++

	if m.currentIndex >= len(m.vocabulary) {
		m.currentIndex = 0
	}

	return m.vocabulary[m.currentIndex], nil
}

func (m *Memory) RandomPhrase() (app.PhraseEntry, error) {
	if len(m.phrases) <= 0 {
		return app.PhraseEntry{}, fmt.Errorf("phrases: %w", app.ErrEmptyCatalog)
	}

	i, err := m.phraseSelector.Index(len(m.phrases))

	if err != nil {
		return app.PhraseEntry{}, err
	}

	return m.phrases[i], nil
}

// Reports ErrEmptyCatalog when either sequence has no entries.
// The menu loop must not start on such a catalog.
func (m *Memory) Ready() error {
	if len(m.vocabulary) <= 0 {
		return fmt.Errorf("vocabulary: %w", app.ErrEmptyCatalog)
	}

	if len(m.phrases) <= 0 {
		return fmt.Errorf("phrases: %w", app.ErrEmptyCatalog)
	}

	return nil
}

func (m *Memory) Counts() (vocabulary, phrases int) {
	return len(m.vocabulary), len(m.phrases)
}

// Returns copies of both sequences; used by exporters.
func (m *Memory) Entries() ([]app.VocabularyEntry, []app.PhraseEntry) {
	vocabulary := make([]app.VocabularyEntry, len(m.vocabulary))
	phrases := make([]app.PhraseEntry, len(m.phrases))

	copy(vocabulary, m.vocabulary)
	copy(phrases, m.phrases)

	return vocabulary, phrases
}
