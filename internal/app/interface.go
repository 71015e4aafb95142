package app

// Catalog holds the vocabulary and phrase entries of one language pair.
// Entries are appended during setup and only read afterwards.
type Catalog interface {
	AddVocabulary(VocabularyEntry)
	AddPhrase(PhraseEntry)

	// Returns the vocabulary entry after the current one, wrapping around
	// to the first entry past the end. Fails with ErrEmptyCatalog.
	NextVocabulary() (VocabularyEntry, error)

	// Returns an independently drawn phrase. Fails with ErrEmptyCatalog.
	RandomPhrase() (PhraseEntry, error)
}
