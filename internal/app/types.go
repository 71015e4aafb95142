package app

// Kind tells which shape a LearningItem has.
type Kind int

const (
	KindWord Kind = iota
	KindPhrase
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindPhrase:
		return "phrase"
	}

	return "unknown"
}

// Entry is the pair shared by every word and phrase: the source-language
// text and its translation.
type Entry struct {
	Text, Translation string
}

func (e Entry) Validate() error {
	if e.Text == "" || e.Translation == "" {
		return ErrEmptyText
	}

	return nil
}

type VocabularyEntry struct {
	Entry
	Picture  string
	Category string
}

type PhraseEntry struct {
	Entry
	AudioClip string
}

// LearningItem is implemented only by VocabularyEntry and PhraseEntry.
// Use a type switch to get to the variant fields.
type LearningItem interface {
	Base() Entry
	Kind() Kind

	learningItem()
}

var (
	_ LearningItem = VocabularyEntry{}
	_ LearningItem = PhraseEntry{}
)

func (v VocabularyEntry) Base() Entry { return v.Entry }
func (v VocabularyEntry) Kind() Kind  { return KindWord }
func (VocabularyEntry) learningItem() {}

func (p PhraseEntry) Base() Entry { return p.Entry }
func (p PhraseEntry) Kind() Kind  { return KindPhrase }
func (PhraseEntry) learningItem() {}

func NewVocabularyEntry(text, translation, picture, category string) (VocabularyEntry, error) {
	res := VocabularyEntry{
		Entry: Entry{
			Text:        text,
			Translation: translation,
		},
		Picture:  picture,
		Category: category,
	}

	return res, res.Validate()
}

func NewPhraseEntry(text, translation, audioClip string) (PhraseEntry, error) {
	res := PhraseEntry{
		Entry: Entry{
			Text:        text,
			Translation: translation,
		},
		AudioClip: audioClip,
	}

	return res, res.Validate()
}

// Language is an ISO-style language code, e.g. "en".
type Language string

// LanguagePair describes which language the entries are written in (Source)
// and which one the translations use (Target).
type LanguagePair struct {
	Source, Target Language
}

func (lp LanguagePair) String() string {
	return string(lp.Source) + " -> " + string(lp.Target)
}
