package catalog

import (
	"fmt"
	"langtrainer/internal/app"
)

var SampleLanguages = app.LanguagePair{
	Source: "en",
	Target: "es",
}

// Fills c with the built-in English to Spanish sample set.
func Sample(c app.Catalog) {
	for _, entry := range sampleVocabulary {
		c.AddVocabulary(entry)
	}

	for _, entry := range samplePhrases {
		c.AddPhrase(entry)
	}
}

// The sample is built at package init, so a broken entry panics on startup.
func word(text, translation, picture, category string) app.VocabularyEntry {
	return must(app.NewVocabularyEntry(text, translation, picture, category))
}

func phrase(text, translation, audioClip string) app.PhraseEntry {
	return must(app.NewPhraseEntry(text, translation, audioClip))
}

func must[T app.LearningItem](entry T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("sample entry %q: %v", entry.Base().Text, err))
	}

	return entry
}

var sampleVocabulary = []app.VocabularyEntry{
	word("cat", "gato", "cat.jpg", "animals"),
	word("dog", "perro", "dog.jpg", "animals"),
	word("apple", "manzana", "apple.jpg", "food"),
	word("banana", "plátano", "banana.jpg", "food"),
	word("orange", "naranja", "orange.jpg", "food"),
}

var samplePhrases = []app.PhraseEntry{
	phrase("¿Cómo te llamas?", "What is your name?", "name.wav"),
	phrase("Me gusta la pizza.", "I like pizza.", "pizza.wav"),
	phrase("¿Qué tal?", "How are you?", "howareyou.wav"),
}
