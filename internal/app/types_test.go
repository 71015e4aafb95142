package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntriesValidate(t *testing.T) {
	_, err := NewVocabularyEntry("cat", "gato", "cat.jpg", "animals")
	require.NoError(t, err)

	_, err = NewPhraseEntry("¿Qué tal?", "How are you?", "howareyou.wav")
	require.NoError(t, err)

	_, err = NewVocabularyEntry("", "gato", "cat.jpg", "animals")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = NewPhraseEntry("¿Qué tal?", "", "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestLearningItemVariants(t *testing.T) {
	word, err := NewVocabularyEntry("dog", "perro", "dog.jpg", "animals")
	require.NoError(t, err)

	phrase, err := NewPhraseEntry("Me gusta la pizza.", "I like pizza.", "pizza.wav")
	require.NoError(t, err)

	items := []LearningItem{word, phrase}

	for _, item := range items {
		switch v := item.(type) {
		case VocabularyEntry:
			assert.Equal(t, KindWord, v.Kind())
			assert.Equal(t, "dog.jpg", v.Picture)
		case PhraseEntry:
			assert.Equal(t, KindPhrase, v.Kind())
			assert.Equal(t, "pizza.wav", v.AudioClip)
		default:
			t.Fatalf("unexpected item type %T", item)
		}
	}

	assert.Equal(t, "perro", items[0].Base().Translation)
	assert.Equal(t, "I like pizza.", items[1].Base().Translation)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "word", KindWord.String())
	assert.Equal(t, "phrase", KindPhrase.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
