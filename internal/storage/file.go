package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"langtrainer/internal/app"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

var ErrNothingStored = errors.New("no catalog stored")

type File struct {
	db *sql.DB
}

// Opens or creates an sqlite database by given file path.
// If filePath argument doesn't include extention, it will be added.
func Open(ctx context.Context, filePath string) (*File, error) {
	if !strings.HasSuffix(filePath, FILE_EXTENTION) {
		filePath += FILE_EXTENTION
	}

	db, err := sql.Open("sqlite3", filePath)

	if err != nil {
		return nil, err
	}

	initRequestText := `
		CREATE TABLE IF NOT EXISTS VOCABULARY
		(
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			TEXT TEXT NOT NULL,
			TRANSLATION TEXT NOT NULL,
			PICTURE TEXT NOT NULL,
			CATEGORY TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS PHRASES
		(
			ID INTEGER PRIMARY KEY AUTOINCREMENT,
			TEXT TEXT NOT NULL,
			TRANSLATION TEXT NOT NULL,
			AUDIO_CLIP TEXT NOT NULL
		);
	`

	_, err = db.ExecContext(ctx, initRequestText)

	if err != nil {
		db.Close()

		return nil, err
	}

	res := &File{
		db: db,
	}

	return res, nil
}

// Replaces everything stored with the given entries.
func (s *File) SaveCatalog(ctx context.Context, vocabulary []app.VocabularyEntry, phrases []app.PhraseEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)

	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM VOCABULARY; DELETE FROM PHRASES;`)

	if err != nil {
		return errors.Join(err, tx.Rollback())
	}

	preparedRequest, err := tx.PrepareContext(ctx, `
		INSERT INTO VOCABULARY (TEXT, TRANSLATION, PICTURE, CATEGORY) VALUES
		(?, ?, ?, ?)
	`)

	if err != nil {
		return errors.Join(err, tx.Rollback())
	}

	defer preparedRequest.Close()

	for _, entry := range vocabulary {
		_, err = preparedRequest.ExecContext(ctx, entry.Text, entry.Translation, entry.Picture, entry.Category)

		if err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}

	preparedPhraseRequest, err := tx.PrepareContext(ctx, `
		INSERT INTO PHRASES (TEXT, TRANSLATION, AUDIO_CLIP) VALUES
		(?, ?, ?)
	`)

	if err != nil {
		return errors.Join(err, tx.Rollback())
	}

	defer preparedPhraseRequest.Close()

	for _, entry := range phrases {
		_, err = preparedPhraseRequest.ExecContext(ctx, entry.Text, entry.Translation, entry.AudioClip)

		if err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}

	return tx.Commit()
}

// Appends stored entries to c in the order they were saved.
// Returns ErrNothingStored when both tables are empty.
func (s *File) LoadCatalog(ctx context.Context, c app.Catalog) error {
	vocabularyCount, err := s.loadVocabulary(ctx, c)

	if err != nil {
		return err
	}

	phrasesCount, err := s.loadPhrases(ctx, c)

	if err != nil {
		return err
	}

	if vocabularyCount+phrasesCount <= 0 {
		return ErrNothingStored
	}

	return nil
}

func (s *File) loadVocabulary(ctx context.Context, c app.Catalog) (int, error) {
	query, err := s.db.QueryContext(ctx, `
		SELECT TEXT, TRANSLATION, PICTURE, CATEGORY
		FROM VOCABULARY
		ORDER BY ID
	`)

	if err != nil {
		return 0, err
	}

	defer query.Close()

	var (
		count                                int
		text, translation, picture, category string
	)

	for query.Next() {
		err = query.Scan(&text, &translation, &picture, &category)

		if err != nil {
			return count, err
		}

		entry, err := app.NewVocabularyEntry(text, translation, picture, category)

		if err != nil {
			return count, fmt.Errorf("vocabulary %q: %w", text, err)
		}

		c.AddVocabulary(entry)

		count++
	}

	return count, query.Err()
}

func (s *File) loadPhrases(ctx context.Context, c app.Catalog) (int, error) {
	query, err := s.db.QueryContext(ctx, `
		SELECT TEXT, TRANSLATION, AUDIO_CLIP
		FROM PHRASES
		ORDER BY ID
	`)

	if err != nil {
		return 0, err
	}

	defer query.Close()

	var (
		count                        int
		text, translation, audioClip string
	)

	for query.Next() {
		err = query.Scan(&text, &translation, &audioClip)

		if err != nil {
			return count, err
		}

		entry, err := app.NewPhraseEntry(text, translation, audioClip)

		if err != nil {
			return count, fmt.Errorf("phrase %q: %w", text, err)
		}

		c.AddPhrase(entry)

		count++
	}

	return count, query.Err()
}

func (s *File) Close() error {
	return s.db.Close()
}
