package workbook

import (
	"errors"
	"fmt"
	"langtrainer/internal/app"
	"slices"

	"github.com/xuri/excelize/v2"
)

const (
	// Columns: text, translation, picture, category.
	VOCABULARY_SHEET = "Vocabulary"

	// Columns: text, translation, audio clip.
	PHRASES_SHEET = "Phrases"
)

var ErrSheetNotFound = errors.New("sheet not found")

// Appends the entries of an .xlsx file to c. Both sheets are required and
// have no header row. Rows with fewer than two columns are skipped.
func Load(path string, c app.Catalog) error {
	file, err := excelize.OpenFile(path)

	if err != nil {
		return err
	}

	defer file.Close()

	err = forEachRow(file, VOCABULARY_SHEET, func(cols []string) error {
		entry, err := app.NewVocabularyEntry(cols[0], cols[1], cols[2], cols[3])

		if err != nil {
			return err
		}

		c.AddVocabulary(entry)

		return nil
	})

	if err != nil {
		return err
	}

	return forEachRow(file, PHRASES_SHEET, func(cols []string) error {
		entry, err := app.NewPhraseEntry(cols[0], cols[1], cols[2])

		if err != nil {
			return err
		}

		c.AddPhrase(entry)

		return nil
	})
}

// Calls fn for each row with at least two columns. cols always has
// four elements; missing trailing cells are empty strings.
func forEachRow(file *excelize.File, sheet string, fn func(cols []string) error) error {
	if !slices.Contains(file.GetSheetList(), sheet) {
		return fmt.Errorf("%q: %w", sheet, ErrSheetNotFound)
	}

	rows, err := file.Rows(sheet)

	if err != nil {
		return err
	}

	defer rows.Close()

	rowNumber := 0

	for rows.Next() {
		rowNumber++

		cols, err := rows.Columns()

		if err != nil {
			return err
		}

		if len(cols) < 2 {
			continue
		}

		padded := make([]string, 4)

		copy(padded, cols)

		err = fn(padded)

		if err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, rowNumber, err)
		}
	}

	return rows.Error()
}

// Writes entries to a new .xlsx file in the layout Load expects.
func Write(path string, vocabulary []app.VocabularyEntry, phrases []app.PhraseEntry) error {
	file := excelize.NewFile()

	defer file.Close()

	err := file.SetSheetName(file.GetSheetName(0), VOCABULARY_SHEET)

	if err != nil {
		return err
	}

	_, err = file.NewSheet(PHRASES_SHEET)

	if err != nil {
		return err
	}

	for i, entry := range vocabulary {
		err = writeRow(file, VOCABULARY_SHEET, i+1, entry.Text, entry.Translation, entry.Picture, entry.Category)

		if err != nil {
			return err
		}
	}

	for i, entry := range phrases {
		err = writeRow(file, PHRASES_SHEET, i+1, entry.Text, entry.Translation, entry.AudioClip)

		if err != nil {
			return err
		}
	}

	return file.SaveAs(path)
}

func writeRow(file *excelize.File, sheet string, row int, values ...string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)

	if err != nil {
		return err
	}

	cells := make([]interface{}, len(values))

	for i, value := range values {
		cells[i] = value
	}

	return file.SetSheetRow(sheet, cell, &cells)
}
