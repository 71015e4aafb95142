package main

import (
	"bytes"
	"langtrainer/internal/app"
	"langtrainer/internal/storage"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	out := &bytes.Buffer{}

	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	// nil args make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestBuiltinSession(t *testing.T) {
	out, err := execute(t, "1\n3\n4\n5\n6\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Language trainer (en -> es)")
	assert.Contains(t, out, "Word: cat\n")
	assert.Contains(t, out, "Translation: gato\n")
	assert.Contains(t, out, "Picture: cat.jpg\n")
	assert.Contains(t, out, "Category: animals\n")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestExportAndRunFromFiles(t *testing.T) {
	for _, format := range []string{"xlsx", "sqlite"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "catalog."+format)

			out, err := execute(t, "", "export", "--format", format, "--path", path)

			require.NoError(t, err)
			assert.Contains(t, out, "Exported 5 words and 3 phrases")

			out, err = execute(t, "1\n1\n3\n6\n", "--source", format, "--path", path)

			require.NoError(t, err)
			assert.Contains(t, out, "Word: dog\n")
			assert.Contains(t, out, "Translation: perro\n")
		})
	}
}

func TestSourceWithoutPathFails(t *testing.T) {
	_, err := execute(t, "", "--source", "xlsx")

	require.Error(t, err)
}

func TestEmptyCatalogIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.sqlite")

	file, err := storage.Open(t.Context(), path)
	require.NoError(t, err)

	require.NoError(t, file.SaveCatalog(t.Context(), []app.VocabularyEntry{
		{Entry: app.Entry{Text: "cat", Translation: "gato"}},
	}, nil))
	require.NoError(t, file.Close())

	out, err := execute(t, "1\n6\n", "--source", "sqlite", "--path", path)

	require.ErrorIs(t, err, app.ErrEmptyCatalog)
	assert.NotContains(t, out, "Goodbye!")
}
