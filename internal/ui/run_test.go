package ui

import (
	"bytes"
	"errors"
	"io"
	"langtrainer/internal/catalog"
	"langtrainer/internal/random"
	"langtrainer/internal/session"
	"math/rand"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hands out one line per Read call and remembers how many were taken.
type lineReader struct {
	lines []string
	reads int
}

func (r *lineReader) Read(p []byte) (int, error) {
	if r.reads >= len(r.lines) {
		return 0, io.EOF
	}

	n := copy(p, r.lines[r.reads]+"\n")

	r.reads++

	return n, nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken terminal")
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	c, err := catalog.New(
		catalog.SampleLanguages,
		catalog.WithIndexSource(random.NewUniform(rand.New(rand.NewSource(3)))),
	)

	require.NoError(t, err)

	catalog.Sample(c)

	logger, _ := logtest.NewNullLogger()

	return session.New(c, logger)
}

func run(t *testing.T, in io.Reader) (string, *session.Session) {
	t.Helper()

	s := newTestSession(t)
	out := &bytes.Buffer{}
	logger, _ := logtest.NewNullLogger()

	require.NoError(t, Run(in, out, s, logger))

	return out.String(), s
}

func TestQuitStopsReading(t *testing.T) {
	in := &lineReader{lines: []string{"1", "6", "1", "1"}}

	out, s := run(t, in)

	assert.Equal(t, 2, in.reads)
	assert.Equal(t, session.Terminated, s.State())
	assert.True(t, strings.HasSuffix(out, GOODBYE+"\n"))
	assert.Contains(t, out, "Word: cat\n")
}

func TestWordFlowTranscript(t *testing.T) {
	out, _ := run(t, strings.NewReader("1\n3\n4\n5\n1\n3\n6\n"))

	assert.Contains(t, out, "Word: cat\n")
	assert.Contains(t, out, "Translation: gato\n")
	assert.Contains(t, out, "Picture: cat.jpg\n")
	assert.Contains(t, out, "Category: animals\n")
	assert.Contains(t, out, "Word: dog\n")
	assert.Contains(t, out, "Translation: perro\n")
	assert.NotContains(t, out, INVALID_OPTION_TEXT)
}

func TestIdleRejectsWordOnlyOptions(t *testing.T) {
	out, s := run(t, strings.NewReader("4\n5\n3\nabc\n99\n6\n"))

	assert.Equal(t, 4, strings.Count(out, INVALID_OPTION_TEXT+"\n"))
	assert.Equal(t, 1, strings.Count(out, NO_SELECTION_TEXT+"\n"))
	assert.Nil(t, s.Selected())
}

func TestPhraseSelectedRejectsCategory(t *testing.T) {
	out, _ := run(t, strings.NewReader("2\n5\n1\n3\n6\n"))

	assert.Contains(t, out, "Phrase: ")
	assert.Equal(t, 1, strings.Count(out, INVALID_OPTION_TEXT+"\n"))
	assert.Contains(t, out, "Translation: gato\n")
	assert.NotContains(t, out, "Audio: ")
}

func TestPhraseFlowTranscript(t *testing.T) {
	out, s := run(t, strings.NewReader("2\n4\n3\n6\n"))

	assert.Contains(t, out, "Phrase: ")
	assert.Contains(t, out, "Audio: ")
	assert.Contains(t, out, "Translation: ")
	assert.Equal(t, session.Terminated, s.State())
}

func TestMenuListsOnlyValidOptions(t *testing.T) {
	out, _ := run(t, strings.NewReader("1\n2\n6\n"))

	menus := strings.Split(out, MENU_HEADER+"\n")[1:]

	require.Len(t, menus, 3)

	assert.Contains(t, menus[0], "1. Next word\n2. Random phrase\n6. Quit\n"+PROMPT)
	assert.Contains(t, menus[1], "4. Show picture\n5. Show category\n")
	assert.Contains(t, menus[2], "4. Show audio\n6. Quit\n")
	assert.NotContains(t, menus[2], "Show category")
}

func TestEndOfInputQuits(t *testing.T) {
	out, s := run(t, strings.NewReader("1\n"))

	assert.Equal(t, session.Terminated, s.State())
	assert.True(t, strings.HasSuffix(out, GOODBYE+"\n"))
}

func TestReadErrorIsReturned(t *testing.T) {
	s := newTestSession(t)
	logger, _ := logtest.NewNullLogger()

	err := Run(failingReader{}, io.Discard, s, logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken terminal")
}

func TestOversizedLineIsInvalidOption(t *testing.T) {
	input := strings.Repeat("x", 70000) + "\n1\n6\n"

	out, s := run(t, strings.NewReader(input))

	assert.Equal(t, 1, strings.Count(out, INVALID_OPTION_TEXT+"\n"))
	assert.Contains(t, out, "Word: cat\n")
	assert.Equal(t, session.Terminated, s.State())
	assert.True(t, strings.HasSuffix(out, GOODBYE+"\n"))
}

func TestLastLineWithoutNewline(t *testing.T) {
	out, s := run(t, strings.NewReader("1\n3"))

	assert.Contains(t, out, "Translation: gato\n")
	assert.Equal(t, session.Terminated, s.State())
}
