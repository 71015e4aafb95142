package ui

import (
	"fmt"
	"io"
	"langtrainer/internal/app"
	"langtrainer/internal/session"
)

func renderMenu(out io.Writer, options []session.Option) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, MENU_HEADER)

	for _, option := range options {
		fmt.Fprintf(out, "%d. %s\n", option.Number, option.Label)
	}

	fmt.Fprint(out, PROMPT)
}

func showResult(out io.Writer, res session.Result) {
	switch item := res.Item.(type) {
	case app.VocabularyEntry:
		fmt.Fprintf(out, "Word: %s\n", item.Text)
	case app.PhraseEntry:
		fmt.Fprintf(out, "Phrase: %s\n", item.Text)
	case nil:
		if res.Label != "" {
			fmt.Fprintf(out, "%s: %s\n", res.Label, res.Value)
		}
	}
}
