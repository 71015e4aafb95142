package ui

import (
	"errors"
	"fmt"
	"io"
	"langtrainer/internal/app"
)

func identifyErrText(err error) string {
	if errors.Is(err, app.ErrInvalidCommand) {
		return INVALID_OPTION_TEXT
	}

	if errors.Is(err, app.ErrNoSelection) {
		return NO_SELECTION_TEXT
	}

	return ""
}

// Prints a user-facing message for err. Errors without a known message
// are printed as is; none of them stops the loop.
func showErr(out io.Writer, err error) {
	text := identifyErrText(err)

	if text == "" {
		text = "Error: " + err.Error()
	}

	fmt.Fprintln(out, text)
}
