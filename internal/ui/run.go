package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"langtrainer/internal/session"

	"github.com/sirupsen/logrus"
)

// Runs the read-eval loop until the quit option is chosen. End of input is
// treated as quit. Only read errors are returned.
func Run(in io.Reader, out io.Writer, s Session, logger logrus.FieldLogger) error {
	reader := bufio.NewReader(in)

	for s.State() != session.Terminated {
		renderMenu(out, s.Available())

		// No line length limit: an oversized line is just an invalid choice.
		line, err := reader.ReadString('\n')

		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read choice: %w", err)
		}

		if err != nil && line == "" {
			logger.Debug("end of input, quitting")

			fmt.Fprintln(out)

			if _, err := s.Execute(session.CmdQuit); err != nil {
				return err
			}

			break
		}

		res, err := execute(s, line)

		if err != nil {
			logger.WithError(err).Debug("choice rejected")

			showErr(out, err)

			continue
		}

		showResult(out, res)
	}

	fmt.Fprintln(out, GOODBYE)

	return nil
}

func execute(s Session, line string) (session.Result, error) {
	number, err := session.ParseChoice(line)

	if err != nil {
		return session.Result{}, err
	}

	cmd, err := s.Resolve(number)

	if err != nil {
		return session.Result{}, err
	}

	return s.Execute(cmd)
}
