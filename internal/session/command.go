package session

import (
	"fmt"
	"langtrainer/internal/app"
	"strconv"
	"strings"
)

// Command is an action the session can perform.
type Command int

const (
	CmdNextWord Command = iota + 1
	CmdRandomPhrase
	CmdShowTranslation
	CmdShowPicture
	CmdShowAudio
	CmdShowCategory
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdNextWord:
		return "next word"
	case CmdRandomPhrase:
		return "random phrase"
	case CmdShowTranslation:
		return "show translation"
	case CmdShowPicture:
		return "show picture"
	case CmdShowAudio:
		return "show audio"
	case CmdShowCategory:
		return "show category"
	case CmdQuit:
		return "quit"
	}

	return "unknown"
}

// Menu numbers. Picture and audio share one number, the state decides which
// of them it means.
const (
	NumberNextWord        = 1
	NumberRandomPhrase    = 2
	NumberShowTranslation = 3
	NumberShowMedia       = 4
	NumberShowCategory    = 5
	NumberQuit            = 6
)

// Parses one line of user input as a menu number.
func ParseChoice(line string) (int, error) {
	line = strings.TrimSpace(line)

	n, err := strconv.Atoi(line)

	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, app.ErrInvalidCommand)
	}

	return n, nil
}

// Option is one visible menu line.
type Option struct {
	Number  int
	Command Command
	Label   string
}
