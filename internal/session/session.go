package session

import (
	"fmt"
	"langtrainer/internal/app"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

type State int

const (
	Idle State = iota
	WordSelected
	PhraseSelected
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case WordSelected:
		return "word selected"
	case PhraseSelected:
		return "phrase selected"
	case Terminated:
		return "terminated"
	}

	return "unknown"
}

// Result is what a successfully executed command produced.
// For selection commands Item is set; for "show" commands Label and Value are.
type Result struct {
	Command Command
	Item    app.LearningItem
	Label   string
	Value   string
}

// Session holds the currently selected item and decides which commands are
// valid. It is owned by the menu loop and is not goroutine-safe.
type Session struct {
	catalog app.Catalog
	logger  logrus.FieldLogger

	state    State
	selected app.LearningItem
}

func New(catalog app.Catalog, logger logrus.FieldLogger) *Session {
	return &Session{
		catalog: catalog,
		logger:  logger,
		state:   Idle,
	}
}

func (s *Session) State() State {
	return s.state
}

// Returns nil while nothing is selected.
func (s *Session) Selected() app.LearningItem {
	return s.selected
}

// Commands offered in the current state, in menu order.
func (s *Session) Available() []Option {
	if s.state == Terminated {
		return nil
	}

	res := []Option{
		{Number: NumberNextWord, Command: CmdNextWord, Label: "Next word"},
		{Number: NumberRandomPhrase, Command: CmdRandomPhrase, Label: "Random phrase"},
	}

	if s.selected != nil {
		res = append(res, Option{Number: NumberShowTranslation, Command: CmdShowTranslation, Label: "Show translation"})
	}

	switch s.state {
	case WordSelected:
		res = append(
			res,
			Option{Number: NumberShowMedia, Command: CmdShowPicture, Label: "Show picture"},
			Option{Number: NumberShowCategory, Command: CmdShowCategory, Label: "Show category"},
		)
	case PhraseSelected:
		res = append(res, Option{Number: NumberShowMedia, Command: CmdShowAudio, Label: "Show audio"})
	}

	return append(res, Option{Number: NumberQuit, Command: CmdQuit, Label: "Quit"})
}

func (s *Session) IsAvailable(cmd Command) bool {
	return lo.ContainsBy(s.Available(), func(o Option) bool {
		return o.Command == cmd
	})
}

// Maps a menu number to a command. Numbers that are hidden in the current
// state still resolve, so Execute can report why they are not allowed.
func (s *Session) Resolve(number int) (Command, error) {
	switch number {
	case NumberNextWord:
		return CmdNextWord, nil
	case NumberRandomPhrase:
		return CmdRandomPhrase, nil
	case NumberShowTranslation:
		return CmdShowTranslation, nil
	case NumberShowMedia:
		if s.state == PhraseSelected {
			return CmdShowAudio, nil
		}

		return CmdShowPicture, nil
	case NumberShowCategory:
		return CmdShowCategory, nil
	case NumberQuit:
		return CmdQuit, nil
	}

	return 0, fmt.Errorf("%d: %w", number, app.ErrInvalidCommand)
}

// Runs cmd against the current state. On error the state is left untouched.
func (s *Session) Execute(cmd Command) (Result, error) {
	if s.state == Terminated {
		return Result{}, app.ErrTerminated
	}

	// Translation stays reachable from Idle so it can report ErrNoSelection.
	if cmd != CmdShowTranslation && !s.IsAvailable(cmd) {
		return Result{}, s.invalid(cmd)
	}

	res := Result{Command: cmd}

	switch cmd {
	case CmdNextWord:
		entry, err := s.catalog.NextVocabulary()

		if err != nil {
			return Result{}, err
		}

		s.selectItem(entry, WordSelected)

		res.Item = entry
	case CmdRandomPhrase:
		entry, err := s.catalog.RandomPhrase()

		if err != nil {
			return Result{}, err
		}

		s.selectItem(entry, PhraseSelected)

		res.Item = entry
	case CmdShowTranslation:
		if s.selected == nil {
			return Result{}, app.ErrNoSelection
		}

		res.Label = "Translation"
		res.Value = s.selected.Base().Translation
	case CmdShowPicture:
		item, ok := s.selected.(app.VocabularyEntry)

		if !ok {
			return Result{}, s.invalid(cmd)
		}

		res.Label = "Picture"
		res.Value = item.Picture
	case CmdShowAudio:
		item, ok := s.selected.(app.PhraseEntry)

		if !ok {
			return Result{}, s.invalid(cmd)
		}

		res.Label = "Audio"
		res.Value = item.AudioClip
	case CmdShowCategory:
		item, ok := s.selected.(app.VocabularyEntry)

		if !ok {
			return Result{}, s.invalid(cmd)
		}

		res.Label = "Category"
		res.Value = item.Category
	case CmdQuit:
		s.logger.WithField("from", s.state).Debug("session terminated")

		s.state = Terminated
	default:
		return Result{}, s.invalid(cmd)
	}

	return res, nil
}

func (s *Session) selectItem(item app.LearningItem, state State) {
	s.logger.WithFields(logrus.Fields{
		"from": s.state,
		"to":   state,
		"text": item.Base().Text,
	}).Debug("item selected")

	s.selected = item
	s.state = state
}

func (s *Session) invalid(cmd Command) error {
	s.logger.WithFields(logrus.Fields{
		"command": cmd,
		"state":   s.state,
	}).Debug("command rejected")

	return fmt.Errorf("%s while %s: %w", cmd, s.state, app.ErrInvalidCommand)
}
