package ui

import (
	"langtrainer/internal/session"
)

// Session is the part of *session.Session the menu loop drives.
type Session interface {
	State() session.State
	Available() []session.Option
	Resolve(number int) (session.Command, error)
	Execute(session.Command) (session.Result, error)
}

var _ Session = (*session.Session)(nil)
