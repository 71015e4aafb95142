package app

import "errors"

var (
	ErrEmptyCatalog = errors.New("catalog is empty")

	ErrEmptyText = errors.New("entry text and translation must not be empty")

	ErrInvalidCommand = errors.New("invalid option")

	ErrNoSelection = errors.New("no word or phrase selected")

	ErrTerminated = errors.New("session is terminated")
)
