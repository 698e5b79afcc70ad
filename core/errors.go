package core

import "errors"

var (
	ErrNoSelection = errors.New("no selection")
	ErrNoClipboard = errors.New("clipboard handler not set")
	ErrCopyFailed  = errors.New("failed to copy to clipboard")
)
