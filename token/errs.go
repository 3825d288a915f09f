package token

import (
	"errors"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrNumber       = errors.New("number")
	ErrUnexpected   = errors.New("unexpected")
)
