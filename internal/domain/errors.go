package domain

import (
	"errors"
	"fmt"
)

// ErrIO is matched by every IOError
var ErrIO = errors.New("i/o error")

// IOError reports a file-system failure while scanning or publishing drafts
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ErrCannotPublish is matched by every PublishError
var ErrCannotPublish = errors.New("cannot publish")

// PublishError reports a draft that cannot be moved into the posts directory
type PublishError struct {
	Path   string
	Reason string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("cannot publish %s: %s", e.Path, e.Reason)
}

func (e *PublishError) Is(target error) bool {
	return target == ErrCannotPublish
}
