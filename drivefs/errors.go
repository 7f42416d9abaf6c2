package drivefs

import (
	"github.com/Jumpaku/go-posixpath/errors"
)

var (
	ErrInvalidPath              = errors.ErrInvalidPath
	ErrAPIError                 = errors.ErrAPIError
	ErrNotFound                 = errors.ErrNotFound
	ErrAlreadyExists            = errors.ErrAlreadyExists
	ErrMultiParentsNotSupported = errors.ErrMultiParentsNotSupported
)

func newAPIError(msg string, cause error) error {
	return errors.NewAPIError(msg, cause)
}

func newInvalidPathError(msg string, cause error) error {
	return errors.NewInvalidPathError(msg, cause)
}
