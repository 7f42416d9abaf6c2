package posixpath

import (
	"github.com/Jumpaku/go-posixpath/errors"
)

var (
	ErrInvalidPath = errors.ErrInvalidPath
	ErrNotAbsolute = errors.ErrNotAbsolute
)
