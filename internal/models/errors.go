package models

import "errors"

var (
	ErrSourceNotFound = errors.New("source file not found")
	ErrNoStrategy     = errors.New("must specify either max part size or parts count")
	ErrDirUnreadable  = errors.New("cannot read directory")
	ErrNoParts        = errors.New("no parts found")
)
