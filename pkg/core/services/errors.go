package services

import "errors"

var (
	ErrFileNotFound    = errors.New("cannot find the file")
	ErrEmptyFile       = errors.New("the file is empty")
	ErrMalformedFile   = errors.New("wrongly formatted file")
	ErrInvalidFilename = errors.New("invalid characters in the filename")
	ErrNothingToSave   = errors.New("no data to save")
	ErrNothingToReport = errors.New("no allocations to print")
)
