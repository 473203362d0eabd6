package schema

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse form definition")
	ErrFailedToReadFile  = errors.New("failed to read form definition")
	ErrUnsupportedFile   = errors.New("unsupported form definition file")
	ErrInvalidSchema     = errors.New("invalid form definition")
)
