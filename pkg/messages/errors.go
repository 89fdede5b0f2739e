package messages

import "errors"

var (
	ErrLoadCancelled     = errors.New("loading message catalog cancelled")
	ErrFailedToRead      = errors.New("failed to read message catalog")
	ErrFailedToParseYAML = errors.New("failed to parse YAML message catalog")
	ErrFailedToParseJSON = errors.New("failed to parse JSON message catalog")
	ErrUnsupportedFormat = errors.New("unsupported message catalog format")
)
