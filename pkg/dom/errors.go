package dom

import "errors"

var (
	ErrParse           = errors.New("failed to parse HTML document")
	ErrRender          = errors.New("failed to render HTML document")
	ErrInvalidSelector = errors.New("invalid form selector")
)
