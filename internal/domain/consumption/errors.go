package consumption

import "errors"

var (
	ErrLogNotFound = errors.New("consumption log not found")
)
