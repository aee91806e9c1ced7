package espresso

import "errors"

var (
	ErrPullNotFound = errors.New("espresso pull log not found")
)
