package scope

import "errors"

var (
	ErrEnded         = errors.New("loop has ended")
	ErrInvalidConfig = errors.New("invalid loop config")
)
