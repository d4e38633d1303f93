package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidMove     = errors.New("invalid move index")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session")
)
