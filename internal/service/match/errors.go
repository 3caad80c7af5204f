package match

import "errors"

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyExists = errors.New("match already exists")
	ErrAlreadyMatched     = errors.New("parcel already matched to another trip")
	ErrNotActionable      = errors.New("match is not pending")
	ErrUnauthorized       = errors.New("actor is not allowed to resolve this match")
	ErrConflict           = errors.New("match was modified concurrently")
)
