package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrSourceRead    = errors.New("source read failed")
	ErrEffectDecode  = errors.New("effect decode failed")
	ErrInvalidConfig = errors.New("invalid configuration")
)
