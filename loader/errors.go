package loader

import "errors"

var (
	ErrDataLoad     = errors.New("error loading trips dataset")
	ErrUnknownCity  = errors.New("unknown city")
	ErrMissingField = errors.New("missing required column")
	ErrInvalidDate  = errors.New("invalid start time")
	ErrInvalidValue = errors.New("invalid value")
)
