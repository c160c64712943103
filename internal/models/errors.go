package models

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidEventParams = errors.New("invalid event params")
	ErrOverCapacity       = errors.New("expected attendance exceeds venue capacity")
)
