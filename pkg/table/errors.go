package table

import "errors"

var (
	// ErrInvalidRow is returned when a row cannot be decoded into an ordered mapping.
	ErrInvalidRow = errors.New("table: invalid row")
	// ErrEmptySchema is returned when the first row has no columns.
	ErrEmptySchema = errors.New("table: first row defines no columns")
)
