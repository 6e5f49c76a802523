package deck

import "errors"

var (
	// ErrGeneration wraps every failure to assemble or render a deck.
	ErrGeneration = errors.New("deck: generation failed")
	// ErrEmptySchema is returned when data rows are present but the first row has no columns.
	ErrEmptySchema = errors.New("deck: table has no columns")
	// ErrNoSlides is returned when rendering an empty spec.
	ErrNoSlides = errors.New("deck: spec has no slides")
)
