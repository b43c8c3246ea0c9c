package domain

import "errors"

var (
	// ErrInvalidCurriculum indicates a curriculum string outside the known set.
	ErrInvalidCurriculum = errors.New("invalid curriculum")

	// ErrInvalidType indicates a school type string outside the known set.
	ErrInvalidType = errors.New("invalid school type")

	// ErrInvalidStatus indicates a progress status outside the funnel.
	ErrInvalidStatus = errors.New("invalid progress status")

	// ErrInvalidDate indicates a date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrMissingName indicates a school record with neither an English nor a Chinese name.
	ErrMissingName = errors.New("school name is required")
)
