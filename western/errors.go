package western

import "errors"

// Notation errors.
var (
	// ErrInvalidPitch is returned when a pitch string cannot be parsed.
	ErrInvalidPitch = errors.New("western: invalid pitch")

	// ErrInvalidDuration is returned when a duration is not representable
	// as a base division with augmentation dots.
	ErrInvalidDuration = errors.New("western: invalid duration")

	// ErrNoClef is returned when a staff position query needs an active
	// clef and none precedes the queried position.
	ErrNoClef = errors.New("western: no active clef")

	// ErrNoFlagNeeded is returned when a flag is requested for a duration
	// whose base division carries no flag.
	ErrNoFlagNeeded = errors.New("western: duration needs no flag")
)
