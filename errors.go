package blade

import "errors"

// MaxCapacity is the largest point capacity a Ribbon accepts. A full
// ribbon emits 2*MaxCapacity-2 vertices, which keeps every index inside
// a uint16 index buffer.
const MaxCapacity = 1 << 15

// Errors returned by New.
var (
	// ErrCapacityTooSmall is returned when a ribbon is created with fewer
	// than two points; a ribbon needs two points to emit geometry.
	ErrCapacityTooSmall = errors.New("blade: capacity must be at least 2")

	// ErrCapacityTooLarge is returned when the capacity exceeds MaxCapacity.
	ErrCapacityTooLarge = errors.New("blade: capacity exceeds MaxCapacity")
)
