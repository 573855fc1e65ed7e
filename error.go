package twoq

import "fmt"

type constError string

const (
	// ErrInvalidCapacity is returned from [New] and [NewWithSize] for negative capacities.
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrInvalidRatio is returned from [NewWithSize] for queue ratios outside of [0, 1].
	ErrInvalidRatio = constError("invalid ratio")
)

func (errStr constError) Error() string { return string(errStr) }

func negativeCapacityError(queue string, capacity int) error {
	return fmt.Errorf(
		"%w: %s capacity must be >=0 but %d was requested",
		ErrInvalidCapacity, queue, capacity)
}

func ratioError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidRatio}, args...)...)
}
