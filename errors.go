package chainmap

import "github.com/pkg/errors"

var (
	// ErrNoSuchElement is returned by Iterator.Next once the sequence is exhausted.
	ErrNoSuchElement = errors.New("chainmap: no such element")

	// ErrConcurrentModification is returned by Iterator.Next when the map
	// was structurally modified after the iterator was created.
	ErrConcurrentModification = errors.New("chainmap: map modified during iteration")

	// ErrInvalidConfig is returned when constructing a map with a non-positive parameter.
	ErrInvalidConfig = errors.New("chainmap: invalid config")
)
