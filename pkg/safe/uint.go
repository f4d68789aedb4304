// Package safe provides range-checked numeric conversions.
package safe

import (
	"fmt"
)

// Signed is any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Uint64 converts a signed integer to uint64, rejecting negatives.
func Uint64[T Signed](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Height converts a node reported block height, which must be positive.
func Height[T Signed](v T) (uint64, error) {
	h, err := Uint64(v)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, fmt.Errorf("height %d is not positive", v)
	}
	return h, nil
}
