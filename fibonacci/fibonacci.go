// Package fibonacci computes Fibonacci numbers with arbitrary precision.
package fibonacci

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Engine satisfies the handlers' Calculator interface.
type Engine struct{}

func (Engine) Compute(n int, withSequence bool) (*big.Int, []*big.Int, error) {
	return Compute(n, withSequence)
}

// Compute returns the nth Fibonacci number and, when withSequence is set,
// every value from index 0 through n.
func Compute(n int, withSequence bool) (*big.Int, []*big.Int, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: n must be non-negative, got %d", ErrInvalidArgument, n)
	}

	var sequence []*big.Int
	if withSequence {
		sequence = make([]*big.Int, 0, n+1)
		sequence = append(sequence, big.NewInt(0))
	}
	if n == 0 {
		return big.NewInt(0), sequence, nil
	}

	prev, curr := big.NewInt(0), big.NewInt(1)
	if withSequence {
		sequence = append(sequence, new(big.Int).Set(curr))
	}

	for i := 2; i <= n; i++ {
		// prev becomes the new curr; the old curr is kept as prev
		prev.Add(prev, curr)
		prev, curr = curr, prev
		if withSequence {
			sequence = append(sequence, new(big.Int).Set(curr))
		}
	}

	return curr, sequence, nil
}
