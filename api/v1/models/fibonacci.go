package models

import "math/big"

// FibonacciResponse is returned by both Fibonacci endpoints. Sequence is
// null on the value endpoint.
type FibonacciResponse struct {
	N        int        `json:"n"`
	Result   *big.Int   `json:"result"`
	Sequence []*big.Int `json:"sequence"`
}
