package handlers

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/GHutch55/fibonacci/api/v1/models"
	"github.com/GHutch55/fibonacci/fibonacci"
	"github.com/go-chi/chi/v5"
)

const (
	MaxFibonacciN = 1000
	MaxSequenceN  = 100 // sequence bodies grow much faster than single values
)

// Calculator computes the nth Fibonacci number and optionally the sequence
// up to it. fibonacci.Engine is the production implementation.
type Calculator interface {
	Compute(n int, withSequence bool) (*big.Int, []*big.Int, error)
}

type FibonacciHandler struct {
	Calculator Calculator
}

func NewFibonacciHandler(calc Calculator) *FibonacciHandler {
	return &FibonacciHandler{Calculator: calc}
}

// GetFibonacci handles GET /fibonacci/{n}
func (h *FibonacciHandler) GetFibonacci(w http.ResponseWriter, r *http.Request) {
	n, err := parseIndex(chi.URLParam(r, "n"), MaxFibonacciN, "n must be <= 1000")
	if err != nil {
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respond(w, n, false)
}

// GetFibonacciSequence handles GET /fibonacci/{n}/sequence
func (h *FibonacciHandler) GetFibonacciSequence(w http.ResponseWriter, r *http.Request) {
	n, err := parseIndex(chi.URLParam(r, "n"), MaxSequenceN, "n must be <= 100 for sequence endpoint")
	if err != nil {
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respond(w, n, true)
}

func (h *FibonacciHandler) respond(w http.ResponseWriter, n int, withSequence bool) {
	result, sequence, err := h.Calculator.Compute(n, withSequence)
	if err != nil {
		if errors.Is(err, fibonacci.ErrInvalidArgument) {
			SendError(w, "n must be non-negative", http.StatusBadRequest)
			return
		}
		SendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if result == nil {
		SendError(w, fmt.Sprintf("no result computed for n=%d", n), http.StatusInternalServerError)
		return
	}

	if !withSequence {
		sequence = nil
	}

	SendData(w, models.FibonacciResponse{
		N:        n,
		Result:   result,
		Sequence: sequence,
	}, http.StatusOK)
}

// parseIndex validates the {n} path segment against [0, limit]. Integers too
// large for int are still classified by sign so callers get the bound
// message rather than a parse error.
func parseIndex(s string, limit int, tooLarge string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return 0, errors.New("n must be non-negative")
			}
			return 0, errors.New(tooLarge)
		}
		return 0, errors.New("n must be an integer")
	}

	if n < 0 {
		return 0, errors.New("n must be non-negative")
	}
	if n > limit {
		return 0, errors.New(tooLarge)
	}
	return n, nil
}
