package fibonacci_test

import (
	"math/big"
	"testing"

	"github.com/GHutch55/fibonacci/fibonacci"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigInts(values ...int64) []*big.Int {
	l := make([]*big.Int, len(values))
	for i, v := range values {
		l[i] = big.NewInt(v)
	}
	return l
}

// decimals avoids comparing big.Int internals
func decimals(l []*big.Int) []string {
	s := make([]string, len(l))
	for i, v := range l {
		s[i] = v.String()
	}
	return s
}

func TestCompute(t *testing.T) {
	tests := []struct {
		n        int
		value    int64
		sequence []*big.Int
	}{
		{0, 0, bigInts(0)},
		{1, 1, bigInts(0, 1)},
		{2, 1, bigInts(0, 1, 1)},
		{10, 55, bigInts(0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55)},
	}
	for _, tt := range tests {
		value, sequence, err := fibonacci.Compute(tt.n, true)
		require.NoError(t, err)
		assert.Equal(t, tt.value, value.Int64(), "n=%d", tt.n)
		require.Empty(t, cmp.Diff(decimals(tt.sequence), decimals(sequence)), "n=%d", tt.n)

		value, sequence, err = fibonacci.Compute(tt.n, false)
		require.NoError(t, err)
		assert.Equal(t, tt.value, value.Int64(), "n=%d", tt.n)
		assert.Nil(t, sequence)
	}
}

func TestComputeLarge(t *testing.T) {
	value, _, err := fibonacci.Compute(100, false)
	require.NoError(t, err)
	assert.Equal(t, "354224848179261915075", value.String())

	value, _, err = fibonacci.Compute(1000, false)
	require.NoError(t, err)
	s := value.String()
	assert.Len(t, s, 209)
	assert.Equal(t, "43466557686937456435", s[:20])
	assert.Equal(t, "849228875", s[len(s)-9:])
}

func TestComputeNegative(t *testing.T) {
	value, sequence, err := fibonacci.Compute(-1, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, fibonacci.ErrInvalidArgument)
	assert.Nil(t, value)
	assert.Nil(t, sequence)
}

func TestComputeProperties(t *testing.T) {
	_, all, err := fibonacci.Compute(1000, true)
	require.NoError(t, err)
	require.Len(t, all, 1001)

	for n := 0; n <= 1000; n++ {
		value, _, err := fibonacci.Compute(n, false)
		require.NoError(t, err)
		require.Zero(t, value.Cmp(all[n]), "n=%d", n)

		if n >= 2 {
			sum := new(big.Int).Add(all[n-1], all[n-2])
			require.Zero(t, value.Cmp(sum), "n=%d", n)
		}
	}

	for _, n := range []int{0, 1, 2, 37, 100} {
		value, sequence, err := fibonacci.Compute(n, true)
		require.NoError(t, err)
		require.Len(t, sequence, n+1)
		assert.Zero(t, sequence[0].Sign())
		assert.Zero(t, value.Cmp(sequence[n]))
	}
}

func TestComputeIdempotent(t *testing.T) {
	first, firstSeq, err := fibonacci.Compute(250, true)
	require.NoError(t, err)

	// mutating a returned value must not leak into later results
	first.SetInt64(-7)
	firstSeq[3].SetInt64(-7)

	second, secondSeq, err := fibonacci.Compute(250, true)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Sign())
	assert.Equal(t, int64(2), secondSeq[3].Int64())
	assert.Equal(t, secondSeq[250].String(), second.String())
}

func TestEngine(t *testing.T) {
	var e fibonacci.Engine
	value, sequence, err := e.Compute(12, false)
	require.NoError(t, err)
	assert.Equal(t, int64(144), value.Int64())
	assert.Nil(t, sequence)
}
