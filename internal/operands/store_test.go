package operands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStore(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "Positive count", count: 7, expected: 7},
		{name: "Zero count", count: 0, expected: 0},
		{name: "Negative count clamps to zero", count: -3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.count)
			assert.Equal(t, tt.expected, s.Len())
			for i := 0; i < s.Len(); i++ {
				assert.Equal(t, 0.0, s.Get(i))
			}
		})
	}
}

func TestStore_SetAndGet(t *testing.T) {
	s := NewStore(3)

	s.Set(0, 1.5)
	s.Set(2, -4)
	s.Set(3, 99)  // out of range, dropped
	s.Set(-1, 99) // out of range, dropped

	assert.Equal(t, 1.5, s.Get(0))
	assert.Equal(t, 0.0, s.Get(1))
	assert.Equal(t, -4.0, s.Get(2))
	assert.Equal(t, 0.0, s.Get(3))
	assert.Equal(t, 0.0, s.Get(-1))
	assert.Equal(t, 3, s.Len())
}

func TestStore_SetAll(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		prior    []float64
		values   []float64
		expected []float64
	}{
		{
			name:     "Exact length",
			count:    3,
			values:   []float64{1, 2, 3},
			expected: []float64{1, 2, 3},
		},
		{
			name:     "Shorter input keeps prior tail",
			count:    4,
			prior:    []float64{9, 9, 9, 9},
			values:   []float64{1, 2},
			expected: []float64{1, 2, 9, 9},
		},
		{
			name:     "Shorter input on fresh store leaves zeros",
			count:    4,
			values:   []float64{1},
			expected: []float64{1, 0, 0, 0},
		},
		{
			name:     "Longer input is truncated",
			count:    2,
			values:   []float64{1, 2, 3, 4},
			expected: []float64{1, 2},
		},
		{
			name:     "Empty input",
			count:    2,
			prior:    []float64{5, 6},
			values:   nil,
			expected: []float64{5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.count)
			s.SetAll(tt.prior)
			s.SetAll(tt.values)
			assert.Equal(t, tt.expected, s.Values())
			assert.Equal(t, tt.count, s.Len())
		})
	}
}

func TestStore_ValuesIsCopy(t *testing.T) {
	s := NewStore(2)
	s.SetAll([]float64{1, 2})

	snapshot := s.Values()
	snapshot[0] = 100

	assert.Equal(t, 1.0, s.Get(0))
}
