package operands

// Store is a fixed-length buffer of operands.
// Out-of-range writes are dropped and out-of-range reads return zero.
type Store struct {
	values []float64
}

// NewStore allocates a store with count zeroed slots
func NewStore(count int) *Store {
	if count < 0 {
		count = 0
	}
	return &Store{values: make([]float64, count)}
}

// Len returns the number of slots, fixed at construction
func (s *Store) Len() int {
	return len(s.values)
}

// Get returns the operand at index, or 0 when index is out of range
func (s *Store) Get(index int) float64 {
	if index < 0 || index >= len(s.values) {
		return 0.0
	}
	return s.values[index]
}

// Set writes the operand at index; out-of-range indices are ignored
func (s *Store) Set(index int, value float64) {
	if index < 0 || index >= len(s.values) {
		return
	}
	s.values[index] = value
}

// SetAll copies values into the store starting at index 0.
// Slots past len(values) keep their previous contents.
func (s *Store) SetAll(values []float64) {
	copy(s.values, values)
}

// Values returns a copy of the current operands
func (s *Store) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}
