package operands

// ShuffleNegatives scans every pair i < j once and swaps when operand i is
// non-negative and operand j is negative.
func (s *Store) ShuffleNegatives() {
	v := s.values
	for i := 0; i < len(v)-1; i++ {
		for j := i + 1; j < len(v); j++ {
			if v[i] >= 0 && v[j] < 0 {
				v[i], v[j] = v[j], v[i]
			}
		}
	}
}

// SwapIfNegativeFirst swaps operands i and j when i is negative and j is
// non-negative. Out-of-range indices are a no-op.
func (s *Store) SwapIfNegativeFirst(i, j int) {
	n := len(s.values)
	if i < 0 || j < 0 || i >= n || j >= n {
		return
	}
	v := s.values
	if v[i] < 0 && v[j] >= 0 {
		v[i], v[j] = v[j], v[i]
	}
}
