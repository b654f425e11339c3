package similarity

import (
	sent "github.com/revelaction/sentsem/sentence"
)

// Matrix holds the path similarity of each resolved token of the first
// sentence (rows) with each resolved token of the second one (columns).
type Matrix [][]float64

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Usable returns the tokens that have a sense, in order.
func Usable(sensed []sent.Sensed) []sent.Sensed {
	usable := make([]sent.Sensed, 0, len(sensed))
	for _, s := range sensed {
		if s.Resolved() {
			usable = append(usable, s)
		}
	}

	return usable
}

// BuildMatrix returns the similarity matrix of the resolved tokens and the
// full lengths of both sides, unresolved tokens included. Undefined
// similarities are 0.
//
// The returned matrix always has len(Usable(a)) rows. With no usable token
// in b, every row is empty.
func BuildMatrix(a, b []sent.Sensed) (Matrix, int, int) {
	ua, ub := Usable(a), Usable(b)

	m := make(Matrix, len(ua))
	for i, sa := range ua {
		m[i] = make([]float64, len(ub))
		for j, sb := range ub {
			if sim, ok := sa.Sense.PathSimilarity(sb.Sense); ok {
				m[i][j] = sim
			}
		}
	}

	return m, len(a), len(b)
}
