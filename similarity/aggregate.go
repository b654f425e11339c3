package similarity

import (
	"github.com/cockroachdb/errors"
)

// Side names one sentence of a comparison.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "a"
	}

	return "b"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "a":
		*s = SideA
	case "b":
		*s = SideB
	default:
		return errors.Newf("unknown side %q", b)
	}

	return nil
}

// Aggregate sums the best match of each token of the shorter side and
// normalizes by the total length: 2*sum/(lenA+lenB).
//
// The first sentence is the short side only when lenA < lenB; on equal
// lengths the column maxima are summed. Both lengths zero give a 0 score.
func Aggregate(m Matrix, lenA, lenB int) (float64, float64, Side) {
	short := SideB
	if lenA < lenB {
		short = SideA
	}

	if lenA+lenB == 0 {
		return 0, 0, short
	}

	var sum float64
	if short == SideA {
		for _, row := range m {
			sum += maxOf(row)
		}
	} else {
		for j := 0; j < m.Cols(); j++ {
			best := 0.0
			for i := range m {
				best = max(best, m[i][j])
			}
			sum += best
		}
	}

	return sum, 2 * sum / float64(lenA+lenB), short
}

func maxOf(row []float64) float64 {
	best := 0.0
	for _, v := range row {
		best = max(best, v)
	}

	return best
}
