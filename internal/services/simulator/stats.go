package simulator

import "math"

// Stat accumulates a running count, sum, and spread of integer samples.
type Stat struct {
	Cnt int     `json:"cnt"`
	Sum float64 `json:"sum"`
	Sqr float64 `json:"sqr,omitempty"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Add records one or more samples.
func (s *Stat) Add(values ...int) {
	for _, v := range values {
		x := float64(v)
		if s.Cnt == 0 || x < s.Min {
			s.Min = x
		}
		if s.Cnt == 0 || x > s.Max {
			s.Max = x
		}
		s.Cnt++
		s.Sum += x
		s.Sqr += x * x
	}
}

// Avg is the sample mean, zero when empty.
func (s Stat) Avg() float64 {
	if s.Cnt == 0 {
		return 0
	}
	return s.Sum / float64(s.Cnt)
}

// Dev is the population standard deviation, zero when empty.
func (s Stat) Dev() float64 {
	if s.Cnt == 0 {
		return 0
	}
	n := float64(s.Cnt)
	return math.Sqrt(math.Abs(n*s.Sqr-s.Sum*s.Sum)) / n
}
