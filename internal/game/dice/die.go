// Package dice rolls six-sided dice from an injected random source.
package dice

import "math/rand/v2"

const Sides = 6

// Roller produces die faces in [1, Sides].
type Roller interface {
	Roll() int
}

// Die is a fair six-sided die.
type Die struct {
	rng *rand.Rand
}

// New returns a Die drawing from rng. The Die does not own rng; callers may
// share one source across dice and shuffles.
func New(rng *rand.Rand) *Die {
	return &Die{rng: rng}
}

// Roll returns a uniform value in [1, 6].
func (d *Die) Roll() int {
	return d.rng.IntN(Sides) + 1
}

// Scripted replays a fixed sequence of faces and then wraps around. It is used
// to drive exact game paths.
type Scripted struct {
	faces []int
	next  int
}

func NewScripted(faces ...int) *Scripted {
	return &Scripted{faces: faces}
}

func (s *Scripted) Roll() int {
	if len(s.faces) == 0 {
		return 1
	}
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return face
}

// Rolled reports how many faces have been handed out.
func (s *Scripted) Rolled() int { return s.next }
