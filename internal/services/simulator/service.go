// Package simulator runs many independent games of Toast and aggregates how
// many of them cleared the whole deck.
package simulator

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"

	"toast/internal/game/solitaire"
)

// Report aggregates the outcome of a run.
type Report struct {
	RunID      string
	Trials     int
	Wins       int
	Losses     int
	Incomplete int
	// Cleared, Score and Rolls hold one sample per game.
	Cleared Stat
	Score   Stat
	Rolls   Stat
}

// WinRate is Wins over Trials.
func (r Report) WinRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Trials)
}

// Line is the run's single line of output.
func (r Report) Line() string {
	return fmt.Sprintf("%d of %d attempts won", r.Wins, r.Trials)
}

// PlayFunc plays one game. It is swapped out in tests.
type PlayFunc func(rng *rand.Rand) solitaire.Record

// Simulator drives games sequentially from one random source.
type Simulator struct {
	rng    *rand.Rand
	play   PlayFunc
	logger *log.Logger
}

type Option func(*Simulator)

// WithLogger routes run summaries to l. Without it nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithPlay replaces the game played per trial.
func WithPlay(p PlayFunc) Option {
	return func(s *Simulator) { s.play = p }
}

func New(rng *rand.Rand, opts ...Option) *Simulator {
	s := &Simulator{
		rng:    rng,
		play:   solitaire.PlayShuffled,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays trials games, each with its own freshly shuffled deck.
func (s *Simulator) Run(trials int) Report {
	rep := Report{
		RunID:  uuid.NewString(),
		Trials: trials,
	}
	s.logger.Printf("[Simulator] run %s: playing %d games", rep.RunID, trials)

	for i := 0; i < trials; i++ {
		rec := s.play(s.rng)
		switch rec.Outcome {
		case solitaire.Won:
			rep.Wins++
		case solitaire.Lost:
			rep.Losses++
		case solitaire.Incomplete:
			rep.Incomplete++
		}
		rep.Cleared.Add(rec.Cleared)
		rep.Score.Add(rec.Score)
		rep.Rolls.Add(rec.Rolls)
	}

	s.logger.Printf("[Simulator] run %s: won=%d lost=%d incomplete=%d rate=%.4f",
		rep.RunID, rep.Wins, rep.Losses, rep.Incomplete, rep.WinRate())
	s.logger.Printf("[Simulator] run %s: toasts cleared %.2f ± %.2f, score %.2f ± %.2f, rolls %.2f ± %.2f",
		rep.RunID, rep.Cleared.Avg(), rep.Cleared.Dev(), rep.Score.Avg(), rep.Score.Dev(), rep.Rolls.Avg(), rep.Rolls.Dev())
	return rep
}
