// Package solitaire plays one full game of Toast: attempts are repeated
// against a single deck until one fails or the deck runs out.
package solitaire

import (
	"fmt"
	"math/rand/v2"

	"toast/internal/game/attempt"
	"toast/internal/game/deck"
	"toast/internal/game/dice"
)

type Outcome int

const (
	// Lost means an attempt ran out of rolls. The rest of the deck is forfeit.
	Lost Outcome = iota
	// Won means every card in the deck was cleared.
	Won
	// Incomplete means the deck still held cards but fewer than a toast.
	Incomplete
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Incomplete:
		return "incomplete"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Record summarises a finished game.
type Record struct {
	Outcome Outcome
	// Attempts counts toasts drawn, including a final failed one.
	Attempts int
	// Cleared counts toasts that were won.
	Cleared int
	// Score is the sum of won toast scores.
	Score int
	// Rolls is the total roll cycles spent across all attempts.
	Rolls int
	// Remaining is the number of cards left in the deck at the end.
	Remaining int
}

// Play runs attempts against d until the game ends. d is consumed.
func Play(d *deck.Deck, r dice.Roller) Record {
	var rec Record
	for {
		if !d.CanToast() {
			rec.Remaining = d.Len()
			if d.IsEmpty() && rec.Attempts > 0 {
				rec.Outcome = Won
			} else {
				rec.Outcome = Incomplete
			}
			return rec
		}

		a, err := attempt.Draw(d)
		if err != nil {
			// CanToast guards Draw; an error here leaves the deck unplayable.
			rec.Outcome = Incomplete
			rec.Remaining = d.Len()
			return rec
		}

		res := a.Run(r)
		rec.Attempts++
		rec.Rolls += res.Rolls
		if !res.Won {
			rec.Outcome = Lost
			rec.Remaining = d.Len()
			return rec
		}
		rec.Cleared++
		rec.Score += res.Score
	}
}

// PlayShuffled deals a fresh standard deck from rng and plays it with a fair
// die on the same source.
func PlayShuffled(rng *rand.Rand) Record {
	return Play(deck.New(rng), dice.New(rng))
}
