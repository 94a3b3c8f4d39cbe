package solitaire

import (
	"math/rand/v2"
	"testing"

	"toast/internal/game/card"
	"toast/internal/game/deck"
	"toast/internal/game/dice"
)

func deckOf(values ...int) *deck.Deck {
	cards := make([]*card.Card, 0, len(values))
	for _, v := range values {
		cards = append(cards, card.MustNew(v))
	}
	return deck.FromCards(cards...)
}

func TestPlay(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		faces     []int
		want      Outcome
		attempts  int
		cleared   int
		score     int
		remaining int
	}{
		{
			name:     "all ones cleared",
			values:   []int{1, 1, 1, 1, 1, 1},
			faces:    []int{1, 6},
			want:     Won,
			attempts: 2,
			cleared:  2,
			score:    6,
		},
		{
			name:      "first attempt fails",
			values:    []int{2, 2, 2, 1, 1, 1},
			faces:     []int{6},
			want:      Lost,
			attempts:  1,
			cleared:   0,
			remaining: 3,
		},
		{
			name:     "second attempt fails",
			values:   []int{3, 3, 3, 1, 1, 1},
			faces:    []int{1, 1, 1, 1, 1, 1, 6},
			want:     Lost,
			attempts: 2,
			cleared:  1,
			score:    3,
		},
		{
			name:      "leftover cards after a win",
			values:    []int{4, 5, 1, 1, 1},
			faces:     []int{1},
			want:      Incomplete,
			attempts:  1,
			cleared:   1,
			score:     3,
			remaining: 2,
		},
		{
			name:   "empty deck",
			values: nil,
			faces:  []int{1},
			want:   Incomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Play(deckOf(tt.values...), dice.NewScripted(tt.faces...))
			if rec.Outcome != tt.want {
				t.Errorf("Outcome = %v, want %v", rec.Outcome, tt.want)
			}
			if rec.Attempts != tt.attempts {
				t.Errorf("Attempts = %d, want %d", rec.Attempts, tt.attempts)
			}
			if rec.Cleared != tt.cleared {
				t.Errorf("Cleared = %d, want %d", rec.Cleared, tt.cleared)
			}
			if rec.Score != tt.score {
				t.Errorf("Score = %d, want %d", rec.Score, tt.score)
			}
			if rec.Remaining != tt.remaining {
				t.Errorf("Remaining = %d, want %d", rec.Remaining, tt.remaining)
			}
		})
	}
}

func TestPlayShuffled_StandardDeckNeverIncomplete(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 1))
	for i := 0; i < 500; i++ {
		rec := PlayShuffled(rng)
		switch rec.Outcome {
		case Won:
			if rec.Remaining != 0 || rec.Cleared != deck.StandardSize/3 {
				t.Fatalf("won game left %d cards after %d toasts", rec.Remaining, rec.Cleared)
			}
		case Lost:
			if rec.Cleared != rec.Attempts-1 {
				t.Fatalf("lost game cleared %d of %d attempts", rec.Cleared, rec.Attempts)
			}
		default:
			t.Fatalf("standard deck ended %v", rec.Outcome)
		}
	}
}
