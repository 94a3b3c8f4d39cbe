// Package toast holds the three-card hand that dice rolls try to clear.
package toast

import (
	"errors"
	"fmt"

	"toast/internal/game/card"
)

// Size is the number of cards drawn into a fresh toast.
const Size = 3

var ErrTooManyCards = errors.New("toast holds at most 3 cards")

// Toast is an ordered hand. Only the front card can be cleared.
type Toast struct {
	cards card.Pile
}

// New builds a toast whose front is cards[0].
func New(cards ...*card.Card) (*Toast, error) {
	if len(cards) > Size {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyCards, len(cards))
	}
	pile := make(card.Pile, 0, Size)
	for _, c := range cards {
		pile.AddCard(c)
	}
	return &Toast{cards: pile}, nil
}

func (t *Toast) Len() int       { return t.cards.Size() }
func (t *Toast) IsEmpty() bool  { return t.cards.Size() == 0 }
func (t *Toast) Sum() int       { return t.cards.Sum() }
func (t *Toast) Values() []int  { return t.cards.Values() }
func (t *Toast) String() string { return t.cards.String() }

// Front returns the card eligible for clearing, or nil when the toast is empty.
func (t *Toast) Front() *card.Card {
	c, err := t.cards.GetCard(0)
	if err != nil {
		return nil
	}
	return c
}

// TryClearFirst removes the front card if either roll matches its value and
// reports whether a card was cleared. A roll that matches a later card is
// wasted.
func (t *Toast) TryClearFirst(r0, r1 int) bool {
	front := t.Front()
	if front == nil {
		return false
	}
	if r0 != front.Value() && r1 != front.Value() {
		return false
	}
	_, err := t.cards.DrawTop()
	return err == nil
}
