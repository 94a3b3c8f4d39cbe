package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"toast/internal/game/card"
	"toast/internal/game/toast"
)

var (
	ErrNotEnoughCards = errors.New("not enough cards to toast")
	ErrEmptyDeck      = errors.New("deck is empty")
)

// Deck is the draw pile for one game. Cards leave it from the tail and are
// never returned.
type Deck struct {
	cards card.Pile
}

// New builds the standard deck and shuffles it with r.
func New(r *rand.Rand) *Deck {
	d := &Deck{cards: standardPile()}
	d.cards.Shuffle(r)
	return d
}

// FromCards builds an unshuffled deck whose tail is the last element of cards.
func FromCards(cards ...*card.Card) *Deck {
	pile := make(card.Pile, 0, len(cards))
	for _, c := range cards {
		pile.AddCard(c)
	}
	return &Deck{cards: pile}
}

func (d *Deck) Len() int       { return d.cards.Size() }
func (d *Deck) IsEmpty() bool  { return d.cards.Size() == 0 }
func (d *Deck) CanToast() bool { return d.cards.Size() >= toast.Size }
func (d *Deck) Values() []int  { return d.cards.Values() }
func (d *Deck) String() string { return d.cards.String() }

// TotalValue is the sum of every card still in the deck.
func (d *Deck) TotalValue() int {
	return d.cards.Sum()
}

// AverageValue is TotalValue divided by Len.
func (d *Deck) AverageValue() (float64, error) {
	if d.IsEmpty() {
		return 0, ErrEmptyDeck
	}
	return float64(d.TotalValue()) / float64(d.Len()), nil
}

// Toast moves the three tail cards into a new toast. The card drawn first
// becomes the toast's front.
func (d *Deck) Toast() (*toast.Toast, error) {
	if !d.CanToast() {
		return nil, fmt.Errorf("%w: %d left, need %d", ErrNotEnoughCards, d.Len(), toast.Size)
	}

	drawn := make([]*card.Card, 0, toast.Size)
	for i := 0; i < toast.Size; i++ {
		c, err := d.cards.DrawTail()
		if err != nil {
			return nil, err
		}
		drawn = append(drawn, c)
	}
	return toast.New(drawn...)
}
