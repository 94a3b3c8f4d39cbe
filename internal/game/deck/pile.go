package deck

import (
	"toast/internal/game/card"
)

// CopiesPerValue is how many cards of each face the standard deck holds, one
// per suit.
const CopiesPerValue = 4

// StandardSize is the card count of a fresh deck.
const StandardSize = (card.MaxValue - card.MinValue + 1) * CopiesPerValue

func standardPile() card.Pile {
	p := make(card.Pile, 0, StandardSize)
	for value := card.MinValue; value <= card.MaxValue; value++ {
		for suit := 0; suit < CopiesPerValue; suit++ {
			p.AddCard(card.MustNew(value))
		}
	}
	return p
}
