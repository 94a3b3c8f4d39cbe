package card

import (
	"errors"
	"strconv"
)

const (
	MinValue = 1
	MaxValue = 6
)

var ErrInvalidValue = errors.New("invalid card value")

// Card is an immutable face value in [MinValue, MaxValue].
type Card struct {
	value int
}

func (c *Card) Value() int { return c.value }

func (c *Card) String() string { return strconv.Itoa(c.value) }

// ---- Constructors ----

func New(value int) (*Card, error) {
	card := &Card{value: value}

	validators := []cardValidator{
		validateValue,
	}

	for _, v := range validators {
		if err := v(card); err != nil {
			return nil, err
		}
	}

	return card, nil
}

// MustNew is New for values the caller guarantees are valid. An invalid value
// is a bug in the caller and panics.
func MustNew(value int) *Card {
	c, err := New(value)
	if err != nil {
		panic(err)
	}
	return c
}
