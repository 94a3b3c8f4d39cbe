package card

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var ErrEmptyPile = errors.New("pile is empty")

// Pile is an ordered sequence of cards. Index 0 is the front, the last index
// is the tail.
type Pile []*Card

// Size retorna o número de cartas na pilha.
func (p *Pile) Size() int {
	if p == nil {
		return 0
	}
	return len(*p)
}

// Shuffle applies a Fisher-Yates permutation driven by r.
func (p *Pile) Shuffle(r *rand.Rand) {
	n := p.Size()
	if n > 1 {
		for i := n - 1; i > 0; i-- {
			j := r.IntN(i + 1)
			(*p)[i], (*p)[j] = (*p)[j], (*p)[i]
		}
	}
}

func (p *Pile) GetCard(index int) (*Card, error) {
	if index < 0 || index >= p.Size() {
		return nil, fmt.Errorf("index %d out of range", index)
	}
	return (*p)[index], nil
}

// DrawTail removes and returns the card at the tail of the pile.
func (p *Pile) DrawTail() (*Card, error) {
	n := p.Size()
	if n == 0 {
		return nil, ErrEmptyPile
	}

	tail := (*p)[n-1]
	(*p)[n-1] = nil
	*p = (*p)[:n-1]
	return tail, nil
}

// DrawTop removes and returns the front card, shifting the rest forward.
func (p *Pile) DrawTop() (*Card, error) {
	if p.Size() == 0 {
		return nil, ErrEmptyPile
	}

	top := (*p)[0]
	*p = (*p)[1:]
	return top, nil
}

func (p *Pile) AddCard(c *Card) {
	*p = append(*p, c)
}

// Sum returns the total face value of the pile.
func (p *Pile) Sum() int {
	if p == nil {
		return 0
	}
	return Sum(*p)
}

// Values returns the face values in pile order.
func (p *Pile) Values() []int {
	values := make([]int, 0, p.Size())
	if p == nil {
		return values
	}
	for _, c := range *p {
		values = append(values, c.Value())
	}
	return values
}

func (p *Pile) String() string {
	if p == nil || p.Size() == 0 {
		return "(Empty)"
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range *p {
		if i > 0 {
			sb.WriteString(" ")
		}
		if c == nil {
			sb.WriteString("<nil card>")
		} else {
			sb.WriteString(c.String())
		}
	}
	sb.WriteString("]")
	return sb.String()
}
