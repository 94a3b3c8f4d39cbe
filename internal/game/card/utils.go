package card

import (
	"fmt"
)

// Tipo para funções de validação
type cardValidator func(*Card) error

func validateValue(c *Card) error {
	if c.value < MinValue || c.value > MaxValue {
		return fmt.Errorf("%w: %d (must be %d–%d)", ErrInvalidValue, c.value, MinValue, MaxValue)
	}
	return nil
}

// Sum adds up the face values of cards.
func Sum(cards []*Card) int {
	total := 0
	for _, c := range cards {
		total += c.value
	}
	return total
}
