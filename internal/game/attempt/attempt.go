// Package attempt plays a single toast: roll two dice per cycle against the
// toast's front card until the toast is cleared or the roll budget runs out.
//
// The budget and the score are both the toast's value sum at draw time. The
// budget is never replenished and a cycle is spent whether or not it clears a
// card.
package attempt

import (
	"fmt"

	"toast/internal/game/deck"
	"toast/internal/game/dice"
	"toast/internal/game/toast"
)

type State int

const (
	Drawn State = iota
	Rolling
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Drawn:
		return "drawn"
	case Rolling:
		return "rolling"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further cycles can run.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Result is the outcome of a finished attempt. Score is only meaningful when
// Won is true.
type Result struct {
	Won    bool
	Score  int
	Budget int
	Rolls  int
}

type Attempt struct {
	toast     *toast.Toast
	state     State
	score     int
	budget    int
	remaining int
}

// New starts an attempt on a freshly drawn toast.
func New(t *toast.Toast) *Attempt {
	sum := t.Sum()
	return &Attempt{
		toast:     t,
		state:     Drawn,
		score:     sum,
		budget:    sum,
		remaining: sum,
	}
}

// Draw toasts d and starts an attempt on the drawn cards.
func Draw(d *deck.Deck) (*Attempt, error) {
	t, err := d.Toast()
	if err != nil {
		return nil, err
	}
	return New(t), nil
}

func (a *Attempt) State() State        { return a.state }
func (a *Attempt) Budget() int         { return a.budget }
func (a *Attempt) Remaining() int      { return a.remaining }
func (a *Attempt) Rolls() int          { return a.budget - a.remaining }
func (a *Attempt) Toast() *toast.Toast { return a.toast }

// Step runs one roll cycle and returns the resulting state. Steps on a
// terminal attempt are no-ops.
func (a *Attempt) Step(r dice.Roller) State {
	if a.state.Terminal() {
		return a.state
	}
	if a.toast.IsEmpty() {
		a.state = Won
		return a.state
	}
	if a.remaining == 0 {
		a.state = Lost
		return a.state
	}

	a.remaining--
	a.toast.TryClearFirst(r.Roll(), r.Roll())

	switch {
	case a.toast.IsEmpty():
		a.state = Won
	case a.remaining == 0:
		a.state = Lost
	default:
		a.state = Rolling
	}
	return a.state
}

// Run steps until the attempt ends.
func (a *Attempt) Run(r dice.Roller) Result {
	for !a.state.Terminal() {
		a.Step(r)
	}
	return a.Result()
}

func (a *Attempt) Result() Result {
	return Result{
		Won:    a.state == Won,
		Score:  a.score,
		Budget: a.budget,
		Rolls:  a.Rolls(),
	}
}
