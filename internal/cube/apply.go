package cube

// ApplyMoves applies a sequence of moves to s in order.
func (s State) ApplyMoves(moves []*Move) State {
	for _, m := range moves {
		s = s.Apply(m)
	}
	return s
}

// Tracker follows a state as moves are applied to it.
type Tracker struct {
	state   State
	history []*Move
}

// NewTracker creates a tracker starting from the given state.
func NewTracker(start State) *Tracker {
	return &Tracker{state: start}
}

// ApplyMove applies a move to the tracked state.
func (t *Tracker) ApplyMove(m *Move) {
	t.state = t.state.Apply(m)
	t.history = append(t.history, m)
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []*Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the most recent move. Returns false if there is nothing to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.state = t.state.Apply(last.Invert())
	return true
}

// Reset returns the tracker to the solved state and clears its history.
func (t *Tracker) Reset() {
	t.state = Solved
	t.history = nil
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// History returns the moves applied since the last reset.
func (t *Tracker) History() []*Move {
	return t.history
}

// IsSolved returns true if the tracked state is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}
