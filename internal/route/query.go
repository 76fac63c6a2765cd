package route

import (
	"github.com/SeamusWaldron/pocketcube/internal/cube"
)

// Answer is the result of a route query.
type Answer struct {
	// Input is the parsed move sequence for text queries, nil for state queries.
	Input Route
	// State is the configuration the query resolved to.
	State cube.State
	// Route is the shortest sequence from solved to State.
	Route Route
	// Solution is the shortest sequence from State back to solved.
	Solution Route
}

// Depth returns the length of the shortest route.
func (a *Answer) Depth() int {
	return len(a.Route)
}

// ForState answers a query for a raw packed state.
func (s *Service) ForState(state cube.State) (*Answer, error) {
	r, err := s.Reconstruct(state)
	if err != nil {
		return nil, err
	}
	return &Answer{State: state, Route: r, Solution: s.Inverse(r)}, nil
}

// ForText parses a move sequence, replays it from solved and answers a
// query for the resulting state. Text is resolved against the complete
// catalog, so it may describe moves the database was not explored with;
// a resulting state absent from the database is reported as ErrNotFound.
func (s *Service) ForText(text string) (*Answer, error) {
	input, err := s.Parse(text)
	if err != nil {
		return nil, err
	}
	state := Replay(cube.Solved, input)
	a, err := s.ForState(state)
	if err != nil {
		return nil, err
	}
	a.Input = input
	return a, nil
}
