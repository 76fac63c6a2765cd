// Package route answers shortest-route queries against an explored
// predecessor database.
package route

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/pocketcube/internal/catalog"
	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/explore"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// ErrNotFound is returned for states that were not reached during exploration.
var ErrNotFound = errors.New("route: state not in database")

// Route is an ordered sequence of catalog moves.
type Route []*cube.Move

// Moves returns the face/turn identity of each move.
func (r Route) Moves() []types.Move {
	out := make([]types.Move, len(r))
	for i, m := range r {
		out[i] = m.ID()
	}
	return out
}

// String formats the route in standard notation.
func (r Route) String() string {
	return Format(r)
}

// Replay applies the route to s, in order.
func Replay(s cube.State, r Route) cube.State {
	for _, m := range r {
		s = s.Apply(m)
	}
	return s
}

// Format returns the route as space-separated notation, e.g. "U F' R2".
func Format(r Route) string {
	return notation.Format(r.Moves())
}

// Service reconstructs and parses routes using a single database and
// the catalog it was built with.
type Service struct {
	cat *catalog.Catalog
	db  *explore.DB
}

// NewService creates a service over a built database.
func NewService(db *explore.DB) *Service {
	return &Service{cat: db.Catalog(), db: db}
}

// Catalog returns the catalog used to resolve notation.
func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// DB returns the underlying predecessor database.
func (s *Service) DB() *explore.DB {
	return s.db
}

// Reconstruct returns the shortest route from solved to state, in forward
// order. The route for the solved state is empty.
func (s *Service) Reconstruct(state cube.State) (Route, error) {
	step, ok := s.db.Lookup(state)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, uint64(state))
	}

	r := make(Route, 0, step.Depth)
	for cur := state; cur != cube.Solved; {
		step, ok := s.db.Lookup(cur)
		if !ok {
			panic(fmt.Sprintf("route: predecessor %d missing from database", uint64(cur)))
		}
		r = append(r, s.cat.Move(step.Move))
		cur = step.Prev
	}

	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r, nil
}

// Parse parses move text into catalog moves. Every face/turn combination
// the notation accepts exists in the complete catalog, whatever the
// exploration metric.
func (s *Service) Parse(text string) (Route, error) {
	moves, err := notation.Parse(text)
	if err != nil {
		return nil, err
	}
	return s.Resolve(moves), nil
}

// Resolve maps face/turn identities to catalog moves.
func (s *Service) Resolve(moves []types.Move) Route {
	r := make(Route, len(moves))
	for i, m := range moves {
		r[i] = s.cat.Move(s.cat.MustFind(m.Face, m.Turn))
	}
	return r
}

// Inverse returns the route that undoes r: reversed, each move inverted.
func (s *Service) Inverse(r Route) Route {
	inv := make(Route, len(r))
	for i, m := range r {
		inv[len(r)-1-i] = s.cat.Move(s.cat.MustFind(m.Face, m.Turn.Inverse()))
	}
	return inv
}
