// Package catalog derives the closed set of usable moves from the
// three generator quarter turns.
package catalog

import (
	"fmt"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// ID indexes a move in a Catalog.
type ID uint8

// NoMove marks the absence of a move, e.g. the database entry of the solved state.
const NoMove ID = 0xFF

// Catalog holds every move variant derived from the generators.
//
// The complete set is ordered quarter turns, then inverses, then doubles,
// so the exploration set for a metric is always a prefix of it.
type Catalog struct {
	metric   types.Metric
	moves    []*cube.Move
	explored int
	index    map[types.Move]ID
}

// New builds a catalog from three clockwise generator moves.
func New(gens [3]*cube.Move, metric types.Metric) (*Catalog, error) {
	c := &Catalog{
		metric: metric,
		moves:  make([]*cube.Move, 0, 3*len(gens)),
		index:  make(map[types.Move]ID, 3*len(gens)),
	}

	for _, g := range gens {
		if g.Turn != types.TurnQuarter {
			return nil, fmt.Errorf("generator %s: %w", g, cube.ErrNotQuarterTurn)
		}
		c.add(g)
	}
	for _, g := range gens {
		c.add(g.Invert())
	}
	for _, g := range gens {
		d, err := g.Double()
		if err != nil {
			return nil, fmt.Errorf("failed to double generator %s: %w", g, err)
		}
		c.add(d)
	}

	c.explored = 2 * len(gens)
	if metric.IncludesDouble() {
		c.explored = len(c.moves)
	}
	return c, nil
}

// Default builds the catalog for the U, F and R generators.
func Default(metric types.Metric) *Catalog {
	c, err := New(cube.Generators(), metric)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in generators rejected: %v", err))
	}
	return c
}

func (c *Catalog) add(m *cube.Move) {
	c.index[m.ID()] = ID(len(c.moves))
	c.moves = append(c.moves, m)
}

// Metric returns the metric the exploration set was built for.
func (c *Catalog) Metric() types.Metric {
	return c.metric
}

// Len returns the size of the complete catalog.
func (c *Catalog) Len() int {
	return len(c.moves)
}

// Move returns the move with the given ID.
func (c *Catalog) Move(id ID) *cube.Move {
	return c.moves[id]
}

// Moves returns the complete catalog in ID order.
func (c *Catalog) Moves() []*cube.Move {
	return c.moves
}

// Exploration returns the moves used as graph edges under the catalog's
// metric, in ID order.
func (c *Catalog) Exploration() []*cube.Move {
	return c.moves[:c.explored]
}

// Find looks up a move by face and turn in the complete catalog.
func (c *Catalog) Find(face types.Face, turn types.Turn) (ID, bool) {
	id, ok := c.index[types.Move{Face: face, Turn: turn}]
	return id, ok
}

// MustFind is Find for callers that only request combinations the catalog
// was built with. A miss means the catalog is inconsistent and panics.
func (c *Catalog) MustFind(face types.Face, turn types.Turn) ID {
	id, ok := c.Find(face, turn)
	if !ok {
		panic(fmt.Sprintf("catalog: no move for face %q turn %d", face, turn))
	}
	return id
}

// Inverse returns the ID of the move that undoes id.
func (c *Catalog) Inverse(id ID) ID {
	m := c.moves[id]
	return c.MustFind(m.Face, m.Turn.Inverse())
}
