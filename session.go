package pocketcube

import (
	"sync"
	"time"

	"github.com/SeamusWaldron/pocketcube/internal/catalog"
	"github.com/SeamusWaldron/pocketcube/internal/explore"
	"github.com/SeamusWaldron/pocketcube/internal/route"
)

// Session owns an explored database and answers route queries against it.
// A Session is read-only after Explore returns and safe for concurrent queries.
type Session struct {
	metric  Metric
	service *route.Service
	built   time.Duration
}

// Explore builds the predecessor database for every reachable state.
// Every one of the 3,674,160 configurations is visited once; the
// database itself is two bytes per configuration.
func Explore(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	cfg.logger.Debug("building database", "metric", cfg.metric)
	start := time.Now()
	db := explore.Build(catalog.Default(cfg.metric))
	elapsed := time.Since(start)
	cfg.logger.Info("database ready",
		"metric", cfg.metric,
		"states", db.Len(),
		"gods_number", db.MaxDepth(),
		"elapsed", elapsed.Round(time.Millisecond))

	return &Session{
		metric:  cfg.metric,
		service: route.NewService(db),
		built:   elapsed,
	}
}

// Histogram counts the states first reached at each depth under metric.
func Histogram(metric Metric) []int {
	return explore.Histogram(catalog.Default(metric))
}

// Metric returns the exploration metric of the session.
func (s *Session) Metric() Metric {
	return s.metric
}

// States returns the number of indexed configurations.
func (s *Session) States() int {
	return s.service.DB().Len()
}

// GodsNumber returns the longest shortest route in the session's metric.
func (s *Session) GodsNumber() int {
	return s.service.DB().MaxDepth()
}

// BuildTime returns how long the database took to build.
func (s *Session) BuildTime() time.Duration {
	return s.built
}

// Depths returns the per-depth state counts of the database.
func (s *Session) Depths() []int {
	return s.service.DB().Histogram()
}

// Contains reports whether state is indexed.
func (s *Session) Contains(state State) bool {
	return s.service.DB().Contains(state)
}

// RouteForState returns the shortest route from solved to state.
// Returns ErrNoRoute if the state is not reachable.
func (s *Session) RouteForState(state State) (*Answer, error) {
	return s.service.ForState(state)
}

// RouteForText parses a move sequence, replays it from solved and returns
// the shortest route to the resulting state.
func (s *Session) RouteForText(text string) (*Answer, error) {
	return s.service.ForText(text)
}

// Parse parses move text into a route. All nine move variants are
// accepted regardless of the session's metric.
func (s *Session) Parse(text string) (Route, error) {
	return s.service.Parse(text)
}

// Resolve converts face/turn identities into a route.
func (s *Session) Resolve(moves []Move) Route {
	return s.service.Resolve(moves)
}

// Replay applies a route to state.
func Replay(state State, r Route) State {
	return route.Replay(state, r)
}

// completeCatalog resolves moves for ApplyMoves; every catalog holds all
// nine variants regardless of metric.
var completeCatalog = sync.OnceValue(func() *catalog.Catalog {
	return catalog.Default(QuarterTurn)
})

// ApplyMoves applies moves to state without needing a built database.
func ApplyMoves(state State, moves []Move) State {
	cat := completeCatalog()
	for _, m := range moves {
		state = state.Apply(cat.Move(cat.MustFind(m.Face, m.Turn)))
	}
	return state
}
