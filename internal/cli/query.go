package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// buildSession explores the cube space under the configured metric.
func buildSession(ctx context.Context) *pocketcube.Session {
	return pocketcube.Explore(
		pocketcube.WithMetric(settings.metric),
		pocketcube.WithLogger(loggerFromContext(ctx)),
	)
}

// query is one state or move-sequence lookup and its outcome.
type query struct {
	kind   string
	input  string
	metric types.Metric
	state  *pocketcube.State // nil when the input did not parse
	answer *pocketcube.Answer
	err    error
}

// found reports whether the query produced a route.
func (q *query) found() bool {
	return q.answer != nil
}

// runStateQuery answers a query for a packed state number.
func runStateQuery(s *pocketcube.Session, input string) *query {
	q := &query{kind: storage.KindState, input: input, metric: s.Metric()}

	state, err := pocketcube.ParseState(input)
	if err != nil {
		q.err = err
		return q
	}
	q.state = &state
	q.answer, q.err = s.RouteForState(state)
	return q
}

// runCornersQuery answers a query for corner sticker colours, given as
// eight three-letter groups separated by commas or spaces.
func runCornersQuery(s *pocketcube.Session, input string) *query {
	corners := splitCorners(input)
	q := &query{kind: storage.KindCorners, input: strings.Join(corners, " "), metric: s.Metric()}

	state, err := pocketcube.StateFromCorners(corners)
	if err != nil {
		q.err = err
		return q
	}
	q.state = &state
	q.answer, q.err = s.RouteForState(state)
	return q
}

func splitCorners(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// runMovesQuery answers a query for a move sequence.
func runMovesQuery(s *pocketcube.Session, input string) *query {
	q := &query{kind: storage.KindMoves, input: input, metric: s.Metric()}

	q.answer, q.err = s.RouteForText(input)
	switch {
	case q.answer != nil:
		q.state = &q.answer.State
	case errors.Is(q.err, pocketcube.ErrNoRoute):
		// The text parsed, so the state it reaches is still worth recording.
		if r, err := s.Parse(input); err == nil {
			state := pocketcube.Replay(pocketcube.Solved, r)
			q.state = &state
		}
	}
	return q
}

// record converts the query to a history row.
func (q *query) record() *storage.QueryRecord {
	rec := &storage.QueryRecord{
		Kind:   q.kind,
		Input:  q.input,
		Metric: q.metric.String(),
		Found:  q.found(),
	}

	if q.state != nil {
		s := q.state.String()
		rec.State = &s
	}
	if q.answer != nil {
		depth := q.answer.Depth()
		route := pocketcube.Format(q.answer.Route)
		solution := pocketcube.Format(q.answer.Solution)
		rec.Depth = &depth
		rec.Route = &route
		rec.Solution = &solution
	}
	if q.err != nil {
		msg := q.err.Error()
		rec.Error = &msg
	}

	return rec
}

// history records answered queries. A nil *history records nothing.
type history struct {
	db     *storage.DB
	repo   *storage.QueryRepository
	logger *log.Logger
}

// openHistory opens the query history when it is enabled. Failures are
// logged and disable recording rather than failing the command.
func openHistory(ctx context.Context) *history {
	if !settings.history {
		return nil
	}

	logger := loggerFromContext(ctx)
	db, err := openDB()
	if err != nil {
		logger.Warn("query history disabled", "err", err)
		return nil
	}
	return &history{db: db, repo: storage.NewQueryRepository(db), logger: logger}
}

func (h *history) add(q *query) {
	if h == nil {
		return
	}
	id, err := h.repo.Create(q.record())
	if err != nil {
		h.logger.Warn("failed to record query", "err", err)
		return
	}
	h.logger.Debug("query recorded", "id", id)
}

func (h *history) Close() error {
	if h == nil {
		return nil
	}
	return h.db.Close()
}

// openDB opens and migrates the query history database.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if settings.dbPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(settings.dbPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
