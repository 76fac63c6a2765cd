package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Query kinds.
const (
	KindState   = "state"
	KindMoves   = "moves"
	KindCorners = "corners"
)

// QueryRecord is one answered (or rejected) query in the history.
type QueryRecord struct {
	QueryID   string
	CreatedAt time.Time
	Kind      string
	Input     string
	Metric    string
	State     *string // decimal packed state; nil when the input did not parse
	Found     bool
	Depth     *int
	Route     *string
	Solution  *string
	Error     *string
}

// QueryRepository provides CRUD operations for the query history.
type QueryRepository struct {
	db *DB
}

// NewQueryRepository creates a new query repository.
func NewQueryRepository(db *DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// Create stores a query and returns its ID. QueryID and CreatedAt are
// assigned when empty.
func (r *QueryRepository) Create(q *QueryRecord) (string, error) {
	if q.QueryID == "" {
		q.QueryID = uuid.New().String()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO queries (query_id, created_at, kind, input, metric, state, found, depth, route, solution, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, q.QueryID, q.CreatedAt.Format(time.RFC3339), q.Kind, q.Input, q.Metric,
		q.State, q.Found, q.Depth, q.Route, q.Solution, q.Error)

	if err != nil {
		return "", fmt.Errorf("failed to create query: %w", err)
	}

	return q.QueryID, nil
}

const selectQueries = `
	SELECT query_id, created_at, kind, input, metric, state, found, depth, route, solution, error
	FROM queries
`

// Get retrieves a query by ID. Returns nil if it does not exist.
func (r *QueryRepository) Get(queryID string) (*QueryRecord, error) {
	q, err := scanQuery(r.db.QueryRow(selectQueries+"WHERE query_id = ?", queryID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get query: %w", err)
	}
	return q, nil
}

// GetLast retrieves the most recent query. Returns nil if the history is empty.
func (r *QueryRepository) GetLast() (*QueryRecord, error) {
	q, err := scanQuery(r.db.QueryRow(selectQueries + "ORDER BY seq DESC LIMIT 1"))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last query: %w", err)
	}
	return q, nil
}

// List returns up to limit queries, newest first.
func (r *QueryRepository) List(limit int) ([]QueryRecord, error) {
	rows, err := r.db.Query(selectQueries+"ORDER BY seq DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	defer rows.Close()

	var queries []QueryRecord
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query: %w", err)
		}
		queries = append(queries, *q)
	}

	return queries, rows.Err()
}

// FindByState returns earlier queries that resolved to the given state, newest first.
func (r *QueryRepository) FindByState(state string) ([]QueryRecord, error) {
	rows, err := r.db.Query(selectQueries+"WHERE state = ? ORDER BY seq DESC", state)
	if err != nil {
		return nil, fmt.Errorf("failed to find queries by state: %w", err)
	}
	defer rows.Close()

	var queries []QueryRecord
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query: %w", err)
		}
		queries = append(queries, *q)
	}

	return queries, rows.Err()
}

// Count returns the number of stored queries.
func (r *QueryRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM queries").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count queries: %w", err)
	}
	return count, nil
}

// Clear deletes all stored queries and returns how many were removed.
func (r *QueryRepository) Clear() (int64, error) {
	result, err := r.db.Exec("DELETE FROM queries")
	if err != nil {
		return 0, fmt.Errorf("failed to clear queries: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuery(row rowScanner) (*QueryRecord, error) {
	var q QueryRecord
	var createdAtStr string
	var depth sql.NullInt64

	err := row.Scan(
		&q.QueryID, &createdAtStr, &q.Kind, &q.Input, &q.Metric,
		&q.State, &q.Found, &depth, &q.Route, &q.Solution, &q.Error,
	)
	if err != nil {
		return nil, err
	}

	q.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if depth.Valid {
		d := int(depth.Int64)
		q.Depth = &d
	}

	return &q, nil
}
