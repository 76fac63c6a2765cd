package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp())
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr[T any](v T) *T {
	return &v
}

func TestMigrateUp_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.MigrateUp())

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestMigrateUp_KeepsVersionOneRows(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(migration001)
	require.NoError(t, err)
	_, err = db.Exec("PRAGMA user_version = 1")
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO queries (query_id, created_at, kind, input, metric)
		VALUES ('q1', '2026-01-01T00:00:00Z', 'moves', 'U', 'quarter')
	`)
	require.NoError(t, err)

	require.NoError(t, db.MigrateUp())

	repo := NewQueryRepository(db)
	old, err := repo.Get("q1")
	require.NoError(t, err)
	assert.Equal(t, "U", old.Input)

	_, err = repo.Create(&QueryRecord{Kind: KindCorners, Input: "OGW OWB WGR YGO WRB RGY BYO YBR", Metric: "quarter"})
	require.NoError(t, err)
	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTransaction_RollsBack(t *testing.T) {
	db := openTestDB(t)

	boom := errors.New("boom")
	err := db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO queries (query_id, created_at, kind, input, metric)
			VALUES ('q1', '2026-01-01T00:00:00Z', 'moves', 'U', 'quarter')
		`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := NewQueryRepository(db).Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueryRepository_CreateAndGet(t *testing.T) {
	repo := NewQueryRepository(openTestDB(t))

	id, err := repo.Create(&QueryRecord{
		Kind:     KindMoves,
		Input:    "U F R",
		Metric:   "quarter",
		State:    ptr("507521467748453650"),
		Found:    true,
		Depth:    ptr(3),
		Route:    ptr("U F R"),
		Solution: ptr("R' F' U'"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	q, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, KindMoves, q.Kind)
	assert.Equal(t, "U F R", q.Input)
	assert.True(t, q.Found)
	require.NotNil(t, q.Depth)
	assert.Equal(t, 3, *q.Depth)
	require.NotNil(t, q.State)
	assert.Equal(t, "507521467748453650", *q.State)
	assert.Nil(t, q.Error)
	assert.False(t, q.CreatedAt.IsZero())
}

func TestQueryRepository_GetMissing(t *testing.T) {
	repo := NewQueryRepository(openTestDB(t))
	q, err := repo.Get("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, q)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestQueryRepository_ListNewestFirst(t *testing.T) {
	repo := NewQueryRepository(openTestDB(t))
	for _, input := range []string{"U", "F", "R"} {
		_, err := repo.Create(&QueryRecord{Kind: KindMoves, Input: input, Metric: "half"})
		require.NoError(t, err)
	}
	_, err := repo.Create(&QueryRecord{
		Kind:   KindMoves,
		Input:  "X",
		Metric: "half",
		Error:  ptr(`notation: invalid face letter 'X' at position 0`),
	})
	require.NoError(t, err)

	list, err := repo.List(3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "X", list[0].Input)
	assert.NotNil(t, list[0].Error)
	assert.Nil(t, list[0].State)
	assert.Nil(t, list[0].Depth)
	assert.Equal(t, "R", list[1].Input)
	assert.Equal(t, "F", list[2].Input)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Equal(t, "X", last.Input)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	removed, err := repo.Clear()
	require.NoError(t, err)
	assert.EqualValues(t, 4, removed)
}

func TestQueryRepository_FindByState(t *testing.T) {
	repo := NewQueryRepository(openTestDB(t))
	state := "506097522914230273"
	_, err := repo.Create(&QueryRecord{Kind: KindState, Input: state, Metric: "quarter", State: ptr(state), Found: true})
	require.NoError(t, err)
	_, err = repo.Create(&QueryRecord{Kind: KindState, Input: "0", Metric: "quarter", State: ptr("0")})
	require.NoError(t, err)

	found, err := repo.FindByState(state)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, KindState, found[0].Kind)
}

func TestQueryRepository_RejectsUnknownKind(t *testing.T) {
	repo := NewQueryRepository(openTestDB(t))
	_, err := repo.Create(&QueryRecord{Kind: "other", Input: "U", Metric: "quarter"})
	assert.Error(t, err)
}
