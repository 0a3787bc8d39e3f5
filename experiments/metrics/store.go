package metrics

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	id INTEGER NOT NULL,
	size INTEGER NOT NULL,
	depth_limit INTEGER NOT NULL,
	pruning BOOLEAN NOT NULL,
	move INTEGER NOT NULL,
	value REAL NOT NULL,
	nodes_visited INTEGER NOT NULL,
	nodes_evaluated INTEGER NOT NULL,
	max_depth_reached INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS games (
	id INTEGER NOT NULL,
	agent1 TEXT NOT NULL,
	agent2 TEXT NOT NULL,
	size INTEGER NOT NULL,
	starting_player INTEGER NOT NULL,
	winner TEXT NOT NULL,
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL,
	total_moves INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS moves (
	game INTEGER NOT NULL,
	step INTEGER NOT NULL,
	player INTEGER NOT NULL,
	move INTEGER NOT NULL,
	depth_limit INTEGER NOT NULL,
	nodes_visited INTEGER NOT NULL,
	nodes_evaluated INTEGER NOT NULL,
	max_depth_reached INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL
);`

// Store keeps experiment records in a SQLite database.
type Store struct {
	db *sql.DB
}

func OpenStore(ctx context.Context, file string) (*Store, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", file, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// insert runs one statement per item inside a single transaction.
func insert[T any](db *sql.DB, query string, items []T, args func(T) []any) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.Exec(args(item)...); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) WriteSearchRecords(records []SearchRecord) error {
	err := insert(s.db, `INSERT INTO searches VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, records,
		func(r SearchRecord) []any {
			return []any{r.ID, r.Size, r.DepthLimit, r.Pruning, r.Move, r.Value,
				r.NodesVisited, r.NodesEvaluated, r.MaxDepthReached, r.Duration.Nanoseconds()}
		})
	if err != nil {
		return fmt.Errorf("failed to store search records: %w", err)
	}
	return nil
}

func (s *Store) WriteGameRecords(records []GameRecord) error {
	err := insert(s.db, `INSERT INTO games VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, records,
		func(r GameRecord) []any {
			return []any{r.ID, r.Agent1, r.Agent2, r.Size, r.StartingPlayer, r.Winner,
				r.StartTime, r.EndTime, r.TotalMoves}
		})
	if err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	return nil
}

func (s *Store) WriteMoveRecords(records []MoveRecord) error {
	err := insert(s.db, `INSERT INTO moves VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, records,
		func(r MoveRecord) []any {
			return []any{r.Game, r.Step, r.Player, r.Move, r.DepthLimit,
				r.NodesVisited, r.NodesEvaluated, r.MaxDepthReached, r.Duration.Nanoseconds()}
		})
	if err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	return nil
}

// CountSearches returns the number of stored search records for a board size.
func (s *Store) CountSearches(ctx context.Context, size int) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM searches WHERE size = ?`, size).Scan(&n)
	return n, err
}
