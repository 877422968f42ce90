package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// attemptRepo implements AttemptRepo on the quiz_attempts table.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(attemptsTableName).
		Columns(attemptID, attemptScore, attemptTotal, attemptFinishedAt).
		Values(a.ID, a.Score, a.Total, a.FinishedAt.UTC()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(attemptID, attemptScore, attemptTotal, attemptFinishedAt).
		From(entsql.Table(attemptsTableName)).
		OrderBy(entsql.Desc(attemptFinishedAt), entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.Score, &a.Total, &a.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Stats(ctx context.Context) (AttemptStats, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Count("*"), entsql.Max(attemptScore)).
		From(entsql.Table(attemptsTableName)).
		Query()

	var (
		count int
		best  sql.NullInt64
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count, &best); err != nil {
		return AttemptStats{}, fmt.Errorf("query attempt stats: %w", err)
	}
	return AttemptStats{Count: count, BestScore: int(best.Int64)}, nil
}
