package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// StateRecordName is the record key for the app state.
const StateRecordName = "uav_app_state"

// stateRepo implements StateRepo on the records table.
type stateRepo struct {
	db *sql.DB
}

func (r *stateRepo) LoadState(ctx context.Context) ([]byte, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(recordPayload).
		From(entsql.Table(recordsTableName)).
		Where(entsql.EQ(recordName, StateRecordName)).
		Limit(1).
		Query()

	var payload string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query state: %w", err)
	}
	return []byte(payload), nil
}

func (r *stateRepo) SaveState(ctx context.Context, payload []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(recordsTableName).
		Columns(recordName, recordPayload, recordUpdatedAt).
		Values(StateRecordName, string(payload), time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns(recordName),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (r *stateRepo) ClearState(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(recordsTableName).
		Where(entsql.EQ(recordName, StateRecordName)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
