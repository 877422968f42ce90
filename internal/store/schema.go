package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	recordsTableName = "records"
	recordName       = "name"
	recordPayload    = "payload"
	recordUpdatedAt  = "updated_at"

	attemptsTableName = "quiz_attempts"
	attemptID         = "attempt_id"
	attemptScore      = "score"
	attemptTotal      = "total"
	attemptFinishedAt = "finished_at"
)

var (
	// RecordsColumns holds the columns of the key-value records table.
	RecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: recordName, Type: field.TypeString, Unique: true},
		{Name: recordPayload, Type: field.TypeString, Size: 2147483647},
		{Name: recordUpdatedAt, Type: field.TypeTime},
	}
	// RecordsTable holds one row per named durable record.
	RecordsTable = &schema.Table{
		Name:       recordsTableName,
		Columns:    RecordsColumns,
		PrimaryKey: []*schema.Column{RecordsColumns[0]},
	}

	// AttemptsColumns holds the columns of the quiz attempts table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: attemptID, Type: field.TypeString, Unique: true},
		{Name: attemptScore, Type: field.TypeInt},
		{Name: attemptTotal, Type: field.TypeInt},
		{Name: attemptFinishedAt, Type: field.TypeTime},
	}
	// AttemptsTable logs every finished quiz session.
	AttemptsTable = &schema.Table{
		Name:       attemptsTableName,
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_finished_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4]},
			},
		},
	}

	// Tables holds every table the store manages.
	Tables = []*schema.Table{
		RecordsTable,
		AttemptsTable,
	}
)

// migrate creates or updates the tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
