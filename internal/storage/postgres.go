package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarpenko/tasklist/internal/model"
)

const pgStateKey = "tasks"

// Postgres stores the collection as a single jsonb value in a one-row
// key-value table, so a save is a whole-value upsert like the other adapters.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, pool *pgxpool.Pool) (*Postgres, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasklist_state (
			key  text PRIMARY KEY,
			data jsonb NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("ensure tasklist_state table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Load(ctx context.Context) ([]model.Task, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `
		SELECT data FROM tasklist_state WHERE key = $1
	`, pgStateKey).Scan(&data)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeJSON(data), nil
}

func (p *Postgres) Save(ctx context.Context, tasks []model.Task) error {
	data, err := encodeJSON(tasks)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO tasklist_state (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data
	`, pgStateKey, data)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
