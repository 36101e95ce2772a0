package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/repair_booking_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKV хранит снимки в таблице kv_store.
// Значения лежат в TEXT, а не JSONB: JSONB не сохраняет порядок ключей, а порядок серий моделей важен.
type PostgresKV struct {
	*base.Repository
}

func NewPostgresKV(pool *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{Repository: base.NewRepository(pool)}
}

// Get получает значение по ключу
func (r *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM kv_store
		WHERE key = $1
	`

	var value string
	err := r.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if base.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get kv %s: %w", key, err)
	}

	return value, true, nil
}

// Set сохраняет значение (upsert)
func (r *PostgresKV) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	affected, err := r.ExecAffected(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set kv %s: %w", key, err)
	}

	if affected == 0 {
		return fmt.Errorf("set kv %s: no rows written", key)
	}

	return nil
}
