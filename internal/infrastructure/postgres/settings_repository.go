package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo almacén clave-valor de documentos JSON sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración persistente.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve el documento bajo key, o nil si no existe.
func (r *SettingsRepo) Get(key string) (json.RawMessage, error) {
	var value []byte
	err := r.q.QueryRow(context.Background(),
		`SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// Save crea o reemplaza el documento bajo key.
func (r *SettingsRepo) Save(key string, value json.RawMessage) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, key, []byte(value))
	if err != nil {
		return fmt.Errorf("save setting: %w", err)
	}
	return nil
}
