package repository

import "encoding/json"

// SettingsRepository es un almacén clave-valor de documentos JSON para
// configuración persistente (ej. la división del caixa).
type SettingsRepository interface {
	// Get devuelve el documento bajo key, o nil si no existe.
	Get(key string) (json.RawMessage, error)
	// Save crea o reemplaza el documento bajo key.
	Save(key string, value json.RawMessage) error
}
