package repository

import "github.com/Danielpnvs/usekaylla-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para los movimientos
// del flujo de caja (DIP).
type MovementRepository interface {
	Create(m *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Update(m *entity.Movement) error
	Delete(id string) error
	// List devuelve todos los movimientos ordenados por fecha descendente.
	List() ([]*entity.Movement, error)
}
