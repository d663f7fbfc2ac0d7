package repository

import "github.com/Danielpnvs/usekaylla-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas (DIP).
type SaleRepository interface {
	Create(s *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	Update(s *entity.Sale) error
	// List devuelve todas las ventas ordenadas por fecha de creación descendente.
	List() ([]*entity.Sale, error)
}
