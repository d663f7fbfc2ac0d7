package repository

import "github.com/Danielpnvs/usekaylla-api/internal/domain/entity"

// ClothingRepository define el puerto de persistencia para el catálogo de prendas (DIP).
type ClothingRepository interface {
	Create(item *entity.ClothingItem) error
	GetByID(id string) (*entity.ClothingItem, error)
	GetByCode(code string) (*entity.ClothingItem, error)
	Update(item *entity.ClothingItem) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.ClothingItem, error)
	// ListAll devuelve el catálogo completo (para la derivación del flujo de caja).
	ListAll() ([]*entity.ClothingItem, error)
}
