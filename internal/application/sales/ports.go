package sales

import (
	"context"

	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la venta y el
// descuento de stock de las variaciones.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		clothingRepo repository.ClothingRepository,
	) error) error
}
