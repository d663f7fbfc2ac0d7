package cashflow

import (
	"context"

	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cierra la ventana validar-luego-persistir:
// el corte que valida el saldo y la escritura comparten transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		clothingRepo repository.ClothingRepository,
	) error) error
}
