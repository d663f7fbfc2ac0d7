package cashflow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Danielpnvs/usekaylla-api/internal/domain"
)

// InsufficientBalanceError indica que una salida excede el saldo disponible
// de su cubo. Lleva el contexto necesario para un mensaje accionable; el
// monto nunca se recorta en silencio.
type InsufficientBalanceError struct {
	Bucket    string // reinvestment | store_cash | salary | packaging
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("saldo insuficiente en %s: disponible %s, solicitado %s",
		e.Bucket, e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientBalance).
func (e *InsufficientBalanceError) Unwrap() error { return domain.ErrInsufficientBalance }
