package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutflowRequest entrada para registrar o editar una salida del flujo de caja.
// Date usa formato "2006-01-02"; la hora la fija el servidor (mediodía UTC).
type OutflowRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Origin      string          `json:"origin"`                // cash | packaging
	Subcategory string          `json:"subcategory,omitempty"` // solo para origin=cash; vacío = reinvestment
	Amount      decimal.Decimal `json:"amount"`
}

// MovementResponse representación de un movimiento del libro.
type MovementResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Kind        string          `json:"kind"`
	Origin      string          `json:"origin"`
	Subcategory *string         `json:"subcategory,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BucketDTO cifras de un cubo de caja.
type BucketDTO struct {
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Balance   decimal.Decimal `json:"balance"`
}

// SnapshotResponse estado derivado completo del flujo de caja.
type SnapshotResponse struct {
	TotalPaidRevenue  decimal.Decimal      `json:"total_paid_revenue"`
	PendingRevenue    decimal.Decimal      `json:"pending_revenue"`
	PackagingPool     decimal.Decimal      `json:"packaging_pool"`
	CashOutflows      decimal.Decimal      `json:"cash_outflows"`
	PackagingOutflows decimal.Decimal      `json:"packaging_outflows"`
	CashBalance       decimal.Decimal      `json:"cash_balance"`
	PackagingBalance  decimal.Decimal      `json:"packaging_balance"`
	Buckets           map[string]BucketDTO `json:"buckets"`
}

// AllocationResponse división del caixa con su flag de validez.
// Las claves JSON de los porcentajes se conservan del front-end legado.
type AllocationResponse struct {
	Reinvestment decimal.Decimal `json:"reinvestment"`
	StoreCash    decimal.Decimal `json:"caixaLoja"`
	Salary       decimal.Decimal `json:"salario"`
	IsValid      bool            `json:"is_valid"`
}

// AllocationUpdateRequest actualización de un solo porcentaje.
// Field: reinvestment | store_cash | salary. Value se acota a [0,100].
type AllocationUpdateRequest struct {
	Field string          `json:"field"`
	Value decimal.Decimal `json:"value"`
}
