package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPaid      = "paid"
	SaleStatusPending   = "pending"
	SaleStatusCancelled = "cancelled"
)

// Tipos de descuento sobre el subtotal.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Métodos de pago aceptados en tienda. Valores del front-end legado.
const (
	PaymentCash         = "dinheiro"
	PaymentPix          = "pix"
	PaymentDebitCard    = "cartao_debito"
	PaymentCreditCard   = "cartao_credito"
	PaymentBankTransfer = "transferencia"
	PaymentCheque       = "cheque"
)

// IsValidPaymentMethod indica si m es un método de pago conocido.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentDebitCard, PaymentCreditCard, PaymentBankTransfer, PaymentCheque:
		return true
	}
	return false
}

// SaleItem es una línea de venta: una variación concreta de una prenda.
type SaleItem struct {
	ID               string          `json:"id"`
	ClothingItemID   string          `json:"clothing_item_id"`
	ClothingItemCode string          `json:"clothing_item_code"`
	ClothingItemName string          `json:"clothing_item_name"`
	VariationID      string          `json:"variation_id"`
	Size             string          `json:"size"`
	Color            string          `json:"color"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}

// Sale representa una venta registrada en el punto de venta.
// Los ítems se persisten como jsonb junto a la cabecera.
type Sale struct {
	ID            string
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal // valor ya resuelto en moneda
	DiscountType  string          // percent | fixed
	Total         decimal.Decimal
	PaymentMethod string
	Status        string // paid | pending | cancelled
	Notes         string
	SellerID      string
	SellerName    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
