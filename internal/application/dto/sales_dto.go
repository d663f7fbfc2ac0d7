package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta: referencia a una variación del catálogo.
type SaleItemRequest struct {
	ClothingItemID string `json:"clothing_item_id"`
	VariationID    string `json:"variation_id"`
	Quantity       int    `json:"quantity"`
}

// RegisterSaleRequest alta de una venta. El descuento puede ser porcentual
// o de valor fijo (acotado al subtotal); el total lo calcula el servidor.
type RegisterSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	Discount      decimal.Decimal   `json:"discount"`
	DiscountType  string            `json:"discount_type"` // percent | fixed
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status,omitempty"` // paid (defecto) | pending
	Notes         string            `json:"notes,omitempty"`
}

// UpdateSaleStatusRequest transición de estado de una venta.
type UpdateSaleStatusRequest struct {
	Status string `json:"status"` // paid | cancelled
}

// SaleItemResponse línea de venta resuelta.
type SaleItemResponse struct {
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

// SaleResponse representación completa de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	DiscountType  string             `json:"discount_type"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	SellerID      string             `json:"seller_id,omitempty"`
	SellerName    string             `json:"seller_name,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
