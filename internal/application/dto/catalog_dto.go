package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariationDTO variación talla/color de una prenda.
type VariationDTO struct {
	ID           string `json:"id,omitempty"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	Quantity     int    `json:"quantity"`
	SoldQuantity int    `json:"sold_quantity,omitempty"`
}

// CreateClothingRequest alta de una prenda. Los campos de precio derivados
// (base_cost, selling_price, profit) los calcula el servidor.
type CreateClothingRequest struct {
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand"`
	Supplier         string          `json:"supplier"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	FreightPerUnit   decimal.Decimal `json:"freight_per_unit"`
	PackagingCost    decimal.Decimal `json:"packaging_cost"`
	ExtraCosts       decimal.Decimal `json:"extra_costs"`
	CreditFeePercent decimal.Decimal `json:"credit_fee_percent"`
	ProfitMarginPct  decimal.Decimal `json:"profit_margin_pct"`
	Variations       []VariationDTO  `json:"variations"`
}

// UpdateClothingRequest edición parcial de una prenda (campos nil no cambian).
type UpdateClothingRequest struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	Category         *string          `json:"category"`
	Brand            *string          `json:"brand"`
	Supplier         *string          `json:"supplier"`
	CostPrice        *decimal.Decimal `json:"cost_price"`
	FreightPerUnit   *decimal.Decimal `json:"freight_per_unit"`
	PackagingCost    *decimal.Decimal `json:"packaging_cost"`
	ExtraCosts       *decimal.Decimal `json:"extra_costs"`
	CreditFeePercent *decimal.Decimal `json:"credit_fee_percent"`
	ProfitMarginPct  *decimal.Decimal `json:"profit_margin_pct"`
	Status           *string          `json:"status"`
	Variations       []VariationDTO   `json:"variations"`
}

// ClothingResponse representación completa de una prenda.
type ClothingResponse struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand"`
	Supplier         string          `json:"supplier"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	FreightPerUnit   decimal.Decimal `json:"freight_per_unit"`
	PackagingCost    decimal.Decimal `json:"packaging_cost"`
	ExtraCosts       decimal.Decimal `json:"extra_costs"`
	CreditFeePercent decimal.Decimal `json:"credit_fee_percent"`
	ProfitMarginPct  decimal.Decimal `json:"profit_margin_pct"`
	BaseCost         decimal.Decimal `json:"base_cost"`
	CreditFeeAmount  decimal.Decimal `json:"credit_fee_amount"`
	Profit           decimal.Decimal `json:"profit"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	Status           string          `json:"status"`
	TotalStock       int             `json:"total_stock"`
	Variations       []VariationDTO  `json:"variations"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ClothingListResponse listado paginado de prendas.
type ClothingListResponse struct {
	Items []ClothingResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
