// Package catalog contiene la lógica de precios del catálogo de prendas
// (servicio de dominio).
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
)

// ComputePricing calcula los campos derivados de costo y precio de una prenda:
//
//	BaseCost        = CostPrice + FreightPerUnit + ExtraCosts
//	CreditFeeAmount = (BaseCost + PackagingCost) × CreditFeePercent/100
//	Profit          = (BaseCost + CreditFeeAmount) × ProfitMarginPct/100
//	SellingPrice    = BaseCost + CreditFeeAmount + Profit + PackagingCost
//
// Redondea los montos finales a 2 decimales (centavos).
func ComputePricing(item *entity.ClothingItem) {
	hundred := decimal.NewFromInt(100)

	base := item.CostPrice.Add(item.FreightPerUnit).Add(item.ExtraCosts)
	creditFee := base.Add(item.PackagingCost).Mul(item.CreditFeePercent).Div(hundred)
	profit := base.Add(creditFee).Mul(item.ProfitMarginPct).Div(hundred)

	item.BaseCost = base.Round(2)
	item.CreditFeeAmount = creditFee.Round(2)
	item.Profit = profit.Round(2)
	item.SellingPrice = base.Add(creditFee).Add(profit).Add(item.PackagingCost).Round(2)
}

// TotalCost devuelve el costo total por unidad (base + tarifa de crédito + embalaje).
func TotalCost(item *entity.ClothingItem) decimal.Decimal {
	return item.BaseCost.Add(item.CreditFeeAmount).Add(item.PackagingCost)
}
