package dto

import "github.com/shopspring/decimal"

// SalesMetricsDTO cifras de ventas en un rango de fechas.
type SalesMetricsDTO struct {
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

// InventoryStatsDTO cifras agregadas del catálogo.
type InventoryStatsDTO struct {
	Pieces     int             `json:"pieces"`
	Variations int             `json:"variations"`
	TotalStock int             `json:"total_stock"`
	StockValue decimal.Decimal `json:"stock_value"` // stock × precio de venta
}

// DashboardSummaryDTO resumen del dashboard: flujo de caja + ventas + inventario.
type DashboardSummaryDTO struct {
	CashFlow  SnapshotResponse  `json:"cash_flow"`
	Today     SalesMetricsDTO   `json:"today"`
	Month     SalesMetricsDTO   `json:"month"`
	Inventory InventoryStatsDTO `json:"inventory"`
}
