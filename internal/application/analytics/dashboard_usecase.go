// Package analytics contiene los casos de uso de reportes: el resumen del
// dashboard y el reporte PDF del flujo de caja.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Danielpnvs/usekaylla-api/internal/application/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen financiero del día y del mes en curso:
// corte del flujo de caja, ventas pagadas de hoy y del mes, y cifras del
// inventario.
type DashboardUseCase struct {
	outflow      *cashflow.OutflowUseCase
	saleRepo     repository.SaleRepository
	clothingRepo repository.ClothingRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	outflow *cashflow.OutflowUseCase,
	saleRepo repository.SaleRepository,
	clothingRepo repository.ClothingRepository,
) *DashboardUseCase {
	return &DashboardUseCase{outflow: outflow, saleRepo: saleRepo, clothingRepo: clothingRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetSnapshot        → corte del flujo de caja
//  2. saleRepo.List      → métricas de hoy y del mes (solo ventas pagadas)
//  3. clothingRepo.ListAll → cifras del inventario
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type snapResult struct {
		snap *dto.SnapshotResponse
		err  error
	}
	type salesResult struct {
		sales []*entity.Sale
		err   error
	}
	type itemsResult struct {
		items []*entity.ClothingItem
		err   error
	}

	snapCh := make(chan snapResult, 1)
	salesCh := make(chan salesResult, 1)
	itemsCh := make(chan itemsResult, 1)

	go func() {
		snap, err := uc.outflow.GetSnapshot(ctx)
		snapCh <- snapResult{snap, err}
	}()
	go func() {
		sales, err := uc.saleRepo.List()
		salesCh <- salesResult{sales, err}
	}()
	go func() {
		items, err := uc.clothingRepo.ListAll()
		itemsCh <- itemsResult{items, err}
	}()

	snap := <-snapCh
	sales := <-salesCh
	items := <-itemsCh

	if snap.err != nil {
		return nil, fmt.Errorf("dashboard: flujo de caja: %w", snap.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if items.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", items.err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	return &dto.DashboardSummaryDTO{
		CashFlow:  *snap.snap,
		Today:     salesMetrics(sales.sales, todayStart),
		Month:     salesMetrics(sales.sales, monthStart),
		Inventory: inventoryStats(items.items),
	}, nil
}

// salesMetrics acumula las ventas pagadas desde el inicio del rango.
func salesMetrics(sales []*entity.Sale, since time.Time) dto.SalesMetricsDTO {
	out := dto.SalesMetricsDTO{Revenue: decimal.Zero}
	for _, s := range sales {
		if s.Status != entity.SaleStatusPaid || s.CreatedAt.Before(since) {
			continue
		}
		out.Revenue = out.Revenue.Add(s.Total)
		out.Count++
	}
	out.Revenue = out.Revenue.Round(2)
	return out
}

// inventoryStats agrega el catálogo: prendas, variaciones, stock y valor de
// venta del stock disponible. Las prendas archivadas no cuentan.
func inventoryStats(items []*entity.ClothingItem) dto.InventoryStatsDTO {
	out := dto.InventoryStatsDTO{StockValue: decimal.Zero}
	for _, item := range items {
		if item.Status == entity.ClothingStatusArchived {
			continue
		}
		out.Pieces++
		out.Variations += len(item.Variations)
		stock := item.TotalStock()
		out.TotalStock += stock
		out.StockValue = out.StockValue.Add(item.SellingPrice.Mul(decimal.NewFromInt(int64(stock))))
	}
	out.StockValue = out.StockValue.Round(2)
	return out
}
