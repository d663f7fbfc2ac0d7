// Package cashflow implementa el modelo de cubos del flujo de caja
// (servicio de dominio, sin efectos secundarios).
//
// De dos colecciones mutables (ventas y movimientos del libro) más la
// división porcentual configurada se derivan, en cada lectura:
//
//	ingresoPagado   = Σ total de ventas con estado paid
//	fondoEmbalaje   = Σ (cantidad × costo de embalaje de la prenda) de ítems pagados
//	asignado[cubo]  = ingresoPagado × pct[cubo]/100  (sin normalizar)
//	gastado[cubo]   = Σ salidas de caja de esa subcategoría
//	saldo[cubo]     = max(0, asignado − gastado)
//
// Nada se mantiene incremental: recalcular todo en cada lectura es barato a
// esta escala y elimina estados intermedios inconsistentes.
package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
)

// BucketTotals agrupa las cifras de un cubo de caja.
// Balance está acotado a cero; Allocated−Spent puede ser negativo si los
// datos fueron alterados a mano, y la puerta de validación usa esa
// diferencia sin acotar (ver Available).
type BucketTotals struct {
	Allocated decimal.Decimal
	Spent     decimal.Decimal
	Balance   decimal.Decimal
}

// Available devuelve la diferencia aritmética Allocated − Spent sin acotar.
func (b BucketTotals) Available() decimal.Decimal {
	return b.Allocated.Sub(b.Spent)
}

// Snapshot es el estado derivado completo del flujo de caja.
type Snapshot struct {
	TotalPaidRevenue  decimal.Decimal
	PendingRevenue    decimal.Decimal
	PackagingPool     decimal.Decimal
	CashOutflows      decimal.Decimal
	PackagingOutflows decimal.Decimal
	CashBalance       decimal.Decimal
	PackagingBalance  decimal.Decimal
	Buckets           map[string]BucketTotals
	Allocation        entity.Allocation
}

// Bucket devuelve las cifras del cubo indicado (ceros si es desconocido).
func (s Snapshot) Bucket(name string) BucketTotals {
	if b, ok := s.Buckets[name]; ok {
		return b
	}
	return BucketTotals{Allocated: decimal.Zero, Spent: decimal.Zero, Balance: decimal.Zero}
}

// PackagingAvailable devuelve FondoEmbalaje − SalidasEmbalaje sin acotar.
func (s Snapshot) PackagingAvailable() decimal.Decimal {
	return s.PackagingPool.Sub(s.PackagingOutflows)
}

// Derive recalcula el estado completo a partir de un corte de las ventas,
// los movimientos del libro y la división configurada.
//
// packagingCostByItem mapea ID de prenda → costo de embalaje por unidad;
// las prendas ausentes aportan costo cero. Los movimientos de caja con
// subcategoría desconocida se ignoran aquí (la creación ya los rechaza).
func Derive(
	sales []*entity.Sale,
	movements []*entity.Movement,
	alloc entity.Allocation,
	packagingCostByItem map[string]decimal.Decimal,
) Snapshot {
	snap := Snapshot{
		TotalPaidRevenue:  decimal.Zero,
		PendingRevenue:    decimal.Zero,
		PackagingPool:     decimal.Zero,
		CashOutflows:      decimal.Zero,
		PackagingOutflows: decimal.Zero,
		Allocation:        alloc,
	}

	for _, s := range sales {
		switch s.Status {
		case entity.SaleStatusPaid:
			snap.TotalPaidRevenue = snap.TotalPaidRevenue.Add(s.Total)
			for _, item := range s.Items {
				cost, ok := packagingCostByItem[item.ClothingItemID]
				if !ok {
					continue
				}
				qty := decimal.NewFromInt(int64(item.Quantity))
				snap.PackagingPool = snap.PackagingPool.Add(qty.Mul(cost))
			}
		case entity.SaleStatusPending:
			snap.PendingRevenue = snap.PendingRevenue.Add(s.Total)
		}
		// cancelled no aporta a ninguna cifra
	}

	spent := map[string]decimal.Decimal{
		entity.BucketReinvestment: decimal.Zero,
		entity.BucketStoreCash:    decimal.Zero,
		entity.BucketSalary:       decimal.Zero,
	}
	for _, m := range movements {
		switch m.Origin {
		case entity.OriginCash:
			snap.CashOutflows = snap.CashOutflows.Add(m.Amount)
			bucket := m.Bucket()
			if _, ok := spent[bucket]; ok {
				spent[bucket] = spent[bucket].Add(m.Amount)
			}
		case entity.OriginPackaging:
			snap.PackagingOutflows = snap.PackagingOutflows.Add(m.Amount)
		}
	}

	hundred := decimal.NewFromInt(100)
	snap.Buckets = make(map[string]BucketTotals, len(entity.Buckets))
	for _, name := range entity.Buckets {
		allocated := snap.TotalPaidRevenue.Mul(alloc.Pct(name)).Div(hundred)
		snap.Buckets[name] = BucketTotals{
			Allocated: allocated,
			Spent:     spent[name],
			Balance:   clampZero(allocated.Sub(spent[name])),
		}
	}

	snap.CashBalance = clampZero(snap.TotalPaidRevenue.Sub(snap.CashOutflows))
	snap.PackagingBalance = clampZero(snap.PackagingPool.Sub(snap.PackagingOutflows))
	return snap
}

// clampZero acota un saldo a cero: las diferencias negativas solo aparecen
// con datos corruptos y nunca se exponen como saldo.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
