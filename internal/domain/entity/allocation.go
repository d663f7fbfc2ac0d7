package entity

import "github.com/shopspring/decimal"

// Allocation es la división porcentual del caixa entre los tres cubos.
// Los nombres de campo JSON se conservan del front-end legado
// (clave "fluxo_divisao_caixa" en la tabla settings).
type Allocation struct {
	ReinvestmentPct decimal.Decimal `json:"reinvestment"`
	StoreCashPct    decimal.Decimal `json:"caixaLoja"`
	SalaryPct       decimal.Decimal `json:"salario"`
}

// DefaultAllocation es la división inicial 50/30/20.
func DefaultAllocation() Allocation {
	return Allocation{
		ReinvestmentPct: decimal.NewFromInt(50),
		StoreCashPct:    decimal.NewFromInt(30),
		SalaryPct:       decimal.NewFromInt(20),
	}
}

// Pct devuelve el porcentaje asignado al cubo indicado (cero si es desconocido).
func (a Allocation) Pct(bucket string) decimal.Decimal {
	switch bucket {
	case BucketReinvestment:
		return a.ReinvestmentPct
	case BucketStoreCash:
		return a.StoreCashPct
	case BucketSalary:
		return a.SalaryPct
	}
	return decimal.Zero
}

// Sum devuelve la suma de los tres porcentajes.
func (a Allocation) Sum() decimal.Decimal {
	return a.ReinvestmentPct.Add(a.StoreCashPct).Add(a.SalaryPct)
}

// IsValid indica si los porcentajes suman exactamente 100. La regla no es
// bloqueante: el sistema permite guardar divisiones no conformes y solo
// expone el flag para que la UI lo muestre como advertencia.
func (a Allocation) IsValid() bool {
	return a.Sum().Equal(decimal.NewFromInt(100))
}
