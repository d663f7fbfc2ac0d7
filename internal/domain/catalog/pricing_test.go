package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Danielpnvs/usekaylla-api/internal/domain/catalog"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Composición completa: base → tarifa de crédito → ganancia → precio de venta.
func TestComputePricing_ComposicionCompleta(t *testing.T) {
	item := &entity.ClothingItem{
		CostPrice:        dec("40.00"),
		FreightPerUnit:   dec("5.00"),
		ExtraCosts:       dec("5.00"),
		PackagingCost:    dec("2.00"),
		CreditFeePercent: dec("5"),
		ProfitMarginPct:  dec("100"),
	}
	catalog.ComputePricing(item)

	// base = 40 + 5 + 5 = 50
	assert.True(t, item.BaseCost.Equal(dec("50.00")), "base = %s", item.BaseCost)
	// creditFee = (50 + 2) × 5% = 2.60
	assert.True(t, item.CreditFeeAmount.Equal(dec("2.60")), "creditFee = %s", item.CreditFeeAmount)
	// profit = (50 + 2.60) × 100% = 52.60
	assert.True(t, item.Profit.Equal(dec("52.60")), "profit = %s", item.Profit)
	// precio = 50 + 2.60 + 52.60 + 2 = 107.20
	assert.True(t, item.SellingPrice.Equal(dec("107.20")), "precio = %s", item.SellingPrice)
}

// Sin tarifa de crédito ni margen el precio es base + embalaje.
func TestComputePricing_SinRecargos(t *testing.T) {
	item := &entity.ClothingItem{
		CostPrice:     dec("30.00"),
		PackagingCost: dec("1.50"),
	}
	catalog.ComputePricing(item)

	assert.True(t, item.BaseCost.Equal(dec("30.00")))
	assert.True(t, item.CreditFeeAmount.Equal(decimal.Zero))
	assert.True(t, item.Profit.Equal(decimal.Zero))
	assert.True(t, item.SellingPrice.Equal(dec("31.50")))
}

// Los derivados se redondean a centavos.
func TestComputePricing_RedondeoACentavos(t *testing.T) {
	item := &entity.ClothingItem{
		CostPrice:        dec("33.33"),
		CreditFeePercent: dec("3.33"),
		ProfitMarginPct:  dec("77.7"),
	}
	catalog.ComputePricing(item)

	assert.Equal(t, int32(-2), item.SellingPrice.Exponent(),
		"el precio final debe estar redondeado a 2 decimales")
}

func TestTotalCost(t *testing.T) {
	item := &entity.ClothingItem{
		CostPrice:        dec("40.00"),
		FreightPerUnit:   dec("5.00"),
		ExtraCosts:       dec("5.00"),
		PackagingCost:    dec("2.00"),
		CreditFeePercent: dec("5"),
	}
	catalog.ComputePricing(item)

	assert.True(t, catalog.TotalCost(item).Equal(dec("54.60")))
}
