package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una prenda en el catálogo.
const (
	ClothingStatusAvailable = "available"
	ClothingStatusSoldOut   = "sold_out"
	ClothingStatusArchived  = "archived"
)

// ClothingVariation es una combinación talla/color con su stock propio.
type ClothingVariation struct {
	ID           string `json:"id"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	Quantity     int    `json:"quantity"`
	SoldQuantity int    `json:"sold_quantity"`
}

// ClothingItem representa una prenda del catálogo con su composición de costos.
// BaseCost, CreditFeeAmount, Profit y SellingPrice son derivados: los calcula
// el servicio de precios del catálogo al crear o editar, nunca el cliente.
type ClothingItem struct {
	ID               string
	Code             string // código único, ej. BLU-001
	Name             string
	Description      string
	Category         string
	Brand            string
	Supplier         string
	CostPrice        decimal.Decimal // costo de compra por unidad
	FreightPerUnit   decimal.Decimal
	PackagingCost    decimal.Decimal // por unidad; alimenta el fondo de embalaje del flujo de caja
	ExtraCosts       decimal.Decimal
	CreditFeePercent decimal.Decimal
	ProfitMarginPct  decimal.Decimal
	BaseCost         decimal.Decimal // derivado
	CreditFeeAmount  decimal.Decimal // derivado
	Profit           decimal.Decimal // derivado
	SellingPrice     decimal.Decimal // derivado
	Status           string
	Variations       []ClothingVariation
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TotalStock suma el stock disponible de todas las variaciones.
func (c *ClothingItem) TotalStock() int {
	total := 0
	for _, v := range c.Variations {
		total += v.Quantity
	}
	return total
}

// FindVariation devuelve la variación con el ID dado, o nil.
func (c *ClothingItem) FindVariation(id string) *ClothingVariation {
	for i := range c.Variations {
		if c.Variations[i].ID == id {
			return &c.Variations[i]
		}
	}
	return nil
}
