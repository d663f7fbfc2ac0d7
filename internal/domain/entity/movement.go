package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes de una salida del flujo de caja.
const (
	OriginCash      = "cash"      // cubos de caja (reinversión / caja de la tienda / salario)
	OriginPackaging = "packaging" // fondo de embalaje
)

// Subcategorías (cubos) de las salidas de caja. Enum cerrado: valores
// desconocidos se rechazan en la frontera CRUD, nunca se mapean en silencio.
const (
	BucketReinvestment = "reinvestment"
	BucketStoreCash    = "store_cash"
	BucketSalary       = "salary"
)

// Buckets lista los cubos de caja en orden estable de presentación.
var Buckets = []string{BucketReinvestment, BucketStoreCash, BucketSalary}

// IsValidBucket indica si s es una subcategoría conocida.
func IsValidBucket(s string) bool {
	return s == BucketReinvestment || s == BucketStoreCash || s == BucketSalary
}

// MovementKindOutflow es el único tipo de movimiento del libro: todas las
// entradas de dinero llegan implícitas vía ventas pagadas.
const MovementKindOutflow = "outflow"

// Movement representa una salida registrada en el libro del flujo de caja.
// La fecha se normaliza a mediodía UTC para evitar corrimientos de día entre
// zonas horarias; la descripción se guarda en Title Case.
type Movement struct {
	ID          string
	Date        time.Time
	Description string
	Kind        string          // siempre "outflow"
	Origin      string          // cash | packaging
	Subcategory *string         // requerido si Origin = cash; nil si packaging
	Amount      decimal.Decimal // siempre > 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Bucket devuelve la subcategoría efectiva de un movimiento de caja
// (cadena vacía para movimientos de embalaje).
func (m *Movement) Bucket() string {
	if m.Origin != OriginCash || m.Subcategory == nil {
		return ""
	}
	return *m.Subcategory
}
