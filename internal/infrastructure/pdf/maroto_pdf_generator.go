// Package pdf implementa la generación del reporte PDF del flujo de caja.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos pagados / pendientes / fondo embalaje     │
//	│  CUBOS: Asignado | Gastado | Saldo por cubo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Origen | Cubo | Monto          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Danielpnvs/usekaylla-api/internal/application/analytics"
	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 136, Green: 14, Blue: 79}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// bucketLabels etiquetas legibles de los cubos, en orden de presentación.
var bucketLabels = map[string]string{
	entity.BucketReinvestment: "Reinversión",
	entity.BucketStoreCash:    "Caja de la tienda",
	entity.BucketSalary:       "Salario",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.CashFlowPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa analytics.CashFlowPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{storeName: storeName}
}

// GenerateCashFlowPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCashFlowPDF(
	_ context.Context,
	snapshot dto.SnapshotResponse,
	movements []dto.MovementResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Flujo de Caja", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(snapshot))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(bucketsHeaderRow())
	for _, r := range bucketRows(snapshot) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(movementsHeaderRow())
	for _, r := range movementRows(movements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y fecha de generación (der).
func headerRow(storeName string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Flujo de Caja", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cifras globales del corte.
func summaryRow(snap dto.SnapshotResponse) core.Row {
	cell := func(label string, value decimal.Decimal) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New("R$ "+formatMoney(value), props.Text{Size: 10, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("INGRESOS PAGADOS", snap.TotalPaidRevenue),
		cell("INGRESOS PENDIENTES", snap.PendingRevenue),
		cell("FONDO DE EMBALAJE", snap.PackagingBalance),
		cell("SALDO DE CAJA", snap.CashBalance),
	)
}

// bucketsHeaderRow: cabecera de la tabla de cubos.
func bucketsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cubo", 4, align.Left),
		h("Asignado", 3, align.Right),
		h("Gastado", 2, align.Right),
		h("Saldo", 3, align.Right),
	)
}

// bucketRows: una fila por cubo, en orden estable.
func bucketRows(snap dto.SnapshotResponse) []core.Row {
	result := make([]core.Row, 0, len(entity.Buckets))
	for _, name := range entity.Buckets {
		b, ok := snap.Buckets[name]
		if !ok {
			continue
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				bucketLabels[name],
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(b.Allocated),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(b.Spent),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(b.Balance),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Style: fontstyle.Bold},
			)),
		))
	}
	return result
}

// movementsHeaderRow: cabecera del libro de salidas.
func movementsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Origen", 3, align.Left),
		h("Monto", 2, align.Right),
	)
}

// movementRows: una fila por salida registrada.
func movementRows(movements []dto.MovementResponse) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mv.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				mv.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				originLabel(mv),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(mv.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// originLabel describe el origen de una salida: el cubo para caja, o
// "Embalaje" para el fondo de embalaje.
func originLabel(mv dto.MovementResponse) string {
	if mv.Origin == entity.OriginPackaging {
		return "Embalaje"
	}
	if mv.Subcategory != nil {
		if label, ok := bucketLabels[*mv.Subcategory]; ok {
			return label
		}
	}
	return "Caja"
}

// formatMoney formatea un decimal al estilo brasileño: punto de miles y
// coma decimal. Ej: 25000.5 → "25.000,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, decPart, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := string(buf) + "," + decPart
	if neg {
		return "-" + out
	}
	return out
}
