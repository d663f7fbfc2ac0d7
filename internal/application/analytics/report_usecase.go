package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Danielpnvs/usekaylla-api/internal/application/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
)

// CashFlowPDFGenerator puerto de generación del reporte PDF del flujo de
// caja. La implementación vive en infrastructure/pdf.
type CashFlowPDFGenerator interface {
	GenerateCashFlowPDF(
		ctx context.Context,
		snapshot dto.SnapshotResponse,
		movements []dto.MovementResponse,
		generatedAt time.Time,
	) ([]byte, error)
}

// ReportUseCase arma el reporte PDF del flujo de caja: corte de saldos más
// el libro de movimientos completo.
type ReportUseCase struct {
	outflow *cashflow.OutflowUseCase
	pdfGen  CashFlowPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(outflow *cashflow.OutflowUseCase, pdfGen CashFlowPDFGenerator) *ReportUseCase {
	return &ReportUseCase{outflow: outflow, pdfGen: pdfGen}
}

// GenerateCashFlowReport genera el PDF y devuelve sus bytes.
func (uc *ReportUseCase) GenerateCashFlowReport(ctx context.Context) ([]byte, error) {
	snap, err := uc.outflow.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: flujo de caja: %w", err)
	}
	movements, err := uc.outflow.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: movimientos: %w", err)
	}
	return uc.pdfGen.GenerateCashFlowPDF(ctx, *snap, movements, time.Now())
}
