package cashflow

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// settingsKeyAllocation es la clave del documento persistido. Se conserva
// la clave del front-end legado.
const settingsKeyAllocation = "fluxo_divisao_caixa"

// AllocationUseCase administra la división porcentual del caixa: carga la
// configuración persistida (50/30/20 si falta o está malformada), acepta
// actualizaciones de un campo acotadas a [0,100] y persiste cada cambio de
// inmediato. No fuerza la regla suma=100; solo la expone como flag.
type AllocationUseCase struct {
	settings repository.SettingsRepository
}

// NewAllocationUseCase construye el caso de uso.
func NewAllocationUseCase(settings repository.SettingsRepository) *AllocationUseCase {
	return &AllocationUseCase{settings: settings}
}

// Current devuelve la división vigente. Un documento ausente o malformado
// (falta algún campo o no es numérico) se reemplaza por los defectos sin
// error; los fallos de transporte sí se propagan.
func (uc *AllocationUseCase) Current(_ context.Context) (entity.Allocation, error) {
	raw, err := uc.settings.Get(settingsKeyAllocation)
	if err != nil {
		return entity.Allocation{}, err
	}
	return parseAllocation(raw), nil
}

// Get devuelve la división vigente con su flag de validez.
func (uc *AllocationUseCase) Get(ctx context.Context) (*dto.AllocationResponse, error) {
	alloc, err := uc.Current(ctx)
	if err != nil {
		return nil, err
	}
	return toAllocationResponse(alloc), nil
}

// SetPercentage actualiza un solo porcentaje, acotado a [0,100], y persiste
// de inmediato. El rol viewer queda bloqueado como en cualquier mutación.
func (uc *AllocationUseCase) SetPercentage(ctx context.Context, session domain.Session, in dto.AllocationUpdateRequest) (*dto.AllocationResponse, error) {
	if session.IsViewer() {
		return nil, domain.ErrReadOnlyMode
	}
	if !entity.IsValidBucket(in.Field) {
		return nil, domain.ErrInvalidInput
	}
	alloc, err := uc.Current(ctx)
	if err != nil {
		return nil, err
	}

	value := clampPct(in.Value)
	switch in.Field {
	case entity.BucketReinvestment:
		alloc.ReinvestmentPct = value
	case entity.BucketStoreCash:
		alloc.StoreCashPct = value
	case entity.BucketSalary:
		alloc.SalaryPct = value
	}

	raw, err := json.Marshal(alloc)
	if err != nil {
		return nil, err
	}
	if err := uc.settings.Save(settingsKeyAllocation, raw); err != nil {
		return nil, err
	}
	return toAllocationResponse(alloc), nil
}

// parseAllocation adopta el documento persistido solo si los tres campos
// están presentes y son numéricos; en cualquier otro caso usa los defectos.
func parseAllocation(raw json.RawMessage) entity.Allocation {
	if len(raw) == 0 {
		return entity.DefaultAllocation()
	}
	var aux struct {
		Reinvestment *decimal.Decimal `json:"reinvestment"`
		StoreCash    *decimal.Decimal `json:"caixaLoja"`
		Salary       *decimal.Decimal `json:"salario"`
	}
	if err := json.Unmarshal(raw, &aux); err != nil {
		return entity.DefaultAllocation()
	}
	if aux.Reinvestment == nil || aux.StoreCash == nil || aux.Salary == nil {
		return entity.DefaultAllocation()
	}
	return entity.Allocation{
		ReinvestmentPct: *aux.Reinvestment,
		StoreCashPct:    *aux.StoreCash,
		SalaryPct:       *aux.Salary,
	}
}

// clampPct acota un porcentaje al rango [0,100].
func clampPct(d decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}

func toAllocationResponse(a entity.Allocation) *dto.AllocationResponse {
	return &dto.AllocationResponse{
		Reinvestment: a.ReinvestmentPct,
		StoreCash:    a.StoreCashPct,
		Salary:       a.SalaryPct,
		IsValid:      a.IsValid(),
	}
}
