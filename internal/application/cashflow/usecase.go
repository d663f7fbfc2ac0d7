package cashflow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	domcash "github.com/Danielpnvs/usekaylla-api/internal/domain/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// titleCaser normaliza descripciones a Title Case al guardar (pt-BR, el
// idioma de la tienda).
var titleCaser = cases.Title(language.BrazilianPortuguese)

// OutflowUseCase es la puerta de validación y CRUD sobre los movimientos del
// flujo de caja: ninguna salida puede dejar un cubo en negativo, y toda
// mutación pasa por aquí.
//
// Las operaciones reciben una Session explícita; el rol viewer corta antes
// de validar y jamás toca la persistencia.
type OutflowUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	saleRepo     repository.SaleRepository
	clothingRepo repository.ClothingRepository
	allocation   *AllocationUseCase
}

// NewOutflowUseCase construye el caso de uso.
func NewOutflowUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
	clothingRepo repository.ClothingRepository,
	allocation *AllocationUseCase,
) *OutflowUseCase {
	return &OutflowUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		clothingRepo: clothingRepo,
		allocation:   allocation,
	}
}

// GetSnapshot deriva el estado actual del flujo de caja. Solo lectura,
// seguro de llamar en cada render o poll.
func (uc *OutflowUseCase) GetSnapshot(ctx context.Context) (*dto.SnapshotResponse, error) {
	alloc, err := uc.allocation.Current(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := derive(uc.saleRepo, uc.movementRepo, uc.clothingRepo, alloc, "")
	if err != nil {
		return nil, err
	}
	return toSnapshotResponse(snap), nil
}

// ListMovements devuelve el libro completo, ordenado por fecha descendente.
func (uc *OutflowUseCase) ListMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// RegisterOutflow valida y persiste una nueva salida.
//
// Reglas: descripción no vacía tras trim, monto > 0; para origin=cash la
// subcategoría por defecto es reinvestment y los valores desconocidos se
// rechazan con ErrInvalidInput (nunca se mapean en silencio a otro cubo).
// La validación de saldo y la escritura comparten transacción.
func (uc *OutflowUseCase) RegisterOutflow(ctx context.Context, session domain.Session, in dto.OutflowRequest) (*dto.MovementResponse, error) {
	if session.IsViewer() {
		return nil, domain.ErrReadOnlyMode
	}
	candidate, err := buildMovement(in)
	if err != nil {
		return nil, err
	}
	alloc, err := uc.allocation.Current(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	candidate.ID = uuid.New().String()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		clothingRepo repository.ClothingRepository,
	) error {
		snap, err := derive(saleRepo, movRepo, clothingRepo, alloc, "")
		if err != nil {
			return err
		}
		if err := checkBalance(snap, candidate, false); err != nil {
			return err
		}
		return movRepo.Create(candidate)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(candidate), nil
}

// EditOutflow valida y persiste la edición de una salida existente.
//
// El saldo disponible se calcula sobre un corte que EXCLUYE el movimiento
// editado ("como si el registro aún no existiera"): así una edición sin
// cambio de monto nunca falla, y mover la salida a otro cubo se valida
// contra el saldo correcto de ese cubo. Aquí se usa la diferencia
// aritmética sin acotar, no el saldo recortado a cero.
func (uc *OutflowUseCase) EditOutflow(ctx context.Context, session domain.Session, id string, in dto.OutflowRequest) (*dto.MovementResponse, error) {
	if session.IsViewer() {
		return nil, domain.ErrReadOnlyMode
	}
	candidate, err := buildMovement(in)
	if err != nil {
		return nil, err
	}
	alloc, err := uc.allocation.Current(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		clothingRepo repository.ClothingRepository,
	) error {
		existing, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		snap, err := derive(saleRepo, movRepo, clothingRepo, alloc, id)
		if err != nil {
			return err
		}
		if err := checkBalance(snap, candidate, true); err != nil {
			return err
		}
		existing.Date = candidate.Date
		existing.Description = candidate.Description
		existing.Origin = candidate.Origin
		existing.Subcategory = candidate.Subcategory // nil cuando pasa a packaging
		existing.Amount = candidate.Amount
		existing.UpdatedAt = time.Now()
		if err := movRepo.Update(existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(updated), nil
}

// DeleteOutflow elimina una salida de forma permanente. No revalida saldos:
// borrar solo puede aumentarlos.
func (uc *OutflowUseCase) DeleteOutflow(ctx context.Context, session domain.Session, id string) error {
	if session.IsViewer() {
		return domain.ErrReadOnlyMode
	}
	existing, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.movementRepo.Delete(id)
}

// ── Internos ──────────────────────────────────────────────────────────────────

// buildMovement valida la entrada y construye el movimiento normalizado:
// descripción en Title Case, fecha anclada a mediodía UTC.
func buildMovement(in dto.OutflowRequest) (*entity.Movement, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	m := &entity.Movement{
		Description: titleCaser.String(description),
		Kind:        entity.MovementKindOutflow,
		Origin:      in.Origin,
		Amount:      in.Amount,
	}

	switch in.Origin {
	case entity.OriginCash:
		sub := in.Subcategory
		if sub == "" {
			sub = entity.BucketReinvestment
		}
		if !entity.IsValidBucket(sub) {
			return nil, domain.ErrInvalidInput
		}
		m.Subcategory = &sub
	case entity.OriginPackaging:
		m.Subcategory = nil
	default:
		return nil, domain.ErrInvalidInput
	}

	date, err := normalizeDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	m.Date = date
	return m, nil
}

// normalizeDate interpreta "2006-01-02" (hoy si viene vacía) y fija la hora
// a mediodía UTC para que la fecha no se corra de día entre zonas horarias.
func normalizeDate(s string) (time.Time, error) {
	var day time.Time
	if s == "" {
		day = time.Now().UTC()
	} else {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, err
		}
		day = parsed
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC), nil
}

// checkBalance compara el monto del candidato contra el saldo de su cubo.
// En alta usa el saldo expuesto (acotado a cero); en edición el corte ya
// excluye el registro y se usa la diferencia sin acotar.
func checkBalance(snap domcash.Snapshot, candidate *entity.Movement, unclamped bool) error {
	var available decimal.Decimal
	var bucketName string

	if candidate.Origin == entity.OriginPackaging {
		bucketName = "packaging"
		if unclamped {
			available = snap.PackagingAvailable()
		} else {
			available = snap.PackagingBalance
		}
	} else {
		bucketName = candidate.Bucket()
		bucket := snap.Bucket(bucketName)
		if unclamped {
			available = bucket.Available()
		} else {
			available = bucket.Balance
		}
	}

	if candidate.Amount.GreaterThan(available) {
		return &domcash.InsufficientBalanceError{
			Bucket:    bucketName,
			Available: available,
			Requested: candidate.Amount,
		}
	}
	return nil
}

// derive carga el corte completo desde los repositorios y ejecuta la
// derivación pura. excludeMovementID filtra el movimiento en edición
// (cadena vacía = ninguno).
func derive(
	saleRepo repository.SaleRepository,
	movRepo repository.MovementRepository,
	clothingRepo repository.ClothingRepository,
	alloc entity.Allocation,
	excludeMovementID string,
) (domcash.Snapshot, error) {
	sales, err := saleRepo.List()
	if err != nil {
		return domcash.Snapshot{}, err
	}
	movements, err := movRepo.List()
	if err != nil {
		return domcash.Snapshot{}, err
	}
	if excludeMovementID != "" {
		filtered := make([]*entity.Movement, 0, len(movements))
		for _, m := range movements {
			if m.ID != excludeMovementID {
				filtered = append(filtered, m)
			}
		}
		movements = filtered
	}
	items, err := clothingRepo.ListAll()
	if err != nil {
		return domcash.Snapshot{}, err
	}
	packagingCostByItem := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		packagingCostByItem[item.ID] = item.PackagingCost
	}
	return domcash.Derive(sales, movements, alloc, packagingCostByItem), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Description: m.Description,
		Kind:        m.Kind,
		Origin:      m.Origin,
		Subcategory: m.Subcategory,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSnapshotResponse(snap domcash.Snapshot) *dto.SnapshotResponse {
	buckets := make(map[string]dto.BucketDTO, len(snap.Buckets))
	for name, b := range snap.Buckets {
		buckets[name] = dto.BucketDTO{Allocated: b.Allocated, Spent: b.Spent, Balance: b.Balance}
	}
	return &dto.SnapshotResponse{
		TotalPaidRevenue:  snap.TotalPaidRevenue,
		PendingRevenue:    snap.PendingRevenue,
		PackagingPool:     snap.PackagingPool,
		CashOutflows:      snap.CashOutflows,
		PackagingOutflows: snap.PackagingOutflows,
		CashBalance:       snap.CashBalance,
		PackagingBalance:  snap.PackagingBalance,
		Buckets:           buckets,
	}
}
