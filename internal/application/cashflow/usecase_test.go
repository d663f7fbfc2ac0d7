package cashflow_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcashflow "github.com/Danielpnvs/usekaylla-api/internal/application/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	domcash "github.com/Danielpnvs/usekaylla-api/internal/domain/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.Movement
	writes    int // Create + Update + Delete, para verificar que viewer nunca escribe
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	clone := *m
	f.movements = append(f.movements, &clone)
	f.writes++
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) Update(m *entity.Movement) error {
	for i, existing := range f.movements {
		if existing.ID == m.ID {
			clone := *m
			f.movements[i] = &clone
			f.writes++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeMovementRepo) Delete(id string) error {
	for i, existing := range f.movements {
		if existing.ID == id {
			f.movements = append(f.movements[:i], f.movements[i+1:]...)
			f.writes++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeMovementRepo) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, len(f.movements))
	copy(out, f.movements)
	return out, nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error { f.sales = append(f.sales, s); return nil }
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeSaleRepo) Update(*entity.Sale) error     { return nil }
func (f *fakeSaleRepo) List() ([]*entity.Sale, error) { return f.sales, nil }

type fakeClothingRepo struct {
	items []*entity.ClothingItem
}

func (f *fakeClothingRepo) Create(item *entity.ClothingItem) error { f.items = append(f.items, item); return nil }
func (f *fakeClothingRepo) GetByID(id string) (*entity.ClothingItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, nil
}
func (f *fakeClothingRepo) GetByCode(string) (*entity.ClothingItem, error) { return nil, nil }
func (f *fakeClothingRepo) Update(*entity.ClothingItem) error              { return nil }
func (f *fakeClothingRepo) Delete(string) error                            { return nil }
func (f *fakeClothingRepo) List(int, int) ([]*entity.ClothingItem, error)  { return f.items, nil }
func (f *fakeClothingRepo) ListAll() ([]*entity.ClothingItem, error)       { return f.items, nil }

// fakeTxRunner pasa los mismos fakes al callback, sin transacción real.
type fakeTxRunner struct {
	mov      *fakeMovementRepo
	sale     *fakeSaleRepo
	clothing *fakeClothingRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
	clothingRepo repository.ClothingRepository,
) error) error {
	return fn(f.mov, f.sale, f.clothing)
}

type fakeSettingsRepo struct {
	docs map[string]json.RawMessage
}

func (f *fakeSettingsRepo) Get(key string) (json.RawMessage, error) {
	if f.docs == nil {
		return nil, nil
	}
	return f.docs[key], nil
}

func (f *fakeSettingsRepo) Save(key string, value json.RawMessage) error {
	if f.docs == nil {
		f.docs = map[string]json.RawMessage{}
	}
	f.docs[key] = value
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	adminSession  = domain.Session{UserID: "admin-1", Role: domain.RoleAdmin}
	viewerSession = domain.Session{UserID: "viewer-1", Role: domain.RoleViewer}
)

type fixture struct {
	uc       *appcashflow.OutflowUseCase
	mov      *fakeMovementRepo
	sale     *fakeSaleRepo
	clothing *fakeClothingRepo
	settings *fakeSettingsRepo
}

// newFixture arma el caso de uso con una venta pagada de 1000 y división
// 50/30/20: saldos iniciales 500/300/200.
func newFixture() *fixture {
	mov := &fakeMovementRepo{}
	sale := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: "sale-1", Status: entity.SaleStatusPaid, Total: dec("1000")},
	}}
	clothing := &fakeClothingRepo{}
	settings := &fakeSettingsRepo{}
	allocation := appcashflow.NewAllocationUseCase(settings)
	uc := appcashflow.NewOutflowUseCase(
		&fakeTxRunner{mov: mov, sale: sale, clothing: clothing},
		mov, sale, clothing, allocation,
	)
	return &fixture{uc: uc, mov: mov, sale: sale, clothing: clothing, settings: settings}
}

func outflow(origin, subcategory, amount string) dto.OutflowRequest {
	return dto.OutflowRequest{
		Date:        "2026-03-15",
		Description: "pago de proveedor",
		Origin:      origin,
		Subcategory: subcategory,
		Amount:      dec(amount),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterOutflow
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterOutflow_NormalizaYPersiste(t *testing.T) {
	f := newFixture()

	out, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "150"))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Pago De Proveedor", out.Description, "la descripción se guarda en Title Case")
	require.NotNil(t, out.Subcategory)
	assert.Equal(t, entity.BucketSalary, *out.Subcategory)

	// La fecha queda anclada a mediodía UTC del día indicado.
	expected := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.True(t, out.Date.Equal(expected), "fecha = %s", out.Date)

	require.Len(t, f.mov.movements, 1)
}

func TestRegisterOutflow_SubcategoriaPorDefectoReinvestment(t *testing.T) {
	f := newFixture()

	out, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, "", "10"))
	require.NoError(t, err)
	require.NotNil(t, out.Subcategory)
	assert.Equal(t, entity.BucketReinvestment, *out.Subcategory)
}

func TestRegisterOutflow_SubcategoriaDesconocidaRechazada(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, "marketing", "10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una subcategoría fuera del enum se rechaza, nunca se mapea a otro cubo")
	assert.Empty(t, f.mov.movements)
}

func TestRegisterOutflow_EntradaInvalida(t *testing.T) {
	f := newFixture()
	cases := map[string]dto.OutflowRequest{
		"descripción vacía":   {Date: "2026-03-15", Description: "   ", Origin: entity.OriginCash, Amount: dec("10")},
		"monto cero":          {Date: "2026-03-15", Description: "algo", Origin: entity.OriginCash, Amount: decimal.Zero},
		"monto negativo":      {Date: "2026-03-15", Description: "algo", Origin: entity.OriginCash, Amount: dec("-5")},
		"origen desconocido":  {Date: "2026-03-15", Description: "algo", Origin: "banco", Amount: dec("10")},
		"fecha malformada":    {Date: "15/03/2026", Description: "algo", Origin: entity.OriginCash, Amount: dec("10")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.RegisterOutflow(context.Background(), adminSession, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.mov.movements)
}

func TestRegisterOutflow_SaldoInsuficiente(t *testing.T) {
	f := newFixture()

	// Salario tiene 200 asignados; pedir 200.01 debe fallar con el detalle.
	_, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "200.01"))
	require.Error(t, err)

	var insufficient *domcash.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, entity.BucketSalary, insufficient.Bucket)
	assert.True(t, insufficient.Available.Equal(dec("200")))
	assert.True(t, insufficient.Requested.Equal(dec("200.01")))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	assert.Empty(t, f.mov.movements, "una salida rechazada no se persiste")
}

func TestRegisterOutflow_GastaExactamenteElSaldo(t *testing.T) {
	f := newFixture()

	// Gastar exactamente el saldo disponible es válido (límite inclusivo).
	_, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "200"))
	require.NoError(t, err)

	// El cubo queda en cero: cualquier monto adicional se rechaza.
	_, err = f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "0.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestRegisterOutflow_EmbalajeValidaContraSuFondo(t *testing.T) {
	f := newFixture()
	f.clothing.items = []*entity.ClothingItem{{ID: "item-1", PackagingCost: dec("2.00")}}
	f.sale.sales[0].Items = []entity.SaleItem{{ClothingItemID: "item-1", Quantity: 20}}

	// Fondo de embalaje = 40. Una salida de 40 pasa, la siguiente no.
	_, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginPackaging, "", "40"))
	require.NoError(t, err)

	_, err = f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginPackaging, "", "1"))
	require.Error(t, err)
	var insufficient *domcash.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "packaging", insufficient.Bucket)
}

func TestRegisterOutflow_EmbalajeIgnoraSubcategoria(t *testing.T) {
	f := newFixture()
	f.clothing.items = []*entity.ClothingItem{{ID: "item-1", PackagingCost: dec("1.00")}}
	f.sale.sales[0].Items = []entity.SaleItem{{ClothingItemID: "item-1", Quantity: 10}}

	out, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginPackaging, entity.BucketSalary, "5"))
	require.NoError(t, err)
	assert.Nil(t, out.Subcategory, "las salidas de embalaje no llevan subcategoría")
}

// ──────────────────────────────────────────────────────────────────────────────
// EditOutflow
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad: editar sin cambiar el monto nunca falla, incluso si la salida
// consumió todo el saldo del cubo.
func TestEditOutflow_SinCambioDeMontoNuncaFalla(t *testing.T) {
	f := newFixture()

	created, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "200"))
	require.NoError(t, err)

	// Mismo monto, otra descripción: el corte de validación excluye el propio
	// registro, así que los 200 siguen disponibles.
	in := outflow(entity.OriginCash, entity.BucketSalary, "200")
	in.Description = "ajuste de salario"
	out, err := f.uc.EditOutflow(context.Background(), adminSession, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Ajuste De Salario", out.Description)
}

func TestEditOutflow_AumentoSobreElDisponibleFalla(t *testing.T) {
	f := newFixture()

	created, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "150"))
	require.NoError(t, err)

	_, err = f.uc.EditOutflow(context.Background(), adminSession, created.ID, outflow(entity.OriginCash, entity.BucketSalary, "200.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// El registro original queda intacto.
	stored, err := f.mov.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Amount.Equal(dec("150")))
}

func TestEditOutflow_CambioDeCuboValidaContraElDestino(t *testing.T) {
	f := newFixture()

	created, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "150"))
	require.NoError(t, err)

	// store_cash tiene 300 asignados y nada gastado: mover 250 ahí es válido
	// aunque salario solo tenga 200.
	out, err := f.uc.EditOutflow(context.Background(), adminSession, created.ID, outflow(entity.OriginCash, entity.BucketStoreCash, "250"))
	require.NoError(t, err)
	require.NotNil(t, out.Subcategory)
	assert.Equal(t, entity.BucketStoreCash, *out.Subcategory)

	// Mover 300.01 excede el cubo destino.
	_, err = f.uc.EditOutflow(context.Background(), adminSession, created.ID, outflow(entity.OriginCash, entity.BucketSalary, "200.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestEditOutflow_NoExistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.EditOutflow(context.Background(), adminSession, "no-existe", outflow(entity.OriginCash, entity.BucketSalary, "10"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteOutflow
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteOutflow_EliminaSinRevalidar(t *testing.T) {
	f := newFixture()

	created, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "200"))
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteOutflow(context.Background(), adminSession, created.ID))
	assert.Empty(t, f.mov.movements)

	// Al desaparecer el gasto, el saldo del cubo vuelve a la asignación plena.
	snap, err := f.uc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Buckets[entity.BucketSalary].Balance.Equal(dec("200")))
}

func TestDeleteOutflow_NoExistente(t *testing.T) {
	f := newFixture()
	err := f.uc.DeleteOutflow(context.Background(), adminSession, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rol viewer
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad: el rol viewer corta antes de validar y jamás llega a los
// repositorios de escritura.
func TestViewer_MutacionesBloqueadas(t *testing.T) {
	f := newFixture()

	created, err := f.uc.RegisterOutflow(context.Background(), adminSession, outflow(entity.OriginCash, entity.BucketSalary, "50"))
	require.NoError(t, err)
	writesBefore := f.mov.writes

	_, err = f.uc.RegisterOutflow(context.Background(), viewerSession, outflow(entity.OriginCash, entity.BucketSalary, "10"))
	assert.ErrorIs(t, err, domain.ErrReadOnlyMode)

	_, err = f.uc.EditOutflow(context.Background(), viewerSession, created.ID, outflow(entity.OriginCash, entity.BucketSalary, "10"))
	assert.ErrorIs(t, err, domain.ErrReadOnlyMode)

	err = f.uc.DeleteOutflow(context.Background(), viewerSession, created.ID)
	assert.ErrorIs(t, err, domain.ErrReadOnlyMode)

	assert.Equal(t, writesBefore, f.mov.writes, "viewer no debe generar ninguna escritura")

	// Las lecturas siguen disponibles para cualquier rol.
	snap, err := f.uc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.TotalPaidRevenue.Equal(dec("1000")))
}
