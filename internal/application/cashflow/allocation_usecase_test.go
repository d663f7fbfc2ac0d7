package cashflow_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcashflow "github.com/Danielpnvs/usekaylla-api/internal/application/cashflow"
	"github.com/Danielpnvs/usekaylla-api/internal/application/dto"
	"github.com/Danielpnvs/usekaylla-api/internal/domain"
	"github.com/Danielpnvs/usekaylla-api/internal/domain/entity"
)

// failingSettingsRepo simula un fallo de transporte en el almacén de settings.
type failingSettingsRepo struct{ err error }

func (f *failingSettingsRepo) Get(string) (json.RawMessage, error)  { return nil, f.err }
func (f *failingSettingsRepo) Save(string, json.RawMessage) error   { return f.err }

func TestAllocation_DefectosSinDocumento(t *testing.T) {
	uc := appcashflow.NewAllocationUseCase(&fakeSettingsRepo{})

	out, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Reinvestment.Equal(dec("50")))
	assert.True(t, out.StoreCash.Equal(dec("30")))
	assert.True(t, out.Salary.Equal(dec("20")))
	assert.True(t, out.IsValid)
}

func TestAllocation_DocumentoMalformadoUsaDefectos(t *testing.T) {
	cases := map[string]string{
		"json inválido":    `{"reinvestment": 60,`,
		"campo faltante":   `{"reinvestment": 60, "caixaLoja": 40}`,
		"campo no numérico": `{"reinvestment": "mucho", "caixaLoja": 30, "salario": 20}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			settings := &fakeSettingsRepo{docs: map[string]json.RawMessage{
				"fluxo_divisao_caixa": json.RawMessage(doc),
			}}
			uc := appcashflow.NewAllocationUseCase(settings)

			out, err := uc.Get(context.Background())
			require.NoError(t, err, "un documento malformado no es un error, se usan los defectos")
			assert.True(t, out.Reinvestment.Equal(dec("50")))
		})
	}
}

func TestAllocation_DocumentoPersistidoSeAdopta(t *testing.T) {
	settings := &fakeSettingsRepo{docs: map[string]json.RawMessage{
		"fluxo_divisao_caixa": json.RawMessage(`{"reinvestment": 60, "caixaLoja": 25, "salario": 15}`),
	}}
	uc := appcashflow.NewAllocationUseCase(settings)

	out, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Reinvestment.Equal(dec("60")))
	assert.True(t, out.StoreCash.Equal(dec("25")))
	assert.True(t, out.Salary.Equal(dec("15")))
	assert.True(t, out.IsValid)
}

func TestAllocation_FalloDeTransporteSePropaga(t *testing.T) {
	transportErr := errors.New("conexión rechazada")
	uc := appcashflow.NewAllocationUseCase(&failingSettingsRepo{err: transportErr})

	_, err := uc.Get(context.Background())
	assert.ErrorIs(t, err, transportErr, "los fallos de transporte nunca se disfrazan de defectos")
}

func TestSetPercentage_ActualizaYPersiste(t *testing.T) {
	settings := &fakeSettingsRepo{}
	uc := appcashflow.NewAllocationUseCase(settings)

	out, err := uc.SetPercentage(context.Background(), adminSession, dto.AllocationUpdateRequest{
		Field: entity.BucketReinvestment,
		Value: dec("60"),
	})
	require.NoError(t, err)
	assert.True(t, out.Reinvestment.Equal(dec("60")))
	assert.False(t, out.IsValid, "60+30+20 no suma 100")

	// El documento persistido conserva las claves del front-end legado.
	raw := settings.docs["fluxo_divisao_caixa"]
	require.NotEmpty(t, raw)
	var doc map[string]json.Number
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "reinvestment")
	assert.Contains(t, doc, "caixaLoja")
	assert.Contains(t, doc, "salario")

	// Una nueva instancia lee lo persistido.
	out2, err := appcashflow.NewAllocationUseCase(settings).Get(context.Background())
	require.NoError(t, err)
	assert.True(t, out2.Reinvestment.Equal(dec("60")))
}

func TestSetPercentage_AcotaRango(t *testing.T) {
	settings := &fakeSettingsRepo{}
	uc := appcashflow.NewAllocationUseCase(settings)

	out, err := uc.SetPercentage(context.Background(), adminSession, dto.AllocationUpdateRequest{
		Field: entity.BucketSalary,
		Value: dec("150"),
	})
	require.NoError(t, err)
	assert.True(t, out.Salary.Equal(dec("100")), "por encima de 100 se acota a 100")

	out, err = uc.SetPercentage(context.Background(), adminSession, dto.AllocationUpdateRequest{
		Field: entity.BucketSalary,
		Value: dec("-10"),
	})
	require.NoError(t, err)
	assert.True(t, out.Salary.Equal(dec("0")), "por debajo de 0 se acota a 0")
}

func TestSetPercentage_CampoDesconocidoRechazado(t *testing.T) {
	uc := appcashflow.NewAllocationUseCase(&fakeSettingsRepo{})

	_, err := uc.SetPercentage(context.Background(), adminSession, dto.AllocationUpdateRequest{
		Field: "marketing",
		Value: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetPercentage_ViewerBloqueado(t *testing.T) {
	settings := &fakeSettingsRepo{}
	uc := appcashflow.NewAllocationUseCase(settings)

	_, err := uc.SetPercentage(context.Background(), viewerSession, dto.AllocationUpdateRequest{
		Field: entity.BucketReinvestment,
		Value: dec("60"),
	})
	assert.ErrorIs(t, err, domain.ErrReadOnlyMode)
	assert.Empty(t, settings.docs, "viewer no debe persistir nada")
}
